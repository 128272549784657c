package models

// ViewState is derived from a Selection and the latest snapshot on every read.
// It is never stored.
type ViewState struct {
	ShowResult      bool    `json:"showResult"`
	ConvertedAmount float64 `json:"convertedAmount"`

	// Display lines, set only when ShowResult is true.
	AmountLine string `json:"amountLine,omitempty" example:"10 USD ="`
	ResultLine string `json:"resultLine,omitempty" example:"9.20000 EUR"`
	RateLine   string `json:"rateLine,omitempty" example:"1 USD = 0.92 EUR"`

	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}
