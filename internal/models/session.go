package models

// Session id transport for browser routes
const (
	SessionHeader     = "X-Session-ID"
	SessionCookieName = "session_id"
)

// SessionResponse describes one conversion view
// swagger:model SessionResponse
type SessionResponse struct {
	// Session identifier
	// example: 550e8400-e29b-41d4-a716-446655440000
	ID string `json:"id"`

	// Current selection
	Selection Selection `json:"selection"`

	// Derived presentation
	View ViewState `json:"view"`
}

// SelectCurrencyRequest selects or clears a currency
// swagger:model SelectCurrencyRequest
type SelectCurrencyRequest struct {
	// Currency code, empty clears the selection
	// example: USD
	Code string `json:"code" validate:"omitempty,len=3,alpha"`
}

// AmountRequest carries the amount field as typed by the user
// swagger:model AmountRequest
type AmountRequest struct {
	// Free text amount, non-numeric input counts as 0
	// example: 10
	Amount string `json:"amount" validate:"max=64"`
}

// ModeRequest switches the data source
// swagger:model ModeRequest
type ModeRequest struct {
	// Data source
	// example: history
	Mode string `json:"mode" validate:"required,oneof=latest history"`
}

// HistoryDateRequest sets the date used in history mode
// swagger:model HistoryDateRequest
type HistoryDateRequest struct {
	// Date in YYYY-MM-DD
	// example: 2024-01-31
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

// CurrenciesResponse is the result of a picker search
// swagger:model CurrenciesResponse
type CurrenciesResponse struct {
	Currencies []Currency `json:"currencies"`
}

// ErrorResponse is returned by every failing API call
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: session not found
	Error string `json:"error"`
}
