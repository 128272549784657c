package models

import "fmt"

// Mode selects the data source the rates are fetched from.
type Mode string

const (
	ModeLatest  Mode = "latest"
	ModeHistory Mode = "history"
)

// HistoryDateLayout is the layout of Selection.HistoryDate.
const HistoryDateLayout = "2006-01-02"

// ParseMode converts a user supplied value into a Mode.
// An empty value selects the latest rates.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeLatest, "":
		return ModeLatest, nil
	case ModeHistory:
		return ModeHistory, nil
	default:
		return "", fmt.Errorf("unknown mode %q", s)
	}
}

// Selection is everything the user picked in one conversion view.
// It is changed only by user input.
type Selection struct {
	From        Currency `json:"from"`
	To          Currency `json:"to"`
	Amount      float64  `json:"amount"`
	HistoryDate string   `json:"historyDate,omitempty"`
	Mode        Mode     `json:"mode"`
}
