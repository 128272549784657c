package models

import "time"

// RateSnapshot is the full rate table returned by one successful provider call.
// It is only valid for its BaseCode and, in history mode, its Date.
// Failed calls never produce a snapshot.
type RateSnapshot struct {
	BaseCode  string             `json:"baseCode"`
	Rates     map[string]float64 `json:"rates"`
	Mode      Mode               `json:"mode"`
	Date      string             `json:"date,omitempty"`
	FetchedAt time.Time          `json:"fetchedAt"`
}

// Matches reports whether the snapshot was fetched for the given selection.
func (s *RateSnapshot) Matches(sel Selection) bool {
	if s == nil {
		return false
	}
	if s.BaseCode != sel.From.Code || s.Mode != sel.Mode {
		return false
	}
	if sel.Mode == ModeHistory && s.Date != sel.HistoryDate {
		return false
	}
	return true
}
