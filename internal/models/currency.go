package models

import "fmt"

// Currency is an entry of the currency reference table.
// The zero value is the empty currency, which is what the picker reports when cleared.
type Currency struct {
	Code    string `json:"code" example:"USD"`                    // ISO-4217 code, unique key
	Label   string `json:"label" example:"United States Dollar"` // Display label
	IconRef string `json:"iconRef" example:"us"`                  // Flag image code
}

// IsEmpty reports whether no currency is selected.
func (c Currency) IsEmpty() bool {
	return c.Code == ""
}

// IconURL returns the flag image URL for the given pixel width (20 or 40).
func (c Currency) IconURL(width int) string {
	if c.IconRef == "" {
		return ""
	}
	return fmt.Sprintf("https://flagcdn.com/w%d/%s.png", width, c.IconRef)
}
