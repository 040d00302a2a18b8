// Package booking turns heterogeneous, locale-formatted spreadsheet rows into
// the canonical Booking model used by every aggregation.
//
// A booking occupies the half-open interval [Start, End): End is the checkout
// day, the first night NOT occupied. All dates are local midnights.
package booking

import "time"

// RawRow is one untyped spreadsheet row keyed by its human-language column
// headers. Rows are ephemeral and never persisted past normalization.
type RawRow map[string]any

// Booking is the canonical record derived from one spreadsheet row.
type Booking struct {
	// Start is the arrival date (inclusive), truncated to local midnight.
	Start time.Time `json:"start"`

	// End is the checkout date (exclusive), truncated to local midnight.
	End time.Time `json:"end"`

	// Nights is the stay length reported by the source, falling back to the
	// date difference when the source column is absent or unusable. KPI sums
	// use this value; calendar rendering always derives from [Start, End).
	Nights int `json:"nights"`

	// Gross is the booking income in EUR. Zero for owner-use rows and for
	// rows whose income cell could not be parsed.
	Gross float64 `json:"gross"`

	// Net applies the fixed retention factor to Gross.
	Net float64 `json:"net"`

	// GrossKnown distinguishes a true zero from "no data" (dash/empty/
	// unparsable income), so displays can render an em-dash instead of €0.
	GrossKnown bool `json:"gross_known"`

	// OwnerUse marks owner-personal-use ranges: they count toward occupancy
	// but contribute nothing to revenue sums.
	OwnerUse bool `json:"owner_use"`

	// Descriptive fields carried through unchanged for display.
	Guest       string `json:"guest"`
	Channel     string `json:"channel"`
	Label       string `json:"label"`
	CountryCode string `json:"country_code"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Adults      int    `json:"adults"`
	Children    int    `json:"children"`
	Infants     int    `json:"infants"`
}

// StayNights is the night count implied by the date range itself.
func (b Booking) StayNights() int {
	return DiffDays(b.Start, b.End)
}

// PartySize is the total head count of the party breakdown.
func (b Booking) PartySize() int {
	return b.Adults + b.Children + b.Infants
}
