// Package aggregate derives every dashboard metric from a slice of normalized
// bookings: KPI totals, monthly revenue buckets, the forward-filled cumulative
// daily series, ISO-week occupancy stacking and per-day calendar fills.
//
// All functions are pure: they take bookings plus filters and return
// view-model values, never touching shared state.
package aggregate

import (
	"sort"
	"time"

	"github.com/wvermeer/huisboek/internal/booking"
	"github.com/wvermeer/huisboek/internal/config"
)

// RevenueOf selects the booking's revenue contribution for a chart mode.
// Unknown modes fall back to gross.
func RevenueOf(b booking.Booking, mode string) float64 {
	if mode == config.ModeNet {
		return b.Net
	}
	return b.Gross
}

// IntersectsYear reports whether the booking occupies at least one day of the
// calendar year, including stays crossing the year boundary.
func IntersectsYear(b booking.Booking, year int) bool {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	yearEnd := yearStart.AddDate(1, 0, 0)
	return b.Start.Before(yearEnd) && b.End.After(yearStart)
}

// YearsOf lists the distinct years touched by any arrival or departure date,
// ascending. It feeds the year dropdown and the "ALL" union.
func YearsOf(bookings []booking.Booking) []int {
	seen := map[int]struct{}{}
	for _, b := range bookings {
		seen[b.Start.Year()] = struct{}{}
		seen[b.End.Year()] = struct{}{}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// ArrivalYearsOf lists the distinct arrival years, ascending. KPI denominators
// count these; a December stay spilling into January does not add a second
// 365-day budget.
func ArrivalYearsOf(bookings []booking.Booking) []int {
	seen := map[int]struct{}{}
	for _, b := range bookings {
		seen[b.Start.Year()] = struct{}{}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// ByArrivalYear keeps the bookings arriving in the given year. Revenue views
// bucket by arrival date, so a December stay spilling into January belongs
// entirely to the arrival year here.
func ByArrivalYear(bookings []booking.Booking, year int) []booking.Booking {
	out := make([]booking.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Start.Year() == year {
			out = append(out, b)
		}
	}
	return out
}

// Intersecting keeps the bookings occupying any day of the given year.
// Occupancy views use this so cross-boundary stays appear in both years.
func Intersecting(bookings []booking.Booking, year int) []booking.Booking {
	out := make([]booking.Booking, 0, len(bookings))
	for _, b := range bookings {
		if IntersectsYear(b, year) {
			out = append(out, b)
		}
	}
	return out
}
