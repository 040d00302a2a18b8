package aggregate

import (
	"github.com/wvermeer/huisboek/internal/booking"
	"github.com/wvermeer/huisboek/internal/config"
)

// KPISummary is the tile row at the top of the dashboard.
type KPISummary struct {
	BookingsCount      int     `json:"bookings_count"`
	OwnerBookingsCount int     `json:"owner_bookings_count"`
	Nights             int     `json:"nights"`
	OwnerNights        int     `json:"owner_nights"`
	NightsFree         int     `json:"nights_free"`
	OccupancyPct       float64 `json:"occupancy_pct"`
	GrossRevenue       float64 `json:"gross_revenue"`
	NetRevenue         float64 `json:"net_revenue"`
	GrossPerNight      float64 `json:"gross_per_night"`
	NetPerNight        float64 `json:"net_per_night"`
}

// KPIs summarizes the booking set. Nights prefer the source-reported count.
// The free-night budget uses a flat 365-day year per distinct arrival year;
// leap days are ignored for continuity with the historical figures.
func KPIs(bookings []booking.Booking) KPISummary {
	var s KPISummary
	for _, b := range bookings {
		if b.OwnerUse {
			s.OwnerBookingsCount++
			s.OwnerNights += b.Nights
			continue
		}
		s.BookingsCount++
		s.Nights += b.Nights
		s.GrossRevenue += b.Gross
		s.NetRevenue += b.Net
	}

	totalDays := len(ArrivalYearsOf(bookings)) * config.DaysInYear
	if totalDays > 0 {
		s.OccupancyPct = float64(s.Nights+s.OwnerNights) / float64(totalDays)
	}
	if free := totalDays - s.Nights - s.OwnerNights; free > 0 {
		s.NightsFree = free
	}
	if s.Nights > 0 {
		s.GrossPerNight = s.GrossRevenue / float64(s.Nights)
		s.NetPerNight = s.NetRevenue / float64(s.Nights)
	}
	return s
}
