package aggregate

import (
	"time"

	"github.com/wvermeer/huisboek/internal/booking"
)

// DayPoint is the metadata attached to a cumulative-series day that has at
// least one arrival. Non-arrival days carry a nil pointer instead.
type DayPoint struct {
	Date     time.Time `json:"date"`
	Amount   float64   `json:"amount"`
	Nights   int       `json:"nights"`
	OwnerUse bool      `json:"owner_use"`
}

// CumulativeSeries is a stepped running-total chart: one point per calendar
// day from the earliest to the latest arrival, with markers only on days that
// actually have bookings.
type CumulativeSeries struct {
	Labels     []time.Time `json:"labels"`
	Values     []float64   `json:"values"`
	PointsMeta []*DayPoint `json:"points_meta"`
}

// CumulativeDaily builds the forward-filled running revenue total over the
// bookings' arrival days. The mode selects gross or net amounts; owner-use
// arrivals appear as zero-amount markers so their stays remain visible.
func CumulativeDaily(bookings []booking.Booking, mode string) CumulativeSeries {
	var s CumulativeSeries
	if len(bookings) == 0 {
		return s
	}

	// Per-day sums, keyed by arrival day.
	type daySum struct {
		amount float64
		nights int
		owner  bool
	}
	byDay := make(map[string]*daySum, len(bookings))
	first, last := bookings[0].Start, bookings[0].Start
	for _, b := range bookings {
		if b.Start.Before(first) {
			first = b.Start
		}
		if b.Start.After(last) {
			last = b.Start
		}
		key := booking.DayKey(b.Start)
		d := byDay[key]
		if d == nil {
			d = &daySum{}
			byDay[key] = d
		}
		d.amount += RevenueOf(b, mode)
		d.nights += b.Nights
		// Any owner-use arrival marks the whole day.
		d.owner = d.owner || b.OwnerUse
	}

	// Walk day by day, carrying the running total forward across gaps.
	span := booking.DiffDays(first, last) + 1
	s.Labels = make([]time.Time, 0, span)
	s.Values = make([]float64, 0, span)
	s.PointsMeta = make([]*DayPoint, 0, span)

	var running float64
	for day := first; !day.After(last); day = booking.AddDays(day, 1) {
		s.Labels = append(s.Labels, day)
		if d, ok := byDay[booking.DayKey(day)]; ok {
			running += d.amount
			s.PointsMeta = append(s.PointsMeta, &DayPoint{
				Date:     day,
				Amount:   d.amount,
				Nights:   d.nights,
				OwnerUse: d.owner,
			})
		} else {
			s.PointsMeta = append(s.PointsMeta, nil)
		}
		s.Values = append(s.Values, running)
	}
	return s
}
