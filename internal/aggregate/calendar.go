package aggregate

import (
	"time"

	"github.com/wvermeer/huisboek/internal/booking"
)

// FillShape is how a booking paints one calendar cell.
type FillShape string

const (
	// FillHalfRight paints the late half of the arrival day.
	FillHalfRight FillShape = "half-right"
	// FillFull paints a fully occupied night.
	FillFull FillShape = "full"
	// FillHalfLeft paints the early half of the checkout day.
	FillHalfLeft FillShape = "half-left"
)

// Fill is one cell-paint instruction, carrying the source booking for
// tooltip lookup.
type Fill struct {
	Day      time.Time        `json:"day"`
	Shape    FillShape        `json:"shape"`
	OwnerUse bool             `json:"owner_use"`
	Booking  *booking.Booking `json:"booking"`
}

// DayFills computes the paint instructions for every booking intersecting the
// visible window [gridStart, gridEnd). Hidden booking types are filtered
// before clipping so their stays occupy no cells at all. Fills from distinct
// bookings are independent: a day that is one stay's checkout and another's
// arrival simply gets both half cells.
func DayFills(bookings []booking.Booking, gridStart, gridEnd time.Time, showPlatform, showOwner bool) map[string][]Fill {
	fills := make(map[string][]Fill)
	add := func(day time.Time, shape FillShape, b *booking.Booking) {
		key := booking.DayKey(day)
		fills[key] = append(fills[key], Fill{Day: day, Shape: shape, OwnerUse: b.OwnerUse, Booking: b})
	}

	for i := range bookings {
		b := &bookings[i]
		if b.OwnerUse && !showOwner {
			continue
		}
		if !b.OwnerUse && !showPlatform {
			continue
		}

		s, e := b.Start, b.End
		if s.Before(gridStart) {
			s = gridStart
		}
		if e.After(gridEnd) {
			e = gridEnd
		}
		if !e.After(s) {
			continue
		}

		add(s, FillHalfRight, b)
		for day := booking.AddDays(s, 1); day.Before(e); day = booking.AddDays(day, 1) {
			add(day, FillFull, b)
		}
		add(e, FillHalfLeft, b)
	}
	return fills
}

// Grid is the visible day window of a month view, aligned to whole
// Monday-start weeks.
type Grid struct {
	Start        time.Time `json:"start"`
	EndExclusive time.Time `json:"end_exclusive"`
	Weeks        int       `json:"weeks"`
}

// MonthGrid computes the Monday-aligned window enclosing a month: from the
// Monday on or before the 1st through the Sunday on or after the last day.
func MonthGrid(year int, month time.Month) Grid {
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

	start := booking.StartOfWeekMonday(firstOfMonth)
	end := booking.AddDays(booking.StartOfWeekMonday(lastOfMonth), 7)
	return Grid{
		Start:        start,
		EndExclusive: end,
		Weeks:        booking.DiffDays(start, end) / 7,
	}
}
