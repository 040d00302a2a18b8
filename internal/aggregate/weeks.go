package aggregate

import (
	"time"

	"github.com/wvermeer/huisboek/internal/booking"
	"github.com/wvermeer/huisboek/internal/config"
)

// WeekBucket is one stacked column of the week-occupancy chart.
type WeekBucket struct {
	Week           int       `json:"week"`
	Start          time.Time `json:"start"`
	PlatformNights int       `json:"platform_nights"`
	OwnerNights    int       `json:"owner_nights"`
	FreeNights     int       `json:"free_nights"`
}

// WeekOccupancy distributes every occupied night of the year into the year's
// ISO weeks. Stays are clipped to the calendar year first; nights whose ISO
// week belongs to a neighboring ISO year are dropped from this view (the
// month calendar still renders them).
func WeekOccupancy(bookings []booking.Booking, year int) []WeekBucket {
	weeks := booking.ISOWeeksOfYear(year)
	buckets := make([]WeekBucket, len(weeks))
	index := make(map[int]int, len(weeks))
	for i, w := range weeks {
		buckets[i] = WeekBucket{Week: w.Week, Start: w.Start}
		index[w.Week] = i
	}

	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	yearEnd := yearStart.AddDate(1, 0, 0)

	for _, b := range bookings {
		s, e := b.Start, b.End
		if s.Before(yearStart) {
			s = yearStart
		}
		if e.After(yearEnd) {
			e = yearEnd
		}
		for day := s; day.Before(e); day = booking.AddDays(day, 1) {
			isoYear, isoWeek := day.ISOWeek()
			if isoYear != year {
				continue
			}
			i, ok := index[isoWeek]
			if !ok {
				continue
			}
			if b.OwnerUse {
				buckets[i].OwnerNights++
			} else {
				buckets[i].PlatformNights++
			}
		}
	}

	for i := range buckets {
		if free := config.NightsPerWeek - buckets[i].PlatformNights - buckets[i].OwnerNights; free > 0 {
			buckets[i].FreeNights = free
		}
	}
	return buckets
}
