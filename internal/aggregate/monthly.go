package aggregate

import (
	"time"

	"github.com/wvermeer/huisboek/internal/booking"
	"github.com/wvermeer/huisboek/internal/config"
)

// MonthBucket is one bar of the monthly revenue chart.
type MonthBucket struct {
	Month time.Month `json:"month"`
	Gross float64    `json:"gross"`
	Net   float64    `json:"net"`
}

// MonthlyRevenue buckets revenue by arrival month within one year. All twelve
// months are always emitted, zero-filled. A season other than "all" restricts
// accumulation to that season's arrival months; the other months stay zero so
// the chart keeps a stable axis.
func MonthlyRevenue(bookings []booking.Booking, year int, season string) []MonthBucket {
	buckets := make([]MonthBucket, 12)
	for i := range buckets {
		buckets[i].Month = time.Month(i + 1)
	}

	allowed := seasonSet(season)
	for _, b := range ByArrivalYear(bookings, year) {
		m := b.Start.Month()
		if allowed != nil {
			if _, ok := allowed[m]; !ok {
				continue
			}
		}
		buckets[m-1].Gross += b.Gross
		buckets[m-1].Net += b.Net
	}
	return buckets
}

// seasonSet resolves a season name to its month set, nil meaning unrestricted.
func seasonSet(season string) map[time.Month]struct{} {
	months, ok := config.SeasonMonths[season]
	if !ok {
		return nil
	}
	set := make(map[time.Month]struct{}, len(months))
	for _, m := range months {
		set[m] = struct{}{}
	}
	return set
}
