package aggregate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wvermeer/huisboek/internal/aggregate"
	"github.com/wvermeer/huisboek/internal/booking"
	"github.com/wvermeer/huisboek/internal/config"
)

func TestMonthlyRevenue_AllMonthsEmitted(t *testing.T) {
	got := aggregate.MonthlyRevenue(nil, 2024, config.SeasonAll)
	require.Len(t, got, 12)
	for i, bucket := range got {
		assert.Equal(t, time.Month(i+1), bucket.Month)
		assert.Zero(t, bucket.Gross)
		assert.Zero(t, bucket.Net)
	}
}

func TestMonthlyRevenue_BucketsByArrivalMonth(t *testing.T) {
	bookings := []booking.Booking{
		stay(localDate(2024, time.June, 10), localDate(2024, time.June, 13), 300, false),
		stay(localDate(2024, time.June, 20), localDate(2024, time.June, 22), 200, false),
		stay(localDate(2024, time.December, 28), localDate(2025, time.January, 3), 600, false),
		stay(localDate(2023, time.June, 1), localDate(2023, time.June, 5), 999, false), // other year
	}

	got := aggregate.MonthlyRevenue(bookings, 2024, config.SeasonAll)
	assert.InDelta(t, 500.0, got[time.June-1].Gross, 1e-9)
	assert.InDelta(t, 500.0*0.76, got[time.June-1].Net, 1e-9)
	assert.InDelta(t, 600.0, got[time.December-1].Gross, 1e-9, "Cross-boundary stays bucket by arrival")
	assert.Zero(t, got[time.January-1].Gross)
}

func TestMonthlyRevenue_SeasonRestriction(t *testing.T) {
	bookings := []booking.Booking{
		stay(localDate(2024, time.February, 1), localDate(2024, time.February, 8), 400, false),
		stay(localDate(2024, time.June, 10), localDate(2024, time.June, 13), 300, false),
	}

	winter := aggregate.MonthlyRevenue(bookings, 2024, config.SeasonWinter)
	assert.InDelta(t, 400.0, winter[time.February-1].Gross, 1e-9)
	assert.Zero(t, winter[time.June-1].Gross, "Out-of-season months stay zero")
	require.Len(t, winter, 12, "The axis keeps all twelve months")

	summer := aggregate.MonthlyRevenue(bookings, 2024, config.SeasonSummer)
	assert.Zero(t, summer[time.February-1].Gross)
	assert.InDelta(t, 300.0, summer[time.June-1].Gross, 1e-9)
}
