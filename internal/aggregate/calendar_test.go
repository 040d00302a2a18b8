package aggregate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wvermeer/huisboek/internal/aggregate"
	"github.com/wvermeer/huisboek/internal/booking"
)

func fillsOn(fills map[string][]aggregate.Fill, d time.Time) []aggregate.Fill {
	return fills[booking.DayKey(d)]
}

func TestDayFills_FullyInsideWindow(t *testing.T) {
	b := stay(localDate(2024, time.June, 10), localDate(2024, time.June, 13), 300, false)
	grid := aggregate.MonthGrid(2024, time.June)

	fills := aggregate.DayFills([]booking.Booking{b}, grid.Start, grid.EndExclusive, true, true)

	// nights+1 filled days spanning [start, end] inclusive.
	require.Len(t, fills, 4)

	halfRight := fillsOn(fills, localDate(2024, time.June, 10))
	require.Len(t, halfRight, 1)
	assert.Equal(t, aggregate.FillHalfRight, halfRight[0].Shape)
	assert.False(t, halfRight[0].OwnerUse)
	require.NotNil(t, halfRight[0].Booking)
	assert.InDelta(t, 300.0, halfRight[0].Booking.Gross, 1e-9)

	for _, d := range []time.Time{localDate(2024, time.June, 11), localDate(2024, time.June, 12)} {
		f := fillsOn(fills, d)
		require.Len(t, f, 1)
		assert.Equal(t, aggregate.FillFull, f[0].Shape)
	}

	halfLeft := fillsOn(fills, localDate(2024, time.June, 13))
	require.Len(t, halfLeft, 1)
	assert.Equal(t, aggregate.FillHalfLeft, halfLeft[0].Shape)
}

func TestDayFills_BackToBackStaysShareADay(t *testing.T) {
	turnover := localDate(2024, time.June, 13)
	bookings := []booking.Booking{
		stay(localDate(2024, time.June, 10), turnover, 300, false),
		stay(turnover, localDate(2024, time.June, 15), 200, false),
	}
	grid := aggregate.MonthGrid(2024, time.June)

	fills := aggregate.DayFills(bookings, grid.Start, grid.EndExclusive, true, true)

	day := fillsOn(fills, turnover)
	require.Len(t, day, 2, "Checkout and arrival paint independent half cells")
	shapes := []aggregate.FillShape{day[0].Shape, day[1].Shape}
	assert.Contains(t, shapes, aggregate.FillHalfLeft)
	assert.Contains(t, shapes, aggregate.FillHalfRight)
}

func TestDayFills_ClippedToWindow(t *testing.T) {
	// May stay spilling into June: the June grid clips the start.
	b := stay(localDate(2024, time.May, 30), localDate(2024, time.June, 2), 250, false)
	gridStart := localDate(2024, time.June, 1)
	gridEnd := localDate(2024, time.July, 1)

	fills := aggregate.DayFills([]booking.Booking{b}, gridStart, gridEnd, true, true)

	require.Len(t, fills, 2)
	first := fillsOn(fills, localDate(2024, time.June, 1))
	require.Len(t, first, 1)
	assert.Equal(t, aggregate.FillHalfRight, first[0].Shape, "The clipped start paints like an arrival")
	last := fillsOn(fills, localDate(2024, time.June, 2))
	require.Len(t, last, 1)
	assert.Equal(t, aggregate.FillHalfLeft, last[0].Shape)
}

func TestDayFills_OutsideWindowSkipped(t *testing.T) {
	b := stay(localDate(2024, time.March, 1), localDate(2024, time.March, 4), 100, false)
	fills := aggregate.DayFills([]booking.Booking{b}, localDate(2024, time.June, 1), localDate(2024, time.July, 1), true, true)
	assert.Empty(t, fills)
}

func TestDayFills_VisibilityTogglesFilterBeforeFills(t *testing.T) {
	bookings := []booking.Booking{
		stay(localDate(2024, time.June, 10), localDate(2024, time.June, 13), 300, false),
		stay(localDate(2024, time.June, 20), localDate(2024, time.June, 25), 0, true),
	}
	gridStart, gridEnd := localDate(2024, time.June, 1), localDate(2024, time.July, 1)

	onlyPlatform := aggregate.DayFills(bookings, gridStart, gridEnd, true, false)
	assert.Empty(t, fillsOn(onlyPlatform, localDate(2024, time.June, 21)), "Hidden owner stays occupy no cells")
	assert.NotEmpty(t, fillsOn(onlyPlatform, localDate(2024, time.June, 11)))

	onlyOwner := aggregate.DayFills(bookings, gridStart, gridEnd, false, true)
	assert.Empty(t, fillsOn(onlyOwner, localDate(2024, time.June, 11)))
	owner := fillsOn(onlyOwner, localDate(2024, time.June, 21))
	require.Len(t, owner, 1)
	assert.True(t, owner[0].OwnerUse)
}

func TestMonthGrid_MondayAligned(t *testing.T) {
	grid := aggregate.MonthGrid(2024, time.June)

	// June 2024 starts on a Saturday; the grid opens Monday May 27 and
	// closes after Sunday June 30.
	assert.Equal(t, localDate(2024, time.May, 27), grid.Start)
	assert.Equal(t, localDate(2024, time.July, 1), grid.EndExclusive)
	assert.Equal(t, 5, grid.Weeks)
	assert.Equal(t, time.Monday, grid.Start.Weekday())

	// February 2027 starts on a Monday and spans exactly four weeks.
	feb := aggregate.MonthGrid(2027, time.February)
	assert.Equal(t, localDate(2027, time.February, 1), feb.Start)
	assert.Equal(t, 4, feb.Weeks)
}

func TestIntersectsYear(t *testing.T) {
	b := stay(localDate(2024, time.December, 28), localDate(2025, time.January, 3), 600, false)
	assert.True(t, aggregate.IntersectsYear(b, 2024))
	assert.True(t, aggregate.IntersectsYear(b, 2025))
	assert.False(t, aggregate.IntersectsYear(b, 2023))
	assert.False(t, aggregate.IntersectsYear(b, 2026))

	// A checkout on January 1 leaves no occupied night in the new year.
	newYear := stay(localDate(2024, time.December, 28), localDate(2025, time.January, 1), 400, false)
	assert.False(t, aggregate.IntersectsYear(newYear, 2025), "Exclusive end touching the year start is not an overlap")
}

func TestYearsOf(t *testing.T) {
	bookings := []booking.Booking{
		stay(localDate(2024, time.June, 10), localDate(2024, time.June, 13), 300, false),
		stay(localDate(2024, time.December, 28), localDate(2025, time.January, 3), 600, false),
		stay(localDate(2022, time.April, 1), localDate(2022, time.April, 4), 150, false),
	}
	assert.Equal(t, []int{2022, 2024, 2025}, aggregate.YearsOf(bookings))
	assert.Equal(t, []int{2022, 2024}, aggregate.ArrivalYearsOf(bookings), "Departure-only years stay out of the arrival list")
	assert.Empty(t, aggregate.YearsOf(nil))
}

func TestByArrivalYearAndIntersecting(t *testing.T) {
	cross := stay(localDate(2024, time.December, 28), localDate(2025, time.January, 3), 600, false)
	june := stay(localDate(2024, time.June, 10), localDate(2024, time.June, 13), 300, false)
	bookings := []booking.Booking{cross, june}

	assert.Len(t, aggregate.ByArrivalYear(bookings, 2024), 2)
	assert.Empty(t, aggregate.ByArrivalYear(bookings, 2025), "Revenue buckets follow the arrival year")

	assert.Len(t, aggregate.Intersecting(bookings, 2025), 1, "Occupancy views see the cross-boundary stay in both years")
}
