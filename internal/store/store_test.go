package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wvermeer/huisboek/internal/booking"
	"github.com/wvermeer/huisboek/internal/store"
)

func localDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestStore_GetEmpty(t *testing.T) {
	s := store.New()
	state := s.Get()
	assert.Empty(t, state.Bookings)
	assert.Empty(t, state.Years)
	assert.Zero(t, state.UploadedAt)
}

func TestStore_UpdateReplacesBookingsAndDerivesYears(t *testing.T) {
	s := store.New()

	s.Update(func(st *store.State) {
		st.Bookings = []booking.Booking{
			{Start: localDate(2024, time.June, 10), End: localDate(2024, time.June, 13)},
			{Start: localDate(2024, time.December, 28), End: localDate(2025, time.January, 3)},
		}
		st.Filename = "boekingen.xlsx"
		st.UploadedAt = localDate(2024, time.June, 14)
	})

	state := s.Get()
	require.Len(t, state.Bookings, 2)
	assert.Equal(t, []int{2024, 2025}, state.Years)
	assert.Equal(t, "boekingen.xlsx", state.Filename)
}

func TestStore_SubscribersSeeEachUpdate(t *testing.T) {
	s := store.New()

	var got []int
	s.Subscribe(func(state store.State) {
		got = append(got, len(state.Bookings))
	})

	s.Update(func(st *store.State) {
		st.Bookings = []booking.Booking{
			{Start: localDate(2024, time.June, 10), End: localDate(2024, time.June, 13)},
		}
	})
	s.Update(func(st *store.State) {
		st.Bookings = nil
	})

	assert.Equal(t, []int{1, 0}, got)
}

func TestStore_SubscriberMayReadBack(t *testing.T) {
	s := store.New()

	var observed int
	s.Subscribe(func(store.State) {
		observed = len(s.Get().Bookings)
	})

	s.Update(func(st *store.State) {
		st.Bookings = []booking.Booking{
			{Start: localDate(2024, time.June, 10), End: localDate(2024, time.June, 13)},
		}
	})

	assert.Equal(t, 1, observed, "Subscribers run outside the lock and may call Get")
}
