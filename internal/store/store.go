// Package store is the single owner of mutable application state. Uploads
// replace the booking list wholesale through Update; readers take snapshots
// through Get; subscribers are notified after every mutation so derived
// caches (the calendar feed, the contacts file) can rebuild.
package store

import (
	"log/slog"
	"sync"
	"time"

	"github.com/wvermeer/huisboek/internal/aggregate"
	"github.com/wvermeer/huisboek/internal/booking"
	"github.com/wvermeer/huisboek/internal/config"
)

// State is everything the service remembers between requests. It lives only
// in memory; restarting the process requires a fresh upload.
type State struct {
	Bookings   []booking.Booking
	Years      []int
	Filename   string
	UploadedAt time.Time
}

// Store serializes access to the State. There is exactly one writer path,
// Update; concurrent readers get value snapshots.
type Store struct {
	mu          sync.RWMutex
	state       State
	subscribers []func(State)
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Get returns a snapshot of the current state. The booking slice is shared
// but never mutated in place: Update always replaces it.
func (s *Store) Get() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Update applies one mutation under the write lock, refreshes the derived
// year list and notifies subscribers with the new snapshot. Subscribers run
// outside the lock so they may call Get.
func (s *Store) Update(mutate func(*State)) {
	s.mu.Lock()
	mutate(&s.state)
	s.state.Years = aggregate.YearsOf(s.state.Bookings)
	snapshot := s.state
	subscribers := s.subscribers
	s.mu.Unlock()

	slog.Debug(config.MsgStateUpdated,
		slog.String(config.LogKeyComponent, config.CompStore),
		slog.Int(config.LogKeyBookings, len(snapshot.Bookings)),
		slog.Any(config.LogKeyYears, snapshot.Years),
	)
	for _, notify := range subscribers {
		notify(snapshot)
	}
}

// Subscribe registers a callback invoked after every Update. Registration is
// expected at startup, before the server accepts uploads.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}
