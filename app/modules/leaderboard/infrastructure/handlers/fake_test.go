package leaderboardhandlers

import (
	"context"
	"sync"

	roundservice "github.com/Black-And-White-Club/golf-trip/app/modules/round/application"
	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
)

// FakeTrips serves trips from memory and lets tests signal changes.
type FakeTrips struct {
	mu       sync.Mutex
	trips    map[rounddomain.TripID]*rounddomain.Trip
	watchers []chan struct{}
	watching chan struct{}
}

var _ TripSource = (*FakeTrips)(nil)

func NewFakeTrips(trips ...*rounddomain.Trip) *FakeTrips {
	f := &FakeTrips{
		trips:    make(map[rounddomain.TripID]*rounddomain.Trip),
		watching: make(chan struct{}, 8),
	}
	for _, t := range trips {
		f.trips[t.ID] = t
	}
	return f
}

func (f *FakeTrips) GetTrip(_ context.Context, id rounddomain.TripID) (*rounddomain.Trip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if t, ok := f.trips[id]; ok {
		return t.Clone(), nil
	}
	return nil, roundservice.ErrTripNotFound
}

func (f *FakeTrips) Watch(_ context.Context, _ rounddomain.TripID) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	f.mu.Lock()
	f.watchers = append(f.watchers, ch)
	f.mu.Unlock()
	f.watching <- struct{}{}
	return ch, func() {}
}

// Update applies fn to the stored trip and notifies watchers.
func (f *FakeTrips) Update(id rounddomain.TripID, fn func(t *rounddomain.Trip)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f.trips[id])
	for _, ch := range f.watchers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
