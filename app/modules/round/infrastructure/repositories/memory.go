package rounddb

import (
	"context"
	"fmt"
	"sync"

	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
)

// MemoryRepository keeps trips in process memory. It backs the offline CLI and
// tests. Stored trips are deep-copied on the way in and out.
type MemoryRepository struct {
	mu    sync.RWMutex
	trips map[rounddomain.TripID]*rounddomain.Trip
}

// NewMemoryRepository returns an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{trips: make(map[rounddomain.TripID]*rounddomain.Trip)}
}

func (m *MemoryRepository) CreateTrip(_ context.Context, trip *rounddomain.Trip) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.trips[trip.ID]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, trip.ID)
	}
	m.trips[trip.ID] = trip.Clone()
	return nil
}

func (m *MemoryRepository) GetTrip(_ context.Context, id rounddomain.TripID) (*rounddomain.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	trip, ok := m.trips[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return trip.Clone(), nil
}

func (m *MemoryRepository) SaveTrip(_ context.Context, trip *rounddomain.Trip) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.trips[trip.ID]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, trip.ID)
	}
	m.trips[trip.ID] = trip.Clone()
	return nil
}

func (m *MemoryRepository) DeleteTrip(_ context.Context, id rounddomain.TripID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.trips[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(m.trips, id)
	return nil
}
