package roundservice

import (
	"context"
	"sync"
	"time"

	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
	rounddb "github.com/Black-And-White-Club/golf-trip/app/modules/round/infrastructure/repositories"
)

// ------------------------
// Fake Trip Repo
// ------------------------

// FakeTripRepository records calls and delegates to an in-memory store unless
// a Func override is set.
type FakeTripRepository struct {
	mu    sync.Mutex
	trace []string
	store *rounddb.MemoryRepository

	CreateTripFunc func(ctx context.Context, trip *rounddomain.Trip) error
	GetTripFunc    func(ctx context.Context, id rounddomain.TripID) (*rounddomain.Trip, error)
	SaveTripFunc   func(ctx context.Context, trip *rounddomain.Trip) error
	DeleteTripFunc func(ctx context.Context, id rounddomain.TripID) error
}

// NewFakeTripRepository initializes a new FakeTripRepository with an empty trace.
func NewFakeTripRepository() *FakeTripRepository {
	return &FakeTripRepository{
		trace: []string{},
		store: rounddb.NewMemoryRepository(),
	}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeTripRepository) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

// ResetTrace forgets recorded calls.
func (f *FakeTripRepository) ResetTrace() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trace = f.trace[:0]
}

func (f *FakeTripRepository) record(step string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trace = append(f.trace, step)
}

// --- Repository Interface Implementation ---

func (f *FakeTripRepository) CreateTrip(ctx context.Context, trip *rounddomain.Trip) error {
	f.record("CreateTrip")
	if f.CreateTripFunc != nil {
		return f.CreateTripFunc(ctx, trip)
	}
	return f.store.CreateTrip(ctx, trip)
}

func (f *FakeTripRepository) GetTrip(ctx context.Context, id rounddomain.TripID) (*rounddomain.Trip, error) {
	f.record("GetTrip")
	if f.GetTripFunc != nil {
		return f.GetTripFunc(ctx, id)
	}
	return f.store.GetTrip(ctx, id)
}

func (f *FakeTripRepository) SaveTrip(ctx context.Context, trip *rounddomain.Trip) error {
	f.record("SaveTrip")
	if f.SaveTripFunc != nil {
		return f.SaveTripFunc(ctx, trip)
	}
	return f.store.SaveTrip(ctx, trip)
}

func (f *FakeTripRepository) DeleteTrip(ctx context.Context, id rounddomain.TripID) error {
	f.record("DeleteTrip")
	if f.DeleteTripFunc != nil {
		return f.DeleteTripFunc(ctx, id)
	}
	return f.store.DeleteTrip(ctx, id)
}

// Ensure the fake actually satisfies the interface
var _ rounddb.Repository = (*FakeTripRepository)(nil)

// ------------------------
// Fake Metrics
// ------------------------

// FakeMetrics counts metric calls per operation.
type FakeMetrics struct {
	mu             sync.Mutex
	Attempts       map[string]int
	Successes      map[string]int
	Failures       map[string]int
	Repairs        int
	ImportedPlayer int
}

func NewFakeMetrics() *FakeMetrics {
	return &FakeMetrics{
		Attempts:  map[string]int{},
		Successes: map[string]int{},
		Failures:  map[string]int{},
	}
}

func (m *FakeMetrics) RecordOperationAttempt(_ context.Context, op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Attempts[op]++
}

func (m *FakeMetrics) RecordOperationSuccess(_ context.Context, op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Successes[op]++
}

func (m *FakeMetrics) RecordOperationFailure(_ context.Context, op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Failures[op]++
}

func (m *FakeMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}

func (m *FakeMetrics) RecordTripRepair(context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Repairs++
}

func (m *FakeMetrics) RecordImportedPlayers(_ context.Context, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ImportedPlayer += n
}

var _ Metrics = (*FakeMetrics)(nil)
