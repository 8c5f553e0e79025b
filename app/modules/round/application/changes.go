package roundservice

import (
	"context"
	"log/slog"
	"sync"

	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
)

// changeFeed fans trip change notifications out to watchers. Each watcher
// channel holds at most one pending signal, so bursts of edits coalesce and a
// slow watcher never blocks an edit.
type changeFeed struct {
	mu       sync.Mutex
	watchers map[rounddomain.TripID]map[chan struct{}]struct{}
}

func newChangeFeed() *changeFeed {
	return &changeFeed{watchers: make(map[rounddomain.TripID]map[chan struct{}]struct{})}
}

func (f *changeFeed) watch(tripID rounddomain.TripID) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	f.mu.Lock()
	set, ok := f.watchers[tripID]
	if !ok {
		set = make(map[chan struct{}]struct{})
		f.watchers[tripID] = set
	}
	set[ch] = struct{}{}
	f.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			delete(f.watchers[tripID], ch)
			if len(f.watchers[tripID]) == 0 {
				delete(f.watchers, tripID)
			}
		})
	}
}

func (f *changeFeed) publish(tripID rounddomain.TripID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for ch := range f.watchers[tripID] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (f *changeFeed) count(tripID rounddomain.TripID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.watchers[tripID])
}

// Watch signals on the returned channel after every saved edit to the trip.
// Call the returned func to stop watching.
func (s *RoundService) Watch(ctx context.Context, tripID rounddomain.TripID) (<-chan struct{}, func()) {
	ch, stop := s.changes.watch(tripID)
	s.logger.DebugContext(ctx, "Trip watcher added",
		slog.String("trip_id", tripID.String()),
		slog.Int("watchers", s.changes.count(tripID)),
	)
	return ch, stop
}
