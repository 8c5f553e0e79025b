package testutils

import (
	"context"
	"log"
	"sync"
	"testing"
	"time"
)

// Shared lazily starts one TestEnvironment per test binary. TestMain calls
// Teardown after the run.
type Shared struct {
	once sync.Once
	env  *TestEnvironment
	err  error
}

// Get returns the environment after resetting it, failing t if it could not
// be started.
func (s *Shared) Get(t *testing.T) *TestEnvironment {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	s.once.Do(func() {
		log.Println("Initializing integration test environment...")
		s.env, s.err = NewTestEnvironment(t)
	})
	if s.err != nil {
		t.Fatalf("test environment initialization failed: %v", s.err)
	}

	ctx, cancel := context.WithTimeout(s.env.Ctx, 5*time.Second)
	defer cancel()
	if err := s.env.Reset(ctx); err != nil {
		t.Fatalf("failed to reset environment: %v", err)
	}
	return s.env
}

// Teardown releases the environment if it was started.
func (s *Shared) Teardown() {
	if s.env != nil {
		s.env.Cleanup()
	}
}
