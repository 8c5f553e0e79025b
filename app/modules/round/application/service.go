package roundservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
	"github.com/Black-And-White-Club/golf-trip/app/modules/round/infrastructure/parsers"
	rounddb "github.com/Black-And-White-Club/golf-trip/app/modules/round/infrastructure/repositories"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Defaults fill in round settings the caller leaves zero.
type Defaults struct {
	Holes    int
	TotalPar int
}

// RoundService edits trips. Every call loads the stored trip into a Store,
// applies one operation and persists the result. Calls are serialised: the
// engine assumes a single active editor.
type RoundService struct {
	repo     rounddb.Repository
	parsers  parsers.ParserFactory
	logger   *slog.Logger
	metrics  Metrics
	tracer   trace.Tracer
	defaults Defaults

	urlImport *URLImport

	mu       sync.Mutex
	sessions map[rounddomain.TripID]Session
	changes  *changeFeed
}

// NewRoundService creates a new RoundService.
func NewRoundService(
	repo rounddb.Repository,
	parserFactory parsers.ParserFactory,
	logger *slog.Logger,
	metrics Metrics,
	tracer trace.Tracer,
	defaults Defaults,
) *RoundService {
	if metrics == nil {
		metrics = NoOpMetrics{}
	}
	if !rounddomain.ValidHoles(defaults.Holes) {
		defaults.Holes = rounddomain.EighteenHoles
	}
	return &RoundService{
		repo:     repo,
		parsers:  parserFactory,
		logger:   logger,
		metrics:  metrics,
		tracer:   tracer,
		defaults: defaults,
		sessions: make(map[rounddomain.TripID]Session),
		changes:  newChangeFeed(),
	}
}

var _ Service = (*RoundService)(nil)

// operationFunc is the generic signature for service operation functions.
type operationFunc[T any] func(ctx context.Context) (T, error)

// withTelemetry wraps a service operation with tracing, metrics, and panic recovery.
func withTelemetry[T any](
	s *RoundService,
	ctx context.Context,
	operationName string,
	tripID rounddomain.TripID,
	op operationFunc[T],
) (result T, err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
		attribute.String("trip_id", tripID.String()),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, time.Since(startTime))
	}()

	s.logger.DebugContext(ctx, operationName+" triggered",
		slog.String("operation", operationName),
		slog.String("trip_id", tripID.String()),
	)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				slog.String("operation", operationName),
				slog.String("trip_id", tripID.String()),
				slog.Any("error", err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName)
			span.RecordError(err)
			var zero T
			result = zero
		}
	}()

	result, err = op(ctx)

	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		level := slog.LevelError
		if IsClientError(err) {
			level = slog.LevelWarn
		}
		s.logger.Log(ctx, level, "Operation failed",
			slog.String("operation", operationName),
			slog.String("trip_id", tripID.String()),
			slog.Any("error", wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName)
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	s.logger.InfoContext(ctx, operationName+" completed successfully",
		slog.String("operation", operationName),
		slog.String("trip_id", tripID.String()),
	)
	s.metrics.RecordOperationSuccess(ctx, operationName)

	return result, nil
}

// IsClientError reports whether err stems from bad input rather than an
// infrastructure failure.
func IsClientError(err error) bool {
	for _, target := range []error{
		ErrTripNotFound, ErrRoundNotFound, ErrEmptyRoster, ErrInvalidHoles,
		ErrHoleOutOfRange, ErrPlayerNotFound, ErrDuplicatePlayer,
		ErrInvalidPlayerName, ErrRosterFull, ErrInvalidViewMode, ErrUnsupportedScorecard,
		ErrURLImportDisabled, ErrInvalidScorecardURL, ErrScorecardTooLarge,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// load reads the trip into a fresh Store. A trip that needed repair is
// written back straight away, and the session of a missing trip is dropped.
// Callers hold s.mu.
func (s *RoundService) load(ctx context.Context, tripID rounddomain.TripID) (*Store, error) {
	trip, err := s.repo.GetTrip(ctx, tripID)
	if err != nil {
		if errors.Is(err, rounddb.ErrNotFound) {
			delete(s.sessions, tripID)
			return nil, fmt.Errorf("%w: %s", ErrTripNotFound, tripID)
		}
		return nil, fmt.Errorf("failed to load trip: %w", err)
	}

	st := &Store{}
	if st.Load(trip) {
		s.logger.WarnContext(ctx, "Repaired stored trip",
			slog.String("trip_id", tripID.String()),
		)
		s.metrics.RecordTripRepair(ctx)
		if err := s.repo.SaveTrip(ctx, st.Trip()); err != nil {
			return nil, fmt.Errorf("failed to save repaired trip: %w", err)
		}
	}
	if sess, ok := s.sessions[tripID]; ok {
		st.RestoreSession(sess)
	}
	return st, nil
}

// edit applies fn to the trip and persists it. Nothing is saved when fn fails.
func (s *RoundService) edit(ctx context.Context, tripID rounddomain.TripID, fn func(st *Store) error) (*Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if err := fn(st); err != nil {
		return nil, err
	}
	if err := s.repo.SaveTrip(ctx, st.Trip()); err != nil {
		return nil, fmt.Errorf("failed to save trip: %w", err)
	}
	s.sessions[tripID] = st.Session()
	s.changes.publish(tripID)
	return st, nil
}

// present applies fn to presentation state only; the trip itself is not
// written.
func (s *RoundService) present(ctx context.Context, tripID rounddomain.TripID, fn func(st *Store) error) (*Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if fn != nil {
		if err := fn(st); err != nil {
			return nil, err
		}
		s.sessions[tripID] = st.Session()
	}
	return st, nil
}
