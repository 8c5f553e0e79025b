package roundservice

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
)

// defaultTripName names trips created without one.
const defaultTripName = "Golf Trip"

// CreateTrip stores a new trip with the given roster. Roster names are
// validated the same way as AddPlayer.
func (s *RoundService) CreateTrip(ctx context.Context, name string, roster []string) (*rounddomain.Trip, error) {
	tripID := rounddomain.NewTripID()
	return withTelemetry(s, ctx, "CreateTrip", tripID, func(ctx context.Context) (*rounddomain.Trip, error) {
		name = strings.TrimSpace(name)
		if name == "" {
			name = defaultTripName
		}

		st := NewStore(&rounddomain.Trip{ID: tripID, Name: name})
		for _, player := range roster {
			if err := st.AddPlayer(player); err != nil {
				return nil, err
			}
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if err := s.repo.CreateTrip(ctx, st.Trip()); err != nil {
			return nil, fmt.Errorf("failed to create trip: %w", err)
		}
		s.sessions[tripID] = st.Session()

		s.logger.InfoContext(ctx, "Trip created",
			slog.String("trip_id", tripID.String()),
			slog.Int("players", len(st.Trip().Roster)),
		)
		return st.Trip(), nil
	})
}

// GetTrip returns the stored trip after self-healing it.
func (s *RoundService) GetTrip(ctx context.Context, tripID rounddomain.TripID) (*rounddomain.Trip, error) {
	return withTelemetry(s, ctx, "GetTrip", tripID, func(ctx context.Context) (*rounddomain.Trip, error) {
		st, err := s.present(ctx, tripID, nil)
		if err != nil {
			return nil, err
		}
		return st.Trip(), nil
	})
}

// AddPlayer appends a player to the roster of every round.
func (s *RoundService) AddPlayer(ctx context.Context, tripID rounddomain.TripID, name string) (*rounddomain.Trip, error) {
	return withTelemetry(s, ctx, "AddPlayer", tripID, func(ctx context.Context) (*rounddomain.Trip, error) {
		st, err := s.edit(ctx, tripID, func(st *Store) error {
			return st.AddPlayer(name)
		})
		if err != nil {
			return nil, err
		}
		return st.Trip(), nil
	})
}

// RemovePlayer drops a player and all of their cells.
func (s *RoundService) RemovePlayer(ctx context.Context, tripID rounddomain.TripID, name string) (*rounddomain.Trip, error) {
	return withTelemetry(s, ctx, "RemovePlayer", tripID, func(ctx context.Context) (*rounddomain.Trip, error) {
		st, err := s.edit(ctx, tripID, func(st *Store) error {
			return st.RemovePlayer(name)
		})
		if err != nil {
			return nil, err
		}
		return st.Trip(), nil
	})
}

// RenamePlayer renames a player, keeping their cells.
func (s *RoundService) RenamePlayer(ctx context.Context, tripID rounddomain.TripID, oldName, newName string) (*rounddomain.Trip, error) {
	return withTelemetry(s, ctx, "RenamePlayer", tripID, func(ctx context.Context) (*rounddomain.Trip, error) {
		st, err := s.edit(ctx, tripID, func(st *Store) error {
			return st.RenamePlayer(oldName, newName)
		})
		if err != nil {
			return nil, err
		}
		return st.Trip(), nil
	})
}
