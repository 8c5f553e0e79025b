package roundservice

import (
	"context"

	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
)

// SetScore commits a sanitized score for player on hole (1-based).
func (s *RoundService) SetScore(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID, player string, hole int, raw string) (rounddomain.Cell, error) {
	return withTelemetry(s, ctx, "SetScore", tripID, func(ctx context.Context) (rounddomain.Cell, error) {
		var cell rounddomain.Cell
		_, err := s.edit(ctx, tripID, func(st *Store) error {
			c, err := st.SetScore(roundID, player, hole, raw)
			cell = c
			return err
		})
		return cell, err
	})
}

// SetPar commits a sanitized par for hole (1-based).
func (s *RoundService) SetPar(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID, hole int, raw string) (rounddomain.Cell, error) {
	return withTelemetry(s, ctx, "SetPar", tripID, func(ctx context.Context) (rounddomain.Cell, error) {
		var cell rounddomain.Cell
		_, err := s.edit(ctx, tripID, func(st *Store) error {
			c, err := st.SetPar(roundID, hole, raw)
			cell = c
			return err
		})
		return cell, err
	})
}

// SetHandicap commits a sanitized handicap for player.
func (s *RoundService) SetHandicap(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID, player, raw string) (rounddomain.Cell, error) {
	return withTelemetry(s, ctx, "SetHandicap", tripID, func(ctx context.Context) (rounddomain.Cell, error) {
		var cell rounddomain.Cell
		_, err := s.edit(ctx, tripID, func(st *Store) error {
			c, err := st.SetHandicap(roundID, player, raw)
			cell = c
			return err
		})
		return cell, err
	})
}
