package roundservice

import (
	"context"

	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
)

// CreateRound adds a round for the whole roster and opens it.
func (s *RoundService) CreateRound(ctx context.Context, tripID rounddomain.TripID, req CreateRoundRequest) (*rounddomain.Round, error) {
	if req.Holes == 0 {
		req.Holes = s.defaults.Holes
	}
	if req.TotalPar == 0 {
		req.TotalPar = s.defaults.TotalPar
	}

	return withTelemetry(s, ctx, "CreateRound", tripID, func(ctx context.Context) (*rounddomain.Round, error) {
		var round *rounddomain.Round
		_, err := s.edit(ctx, tripID, func(st *Store) error {
			r, err := st.CreateRound(req.Name, req.Holes, req.TotalPar)
			round = r
			return err
		})
		if err != nil {
			return nil, err
		}
		return round, nil
	})
}

// RemoveRound deletes a round.
func (s *RoundService) RemoveRound(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID) error {
	_, err := withTelemetry(s, ctx, "RemoveRound", tripID, func(ctx context.Context) (struct{}, error) {
		_, err := s.edit(ctx, tripID, func(st *Store) error {
			return st.RemoveRound(roundID)
		})
		return struct{}{}, err
	})
	return err
}

// ApplyParTemplate overwrites a round's par with the template for totalPar.
func (s *RoundService) ApplyParTemplate(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID, totalPar int) (*rounddomain.Round, error) {
	return withTelemetry(s, ctx, "ApplyParTemplate", tripID, func(ctx context.Context) (*rounddomain.Round, error) {
		st, err := s.edit(ctx, tripID, func(st *Store) error {
			return st.ApplyParTemplate(roundID, totalPar)
		})
		if err != nil {
			return nil, err
		}
		return st.Round(roundID)
	})
}
