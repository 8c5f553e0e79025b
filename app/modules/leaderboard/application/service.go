package leaderboardservice

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	leaderboarddomain "github.com/Black-And-White-Club/golf-trip/app/modules/leaderboard/domain"
	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
	scoredomain "github.com/Black-And-White-Club/golf-trip/app/modules/score/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// LeaderboardService ranks rounds.
type LeaderboardService struct {
	logger  *slog.Logger
	tracer  trace.Tracer
	palette ChartPalette
}

// NewLeaderboardService creates a new LeaderboardService.
func NewLeaderboardService(logger *slog.Logger, tracer trace.Tracer) *LeaderboardService {
	return &LeaderboardService{
		logger:  logger,
		tracer:  tracer,
		palette: DefaultPalette,
	}
}

var _ Service = (*LeaderboardService)(nil)

// rank finds the round and ranks it against the trip roster.
func (s *LeaderboardService) rank(ctx context.Context, op string, trip *rounddomain.Trip, roundID rounddomain.RoundID) (*rounddomain.Round, leaderboarddomain.Ranking, error) {
	_, span := s.tracer.Start(ctx, op, trace.WithAttributes(
		attribute.String("operation", op),
		attribute.String("round_id", roundID.String()),
	))
	defer span.End()

	if trip == nil {
		span.RecordError(ErrNoTrip)
		return nil, leaderboarddomain.Ranking{}, ErrNoTrip
	}
	r := trip.Round(roundID)
	if r == nil {
		err := fmt.Errorf("%s: %w: %s", op, ErrRoundNotFound, roundID)
		span.RecordError(err)
		return nil, leaderboarddomain.Ranking{}, err
	}

	ranking := leaderboarddomain.Rank(trip.Roster, r, r.Holes)
	span.SetAttributes(
		attribute.String("sort_key", string(ranking.Key)),
		attribute.Int("ranked", len(ranking.Rows)),
	)
	return r, ranking, nil
}

// Leaderboard returns the full ranked view of a round.
func (s *LeaderboardService) Leaderboard(ctx context.Context, trip *rounddomain.Trip, roundID rounddomain.RoundID) (*View, error) {
	r, ranking, err := s.rank(ctx, "Leaderboard", trip, roundID)
	if err != nil {
		return nil, err
	}

	view := &View{
		RoundID:   r.ID,
		RoundName: r.Name,
		Key:       ranking.Key,
		Holes:     r.Holes,
		Rows:      make([]ViewRow, 0, len(ranking.Rows)),
		Snapshot:  leaderboarddomain.Snapshot(ranking),
	}
	view.ParTotal, view.ParReady = rounddomain.ParTotal(r, r.Holes)

	for _, row := range ranking.Rows {
		t := row.Totals
		view.Rows = append(view.Rows, ViewRow{
			Position: row.Position,
			Player:   row.Player,
			Filled:   t.Filled,
			Out:      t.Out,
			In:       t.In,
			Total:    t.Total,
			Handicap: string(r.HCP[row.Player]),
			Net:      scoredomain.FormatStrokes(t.Net),
			Score:    scoredomain.FormatStrokes(row.Score),
			VsPar:    scoredomain.FormatVsPar(t.Vs),
			Class:    scoredomain.VsParClass(t.Vs),
		})
	}

	labels := make([]string, 0, len(view.Rows)+2)
	labels = append(labels, r.Name, strconv.Itoa(view.ParTotal))
	for _, row := range view.Rows {
		labels = append(labels, row.Handicap)
	}
	view.Fingerprint = leaderboarddomain.Fingerprint(ranking, labels...)

	s.logger.DebugContext(ctx, "Leaderboard built",
		slog.String("trip_id", trip.ID.String()),
		slog.String("round_id", roundID.String()),
		slog.String("key", string(ranking.Key)),
		slog.Int("rows", len(view.Rows)),
	)
	return view, nil
}

// Snapshot returns the one-line summary of the top of the leaderboard.
func (s *LeaderboardService) Snapshot(ctx context.Context, trip *rounddomain.Trip, roundID rounddomain.RoundID) (string, error) {
	_, ranking, err := s.rank(ctx, "Snapshot", trip, roundID)
	if err != nil {
		return "", err
	}
	return leaderboarddomain.Snapshot(ranking), nil
}

// Chart renders the ranked scores of a round as a PNG bar chart.
func (s *LeaderboardService) Chart(ctx context.Context, trip *rounddomain.Trip, roundID rounddomain.RoundID) ([]byte, error) {
	r, ranking, err := s.rank(ctx, "Chart", trip, roundID)
	if err != nil {
		return nil, err
	}

	png, err := GenerateLeaderboardChart(r.Name, ranking, s.palette)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to render leaderboard chart",
			slog.String("round_id", roundID.String()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return png, nil
}

// Standings totals head-to-head results over every round of the trip.
func (s *LeaderboardService) Standings(ctx context.Context, trip *rounddomain.Trip) (*StandingsView, error) {
	_, span := s.tracer.Start(ctx, "Standings", trace.WithAttributes(
		attribute.String("operation", "Standings"),
	))
	defer span.End()

	if trip == nil {
		span.RecordError(ErrNoTrip)
		return nil, ErrNoTrip
	}

	standings := leaderboarddomain.RankTrip(trip)
	view := &StandingsView{
		TripID: trip.ID,
		Rounds: len(trip.Rounds),
		Rows:   make([]StandingRow, 0, len(standings)),
	}
	for _, st := range standings {
		view.Rows = append(view.Rows, StandingRow{
			Position: st.Position,
			Player:   st.Player,
			Rounds:   st.Rounds,
			Wins:     st.Wins,
			Halves:   st.Halves,
			Losses:   st.Losses,
			Points:   int(st.Points()),
		})
	}
	span.SetAttributes(attribute.Int("ranked", len(view.Rows)))
	return view, nil
}
