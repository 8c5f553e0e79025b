package roundservice

import (
	"context"

	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
)

// ViewMode is the presentation mode of a round.
type ViewMode string

const (
	ViewScores      ViewMode = "scores"
	ViewLeaderboard ViewMode = "leaderboard"
)

// Valid reports whether m is a known mode.
func (m ViewMode) Valid() bool {
	return m == ViewScores || m == ViewLeaderboard
}

// Session is presentation state kept alongside a trip. It plays no part in
// scoring.
type Session struct {
	OpenRoundID rounddomain.RoundID              `json:"open_round_id,omitempty"`
	ViewModes   map[rounddomain.RoundID]ViewMode `json:"view_modes,omitempty"`
}

// NewSession returns a session with no open round.
func NewSession() Session {
	return Session{ViewModes: make(map[rounddomain.RoundID]ViewMode)}
}

// ViewMode returns the mode for id, defaulting to ViewScores.
func (s Session) ViewMode(id rounddomain.RoundID) ViewMode {
	if m, ok := s.ViewModes[id]; ok {
		return m
	}
	return ViewScores
}

func (s Session) clone() Session {
	out := Session{OpenRoundID: s.OpenRoundID, ViewModes: make(map[rounddomain.RoundID]ViewMode, len(s.ViewModes))}
	for k, v := range s.ViewModes {
		out.ViewModes[k] = v
	}
	return out
}

// SetViewMode records how a round is presented.
func (s *RoundService) SetViewMode(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID, mode ViewMode) error {
	_, err := withTelemetry(s, ctx, "SetViewMode", tripID, func(ctx context.Context) (struct{}, error) {
		_, err := s.present(ctx, tripID, func(st *Store) error {
			return st.SetViewMode(roundID, mode)
		})
		return struct{}{}, err
	})
	return err
}

// OpenRound makes roundID the active round.
func (s *RoundService) OpenRound(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID) error {
	_, err := withTelemetry(s, ctx, "OpenRound", tripID, func(ctx context.Context) (struct{}, error) {
		_, err := s.present(ctx, tripID, func(st *Store) error {
			return st.OpenRound(roundID)
		})
		return struct{}{}, err
	})
	return err
}

// Session returns the trip's presentation state.
func (s *RoundService) Session(ctx context.Context, tripID rounddomain.TripID) (Session, error) {
	return withTelemetry(s, ctx, "Session", tripID, func(ctx context.Context) (Session, error) {
		st, err := s.present(ctx, tripID, nil)
		if err != nil {
			return Session{}, err
		}
		return st.Session(), nil
	})
}
