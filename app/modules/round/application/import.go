package roundservice

import (
	"fmt"
	"strings"

	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
	"github.com/Black-And-White-Club/golf-trip/app/modules/round/infrastructure/parsers"
)

// ImportScorecard creates a round from a parsed scorecard. Players missing
// from the roster are added first; if that would exceed the roster limit
// nothing changes. Cards with more than nine holes become 18-hole rounds.
// Blank par cells stay unset.
// Every imported cell goes through the same sanitizers as manual edits.
// It returns the new round and how many players joined the roster.
func (s *Store) ImportScorecard(name string, card *parsers.ParsedScorecard) (*rounddomain.Round, int, error) {
	if card == nil || card.Holes() == 0 {
		return nil, 0, fmt.Errorf("%w: no par row", ErrUnsupportedScorecard)
	}

	// Names match the roster ignoring case; the first row for a player wins.
	var names, added []string
	canonical := make(map[string]string, len(card.PlayerScores))
	seen := make(map[string]struct{}, len(card.PlayerScores))
	for _, ps := range card.PlayerScores {
		n := strings.TrimSpace(ps.PlayerName)
		if n == "" {
			continue
		}
		key := foldName(n)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if existing, ok := matchRosterName(s.trip.Roster, n); ok {
			canonical[n] = existing
		} else {
			canonical[n] = n
			added = append(added, n)
		}
		names = append(names, canonical[n])
	}
	if len(names) == 0 {
		return nil, 0, fmt.Errorf("%w: no players", ErrUnsupportedScorecard)
	}
	if len(s.trip.Roster)+len(added) > rounddomain.MaxRosterSize {
		return nil, 0, fmt.Errorf("%w: %d new players would exceed %d", ErrRosterFull, len(added), rounddomain.MaxRosterSize)
	}

	holes := rounddomain.NineHoles
	if card.Holes() > rounddomain.NineHoles {
		holes = rounddomain.EighteenHoles
	}

	s.trip.Roster = append(s.trip.Roster, added...)
	r := rounddomain.NewRound(rounddomain.NewRoundID(), s.roundName(name), holes, s.trip.Roster)

	for i := 0; i < holes && i < len(card.ParScores); i++ {
		r.Par[i] = rounddomain.SanitizePar(card.ParScores[i])
	}

	written := make(map[string]struct{}, len(names))
	for _, ps := range card.PlayerScores {
		n, ok := canonical[strings.TrimSpace(ps.PlayerName)]
		if !ok {
			continue
		}
		if _, done := written[n]; done {
			continue
		}
		written[n] = struct{}{}

		row := r.Scores[n]
		for i := 0; i < holes && i < len(ps.HoleScores); i++ {
			row[i] = rounddomain.SanitizeScore(ps.HoleScores[i])
		}
		r.HCP[n] = rounddomain.SanitizeHandicap(ps.Handicap)
	}

	s.appendRound(r)
	return r, len(added), nil
}
