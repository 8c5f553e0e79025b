package leaderboarddomain

import (
	"cmp"
	"slices"

	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
)

// Points uses a custom type to prevent floating-point errors.
type Points int

const (
	PointsWin    Points = 2
	PointsHalved Points = 1
)

// MatchupResult is one player's tally against the field over a trip.
type MatchupResult struct {
	Wins   int
	Halves int
	Losses int
}

// Points returns the head-to-head points for the tally.
func (m MatchupResult) Points() Points {
	return Points(m.Wins)*PointsWin + Points(m.Halves)*PointsHalved
}

// TripStanding is one player's position in the trip-long competition.
type TripStanding struct {
	Position    int
	Player      string
	RosterIndex int
	Rounds      int
	MatchupResult
}

// CalculateRoundPoints plays every ranked player against every other in the
// round's ranking. A better position wins the matchup and a shared position
// halves it. Players missing from the ranking take no part.
func CalculateRoundPoints(r Ranking) map[string]MatchupResult {
	results := make(map[string]MatchupResult, len(r.Rows))
	for i, a := range r.Rows {
		res := results[a.Player]
		for j, b := range r.Rows {
			if i == j {
				continue
			}
			switch {
			case a.Position < b.Position:
				res.Wins++
			case a.Position == b.Position:
				res.Halves++
			default:
				res.Losses++
			}
		}
		results[a.Player] = res
	}
	return results
}

// RankTrip totals head-to-head points over every round of the trip. Standings
// are ordered by points, then wins, then fewer rounds played, then roster
// order. Players with no scored round are left out.
func RankTrip(trip *rounddomain.Trip) []TripStanding {
	if trip == nil {
		return nil
	}

	byPlayer := make(map[string]*TripStanding, len(trip.Roster))
	for i, p := range trip.Roster {
		byPlayer[p] = &TripStanding{Player: p, RosterIndex: i}
	}

	for _, r := range trip.Rounds {
		for player, res := range CalculateRoundPoints(Rank(trip.Roster, r, r.Holes)) {
			st := byPlayer[player]
			st.Rounds++
			st.Wins += res.Wins
			st.Halves += res.Halves
			st.Losses += res.Losses
		}
	}

	standings := make([]TripStanding, 0, len(byPlayer))
	for _, p := range trip.Roster {
		if st := byPlayer[p]; st.Rounds > 0 {
			standings = append(standings, *st)
		}
	}

	slices.SortFunc(standings, func(a, b TripStanding) int {
		if c := cmp.Compare(b.Points(), a.Points()); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Wins, a.Wins); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Rounds, b.Rounds); c != 0 {
			return c
		}
		return cmp.Compare(a.RosterIndex, b.RosterIndex)
	})

	for i := range standings {
		if i > 0 && sameTripStanding(standings[i-1], standings[i]) {
			standings[i].Position = standings[i-1].Position
			continue
		}
		standings[i].Position = i + 1
	}
	return standings
}

func sameTripStanding(a, b TripStanding) bool {
	return a.Points() == b.Points() && a.Wins == b.Wins && a.Rounds == b.Rounds
}
