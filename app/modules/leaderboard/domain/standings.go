package leaderboarddomain

import (
	"cmp"
	"slices"
	"strings"

	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
	scoredomain "github.com/Black-And-White-Club/golf-trip/app/modules/score/domain"
)

// SnapshotSize is the number of leaders included in a snapshot line.
const SnapshotSize = 5

// SortKey selects which total a round is ranked by.
type SortKey string

const (
	SortGross SortKey = "gross"
	SortNet   SortKey = "net"
)

// Row is one ranked player.
type Row struct {
	Position    int
	Player      string
	RosterIndex int
	Score       float64
	Totals      scoredomain.PlayerTotals
}

// Ranking is the ordered leaderboard for one round. The full view and the
// snapshot are both derived from the same Rows.
type Ranking struct {
	Key  SortKey
	Rows []Row
}

// ChooseSortKey ranks the whole round by net as soon as any roster player has
// a parseable handicap, and by gross otherwise.
func ChooseSortKey(roster rounddomain.Roster, r *rounddomain.Round) SortKey {
	if r == nil {
		return SortGross
	}
	for _, p := range roster {
		if _, ok := rounddomain.ParseCell(r.HCP[p]); ok {
			return SortNet
		}
	}
	return SortGross
}

// Rank orders the roster players who have at least one score. Lower key wins;
// on a tie the player with more holes filled ranks higher; remaining ties keep
// roster order.
func Rank(roster rounddomain.Roster, r *rounddomain.Round, holes int) Ranking {
	key := ChooseSortKey(roster, r)
	ranking := Ranking{Key: key}
	if r == nil {
		return ranking
	}

	for i, p := range roster {
		totals := scoredomain.ComputePlayerTotals(r, p, holes)
		if totals.Filled == 0 {
			continue
		}
		score := float64(totals.Total)
		if key == SortNet {
			score = totals.Net
		}
		ranking.Rows = append(ranking.Rows, Row{
			Player:      p,
			RosterIndex: i,
			Score:       score,
			Totals:      totals,
		})
	}

	slices.SortStableFunc(ranking.Rows, func(a, b Row) int {
		if c := cmp.Compare(a.Score, b.Score); c != 0 {
			return c
		}
		return cmp.Compare(b.Totals.Filled, a.Totals.Filled)
	})

	for i := range ranking.Rows {
		if i > 0 && sameStanding(ranking.Rows[i-1], ranking.Rows[i]) {
			ranking.Rows[i].Position = ranking.Rows[i-1].Position
			continue
		}
		ranking.Rows[i].Position = i + 1
	}
	return ranking
}

func sameStanding(a, b Row) bool {
	return a.Score == b.Score && a.Totals.Filled == b.Totals.Filled
}

// Leader returns the first ranked row.
func (r Ranking) Leader() (Row, bool) {
	if len(r.Rows) == 0 {
		return Row{}, false
	}
	return r.Rows[0], true
}

// Snapshot renders the top SnapshotSize rows as "name score (vs)" entries
// joined by "; ".
func Snapshot(r Ranking) string {
	n := min(len(r.Rows), SnapshotSize)
	parts := make([]string, 0, n)
	for _, row := range r.Rows[:n] {
		parts = append(parts, row.Player+" "+scoredomain.FormatStrokes(row.Score)+" ("+scoredomain.FormatVsPar(row.Totals.Vs)+")")
	}
	return strings.Join(parts, "; ")
}
