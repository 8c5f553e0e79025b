// Package scoredomain derives per-player round statistics from canonical score
// cells. Nothing here is stored; every value is recomputed from the round.
package scoredomain

import (
	"math"
	"strconv"

	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
)

// Placeholder is shown wherever a value is undefined.
const Placeholder = "—"

// PlayerTotals holds one player's derived statistics for a round.
// Net and Vs are NaN when undefined.
type PlayerTotals struct {
	Filled   int
	Out      int
	In       int
	Total    int
	HCP      float64
	Net      float64
	Vs       float64
	ParReady bool
}

// HasNet reports whether Net is defined.
func (t PlayerTotals) HasNet() bool { return !math.IsNaN(t.Net) }

// HasVs reports whether Vs is defined.
func (t PlayerTotals) HasVs() bool { return !math.IsNaN(t.Vs) }

// ComputePlayerTotals derives player's statistics over the first holes cells
// of the round. Empty and non-numeric cells are absent: they count toward
// neither Filled nor any sum.
func ComputePlayerTotals(r *rounddomain.Round, player string, holes int) PlayerTotals {
	t := PlayerTotals{Net: math.NaN(), Vs: math.NaN()}
	if r == nil {
		return t
	}

	row := r.Scores[player]
	var sumOut, sumIn, sumTotal float64
	for i := 0; i < holes && i < len(row); i++ {
		v, ok := rounddomain.ParseCell(row[i])
		if !ok {
			continue
		}
		t.Filled++
		sumTotal += v
		if i < rounddomain.FrontNine {
			sumOut += v
		} else if holes == rounddomain.EighteenHoles {
			sumIn += v
		}
	}
	t.Out = int(sumOut)
	t.In = int(sumIn)
	t.Total = int(sumTotal)

	if hcp, ok := rounddomain.ParseCell(r.HCP[player]); ok {
		t.HCP = hcp
	}

	t.ParReady = rounddomain.IsParComplete(r, holes)

	if t.Filled > 0 {
		t.Net = float64(t.Total) - t.HCP
		if par, ok := rounddomain.ParTotal(r, holes); ok {
			t.Vs = float64(t.Total - par)
		}
	}
	return t
}

// FormatVsPar renders a score relative to par: "E" for even, "+n" over,
// "-n" under and Placeholder when undefined.
func FormatVsPar(delta float64) string {
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return Placeholder
	}
	switch {
	case delta == 0:
		return "E"
	case delta > 0:
		return "+" + formatNumber(delta)
	default:
		return formatNumber(delta)
	}
}

// FormatStrokes renders a stroke count, or Placeholder when undefined.
func FormatStrokes(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Placeholder
	}
	return formatNumber(v)
}

// Class buckets a vs-par value for presentation.
type Class string

const (
	ClassNone Class = ""
	ClassEven Class = "even"
	ClassPos  Class = "pos"
	ClassNeg  Class = "neg"
)

// VsParClass returns the presentation bucket for delta.
func VsParClass(delta float64) Class {
	switch {
	case math.IsNaN(delta) || math.IsInf(delta, 0):
		return ClassNone
	case delta == 0:
		return ClassEven
	case delta > 0:
		return ClassPos
	default:
		return ClassNeg
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
