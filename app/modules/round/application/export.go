package roundservice

import (
	"strconv"

	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
	"github.com/Black-And-White-Club/golf-trip/app/modules/round/infrastructure/parsers"
	scoredomain "github.com/Black-And-White-Club/golf-trip/app/modules/score/domain"
)

// buildExport lays out r for a spreadsheet with one row per roster player in
// roster order.
func buildExport(roster rounddomain.Roster, r *rounddomain.Round) *parsers.Export {
	e := &parsers.Export{
		RoundName: r.Name,
		Holes:     r.Holes,
		Par:       cellStrings(r.Par),
	}

	for _, player := range roster {
		t := scoredomain.ComputePlayerTotals(r, player, r.Holes)
		row := parsers.ExportRow{
			Player:   player,
			Handicap: string(r.HCP[player]),
			Cells:    cellStrings(r.Scores[player]),
			Out:      scoredomain.Placeholder,
			In:       scoredomain.Placeholder,
			Total:    scoredomain.Placeholder,
			Net:      scoredomain.FormatStrokes(t.Net),
			VsPar:    scoredomain.FormatVsPar(t.Vs),
		}
		if t.Filled > 0 {
			row.Out = strconv.Itoa(t.Out)
			row.Total = strconv.Itoa(t.Total)
			if r.Holes == rounddomain.EighteenHoles {
				row.In = strconv.Itoa(t.In)
			}
		}
		e.Rows = append(e.Rows, row)
	}
	return e
}

func cellStrings(cells []rounddomain.Cell) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = string(c)
	}
	return out
}
