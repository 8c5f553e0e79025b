package parsers

import (
	"fmt"
	"strconv"
	"strings"
)

// maxHoles is the largest card the engine can score.
const maxHoles = 18

// minParHoles is the fewest numeric cells an unlabeled row needs to be taken
// as the par row.
const minParHoles = 9

// parseRows turns a sheet of cells into a scorecard. Layout:
//
//	Name, 1, 2, ... , 9, OUT, HCP   (optional header)
//	Par,  4, 4, ... , 5, 36         (labeled or all-numeric par row)
//	Alice, 4, 5, ... , -, ...       (one row per player)
//
// Hole columns come from the header when it names them, otherwise from the
// columns the par row fills.
func parseRows(rows [][]string, source string) (*ParsedScorecard, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s file is empty", source)
	}

	headerIdx := detectHeaderRow(rows)
	var header []string
	if headerIdx >= 0 {
		header = rows[headerIdx]
	}

	holeCols := findHoleColumns(header)
	parIdx, parCols, parScores, err := findParRow(rows, headerIdx, holeCols)
	if err != nil {
		return nil, err
	}
	if parIdx < 0 {
		if len(holeCols) == 0 {
			return nil, fmt.Errorf("no par row found in %s", source)
		}
		// The header names the holes, so the card is read with par unset.
		parCols, parScores = holeCols, make([]string, len(holeCols))
	}
	if len(parScores) > maxHoles {
		return nil, fmt.Errorf("scorecard has %d holes; at most %d are supported", len(parScores), maxHoles)
	}

	hcpCol := findColumn(header, []string{"hcp", "handicap", "hdcp"})

	var players []PlayerScore
	for i, row := range rows {
		if i == headerIdx || i == parIdx || len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(row[0])
		if name == "" || isPARRow(name) || isSummaryLabel(name) || !isLikelyPlayerName(name) {
			continue
		}

		holes := make([]string, len(parCols))
		total := 0
		for h, col := range parCols {
			holes[h] = cellAt(row, col)
			if v, err := strconv.Atoi(holes[h]); err == nil {
				total += v
			}
		}

		ps := PlayerScore{PlayerName: name, HoleScores: holes, Total: total}
		if hcpCol >= 0 {
			ps.Handicap = cellAt(row, hcpCol)
		}
		players = append(players, ps)
	}

	if len(players) == 0 {
		return nil, fmt.Errorf("no player score rows found in %s", source)
	}

	return &ParsedScorecard{
		ParScores:    parScores,
		PlayerScores: players,
	}, nil
}

// findParRow locates the par row and the columns holding hole pars. When
// holeCols is non-empty every one of them is a hole, and blank par cells are
// kept as unset so scores stay on their holes.
func findParRow(rows [][]string, headerIdx int, holeCols []int) (int, []int, []string, error) {
	for i, row := range rows {
		if i == headerIdx || len(row) == 0 {
			continue
		}

		if isPARRow(row[0]) {
			cols, values, _, err := parCells(row, 1, holeCols)
			if err != nil {
				return -1, nil, nil, fmt.Errorf("invalid par row at line %d: %w", i+1, err)
			}
			if len(holeCols) == 0 {
				cols, values = dropTrailingTotal(cols, values)
			}
			return i, cols, values, nil
		}

		// An unlabeled, fully numeric row with enough holes is taken as par.
		if label := strings.TrimSpace(row[0]); label != "" && isLikelyPlayerName(label) {
			continue
		}
		cols, values, filled, err := parCells(row, 0, holeCols)
		if err == nil && filled >= minParHoles {
			if len(holeCols) == 0 {
				cols, values = dropTrailingTotal(cols, values)
			}
			return i, cols, values, nil
		}
	}
	return -1, nil, nil, nil
}

// parCells reads par values from row. With holeCols every listed column is
// returned, blank ones as "". Without them only the non-empty cells from
// column start onward are returned. Any non-numeric or negative value is an
// error. filled counts the non-empty cells.
func parCells(row []string, start int, holeCols []int) (cols []int, values []string, filled int, err error) {
	keepBlank := len(holeCols) > 0
	candidates := holeCols
	if !keepBlank {
		for c := start; c < len(row); c++ {
			candidates = append(candidates, c)
		}
	}

	for _, c := range candidates {
		val := cellAt(row, c)
		if val == "" {
			if keepBlank {
				cols = append(cols, c)
				values = append(values, "")
			}
			continue
		}
		v, err := strconv.Atoi(val)
		if err != nil {
			return nil, nil, 0, fmt.Errorf("non-numeric score value: %q", val)
		}
		if v < 0 {
			return nil, nil, 0, fmt.Errorf("negative score value: %d", v)
		}
		cols = append(cols, c)
		values = append(values, strconv.Itoa(v))
		filled++
	}
	return cols, values, filled, nil
}

// dropTrailingTotal removes a final OUT/TOT value on 9 or 18 hole cards where
// it equals the sum of the preceding cells. values are all numeric here.
func dropTrailingTotal(cols []int, values []string) ([]int, []string) {
	n := len(values)
	if n != minParHoles+1 && n != maxHoles+1 {
		return cols, values
	}
	sum := 0
	for _, v := range values[:n-1] {
		x, _ := strconv.Atoi(v)
		sum += x
	}
	if last, _ := strconv.Atoi(values[n-1]); last != sum {
		return cols, values
	}
	return cols[:n-1], values[:n-1]
}

// cellAt returns the trimmed cell, mapping the "-" placeholder to empty.
func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	val := strings.TrimSpace(row[col])
	if val == "-" {
		return ""
	}
	return val
}

// isLikelyPlayerName checks if a string looks like a player name
func isLikelyPlayerName(s string) bool {
	s = strings.TrimSpace(s)
	_, err := strconv.Atoi(s)
	return err != nil
}

func isSummaryLabel(s string) bool {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TOTAL", "TOT", "OUT", "IN", "HCP", "HANDICAP", "HOLE", "HOLES":
		return true
	}
	return false
}
