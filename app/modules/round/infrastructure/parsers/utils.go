package parsers

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// normalizeHeader lowercases and strips spaces, underscores and hyphens.
func normalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(s)
}

// findColumn searches for a column by multiple possible names (case-insensitive)
func findColumn(header []string, possibleNames []string) int {
	for i, col := range header {
		colNorm := normalizeHeader(col)
		for _, name := range possibleNames {
			if colNorm == normalizeHeader(name) {
				return i
			}
		}
	}
	return -1
}

// findHoleColumns finds all columns that represent holes.
// Matches patterns: "hole1", "hole_1", "hole 1", "h1", "H1", or just "1"
func findHoleColumns(header []string) []int {
	var holeColumns []int

	for i, col := range header {
		colNorm := normalizeHeader(col)

		var num string
		switch {
		case strings.HasPrefix(colNorm, "hole"):
			num = strings.TrimPrefix(colNorm, "hole")
		case strings.HasPrefix(colNorm, "h") && len(colNorm) > 1:
			num = strings.TrimPrefix(colNorm, "h")
		default:
			num = colNorm
		}
		if n, err := strconv.Atoi(num); err == nil && n >= 1 && n <= maxHoles {
			holeColumns = append(holeColumns, i)
		}
	}

	return holeColumns
}

// isPARRow checks if a row label represents par values
func isPARRow(cellValue string) bool {
	normalized := strings.ToUpper(strings.TrimSpace(cellValue))
	return normalized == "PAR" || normalized == "PARS" || normalized == "P"
}

// preprocessCSVData cleans CSV data and auto-detects delimiter
// Returns: cleaned string, delimiter rune, error
func preprocessCSVData(data []byte) (string, rune, error) {
	if len(data) == 0 {
		return "", ',', fmt.Errorf("empty CSV data")
	}

	// Strip UTF-8 BOM if present
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	cleaned := strings.ReplaceAll(string(data), "\r\n", "\n")

	// Auto-detect delimiter: count commas vs tabs in first 5 lines
	lines := strings.Split(cleaned, "\n")
	sampleSize := min(len(lines), 5)

	commaCount, tabCount := 0, 0
	for i := 0; i < sampleSize; i++ {
		commaCount += strings.Count(lines[i], ",")
		tabCount += strings.Count(lines[i], "\t")
	}

	delimiter := ','
	if tabCount > commaCount {
		delimiter = '\t'
	}

	return cleaned, delimiter, nil
}

// knownColumns are normalized header names that mark a header row.
var knownColumns = map[string]struct{}{
	"playername": {}, "player": {}, "name": {}, "hole": {}, "hole1": {}, "h1": {}, "1": {},
	"out": {}, "in": {}, "tot": {}, "total": {}, "score": {},
	"hcp": {}, "handicap": {}, "net": {}, "vs": {}, "+/": {}, "plusminus": {},
}

// detectHeaderRow scans the first 5 rows to find the header
// Returns the index of the header row, or -1 if not found
func detectHeaderRow(rows [][]string) int {
	maxRows := min(len(rows), 5)

	bestScore := 0
	bestRow := -1

	for rowIdx := 0; rowIdx < maxRows; rowIdx++ {
		score := 0
		for _, cell := range rows[rowIdx] {
			if _, ok := knownColumns[normalizeHeader(cell)]; ok {
				score++
			}
		}

		// Need at least 2 recognized columns to consider it a header
		if score >= 2 && score > bestScore {
			bestScore = score
			bestRow = rowIdx
		}
	}

	return bestRow
}
