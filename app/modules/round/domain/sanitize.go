package rounddomain

import "strings"

// Maximum stored widths per cell kind.
const (
	scoreCellWidth    = 2
	parCellWidth      = 2
	handicapCellWidth = 3
)

// SanitizeScore strips everything but digits and keeps at most two of them.
func SanitizeScore(raw string) Cell {
	return Cell(truncate(digitsOnly(raw), scoreCellWidth))
}

// SanitizePar strips everything but digits and keeps at most two of them.
// Values are not clamped to a playable range.
func SanitizePar(raw string) Cell {
	return Cell(truncate(digitsOnly(raw), parCellWidth))
}

// SanitizeHandicap keeps digits and a single leading minus sign, at most three
// characters in total.
func SanitizeHandicap(raw string) Cell {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	return Cell(truncate(b.String(), handicapCellWidth))
}

func digitsOnly(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// truncate cuts s to n bytes; callers only pass ASCII.
func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
