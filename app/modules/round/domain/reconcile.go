package rounddomain

import "strings"

// ReconcileRound brings the round's score and handicap maps in line with the
// roster: missing players get empty entries, players no longer on the roster
// are dropped, and entries for remaining players are left untouched. It
// reports whether anything changed.
func ReconcileRound(r *Round, roster Roster) bool {
	if r == nil {
		return false
	}
	if r.Scores == nil {
		r.Scores = make(map[string][]Cell, len(roster))
	}
	if r.HCP == nil {
		r.HCP = make(map[string]Cell, len(roster))
	}

	changed := false
	for _, p := range roster {
		if _, ok := r.Scores[p]; !ok {
			r.Scores[p] = emptyCells(r.Holes)
			changed = true
		}
		if _, ok := r.HCP[p]; !ok {
			r.HCP[p] = ""
			changed = true
		}
	}

	for p := range r.Scores {
		if !roster.Contains(p) {
			delete(r.Scores, p)
			changed = true
		}
	}
	for p := range r.HCP {
		if !roster.Contains(p) {
			delete(r.HCP, p)
			changed = true
		}
	}
	return changed
}

// NormalizeRoster drops blank and duplicate names and caps the
// roster at MaxRosterSize, keeping entry order.
func NormalizeRoster(roster Roster) Roster {
	out := make(Roster, 0, len(roster))
	seen := make(map[string]struct{}, len(roster))
	for _, name := range roster {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		if len(out) == MaxRosterSize {
			break
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// Repair reshapes a loaded round into canonical form: a supported hole count,
// par and score rows of exactly that length, one entry per roster player and
// sanitized cells. It reports whether anything changed.
func Repair(r *Round, roster Roster) bool {
	if r == nil {
		return false
	}

	changed := false
	if !ValidHoles(r.Holes) {
		r.Holes = EighteenHoles
		if len(r.Par) > 0 && len(r.Par) <= NineHoles {
			r.Holes = NineHoles
		}
		changed = true
	}
	if r.ID == "" {
		r.ID = NewRoundID()
		changed = true
	}

	var resized bool
	r.Par, resized = resize(r.Par, r.Holes)
	changed = changed || resized
	if sanitizeRow(r.Par, SanitizePar) {
		changed = true
	}

	if ReconcileRound(r, roster) {
		changed = true
	}

	for p, row := range r.Scores {
		row, resized = resize(row, r.Holes)
		if resized {
			changed = true
		}
		if sanitizeRow(row, SanitizeScore) {
			changed = true
		}
		r.Scores[p] = row
	}
	for p, c := range r.HCP {
		if clean := SanitizeHandicap(string(c)); clean != c {
			r.HCP[p] = clean
			changed = true
		}
	}
	return changed
}

func resize(row []Cell, n int) ([]Cell, bool) {
	switch {
	case row == nil:
		return emptyCells(n), true
	case len(row) == n:
		return row, false
	case len(row) > n:
		return row[:n:n], true
	default:
		out := emptyCells(n)
		copy(out, row)
		return out, true
	}
}

func sanitizeRow(row []Cell, sanitize func(string) Cell) bool {
	changed := false
	for i, c := range row {
		if clean := sanitize(string(c)); clean != c {
			row[i] = clean
			changed = true
		}
	}
	return changed
}
