package rounddomain

import "strconv"

// Par values a hole may take before the round counts as par-ready.
const (
	MinHolePar = 3
	MaxHolePar = 6

	defaultHolePar = 4
)

// Hand-tuned layouts keyed by total par. Every entry sums to its key.
var (
	eighteenHoleTemplates = map[int][]int{
		70: {4, 4, 3, 4, 4, 4, 3, 4, 5, 4, 3, 4, 4, 4, 4, 3, 4, 5},
		71: {4, 4, 3, 5, 4, 4, 3, 4, 5, 4, 3, 4, 4, 4, 4, 3, 4, 5},
		72: {4, 4, 3, 5, 4, 4, 3, 4, 5, 4, 3, 4, 5, 4, 4, 3, 4, 5},
		73: {4, 4, 3, 5, 4, 5, 3, 4, 5, 4, 3, 4, 5, 4, 4, 3, 4, 5},
		74: {4, 4, 3, 5, 4, 5, 3, 4, 5, 4, 3, 4, 5, 4, 5, 3, 4, 5},
	}
	nineHoleTemplates = map[int][]int{
		34: {4, 4, 3, 4, 4, 3, 3, 4, 5},
		35: {4, 4, 3, 4, 4, 4, 3, 4, 5},
		36: {4, 4, 3, 5, 4, 4, 3, 4, 5},
	}
)

// BuildParTemplate returns a plausible per-hole par layout for totalPar over
// holes. Unknown totals fall back to all par 4s, which need not sum to
// totalPar. The returned slice is always len(holes) and owned by the caller.
func BuildParTemplate(totalPar, holes int) []int {
	var templates map[int][]int
	switch holes {
	case EighteenHoles:
		templates = eighteenHoleTemplates
	case NineHoles:
		templates = nineHoleTemplates
	}

	if tpl, ok := templates[totalPar]; ok {
		out := make([]int, len(tpl))
		copy(out, tpl)
		return out
	}

	if holes <= 0 {
		return []int{}
	}
	out := make([]int, holes)
	for i := range out {
		out[i] = defaultHolePar
	}
	return out
}

// ParCells converts par values into cells.
func ParCells(values []int) []Cell {
	cells := make([]Cell, len(values))
	for i, v := range values {
		cells[i] = Cell(strconv.Itoa(v))
	}
	return cells
}

// IsParComplete reports whether each of the first holes par cells holds an
// integer in [MinHolePar, MaxHolePar]. Out-of-range values already stored are
// left alone; they only keep the round from being par-ready.
func IsParComplete(r *Round, holes int) bool {
	if r == nil || holes <= 0 || len(r.Par) < holes {
		return false
	}
	for i := 0; i < holes; i++ {
		v, ok := holePar(r.Par[i])
		if !ok || v < MinHolePar || v > MaxHolePar {
			return false
		}
	}
	return true
}

// ParTotal sums the round's par over holes. ok is false unless the round is
// par-ready.
func ParTotal(r *Round, holes int) (total int, ok bool) {
	if !IsParComplete(r, holes) {
		return 0, false
	}
	for i := 0; i < holes; i++ {
		v, _ := holePar(r.Par[i])
		total += v
	}
	return total, true
}

func holePar(c Cell) (int, bool) {
	v, ok := ParseCell(c)
	if !ok || v != float64(int(v)) {
		return 0, false
	}
	return int(v), true
}
