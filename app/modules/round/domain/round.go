package rounddomain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// MaxRosterSize is the largest roster a trip can carry.
const MaxRosterSize = 24

// Supported hole counts.
const (
	NineHoles     = 9
	EighteenHoles = 18
)

// FrontNine is the number of holes counted toward OUT.
const FrontNine = 9

// RoundID identifies a round within a trip.
type RoundID string

// NewRoundID returns a fresh random RoundID.
func NewRoundID() RoundID {
	return RoundID(uuid.NewString())
}

// ParseRoundID validates s as a RoundID.
func ParseRoundID(s string) (RoundID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return RoundID(id.String()), nil
}

func (id RoundID) String() string { return string(id) }

// Cell is a single score, par or handicap entry. The empty Cell means unset and
// is distinct from "0".
type Cell string

// IsEmpty reports whether the cell is unset.
func (c Cell) IsEmpty() bool { return c == "" }

// UnmarshalJSON accepts strings, numbers and null so rounds saved by older
// clients load without error.
func (c *Cell) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	switch {
	case raw == "null":
		*c = ""
		return nil
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Cell(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*c = Cell(n.String())
		return nil
	}
}

// Roster is the ordered list of players on a trip. Order is entry order.
type Roster []string

// Contains reports whether name is on the roster.
func (r Roster) Contains(name string) bool {
	return r.Index(name) >= 0
}

// Index returns the roster position of name, or -1.
func (r Roster) Index(name string) int {
	for i, n := range r {
		if n == name {
			return i
		}
	}
	return -1
}

// Round is one scored round of golf on a trip.
type Round struct {
	ID     RoundID           `json:"id"`
	Name   string            `json:"name"`
	Holes  int               `json:"holes"`
	Par    []Cell            `json:"par"`
	HCP    map[string]Cell   `json:"hcp"`
	Scores map[string][]Cell `json:"scores"`
}

// ValidHoles reports whether holes is a supported hole count.
func ValidHoles(holes int) bool {
	return holes == NineHoles || holes == EighteenHoles
}

// NewRound returns an empty round sized to holes with one empty entry per
// roster player.
func NewRound(id RoundID, name string, holes int, roster Roster) *Round {
	r := &Round{
		ID:     id,
		Name:   name,
		Holes:  holes,
		Par:    emptyCells(holes),
		HCP:    make(map[string]Cell, len(roster)),
		Scores: make(map[string][]Cell, len(roster)),
	}
	for _, p := range roster {
		r.HCP[p] = ""
		r.Scores[p] = emptyCells(holes)
	}
	return r
}

// ParseCell parses a cell as a finite number. Empty and non-numeric cells
// report false.
func ParseCell(c Cell) (float64, bool) {
	s := strings.TrimSpace(string(c))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func emptyCells(n int) []Cell {
	if n <= 0 {
		return []Cell{}
	}
	return make([]Cell, n)
}

// Clone returns a deep copy of the round.
func (r *Round) Clone() *Round {
	if r == nil {
		return nil
	}
	out := &Round{
		ID:     r.ID,
		Name:   r.Name,
		Holes:  r.Holes,
		Par:    append([]Cell(nil), r.Par...),
		HCP:    make(map[string]Cell, len(r.HCP)),
		Scores: make(map[string][]Cell, len(r.Scores)),
	}
	for p, c := range r.HCP {
		out.HCP[p] = c
	}
	for p, row := range r.Scores {
		out.Scores[p] = append([]Cell(nil), row...)
	}
	return out
}
