package roundservice

import (
	"fmt"

	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
)

// maxSuggestDistance bounds how far a typo may be from a roster name to be
// offered as a suggestion.
const maxSuggestDistance = 2

// foldName returns the Unicode case-folded form of name. Casers are stateful,
// so each call gets its own.
func foldName(name string) string {
	return cases.Fold().String(name)
}

// matchRosterName finds the roster entry equal to name ignoring case.
func matchRosterName(roster rounddomain.Roster, name string) (string, bool) {
	if roster.Contains(name) {
		return name, true
	}
	key := foldName(name)
	for _, p := range roster {
		if foldName(p) == key {
			return p, true
		}
	}
	return "", false
}

// suggestName returns the roster entry closest to name, if any is within
// maxSuggestDistance edits of it.
func suggestName(roster rounddomain.Roster, name string) (string, bool) {
	key := foldName(name)
	best, bestDist := "", maxSuggestDistance+1
	for _, p := range roster {
		if d := levenshtein.ComputeDistance(key, foldName(p)); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best, best != ""
}

// playerNotFound reports name as missing, pointing at a likely intended
// roster entry.
func playerNotFound(roster rounddomain.Roster, name string) error {
	if s, ok := suggestName(roster, name); ok {
		return fmt.Errorf("%w: %s (did you mean %q?)", ErrPlayerNotFound, name, s)
	}
	return fmt.Errorf("%w: %s", ErrPlayerNotFound, name)
}
