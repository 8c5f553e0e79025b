package roundservice

import (
	"fmt"
	"strings"

	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
)

// Store owns one trip's roster and rounds and keeps every round in canonical
// shape. It is not safe for concurrent use; Service serialises access.
type Store struct {
	trip    *rounddomain.Trip
	session Session
}

// NewStore loads trip into a new store, repairing it as needed.
func NewStore(trip *rounddomain.Trip) *Store {
	s := &Store{}
	s.Load(trip)
	return s
}

// Load replaces the store contents with trip after repairing it in place.
// The session is reset with the most recent round open. It reports whether
// the trip needed repair.
func (s *Store) Load(trip *rounddomain.Trip) bool {
	if trip == nil {
		trip = &rounddomain.Trip{}
	}
	repaired := trip.Repair()
	s.trip = trip
	s.session = NewSession()
	s.session.OpenRoundID = s.latestRoundID()
	return repaired
}

// RestoreSession applies previously saved presentation state, dropping
// entries for rounds that no longer exist.
func (s *Store) RestoreSession(sess Session) {
	restored := NewSession()
	for id, mode := range sess.ViewModes {
		if s.trip.Round(id) != nil && mode.Valid() {
			restored.ViewModes[id] = mode
		}
	}
	restored.OpenRoundID = s.latestRoundID()
	if sess.OpenRoundID != "" && s.trip.Round(sess.OpenRoundID) != nil {
		restored.OpenRoundID = sess.OpenRoundID
	}
	s.session = restored
}

// Trip returns the canonical trip. Callers persist it after each mutation.
func (s *Store) Trip() *rounddomain.Trip { return s.trip }

// Roster returns a copy of the roster.
func (s *Store) Roster() rounddomain.Roster {
	out := make(rounddomain.Roster, len(s.trip.Roster))
	copy(out, s.trip.Roster)
	return out
}

// Rounds returns the rounds in creation order.
func (s *Store) Rounds() []*rounddomain.Round { return s.trip.Rounds }

// Round returns the round with id.
func (s *Store) Round(id rounddomain.RoundID) (*rounddomain.Round, error) {
	r := s.trip.Round(id)
	if r == nil {
		return nil, fmt.Errorf("%w: %s", ErrRoundNotFound, id)
	}
	return r, nil
}

// Session returns a copy of the presentation state.
func (s *Store) Session() Session { return s.session.clone() }

// AddPlayer appends name to the roster and reconciles every round.
func (s *Store) AddPlayer(name string) error {
	name = strings.TrimSpace(name)
	if err := s.checkNewName(name); err != nil {
		return err
	}
	if len(s.trip.Roster) >= rounddomain.MaxRosterSize {
		return ErrRosterFull
	}
	s.trip.Roster = append(s.trip.Roster, name)
	s.Reconcile()
	return nil
}

// RemovePlayer drops name from the roster and reconciles every round.
func (s *Store) RemovePlayer(name string) error {
	name = strings.TrimSpace(name)
	idx := s.trip.Roster.Index(name)
	if idx < 0 {
		return playerNotFound(s.trip.Roster, name)
	}
	s.trip.Roster = append(s.trip.Roster[:idx], s.trip.Roster[idx+1:]...)
	s.Reconcile()
	return nil
}

// RenamePlayer renames a roster entry in place, carrying its cells across
// every round.
func (s *Store) RenamePlayer(oldName, newName string) error {
	oldName = strings.TrimSpace(oldName)
	idx := s.trip.Roster.Index(oldName)
	if idx < 0 {
		return playerNotFound(s.trip.Roster, oldName)
	}
	newName = strings.TrimSpace(newName)
	if newName == oldName {
		return nil
	}
	if err := s.checkNewName(newName); err != nil {
		return err
	}

	for _, r := range s.trip.Rounds {
		if row, ok := r.Scores[oldName]; ok {
			r.Scores[newName] = row
			delete(r.Scores, oldName)
		}
		if c, ok := r.HCP[oldName]; ok {
			r.HCP[newName] = c
			delete(r.HCP, oldName)
		}
	}
	s.trip.Roster[idx] = newName
	s.Reconcile()
	return nil
}

func (s *Store) checkNewName(name string) error {
	if name == "" {
		return ErrInvalidPlayerName
	}
	if s.trip.Roster.Contains(name) {
		return fmt.Errorf("%w: %s", ErrDuplicatePlayer, name)
	}
	return nil
}

// Reconcile aligns every round's score and handicap entries with the roster
// and returns how many rounds changed. Roster mutations call it exactly once.
func (s *Store) Reconcile() int {
	changed := 0
	for _, r := range s.trip.Rounds {
		if rounddomain.ReconcileRound(r, s.trip.Roster) {
			changed++
		}
	}
	return changed
}

// CreateRound appends an empty round and opens it. When totalPar is positive
// the par row is filled from the matching template. Creating a round with no
// players is refused without changing anything.
func (s *Store) CreateRound(name string, holes, totalPar int) (*rounddomain.Round, error) {
	if len(s.trip.Roster) == 0 {
		return nil, ErrEmptyRoster
	}
	if !rounddomain.ValidHoles(holes) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHoles, holes)
	}

	r := rounddomain.NewRound(rounddomain.NewRoundID(), s.roundName(name), holes, s.trip.Roster)
	if totalPar > 0 {
		r.Par = rounddomain.ParCells(rounddomain.BuildParTemplate(totalPar, holes))
	}
	s.appendRound(r)
	return r, nil
}

// roundName trims name, defaulting to "Round N".
func (s *Store) roundName(name string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return fmt.Sprintf("Round %d", len(s.trip.Rounds)+1)
}

// appendRound adds r to the trip, reconciles and opens it in scores mode.
func (s *Store) appendRound(r *rounddomain.Round) {
	s.trip.Rounds = append(s.trip.Rounds, r)
	s.Reconcile()

	s.session.OpenRoundID = r.ID
	s.session.ViewModes[r.ID] = ViewScores
}

// RemoveRound deletes a round together with its presentation state. If it was
// the open round, the most recent remaining round is opened.
func (s *Store) RemoveRound(id rounddomain.RoundID) error {
	idx := -1
	for i, r := range s.trip.Rounds {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrRoundNotFound, id)
	}

	s.trip.Rounds = append(s.trip.Rounds[:idx], s.trip.Rounds[idx+1:]...)
	delete(s.session.ViewModes, id)
	if s.session.OpenRoundID == id {
		s.session.OpenRoundID = s.latestRoundID()
	}
	return nil
}

// SetScore sanitizes raw and stores it as player's score on hole (1-based).
func (s *Store) SetScore(id rounddomain.RoundID, player string, hole int, raw string) (rounddomain.Cell, error) {
	r, err := s.Round(id)
	if err != nil {
		return "", err
	}
	row, ok := r.Scores[player]
	if !ok {
		return "", playerNotFound(s.trip.Roster, player)
	}
	if err := checkHole(r, hole); err != nil {
		return "", err
	}
	cell := rounddomain.SanitizeScore(raw)
	row[hole-1] = cell
	return cell, nil
}

// SetPar sanitizes raw and stores it as the par of hole (1-based).
func (s *Store) SetPar(id rounddomain.RoundID, hole int, raw string) (rounddomain.Cell, error) {
	r, err := s.Round(id)
	if err != nil {
		return "", err
	}
	if err := checkHole(r, hole); err != nil {
		return "", err
	}
	cell := rounddomain.SanitizePar(raw)
	r.Par[hole-1] = cell
	return cell, nil
}

// SetHandicap sanitizes raw and stores it as player's handicap for the round.
func (s *Store) SetHandicap(id rounddomain.RoundID, player, raw string) (rounddomain.Cell, error) {
	r, err := s.Round(id)
	if err != nil {
		return "", err
	}
	if _, ok := r.HCP[player]; !ok {
		return "", playerNotFound(s.trip.Roster, player)
	}
	cell := rounddomain.SanitizeHandicap(raw)
	r.HCP[player] = cell
	return cell, nil
}

// ApplyParTemplate overwrites the round's par with the template for totalPar.
func (s *Store) ApplyParTemplate(id rounddomain.RoundID, totalPar int) error {
	r, err := s.Round(id)
	if err != nil {
		return err
	}
	r.Par = rounddomain.ParCells(rounddomain.BuildParTemplate(totalPar, r.Holes))
	return nil
}

// SetViewMode records how a round is presented.
func (s *Store) SetViewMode(id rounddomain.RoundID, mode ViewMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidViewMode, mode)
	}
	if _, err := s.Round(id); err != nil {
		return err
	}
	s.session.ViewModes[id] = mode
	return nil
}

// OpenRound marks id as the active round.
func (s *Store) OpenRound(id rounddomain.RoundID) error {
	if _, err := s.Round(id); err != nil {
		return err
	}
	s.session.OpenRoundID = id
	return nil
}

func (s *Store) latestRoundID() rounddomain.RoundID {
	if n := len(s.trip.Rounds); n > 0 {
		return s.trip.Rounds[n-1].ID
	}
	return ""
}

func checkHole(r *rounddomain.Round, hole int) error {
	if hole < 1 || hole > r.Holes {
		return fmt.Errorf("%w: %d of %d", ErrHoleOutOfRange, hole, r.Holes)
	}
	return nil
}
