package roundservice

import (
	"errors"
	"fmt"
	"testing"

	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
	"github.com/Black-And-White-Club/golf-trip/app/modules/round/infrastructure/parsers"
	scoredomain "github.com/Black-And-White-Club/golf-trip/app/modules/score/domain"
	"github.com/google/go-cmp/cmp"
)

func newStore(t *testing.T, players ...string) *Store {
	t.Helper()
	st := NewStore(&rounddomain.Trip{ID: rounddomain.NewTripID(), Name: "test"})
	for _, p := range players {
		if err := st.AddPlayer(p); err != nil {
			t.Fatalf("AddPlayer(%q) failed: %v", p, err)
		}
	}
	return st
}

func TestStore_AliceAndBobEndToEnd(t *testing.T) {
	st := newStore(t, "Alice", "Bob")
	r, err := st.CreateRound("", rounddomain.EighteenHoles, 72)
	if err != nil {
		t.Fatalf("CreateRound failed: %v", err)
	}
	if r.Name != "Round 1" {
		t.Errorf("expected default name Round 1, got %q", r.Name)
	}

	for hole := 1; hole <= 18; hole++ {
		if _, err := st.SetScore(r.ID, "Alice", hole, "4"); err != nil {
			t.Fatalf("SetScore hole %d failed: %v", hole, err)
		}
	}

	alice := scoredomain.ComputePlayerTotals(r, "Alice", r.Holes)
	if alice.Filled != 18 || alice.Total != 72 || !alice.ParReady {
		t.Fatalf("unexpected Alice totals: %+v", alice)
	}
	if got := scoredomain.FormatVsPar(alice.Vs); got != "E" {
		t.Errorf("expected E, got %q", got)
	}

	bob := scoredomain.ComputePlayerTotals(r, "Bob", r.Holes)
	if bob.Filled != 0 {
		t.Errorf("expected Bob to have no filled holes, got %d", bob.Filled)
	}
}

func TestStore_RemovePlayerReconcilesRounds(t *testing.T) {
	st := newStore(t, "Alice", "Bob", "Carol")
	r, err := st.CreateRound("Day 1", rounddomain.NineHoles, 0)
	if err != nil {
		t.Fatalf("CreateRound failed: %v", err)
	}
	for i, p := range []string{"Alice", "Bob", "Carol"} {
		if _, err := st.SetScore(r.ID, p, 1, fmt.Sprint(3+i)); err != nil {
			t.Fatalf("SetScore failed: %v", err)
		}
		if _, err := st.SetHandicap(r.ID, p, fmt.Sprint(10+i)); err != nil {
			t.Fatalf("SetHandicap failed: %v", err)
		}
	}
	before := r.Clone()

	if err := st.RemovePlayer("Bob"); err != nil {
		t.Fatalf("RemovePlayer failed: %v", err)
	}

	if _, ok := r.Scores["Bob"]; ok {
		t.Error("Bob's scores should be gone")
	}
	if _, ok := r.HCP["Bob"]; ok {
		t.Error("Bob's handicap should be gone")
	}
	for _, p := range []string{"Alice", "Carol"} {
		if diff := cmp.Diff(before.Scores[p], r.Scores[p]); diff != "" {
			t.Errorf("%s scores changed (-want +got):\n%s", p, diff)
		}
		if before.HCP[p] != r.HCP[p] {
			t.Errorf("%s handicap changed from %q to %q", p, before.HCP[p], r.HCP[p])
		}
	}
	if diff := cmp.Diff(rounddomain.Roster{"Alice", "Carol"}, st.Roster()); diff != "" {
		t.Errorf("roster (-want +got):\n%s", diff)
	}
}

func TestStore_AddPlayerExtendsExistingRounds(t *testing.T) {
	st := newStore(t, "Alice")
	r, err := st.CreateRound("", rounddomain.NineHoles, 36)
	if err != nil {
		t.Fatalf("CreateRound failed: %v", err)
	}
	if _, err := st.SetScore(r.ID, "Alice", 2, "5"); err != nil {
		t.Fatalf("SetScore failed: %v", err)
	}

	if err := st.AddPlayer("  Dana  "); err != nil {
		t.Fatalf("AddPlayer failed: %v", err)
	}
	row, ok := r.Scores["Dana"]
	if !ok || len(row) != rounddomain.NineHoles {
		t.Fatalf("expected empty 9-hole row for Dana, got %v", row)
	}
	if r.Scores["Alice"][1] != "5" {
		t.Errorf("Alice's score was disturbed: %v", r.Scores["Alice"])
	}
}

func TestStore_AddPlayerValidation(t *testing.T) {
	tests := []struct {
		name    string
		add     string
		wantErr error
	}{
		{name: "blank name", add: "   ", wantErr: ErrInvalidPlayerName},
		{name: "duplicate", add: "Alice", wantErr: ErrDuplicatePlayer},
		{name: "duplicate after trim", add: " Alice ", wantErr: ErrDuplicatePlayer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newStore(t, "Alice")
			err := st.AddPlayer(tt.add)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if len(st.Roster()) != 1 {
				t.Errorf("roster changed: %v", st.Roster())
			}
		})
	}
}

func TestStore_RosterCap(t *testing.T) {
	st := newStore(t)
	for i := 0; i < rounddomain.MaxRosterSize; i++ {
		if err := st.AddPlayer(fmt.Sprintf("Player %d", i+1)); err != nil {
			t.Fatalf("AddPlayer %d failed: %v", i+1, err)
		}
	}
	if err := st.AddPlayer("One Too Many"); !errors.Is(err, ErrRosterFull) {
		t.Fatalf("expected ErrRosterFull, got %v", err)
	}
	if len(st.Roster()) != rounddomain.MaxRosterSize {
		t.Errorf("expected %d players, got %d", rounddomain.MaxRosterSize, len(st.Roster()))
	}
}

func TestStore_CreateRound(t *testing.T) {
	t.Run("empty roster is refused without mutation", func(t *testing.T) {
		st := newStore(t)
		if _, err := st.CreateRound("Day 1", rounddomain.EighteenHoles, 72); !errors.Is(err, ErrEmptyRoster) {
			t.Fatalf("expected ErrEmptyRoster, got %v", err)
		}
		if len(st.Rounds()) != 0 {
			t.Errorf("expected no rounds, got %d", len(st.Rounds()))
		}
		if st.Session().OpenRoundID != "" {
			t.Errorf("expected no open round, got %q", st.Session().OpenRoundID)
		}
	})

	t.Run("invalid hole count", func(t *testing.T) {
		st := newStore(t, "Alice")
		if _, err := st.CreateRound("", 12, 0); !errors.Is(err, ErrInvalidHoles) {
			t.Fatalf("expected ErrInvalidHoles, got %v", err)
		}
	})

	t.Run("new round is open in scores mode", func(t *testing.T) {
		st := newStore(t, "Alice")
		first, _ := st.CreateRound("", rounddomain.NineHoles, 0)
		if err := st.SetViewMode(first.ID, ViewLeaderboard); err != nil {
			t.Fatalf("SetViewMode failed: %v", err)
		}
		second, err := st.CreateRound("", rounddomain.NineHoles, 0)
		if err != nil {
			t.Fatalf("CreateRound failed: %v", err)
		}
		sess := st.Session()
		if sess.OpenRoundID != second.ID {
			t.Errorf("expected second round open, got %q", sess.OpenRoundID)
		}
		if sess.ViewMode(second.ID) != ViewScores {
			t.Errorf("expected scores mode, got %q", sess.ViewMode(second.ID))
		}
		if sess.ViewMode(first.ID) != ViewLeaderboard {
			t.Errorf("first round lost its mode")
		}
		if second.Name != "Round 2" {
			t.Errorf("expected Round 2, got %q", second.Name)
		}
	})

	t.Run("par template fills par", func(t *testing.T) {
		st := newStore(t, "Alice")
		r, _ := st.CreateRound("", rounddomain.EighteenHoles, 71)
		total, ok := rounddomain.ParTotal(r, r.Holes)
		if !ok || total != 71 {
			t.Fatalf("expected par 71, got %d (%v)", total, ok)
		}
	})
}

func TestStore_RemoveRound(t *testing.T) {
	st := newStore(t, "Alice")
	a, _ := st.CreateRound("A", rounddomain.NineHoles, 0)
	b, _ := st.CreateRound("B", rounddomain.NineHoles, 0)
	c, _ := st.CreateRound("C", rounddomain.NineHoles, 0)
	_ = st.SetViewMode(c.ID, ViewLeaderboard)

	if err := st.RemoveRound(c.ID); err != nil {
		t.Fatalf("RemoveRound failed: %v", err)
	}
	sess := st.Session()
	if sess.OpenRoundID != b.ID {
		t.Errorf("expected latest remaining round %q open, got %q", b.ID, sess.OpenRoundID)
	}
	if _, ok := sess.ViewModes[c.ID]; ok {
		t.Error("view mode of removed round should be discarded")
	}

	_ = st.OpenRound(a.ID)
	if err := st.RemoveRound(b.ID); err != nil {
		t.Fatalf("RemoveRound failed: %v", err)
	}
	if st.Session().OpenRoundID != a.ID {
		t.Errorf("removing a closed round must not move the open pointer")
	}

	if err := st.RemoveRound(b.ID); !errors.Is(err, ErrRoundNotFound) {
		t.Errorf("expected ErrRoundNotFound, got %v", err)
	}

	_ = st.RemoveRound(a.ID)
	if st.Session().OpenRoundID != "" {
		t.Errorf("expected no open round, got %q", st.Session().OpenRoundID)
	}
}

func TestStore_CellEdits(t *testing.T) {
	st := newStore(t, "Alice")
	r, _ := st.CreateRound("", rounddomain.NineHoles, 0)

	tests := []struct {
		name string
		set  func() (rounddomain.Cell, error)
		want rounddomain.Cell
	}{
		{name: "score keeps two digits", set: func() (rounddomain.Cell, error) { return st.SetScore(r.ID, "Alice", 1, "1a23") }, want: "12"},
		{name: "score clears", set: func() (rounddomain.Cell, error) { return st.SetScore(r.ID, "Alice", 1, "") }, want: ""},
		{name: "par strips letters", set: func() (rounddomain.Cell, error) { return st.SetPar(r.ID, 9, "p5") }, want: "5"},
		{name: "handicap keeps leading minus", set: func() (rounddomain.Cell, error) { return st.SetHandicap(r.ID, "Alice", "-2x") }, want: "-2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.set()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := st.SetScore(r.ID, "Alice", 10, "4"); !errors.Is(err, ErrHoleOutOfRange) {
		t.Errorf("expected ErrHoleOutOfRange, got %v", err)
	}
	if _, err := st.SetScore(r.ID, "Alice", 0, "4"); !errors.Is(err, ErrHoleOutOfRange) {
		t.Errorf("expected ErrHoleOutOfRange for hole 0, got %v", err)
	}
	if _, err := st.SetScore(r.ID, "Zoe", 1, "4"); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("expected ErrPlayerNotFound, got %v", err)
	}
	if _, err := st.SetHandicap(r.ID, "Zoe", "4"); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("expected ErrPlayerNotFound, got %v", err)
	}
	if _, err := st.SetPar("missing", 1, "4"); !errors.Is(err, ErrRoundNotFound) {
		t.Errorf("expected ErrRoundNotFound, got %v", err)
	}
}

func TestStore_RenamePlayer(t *testing.T) {
	st := newStore(t, "Alice", "Bob")
	r, _ := st.CreateRound("", rounddomain.NineHoles, 0)
	_, _ = st.SetScore(r.ID, "Alice", 3, "6")
	_, _ = st.SetHandicap(r.ID, "Alice", "8")

	if err := st.RenamePlayer("Alice", "Alicia"); err != nil {
		t.Fatalf("RenamePlayer failed: %v", err)
	}
	if diff := cmp.Diff(rounddomain.Roster{"Alicia", "Bob"}, st.Roster()); diff != "" {
		t.Errorf("roster (-want +got):\n%s", diff)
	}
	if r.Scores["Alicia"][2] != "6" || r.HCP["Alicia"] != "8" {
		t.Errorf("cells did not move: scores=%v hcp=%q", r.Scores["Alicia"], r.HCP["Alicia"])
	}
	if _, ok := r.Scores["Alice"]; ok {
		t.Error("old key should be gone")
	}

	if err := st.RenamePlayer("Bob", "Alicia"); !errors.Is(err, ErrDuplicatePlayer) {
		t.Errorf("expected ErrDuplicatePlayer, got %v", err)
	}
	if err := st.RenamePlayer("Nobody", "X"); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("expected ErrPlayerNotFound, got %v", err)
	}
}

func TestStore_PlayerNamesAreTrimmed(t *testing.T) {
	st := newStore(t, "Alice", "Bob")
	r, _ := st.CreateRound("", rounddomain.NineHoles, 0)
	_, _ = st.SetScore(r.ID, "Alice", 1, "5")

	if err := st.RenamePlayer("  Alice ", "Alicia"); err != nil {
		t.Fatalf("RenamePlayer failed: %v", err)
	}
	if r.Scores["Alicia"][0] != "5" {
		t.Errorf("cells did not move: %v", r.Scores["Alicia"])
	}
	if err := st.RemovePlayer(" Bob\t"); err != nil {
		t.Fatalf("RemovePlayer failed: %v", err)
	}
	if diff := cmp.Diff(rounddomain.Roster{"Alicia"}, st.Roster()); diff != "" {
		t.Errorf("roster (-want +got):\n%s", diff)
	}
	if _, ok := r.Scores["Bob"]; ok {
		t.Error("Bob's scores should be gone")
	}
}

func TestStore_LoadRepairs(t *testing.T) {
	trip := &rounddomain.Trip{
		ID:     rounddomain.NewTripID(),
		Roster: rounddomain.Roster{"Alice", "", "Alice", "Bob"},
		Rounds: []*rounddomain.Round{
			{
				ID:     "r1",
				Holes:  7,
				Par:    []rounddomain.Cell{"4", "x3"},
				Scores: map[string][]rounddomain.Cell{"Alice": {"4", "5a"}, "Ghost": {"3"}},
			},
			nil,
		},
	}

	st := &Store{}
	if !st.Load(trip) {
		t.Fatal("expected Load to report a repair")
	}
	if diff := cmp.Diff(rounddomain.Roster{"Alice", "Bob"}, st.Roster()); diff != "" {
		t.Errorf("roster (-want +got):\n%s", diff)
	}
	if len(st.Rounds()) != 1 {
		t.Fatalf("expected nil round dropped, got %d rounds", len(st.Rounds()))
	}
	r := st.Rounds()[0]
	if r.Holes != rounddomain.NineHoles {
		t.Errorf("expected 9 holes, got %d", r.Holes)
	}
	if r.Par[1] != "3" || len(r.Par) != 9 {
		t.Errorf("par not repaired: %v", r.Par)
	}
	if _, ok := r.Scores["Ghost"]; ok {
		t.Error("unknown player should be dropped")
	}
	if r.Scores["Alice"][1] != "5" || len(r.Scores["Bob"]) != 9 {
		t.Errorf("score rows not repaired: %v", r.Scores)
	}
	if st.Session().OpenRoundID != "r1" {
		t.Errorf("expected latest round open, got %q", st.Session().OpenRoundID)
	}

	if st.Load(st.Trip()) {
		t.Error("a canonical trip should load without repair")
	}
}

func TestStore_RestoreSession(t *testing.T) {
	st := newStore(t, "Alice")
	a, _ := st.CreateRound("", rounddomain.NineHoles, 0)
	b, _ := st.CreateRound("", rounddomain.NineHoles, 0)

	saved := NewSession()
	saved.OpenRoundID = a.ID
	saved.ViewModes[a.ID] = ViewLeaderboard
	saved.ViewModes["gone"] = ViewLeaderboard
	saved.ViewModes[b.ID] = "bogus"

	st.RestoreSession(saved)
	sess := st.Session()
	want := map[rounddomain.RoundID]ViewMode{a.ID: ViewLeaderboard}
	if diff := cmp.Diff(want, sess.ViewModes); diff != "" {
		t.Errorf("view modes (-want +got):\n%s", diff)
	}
	if sess.OpenRoundID != a.ID {
		t.Errorf("expected %q open, got %q", a.ID, sess.OpenRoundID)
	}

	if err := st.SetViewMode(a.ID, "grid"); !errors.Is(err, ErrInvalidViewMode) {
		t.Errorf("expected ErrInvalidViewMode, got %v", err)
	}
}

func TestStore_ImportScorecard(t *testing.T) {
	card := &parsers.ParsedScorecard{
		ParScores: []string{"4", "4", "3", "5", "4", "4", "3", "4", "5", "4"},
		PlayerScores: []parsers.PlayerScore{
			{PlayerName: "Alice", HoleScores: []string{"4", "5", "", "5x"}, Handicap: "12"},
			{PlayerName: " Eve ", HoleScores: []string{"3"}},
			{PlayerName: "Eve", HoleScores: []string{"9"}},
		},
	}

	st := newStore(t, "Alice", "Bob")
	r, added, err := st.ImportScorecard("", card)
	if err != nil {
		t.Fatalf("ImportScorecard failed: %v", err)
	}
	if added != 1 {
		t.Errorf("expected 1 new player, got %d", added)
	}
	if r.Holes != rounddomain.EighteenHoles {
		t.Errorf("expected 18 holes for a 10-hole card, got %d", r.Holes)
	}
	if diff := cmp.Diff(rounddomain.Roster{"Alice", "Bob", "Eve"}, st.Roster()); diff != "" {
		t.Errorf("roster (-want +got):\n%s", diff)
	}
	if r.Scores["Alice"][3] != "5" || r.Scores["Alice"][2] != "" || r.HCP["Alice"] != "12" {
		t.Errorf("Alice row not sanitized: %v hcp=%q", r.Scores["Alice"], r.HCP["Alice"])
	}
	if r.Scores["Eve"][0] != "3" {
		t.Errorf("first Eve row should win, got %v", r.Scores["Eve"])
	}
	if len(r.Scores["Bob"]) != rounddomain.EighteenHoles {
		t.Errorf("Bob should have an empty 18-hole row")
	}
	if r.Par[9] != "4" || r.Par[10] != "" {
		t.Errorf("unexpected par %v", r.Par)
	}
	if st.Session().OpenRoundID != r.ID {
		t.Error("imported round should be open")
	}
}

func TestStore_ExportThenImportKeepsHoles(t *testing.T) {
	t.Run("blank par cell", func(t *testing.T) {
		st := newStore(t, "Alice")
		r, err := st.CreateRound("Day 1", rounddomain.EighteenHoles, 72)
		if err != nil {
			t.Fatalf("CreateRound failed: %v", err)
		}
		if _, err := st.SetPar(r.ID, 5, ""); err != nil {
			t.Fatalf("SetPar failed: %v", err)
		}
		for hole := 1; hole <= 18; hole++ {
			if _, err := st.SetScore(r.ID, "Alice", hole, fmt.Sprint((hole-1)%9+1)); err != nil {
				t.Fatalf("SetScore hole %d failed: %v", hole, err)
			}
		}

		got := reimport(t, st, r)
		if got.Holes != rounddomain.EighteenHoles {
			t.Fatalf("expected 18 holes, got %d", got.Holes)
		}
		if diff := cmp.Diff(r.Par, got.Par); diff != "" {
			t.Errorf("par (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(r.Scores["Alice"], got.Scores["Alice"]); diff != "" {
			t.Errorf("Alice scores (-want +got):\n%s", diff)
		}
	})

	t.Run("no par", func(t *testing.T) {
		st := newStore(t, "Alice", "Bob")
		r, err := st.CreateRound("Day 2", rounddomain.NineHoles, 0)
		if err != nil {
			t.Fatalf("CreateRound failed: %v", err)
		}
		_, _ = st.SetScore(r.ID, "Bob", 2, "4")
		_, _ = st.SetHandicap(r.ID, "Bob", "7")

		got := reimport(t, st, r)
		if got.Holes != rounddomain.NineHoles {
			t.Fatalf("expected 9 holes, got %d", got.Holes)
		}
		for i, c := range got.Par {
			if !c.IsEmpty() {
				t.Errorf("par %d should be unset, got %q", i+1, c)
			}
		}
		if diff := cmp.Diff(r.Scores["Bob"], got.Scores["Bob"]); diff != "" {
			t.Errorf("Bob scores (-want +got):\n%s", diff)
		}
		if got.HCP["Bob"] != "7" {
			t.Errorf("expected Bob's handicap 7, got %q", got.HCP["Bob"])
		}
	})
}

// reimport writes r as XLSX and imports the file back into st.
func reimport(t *testing.T, st *Store, r *rounddomain.Round) *rounddomain.Round {
	t.Helper()
	data, err := parsers.WriteXLSX(buildExport(st.Roster(), r))
	if err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}
	card, err := parsers.NewXLSXParser().Parse(data, "export.xlsx")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	got, added, err := st.ImportScorecard("", card)
	if err != nil {
		t.Fatalf("ImportScorecard failed: %v", err)
	}
	if added != 0 {
		t.Errorf("expected no new players, got %d", added)
	}
	return got
}

func TestStore_ImportScorecardRejects(t *testing.T) {
	t.Run("roster overflow changes nothing", func(t *testing.T) {
		st := newStore(t)
		for i := 0; i < rounddomain.MaxRosterSize-1; i++ {
			_ = st.AddPlayer(fmt.Sprintf("P%d", i))
		}
		card := &parsers.ParsedScorecard{
			ParScores: []string{"4", "4", "4"},
			PlayerScores: []parsers.PlayerScore{
				{PlayerName: "New 1"}, {PlayerName: "New 2"},
			},
		}
		if _, _, err := st.ImportScorecard("", card); !errors.Is(err, ErrRosterFull) {
			t.Fatalf("expected ErrRosterFull, got %v", err)
		}
		if len(st.Roster()) != rounddomain.MaxRosterSize-1 || len(st.Rounds()) != 0 {
			t.Errorf("store mutated: %d players, %d rounds", len(st.Roster()), len(st.Rounds()))
		}
	})

	t.Run("no players", func(t *testing.T) {
		st := newStore(t, "Alice")
		card := &parsers.ParsedScorecard{ParScores: []string{"4"}, PlayerScores: []parsers.PlayerScore{{PlayerName: "  "}}}
		if _, _, err := st.ImportScorecard("", card); !errors.Is(err, ErrUnsupportedScorecard) {
			t.Fatalf("expected ErrUnsupportedScorecard, got %v", err)
		}
	})

	t.Run("nil card", func(t *testing.T) {
		st := newStore(t, "Alice")
		if _, _, err := st.ImportScorecard("", nil); !errors.Is(err, ErrUnsupportedScorecard) {
			t.Fatalf("expected ErrUnsupportedScorecard, got %v", err)
		}
	})
}
