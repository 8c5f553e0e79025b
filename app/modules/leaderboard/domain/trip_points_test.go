package leaderboarddomain

import (
	"testing"

	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
	"github.com/google/go-cmp/cmp"
)

func TestCalculateRoundPoints(t *testing.T) {
	roster := rounddomain.Roster{"Amy", "Ben", "Cal", "Dee"}
	r := par72Round(roster)
	setScores(r, "Amy", "3")
	setScores(r, "Ben", "4")
	setScores(r, "Cal", "4")

	got := CalculateRoundPoints(Rank(roster, r, rounddomain.EighteenHoles))
	want := map[string]MatchupResult{
		"Amy": {Wins: 2},
		"Ben": {Halves: 1, Losses: 1},
		"Cal": {Halves: 1, Losses: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round points (-want +got):\n%s", diff)
	}
	if got["Amy"].Points() != 4 || got["Ben"].Points() != 1 {
		t.Fatalf("unexpected points: Amy %d, Ben %d", got["Amy"].Points(), got["Ben"].Points())
	}
}

func TestRankTrip(t *testing.T) {
	roster := rounddomain.Roster{"Amy", "Ben", "Cal"}
	trip := &rounddomain.Trip{Roster: roster}

	day1 := par72Round(roster)
	setScores(day1, "Amy", repeat("4", 18)...)
	setScores(day1, "Ben", repeat("5", 18)...)
	setScores(day1, "Cal", repeat("6", 18)...)

	day2 := par72Round(roster)
	setScores(day2, "Amy", repeat("5", 18)...)
	setScores(day2, "Ben", repeat("4", 18)...)

	trip.Rounds = []*rounddomain.Round{day1, day2}

	got := RankTrip(trip)
	// Amy and Ben each finish with two wins and a loss; Cal played once.
	names := make([]string, len(got))
	for i, st := range got {
		names[i] = st.Player
	}
	if diff := cmp.Diff([]string{"Amy", "Ben", "Cal"}, names); diff != "" {
		t.Fatalf("standings (-want +got):\n%s", diff)
	}
	if got[0].Position != 1 || got[1].Position != 1 {
		t.Fatalf("expected Amy and Ben to share first, got %d and %d", got[0].Position, got[1].Position)
	}
	if got[0].Points() != 4 || got[0].Rounds != 2 {
		t.Fatalf("unexpected Amy standing %+v", got[0])
	}
	if got[2].Position != 3 || got[2].Points() != 0 || got[2].Rounds != 1 || got[2].Losses != 2 {
		t.Fatalf("unexpected Cal standing %+v", got[2])
	}
}

func TestRankTripSkipsPlayersWithoutScores(t *testing.T) {
	roster := rounddomain.Roster{"Amy", "Ben"}
	r := par72Round(roster)
	setScores(r, "Amy", "4")
	got := RankTrip(&rounddomain.Trip{Roster: roster, Rounds: []*rounddomain.Round{r}})
	if len(got) != 1 || got[0].Player != "Amy" || got[0].Points() != 0 {
		t.Fatalf("unexpected standings %+v", got)
	}
	if RankTrip(nil) != nil {
		t.Fatal("expected nil standings for nil trip")
	}
}
