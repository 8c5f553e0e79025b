package leaderboardservice

import (
	leaderboarddomain "github.com/Black-And-White-Club/golf-trip/app/modules/leaderboard/domain"
	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
	scoredomain "github.com/Black-And-White-Club/golf-trip/app/modules/score/domain"
)

// View is the rendered leaderboard for one round. Undefined values are
// already formatted as placeholders so the view serialises cleanly.
type View struct {
	RoundID   rounddomain.RoundID       `json:"round_id"`
	RoundName string                    `json:"round_name"`
	Key       leaderboarddomain.SortKey `json:"key"`
	Holes     int                       `json:"holes"`
	ParTotal  int                       `json:"par_total,omitempty"`
	ParReady  bool                      `json:"par_ready"`
	Rows      []ViewRow                 `json:"rows"`
	Snapshot  string                    `json:"snapshot"`

	// Fingerprint changes whenever anything rendered above changes.
	Fingerprint string `json:"fingerprint"`
}

// ViewRow is one ranked player.
type ViewRow struct {
	Position int               `json:"position"`
	Player   string            `json:"player"`
	Filled   int               `json:"filled"`
	Out      int               `json:"out"`
	In       int               `json:"in"`
	Total    int               `json:"total"`
	Handicap string            `json:"handicap"`
	Net      string            `json:"net"`
	Score    string            `json:"score"`
	VsPar    string            `json:"vs_par"`
	Class    scoredomain.Class `json:"class"`
}

// StandingsView is the trip-long head-to-head competition.
type StandingsView struct {
	TripID rounddomain.TripID `json:"trip_id"`
	Rounds int                `json:"rounds"`
	Rows   []StandingRow      `json:"rows"`
}

// StandingRow is one player's trip standing.
type StandingRow struct {
	Position int    `json:"position"`
	Player   string `json:"player"`
	Rounds   int    `json:"rounds"`
	Wins     int    `json:"wins"`
	Halves   int    `json:"halves"`
	Losses   int    `json:"losses"`
	Points   int    `json:"points"`
}

// ChartPalette holds the colours used for rendered charts.
type ChartPalette struct {
	Background string
	PrimaryBar string
	LeaderBar  string
	TextColor  string
}

// DefaultPalette is the standard chart styling.
var DefaultPalette = ChartPalette{
	Background: "FFFFFF",
	PrimaryBar: "2E5E4E",
	LeaderBar:  "C9A227",
	TextColor:  "1F2933",
}
