package roundservice

import "errors"

// Domain errors for the round service. Cell edits never fail on content; these
// cover structural problems such as unknown rounds or players.
var (
	// ErrTripNotFound indicates no trip is stored under the id.
	ErrTripNotFound = errors.New("trip not found")

	// ErrRoundNotFound indicates a round does not exist on the trip.
	ErrRoundNotFound = errors.New("round not found")

	// ErrEmptyRoster indicates a round was requested before any player joined.
	ErrEmptyRoster = errors.New("roster is empty")

	// ErrInvalidHoles indicates a hole count other than 9 or 18.
	ErrInvalidHoles = errors.New("holes must be 9 or 18")

	// ErrHoleOutOfRange indicates a hole index outside the round.
	ErrHoleOutOfRange = errors.New("hole out of range")

	// ErrPlayerNotFound indicates the player is not on the roster.
	ErrPlayerNotFound = errors.New("player not found")

	// ErrDuplicatePlayer indicates the name is already on the roster.
	ErrDuplicatePlayer = errors.New("player already on roster")

	// ErrInvalidPlayerName indicates a blank player name.
	ErrInvalidPlayerName = errors.New("player name cannot be empty")

	// ErrRosterFull indicates the roster is at its size limit.
	ErrRosterFull = errors.New("roster is full")

	// ErrInvalidViewMode indicates an unknown view mode.
	ErrInvalidViewMode = errors.New("invalid view mode")

	// ErrUnsupportedScorecard indicates an import file that could not be used.
	ErrUnsupportedScorecard = errors.New("unsupported scorecard")

	// ErrURLImportDisabled indicates no hosts are allowed for scorecard links.
	ErrURLImportDisabled = errors.New("scorecard links are not enabled")

	// ErrInvalidScorecardURL indicates a link that cannot be imported.
	ErrInvalidScorecardURL = errors.New("invalid scorecard link")

	// ErrScorecardTooLarge indicates a downloaded scorecard over the size limit.
	ErrScorecardTooLarge = errors.New("scorecard file too large")

	// ErrScorecardDownload indicates the scorecard host could not serve the file.
	ErrScorecardDownload = errors.New("scorecard download failed")
)
