package parsers

// Parser reads an uploaded scorecard file.
type Parser interface {
	// Parse reads scorecard data and returns a ParsedScorecard.
	// fileName is used only in error messages.
	Parse(fileData []byte, fileName string) (*ParsedScorecard, error)
}

// ParserFactory picks a Parser for a file name.
type ParserFactory interface {
	GetParser(fileName string) (Parser, error)
}

// ParsedScorecard is a scorecard as read from a file. Par and hole cells are
// kept as trimmed text so unset holes stay empty rather than becoming zero.
type ParsedScorecard struct {
	ParScores    []string
	PlayerScores []PlayerScore
}

// Holes returns the number of holes on the card.
func (p *ParsedScorecard) Holes() int {
	return len(p.ParScores)
}

// PlayerScore is one player row from a scorecard.
type PlayerScore struct {
	PlayerName string
	HoleScores []string
	Handicap   string
	Total      int
}
