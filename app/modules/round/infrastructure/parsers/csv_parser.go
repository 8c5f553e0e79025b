package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVParser implements the Parser interface for CSV and TSV scorecard files.
type CSVParser struct{}

// NewCSVParser creates a new CSV parser instance.
func NewCSVParser() *CSVParser {
	return &CSVParser{}
}

// Parse reads CSV data and returns a ParsedScorecard. The delimiter (comma or
// tab) is detected from the first lines.
func (p *CSVParser) Parse(fileData []byte, fileName string) (*ParsedScorecard, error) {
	cleaned, delimiter, err := preprocessCSVData(fileData)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(strings.NewReader(cleaned))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV %s: %w", fileName, err)
		}
		if isBlankRow(record) {
			continue
		}
		rows = append(rows, record)
	}

	return parseRows(rows, "CSV")
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
