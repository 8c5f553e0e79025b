package parsers

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// maxSheetName is the longest sheet name Excel accepts.
const maxSheetName = 31

// Export is a round laid out for a spreadsheet. Computed columns are already
// formatted by the caller.
type Export struct {
	RoundName string
	Holes     int
	Par       []string
	Rows      []ExportRow
}

// ExportRow is one player line of an exported round.
type ExportRow struct {
	Player   string
	Handicap string
	Cells    []string
	Out      string
	In       string
	Total    string
	Net      string
	VsPar    string
}

// Header returns the column titles: Name, hole numbers, then summary columns.
func (e *Export) Header() []string {
	header := make([]string, 0, e.Holes+7)
	header = append(header, "Name")
	for h := 1; h <= e.Holes; h++ {
		header = append(header, strconv.Itoa(h))
	}
	return append(header, "OUT", "IN", "TOT", "HCP", "NET", "VS")
}

// WriteXLSX renders e as a single-sheet workbook. The output reads back
// through XLSXParser.
func WriteXLSX(e *Export) ([]byte, error) {
	if e == nil {
		return nil, fmt.Errorf("nothing to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(e.RoundName)
	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	rows := [][]string{e.Header(), e.parRow()}
	for _, r := range e.Rows {
		row := make([]string, 0, e.Holes+7)
		row = append(row, r.Player)
		row = append(row, padCells(r.Cells, e.Holes)...)
		row = append(row, r.Out, r.In, r.Total, r.Handicap, r.Net, r.VsPar)
		rows = append(rows, row)
	}

	for idx, row := range rows {
		axis, err := excelize.CoordinatesToCellName(1, idx+1)
		if err != nil {
			return nil, err
		}
		cells := make([]interface{}, len(row))
		for i, val := range row {
			cells[i] = val
		}
		if err := f.SetSheetRow(sheet, axis, &cells); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", idx+1, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *Export) parRow() []string {
	row := make([]string, 0, e.Holes+1)
	row = append(row, "Par")
	return append(row, padCells(e.Par, e.Holes)...)
}

func padCells(cells []string, n int) []string {
	out := make([]string, n)
	copy(out, cells)
	return out
}

// sheetName strips characters Excel rejects and trims to the length limit.
func sheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\':
			return -1
		}
		return r
	}, strings.TrimSpace(name))
	name = strings.Trim(name, "'")
	if runes := []rune(name); len(runes) > maxSheetName {
		name = string(runes[:maxSheetName])
	}
	if name == "" {
		return "Round"
	}
	return name
}
