package loader

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVParser parses comma-separated spend exports.
type CSVParser struct{}

// Format returns the parser name.
func (p *CSVParser) Format() string { return "csv" }

// Parse reads every row of a CSV file, header included. Rows may have
// varying field counts; normalization handles short rows.
func (p *CSVParser) Parse(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading spend CSV: %w", err)
	}
	return rows, nil
}
