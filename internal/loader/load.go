package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendlens-dev/spendlens/internal/model"
)

// Options control row normalization.
type Options struct {
	SkipDuplicates bool
	DateFormats    []string // tried after the built-in formats
}

// RowError records one rejected input row. Row numbers are 1-based and
// include the header row, matching what users see in a spreadsheet.
type RowError struct {
	Row     int
	Message string
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

// Result is the outcome of one upload batch. Row-level problems are
// collected here rather than aborting the batch.
type Result struct {
	BatchID    string
	Records    []model.Record
	Total      int
	Imported   int
	Failed     int
	Duplicates int
	Errors     []RowError
}

var requiredColumns = []string{"supplier", "category", "amount", "date"}

var builtinDateFormats = []string{
	"2006-01-02",
	"01/02/2006",
	"2006/01/02",
	"Jan 2, 2006",
}

// Load parses and normalizes one uploaded spend file into records the
// analytics core can consume. File-level problems (unknown format, missing
// required columns, unreadable file) fail the whole batch; row-level
// problems are recorded and skipped.
func Load(r io.Reader, format string, opts Options) (*Result, error) {
	parser := DefaultRegistry().Get(format)
	if parser == nil {
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	rows, err := parser.Parse(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("file has no header row")
	}

	cols, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	formats := append(append([]string{}, builtinDateFormats...), opts.DateFormats...)

	res := &Result{
		BatchID: uuid.NewString(),
		Total:   len(rows) - 1,
	}
	seen := make(map[string]bool)
	for i, row := range rows[1:] {
		rowNum := i + 2 // header is row 1

		rec, err := buildRecord(cols, row, formats)
		if err != nil {
			res.Failed++
			res.Errors = append(res.Errors, RowError{Row: rowNum, Message: err.Error()})
			continue
		}

		if opts.SkipDuplicates {
			key := duplicateKey(rec)
			if seen[key] {
				res.Duplicates++
				continue
			}
			seen[key] = true
		}

		res.Records = append(res.Records, rec)
		res.Imported++
	}
	return res, nil
}

// LoadFile opens path and loads it, inferring the format from the file
// extension.
func LoadFile(path string, opts Options) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening spend file: %w", err)
	}
	defer f.Close()

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return Load(f, format, opts)
}

// mapColumns resolves header labels to column indexes. Matching is
// case-insensitive on trimmed labels.
func mapColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if name == "" {
			continue
		}
		if _, ok := cols[name]; !ok {
			cols[name] = i
		}
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

func buildRecord(cols map[string]int, row []string, dateFormats []string) (model.Record, error) {
	get := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	date, err := parseDate(get("date"), dateFormats)
	if err != nil {
		return model.Record{}, err
	}

	amount, err := parseAmount(get("amount"))
	if err != nil {
		return model.Record{}, err
	}

	// Blank supplier/category values are kept as-is; the aggregation core
	// buckets them under the Unknown sentinel.
	return model.Record{
		Supplier:      get("supplier"),
		Category:      get("category"),
		Location:      get("location"),
		Date:          date,
		Amount:        amount,
		Description:   get("description"),
		Subcategory:   get("subcategory"),
		FiscalYear:    get("fiscal_year"),
		SpendBand:     get("spend_band"),
		PaymentMethod: get("payment_method"),
		InvoiceNumber: get("invoice_number"),
	}, nil
}

func parseDate(value string, formats []string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}
	for _, layout := range formats {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

func parseAmount(value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Decimal{}, fmt.Errorf("missing amount")
	}
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(value)
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", value, err)
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("negative amount %q", value)
	}
	return amount, nil
}

func duplicateKey(r model.Record) string {
	return strings.Join([]string{
		r.Supplier,
		r.Category,
		r.Amount.String(),
		r.Date.Format("2006-01-02"),
	}, "|")
}
