package loader

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func decFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

const sampleCSV = `supplier,category,amount,date,location
Acme,IT,100.00,2025-01-10,Austin
Globex,Office,"1,250.50",2025-02-15,Boston
,IT,$75.00,2025-03-20,
Acme,IT,100.00,2025-01-10,Austin
`

func TestLoad_CSV(t *testing.T) {
	res, err := Load(strings.NewReader(sampleCSV), "csv", Options{})
	require.NoError(t, err)

	assert.NotEmpty(t, res.BatchID)
	assert.Equal(t, 4, res.Total)
	assert.Equal(t, 4, res.Imported)
	assert.Equal(t, 0, res.Failed)
	require.Len(t, res.Records, 4)

	// Currency symbols and thousands separators are stripped.
	assert.True(t, res.Records[1].Amount.Equal(decFromString(t, "1250.50")))
	assert.True(t, res.Records[2].Amount.Equal(decFromString(t, "75.00")))

	// Blank fields survive untouched; sentinel substitution is the
	// aggregation core's job, not the loader's.
	assert.Equal(t, "", res.Records[2].Supplier)
	assert.Equal(t, "", res.Records[2].Location)
}

func TestLoad_SkipDuplicates(t *testing.T) {
	res, err := Load(strings.NewReader(sampleCSV), "csv", Options{SkipDuplicates: true})
	require.NoError(t, err)

	assert.Equal(t, 3, res.Imported)
	assert.Equal(t, 1, res.Duplicates)
	assert.Len(t, res.Records, 3)
}

func TestLoad_MissingRequiredColumns(t *testing.T) {
	csv := "supplier,amount\nAcme,100\n"

	_, err := Load(strings.NewReader(csv), "csv", Options{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required columns: category, date")
}

func TestLoad_RowErrorsCollected(t *testing.T) {
	csv := strings.Join([]string{
		"supplier,category,amount,date",
		"Acme,IT,100.00,2025-01-10",
		"Globex,IT,not-a-number,2025-01-11",
		"Initech,IT,50.00,someday",
		"Hooli,IT,-20.00,2025-01-12",
	}, "\n")

	res, err := Load(strings.NewReader(csv), "csv", Options{})
	require.NoError(t, err, "row problems must not fail the batch")

	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 3, res.Failed)
	require.Len(t, res.Errors, 3)
	assert.Equal(t, 3, res.Errors[0].Row)
	assert.Contains(t, res.Errors[0].Message, "parsing amount")
	assert.Contains(t, res.Errors[1].Message, "unrecognized date")
	assert.Contains(t, res.Errors[2].Message, "negative amount")
}

func TestLoad_DateFormats(t *testing.T) {
	csv := strings.Join([]string{
		"supplier,category,amount,date",
		"A,IT,1.00,2025-01-10",
		"B,IT,1.00,01/15/2025",
		"C,IT,1.00,2025/01/20",
		`D,IT,1.00,"Jan 25, 2025"`,
	}, "\n")

	res, err := Load(strings.NewReader(csv), "csv", Options{})
	require.NoError(t, err)

	require.Equal(t, 4, res.Imported)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), res.Records[1].Date)
	assert.Equal(t, time.Date(2025, 1, 25, 0, 0, 0, 0, time.UTC), res.Records[3].Date)
}

func TestLoad_ExtraDateFormatOption(t *testing.T) {
	csv := "supplier,category,amount,date\nA,IT,1.00,10.01.2025\n"

	res, err := Load(strings.NewReader(csv), "csv", Options{DateFormats: []string{"02.01.2006"}})
	require.NoError(t, err)

	require.Equal(t, 1, res.Imported)
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), res.Records[0].Date)
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	_, err := Load(strings.NewReader(""), "pdf", Options{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported format "pdf"`)
}

func TestLoad_HeaderCaseInsensitive(t *testing.T) {
	csv := "Supplier, CATEGORY ,Amount,Date\nAcme,IT,5.00,2025-01-01\n"

	res, err := Load(strings.NewReader(csv), "csv", Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
}

func TestLoad_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"supplier", "category", "amount", "date"},
		{"Acme", "IT", "100.00", "2025-01-10"},
		{"Globex", "Office", "200.00", "2025-02-15"},
	}
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	res, err := Load(&buf, "xlsx", Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, "Acme", res.Records[0].Supplier)
	assert.True(t, res.Records[1].Amount.Equal(decFromString(t, "200.00")))
}
