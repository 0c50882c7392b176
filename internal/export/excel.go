package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/spendlens-dev/spendlens/internal/aggregate"
	"github.com/spendlens-dev/spendlens/internal/model"
)

// WriteXLSX writes records to w as an Excel workbook with a styled header
// and a totals row.
func WriteXLSX(w io.Writer, records []model.Record, title string) error {
	f := excelize.NewFile()
	defer f.Close()

	// Sheet names are capped at 31 chars by the format.
	sheet := title
	if len(sheet) > 31 {
		sheet = sheet[:31]
	}
	if sheet == "" {
		sheet = "Transactions"
	}
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K"}
	widths := []float64{24, 20, 16, 12, 14, 32, 18, 12, 12, 16, 16}
	for i, col := range columns {
		if err := f.SetColWidth(sheet, col, col, widths[i]); err != nil {
			return fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for i, name := range strings.Split(Header, ",") {
		cell := fmt.Sprintf("%s1", columns[i])
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("write header cell %s: %w", cell, err)
		}
	}
	lastCol := columns[len(columns)-1]
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, r := range records {
		rowNum := i + 2
		values := MarshalRecord(r)
		for j, col := range columns {
			cell := fmt.Sprintf("%s%d", col, rowNum)
			var v any = values[j]
			if j == colAmount {
				v = r.Amount.InexactFloat64()
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write cell %s: %w", cell, err)
			}
		}
	}

	// Totals row under the data.
	totals := aggregate.Totals(records)
	totalRow := len(records) + 2
	if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "Total"); err != nil {
		return fmt.Errorf("write totals label: %w", err)
	}
	if err := f.SetCellValue(sheet, fmt.Sprintf("%s%d", columns[colAmount], totalRow), totals.Amount.InexactFloat64()); err != nil {
		return fmt.Errorf("write totals amount: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
