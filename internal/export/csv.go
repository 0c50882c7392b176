package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/spendlens-dev/spendlens/internal/model"
)

// Header is the CSV header for exported transactions.
const Header = "supplier,category,location,date,amount,description,subcategory,fiscal_year,spend_band,payment_method,invoice_number"

const (
	numFields  = 11
	dateFormat = "2006-01-02"

	colSupplier      = 0
	colCategory      = 1
	colLocation      = 2
	colDate          = 3
	colAmount        = 4
	colDescription   = 5
	colSubcategory   = 6
	colFiscalYear    = 7
	colSpendBand     = 8
	colPaymentMethod = 9
	colInvoiceNumber = 10
)

// WriteCSV writes records to w as CSV, header included. Records are
// written in the order given, so a filtered dataset exports in its
// original insertion order.
func WriteCSV(w io.Writer, records []model.Record) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, r := range records {
		if err := cw.Write(MarshalRecord(r)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalRecord converts a Record to a CSV row ([]string).
func MarshalRecord(r model.Record) []string {
	row := make([]string, numFields)
	row[colSupplier] = r.Supplier
	row[colCategory] = r.Category
	row[colLocation] = r.Location
	row[colDate] = r.Date.Format(dateFormat)
	row[colAmount] = r.Amount.StringFixed(2)
	row[colDescription] = r.Description
	row[colSubcategory] = r.Subcategory
	row[colFiscalYear] = r.FiscalYear
	row[colSpendBand] = r.SpendBand
	row[colPaymentMethod] = r.PaymentMethod
	row[colInvoiceNumber] = r.InvoiceNumber
	return row
}
