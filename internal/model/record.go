package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Unknown is the sentinel grouping key for records missing a dimension
// value. Substitution happens at grouping time only; filters always match
// against the raw field.
const Unknown = "Unknown"

// Record is one normalized procurement transaction line. Optional fields
// are empty strings and are carried through untouched; the analytics core
// never interprets them.
type Record struct {
	Supplier string
	Category string
	Location string
	Date     time.Time
	Amount   decimal.Decimal

	Description   string
	Subcategory   string
	FiscalYear    string
	SpendBand     string
	PaymentMethod string
	InvoiceNumber string
}

// SupplierKey returns the supplier grouping key, substituting the Unknown
// sentinel for blank values so no record falls out of a bucketed view.
func (r Record) SupplierKey() string { return keyOrUnknown(r.Supplier) }

// CategoryKey returns the category grouping key.
func (r Record) CategoryKey() string { return keyOrUnknown(r.Category) }

// LocationKey returns the location grouping key.
func (r Record) LocationKey() string { return keyOrUnknown(r.Location) }

func keyOrUnknown(v string) string {
	if strings.TrimSpace(v) == "" {
		return Unknown
	}
	return v
}
