package model

import "fmt"

// EntityType identifies a drillable dimension of a record.
type EntityType string

const (
	EntitySupplier EntityType = "supplier"
	EntityCategory EntityType = "category"
	EntityLocation EntityType = "location"
)

// Key returns the sentinel-substituted grouping value of the dimension for
// a record.
func (e EntityType) Key(r Record) string {
	switch e {
	case EntitySupplier:
		return r.SupplierKey()
	case EntityCategory:
		return r.CategoryKey()
	case EntityLocation:
		return r.LocationKey()
	}
	return Unknown
}

// ParseEntityType converts a user-supplied dimension name.
func ParseEntityType(s string) (EntityType, error) {
	switch EntityType(s) {
	case EntitySupplier, EntityCategory, EntityLocation:
		return EntityType(s), nil
	}
	return "", fmt.Errorf("unknown entity type %q (want supplier, category, or location)", s)
}
