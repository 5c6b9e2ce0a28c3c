package models

import "time"

// FilterAll is the sentinel filter value meaning "apply no constraint".
// It is resolved during request parsing; repositories receive an empty
// string when no constraint applies.
const FilterAll = "all"

// TransactionFilters contains filtering options for transaction queries.
// UserID is always set from the authenticated identity and scopes every
// query to the caller's own records.
type TransactionFilters struct {
	UserID   string
	Search   string
	Category string
	Status   string
	DateFrom *time.Time
	DateTo   *time.Time
}
