package models

const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"

	DefaultPage     = 1
	DefaultPageSize = 10
	DefaultSortBy   = "date"
)

// sortableColumns maps exposed sort field names to their column names.
// Sort fields are validated against this allow-list before reaching SQL.
var sortableColumns = map[string]string{
	"id":         "id",
	"date":       "date",
	"amount":     "amount",
	"category":   "category",
	"status":     "status",
	"created_at": "created_at",
}

// ListParams contains pagination and sorting parameters for transaction
// listing. Page is 1-based; the result window is always a fixed size of
// Limit records starting at (Page-1)*Limit.
type ListParams struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Offset returns the number of records to skip for the requested page
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// SortColumn resolves the requested sort field against the allow-list.
// Returns false for unrecognized fields.
func (p ListParams) SortColumn() (string, bool) {
	col, ok := sortableColumns[p.SortBy]
	return col, ok
}
