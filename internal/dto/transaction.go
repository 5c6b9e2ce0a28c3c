package dto

import (
	"finboard/internal/models"
)

// ListTransactionsRequest carries the raw query parameters of the listing
// endpoint. Values arrive as strings so that malformed numbers can be
// rejected instead of silently defaulted.
type ListTransactionsRequest struct {
	Page      string `query:"page"`
	Limit     string `query:"limit"`
	Search    string `query:"search"`
	Category  string `query:"category"`
	Status    string `query:"status"`
	DateFrom  string `query:"dateFrom"`
	DateTo    string `query:"dateTo"`
	SortBy    string `query:"sortBy"`
	SortOrder string `query:"sortOrder"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	TotalPages   int                  `json:"totalPages"`
	CurrentPage  int                  `json:"currentPage"`
	Total        int64                `json:"total"`
}

// CreateTransactionRequest contains the fields of a new transaction.
// The owning user is always taken from the authenticated identity.
type CreateTransactionRequest struct {
	ID          int64  `json:"id" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Amount      string `json:"amount" validate:"required"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"required"`
	Status      string `json:"status"`
	UserProfile string `json:"user_profile"`
}

// ExportFilters mirrors the listing filters without pagination
type ExportFilters struct {
	Search   string `json:"search"`
	Category string `json:"category"`
	Status   string `json:"status"`
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
}

// ExportCSVRequest selects columns and filters for a CSV export
type ExportCSVRequest struct {
	Columns []string      `json:"columns" validate:"required,min=1"`
	Filters ExportFilters `json:"filters"`
}
