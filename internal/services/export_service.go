package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"finboard/internal/dto"
	"finboard/internal/models"
	"finboard/internal/repositories"
)

// exportableColumns is the allow-list of columns a CSV export may
// request. Unknown names are silently dropped; an export selecting no
// known column at all is rejected.
var exportableColumns = map[string]bool{
	"id":           true,
	"date":         true,
	"amount":       true,
	"category":     true,
	"status":       true,
	"user_id":      true,
	"user_profile": true,
}

// ErrNoExportableColumns is returned when none of the requested columns
// survive the allow-list.
var ErrNoExportableColumns = errors.New("no exportable columns requested")

// exportService implements ExportServiceInterface
type exportService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	logger          *slog.Logger
}

// NewExportService creates a new export service
func NewExportService(
	transactionRepo repositories.TransactionRepositoryInterface,
	logger *slog.Logger,
) ExportServiceInterface {
	return &exportService{
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// ExportCSV renders the caller's filtered transactions as a CSV document.
// Filters follow the same semantics as the listing endpoint; pagination
// does not apply, the full filtered set is exported in date-descending
// order.
func (s *exportService) ExportCSV(identity models.Identity, req *dto.ExportCSVRequest) (string, error) {
	columns := filterColumns(req.Columns)
	if len(columns) == 0 {
		return "", ErrNoExportableColumns
	}

	filters, err := BuildFilters(identity, req.Filters.Search, req.Filters.Category,
		req.Filters.Status, req.Filters.DateFrom, req.Filters.DateTo)
	if err != nil {
		return "", err
	}

	transactions, err := s.transactionRepo.GetAllWithFilters(filters)
	if err != nil {
		return "", fmt.Errorf("failed to load transactions for export: %w", err)
	}

	csvExportsTotal.Inc()
	csvExportRows.Observe(float64(len(transactions)))

	s.logger.Info("csv export generated",
		"user_id", identity.UserID,
		"columns", len(columns),
		"rows", len(transactions))

	return BuildCSV(columns, transactions), nil
}

// filterColumns keeps the requested columns that appear in the allow-list,
// preserving request order and dropping duplicates.
func filterColumns(requested []string) []string {
	seen := make(map[string]bool, len(requested))
	columns := make([]string, 0, len(requested))
	for _, name := range requested {
		name = strings.ToLower(strings.TrimSpace(name))
		if exportableColumns[name] && !seen[name] {
			seen[name] = true
			columns = append(columns, name)
		}
	}
	return columns
}

// BuildCSV renders transactions into CSV text. The first line holds the
// column names; rows follow in slice order. Lines are joined with "\n"
// and the document carries no trailing newline.
func BuildCSV(columns []string, transactions []models.Transaction) string {
	lines := make([]string, 0, len(transactions)+1)

	header := make([]string, len(columns))
	for i, column := range columns {
		header[i] = escapeCSVField(column)
	}
	lines = append(lines, strings.Join(header, ","))

	for i := range transactions {
		txn := &transactions[i]
		row := make([]string, len(columns))
		for j, column := range columns {
			row[j] = escapeCSVField(columnValue(txn, column))
		}
		lines = append(lines, strings.Join(row, ","))
	}

	return strings.Join(lines, "\n")
}

// columnValue renders one transaction field as CSV cell text. Dates use
// the date-only layout and amounts a fixed two-decimal form.
func columnValue(txn *models.Transaction, column string) string {
	switch column {
	case "id":
		return strconv.FormatInt(txn.ID, 10)
	case "date":
		return txn.Date.Format(dateLayout)
	case "amount":
		return txn.Amount.StringFixed(2)
	case "category":
		return txn.Category
	case "status":
		return txn.Status
	case "user_id":
		return txn.UserID
	case "user_profile":
		return txn.UserProfile
	default:
		return ""
	}
}

// escapeCSVField wraps a value in double quotes when it contains a comma,
// quote or newline, doubling any embedded quotes.
func escapeCSVField(value string) string {
	if strings.ContainsAny(value, ",\"\n") {
		return "\"" + strings.ReplaceAll(value, "\"", "\"\"") + "\""
	}
	return value
}
