package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"finboard/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrDuplicateTransaction = errors.New("transaction with this ID already exists")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateTransaction
		}
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by its dataset identifier
func (r *transactionRepository) GetByID(id int64) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// Exists reports whether a transaction with the given identifier exists
func (r *transactionRepository) Exists(id int64) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check transaction existence: %w", err)
	}
	return count > 0, nil
}

// applyFilters translates the filter set into query predicates. The user
// scope is unconditional; every other predicate is attached only when the
// corresponding filter field is set.
func applyFilters(query *gorm.DB, filters models.TransactionFilters) *gorm.DB {
	query = query.Where("user_id = ?", filters.UserID)

	if filters.Search != "" {
		pattern := "%" + strings.ToLower(filters.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.DateFrom != nil {
		query = query.Where("date >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("date <= ?", *filters.DateTo)
	}

	return query
}

// GetWithFilters retrieves one page of filtered transactions plus the total count
func (r *transactionRepository) GetWithFilters(filters models.TransactionFilters, params models.ListParams) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := applyFilters(r.db.Model(&models.Transaction{}), filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered transactions: %w", err)
	}

	column, ok := params.SortColumn()
	if !ok {
		return nil, 0, fmt.Errorf("unsortable field %q", params.SortBy)
	}

	direction := "DESC"
	if params.SortOrder == models.SortOrderAsc {
		direction = "ASC"
	}

	if err := query.
		Order(fmt.Sprintf("%s %s", column, direction)).
		Offset(params.Offset()).Limit(params.Limit).
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered transactions: %w", err)
	}

	return transactions, total, nil
}

// GetAllWithFilters retrieves the full filtered set, date-descending
func (r *transactionRepository) GetAllWithFilters(filters models.TransactionFilters) ([]models.Transaction, error) {
	var transactions []models.Transaction

	query := applyFilters(r.db.Model(&models.Transaction{}), filters)

	if err := query.Order("date DESC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions for export: %w", err)
	}

	return transactions, nil
}

// GetSummaryTotals calculates completed revenue and expense totals for a user
func (r *transactionRepository) GetSummaryTotals(userID string) (decimal.Decimal, decimal.Decimal, error) {
	var revenue decimal.Decimal
	if err := r.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND category = ? AND status = ?",
			userID, models.CategoryRevenue, models.StatusCompleted).
		Scan(&revenue).Error; err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to get revenue total: %w", err)
	}

	var expenses decimal.Decimal
	if err := r.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND category = ? AND status = ?",
			userID, models.CategoryExpense, models.StatusCompleted).
		Scan(&expenses).Error; err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to get expense total: %w", err)
	}

	return revenue, expenses, nil
}

// GetCompletedSince retrieves completed transactions dated on or after the given instant
func (r *transactionRepository) GetCompletedSince(userID string, since time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("user_id = ? AND status = ? AND date >= ?",
		userID, models.StatusCompleted, since).
		Order("date ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get completed transactions: %w", err)
	}
	return transactions, nil
}

// GetCategoryBreakdown retrieves per-category totals and counts over completed transactions
func (r *transactionRepository) GetCategoryBreakdown(userID string) ([]models.CategoryBreakdown, error) {
	var breakdown []models.CategoryBreakdown

	query := `
		SELECT
			category,
			COALESCE(SUM(amount), 0) as total,
			COUNT(*) as count
		FROM transactions
		WHERE user_id = ?
			AND status = ?
		GROUP BY category
		ORDER BY category ASC
	`

	if err := r.db.Raw(query, userID, models.StatusCompleted).
		Scan(&breakdown).Error; err != nil {
		return nil, fmt.Errorf("failed to get category breakdown: %w", err)
	}

	return breakdown, nil
}
