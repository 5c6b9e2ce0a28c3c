package repositories

import (
	"time"

	"finboard/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
}

// RefreshTokenRepositoryInterface defines the contract for refresh token repository operations
type RefreshTokenRepositoryInterface interface {
	Create(token *models.RefreshToken) error
	GetByTokenHash(tokenHash string) (*models.RefreshToken, error)
	Revoke(id uuid.UUID) error
	RevokeAllForUser(userID uuid.UUID) error
	DeleteExpired() (int64, error)
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id int64) (*models.Transaction, error)
	Exists(id int64) (bool, error)

	// GetWithFilters retrieves one fixed-size page of matching transactions
	// together with the total matching count
	GetWithFilters(filters models.TransactionFilters, params models.ListParams) ([]models.Transaction, int64, error)

	// GetAllWithFilters retrieves the entire filtered set sorted date-descending,
	// used by the CSV export path
	GetAllWithFilters(filters models.TransactionFilters) ([]models.Transaction, error)

	// GetSummaryTotals returns the summed amount of completed revenue and
	// expense transactions for a user; absent records yield zero
	GetSummaryTotals(userID string) (revenue, expenses decimal.Decimal, err error)

	// GetCompletedSince retrieves completed transactions dated on or after
	// the given instant, used for trend aggregation
	GetCompletedSince(userID string, since time.Time) ([]models.Transaction, error)

	// GetCategoryBreakdown returns per-category totals and counts over
	// completed transactions
	GetCategoryBreakdown(userID string) ([]models.CategoryBreakdown, error)
}
