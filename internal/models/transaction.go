package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	CategoryRevenue = "revenue"
	CategoryExpense = "expense"

	StatusCompleted = "completed"
	StatusPending   = "pending"
	StatusFailed    = "failed"

	// StatusPaid is the legacy dataset value for a settled transaction.
	// It is accepted on input and normalized to StatusCompleted.
	StatusPaid = "paid"
)

var (
	ErrInvalidCategory    = errors.New("invalid transaction category")
	ErrInvalidStatus      = errors.New("invalid transaction status")
	ErrMissingTransaction = errors.New("transaction ID is required")
	ErrMissingOwner       = errors.New("transaction owner is required")
)

// Transaction represents a single ledger record owned by one user.
// Records are created once and never mutated through the API.
type Transaction struct {
	ID          int64           `gorm:"primary_key;autoIncrement:false" json:"id"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Name        string          `gorm:"type:varchar(255)" json:"name,omitempty"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Category    string          `gorm:"type:varchar(20);not null;index" json:"category"`
	Status      string          `gorm:"type:varchar(20);not null;index" json:"status"`
	UserID      string          `gorm:"type:varchar(100);not null;index" json:"user_id"`
	UserProfile string          `gorm:"type:varchar(512)" json:"user_profile,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.Status == "" {
		t.Status = StatusCompleted
	}
	t.Status = NormalizeStatus(t.Status)

	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	return t.Validate()
}

// Validate checks the write-time invariants: a required unique identifier,
// an owner, and category/status drawn from the fixed enumerations.
func (t *Transaction) Validate() error {
	if t.ID == 0 {
		return ErrMissingTransaction
	}

	if t.UserID == "" {
		return ErrMissingOwner
	}

	if !IsValidCategory(t.Category) {
		return ErrInvalidCategory
	}

	if !IsValidStatus(t.Status) {
		return ErrInvalidStatus
	}

	if t.Date.IsZero() {
		return errors.New("transaction date is required")
	}

	return nil
}

// IsCompleted returns true if the transaction has settled
func (t *Transaction) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidCategory checks if the category is part of the fixed enumeration
func IsValidCategory(category string) bool {
	switch category {
	case CategoryRevenue, CategoryExpense:
		return true
	default:
		return false
	}
}

// IsValidStatus checks if the status is part of the fixed enumeration
func IsValidStatus(status string) bool {
	switch status {
	case StatusCompleted, StatusPending, StatusFailed:
		return true
	default:
		return false
	}
}

// NormalizeStatus maps legacy dataset status values onto the canonical
// enumeration. The source data mixes casings ("Paid", "Pending"), so
// comparison is case-insensitive.
func NormalizeStatus(status string) string {
	lowered := strings.ToLower(status)
	if lowered == StatusPaid {
		return StatusCompleted
	}
	return lowered
}
