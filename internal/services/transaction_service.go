package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finboard/internal/dto"
	"finboard/internal/models"
	"finboard/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrDuplicateTransaction = errors.New("transaction with this ID already exists")
	ErrInvalidAmount        = errors.New("invalid transaction amount")
)

// transactionService implements TransactionServiceInterface
type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	logger          *slog.Logger
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	logger *slog.Logger,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// List returns one page of the caller's transactions matching the filters
func (s *transactionService) List(identity models.Identity, req *dto.ListTransactionsRequest) (*dto.ListTransactionsResponse, error) {
	filters, err := BuildFilters(identity, req.Search, req.Category, req.Status, req.DateFrom, req.DateTo)
	if err != nil {
		return nil, err
	}

	params, err := ParseListParams(req.Page, req.Limit, req.SortBy, req.SortOrder)
	if err != nil {
		return nil, err
	}

	transactions, total, err := s.transactionRepo.GetWithFilters(filters, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	totalPages := int((total + int64(params.Limit) - 1) / int64(params.Limit))

	if transactions == nil {
		transactions = []models.Transaction{}
	}

	return &dto.ListTransactionsResponse{
		Transactions: transactions,
		TotalPages:   totalPages,
		CurrentPage:  params.Page,
		Total:        total,
	}, nil
}

// Create persists a new transaction. The owner is always the caller; any
// owner value supplied by the client is discarded.
func (s *transactionService) Create(identity models.Identity, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		// Accept full timestamps too; the dataset carries both forms
		date, err = time.Parse(time.RFC3339, req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date %q", ErrInvalidDate, req.Date)
		}
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, req.Amount)
	}

	status := models.NormalizeStatus(req.Status)
	if status == "" {
		status = models.StatusCompleted
	}
	if !models.IsValidStatus(status) {
		return nil, models.ErrInvalidStatus
	}

	if !models.IsValidCategory(req.Category) {
		return nil, models.ErrInvalidCategory
	}

	exists, err := s.transactionRepo.Exists(req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate transaction: %w", err)
	}
	if exists {
		return nil, ErrDuplicateTransaction
	}

	transaction := &models.Transaction{
		ID:          req.ID,
		Date:        date,
		Amount:      amount,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Status:      status,
		UserID:      identity.UserID,
		UserProfile: req.UserProfile,
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		if errors.Is(err, repositories.ErrDuplicateTransaction) {
			return nil, ErrDuplicateTransaction
		}
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	transactionsCreatedTotal.WithLabelValues(transaction.Category).Inc()

	s.logger.Info("transaction created",
		"transaction_id", transaction.ID,
		"user_id", identity.UserID,
		"category", transaction.Category)

	return transaction, nil
}
