package handlers

import (
	stderrors "errors"
	"net/http"

	"finboard/internal/dto"
	"finboard/internal/errors"
	"finboard/internal/models"
	"finboard/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction listing, creation and analytics
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
	analyticsService   services.AnalyticsServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	transactionService services.TransactionServiceInterface,
	analyticsService services.AnalyticsServiceInterface,
) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		analyticsService:   analyticsService,
	}
}

// List returns one page of the caller's transactions
// @Summary List transactions
// @Description Paginated, filtered and sorted listing of the caller's transactions
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Param search query string false "Case-insensitive match on name and description"
// @Param category query string false "Category filter, 'all' disables"
// @Param status query string false "Status filter, 'all' disables"
// @Param dateFrom query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param dateTo query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param sortBy query string false "Sort field (default date)"
// @Param sortOrder query string false "asc or desc (default desc)"
// @Success 200 {object} dto.ListTransactionsResponse "One page of transactions"
// @Failure 400 {object} errors.ErrorResponse "Invalid parameters - VALIDATION_006/007/008"
// @Failure 401 {object} errors.ErrorResponse "Unauthorized - AUTH_002"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /api/transactions [get]
func (h *TransactionHandler) List(c echo.Context) error {
	identity, err := getIdentityFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.ListTransactionsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	response, err := h.transactionService.List(identity, &req)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrInvalidDate):
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
		case stderrors.Is(err, services.ErrInvalidPagination):
			return SendError(c, errors.ValidationInvalidPage, errors.WithDetails(err.Error()))
		case stderrors.Is(err, services.ErrInvalidSortField), stderrors.Is(err, services.ErrInvalidSortOrder):
			return SendError(c, errors.ValidationInvalidSort, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// GetAnalytics returns the aggregate dashboard views
// @Summary Transaction analytics
// @Description Summary totals, trailing-year monthly trends and category breakdown
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.AnalyticsResult "Aggregates for the caller"
// @Failure 401 {object} errors.ErrorResponse "Unauthorized - AUTH_002"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /api/transactions/analytics [get]
func (h *TransactionHandler) GetAnalytics(c echo.Context) error {
	identity, err := getIdentityFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	result, err := h.analyticsService.GetAnalytics(c.Request().Context(), identity)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// Create persists a new transaction owned by the caller
// @Summary Create transaction
// @Description Create a transaction with a client-supplied unique ID owned by the caller
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction fields"
// @Success 201 {object} models.Transaction "Created transaction"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001/003/006"
// @Failure 401 {object} errors.ErrorResponse "Unauthorized - AUTH_002"
// @Failure 422 {object} errors.ErrorResponse "Duplicate ID or invalid enums - TRANSACTION_002/003/004"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /api/transactions [post]
func (h *TransactionHandler) Create(c echo.Context) error {
	identity, err := getIdentityFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	transaction, err := h.transactionService.Create(identity, &req)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrDuplicateTransaction):
			return SendError(c, errors.TransactionDuplicate)
		case stderrors.Is(err, services.ErrInvalidDate):
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
		case stderrors.Is(err, services.ErrInvalidAmount):
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Amount must be a decimal number"))
		case stderrors.Is(err, models.ErrInvalidCategory):
			return SendError(c, errors.TransactionInvalidCategory)
		case stderrors.Is(err, models.ErrInvalidStatus):
			return SendError(c, errors.TransactionInvalidStatus)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, transaction)
}
