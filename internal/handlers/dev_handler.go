package handlers

import (
	"net/http"

	"finboard/internal/errors"
	"finboard/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	sampleData *services.SampleDataService
}

// NewDevHandler creates a new development handler
func NewDevHandler(sampleData *services.SampleDataService) *DevHandler {
	return &DevHandler{
		sampleData: sampleData,
	}
}

// SeedTransactions generates demo transactions for the authenticated user
//
// Method: POST /api/dev/seed
// Authentication: Required
// Environment: Development only
//
// Query parameters:
//   - count: Number of transactions to generate (default: 25, max: 500)
func (h *DevHandler) SeedTransactions(c echo.Context) error {
	identity, err := getIdentityFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	count := getIntQueryParam(c, "count", 25)
	if count > 500 {
		count = 500
	}

	created, err := h.sampleData.SeedTransactions(identity, count)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":              "sample transactions generated",
		"transactions_created": created,
	})
}
