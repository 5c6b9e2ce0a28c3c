package handlers

import (
	stderrors "errors"
	"net/http"

	"finboard/internal/dto"
	"finboard/internal/errors"
	"finboard/internal/services"

	"github.com/labstack/echo/v4"
)

// ExportHandler handles transaction export endpoints
type ExportHandler struct {
	exportService services.ExportServiceInterface
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService services.ExportServiceInterface) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// ExportCSV renders the caller's filtered transactions as a CSV download
// @Summary Export transactions as CSV
// @Description Export the full filtered transaction set restricted to the requested columns
// @Tags Export
// @Security BearerAuth
// @Accept json
// @Produce text/csv
// @Param request body dto.ExportCSVRequest true "Columns and filters"
// @Success 200 {string} string "CSV document"
// @Failure 400 {object} errors.ErrorResponse "No exportable columns - EXPORT_001"
// @Failure 401 {object} errors.ErrorResponse "Unauthorized - AUTH_002"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /api/export/csv [post]
func (h *ExportHandler) ExportCSV(c echo.Context) error {
	identity, err := getIdentityFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.ExportCSVRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	csvDocument, err := h.exportService.ExportCSV(identity, &req)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrNoExportableColumns):
			return SendError(c, errors.ExportNoValidColumns)
		case stderrors.Is(err, services.ErrInvalidDate):
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=transactions.csv")
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(csvDocument))
}
