package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/flowtrack/flowtrack-backend/internal/domain"
	"github.com/flowtrack/flowtrack-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ExportHandler handles export, import and clear-all HTTP requests
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportJSON handles GET /api/v1/export
func (h *ExportHandler) ExportJSON(c echo.Context) error {
	data, err := h.exportService.ExportJSON()
	if err != nil {
		log.Error().Err(err).Msg("Failed to export data")
		return NewInternalError(c, "Failed to export data")
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(data))
}

// ExportSummary handles GET /api/v1/export/summary
func (h *ExportHandler) ExportSummary(c echo.Context) error {
	report, err := h.exportService.SummaryReport()
	if err != nil {
		log.Error().Err(err).Msg("Failed to build summary report")
		return NewInternalError(c, "Failed to build summary report")
	}
	return c.String(http.StatusOK, report)
}

// ExportDetailed handles GET /api/v1/export/transactions
func (h *ExportHandler) ExportDetailed(c echo.Context) error {
	report, err := h.exportService.DetailedReport()
	if err != nil {
		log.Error().Err(err).Msg("Failed to build detailed report")
		return NewInternalError(c, "Failed to build detailed report")
	}
	return c.String(http.StatusOK, report)
}

// Import handles POST /api/v1/import. The body is the JSON produced by
// ExportJSON.
func (h *ExportHandler) Import(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	if err := h.exportService.Import(string(body)); err != nil {
		if errors.Is(err, domain.ErrMalformedData) {
			return NewValidationError(c, "Import payload is not a valid snapshot", nil)
		}
		log.Error().Err(err).Msg("Failed to import data")
		return NewInternalError(c, "Failed to import data")
	}

	log.Info().Msg("Data imported")
	return c.NoContent(http.StatusNoContent)
}

// ClearAll handles DELETE /api/v1/data
func (h *ExportHandler) ClearAll(c echo.Context) error {
	if err := h.exportService.ClearAll(); err != nil {
		log.Error().Err(err).Msg("Failed to clear data")
		return NewInternalError(c, "Failed to clear data")
	}

	log.Info().Msg("All data cleared")
	return c.NoContent(http.StatusNoContent)
}
