package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/flowtrack/flowtrack-backend/internal/domain"
	"github.com/flowtrack/flowtrack-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ReportHandler handles report-related HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// CategoryTotalResponse represents a per-category total in API responses
type CategoryTotalResponse struct {
	CategoryID string `json:"categoryId"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	Amount     string `json:"amount"`
}

// DailyPointResponse represents one day of the series in API responses
type DailyPointResponse struct {
	Date    string `json:"date"`
	Expense string `json:"expense"`
	Income  string `json:"income"`
}

// SummaryResponse represents overall totals in API responses
type SummaryResponse struct {
	TotalIncome  string `json:"totalIncome"`
	TotalExpense string `json:"totalExpense"`
	Balance      string `json:"balance"`
}

func parsePeriodParam(c echo.Context) (domain.Period, error) {
	s := c.QueryParam("period")
	if s == "" {
		return domain.PeriodMonth, nil
	}
	p := domain.Period(s)
	if !p.Valid() {
		return "", domain.ErrInvalidPeriod
	}
	return p, nil
}

// GetCategoryTotals handles GET /api/v1/reports/categories
func (h *ReportHandler) GetCategoryTotals(c echo.Context) error {
	period, err := parsePeriodParam(c)
	if err != nil {
		return NewValidationError(c, "Invalid period (must be one of: week, month, year, all)", nil)
	}

	txType := domain.TransactionType(c.QueryParam("type"))
	if c.QueryParam("type") == "" {
		txType = domain.TransactionTypeExpense
	}
	if !txType.Valid() {
		return NewValidationError(c, "Invalid type (must be 'income' or 'expense')", nil)
	}

	totals, err := h.reportService.CategoryReport(period, txType)
	if err != nil {
		log.Error().Err(err).Msg("Failed to build category report")
		return NewInternalError(c, "Failed to build category report")
	}

	response := make([]CategoryTotalResponse, len(totals))
	for i, t := range totals {
		response[i] = CategoryTotalResponse{
			CategoryID: t.CategoryID,
			Name:       t.Name,
			Color:      t.Color,
			Amount:     t.Amount.String(),
		}
	}
	return c.JSON(http.StatusOK, response)
}

// GetDailySeries handles GET /api/v1/reports/daily. Either an explicit
// startDate/endDate pair or a week/month period selects the window.
func (h *ReportHandler) GetDailySeries(c echo.Context) error {
	startStr := c.QueryParam("startDate")
	endStr := c.QueryParam("endDate")

	var (
		series []domain.DailyPoint
		err    error
	)
	if startStr != "" || endStr != "" {
		start, perr := time.ParseInLocation("2006-01-02", startStr, time.Local)
		if perr != nil {
			return NewValidationError(c, "Invalid startDate format (use YYYY-MM-DD)", nil)
		}
		end, perr := time.ParseInLocation("2006-01-02", endStr, time.Local)
		if perr != nil {
			return NewValidationError(c, "Invalid endDate format (use YYYY-MM-DD)", nil)
		}
		series, err = h.reportService.DailyRange(start, end)
	} else {
		period, perr := parsePeriodParam(c)
		if perr != nil {
			return NewValidationError(c, "Invalid period (must be one of: week, month, year, all)", nil)
		}
		series, err = h.reportService.DailyReport(period)
		if errors.Is(err, domain.ErrInvalidPeriod) {
			return NewValidationError(c, "Daily series supports week and month periods only", nil)
		}
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to build daily series")
		return NewInternalError(c, "Failed to build daily series")
	}

	response := make([]DailyPointResponse, len(series))
	for i, p := range series {
		response[i] = DailyPointResponse{
			Date:    p.Date.Format("2006-01-02"),
			Expense: p.Expense.String(),
			Income:  p.Income.String(),
		}
	}
	return c.JSON(http.StatusOK, response)
}

// GetSummary handles GET /api/v1/reports/summary
func (h *ReportHandler) GetSummary(c echo.Context) error {
	period, err := parsePeriodParam(c)
	if err != nil {
		return NewValidationError(c, "Invalid period (must be one of: week, month, year, all)", nil)
	}

	summary, err := h.reportService.PeriodSummary(period)
	if err != nil {
		log.Error().Err(err).Msg("Failed to build summary")
		return NewInternalError(c, "Failed to build summary")
	}

	return c.JSON(http.StatusOK, SummaryResponse{
		TotalIncome:  summary.TotalIncome.String(),
		TotalExpense: summary.TotalExpense.String(),
		Balance:      summary.Balance.String(),
	})
}
