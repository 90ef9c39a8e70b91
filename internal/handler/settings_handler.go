package handler

import (
	"errors"
	"net/http"

	"github.com/flowtrack/flowtrack-backend/internal/domain"
	"github.com/flowtrack/flowtrack-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// SettingsHandler handles settings-related HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// CurrencyRequest represents the change-currency request body
type CurrencyRequest struct {
	Code string `json:"code"`
}

// CurrencyResponse represents a currency descriptor in API responses
type CurrencyResponse struct {
	Code               string `json:"code"`
	Symbol             string `json:"symbol"`
	Name               string `json:"name"`
	SymbolPosition     string `json:"symbolPosition"`
	DecimalPlaces      int    `json:"decimalPlaces"`
	DecimalSeparator   string `json:"decimalSeparator"`
	ThousandsSeparator string `json:"thousandsSeparator"`
}

// GetCurrency handles GET /api/v1/settings/currency
func (h *SettingsHandler) GetCurrency(c echo.Context) error {
	cur, err := h.settingsService.Currency()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get currency")
		return NewInternalError(c, "Failed to get currency")
	}
	return c.JSON(http.StatusOK, toCurrencyResponse(cur))
}

// SetCurrency handles PUT /api/v1/settings/currency
func (h *SettingsHandler) SetCurrency(c echo.Context) error {
	var req CurrencyRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	if err := h.settingsService.SetCurrency(req.Code); err != nil {
		if errors.Is(err, domain.ErrUnknownCurrency) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "code", Message: "Unknown currency code"},
			})
		}
		log.Error().Err(err).Str("code", req.Code).Msg("Failed to set currency")
		return NewInternalError(c, "Failed to set currency")
	}

	cur, err := h.settingsService.Currency()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get currency")
		return NewInternalError(c, "Failed to get currency")
	}

	log.Info().Str("code", cur.Code).Msg("Currency changed")
	return c.JSON(http.StatusOK, toCurrencyResponse(cur))
}

// GetCurrencies handles GET /api/v1/settings/currencies
func (h *SettingsHandler) GetCurrencies(c echo.Context) error {
	currencies := h.settingsService.Currencies()
	response := make([]CurrencyResponse, len(currencies))
	for i, cur := range currencies {
		response[i] = toCurrencyResponse(cur)
	}
	return c.JSON(http.StatusOK, response)
}

// Helper function to convert domain.Currency to CurrencyResponse
func toCurrencyResponse(cur domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:               cur.Code,
		Symbol:             cur.Symbol,
		Name:               cur.Name,
		SymbolPosition:     string(cur.Position),
		DecimalPlaces:      cur.DecimalPlaces,
		DecimalSeparator:   cur.DecimalSeparator,
		ThousandsSeparator: cur.ThousandsSeparator,
	}
}
