package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/flowtrack/flowtrack-backend/internal/domain"
	"github.com/flowtrack/flowtrack-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CategorySnapshotPayload is the embedded category copy in requests and
// responses.
type CategorySnapshotPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Type  string `json:"type"`
}

// TransactionRequest represents the create/update transaction request body
type TransactionRequest struct {
	Type     string                  `json:"type"`
	Amount   string                  `json:"amount"`
	Category CategorySnapshotPayload `json:"category"`
	Date     *string                 `json:"date,omitempty"`
	Notes    *string                 `json:"notes,omitempty"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID       string                  `json:"id"`
	Type     string                  `json:"type"`
	Amount   string                  `json:"amount"`
	Category CategorySnapshotPayload `json:"category"`
	Date     string                  `json:"date"`
	Notes    *string                 `json:"notes,omitempty"`
}

func parseTransactionRequest(c echo.Context) (service.TransactionInput, bool, error) {
	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		return service.TransactionInput{}, false, NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return service.TransactionInput{}, false, NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	var date *time.Time
	if req.Date != nil && *req.Date != "" {
		parsed, err := parseDate(*req.Date)
		if err != nil {
			return service.TransactionInput{}, false, NewValidationError(c, "Invalid date", []ValidationError{
				{Field: "date", Message: "Must be RFC 3339 or YYYY-MM-DD"},
			})
		}
		date = &parsed
	}

	input := service.TransactionInput{
		Type:   domain.TransactionType(req.Type),
		Amount: amount,
		Category: domain.CategorySnapshot{
			ID:    req.Category.ID,
			Name:  req.Category.Name,
			Icon:  req.Category.Icon,
			Color: req.Category.Color,
			Type:  domain.TransactionType(req.Category.Type),
		},
		Date:  date,
		Notes: req.Notes,
	}
	return input, true, nil
}

// parseDate accepts full timestamps and bare calendar dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

func transactionValidationResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidTransactionType):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "type", Message: "Type must be one of: income, expense"},
		})
	case errors.Is(err, domain.ErrInvalidAmount):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "amount", Message: "Amount must be non-negative"},
		})
	case errors.Is(err, domain.ErrCategoryRequired):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "category", Message: "Category is required"},
		})
	case errors.Is(err, domain.ErrCategoryTypeMismatch):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "category", Message: "Category type must match transaction type"},
		})
	case errors.Is(err, domain.ErrNotesTooLong):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "notes", Message: "Notes must be 1000 characters or less"},
		})
	}
	return nil
}

// CreateTransaction handles POST /api/v1/transactions
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	input, ok, errResp := parseTransactionRequest(c)
	if !ok {
		return errResp
	}

	transaction, err := h.transactionService.CreateTransaction(input)
	if err != nil {
		if resp := transactionValidationResponse(c, err); resp != nil {
			return resp
		}
		log.Error().Err(err).Msg("Failed to create transaction")
		return NewInternalError(c, "Failed to create transaction")
	}

	log.Info().Str("transaction_id", transaction.ID).Str("type", string(transaction.Type)).Msg("Transaction created")
	return c.JSON(http.StatusCreated, toTransactionResponse(transaction))
}

// GetTransactions handles GET /api/v1/transactions with optional type
// and period filters.
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	var txType *domain.TransactionType
	if s := c.QueryParam("type"); s != "" {
		t := domain.TransactionType(s)
		if !t.Valid() {
			return NewValidationError(c, "Invalid type (must be 'income' or 'expense')", nil)
		}
		txType = &t
	}

	var period *domain.Period
	if s := c.QueryParam("period"); s != "" {
		p := domain.Period(s)
		if !p.Valid() {
			return NewValidationError(c, "Invalid period (must be one of: week, month, year, all)", nil)
		}
		period = &p
	}

	transactions, err := h.transactionService.ListTransactions(txType, period)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get transactions")
		return NewInternalError(c, "Failed to get transactions")
	}

	response := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		response[i] = toTransactionResponse(t)
	}
	return c.JSON(http.StatusOK, response)
}

// UpdateTransaction handles PUT /api/v1/transactions/:id
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return NewValidationError(c, "Invalid transaction ID", nil)
	}

	input, ok, errResp := parseTransactionRequest(c)
	if !ok {
		return errResp
	}

	transaction, err := h.transactionService.UpdateTransaction(id, input)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return NewNotFoundError(c, "Transaction not found")
		}
		if resp := transactionValidationResponse(c, err); resp != nil {
			return resp
		}
		log.Error().Err(err).Str("transaction_id", id).Msg("Failed to update transaction")
		return NewInternalError(c, "Failed to update transaction")
	}

	log.Info().Str("transaction_id", transaction.ID).Msg("Transaction updated")
	return c.JSON(http.StatusOK, toTransactionResponse(transaction))
}

// DeleteTransaction handles DELETE /api/v1/transactions/:id
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return NewValidationError(c, "Invalid transaction ID", nil)
	}

	if err := h.transactionService.DeleteTransaction(id); err != nil {
		log.Error().Err(err).Str("transaction_id", id).Msg("Failed to delete transaction")
		return NewInternalError(c, "Failed to delete transaction")
	}

	log.Info().Str("transaction_id", id).Msg("Transaction deleted")
	return c.NoContent(http.StatusNoContent)
}

// Helper function to convert domain.Transaction to TransactionResponse
func toTransactionResponse(transaction *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:     transaction.ID,
		Type:   string(transaction.Type),
		Amount: transaction.Amount.String(),
		Category: CategorySnapshotPayload{
			ID:    transaction.Category.ID,
			Name:  transaction.Category.Name,
			Icon:  transaction.Category.Icon,
			Color: transaction.Category.Color,
			Type:  string(transaction.Category.Type),
		},
		Date:  transaction.Date.Format(time.RFC3339),
		Notes: transaction.Notes,
	}
}
