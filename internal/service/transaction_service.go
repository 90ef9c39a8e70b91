package service

import (
	"time"

	"github.com/flowtrack/flowtrack-backend/internal/domain"
	"github.com/flowtrack/flowtrack-backend/internal/websocket"
	"github.com/shopspring/decimal"
)

// TransactionService handles transaction-related business logic
type TransactionService struct {
	transactionRepo domain.TransactionRepository
	publisher       websocket.EventPublisher
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactionRepo domain.TransactionRepository, publisher websocket.EventPublisher) *TransactionService {
	if publisher == nil {
		publisher = &websocket.NoOpPublisher{}
	}
	return &TransactionService{
		transactionRepo: transactionRepo,
		publisher:       publisher,
	}
}

// TransactionInput holds the input for creating or updating a transaction
type TransactionInput struct {
	Type     domain.TransactionType
	Amount   decimal.Decimal
	Category domain.CategorySnapshot
	Date     *time.Time
	Notes    *string
}

func validateTransactionInput(input TransactionInput) error {
	if !input.Type.Valid() {
		return domain.ErrInvalidTransactionType
	}
	if input.Amount.IsNegative() {
		return domain.ErrInvalidAmount
	}
	if input.Category.ID == "" {
		return domain.ErrCategoryRequired
	}
	if input.Category.Type != input.Type {
		return domain.ErrCategoryTypeMismatch
	}
	if input.Notes != nil && len(*input.Notes) > domain.MaxNotesLength {
		return domain.ErrNotesTooLong
	}
	return nil
}

// CreateTransaction creates a new transaction with validation. The
// category snapshot is stored as given; it is a copy frozen at save
// time, not a reference into the category list.
func (s *TransactionService) CreateTransaction(input TransactionInput) (*domain.Transaction, error) {
	if err := validateTransactionInput(input); err != nil {
		return nil, err
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}

	transaction := &domain.Transaction{
		Type:     input.Type,
		Amount:   input.Amount,
		Category: input.Category,
		Date:     date,
		Notes:    input.Notes,
	}

	saved, err := s.transactionRepo.Save(transaction)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(websocket.TransactionCreated(saved))
	return saved, nil
}

// ListTransactions returns transactions in persisted order, optionally
// restricted to a type and a period window ending now.
func (s *TransactionService) ListTransactions(txType *domain.TransactionType, period *domain.Period) ([]*domain.Transaction, error) {
	transactions, err := s.transactionRepo.List()
	if err != nil {
		return nil, err
	}

	if txType != nil {
		filtered := make([]*domain.Transaction, 0, len(transactions))
		for _, t := range transactions {
			if t.Type == *txType {
				filtered = append(filtered, t)
			}
		}
		transactions = filtered
	}

	if period != nil {
		transactions = FilterByPeriod(transactions, *period, time.Now())
	}

	return transactions, nil
}

// UpdateTransaction replaces the transaction with the given id.
func (s *TransactionService) UpdateTransaction(id string, input TransactionInput) (*domain.Transaction, error) {
	if err := validateTransactionInput(input); err != nil {
		return nil, err
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}

	transaction := &domain.Transaction{
		ID:       id,
		Type:     input.Type,
		Amount:   input.Amount,
		Category: input.Category,
		Date:     date,
		Notes:    input.Notes,
	}

	updated, err := s.transactionRepo.Update(transaction)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(websocket.TransactionUpdated(updated))
	return updated, nil
}

// DeleteTransaction removes a transaction. Deleting an id that does not
// exist succeeds without effect.
func (s *TransactionService) DeleteTransaction(id string) error {
	if err := s.transactionRepo.Delete(id); err != nil {
		return err
	}
	s.publisher.Publish(websocket.TransactionDeleted(map[string]string{"id": id}))
	return nil
}
