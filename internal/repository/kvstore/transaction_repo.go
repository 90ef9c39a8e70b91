package kvstore

import (
	"github.com/flowtrack/flowtrack-backend/internal/domain"
	"github.com/flowtrack/flowtrack-backend/internal/kv"
	"github.com/rs/zerolog/log"
)

// TransactionRepository persists transactions as one JSON blob.
type TransactionRepository struct {
	store kv.Store
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(store kv.Store) *TransactionRepository {
	return &TransactionRepository{store: store}
}

// List returns all transactions in persisted (insertion) order, or an
// empty slice when nothing has been written yet.
func (r *TransactionRepository) List() ([]*domain.Transaction, error) {
	var transactions []*domain.Transaction
	ok, err := readCollection(r.store, transactionsKey, &transactions)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read transactions")
		return nil, err
	}
	if !ok || transactions == nil {
		return []*domain.Transaction{}, nil
	}
	return transactions, nil
}

// Save assigns an id when the transaction has none, appends it and
// persists the collection.
func (r *TransactionRepository) Save(transaction *domain.Transaction) (*domain.Transaction, error) {
	if transaction.ID == "" {
		transaction.ID = newID()
	}

	transactions, err := r.List()
	if err != nil {
		return nil, err
	}
	transactions = append(transactions, transaction)

	if err := writeCollection(r.store, transactionsKey, transactions); err != nil {
		log.Error().Err(err).Str("transaction_id", transaction.ID).Msg("Failed to save transaction")
		return nil, err
	}
	return transaction, nil
}

// Update replaces the transaction with the same id in place.
func (r *TransactionRepository) Update(transaction *domain.Transaction) (*domain.Transaction, error) {
	transactions, err := r.List()
	if err != nil {
		return nil, err
	}

	index := -1
	for i, t := range transactions {
		if t.ID == transaction.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, domain.ErrTransactionNotFound
	}

	transactions[index] = transaction
	if err := writeCollection(r.store, transactionsKey, transactions); err != nil {
		log.Error().Err(err).Str("transaction_id", transaction.ID).Msg("Failed to update transaction")
		return nil, err
	}
	return transaction, nil
}

// Delete removes the transaction with the given id. Deleting an absent
// id is a no-op.
func (r *TransactionRepository) Delete(id string) error {
	transactions, err := r.List()
	if err != nil {
		return err
	}

	kept := transactions[:0]
	for _, t := range transactions {
		if t.ID != id {
			kept = append(kept, t)
		}
	}

	if err := writeCollection(r.store, transactionsKey, kept); err != nil {
		log.Error().Err(err).Str("transaction_id", id).Msg("Failed to delete transaction")
		return err
	}
	return nil
}

// Replace overwrites the whole collection, preserving the given order.
func (r *TransactionRepository) Replace(transactions []*domain.Transaction) error {
	if transactions == nil {
		transactions = []*domain.Transaction{}
	}
	return writeCollection(r.store, transactionsKey, transactions)
}

// Clear removes the backing key entirely.
func (r *TransactionRepository) Clear() error {
	return r.store.Remove(transactionsKey)
}
