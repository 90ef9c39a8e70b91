package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// CategorySnapshot is the copy of category fields embedded in a
// transaction when it is saved. It is a value, not a reference: renaming
// or deleting the category later leaves historical transactions showing
// the category as it looked at recording time.
type CategorySnapshot struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Icon  string          `json:"icon"`
	Color string          `json:"color"`
	Type  TransactionType `json:"type"`
}

// Transaction is a single recorded income or expense event. Amount is
// always non-negative; the sign is implied by Type.
type Transaction struct {
	ID       string           `json:"id"`
	Type     TransactionType  `json:"type"`
	Amount   decimal.Decimal  `json:"amount"`
	Category CategorySnapshot `json:"category"`
	Date     time.Time        `json:"date"`
	Notes    *string          `json:"notes,omitempty"`
}

// Validation constants
const (
	MaxNotesLength        = 1000
	MaxCategoryNameLength = 100
)

type TransactionRepository interface {
	List() ([]*Transaction, error)
	Save(transaction *Transaction) (*Transaction, error)
	Update(transaction *Transaction) (*Transaction, error)
	Delete(id string) error
	Replace(transactions []*Transaction) error
	Clear() error
}
