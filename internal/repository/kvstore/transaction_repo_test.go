package kvstore

import (
	"errors"
	"testing"
	"time"

	"github.com/flowtrack/flowtrack-backend/internal/domain"
	"github.com/flowtrack/flowtrack-backend/internal/kv"
	"github.com/shopspring/decimal"
)

func sampleTransaction(id string, amount string) *domain.Transaction {
	return &domain.Transaction{
		ID:     id,
		Type:   domain.TransactionTypeExpense,
		Amount: decimal.RequireFromString(amount),
		Category: domain.CategorySnapshot{
			ID: "food", Name: "Food & Dining", Icon: "food", Color: "#FF9800", Type: domain.TransactionTypeExpense,
		},
		Date: time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestTransactionRepository_ListEmptyStore(t *testing.T) {
	repo := NewTransactionRepository(kv.NewMemoryStore())

	transactions, err := repo.List()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if transactions == nil || len(transactions) != 0 {
		t.Errorf("Expected empty slice, got %v", transactions)
	}
}

func TestTransactionRepository_SaveAssignsID(t *testing.T) {
	repo := NewTransactionRepository(kv.NewMemoryStore())

	saved, err := repo.Save(sampleTransaction("", "45.5"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if saved.ID == "" {
		t.Error("Expected an assigned ID")
	}

	transactions, err := repo.List()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(transactions) != 1 || transactions[0].ID != saved.ID {
		t.Errorf("Expected the saved transaction, got %d", len(transactions))
	}
	if !transactions[0].Amount.Equal(decimal.RequireFromString("45.5")) {
		t.Errorf("Expected amount 45.5 to survive persistence, got %s", transactions[0].Amount)
	}
}

func TestTransactionRepository_PreservesInsertionOrder(t *testing.T) {
	repo := NewTransactionRepository(kv.NewMemoryStore())

	for _, id := range []string{"a", "b", "c"} {
		if _, err := repo.Save(sampleTransaction(id, "10")); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	transactions, err := repo.List()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(transactions) != 3 {
		t.Fatalf("Expected 3 transactions, got %d", len(transactions))
	}
	for i, id := range []string{"a", "b", "c"} {
		if transactions[i].ID != id {
			t.Errorf("Position %d: expected %s, got %s", i, id, transactions[i].ID)
		}
	}
}

func TestTransactionRepository_Update(t *testing.T) {
	repo := NewTransactionRepository(kv.NewMemoryStore())
	if _, err := repo.Save(sampleTransaction("tx-1", "10")); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	changed := sampleTransaction("tx-1", "99")
	if _, err := repo.Update(changed); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	transactions, _ := repo.List()
	if !transactions[0].Amount.Equal(decimal.RequireFromString("99")) {
		t.Errorf("Expected updated amount, got %s", transactions[0].Amount)
	}
}

func TestTransactionRepository_UpdateMissing(t *testing.T) {
	repo := NewTransactionRepository(kv.NewMemoryStore())

	_, err := repo.Update(sampleTransaction("missing", "10"))
	if !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Errorf("Expected ErrTransactionNotFound, got %v", err)
	}
}

func TestTransactionRepository_DeleteMissingIsNoOp(t *testing.T) {
	repo := NewTransactionRepository(kv.NewMemoryStore())
	if _, err := repo.Save(sampleTransaction("tx-1", "10")); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := repo.Delete("missing"); err != nil {
		t.Fatalf("Expected no error deleting unknown id, got %v", err)
	}

	transactions, _ := repo.List()
	if len(transactions) != 1 {
		t.Errorf("Expected existing transaction untouched, got %d", len(transactions))
	}
}

func TestTransactionRepository_Delete(t *testing.T) {
	repo := NewTransactionRepository(kv.NewMemoryStore())
	repo.Save(sampleTransaction("a", "10"))
	repo.Save(sampleTransaction("b", "20"))

	if err := repo.Delete("a"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	transactions, _ := repo.List()
	if len(transactions) != 1 || transactions[0].ID != "b" {
		t.Errorf("Expected only b to remain, got %d", len(transactions))
	}
}

func TestTransactionRepository_Clear(t *testing.T) {
	repo := NewTransactionRepository(kv.NewMemoryStore())
	repo.Save(sampleTransaction("a", "10"))

	if err := repo.Clear(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	transactions, _ := repo.List()
	if len(transactions) != 0 {
		t.Errorf("Expected empty list after clear, got %d", len(transactions))
	}
}

func TestTransactionRepository_ReadsBareArrayLayout(t *testing.T) {
	store := kv.NewMemoryStore()
	legacy := `[{"id":"t1","type":"expense","amount":"45.5","category":{"id":"food","name":"Food & Dining","icon":"food","color":"#FF9800","type":"expense"},"date":"2026-08-10T09:00:00Z"}]`
	if err := store.Set("flowtrack.transactions", legacy); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	repo := NewTransactionRepository(store)

	transactions, err := repo.List()
	if err != nil {
		t.Fatalf("Expected legacy layout to be readable, got %v", err)
	}
	if len(transactions) != 1 || transactions[0].ID != "t1" {
		t.Errorf("Expected the legacy transaction, got %d", len(transactions))
	}
}

func TestTransactionRepository_MalformedData(t *testing.T) {
	store := kv.NewMemoryStore()
	store.Set("flowtrack.transactions", "{broken")
	repo := NewTransactionRepository(store)

	_, err := repo.List()
	if !errors.Is(err, domain.ErrMalformedData) {
		t.Errorf("Expected ErrMalformedData, got %v", err)
	}
}

func TestTransactionRepository_UnsupportedVersion(t *testing.T) {
	store := kv.NewMemoryStore()
	store.Set("flowtrack.transactions", `{"version":99,"data":[]}`)
	repo := NewTransactionRepository(store)

	_, err := repo.List()
	if !errors.Is(err, domain.ErrMalformedData) {
		t.Errorf("Expected ErrMalformedData for future version, got %v", err)
	}
}
