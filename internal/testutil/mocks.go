package testutil

import (
	"fmt"
	"sync"

	"github.com/flowtrack/flowtrack-backend/internal/domain"
	"github.com/flowtrack/flowtrack-backend/internal/websocket"
)

// MockTransactionRepository is a mock implementation of domain.TransactionRepository
type MockTransactionRepository struct {
	Transactions []*domain.Transaction
	NextID       int

	ListErr   error
	SaveErr   error
	UpdateErr error
	DeleteErr error
}

// NewMockTransactionRepository creates a new MockTransactionRepository
func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{NextID: 1}
}

// List returns all stored transactions
func (m *MockTransactionRepository) List() ([]*domain.Transaction, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]*domain.Transaction, len(m.Transactions))
	copy(out, m.Transactions)
	return out, nil
}

// Save appends a transaction, assigning an ID when missing
func (m *MockTransactionRepository) Save(transaction *domain.Transaction) (*domain.Transaction, error) {
	if m.SaveErr != nil {
		return nil, m.SaveErr
	}
	if transaction.ID == "" {
		transaction.ID = fmt.Sprintf("tx-%d", m.NextID)
		m.NextID++
	}
	m.Transactions = append(m.Transactions, transaction)
	return transaction, nil
}

// Update replaces the transaction with the matching ID
func (m *MockTransactionRepository) Update(transaction *domain.Transaction) (*domain.Transaction, error) {
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	for i, t := range m.Transactions {
		if t.ID == transaction.ID {
			m.Transactions[i] = transaction
			return transaction, nil
		}
	}
	return nil, domain.ErrTransactionNotFound
}

// Delete removes the transaction with the given ID, silently ignoring
// unknown IDs
func (m *MockTransactionRepository) Delete(id string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	for i, t := range m.Transactions {
		if t.ID == id {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return nil
}

// Replace swaps the whole collection
func (m *MockTransactionRepository) Replace(transactions []*domain.Transaction) error {
	m.Transactions = transactions
	return nil
}

// Clear removes every transaction
func (m *MockTransactionRepository) Clear() error {
	m.Transactions = nil
	return nil
}

// AddTransaction adds a transaction to the mock repository (helper for tests)
func (m *MockTransactionRepository) AddTransaction(transaction *domain.Transaction) {
	m.Transactions = append(m.Transactions, transaction)
}

// MockCategoryRepository is a mock implementation of domain.CategoryRepository
type MockCategoryRepository struct {
	Categories []*domain.Category
	NextID     int

	ListErr   error
	SaveErr   error
	UpdateErr error
	DeleteErr error
}

// NewMockCategoryRepository creates a new MockCategoryRepository
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{NextID: 1}
}

// List returns all stored categories
func (m *MockCategoryRepository) List() ([]*domain.Category, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]*domain.Category, len(m.Categories))
	copy(out, m.Categories)
	return out, nil
}

// Save appends a category, assigning an ID when missing
func (m *MockCategoryRepository) Save(category *domain.Category) (*domain.Category, error) {
	if m.SaveErr != nil {
		return nil, m.SaveErr
	}
	if category.ID == "" {
		category.ID = fmt.Sprintf("cat-%d", m.NextID)
		m.NextID++
	}
	m.Categories = append(m.Categories, category)
	return category, nil
}

// Update replaces the category with the matching ID
func (m *MockCategoryRepository) Update(category *domain.Category) (*domain.Category, error) {
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	for i, c := range m.Categories {
		if c.ID == category.ID {
			m.Categories[i] = category
			return category, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

// Delete removes the category with the given ID, silently ignoring
// unknown IDs
func (m *MockCategoryRepository) Delete(id string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	for i, c := range m.Categories {
		if c.ID == id {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return nil
}

// Replace swaps the whole collection
func (m *MockCategoryRepository) Replace(categories []*domain.Category) error {
	m.Categories = categories
	return nil
}

// Clear removes every category
func (m *MockCategoryRepository) Clear() error {
	m.Categories = nil
	return nil
}

// AddCategory adds a category to the mock repository (helper for tests)
func (m *MockCategoryRepository) AddCategory(category *domain.Category) {
	m.Categories = append(m.Categories, category)
}

// MockSettingsRepository is a mock implementation of domain.SettingsRepository
type MockSettingsRepository struct {
	Currency    string
	DefaultCode string

	GetErr error
	SetErr error

	GetCalls int
}

// NewMockSettingsRepository creates a new MockSettingsRepository
func NewMockSettingsRepository(defaultCode string) *MockSettingsRepository {
	return &MockSettingsRepository{DefaultCode: defaultCode}
}

// GetCurrency returns the stored code, falling back to the default
func (m *MockSettingsRepository) GetCurrency() (string, error) {
	m.GetCalls++
	if m.GetErr != nil {
		return "", m.GetErr
	}
	if m.Currency == "" {
		return m.DefaultCode, nil
	}
	return m.Currency, nil
}

// SetCurrency stores the code
func (m *MockSettingsRepository) SetCurrency(code string) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Currency = code
	return nil
}

// MockPublisher records published events (helper for tests)
type MockPublisher struct {
	mu     sync.Mutex
	Events []websocket.Event
}

// Publish records the event
func (m *MockPublisher) Publish(event websocket.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, event)
}

// EventTypes returns the types of all recorded events in order
func (m *MockPublisher) EventTypes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, len(m.Events))
	for i, e := range m.Events {
		types[i] = e.Type
	}
	return types
}
