package kvstore

import (
	"fmt"

	"github.com/flowtrack/flowtrack-backend/internal/kv"
)

// SettingsRepository persists the selected currency code as a plain
// string value.
type SettingsRepository struct {
	store       kv.Store
	defaultCode string
}

// NewSettingsRepository creates a SettingsRepository falling back to
// defaultCode when nothing has been selected yet.
func NewSettingsRepository(store kv.Store, defaultCode string) *SettingsRepository {
	return &SettingsRepository{store: store, defaultCode: defaultCode}
}

// GetCurrency returns the selected currency code, or the configured
// default when none is stored.
func (r *SettingsRepository) GetCurrency() (string, error) {
	code, ok, err := r.store.Get(currencyKey)
	if err != nil {
		return "", fmt.Errorf("read currency: %w", err)
	}
	if !ok || code == "" {
		return r.defaultCode, nil
	}
	return code, nil
}

// SetCurrency stores the selected currency code.
func (r *SettingsRepository) SetCurrency(code string) error {
	if err := r.store.Set(currencyKey, code); err != nil {
		return fmt.Errorf("write currency: %w", err)
	}
	return nil
}
