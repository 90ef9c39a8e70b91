package service

import (
	"sync"

	"github.com/flowtrack/flowtrack-backend/internal/domain"
	"github.com/flowtrack/flowtrack-backend/internal/websocket"
)

// SettingsService owns the selected currency. The code sits behind a
// read-through cache with an explicit Reload, replacing the mobile
// app's ambient per-screen lookups.
type SettingsService struct {
	settingsRepo domain.SettingsRepository
	publisher    websocket.EventPublisher

	mu     sync.RWMutex
	cached string
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(settingsRepo domain.SettingsRepository, publisher websocket.EventPublisher) *SettingsService {
	if publisher == nil {
		publisher = &websocket.NoOpPublisher{}
	}
	return &SettingsService{
		settingsRepo: settingsRepo,
		publisher:    publisher,
	}
}

// CurrencyCode returns the selected currency code, reading the store
// only on the first call.
func (s *SettingsService) CurrencyCode() (string, error) {
	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()
	if cached != "" {
		return cached, nil
	}

	code, err := s.settingsRepo.GetCurrency()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.cached = code
	s.mu.Unlock()
	return code, nil
}

// Currency returns the full descriptor for the selected currency.
func (s *SettingsService) Currency() (domain.Currency, error) {
	code, err := s.CurrencyCode()
	if err != nil {
		return domain.Currency{}, err
	}
	cur, ok := domain.LookupCurrency(code)
	if !ok {
		// A stale persisted code; fall back rather than fail reads.
		cur, _ = domain.LookupCurrency(domain.DefaultCurrencyCode)
	}
	return cur, nil
}

// SetCurrency selects a new currency.
func (s *SettingsService) SetCurrency(code string) error {
	if _, ok := domain.LookupCurrency(code); !ok {
		return domain.ErrUnknownCurrency
	}
	if err := s.settingsRepo.SetCurrency(code); err != nil {
		return err
	}

	s.mu.Lock()
	s.cached = code
	s.mu.Unlock()

	s.publisher.Publish(websocket.SettingsChanged(map[string]string{"currency": code}))
	return nil
}

// Reload drops the cache and re-reads the selected code from the store.
func (s *SettingsService) Reload() (string, error) {
	s.mu.Lock()
	s.cached = ""
	s.mu.Unlock()
	return s.CurrencyCode()
}

// Currencies returns every known currency descriptor, ordered by code.
func (s *SettingsService) Currencies() []domain.Currency {
	return domain.Currencies()
}
