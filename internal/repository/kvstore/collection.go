// Package kvstore implements the repositories over a kv.Store. Every
// mutation reads the whole collection, changes it in memory and writes
// the whole collection back, which is O(n) per operation. That is the
// deliberate trade for a single-user local store; collections stay
// small.
package kvstore

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/flowtrack/flowtrack-backend/internal/domain"
	"github.com/flowtrack/flowtrack-backend/internal/kv"
)

// Storage keys
const (
	transactionsKey = "flowtrack.transactions"
	categoriesKey   = "flowtrack.categories"
	currencyKey     = "flowtrack.currency"
)

// envelope wraps a persisted collection with a schema version so the
// record shape can evolve later.
type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// readCollection decodes the value under key into out. A missing key
// leaves out untouched and returns false. A bare JSON array (the
// pre-versioned layout, version 0) is accepted alongside the current
// envelope.
func readCollection(store kv.Store, key string, out any) (bool, error) {
	raw, ok, err := store.Get(key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}

	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal([]byte(trimmed), out); err != nil {
			return false, fmt.Errorf("%w: %s: %v", domain.ErrMalformedData, key, err)
		}
		return true, nil
	}

	var env envelope
	if err := json.Unmarshal([]byte(trimmed), &env); err != nil {
		return false, fmt.Errorf("%w: %s: %v", domain.ErrMalformedData, key, err)
	}
	if env.Version > domain.SnapshotVersion {
		return false, fmt.Errorf("%w: %s: unsupported version %d", domain.ErrMalformedData, key, env.Version)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return false, fmt.Errorf("%w: %s: %v", domain.ErrMalformedData, key, err)
	}
	return true, nil
}

// writeCollection encodes records under key in the current envelope.
func writeCollection(store kv.Store, key string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	value, err := json.Marshal(envelope{Version: domain.SnapshotVersion, Data: data})
	if err != nil {
		return fmt.Errorf("encode %s envelope: %w", key, err)
	}
	if err := store.Set(key, string(value)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
