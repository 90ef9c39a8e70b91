// Package kv provides the string-keyed blob store the repositories
// persist into, with file, SQLite and in-memory backends.
package kv

// Store is a flat key-value store over string keys and string values.
// Implementations must make Set all-or-nothing: a failed write leaves
// the previous value intact.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool, error)
	// Set writes the value, replacing any previous one.
	Set(key, value string) error
	// Remove deletes the key. Removing an absent key is not an error.
	Remove(key string) error
}
