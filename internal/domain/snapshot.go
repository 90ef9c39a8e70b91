package domain

// SnapshotVersion is the current export/persistence schema version.
// Version 0 (no version field, bare arrays) is the pre-versioned layout
// and is still accepted on read.
const SnapshotVersion = 1

// Snapshot is the full exportable state: every transaction and every
// category. The selected currency code travels separately.
type Snapshot struct {
	Version      int            `json:"version"`
	Transactions []*Transaction `json:"transactions"`
	Categories   []*Category    `json:"categories"`
}
