// Package backup keeps snapshots of save files taken before they are
// overwritten, so an edit can be undone.
package backup

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// DefaultTTL is how long snapshots are kept when no TTL is configured.
const DefaultTTL = 30 * 24 * time.Hour

// Snapshot describes one stored copy of a save.
type Snapshot struct {
	ID        string
	Save      string
	Taken     time.Time
	ExpiresAt time.Time
	Hash      string
	Size      int
}

// Store keeps snapshots keyed by save path.
type Store interface {
	// Put stores data as the newest snapshot of save. It reports false
	// without storing anything when data matches the newest snapshot.
	Put(ctx context.Context, save string, data []byte) (Snapshot, bool, error)

	// List returns the live snapshots of save, newest first.
	List(ctx context.Context, save string) ([]Snapshot, error)

	// Read returns the contents of a snapshot.
	Read(ctx context.Context, snap Snapshot) ([]byte, error)

	// Prune removes expired snapshots of every save.
	Prune(ctx context.Context) (int, error)

	Close() error
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
