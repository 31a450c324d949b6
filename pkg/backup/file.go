package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	plaxerr "github.com/mapmaths/plax/pkg/errors"
)

// FileStore keeps snapshots as JSON files under a directory, one
// subdirectory per save.
type FileStore struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

// NewFileStore returns a store rooted at dir, creating it if needed.
// Snapshots expire after ttl; zero means DefaultTTL, negative never.
func NewFileStore(dir string, ttl time.Duration) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create backup dir: %w", err)
	}
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &FileStore{dir: dir, ttl: ttl, now: time.Now}, nil
}

type entry struct {
	Save      string    `json:"save"`
	Taken     time.Time `json:"taken"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
	Data      []byte    `json:"data"`
}

func (s *FileStore) Put(ctx context.Context, save string, data []byte) (Snapshot, bool, error) {
	save = absolute(save)
	hash := Hash(data)

	existing, err := s.List(ctx, save)
	if err != nil {
		return Snapshot{}, false, err
	}
	if len(existing) > 0 && existing[0].Hash == hash {
		return existing[0], false, nil
	}

	now := s.now().UTC()
	e := entry{Save: save, Taken: now, Data: data}
	if s.ttl > 0 {
		e.ExpiresAt = now.Add(s.ttl)
	}
	raw, err := json.Marshal(e)
	if err != nil {
		return Snapshot{}, false, err
	}

	id := fmt.Sprintf("%020d-%s", now.UnixNano(), hash[:12])
	dir := s.saveDir(save)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Snapshot{}, false, err
	}
	if err := os.WriteFile(filepath.Join(dir, id+".json"), raw, 0o644); err != nil {
		return Snapshot{}, false, fmt.Errorf("write snapshot: %w", err)
	}
	return snapshot(id, e), true, nil
}

func (s *FileStore) List(ctx context.Context, save string) ([]Snapshot, error) {
	save = absolute(save)
	des, err := os.ReadDir(s.saveDir(save))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var out []Snapshot
	for _, de := range des {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		id, ok := strings.CutSuffix(de.Name(), ".json")
		if !ok {
			continue
		}
		e, live, err := s.load(filepath.Join(s.saveDir(save), de.Name()))
		if err != nil {
			return nil, err
		}
		if !live {
			continue
		}
		out = append(out, snapshot(id, e))
	}
	slices.SortFunc(out, func(a, b Snapshot) int { return strings.Compare(b.ID, a.ID) })
	return out, nil
}

func (s *FileStore) Read(ctx context.Context, snap Snapshot) ([]byte, error) {
	path := filepath.Join(s.saveDir(absolute(snap.Save)), snap.ID+".json")
	e, live, err := s.load(path)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !live) {
		return nil, plaxerr.NotFound("snapshot %s of %s", snap.ID, snap.Save)
	}
	if err != nil {
		return nil, err
	}
	return e.Data, nil
}

func (s *FileStore) Prune(ctx context.Context) (int, error) {
	removed := 0
	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}
		_, live, err := s.load(path)
		if err != nil {
			return err
		}
		if !live {
			removed++
		}
		return nil
	})
	return removed, err
}

func (s *FileStore) Close() error { return nil }

// load reads a snapshot file. Corrupt or expired entries are removed and
// reported as not live.
func (s *FileStore) load(path string) (entry, bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return entry{}, false, err
	}
	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		_ = os.Remove(path)
		return entry{}, false, nil
	}
	if !e.ExpiresAt.IsZero() && s.now().After(e.ExpiresAt) {
		_ = os.Remove(path)
		return entry{}, false, nil
	}
	return e, true, nil
}

// saveDir spreads saves over subdirectories named by the hash of their path.
func (s *FileStore) saveDir(save string) string {
	h := Hash([]byte(save))
	return filepath.Join(s.dir, h[:2], h[2:])
}

func snapshot(id string, e entry) Snapshot {
	return Snapshot{
		ID:        id,
		Save:      e.Save,
		Taken:     e.Taken,
		ExpiresAt: e.ExpiresAt,
		Hash:      Hash(e.Data),
		Size:      len(e.Data),
	}
}

func absolute(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

var _ Store = (*FileStore)(nil)
