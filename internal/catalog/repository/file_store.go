package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/homesteadmill/storefront/internal/catalog/domain"
	"github.com/homesteadmill/storefront/pkg/logger"
)

const (
	snapshotFileName = "catalog_snapshot.json"
	cartRefFileName  = "cart_id"
)

// FileStore persists the snapshot and the cart reference as files under a
// single directory. It is the server-side analog of the storefront's
// local-storage cache slot.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed store rooted at dir.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// Load reads the snapshot blob. A missing, corrupt, or expired blob is
// reported as domain.ErrSnapshotNotFound; corruption is logged, never
// propagated.
func (s *FileStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	data, err := os.ReadFile(s.snapshotPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrSnapshotNotFound
		}
		logger.Warn(ctx).Err(err).Msg("Failed to read snapshot cache")
		return nil, domain.ErrSnapshotNotFound
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		logger.Warn(ctx).Err(err).Msg("Discarding corrupt snapshot cache")
		return nil, domain.ErrSnapshotNotFound
	}

	if !snap.Fresh(time.Now()) {
		logger.Debug(ctx).
			Int64("timestamp", snap.Timestamp).
			Msg("Snapshot cache expired")
		return nil, domain.ErrSnapshotNotFound
	}

	return &snap, nil
}

// Save overwrites the single snapshot slot, regardless of previous cache age.
func (s *FileStore) Save(ctx context.Context, snap *domain.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.writeFile(s.snapshotPath(), data)
}

// LoadCartID reads the persisted cart identifier.
func (s *FileStore) LoadCartID(ctx context.Context) (string, error) {
	data, err := os.ReadFile(s.cartRefPath())
	if err != nil {
		return "", domain.ErrCartRefNotFound
	}
	id := strings.TrimSpace(string(data))
	if id == "" {
		return "", domain.ErrCartRefNotFound
	}
	return id, nil
}

// SaveCartID overwrites the persisted cart identifier.
func (s *FileStore) SaveCartID(ctx context.Context, id string) error {
	return s.writeFile(s.cartRefPath(), []byte(id))
}

// writeFile writes via a temp file and rename so readers never observe a
// partial blob.
func (s *FileStore) writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, ".cache-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}

func (s *FileStore) snapshotPath() string {
	return filepath.Join(s.dir, snapshotFileName)
}

func (s *FileStore) cartRefPath() string {
	return filepath.Join(s.dir, cartRefFileName)
}
