package domain

import (
	"context"
	"errors"
	"time"
)

// SnapshotTTL bounds how long a cached snapshot is served before it is
// treated as absent.
const SnapshotTTL = 24 * time.Hour

// ErrSnapshotNotFound is returned by snapshot stores when no usable snapshot
// exists. Expired and corrupt snapshots report it too.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// ErrCartRefNotFound is returned when no cart reference has been persisted.
var ErrCartRefNotFound = errors.New("cart reference not found")

// Snapshot is the cached copy of the last successful product/collection
// fetch, tagged with an epoch-millisecond timestamp.
type Snapshot struct {
	Products    []RawProduct    `json:"products"`
	Collections []RawCollection `json:"collections"`
	Timestamp   int64           `json:"timestamp"`
}

// NewSnapshot stamps the given fetch results with the current time.
func NewSnapshot(products []RawProduct, collections []RawCollection) *Snapshot {
	return &Snapshot{
		Products:    products,
		Collections: collections,
		Timestamp:   time.Now().UnixMilli(),
	}
}

// Fresh reports whether the snapshot is still inside the TTL window.
func (s *Snapshot) Fresh(now time.Time) bool {
	age := now.UnixMilli() - s.Timestamp
	return age >= 0 && age < SnapshotTTL.Milliseconds()
}

// SnapshotStore persists the single snapshot slot. Save always overwrites;
// there is no merge or partial update.
type SnapshotStore interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
}

// CartRefStore persists the cart identifier so sessions resume the same cart.
type CartRefStore interface {
	LoadCartID(ctx context.Context) (string, error)
	SaveCartID(ctx context.Context, id string) error
}
