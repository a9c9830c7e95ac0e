package repository

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/homesteadmill/storefront/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// TracedSnapshotStore wraps a SnapshotStore with tracing spans.
type TracedSnapshotStore struct {
	inner domain.SnapshotStore
}

// NewTracedSnapshotStore decorates the given store with tracing.
func NewTracedSnapshotStore(inner domain.SnapshotStore) *TracedSnapshotStore {
	return &TracedSnapshotStore{inner: inner}
}

// Load with tracing
func (s *TracedSnapshotStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	ctx, span := tracer.Start(ctx, "repository.LoadSnapshot")
	defer span.End()

	snap, err := s.inner.Load(ctx)
	if err != nil {
		// Cache misses are expected; only real failures mark the span.
		if !errors.Is(err, domain.ErrSnapshotNotFound) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.SetAttributes(attribute.Bool("cache.hit", false))
		return nil, err
	}

	span.SetAttributes(
		attribute.Bool("cache.hit", true),
		attribute.Int("snapshot.products", len(snap.Products)),
		attribute.Int("snapshot.collections", len(snap.Collections)),
		attribute.Int64("snapshot.timestamp", snap.Timestamp),
	)
	return snap, nil
}

// Save with tracing
func (s *TracedSnapshotStore) Save(ctx context.Context, snap *domain.Snapshot) error {
	ctx, span := tracer.Start(ctx, "repository.SaveSnapshot")
	defer span.End()

	span.SetAttributes(
		attribute.Int("snapshot.products", len(snap.Products)),
		attribute.Int("snapshot.collections", len(snap.Collections)),
	)

	if err := s.inner.Save(ctx, snap); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
