package command

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/homesteadmill/storefront/internal/catalog/domain"
	"github.com/homesteadmill/storefront/pkg/logger"
)

// RefreshCatalogCommand represents the command to refetch the whole catalog
// from the gateway.
type RefreshCatalogCommand struct {
	PageSize int
}

// RefreshCatalogResult carries the classified and normalized catalog.
type RefreshCatalogResult struct {
	Products    []domain.Product
	Collections []domain.RawCollection
	Index       domain.CategoryIndex
}

// RefreshCatalogHandler handles the catalog refresh command.
type RefreshCatalogHandler struct {
	gateway   domain.Gateway
	snapshots domain.SnapshotStore
}

// NewRefreshCatalogHandler creates a new refresh catalog handler.
func NewRefreshCatalogHandler(gateway domain.Gateway, snapshots domain.SnapshotStore) *RefreshCatalogHandler {
	return &RefreshCatalogHandler{gateway: gateway, snapshots: snapshots}
}

// Handle fetches products and collections concurrently, joins both before
// anything is committed, classifies, normalizes, and overwrites the snapshot
// cache. A snapshot write failure is logged, not surfaced; the fetch result
// is still returned.
func (h *RefreshCatalogHandler) Handle(ctx context.Context, cmd RefreshCatalogCommand) (*RefreshCatalogResult, error) {
	if cmd.PageSize <= 0 {
		cmd.PageSize = 50
	}

	var (
		rawProducts []domain.RawProduct
		collections []domain.RawCollection
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rawProducts, err = h.gateway.FetchAllProducts(gctx, cmd.PageSize)
		return err
	})
	g.Go(func() error {
		var err error
		collections, err = h.gateway.FetchAllCollections(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to refresh catalog: %w", err)
	}

	index := domain.Classify(collections)
	products := make([]domain.Product, 0, len(rawProducts))
	for _, raw := range rawProducts {
		products = append(products, domain.Normalize(raw, index))
	}

	if h.snapshots != nil {
		if err := h.snapshots.Save(ctx, domain.NewSnapshot(rawProducts, collections)); err != nil {
			logger.Warn(ctx).Err(err).Msg("Failed to persist catalog snapshot")
		}
	}

	return &RefreshCatalogResult{
		Products:    products,
		Collections: collections,
		Index:       index,
	}, nil
}
