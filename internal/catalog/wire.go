//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"

	httpDelivery "github.com/homesteadmill/storefront/internal/catalog/delivery/http"
	"github.com/homesteadmill/storefront/internal/catalog/domain"
	"github.com/homesteadmill/storefront/internal/catalog/session"
	"github.com/homesteadmill/storefront/internal/catalog/usecase/query"
	"github.com/homesteadmill/storefront/kafka"
)

// ProvideSession provides the single state-owning session
func ProvideSession(gateway domain.Gateway, snapshots domain.SnapshotStore, cartRefs domain.CartRefStore, publisher *kafka.Publisher) *session.Session {
	return session.New(gateway, snapshots, cartRefs, publisher)
}

// Wire sets
var SessionSet = wire.NewSet(
	ProvideSession,
	wire.Bind(new(query.CatalogReader), new(*session.Session)),
)

// InitializeApp initializes the session and HTTP handler with all dependencies
func InitializeApp(gateway domain.Gateway, snapshots domain.SnapshotStore, cartRefs domain.CartRefStore, publisher *kafka.Publisher) (*App, error) {
	wire.Build(
		SessionSet,
		query.NewListProductsHandler,
		query.NewGetProductHandler,
		query.NewFeaturedProductsHandler,
		httpDelivery.NewCatalogHandler,
		NewApp,
	)
	return nil, nil
}
