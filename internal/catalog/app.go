package catalog

import (
	httpDelivery "github.com/homesteadmill/storefront/internal/catalog/delivery/http"
	"github.com/homesteadmill/storefront/internal/catalog/session"
)

// App bundles the session state owner with its HTTP delivery so main can
// start the session and mount the routes from one initialization call.
type App struct {
	Session *session.Session
	Handler *httpDelivery.CatalogHandler
}

// NewApp creates the app bundle.
func NewApp(sess *session.Session, handler *httpDelivery.CatalogHandler) *App {
	return &App{Session: sess, Handler: handler}
}
