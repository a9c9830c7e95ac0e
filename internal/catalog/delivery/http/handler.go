package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/homesteadmill/storefront/internal/catalog/session"
	"github.com/homesteadmill/storefront/internal/catalog/usecase/query"
	"github.com/homesteadmill/storefront/pkg/logger"
)

// CatalogHandler handles HTTP requests for the storefront catalog and cart.
type CatalogHandler struct {
	session *session.Session

	// Query handlers
	listHandler     *query.ListProductsHandler
	getHandler      *query.GetProductHandler
	featuredHandler *query.FeaturedProductsHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	catalogSize    prometheus.Gauge
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(
	sess *session.Session,
	listHandler *query.ListProductsHandler,
	getHandler *query.GetProductHandler,
	featuredHandler *query.FeaturedProductsHandler,
) *CatalogHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_requests_total",
			Help: "Total number of requests to the storefront service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_request_duration_seconds",
			Help:    "Duration of storefront requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Summary metric for percentile calculation (p50, p90, p95, p99)
	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "storefront_request_duration_summary",
			Help: "Summary of request durations with percentiles (client-side quantiles)",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	catalogSize := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_catalog_products",
			Help: "Number of products in the committed catalog",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestSummary)
	prometheus.MustRegister(catalogSize)

	return &CatalogHandler{
		session:         sess,
		listHandler:     listHandler,
		getHandler:      getHandler,
		featuredHandler: featuredHandler,
		requestCounter:  requestCounter,
		requestLatency:  requestLatency,
		requestSummary:  requestSummary,
		catalogSize:     catalogSize,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers the storefront routes.
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products/featured", h.metricsMiddleware("/api/products/featured", h.FeaturedProducts)).Methods("GET")
	router.HandleFunc("/api/products/{handle}", h.metricsMiddleware("/api/products/{handle}", h.GetProduct)).Methods("GET")

	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", h.GetCart)).Methods("GET")
	router.HandleFunc("/api/cart/lines", h.metricsMiddleware("/api/cart/lines", h.AddLine)).Methods("POST")
	router.HandleFunc("/api/cart/lines/{id}", h.metricsMiddleware("/api/cart/lines/{id}", h.UpdateLine)).Methods("PATCH")
	router.HandleFunc("/api/cart/lines/{id}", h.metricsMiddleware("/api/cart/lines/{id}", h.RemoveLine)).Methods("DELETE")

	router.HandleFunc("/api/catalog/refresh", h.metricsMiddleware("/api/catalog/refresh", h.RefreshCatalog)).Methods("POST")
}

// RegisterHealthCheck registers the health endpoint.
func (h *CatalogHandler) RegisterHealthCheck(router *mux.Router) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Data: map[string]interface{}{
				"status":   "healthy",
				"products": len(h.session.Products()),
			},
		})
	}).Methods("GET")
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	category := r.URL.Query().Get("category")

	products := h.listHandler.Handle(query.ListProductsQuery{
		Category: category,
		Limit:    limit,
		Offset:   offset,
	})

	h.catalogSize.Set(float64(len(h.session.Products())))

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    products,
	})
}

// FeaturedProducts handles GET /api/products/featured
func (h *CatalogHandler) FeaturedProducts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    h.featuredHandler.Handle(),
	})
}

// GetProduct handles GET /api/products/{handle}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	handle := mux.Vars(r)["handle"]

	product, err := h.getHandler.Handle(query.GetProductQuery{Handle: handle})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

type cartPayload struct {
	Cart        interface{} `json:"cart"`
	CartOpen    bool        `json:"cart_open"`
	CheckoutURL string      `json:"checkout_url,omitempty"`
}

func (h *CatalogHandler) cartResponse() cartPayload {
	return cartPayload{
		Cart:        h.session.Cart(),
		CartOpen:    h.session.IsCartOpen(),
		CheckoutURL: h.session.CheckoutURL(),
	}
}

// GetCart handles GET /api/cart
func (h *CatalogHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    h.cartResponse(),
	})
}

// AddLine handles POST /api/cart/lines
func (h *CatalogHandler) AddLine(w http.ResponseWriter, r *http.Request) {
	var req struct {
		VariantID string `json:"variant_id"`
		Quantity  int    `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := h.session.AddLine(r.Context(), req.VariantID, req.Quantity); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to add cart line")
		respondJSON(w, http.StatusBadGateway, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Line item added",
		Data:    h.cartResponse(),
	})
}

// UpdateLine handles PATCH /api/cart/lines/{id}
func (h *CatalogHandler) UpdateLine(w http.ResponseWriter, r *http.Request) {
	lineID := mux.Vars(r)["id"]

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := h.session.UpdateLine(r.Context(), lineID, req.Quantity); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to update cart line")
		respondJSON(w, http.StatusBadGateway, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Line item updated",
		Data:    h.cartResponse(),
	})
}

// RemoveLine handles DELETE /api/cart/lines/{id}
func (h *CatalogHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	lineID := mux.Vars(r)["id"]

	if err := h.session.RemoveLine(r.Context(), lineID); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to remove cart line")
		respondJSON(w, http.StatusBadGateway, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Line item removed",
		Data:    h.cartResponse(),
	})
}

// RefreshCatalog handles POST /api/catalog/refresh
func (h *CatalogHandler) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	if err := h.session.Refresh(r.Context()); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Catalog refresh failed")
		respondJSON(w, http.StatusBadGateway, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.catalogSize.Set(float64(len(h.session.Products())))

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Catalog refreshed",
		Data: map[string]int{
			"products":    len(h.session.Products()),
			"collections": len(h.session.Collections()),
		},
	})
}

func respondJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode response")
	}
}
