package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/homesteadmill/storefront/internal/catalog/domain"
	"github.com/homesteadmill/storefront/pkg/logger"
)

const (
	defaultAPIVersion = "2023-10"
	defaultTimeout    = 30 * time.Second

	accessTokenHeader = "X-Shopify-Storefront-Access-Token"
)

// Config holds the Storefront API connection settings.
type Config struct {
	Domain      string
	AccessToken string
	APIVersion  string
	Timeout     time.Duration
}

// Client speaks the Shopify Storefront GraphQL API. It implements
// domain.Gateway.
type Client struct {
	endpoint    string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a Storefront API client with an instrumented transport.
func NewClient(cfg Config) *Client {
	version := cfg.APIVersion
	if version == "" {
		version = defaultAPIVersion
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		endpoint:    fmt.Sprintf("https://%s/api/%s/graphql.json", cfg.Domain, version),
		accessToken: cfg.AccessToken,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// execute posts a GraphQL document and returns the data payload.
func (c *Client) execute(ctx context.Context, query string, variables map[string]interface{}) (gjson.Result, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(accessTokenHeader, c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to read gateway response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return gjson.Result{}, fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	parsed := gjson.ParseBytes(body)
	if errs := parsed.Get("errors"); errs.IsArray() && len(errs.Array()) > 0 {
		first := errs.Array()[0].Get("message").String()
		return gjson.Result{}, fmt.Errorf("gateway query error: %s", first)
	}

	return parsed.Get("data"), nil
}

// FetchAllProducts pages through the full product listing.
func (c *Client) FetchAllProducts(ctx context.Context, pageSize int) ([]domain.RawProduct, error) {
	if pageSize <= 0 {
		pageSize = 50
	}

	var products []domain.RawProduct
	var cursor interface{}

	for {
		data, err := c.execute(ctx, productsQuery, map[string]interface{}{
			"first": pageSize,
			"after": cursor,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch products: %w", err)
		}

		conn := data.Get("products")
		conn.Get("edges").ForEach(func(_, edge gjson.Result) bool {
			products = append(products, parseProduct(edge.Get("node")))
			return true
		})

		if !conn.Get("pageInfo.hasNextPage").Bool() {
			break
		}
		cursor = conn.Get("pageInfo.endCursor").String()
	}

	logger.Debug(ctx).
		Int("count", len(products)).
		Msg("Fetched products from gateway")

	return products, nil
}

// FetchAllCollections fetches every collection with its member products. The
// members connection is kept as raw JSON; classification tolerates the shape.
func (c *Client) FetchAllCollections(ctx context.Context) ([]domain.RawCollection, error) {
	data, err := c.execute(ctx, collectionsQuery, map[string]interface{}{
		"first":        50,
		"productCount": 50,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch collections: %w", err)
	}

	var collections []domain.RawCollection
	data.Get("collections.edges").ForEach(func(_, edge gjson.Result) bool {
		node := edge.Get("node")
		collections = append(collections, domain.RawCollection{
			ID:       node.Get("id").String(),
			Handle:   node.Get("handle").String(),
			Title:    node.Get("title").String(),
			Products: json.RawMessage(node.Get("products").Raw),
		})
		return true
	})

	logger.Debug(ctx).
		Int("count", len(collections)).
		Msg("Fetched collections from gateway")

	return collections, nil
}

// CreateCart creates a fresh cart resource.
func (c *Client) CreateCart(ctx context.Context) (*domain.Cart, error) {
	data, err := c.execute(ctx, cartCreateMutation, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}
	return cartFromPayload(data.Get("cartCreate"))
}

// FetchCart fetches an existing cart by ID.
func (c *Client) FetchCart(ctx context.Context, id string) (*domain.Cart, error) {
	data, err := c.execute(ctx, cartQuery, map[string]interface{}{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart: %w", err)
	}
	cart := data.Get("cart")
	if !cart.Exists() || cart.Type == gjson.Null {
		return nil, fmt.Errorf("cart %q not found", id)
	}
	return parseCart(cart), nil
}

// AddLineItems adds variants to the cart and returns the gateway's new cart
// state.
func (c *Client) AddLineItems(ctx context.Context, cartID string, lines []domain.CartLineInput) (*domain.Cart, error) {
	inputs := make([]map[string]interface{}, 0, len(lines))
	for _, line := range lines {
		inputs = append(inputs, map[string]interface{}{
			"merchandiseId": line.VariantID,
			"quantity":      line.Quantity,
		})
	}

	data, err := c.execute(ctx, cartLinesAddMutation, map[string]interface{}{
		"cartId": cartID,
		"lines":  inputs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add line items: %w", err)
	}
	return cartFromPayload(data.Get("cartLinesAdd"))
}

// RemoveLineItems removes cart lines by ID.
func (c *Client) RemoveLineItems(ctx context.Context, cartID string, lineIDs []string) (*domain.Cart, error) {
	data, err := c.execute(ctx, cartLinesRemoveMutation, map[string]interface{}{
		"cartId":  cartID,
		"lineIds": lineIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to remove line items: %w", err)
	}
	return cartFromPayload(data.Get("cartLinesRemove"))
}

// UpdateLineItems changes quantities on existing cart lines.
func (c *Client) UpdateLineItems(ctx context.Context, cartID string, updates []domain.CartLineUpdate) (*domain.Cart, error) {
	inputs := make([]map[string]interface{}, 0, len(updates))
	for _, update := range updates {
		inputs = append(inputs, map[string]interface{}{
			"id":       update.ID,
			"quantity": update.Quantity,
		})
	}

	data, err := c.execute(ctx, cartLinesUpdateMutation, map[string]interface{}{
		"cartId": cartID,
		"lines":  inputs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update line items: %w", err)
	}
	return cartFromPayload(data.Get("cartLinesUpdate"))
}

// cartFromPayload unwraps a cart mutation payload, surfacing user errors.
func cartFromPayload(payload gjson.Result) (*domain.Cart, error) {
	if userErrors := payload.Get("userErrors"); userErrors.IsArray() {
		if errs := userErrors.Array(); len(errs) > 0 {
			return nil, fmt.Errorf("cart mutation rejected: %s", errs[0].Get("message").String())
		}
	}
	cart := payload.Get("cart")
	if !cart.Exists() || cart.Type == gjson.Null {
		return nil, fmt.Errorf("cart mutation returned no cart")
	}
	return parseCart(cart), nil
}

func parseProduct(node gjson.Result) domain.RawProduct {
	p := domain.RawProduct{
		ID:          node.Get("id").String(),
		Title:       node.Get("title").String(),
		Description: node.Get("description").String(),
		ProductType: node.Get("productType").String(),
		Handle:      node.Get("handle").String(),
	}

	node.Get("images.edges").ForEach(func(_, edge gjson.Result) bool {
		img := edge.Get("node")
		p.Images = append(p.Images, domain.RawImage{
			URL:     img.Get("url").String(),
			AltText: img.Get("altText").String(),
		})
		return true
	})

	node.Get("variants.edges").ForEach(func(_, edge gjson.Result) bool {
		v := edge.Get("node")
		variant := domain.RawVariant{
			ID:    v.Get("id").String(),
			Title: v.Get("title").String(),
			Price: domain.RawMoney{
				Amount:       v.Get("price.amount").String(),
				CurrencyCode: v.Get("price.currencyCode").String(),
			},
		}
		if img := v.Get("image"); img.Exists() && img.Type != gjson.Null {
			variant.Image = &domain.RawImage{
				URL:     img.Get("url").String(),
				AltText: img.Get("altText").String(),
			}
		}
		p.Variants = append(p.Variants, variant)
		return true
	})

	return p
}

func parseCart(cart gjson.Result) *domain.Cart {
	out := &domain.Cart{
		ID:     cart.Get("id").String(),
		WebURL: cart.Get("checkoutUrl").String(),
	}

	cart.Get("lines.edges").ForEach(func(_, edge gjson.Result) bool {
		node := edge.Get("node")
		merchandise := node.Get("merchandise")
		out.LineItems = append(out.LineItems, domain.LineItem{
			ID:        node.Get("id").String(),
			Title:     merchandise.Get("product.title").String(),
			VariantID: merchandise.Get("id").String(),
			Quantity:  int(node.Get("quantity").Int()),
			Price:     merchandise.Get("price.amount").Float(),
			Image:     merchandise.Get("image.url").String(),
		})
		return true
	})

	return out
}
