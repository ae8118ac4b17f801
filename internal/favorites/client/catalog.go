package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tair/favorites-api/internal/favorites/domain"
	"github.com/tair/favorites-api/pkg/logger"
)

const requestTimeout = 5 * time.Second

// CatalogClient fetches product data from the remote catalog API.
type CatalogClient struct {
	baseURL string
	client  *http.Client
}

// NewCatalogClient creates a client for the catalog at baseURL.
func NewCatalogClient(baseURL string) *CatalogClient {
	return &CatalogClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout:   requestTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// ProductURL is the canonical catalog detail URL for a product id. It also
// serves as the synthesized link for rows that arrive without one.
func (c *CatalogClient) ProductURL(id uint) string {
	return fmt.Sprintf("%s/api/product/%d/", c.baseURL, id)
}

// productPayload tolerates both field spellings the catalog has used for
// the review score across its API revisions.
type productPayload struct {
	ID              uint            `json:"id"`
	Title           string          `json:"title"`
	Image           string          `json:"image"`
	Price           decimal.Decimal `json:"price"`
	ReviewScore     *int            `json:"review_score"`
	ReviewScoreCaml *int            `json:"reviewScore"`
	Link            string          `json:"link"`
}

// GetProduct fetches a product from the catalog. Any non-200 response, any
// transport failure (timeouts included) and any malformed body surface as
// ErrProductNotFound; the caller does not retry.
func (c *CatalogClient) GetProduct(ctx context.Context, id uint) (*domain.Product, error) {
	url := c.ProductURL(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Warn(ctx).
			Err(err).
			Uint("product_id", id).
			Msg("Catalog request failed")
		return nil, domain.ErrProductNotFound
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Debug(ctx).
			Int("status", resp.StatusCode).
			Uint("product_id", id).
			Msg("Catalog returned non-200")
		return nil, domain.ErrProductNotFound
	}

	var payload productPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.Warn(ctx).
			Err(err).
			Uint("product_id", id).
			Msg("Malformed catalog payload")
		return nil, domain.ErrProductNotFound
	}

	score := payload.ReviewScore
	if score == nil {
		score = payload.ReviewScoreCaml
	}

	link := payload.Link
	if link == "" {
		link = url
	}

	return &domain.Product{
		ID:          payload.ID,
		Title:       payload.Title,
		Image:       payload.Image,
		Price:       payload.Price,
		ReviewScore: score,
		Link:        link,
	}, nil
}
