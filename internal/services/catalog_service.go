package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"shopfront/internal/errors"
	"shopfront/internal/models"
)

// CatalogService fetches the product list from the upstream catalog API.
type CatalogService struct {
	catalogURL string
	client     *http.Client
	logger     *log.Logger
}

func NewCatalogService(catalogURL string, timeout time.Duration, logger *log.Logger) *CatalogService {
	return &CatalogService{
		catalogURL: catalogURL,
		client:     &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// FetchProducts performs one GET against the catalog endpoint and decodes
// the product list. Nothing is cached on either side of the call, so every
// page render reflects the current upstream state.
func (cs *CatalogService) FetchProducts(ctx context.Context) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cs.catalogURL, nil)
	if err != nil {
		return nil, errors.NewInternalError(fmt.Errorf("failed to create request: %v", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := cs.client.Do(req)
	if err != nil {
		cs.logger.Printf("Catalog request failed: %v", err)
		return nil, errors.NewExternalError("catalog", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		cs.logger.Printf("Catalog returned status %d: %s", resp.StatusCode, body)
		return nil, errors.NewExternalError("catalog", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var products []models.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, errors.NewExternalError("catalog", fmt.Errorf("failed to decode product list: %v", err))
	}

	cs.logger.Printf("Fetched %d products from catalog", len(products))
	return products, nil
}
