// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

package commerce

import (
	"context"
	"log/slog"

	"github.com/mvsmart/storefront/pkg/fold"
	"github.com/mvsmart/storefront/pkg/pagination"
)

// # Catalog Cache

/*
FetchCatalog unconditionally refreshes the catalog cache from the server.

Description: Runs on startup and on every reload signal. On failure the
previous snapshot stays in place (stale-but-available) and the shopper sees
a transient notification.
*/
func (manager *Manager) FetchCatalog(ctx context.Context) {
	products, err := manager.backend.Products(ctx)
	if err != nil {
		manager.notify.Error("Failed to fetch products!")
		manager.log.Error("catalog_fetch_failed", slog.Any("error", err))
		return
	}

	manager.mu.Lock()
	manager.products = products
	manager.mu.Unlock()
}

/*
FetchProduct returns a single catalog entry straight from the server.

Description: The detail view always shows fresh data rather than the cached
snapshot, matching the rest of the re-fetch-over-patch policy.

Returns:
  - *Product: Hydrated entity
  - error: Already surfaced via the Notifier
*/
func (manager *Manager) FetchProduct(ctx context.Context, id string) (*Product, error) {
	product, err := manager.backend.Product(ctx, id)
	if err != nil {
		manager.notify.Error("Failed to fetch product!")
		return nil, err
	}
	return product, nil
}

// # Catalog Queries
// Pure reads over the cached snapshot; no network involved.

// Search returns catalog entries whose title contains the term,
// case- and accent-insensitively. An empty term matches everything.
func (manager *Manager) Search(term string) []Product {
	products := manager.Products()
	if term == "" {
		return products
	}

	matches := make([]Product, 0, len(products))
	for _, product := range products {
		if fold.Contains(product.Title, term) {
			matches = append(matches, product)
		}
	}
	return matches
}

// Related returns catalog entries sharing a category, excluding one product
// (the one currently on screen).
func (manager *Manager) Related(category, excludeID string) []Product {
	products := manager.Products()

	matches := make([]Product, 0, len(products))
	for _, product := range products {
		if product.ID == excludeID {
			continue
		}
		if fold.Fold(product.Category) == fold.Fold(category) {
			matches = append(matches, product)
		}
	}
	return matches
}

// Page windows a product list for display.
func Page(products []Product, page, perPage int) ([]Product, pagination.Meta) {
	params := pagination.Normalize(page, perPage)
	start, end := params.Window(len(products))
	return products[start:end], pagination.NewMeta(params.Page, params.Limit, len(products))
}
