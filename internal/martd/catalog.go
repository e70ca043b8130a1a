// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

package martd

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mvsmart/storefront/internal/platform/apperr"
	requestutil "github.com/mvsmart/storefront/internal/platform/request"
	"github.com/mvsmart/storefront/internal/platform/respond"
)

// CatalogHandler implements the public product endpoints.
type CatalogHandler struct {
	store *Store
}

// NewCatalogHandler constructs a [CatalogHandler].
func NewCatalogHandler(store *Store) *CatalogHandler {
	return &CatalogHandler{store: store}
}

// Routes returns the catalog route group.
//
// # Endpoints
//   - GET /get  : Returns the full catalog.
//   - GET /{id} : Returns one product.
func (handler *CatalogHandler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/get", handler.list)
	router.Get("/{id}", handler.get)

	return router
}

// list returns the wholesale catalog snapshot. GET /product/get.
func (handler *CatalogHandler) list(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]any{"products": handler.store.Products()})
}

// get returns a single product. GET /product/{id}.
func (handler *CatalogHandler) get(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	product := handler.store.ProductByID(id)
	if product == nil {
		respond.Error(writer, request, apperr.NotFound("Product"))
		return
	}

	respond.OK(writer, map[string]any{"product": product})
}
