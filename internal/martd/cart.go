// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

package martd

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mvsmart/storefront/internal/commerce"
	"github.com/mvsmart/storefront/internal/platform/apperr"
	"github.com/mvsmart/storefront/internal/platform/constants"
	"github.com/mvsmart/storefront/internal/platform/middleware"
	requestutil "github.com/mvsmart/storefront/internal/platform/request"
	"github.com/mvsmart/storefront/internal/platform/respond"
	"github.com/mvsmart/storefront/internal/platform/validate"
)

// CartHandler implements the authenticated cart endpoints.
//
// # Price Convention
//
// Cart line prices on the wire are LINE TOTALS, never unit prices. Merging
// an existing product therefore sums both qty and price.
type CartHandler struct {
	store *Store
}

// NewCartHandler constructs a [CartHandler].
func NewCartHandler(store *Store) *CartHandler {
	return &CartHandler{store: store}
}

// Routes returns the cart route group. Every endpoint requires a session.
//
// # Endpoints
//   - GET    /user               : Returns the user's cart.
//   - POST   /add                : Inserts or merges a cart line.
//   - POST   /--qty              : Decrements a line's quantity.
//   - DELETE /remove/{productId} : Deletes one line.
//   - DELETE /clear              : Empties the cart.
func (handler *CartHandler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/user", handler.get)
	router.Post("/add", handler.add)
	router.Post("/--qty", handler.decreaseQty)
	router.Delete("/remove/{productId}", handler.remove)
	router.Delete("/clear", handler.clear)

	return router
}

// # Request Payloads

type decreaseQtyRequest struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// get returns the cart as a confirmed snapshot. GET /cart/user.
func (handler *CartHandler) get(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"cart": commerce.Cart{Items: handler.store.CartFor(userID)},
	})
}

/*
add inserts or merges one cart line.

POST /cart/add

Description: A line for a product already in the cart merges into it: the
quantities add and the line totals add. The submitted price must already be
unit price × qty.

Response:
  - 200: {message, success}
  - 400: Validation failure
*/
func (handler *CartHandler) add(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var item commerce.CartItem
	if err := requestutil.DecodeJSON(request, &item); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required("productId", item.ProductID).
		Required("title", item.Title).
		Custom("qty", item.Qty < 1, "must be at least 1").
		Custom("price", item.Price <= 0, "must be positive")

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.store.AddCartLine(userID, item)

	respond.OK(writer, map[string]any{
		constants.FieldMessage: "Item added to cart",
		constants.FieldSuccess: true,
	})
}

/*
decreaseQty decrements a cart line's quantity.

POST /cart/--qty

Description: The line total shrinks by unit price × qty and the line is
dropped entirely once the quantity reaches zero. Decreasing a product that
is not in the cart succeeds without changing anything.

Response:
  - 200: {message, success}
*/
func (handler *CartHandler) decreaseQty(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input decreaseQtyRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if input.ProductID == "" {
		respond.Error(writer, request, apperr.ValidationError("productId is required"))
		return
	}
	if input.Qty < 1 {
		input.Qty = 1
	}

	handler.store.DecreaseCartLine(userID, input.ProductID, input.Qty)

	respond.OK(writer, map[string]any{
		constants.FieldMessage: "Quantity decreased",
		constants.FieldSuccess: true,
	})
}

// remove deletes one cart line. DELETE /cart/remove/{productId}.
func (handler *CartHandler) remove(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.store.RemoveCartLine(userID, requestutil.Param(request, "productId"))

	respond.OK(writer, map[string]any{
		constants.FieldMessage: "Item removed from cart",
		constants.FieldSuccess: true,
	})
}

// clear empties the cart. DELETE /cart/clear.
func (handler *CartHandler) clear(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.store.ClearCart(userID)

	respond.OK(writer, map[string]any{
		constants.FieldMessage: "Cart cleared",
		constants.FieldSuccess: true,
	})
}
