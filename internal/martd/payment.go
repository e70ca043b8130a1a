// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

package martd

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mvsmart/storefront/internal/commerce"
	"github.com/mvsmart/storefront/internal/payment"
	"github.com/mvsmart/storefront/internal/platform/apperr"
	requestutil "github.com/mvsmart/storefront/internal/platform/request"
	"github.com/mvsmart/storefront/internal/platform/respond"
	"github.com/mvsmart/storefront/internal/platform/validate"
)

// PaymentHandler implements order creation and payment verification.
//
// Both endpoints are unauthenticated by contract and identify the user in
// the request body. Verification checks the gateway signature against the
// merchant secret shared with the sandbox gateway.
type PaymentHandler struct {
	store  *Store
	secret []byte
}

// NewPaymentHandler constructs a [PaymentHandler] with the merchant secret.
func NewPaymentHandler(store *Store, gatewaySecret string) *PaymentHandler {
	return &PaymentHandler{store: store, secret: []byte(gatewaySecret)}
}

// Routes returns the payment route group.
//
// # Endpoints
//   - POST /create-order   : Registers a pending order.
//   - POST /verify-payment : Verifies the gateway signature.
func (handler *PaymentHandler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/create-order", handler.createOrder)
	router.Post("/verify-payment", handler.verifyPayment)

	return router
}

/*
createOrder registers a pending payment order.

POST /payment/create-order

Response:
  - 200: {orderId, amount}
  - 400: Missing user or non-positive amount
*/
func (handler *PaymentHandler) createOrder(writer http.ResponseWriter, request *http.Request) {
	var input commerce.CreateOrderInput

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required("userId", input.UserID).
		Custom("amount", input.Amount <= 0, "must be positive")

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record := handler.store.CreateOrder(input.UserID, input.Amount, input.CartItems, input.UserShipping)

	respond.OK(writer, map[string]any{
		"orderId": record.OrderID,
		"amount":  record.Amount,
	})
}

/*
verifyPayment checks the gateway result against the merchant secret.

POST /payment/verify-payment

Description: The signature must be the HMAC the gateway computes over the
order and payment identifiers. A bad signature is a normal verdict, not an
HTTP error: the response still carries {success: false}.

Response:
  - 200: {success, orderId}
  - 404: Unknown order
*/
func (handler *PaymentHandler) verifyPayment(writer http.ResponseWriter, request *http.Request) {
	var input commerce.VerifyPaymentInput

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	record := handler.store.OrderByID(input.OrderID)
	if record == nil {
		respond.Error(writer, request, apperr.NotFound("Order"))
		return
	}

	if !payment.VerifySignature(input.OrderID, input.PaymentID, input.Signature, handler.secret) {
		respond.OK(writer, map[string]any{
			"success": false,
			"orderId": input.OrderID,
		})
		return
	}

	handler.store.MarkOrderVerified(input.OrderID)

	respond.OK(writer, map[string]any{
		"success": true,
		"orderId": input.OrderID,
	})
}
