// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

/*
Package payment defines the boundary to the third-party payment gateway.

The gateway is a black box to the storefront: checkout hands it a
configuration object and receives a completion payload (payment ID, order ID,
signature) which must be verified server-side before the order counts as
placed. Nothing in this package talks to the store's own backend.
*/
package payment

import "context"

// Prefill pre-populates the gateway's checkout overlay with shopper details.
type Prefill struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// Notes carries free-form metadata attached to the gateway charge.
type Notes struct {
	Address string `json:"address"`
}

// CheckoutOptions configures one gateway invocation.
type CheckoutOptions struct {
	// Key is the publishable gateway key identifying the merchant account.
	Key string `json:"key"`
	// Amount is the order total, as returned by the order-creation endpoint.
	Amount float64 `json:"amount"`
	// Currency is the ISO currency code.
	Currency string `json:"currency"`
	// Name is the merchant display name shown on the overlay.
	Name string `json:"name"`
	// Description labels the charge.
	Description string `json:"description"`
	// OrderID is the gateway order created by the backend.
	OrderID string `json:"order_id"`

	Prefill Prefill `json:"prefill"`
	Notes   Notes   `json:"notes"`
}

// Result is the gateway's completion payload on a successful payment.
type Result struct {
	PaymentID string `json:"paymentId"`
	OrderID   string `json:"orderId"`
	Signature string `json:"signature"`
}

// Gateway is the modal checkout surface.
//
// Open blocks until the payment attempt completes. A non-nil error means the
// gateway reported failure (or the shopper abandoned the flow); the caller
// must not treat the order as placed either way until the result payload has
// been verified server-side.
type Gateway interface {
	Open(context context.Context, options CheckoutOptions) (*Result, error)
}
