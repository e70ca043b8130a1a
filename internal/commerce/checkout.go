// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

package commerce

import (
	"context"
	"fmt"

	"github.com/mvsmart/storefront/internal/payment"
	"github.com/mvsmart/storefront/internal/platform/apperr"
	"github.com/mvsmart/storefront/internal/platform/constants"
)

// # Checkout

/*
Checkout runs the full payment flow for the current cart.

Description:

 1. Aborts with a validation error if the shipping address is incomplete —
    before any network call.
 2. Creates a payment order on the backend for the cart total.
 3. Invokes the payment gateway modally with the order configuration.
 4. Forwards the gateway's completion payload to the verify-payment endpoint.
 5. On verified success: clears the cart and returns the transient order for
    the confirmation view. On any gateway or verification failure: the cart
    is untouched and no order is returned.

Returns:
  - *Order: Transient confirmation data; not retained in manager state
  - error: Already surfaced via the Notifier
*/
func (manager *Manager) Checkout(ctx context.Context) (*Order, error) {
	// ── 1. Shipping address gate ──────────────────────────────────────────
	address := manager.Address()
	if address == nil || !address.IsComplete() {
		err := apperr.ValidationError("Please provide a complete shipping address before proceeding to payment.")
		manager.notify.Error(err.Message)
		return nil, err
	}

	cart := manager.Cart()
	amount := cart.TotalAmount()

	// ── 2. Create the payment order ───────────────────────────────────────
	order, err := manager.backend.CreateOrder(ctx, CreateOrderInput{
		Amount:       amount,
		CartItems:    cart.Items,
		UserShipping: *address,
		UserID:       address.UserID,
	})
	if err != nil {
		manager.notify.Error("Failed to initiate payment")
		return nil, err
	}
	if order.OrderID == "" || order.Amount == 0 {
		err := apperr.Payment("Failed to initiate payment", fmt.Errorf("commerce: invalid order response from backend"))
		manager.notify.Error(err.Message)
		return nil, err
	}

	// ── 3. Open the gateway overlay ───────────────────────────────────────
	result, err := manager.gateway.Open(ctx, payment.CheckoutOptions{
		Key:         manager.gatewayKey,
		Amount:      order.Amount,
		Currency:    constants.Currency,
		Name:        constants.StoreDisplayName,
		Description: constants.PaymentDescription,
		OrderID:     order.OrderID,
		Prefill: payment.Prefill{
			Name:    address.FullName,
			Contact: address.PhoneNumber,
		},
		Notes: payment.Notes{
			Address: address.Address,
		},
	})
	if err != nil {
		manager.notify.Error("Payment Failed")
		return nil, apperr.Payment("Payment Failed", err)
	}

	// ── 4. Verify server-side ─────────────────────────────────────────────
	verdict, err := manager.backend.VerifyPayment(ctx, VerifyPaymentInput{
		PaymentID:    result.PaymentID,
		OrderID:      result.OrderID,
		Signature:    result.Signature,
		Amount:       order.Amount,
		OrderItems:   cart.Items,
		UserID:       address.UserID,
		UserShipping: *address,
	})
	if err != nil {
		manager.notify.Error("Payment Verification Failed")
		return nil, apperr.Payment("Payment Verification Failed", err)
	}
	if !verdict.Success {
		err := apperr.Payment("Payment Verification Failed", nil)
		manager.notify.Error(err.Message)
		return nil, err
	}

	// ── 5. Confirmed: empty the cart and hand back the order ──────────────
	_ = manager.ClearCart(ctx)

	return &Order{OrderID: verdict.OrderID, Amount: order.Amount}, nil
}
