// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

package commerce_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvsmart/storefront/internal/commerce"
	"github.com/mvsmart/storefront/internal/payment"
)

// # Checkout Tests

// completeAddress is a fully filled shipping address for checkout tests.
var completeAddress = commerce.Address{
	FullName: "Asha Verma", Address: "12 MG Road", City: "Pune",
	State: "Maharashtra", Pincode: "411001", Country: "India",
	PhoneNumber: "9876543210", UserID: "u1",
}

// checkoutBackend seeds a backend with a hydrated session: one cart line at
// a 1497 total and a complete address.
func checkoutBackend() *fakeBackend {
	return &fakeBackend{
		cart: commerce.Cart{Items: []commerce.CartItem{
			{ProductID: "p1", Title: "Shirt", Price: 1497, Qty: 3},
		}},
		address: &completeAddress,
		order:   &commerce.Order{OrderID: "order_1", Amount: 1497},
		verifyResult: &commerce.VerifyPaymentResult{
			Success: true,
			OrderID: "order_1",
		},
	}
}

/*
TestCheckout_IncompleteAddressAbortsBeforeNetwork verifies the address gate:
without a complete shipping address the flow stops before any backend call.
*/
func TestCheckout_IncompleteAddressAbortsBeforeNetwork(t *testing.T) {
	backend := &fakeBackend{}
	notify := &notifyRecorder{}
	manager := newManager(backend, &memTokens{token: "tok"}, &fakeGateway{}, notify)

	order, err := manager.Checkout(context.Background())

	require.Error(t, err)
	assert.Nil(t, order)
	assert.Zero(t, backend.totalCalls())
	assert.Equal(t,
		"Please provide a complete shipping address before proceeding to payment.",
		notify.lastFailure())
}

/*
TestCheckout_SandboxHappyPath verifies the full flow against the real
sandbox gateway: order creation, signed approval, verification, and the
cart clear.
*/
func TestCheckout_SandboxHappyPath(t *testing.T) {
	backend := checkoutBackend()
	gateway := payment.NewSandboxGateway("test-gateway-secret")
	manager := newManager(backend, &memTokens{token: "tok"}, gateway, &notifyRecorder{})
	ctx := context.Background()

	// 1. Hydrate the session state.
	manager.Refresh(ctx)
	require.Len(t, manager.Cart().Items, 1)

	// 2. Run the checkout.
	order, err := manager.Checkout(ctx)

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "order_1", order.OrderID)
	assert.Equal(t, float64(1497), order.Amount)

	// 3. The order input carried the cart total and shipping address.
	assert.Equal(t, float64(1497), backend.lastOrderInput.Amount)
	assert.Equal(t, "u1", backend.lastOrderInput.UserID)
	assert.Equal(t, "Pune", backend.lastOrderInput.UserShipping.City)

	// 4. The gateway's signature landed in the verification request.
	assert.True(t, payment.VerifySignature(
		backend.lastVerifyInput.OrderID,
		backend.lastVerifyInput.PaymentID,
		backend.lastVerifyInput.Signature,
		[]byte("test-gateway-secret"),
	))

	// 5. The confirmed cart is emptied.
	assert.Equal(t, 1, backend.callCount("ClearCart"))
	assert.Empty(t, manager.Cart().Items)
}

/*
TestCheckout_GatewayOptionsCarryOrder verifies the overlay configuration:
key, amount, currency, store name, and the address prefill.
*/
func TestCheckout_GatewayOptionsCarryOrder(t *testing.T) {
	backend := checkoutBackend()
	gateway := &fakeGateway{
		result: &payment.Result{PaymentID: "pay_1", OrderID: "order_1", Signature: "sig"},
	}
	manager := newManager(backend, &memTokens{token: "tok"}, gateway, &notifyRecorder{})
	ctx := context.Background()

	manager.Refresh(ctx)
	_, err := manager.Checkout(ctx)
	require.NoError(t, err)

	require.Len(t, gateway.opened, 1)
	options := gateway.opened[0]
	assert.Equal(t, "rzp_test_key", options.Key)
	assert.Equal(t, float64(1497), options.Amount)
	assert.Equal(t, "INR", options.Currency)
	assert.Equal(t, "MVS Mart", options.Name)
	assert.Equal(t, "order_1", options.OrderID)
	assert.Equal(t, "Asha Verma", options.Prefill.Name)
	assert.Equal(t, "9876543210", options.Prefill.Contact)
	assert.Equal(t, "12 MG Road", options.Notes.Address)
}

/*
TestCheckout_InvalidOrderResponse verifies that an order without an ID or
amount aborts before the gateway opens.
*/
func TestCheckout_InvalidOrderResponse(t *testing.T) {
	backend := checkoutBackend()
	backend.order = &commerce.Order{}
	gateway := &fakeGateway{}
	notify := &notifyRecorder{}
	manager := newManager(backend, &memTokens{token: "tok"}, gateway, notify)
	ctx := context.Background()

	manager.Refresh(ctx)
	order, err := manager.Checkout(ctx)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.Empty(t, gateway.opened)
	assert.Equal(t, "Failed to initiate payment", notify.lastFailure())
}

/*
TestCheckout_GatewayFailureKeepsCart verifies that a dismissed or failed
gateway leaves the cart untouched.
*/
func TestCheckout_GatewayFailureKeepsCart(t *testing.T) {
	backend := checkoutBackend()
	gateway := &fakeGateway{err: errors.New("payment window dismissed")}
	notify := &notifyRecorder{}
	manager := newManager(backend, &memTokens{token: "tok"}, gateway, notify)
	ctx := context.Background()

	manager.Refresh(ctx)
	order, err := manager.Checkout(ctx)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.Equal(t, "Payment Failed", notify.lastFailure())
	assert.Len(t, manager.Cart().Items, 1)
	assert.Zero(t, backend.callCount("VerifyPayment"))
	assert.Zero(t, backend.callCount("ClearCart"))
}

/*
TestCheckout_VerificationRejectionKeepsCart verifies that a false verdict
from the verification endpoint aborts without clearing the cart.
*/
func TestCheckout_VerificationRejectionKeepsCart(t *testing.T) {
	backend := checkoutBackend()
	backend.verifyResult = &commerce.VerifyPaymentResult{Success: false}
	gateway := payment.NewSandboxGateway("test-gateway-secret")
	notify := &notifyRecorder{}
	manager := newManager(backend, &memTokens{token: "tok"}, gateway, notify)
	ctx := context.Background()

	manager.Refresh(ctx)
	order, err := manager.Checkout(ctx)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.Equal(t, "Payment Verification Failed", notify.lastFailure())
	assert.Len(t, manager.Cart().Items, 1)
	assert.Zero(t, backend.callCount("ClearCart"))
}
