// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

package payment_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvsmart/storefront/internal/payment"
)

/*
TestSandboxGateway_SignsVerifiably verifies that a sandbox approval carries
a signature the verification path accepts under the same secret.
*/
func TestSandboxGateway_SignsVerifiably(t *testing.T) {
	gateway := payment.NewSandboxGateway("merchant-secret")

	result, err := gateway.Open(context.Background(), payment.CheckoutOptions{
		OrderID: "order_42",
		Amount:  1497,
	})

	require.NoError(t, err)
	assert.Equal(t, "order_42", result.OrderID)
	assert.True(t, strings.HasPrefix(result.PaymentID, "pay_"))

	assert.True(t, payment.VerifySignature(result.OrderID, result.PaymentID, result.Signature, []byte("merchant-secret")))
	assert.False(t, payment.VerifySignature(result.OrderID, result.PaymentID, result.Signature, []byte("wrong-secret")))
	assert.False(t, payment.VerifySignature("order_43", result.PaymentID, result.Signature, []byte("merchant-secret")))
}

/*
TestSandboxGateway_RejectsMissingOrder verifies the order-ID precondition.
*/
func TestSandboxGateway_RejectsMissingOrder(t *testing.T) {
	gateway := payment.NewSandboxGateway("merchant-secret")

	_, err := gateway.Open(context.Background(), payment.CheckoutOptions{})

	require.Error(t, err)
}

/*
TestSandboxGateway_HonorsCancellation verifies that a cancelled context
never produces an approval.
*/
func TestSandboxGateway_HonorsCancellation(t *testing.T) {
	gateway := payment.NewSandboxGateway("merchant-secret")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gateway.Open(ctx, payment.CheckoutOptions{OrderID: "order_42"})

	require.Error(t, err)
}
