// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// SandboxGateway simulates the gateway's test mode.
//
// It approves every payment and signs the way the real gateway's sandbox
// does: HMAC-SHA256 over "orderID|paymentID" with the merchant secret. A
// backend holding the same secret can therefore verify sandbox payments with
// its production verification path.
type SandboxGateway struct {
	secret []byte
}

// NewSandboxGateway creates a gateway simulator sharing the given merchant secret.
func NewSandboxGateway(secret string) *SandboxGateway {
	return &SandboxGateway{secret: []byte(secret)}
}

// Open approves the payment immediately and returns a signed result payload.
func (gateway *SandboxGateway) Open(context context.Context, options CheckoutOptions) (*Result, error) {
	if err := context.Err(); err != nil {
		return nil, fmt.Errorf("payment: checkout cancelled: %w", err)
	}
	if options.OrderID == "" {
		return nil, fmt.Errorf("payment: checkout options carry no order ID")
	}

	paymentID := "pay_" + uuid.NewString()

	return &Result{
		PaymentID: paymentID,
		OrderID:   options.OrderID,
		Signature: Sign(options.OrderID, paymentID, gateway.secret),
	}, nil
}

// Sign computes the gateway signature over an order/payment pair.
//
// Shared with the development backend so both sides agree on the scheme.
func Sign(orderID, paymentID string, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature reports whether signature matches the order/payment pair.
func VerifySignature(orderID, paymentID, signature string, secret []byte) bool {
	expected := Sign(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
