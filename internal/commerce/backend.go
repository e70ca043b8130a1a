// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

package commerce

import "context"

// # Remote Service Contract

// RegisterResult is the backend's response to a registration attempt.
type RegisterResult struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// LoginResult is the backend's response to a login attempt.
type LoginResult struct {
	Token   string `json:"token"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// AddAddressResult is the backend's response to saving an address.
type AddAddressResult struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// CreateOrderInput carries everything the order-creation endpoint needs.
// It is unauthenticated by contract and identifies the user in the body.
type CreateOrderInput struct {
	Amount       float64    `json:"amount"`
	CartItems    []CartItem `json:"cartItems"`
	UserShipping Address    `json:"userShipping"`
	UserID       string     `json:"userId"`
}

// VerifyPaymentInput forwards the gateway's completion payload for
// server-side signature verification.
type VerifyPaymentInput struct {
	PaymentID    string     `json:"paymentId"`
	OrderID      string     `json:"orderId"`
	Signature    string     `json:"signature"`
	Amount       float64    `json:"amount"`
	OrderItems   []CartItem `json:"orderItems"`
	UserID       string     `json:"userId"`
	UserShipping Address    `json:"userShipping"`
}

// VerifyPaymentResult is the backend's verdict on a payment.
type VerifyPaymentResult struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
}

// Backend defines the remote service the state manager synchronizes with.
//
// Implementations are pure request/response wrappers: no retries, no caching.
// Authenticated calls take the raw session token; its transport (the custom
// Auth header) is an implementation detail of the wrapper.
type Backend interface {

	/*
		Products returns the full product catalog.

		Parameters:
		  - context: context.Context

		Returns:
		  - []Product: Wholesale catalog snapshot
		  - error: Transport or server failures
	*/
	Products(context context.Context) ([]Product, error)

	/*
		Product returns a single catalog entry by ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Product: Hydrated entity
		  - error: Transport or server failures
	*/
	Product(context context.Context, id string) (*Product, error)

	/*
		Register creates a new account. Does not authenticate the session.

		Parameters:
		  - context: context.Context
		  - name, email, password: string

		Returns:
		  - *RegisterResult: Server success indicator and message
		  - error: Transport or server failures
	*/
	Register(context context.Context, name, email, password string) (*RegisterResult, error)

	/*
		Login exchanges credentials for a session token.

		Parameters:
		  - context: context.Context
		  - email, password: string

		Returns:
		  - *LoginResult: Token, message, and success indicator
		  - error: Transport or server failures
	*/
	Login(context context.Context, email, password string) (*LoginResult, error)

	/*
		Profile returns the authenticated user's profile.

		Parameters:
		  - context: context.Context
		  - token: string

		Returns:
		  - *User: Hydrated profile
		  - error: Transport or server failures
	*/
	Profile(context context.Context, token string) (*User, error)

	/*
		Cart returns the authenticated user's cart. A missing cart field on
		the wire is normalized to an empty cart.

		Parameters:
		  - context: context.Context
		  - token: string

		Returns:
		  - *Cart: Confirmed server snapshot, never nil on success
		  - error: Transport or server failures
	*/
	Cart(context context.Context, token string) (*Cart, error)

	/*
		AddToCart submits a cart line. Merge-vs-append semantics for an
		existing product belong to the server.

		Parameters:
		  - context: context.Context
		  - token: string
		  - item: CartItem

		Returns:
		  - error: Transport or server failures
	*/
	AddToCart(context context.Context, token string, item CartItem) error

	/*
		RemoveFromCart deletes a cart line server-side.

		Parameters:
		  - context: context.Context
		  - token, productID: string

		Returns:
		  - error: Transport or server failures
	*/
	RemoveFromCart(context context.Context, token, productID string) error

	/*
		DecreaseQty decrements a line's quantity server-side. Interpreting a
		decrement to zero (remove vs. floor) is the server's responsibility.

		Parameters:
		  - context: context.Context
		  - token, productID: string
		  - qty: int

		Returns:
		  - error: Transport or server failures
	*/
	DecreaseQty(context context.Context, token, productID string, qty int) error

	/*
		ClearCart deletes every cart line server-side.

		Parameters:
		  - context: context.Context
		  - token: string

		Returns:
		  - error: Transport or server failures
	*/
	ClearCart(context context.Context, token string) error

	/*
		Address returns the user's current shipping address, or nil when none
		has been saved yet.

		Parameters:
		  - context: context.Context
		  - token: string

		Returns:
		  - *Address: Latest saved address, nil when absent
		  - error: Transport or server failures
	*/
	Address(context context.Context, token string) (*Address, error)

	/*
		AddAddress saves a shipping address.

		Parameters:
		  - context: context.Context
		  - token: string
		  - address: Address

		Returns:
		  - *AddAddressResult: Server success indicator
		  - error: Transport or server failures
	*/
	AddAddress(context context.Context, token string, address Address) (*AddAddressResult, error)

	/*
		CreateOrder registers a pending payment order.

		Parameters:
		  - context: context.Context
		  - input: CreateOrderInput

		Returns:
		  - *Order: Gateway order ID and amount
		  - error: Transport or server failures
	*/
	CreateOrder(context context.Context, input CreateOrderInput) (*Order, error)

	/*
		VerifyPayment submits the gateway result for signature verification.

		Parameters:
		  - context: context.Context
		  - input: VerifyPaymentInput

		Returns:
		  - *VerifyPaymentResult: Verification verdict
		  - error: Transport or server failures
	*/
	VerifyPayment(context context.Context, input VerifyPaymentInput) (*VerifyPaymentResult, error)
}

// # Collaborator Contracts

// TokenStore persists the session token across application restarts.
//
// It is the only durable cross-session resource: written on login, erased on
// logout, read once at startup.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// Notifier surfaces transient user notifications (the toast equivalent).
//
// Every operation failure terminates here: errors are never re-thrown into
// the presentation layer as uncaught failures.
type Notifier interface {
	Success(message string)
	Error(message string)
}
