// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

/*
Package remote wraps HTTP calls to the MVS Mart backend.

It implements [commerce.Backend] as a pure request/response layer: no retry,
no caching, no state. Each call is bounded by a configurable timeout so a
hung backend can never wedge the storefront indefinitely.

# Wire Contract

The backend speaks flat JSON payloads and carries authentication in the
custom Auth header (raw token, no bearer prefix). Non-success responses are
decoded for their "message" field and wrapped as REMOTE_ERROR.
*/
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mvsmart/storefront/internal/commerce"
	"github.com/mvsmart/storefront/internal/platform/apperr"
	"github.com/mvsmart/storefront/internal/platform/constants"
)

// Client is the typed HTTP wrapper over the backend API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// NewClient constructs a Client for the given origin.
//
// timeout bounds every individual request; pass 0 to fall back to a
// conservative 10s default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		timeout:    timeout,
	}
}

// # Request Plumbing

// do executes one JSON request/response exchange.
//
// token == "" sends the request unauthenticated. out may be nil when the
// response body is irrelevant.
func (client *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, client.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("remote: failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, client.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("remote: failed to build request: %w", err)
	}

	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set(constants.HeaderAuth, token)
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return apperr.Remote("", fmt.Errorf("remote: %s %s: %w", method, path, err))
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return decodeError(response)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return apperr.Remote("", fmt.Errorf("remote: failed to decode %s %s response: %w", method, path, err))
	}

	return nil
}

// decodeError extracts the server-provided message from a non-2xx response.
func decodeError(response *http.Response) error {
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(response.Body).Decode(&payload)

	return apperr.Remote(payload.Message,
		fmt.Errorf("remote: server returned status %d", response.StatusCode))
}

// # Catalog

// Products fetches the full product list. GET /product/get.
func (client *Client) Products(ctx context.Context) ([]commerce.Product, error) {
	var envelope struct {
		Products []commerce.Product `json:"products"`
	}
	if err := client.do(ctx, http.MethodGet, "/product/get", "", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Products, nil
}

// Product fetches a single product. GET /product/{id}.
func (client *Client) Product(ctx context.Context, id string) (*commerce.Product, error) {
	var envelope struct {
		Product *commerce.Product `json:"product"`
	}
	if err := client.do(ctx, http.MethodGet, "/product/"+id, "", nil, &envelope); err != nil {
		return nil, err
	}
	if envelope.Product == nil {
		return nil, apperr.NotFound("Product")
	}
	return envelope.Product, nil
}

// # Identity

// Register creates an account. POST /user/register.
func (client *Client) Register(ctx context.Context, name, email, password string) (*commerce.RegisterResult, error) {
	body := map[string]string{"name": name, "email": email, "password": password}

	result := &commerce.RegisterResult{}
	if err := client.do(ctx, http.MethodPost, "/user/register", "", body, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Login exchanges credentials for a token. POST /user/login.
func (client *Client) Login(ctx context.Context, email, password string) (*commerce.LoginResult, error) {
	body := map[string]string{"email": email, "password": password}

	result := &commerce.LoginResult{}
	if err := client.do(ctx, http.MethodPost, "/user/login", "", body, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Profile fetches the authenticated profile. GET /user/profile.
func (client *Client) Profile(ctx context.Context, token string) (*commerce.User, error) {
	var envelope struct {
		User *commerce.User `json:"user"`
	}
	if err := client.do(ctx, http.MethodGet, "/user/profile", token, nil, &envelope); err != nil {
		return nil, err
	}
	if envelope.User == nil {
		return nil, apperr.NotFound("User")
	}
	return envelope.User, nil
}

// # Cart

// Cart fetches the user's cart. GET /cart/user.
//
// A missing cart field is normalized to an empty cart, never nil.
func (client *Client) Cart(ctx context.Context, token string) (*commerce.Cart, error) {
	var envelope struct {
		Cart *commerce.Cart `json:"cart"`
	}
	if err := client.do(ctx, http.MethodGet, "/cart/user", token, nil, &envelope); err != nil {
		return nil, err
	}
	if envelope.Cart == nil {
		cart := commerce.EmptyCart()
		return &cart, nil
	}
	if envelope.Cart.Items == nil {
		envelope.Cart.Items = []commerce.CartItem{}
	}
	return envelope.Cart, nil
}

// AddToCart submits a new cart line. POST /cart/add.
func (client *Client) AddToCart(ctx context.Context, token string, item commerce.CartItem) error {
	return client.do(ctx, http.MethodPost, "/cart/add", token, item, nil)
}

// RemoveFromCart deletes one cart line. DELETE /cart/remove/{productId}.
func (client *Client) RemoveFromCart(ctx context.Context, token, productID string) error {
	return client.do(ctx, http.MethodDelete, "/cart/remove/"+productID, token, nil, nil)
}

// DecreaseQty decrements a line's quantity. POST /cart/--qty.
func (client *Client) DecreaseQty(ctx context.Context, token, productID string, qty int) error {
	body := map[string]interface{}{"productId": productID, "qty": qty}
	return client.do(ctx, http.MethodPost, "/cart/--qty", token, body, nil)
}

// ClearCart deletes every cart line. DELETE /cart/clear.
func (client *Client) ClearCart(ctx context.Context, token string) error {
	return client.do(ctx, http.MethodDelete, "/cart/clear", token, nil, nil)
}

// # Address

// Address fetches the current shipping address. GET /address/get.
//
// The server returns the latest saved record; nil means none saved yet.
func (client *Client) Address(ctx context.Context, token string) (*commerce.Address, error) {
	var envelope struct {
		UserAddress *commerce.Address `json:"userAddress"`
	}
	if err := client.do(ctx, http.MethodGet, "/address/get", token, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.UserAddress, nil
}

// AddAddress saves a shipping address. POST /address/add.
func (client *Client) AddAddress(ctx context.Context, token string, address commerce.Address) (*commerce.AddAddressResult, error) {
	result := &commerce.AddAddressResult{}
	if err := client.do(ctx, http.MethodPost, "/address/add", token, address, result); err != nil {
		return nil, err
	}
	return result, nil
}

// # Payment

// CreateOrder registers a pending payment order. POST /payment/create-order.
//
// Unauthenticated by contract; the user is identified in the body.
func (client *Client) CreateOrder(ctx context.Context, input commerce.CreateOrderInput) (*commerce.Order, error) {
	order := &commerce.Order{}
	if err := client.do(ctx, http.MethodPost, "/payment/create-order", "", input, order); err != nil {
		return nil, err
	}
	return order, nil
}

// VerifyPayment submits the gateway result for verification. POST /payment/verify-payment.
func (client *Client) VerifyPayment(ctx context.Context, input commerce.VerifyPaymentInput) (*commerce.VerifyPaymentResult, error) {
	result := &commerce.VerifyPaymentResult{}
	if err := client.do(ctx, http.MethodPost, "/payment/verify-payment", "", input, result); err != nil {
		return nil, err
	}
	return result, nil
}
