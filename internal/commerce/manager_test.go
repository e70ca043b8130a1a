// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

package commerce_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvsmart/storefront/internal/commerce"
	"github.com/mvsmart/storefront/internal/payment"
	"github.com/mvsmart/storefront/internal/platform/apperr"
)

// # Test Doubles

// fakeBackend is a scriptable [commerce.Backend] that records every call.
type fakeBackend struct {
	mu    sync.Mutex
	calls []string

	products    []commerce.Product
	productsErr error

	registerResult *commerce.RegisterResult
	registerErr    error

	loginResult *commerce.LoginResult
	loginErr    error

	user    *commerce.User
	userErr error

	cart    commerce.Cart
	cartErr error

	lastAddedItem commerce.CartItem
	addErr        error
	removeErr     error
	decreaseErr   error
	clearErr      error

	address          *commerce.Address
	addressErr       error
	addAddressResult *commerce.AddAddressResult
	addAddressErr    error

	order          *commerce.Order
	createOrderErr error
	lastOrderInput commerce.CreateOrderInput

	verifyResult    *commerce.VerifyPaymentResult
	verifyErr       error
	lastVerifyInput commerce.VerifyPaymentInput
}

func (b *fakeBackend) record(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, name)
}

// callCount returns how many times the named method was invoked.
func (b *fakeBackend) callCount(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	var n int
	for _, call := range b.calls {
		if call == name {
			n++
		}
	}
	return n
}

func (b *fakeBackend) totalCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

func (b *fakeBackend) Products(ctx context.Context) ([]commerce.Product, error) {
	b.record("Products")
	return b.products, b.productsErr
}

func (b *fakeBackend) Product(ctx context.Context, id string) (*commerce.Product, error) {
	b.record("Product")
	for i := range b.products {
		if b.products[i].ID == id {
			return &b.products[i], nil
		}
	}
	return nil, apperr.NotFound("Product")
}

func (b *fakeBackend) Register(ctx context.Context, name, email, password string) (*commerce.RegisterResult, error) {
	b.record("Register")
	return b.registerResult, b.registerErr
}

func (b *fakeBackend) Login(ctx context.Context, email, password string) (*commerce.LoginResult, error) {
	b.record("Login")
	return b.loginResult, b.loginErr
}

func (b *fakeBackend) Profile(ctx context.Context, token string) (*commerce.User, error) {
	b.record("Profile")
	return b.user, b.userErr
}

func (b *fakeBackend) Cart(ctx context.Context, token string) (*commerce.Cart, error) {
	b.record("Cart")
	if b.cartErr != nil {
		return nil, b.cartErr
	}
	cart := b.cart
	return &cart, nil
}

func (b *fakeBackend) AddToCart(ctx context.Context, token string, item commerce.CartItem) error {
	b.record("AddToCart")
	b.mu.Lock()
	b.lastAddedItem = item
	b.mu.Unlock()
	return b.addErr
}

func (b *fakeBackend) RemoveFromCart(ctx context.Context, token, productID string) error {
	b.record("RemoveFromCart")
	return b.removeErr
}

func (b *fakeBackend) DecreaseQty(ctx context.Context, token, productID string, qty int) error {
	b.record("DecreaseQty")
	return b.decreaseErr
}

func (b *fakeBackend) ClearCart(ctx context.Context, token string) error {
	b.record("ClearCart")
	return b.clearErr
}

func (b *fakeBackend) Address(ctx context.Context, token string) (*commerce.Address, error) {
	b.record("Address")
	return b.address, b.addressErr
}

func (b *fakeBackend) AddAddress(ctx context.Context, token string, address commerce.Address) (*commerce.AddAddressResult, error) {
	b.record("AddAddress")
	return b.addAddressResult, b.addAddressErr
}

func (b *fakeBackend) CreateOrder(ctx context.Context, input commerce.CreateOrderInput) (*commerce.Order, error) {
	b.record("CreateOrder")
	b.mu.Lock()
	b.lastOrderInput = input
	b.mu.Unlock()
	return b.order, b.createOrderErr
}

func (b *fakeBackend) VerifyPayment(ctx context.Context, input commerce.VerifyPaymentInput) (*commerce.VerifyPaymentResult, error) {
	b.record("VerifyPayment")
	b.mu.Lock()
	b.lastVerifyInput = input
	b.mu.Unlock()
	return b.verifyResult, b.verifyErr
}

// notifyRecorder captures the notifications an operation surfaces.
type notifyRecorder struct {
	mu        sync.Mutex
	successes []string
	failures  []string
}

func (n *notifyRecorder) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *notifyRecorder) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failures = append(n.failures, message)
}

func (n *notifyRecorder) lastFailure() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.failures) == 0 {
		return ""
	}
	return n.failures[len(n.failures)-1]
}

func (n *notifyRecorder) lastSuccess() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.successes) == 0 {
		return ""
	}
	return n.successes[len(n.successes)-1]
}

// memTokens is an in-memory [commerce.TokenStore].
type memTokens struct {
	mu      sync.Mutex
	token   string
	saved   int
	cleared int
}

func (s *memTokens) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *memTokens) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.saved++
	return nil
}

func (s *memTokens) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.cleared++
	return nil
}

// fakeGateway is a scriptable [payment.Gateway].
type fakeGateway struct {
	result *payment.Result
	err    error

	mu     sync.Mutex
	opened []payment.CheckoutOptions
}

func (g *fakeGateway) Open(ctx context.Context, options payment.CheckoutOptions) (*payment.Result, error) {
	g.mu.Lock()
	g.opened = append(g.opened, options)
	g.mu.Unlock()
	return g.result, g.err
}

// newManager wires a Manager over the given doubles with a discarded logger.
func newManager(backend *fakeBackend, tokens *memTokens, gateway payment.Gateway, notify *notifyRecorder) *commerce.Manager {
	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return commerce.New(backend, tokens, gateway, notify, log, "rzp_test_key")
}

// # Session Tests

/*
TestManager_RestoresPersistedToken verifies that the session survives an
application restart via the token store.
*/
func TestManager_RestoresPersistedToken(t *testing.T) {
	tokens := &memTokens{token: "persisted-token"}
	manager := newManager(&fakeBackend{}, tokens, &fakeGateway{}, &notifyRecorder{})

	assert.True(t, manager.IsAuthenticated())
	assert.Equal(t, "persisted-token", manager.Token())
}

/*
TestRefresh_UnauthenticatedFetchesOnlyCatalog verifies the fetch triage:
without a token the catalog is refreshed and the session-scoped state is
cleared, with no authenticated endpoints touched.
*/
func TestRefresh_UnauthenticatedFetchesOnlyCatalog(t *testing.T) {
	backend := &fakeBackend{
		products: []commerce.Product{{ID: "p1", Title: "Shirt", Price: 499}},
	}
	manager := newManager(backend, &memTokens{}, &fakeGateway{}, &notifyRecorder{})

	manager.Refresh(context.Background())

	// 1. Catalog cached
	require.Len(t, manager.Products(), 1)

	// 2. Session-scoped state empty
	assert.Nil(t, manager.User())
	assert.Empty(t, manager.Cart().Items)
	assert.Nil(t, manager.Address())

	// 3. Only the catalog endpoint was called
	assert.Equal(t, 1, backend.callCount("Products"))
	assert.Zero(t, backend.callCount("Profile"))
	assert.Zero(t, backend.callCount("Cart"))
	assert.Zero(t, backend.callCount("Address"))
}

/*
TestRefresh_AuthenticatedCascade verifies that a token triggers the full
profile, cart, and address cascade alongside the catalog.
*/
func TestRefresh_AuthenticatedCascade(t *testing.T) {
	backend := &fakeBackend{
		products: []commerce.Product{{ID: "p1"}},
		user:     &commerce.User{ID: "u1", Name: "Asha Verma"},
		cart:     commerce.Cart{Items: []commerce.CartItem{{ProductID: "p1", Price: 499, Qty: 1}}},
		address:  &commerce.Address{FullName: "Asha Verma", City: "Pune"},
	}
	manager := newManager(backend, &memTokens{token: "tok"}, &fakeGateway{}, &notifyRecorder{})

	manager.Refresh(context.Background())

	require.NotNil(t, manager.User())
	assert.Equal(t, "Asha Verma", manager.User().Name)
	assert.Len(t, manager.Cart().Items, 1)
	require.NotNil(t, manager.Address())
	assert.Equal(t, "Pune", manager.Address().City)
}

/*
TestLogin_EstablishesSessionAndSchedulesReload verifies the login cascade:
the token lands in memory and durable storage, and the synchronization loop
picks up the session state without an explicit fetch call.
*/
func TestLogin_EstablishesSessionAndSchedulesReload(t *testing.T) {
	backend := &fakeBackend{
		loginResult: &commerce.LoginResult{Token: "fresh-token", Message: "Login successful!", Success: true},
		user:        &commerce.User{ID: "u1", Name: "Asha Verma"},
		cart:        commerce.Cart{Items: []commerce.CartItem{}},
	}
	tokens := &memTokens{}
	notify := &notifyRecorder{}
	manager := newManager(backend, tokens, &fakeGateway{}, notify)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go manager.Run(ctx)

	// 1. Wait for the initial (anonymous) pass so the later profile fetch can
	// only come from the reload signal.
	require.Eventually(t, func() bool {
		return backend.callCount("Products") >= 1
	}, 2*time.Second, 5*time.Millisecond)

	// 2. Log in.
	result, err := manager.Login(ctx, "asha@example.in", "supersecret1")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "fresh-token", manager.Token())
	assert.Equal(t, 1, tokens.saved)
	assert.Equal(t, "Login successful!", notify.lastSuccess())

	// 3. The reload signal drives the session cascade.
	require.Eventually(t, func() bool {
		user := manager.User()
		return user != nil && user.Name == "Asha Verma"
	}, 2*time.Second, 5*time.Millisecond)
}

/*
TestLogin_FailureLeavesSessionUntouched verifies that a rejected login
surfaces the server's message and changes nothing.
*/
func TestLogin_FailureLeavesSessionUntouched(t *testing.T) {
	backend := &fakeBackend{
		loginErr: apperr.Remote("Invalid email or password", errors.New("status 401")),
	}
	tokens := &memTokens{}
	notify := &notifyRecorder{}
	manager := newManager(backend, tokens, &fakeGateway{}, notify)

	_, err := manager.Login(context.Background(), "asha@example.in", "wrong")

	require.Error(t, err)
	assert.False(t, manager.IsAuthenticated())
	assert.Zero(t, tokens.saved)
	assert.Equal(t, "Invalid email or password", notify.lastFailure())
}

/*
TestLogin_EmptyTokenRejected verifies that a nominally successful response
without a token does not establish a session.
*/
func TestLogin_EmptyTokenRejected(t *testing.T) {
	backend := &fakeBackend{
		loginResult: &commerce.LoginResult{Token: "", Success: true},
	}
	tokens := &memTokens{}
	notify := &notifyRecorder{}
	manager := newManager(backend, tokens, &fakeGateway{}, notify)

	_, err := manager.Login(context.Background(), "asha@example.in", "supersecret1")

	require.Error(t, err)
	assert.False(t, manager.IsAuthenticated())
	assert.Zero(t, tokens.saved)
	assert.Equal(t, "Login failed!", notify.lastFailure())
}

/*
TestLogout_ClearsEverythingAtomically verifies that logout wipes token,
profile, cart, and address together and erases the persisted token.
*/
func TestLogout_ClearsEverythingAtomically(t *testing.T) {
	backend := &fakeBackend{
		user:    &commerce.User{ID: "u1", Name: "Asha Verma"},
		cart:    commerce.Cart{Items: []commerce.CartItem{{ProductID: "p1", Price: 499, Qty: 1}}},
		address: &commerce.Address{FullName: "Asha Verma"},
	}
	tokens := &memTokens{token: "tok"}
	notify := &notifyRecorder{}
	manager := newManager(backend, tokens, &fakeGateway{}, notify)

	// 1. Establish a fully hydrated session.
	manager.Refresh(context.Background())
	require.NotNil(t, manager.User())

	// 2. Log out.
	manager.Logout()

	// 3. Every piece of session state is gone.
	assert.False(t, manager.IsAuthenticated())
	assert.Nil(t, manager.User())
	assert.Empty(t, manager.Cart().Items)
	assert.Nil(t, manager.Address())
	assert.Equal(t, 1, tokens.cleared)
	assert.Equal(t, "Logged out successfully!", notify.lastSuccess())
}

/*
TestRegister_DoesNotAuthenticate verifies that registration surfaces the
server message but never establishes a session.
*/
func TestRegister_DoesNotAuthenticate(t *testing.T) {
	backend := &fakeBackend{
		registerResult: &commerce.RegisterResult{Message: "User registered successfully!", Success: true},
	}
	notify := &notifyRecorder{}
	manager := newManager(backend, &memTokens{}, &fakeGateway{}, notify)

	result, err := manager.Register(context.Background(), "Asha Verma", "asha@example.in", "supersecret1")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.False(t, manager.IsAuthenticated())
	assert.Equal(t, "User registered successfully!", notify.lastSuccess())
}

/*
TestRegister_FailureSurfacesServerMessage verifies the notification path for
a rejected registration.
*/
func TestRegister_FailureSurfacesServerMessage(t *testing.T) {
	backend := &fakeBackend{
		registerErr: apperr.Remote("User already exists", errors.New("status 409")),
	}
	notify := &notifyRecorder{}
	manager := newManager(backend, &memTokens{}, &fakeGateway{}, notify)

	_, err := manager.Register(context.Background(), "Asha Verma", "asha@example.in", "supersecret1")

	require.Error(t, err)
	assert.Equal(t, "User already exists", notify.lastFailure())
}

/*
TestFetchCatalog_KeepsStaleSnapshotOnFailure verifies stale-but-available:
a failed catalog refresh keeps the previous products and surfaces a
notification.
*/
func TestFetchCatalog_KeepsStaleSnapshotOnFailure(t *testing.T) {
	backend := &fakeBackend{
		products: []commerce.Product{{ID: "p1", Title: "Shirt"}},
	}
	notify := &notifyRecorder{}
	manager := newManager(backend, &memTokens{}, &fakeGateway{}, notify)

	// 1. Populate the cache.
	manager.FetchCatalog(context.Background())
	require.Len(t, manager.Products(), 1)

	// 2. Fail the next refresh.
	backend.productsErr = apperr.Remote("", errors.New("connection refused"))
	manager.FetchCatalog(context.Background())

	// 3. The stale snapshot survives.
	assert.Len(t, manager.Products(), 1)
	assert.Equal(t, "Failed to fetch products!", notify.lastFailure())
}
