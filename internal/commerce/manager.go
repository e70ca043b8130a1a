// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

package commerce

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mvsmart/storefront/internal/payment"
	"github.com/mvsmart/storefront/internal/platform/apperr"
)

// # State Manager

// Manager is the single process-wide commerce state container.
//
// It is constructed once at application start, provided to the entire
// presentation tree, and torn down never — its lifecycle spans the process.
//
// # Consistency Contract
//
// Mutating operations do not patch local state (ClearCart excepted); they
// flip the reload signal, and the synchronization loop re-fetches the
// affected state wholesale. Rapid successive mutations coalesce: the final
// observed state is whichever re-fetch lands last, not a local merge.
//
// # Concurrency
//
// All state reads and writes go through one mutex; accessors return copies,
// so observers can never see a partially applied transition (logout clears
// token, profile, cart, and address in a single critical section).
type Manager struct {
	backend Backend
	tokens  TokenStore
	gateway payment.Gateway
	notify  Notifier
	log     *slog.Logger

	gatewayKey string

	mu       sync.Mutex
	token    string
	user     *User
	products []Product
	cart     Cart
	address  *Address

	// reload is the coalescing re-synchronization signal. Capacity 1: a
	// pending signal absorbs further requests until the loop drains it.
	reload chan struct{}
}

// New constructs the Manager and restores the persisted session token.
//
// The token is read exactly once here; afterwards the store is only written
// (login) or cleared (logout).
func New(backend Backend, tokens TokenStore, gateway payment.Gateway, notify Notifier, logger *slog.Logger, gatewayKey string) *Manager {
	manager := &Manager{
		backend:    backend,
		tokens:     tokens,
		gateway:    gateway,
		notify:     notify,
		log:        logger,
		gatewayKey: gatewayKey,
		cart:       EmptyCart(),
		reload:     make(chan struct{}, 1),
	}

	token, err := tokens.Load()
	if err != nil {
		logger.Error("token_restore_failed", slog.Any("error", err))
	} else {
		manager.token = token
	}

	return manager
}

// # Synchronization Loop

// Run owns the reactive effect: it performs one synchronization pass
// immediately, then re-runs the fetch triage every time the reload signal is
// raised, until the context is cancelled.
//
// Run blocks; start it on its own goroutine.
func (manager *Manager) Run(ctx context.Context) {
	manager.Refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-manager.reload:
			manager.Refresh(ctx)
		}
	}
}

// Refresh executes one fetch triage pass: the catalog unconditionally, then
// profile, cart, and address when a session token is present. Without a
// token the session-scoped state is cleared instead.
//
// Individual fetch failures keep the previous snapshot (stale-but-available)
// and never abort the rest of the pass.
func (manager *Manager) Refresh(ctx context.Context) {
	manager.FetchCatalog(ctx)

	if manager.Token() == "" {
		manager.mu.Lock()
		manager.user = nil
		manager.cart = EmptyCart()
		manager.address = nil
		manager.mu.Unlock()
		return
	}

	manager.FetchProfile(ctx)
	manager.FetchCart(ctx)
	manager.fetchAddressQuiet(ctx)
}

// requestReload raises the reload signal without blocking. A signal already
// pending absorbs the request — re-fetching once covers both mutations.
func (manager *Manager) requestReload() {
	select {
	case manager.reload <- struct{}{}:
	default:
	}
}

// # State Accessors

// Token returns the current session token, or "" when unauthenticated.
func (manager *Manager) Token() string {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	return manager.token
}

// IsAuthenticated reports whether a session token is present.
func (manager *Manager) IsAuthenticated() bool {
	return manager.Token() != ""
}

// User returns a copy of the authenticated profile, or nil when logged out.
func (manager *Manager) User() *User {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	if manager.user == nil {
		return nil
	}
	user := *manager.user
	return &user
}

// Products returns a copy of the cached catalog snapshot.
func (manager *Manager) Products() []Product {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	products := make([]Product, len(manager.products))
	copy(products, manager.products)
	return products
}

// Cart returns a copy of the confirmed cart snapshot.
func (manager *Manager) Cart() Cart {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	items := make([]CartItem, len(manager.cart.Items))
	copy(items, manager.cart.Items)
	return Cart{Items: items}
}

// Address returns a copy of the saved shipping address, or nil when none.
func (manager *Manager) Address() *Address {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	if manager.address == nil {
		return nil
	}
	address := *manager.address
	return &address
}

// # Internal Helpers

// serverMessage extracts the server-provided message from a remote failure,
// falling back to a generic message when the error carries none.
func serverMessage(err error, fallback string) string {
	if ae := apperr.As(err); ae != nil && ae.Message != "" {
		return ae.Message
	}
	return fallback
}
