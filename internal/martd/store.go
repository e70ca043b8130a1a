// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

package martd

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mvsmart/storefront/internal/commerce"
	"github.com/mvsmart/storefront/internal/platform/apperr"
	"github.com/mvsmart/storefront/internal/platform/sec"
)

// # Records

// UserRecord is a stored account. PasswordHash never leaves this package.
type UserRecord struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// Profile strips the credential material for the wire.
func (record UserRecord) Profile() commerce.User {
	return commerce.User{
		ID:        record.ID,
		Name:      record.Name,
		Email:     record.Email,
		Role:      record.Role,
		CreatedAt: record.CreatedAt,
	}
}

// OrderRecord is a pending or verified payment order.
type OrderRecord struct {
	OrderID   string
	Amount    float64
	UserID    string
	Items     []commerce.CartItem
	Shipping  commerce.Address
	Verified  bool
	CreatedAt time.Time
}

// # Store

// Store is the in-memory persistence layer for the development backend.
//
// Everything lives in process memory behind a single mutex: the backend
// exists to exercise the storefront end to end, not to survive restarts.
// Addresses are kept as an append-only history per user and reads return
// the latest entry, matching the production contract.
type Store struct {
	mu        sync.RWMutex
	users     map[string]*UserRecord // keyed by user ID
	emails    map[string]string      // email -> user ID
	products  []commerce.Product
	carts     map[string][]commerce.CartItem // keyed by user ID
	addresses map[string][]commerce.Address  // append-only, keyed by user ID
	orders    map[string]*OrderRecord        // keyed by order ID
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{
		users:     make(map[string]*UserRecord),
		emails:    make(map[string]string),
		carts:     make(map[string][]commerce.CartItem),
		addresses: make(map[string][]commerce.Address),
		orders:    make(map[string]*OrderRecord),
	}
}

// # Users

// CreateUser registers a new account with a bcrypt-hashed password.
func (store *Store) CreateUser(name, email, password string) (*UserRecord, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, exists := store.emails[email]; exists {
		return nil, apperr.Conflict("User already exists")
	}

	hash, err := sec.HashPassword(password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	record := &UserRecord{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         string(sec.RoleUser),
		CreatedAt:    time.Now().UTC(),
	}
	store.users[record.ID] = record
	store.emails[email] = record.ID

	return record, nil
}

// UserByEmail looks an account up by email, or nil when unknown.
func (store *Store) UserByEmail(email string) *UserRecord {
	store.mu.RLock()
	defer store.mu.RUnlock()

	id, ok := store.emails[email]
	if !ok {
		return nil
	}
	return store.users[id]
}

// UserByID looks an account up by ID, or nil when unknown.
func (store *Store) UserByID(id string) *UserRecord {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.users[id]
}

// # Products

// SetProducts replaces the whole catalog. Used by seeding and tests.
func (store *Store) SetProducts(products []commerce.Product) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.products = products
}

// Products returns a copy of the catalog.
func (store *Store) Products() []commerce.Product {
	store.mu.RLock()
	defer store.mu.RUnlock()

	out := make([]commerce.Product, len(store.products))
	copy(out, store.products)
	return out
}

// ProductByID returns one catalog entry, or nil when unknown.
func (store *Store) ProductByID(id string) *commerce.Product {
	store.mu.RLock()
	defer store.mu.RUnlock()

	for i := range store.products {
		if store.products[i].ID == id {
			product := store.products[i]
			return &product
		}
	}
	return nil
}

// # Carts

// CartFor returns a copy of the user's cart lines. Never nil.
func (store *Store) CartFor(userID string) []commerce.CartItem {
	store.mu.RLock()
	defer store.mu.RUnlock()

	lines := store.carts[userID]
	out := make([]commerce.CartItem, len(lines))
	copy(out, lines)
	return out
}

// AddCartLine inserts or merges a cart line.
//
// When the product already exists in the cart, the quantities add up and so
// do the line totals. Item.Price carries the total for the submitted
// quantity, so merging is a plain sum on both fields.
func (store *Store) AddCartLine(userID string, item commerce.CartItem) {
	store.mu.Lock()
	defer store.mu.Unlock()

	lines := store.carts[userID]
	for i := range lines {
		if lines[i].ProductID == item.ProductID {
			lines[i].Qty += item.Qty
			lines[i].Price += item.Price
			store.carts[userID] = lines
			return
		}
	}
	store.carts[userID] = append(lines, item)
}

// DecreaseCartLine reduces a line's quantity, dropping the line when the
// quantity reaches zero or below. Decreasing a product that is not in the
// cart is a silent no-op.
func (store *Store) DecreaseCartLine(userID, productID string, qty int) {
	store.mu.Lock()
	defer store.mu.Unlock()

	lines := store.carts[userID]
	for i := range lines {
		if lines[i].ProductID != productID {
			continue
		}

		unit := lines[i].UnitPrice()
		lines[i].Qty -= qty
		lines[i].Price -= unit * float64(qty)

		if lines[i].Qty <= 0 {
			store.carts[userID] = append(lines[:i], lines[i+1:]...)
		} else {
			store.carts[userID] = lines
		}
		return
	}
}

// RemoveCartLine deletes a line regardless of quantity. Unknown products are
// a silent no-op.
func (store *Store) RemoveCartLine(userID, productID string) {
	store.mu.Lock()
	defer store.mu.Unlock()

	lines := store.carts[userID]
	for i := range lines {
		if lines[i].ProductID == productID {
			store.carts[userID] = append(lines[:i], lines[i+1:]...)
			return
		}
	}
}

// ClearCart drops every line for the user.
func (store *Store) ClearCart(userID string) {
	store.mu.Lock()
	defer store.mu.Unlock()
	delete(store.carts, userID)
}

// # Addresses

// AddAddress appends a new address to the user's history.
func (store *Store) AddAddress(userID string, address commerce.Address) {
	store.mu.Lock()
	defer store.mu.Unlock()

	address.UserID = userID
	store.addresses[userID] = append(store.addresses[userID], address)
}

// LatestAddress returns the most recently saved address, or nil when the
// user has never saved one.
func (store *Store) LatestAddress(userID string) *commerce.Address {
	store.mu.RLock()
	defer store.mu.RUnlock()

	history := store.addresses[userID]
	if len(history) == 0 {
		return nil
	}
	address := history[len(history)-1]
	return &address
}

// # Orders

// CreateOrder registers a pending order and returns its gateway identifier.
func (store *Store) CreateOrder(userID string, amount float64, items []commerce.CartItem, shipping commerce.Address) *OrderRecord {
	store.mu.Lock()
	defer store.mu.Unlock()

	record := &OrderRecord{
		OrderID:   "order_" + uuid.NewString(),
		Amount:    amount,
		UserID:    userID,
		Items:     items,
		Shipping:  shipping,
		CreatedAt: time.Now().UTC(),
	}
	store.orders[record.OrderID] = record
	return record
}

// OrderByID returns a pending order, or nil when unknown.
func (store *Store) OrderByID(orderID string) *OrderRecord {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.orders[orderID]
}

// MarkOrderVerified flags an order as payment-verified.
func (store *Store) MarkOrderVerified(orderID string) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if record, ok := store.orders[orderID]; ok {
		record.Verified = true
	}
}
