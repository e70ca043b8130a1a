// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

package commerce

import (
	"context"
	"log/slog"

	"github.com/mvsmart/storefront/internal/platform/apperr"
)

// # Cart Operations
//
// Every mutation here follows the same shape: guard on authentication
// (zero network calls without a token), submit to the server, then raise the
// reload signal so the next cart snapshot comes from the server rather than
// a local guess. ClearCart is the one sanctioned exception.

/*
FetchCart replaces the cached cart with the server's confirmed snapshot.

Description: No-op when unauthenticated. A missing cart on the wire is
normalized to an empty cart. On failure the previous snapshot is retained.
*/
func (manager *Manager) FetchCart(ctx context.Context) {
	token := manager.Token()
	if token == "" {
		return
	}

	cart, err := manager.backend.Cart(ctx, token)
	if err != nil {
		manager.log.Error("cart_fetch_failed", slog.Any("error", err))
		return
	}
	if cart.Items == nil {
		cart.Items = []CartItem{}
	}

	manager.mu.Lock()
	manager.cart = *cart
	manager.mu.Unlock()
}

/*
AddToCart submits a new cart line and schedules a re-fetch.

Description: The server owns merge-vs-append semantics when the product is
already in the cart. price is the UNIT price; the submitted line carries the
total for the quantity (unit × qty), which the server accumulates when
merging.

Parameters:
  - ctx: context.Context
  - productID, title: string
  - price: float64 (unit price)
  - qty: int
  - imgSrc: string

Returns:
  - error: Already surfaced via the Notifier; nil means submitted
*/
func (manager *Manager) AddToCart(ctx context.Context, productID, title string, price float64, qty int, imgSrc string) error {
	token := manager.Token()
	if token == "" {
		err := apperr.Unauthenticated()
		manager.notify.Error(err.Message)
		return err
	}

	item := CartItem{
		ProductID: productID,
		Title:     title,
		Price:     price * float64(qty),
		Qty:       qty,
		ImgSrc:    imgSrc,
	}

	if err := manager.backend.AddToCart(ctx, token, item); err != nil {
		manager.notify.Error("Failed to add to cart!")
		return err
	}

	manager.requestReload()
	manager.notify.Success("Item added to cart!")
	return nil
}

/*
BuyNow adds a single unit of a product to the cart.

Description: The buy-now flow is "add one, then go straight to address
entry"; the navigation is the caller's job.
*/
func (manager *Manager) BuyNow(ctx context.Context, product Product) error {
	return manager.AddToCart(ctx, product.ID, product.Title, product.Price, 1, product.ImgSrc)
}

/*
AddOneMore increments an existing cart line by one unit.

Description: The line's Price field is a running total, so the unit price is
recovered as price/qty before re-submitting a quantity delta of one. This is
the call site the total-price convention exists for.
*/
func (manager *Manager) AddOneMore(ctx context.Context, item CartItem) error {
	return manager.AddToCart(ctx, item.ProductID, item.Title, item.UnitPrice(), 1, item.ImgSrc)
}

/*
RemoveFromCart deletes a cart line server-side and schedules a re-fetch.

Returns:
  - error: Already surfaced via the Notifier; nil means submitted
*/
func (manager *Manager) RemoveFromCart(ctx context.Context, productID string) error {
	token := manager.Token()
	if token == "" {
		err := apperr.Unauthenticated()
		manager.notify.Error(err.Message)
		return err
	}

	if err := manager.backend.RemoveFromCart(ctx, token, productID); err != nil {
		manager.notify.Error("Failed to remove item from cart!")
		return err
	}

	manager.requestReload()
	manager.notify.Success("Item removed from cart!")
	return nil
}

/*
DecreaseQty decrements a line's quantity server-side and schedules a re-fetch.

Description: The client issues the same call regardless of the current
quantity — whether a decrement to zero removes the line or floors it is the
server's decision, and the re-fetched cart is trusted either way.

Returns:
  - error: Already surfaced via the Notifier; nil means submitted
*/
func (manager *Manager) DecreaseQty(ctx context.Context, productID string, qty int) error {
	token := manager.Token()
	if token == "" {
		err := apperr.Unauthenticated()
		manager.notify.Error(err.Message)
		return err
	}

	if err := manager.backend.DecreaseQty(ctx, token, productID, qty); err != nil {
		manager.notify.Error("Failed to decrease quantity!")
		return err
	}

	manager.requestReload()
	manager.notify.Success("Item quantity decreased!")
	return nil
}

/*
ClearCart deletes every line server-side and empties the local cart immediately.

Description: The one mutation that patches local state directly instead of
waiting for a re-fetch: it is always followed by navigation away from
cart-bearing views, so the empty cart must be visible at once. Unauthenticated
calls return silently (no notification) — the flows that reach here have
already passed an auth guard.
*/
func (manager *Manager) ClearCart(ctx context.Context) error {
	token := manager.Token()
	if token == "" {
		return nil
	}

	if err := manager.backend.ClearCart(ctx, token); err != nil {
		manager.log.Error("cart_clear_failed", slog.Any("error", err))
		return err
	}

	manager.mu.Lock()
	manager.cart = EmptyCart()
	manager.mu.Unlock()

	return nil
}
