// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

/*
Package commerce implements the session and commerce state manager for the
MVS Mart storefront.

It centralizes authentication state, the product catalog cache, the shopping
cart, and address data, and synchronizes them with the remote service. Every
screen of the presentation layer consumes this package's capability surface
and feeds user intents back into it.

# Architecture

This layer is the "Truth" of the client. State is mutated only through
remote-confirmed operations: a mutation calls the backend, then requests a
re-synchronization, so the UI only ever renders a confirmed server snapshot —
never a locally computed guess.
*/
package commerce

import "time"

// # Domain Entities

// User represents the authenticated shopper's profile.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	ProfileImage string    `json:"profileImage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Product is one catalog entry. It is read-only from the client's
// perspective: created and mutated only by the backend, cached here as a
// wholesale snapshot.
type Product struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	ImgSrc      string  `json:"imgSrc"`
}

// CartItem is one product-quantity line within the cart.
//
// # Price Convention
//
// Price is the LINE TOTAL (unit price × qty), not the unit price. This is a
// historical backend contract that several flows depend on; use [CartItem.UnitPrice]
// to recover the per-unit value. Do not "fix" this without also rewriting the
// server contract.
type CartItem struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
	ImgSrc    string  `json:"imgSrc"`
}

// UnitPrice derives the per-unit price from the line total.
func (item CartItem) UnitPrice() float64 {
	if item.Qty <= 0 {
		return item.Price
	}
	return item.Price / float64(item.Qty)
}

// Cart holds the authenticated user's cart contents.
//
// An empty cart is {Items: []}, never absent.
type Cart struct {
	Items []CartItem `json:"items"`
}

// EmptyCart returns a fresh empty cart with a non-nil item slice.
func EmptyCart() Cart {
	return Cart{Items: []CartItem{}}
}

// TotalAmount sums the line totals of every item in the cart.
func (cart Cart) TotalAmount() float64 {
	var total float64
	for _, item := range cart.Items {
		total += item.Price
	}
	return total
}

// TotalItems returns the number of lines in the cart.
func (cart Cart) TotalItems() int {
	return len(cart.Items)
}

// Find returns the cart line for the given product, or nil if absent.
func (cart Cart) Find(productID string) *CartItem {
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			return &cart.Items[i]
		}
	}
	return nil
}

// Address is the shopper's saved shipping address.
type Address struct {
	FullName    string `json:"fullName"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	Country     string `json:"country"`
	PhoneNumber string `json:"phoneNumber"`
	UserID      string `json:"userId"`
}

// IsComplete reports whether every shipping field is filled in. Checkout
// refuses to contact the order-creation endpoint while this is false.
func (address Address) IsComplete() bool {
	return address.FullName != "" &&
		address.Address != "" &&
		address.City != "" &&
		address.State != "" &&
		address.Pincode != "" &&
		address.Country != "" &&
		address.PhoneNumber != ""
}

// Order is the transient result of a successful checkout. It is carried to
// the confirmation view and is never retained in the long-lived state.
type Order struct {
	OrderID string  `json:"orderId"`
	Amount  float64 `json:"amount"`
}

// # Field Identifiers

// Field names for validation in the commerce domain.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldFullName    = "fullName"
	FieldAddress     = "address"
	FieldCity        = "city"
	FieldState       = "state"
	FieldPincode     = "pincode"
	FieldCountry     = "country"
	FieldPhoneNumber = "phoneNumber"
)
