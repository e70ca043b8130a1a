// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

/*
Package constants provides centralized, immutable values for the storefront.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the development backend.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Commerce: Currency, display name, and the custom auth header.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "mvsmart-storefront"
	AppVersion = "0.1.0-dev"

	// StoreDisplayName is shown on the payment gateway overlay and in the UI header.
	StoreDisplayName = "MVS Mart"
)

// # Commerce

const (
	// Currency is the ISO code passed to the payment gateway.
	Currency = "INR"

	// PaymentDescription labels gateway charges.
	PaymentDescription = "Order Payment"

	// PincodeLength is the number of digits in a valid postal code.
	PincodeLength = 6

	// PhoneNumberLength is the number of digits in a valid phone number.
	PhoneNumberLength = 10

	// ProductsPerPage is the catalog page size for the browse view.
	ProductsPerPage = 12

	// SearchResultsPerPage is the catalog page size for the search view.
	SearchResultsPerPage = 8
)

// # Authentication

const (
	// HeaderAuth is the custom header carrying the raw session token.
	// The backend contract predates the standard bearer scheme; the value
	// is the token itself with no prefix.
	HeaderAuth = "Auth"

	// AuthIssuer is the standard 'iss' claim in tokens issued by martd.
	AuthIssuer = "mvsmart.store"

	// SessionTokenTTL is how long a martd-issued session token stays valid.
	SessionTokenTTL = 7 * 24 * time.Hour
)

// # Server Timing (martd)

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting (martd)

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Header Names

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldMessage = "message"
	FieldSuccess = "success"
	FieldError   = "error"
	FieldCode    = "code"
	FieldStatus  = "status"
)
