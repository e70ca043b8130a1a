// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

package commerce

import (
	"context"
	"fmt"
	"log/slog"
)

// # Session Lifecycle

/*
Register creates a new account. It does NOT authenticate the session — the
shopper logs in separately afterwards.

Description: Submits the registration, surfaces the server's message as a
success or failure notification, and returns the raw result for the caller
to branch on.

Parameters:
  - ctx: context.Context
  - name, email, password: string

Returns:
  - *RegisterResult: Server response, nil on failure
  - error: Already surfaced via the Notifier; callers only branch on it
*/
func (manager *Manager) Register(ctx context.Context, name, email, password string) (*RegisterResult, error) {
	result, err := manager.backend.Register(ctx, name, email, password)
	if err != nil {
		manager.notify.Error(serverMessage(err, "Registration failed!"))
		return nil, err
	}

	if result.Message != "" {
		manager.notify.Success(result.Message)
	} else {
		manager.notify.Success("Registration successful!")
	}

	return result, nil
}

/*
Login exchanges credentials for a session token and establishes the session.

Description: On success the token is stored in memory and durable storage,
the authenticated flag flips, and the reload cascade (profile, cart, address)
is triggered. On failure the session is left untouched.

Parameters:
  - ctx: context.Context
  - email, password: string

Returns:
  - *LoginResult: Raw server response for the caller to branch on
  - error: Already surfaced via the Notifier
*/
func (manager *Manager) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	result, err := manager.backend.Login(ctx, email, password)
	if err != nil {
		manager.notify.Error(serverMessage(err, "Login failed!"))
		return nil, err
	}
	if result.Token == "" {
		err := fmt.Errorf("commerce: login response carried no token")
		manager.notify.Error(serverMessage(err, "Login failed!"))
		return nil, err
	}

	manager.mu.Lock()
	manager.token = result.Token
	manager.mu.Unlock()

	// Persist the credential for the next application run. A write failure
	// degrades to an in-memory session, not a failed login.
	if err := manager.tokens.Save(result.Token); err != nil {
		manager.log.Error("token_persist_failed", slog.Any("error", err))
	}

	manager.requestReload()

	if result.Message != "" {
		manager.notify.Success(result.Message)
	} else {
		manager.notify.Success("Login successful!")
	}

	return result, nil
}

/*
Logout tears down the session client-side.

Description: Clears token, profile, cart, and address in one critical
section, so no partial-logout state is ever observable, and erases the
persisted token. No remote call is made — token invalidation, if any, is the
server's concern on next use.
*/
func (manager *Manager) Logout() {
	manager.mu.Lock()
	manager.token = ""
	manager.user = nil
	manager.cart = EmptyCart()
	manager.address = nil
	manager.mu.Unlock()

	if err := manager.tokens.Clear(); err != nil {
		manager.log.Error("token_clear_failed", slog.Any("error", err))
	}

	manager.notify.Success("Logged out successfully!")
}

/*
FetchProfile replaces the cached profile with the server's copy.

Description: No-op when unauthenticated. On failure the previous profile is
retained and the error is logged, not surfaced — the profile refresh is a
background concern.
*/
func (manager *Manager) FetchProfile(ctx context.Context) {
	token := manager.Token()
	if token == "" {
		return
	}

	user, err := manager.backend.Profile(ctx, token)
	if err != nil {
		manager.log.Error("profile_fetch_failed", slog.Any("error", err))
		return
	}

	manager.mu.Lock()
	manager.user = user
	manager.mu.Unlock()
}
