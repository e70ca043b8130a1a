// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

package commerce

import (
	"context"
	"log/slog"

	"github.com/mvsmart/storefront/internal/platform/apperr"
	"github.com/mvsmart/storefront/internal/platform/constants"
	"github.com/mvsmart/storefront/internal/platform/validate"
)

// # Address State

/*
FetchAddress replaces the cached shipping address with the server's copy.

Description: Requires authentication — without a token it surfaces the
"log in first" notice and returns without calling the server.

Returns:
  - error: Already surfaced via Notifier or logged; nil means refreshed
*/
func (manager *Manager) FetchAddress(ctx context.Context) error {
	token := manager.Token()
	if token == "" {
		err := apperr.Unauthenticated()
		manager.notify.Error(err.Message)
		return err
	}

	return manager.fetchAddress(ctx, token)
}

// fetchAddressQuiet is the reload-cascade variant: it skips silently when
// unauthenticated instead of raising the "log in first" notice.
func (manager *Manager) fetchAddressQuiet(ctx context.Context) {
	token := manager.Token()
	if token == "" {
		return
	}
	_ = manager.fetchAddress(ctx, token)
}

func (manager *Manager) fetchAddress(ctx context.Context, token string) error {
	address, err := manager.backend.Address(ctx, token)
	if err != nil {
		manager.log.Error("address_fetch_failed", slog.Any("error", err))
		return err
	}

	manager.mu.Lock()
	manager.address = address
	manager.mu.Unlock()
	return nil
}

/*
AddAddress saves a shipping address server-side.

Description: Requires authentication (same guard as FetchAddress). The
manager validates nothing here — validation is the form's job, see
[AddressForm.Validate]. The raw response is returned for the caller to
inspect the success flag, after which the local copy is refreshed.

Parameters:
  - ctx: context.Context
  - address: Address

Returns:
  - *AddAddressResult: Raw server response
  - error: Already surfaced via the Notifier
*/
func (manager *Manager) AddAddress(ctx context.Context, address Address) (*AddAddressResult, error) {
	token := manager.Token()
	if token == "" {
		err := apperr.Unauthenticated()
		manager.notify.Error(err.Message)
		return nil, err
	}

	result, err := manager.backend.AddAddress(ctx, token, address)
	if err != nil {
		manager.notify.Error(serverMessage(err, "Failed to save address!"))
		return nil, err
	}

	// Pick up the new current address for the checkout view.
	_ = manager.fetchAddress(ctx, token)

	return result, nil
}

// # Address Entry Form

// PincodeLocation is the locality data resolved from a postal code.
type PincodeLocation struct {
	City    string
	State   string
	Country string
}

// PincodeResolver looks up locality details for a 6-digit postal code.
//
// Implemented by the external postal-code lookup client; consumed only by
// the address-entry flow.
type PincodeResolver interface {
	Lookup(context context.Context, pincode string) (*PincodeLocation, error)
}

// AddressForm is the address-entry working state.
//
// ErrorMessage mirrors the inline form error of the UI: set by a failed
// lookup or validation, cleared by success.
type AddressForm struct {
	FullName    string
	Address     string
	City        string
	State       string
	Pincode     string
	Country     string
	PhoneNumber string

	ErrorMessage string
}

// NewAddressForm starts an address form, prefilling the full name from the
// session profile when available.
func NewAddressForm(user *User) *AddressForm {
	form := &AddressForm{}
	if user != nil {
		form.FullName = user.Name
	}
	return form
}

/*
ApplyPincodeLookup auto-populates city, state, and country from the postal
code via the resolver.

Description: On a successful lookup the three derived fields are OVERWRITTEN
(user-entered values included) and the form error clears. On failure the
prior values are preserved and the error message is set. Codes that are not
6 digits are ignored entirely — the live form calls this on every keystroke.
*/
func (form *AddressForm) ApplyPincodeLookup(ctx context.Context, resolver PincodeResolver) {
	v := &validate.Validator{}
	if v.Digits(FieldPincode, form.Pincode, constants.PincodeLength).HasErrors() {
		return
	}

	location, err := resolver.Lookup(ctx, form.Pincode)
	if err != nil {
		form.ErrorMessage = "Failed to fetch location details. Please try again later."
		return
	}
	if location == nil {
		form.ErrorMessage = "Invalid Pincode. Please try again."
		return
	}

	form.City = location.City
	form.State = location.State
	form.Country = location.Country
	form.ErrorMessage = ""
}

/*
Validate runs the full pre-submit rule set: every field required, the phone
number 10 digits, the pincode 6 digits.

Returns:
  - Address: The validated address value
  - error: apperr VALIDATION_ERROR with per-field details
*/
func (form *AddressForm) Validate() (Address, error) {
	v := &validate.Validator{}
	v.Required(FieldFullName, form.FullName).
		Required(FieldAddress, form.Address).
		Required(FieldCity, form.City).
		Required(FieldState, form.State).
		Required(FieldPincode, form.Pincode).
		Required(FieldCountry, form.Country).
		Required(FieldPhoneNumber, form.PhoneNumber).
		Digits(FieldPincode, form.Pincode, constants.PincodeLength).
		Digits(FieldPhoneNumber, form.PhoneNumber, constants.PhoneNumberLength)

	if err := v.Err(); err != nil {
		form.ErrorMessage = err.Error()
		return Address{}, err
	}

	form.ErrorMessage = ""
	return Address{
		FullName:    form.FullName,
		Address:     form.Address,
		City:        form.City,
		State:       form.State,
		Pincode:     form.Pincode,
		Country:     form.Country,
		PhoneNumber: form.PhoneNumber,
	}, nil
}
