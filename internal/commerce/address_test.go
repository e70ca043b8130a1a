// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

package commerce_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvsmart/storefront/internal/commerce"
)

// # Address Tests

// fakeResolver is a scriptable [commerce.PincodeResolver].
type fakeResolver struct {
	location *commerce.PincodeLocation
	err      error
	lookups  int
}

func (r *fakeResolver) Lookup(ctx context.Context, pincode string) (*commerce.PincodeLocation, error) {
	r.lookups++
	return r.location, r.err
}

/*
TestFetchAddress_RequiresSession verifies the auth guard on the explicit
address fetch.
*/
func TestFetchAddress_RequiresSession(t *testing.T) {
	backend := &fakeBackend{}
	notify := &notifyRecorder{}
	manager := newManager(backend, &memTokens{}, &fakeGateway{}, notify)

	err := manager.FetchAddress(context.Background())

	require.Error(t, err)
	assert.Zero(t, backend.totalCalls())
	assert.Equal(t, "You need to log in first!", notify.lastFailure())
}

/*
TestAddAddress_RefreshesLocalCopy verifies that a successful save re-fetches
the address so the checkout view sees the new value.
*/
func TestAddAddress_RefreshesLocalCopy(t *testing.T) {
	saved := commerce.Address{
		FullName: "Asha Verma", Address: "12 MG Road", City: "Pune",
		State: "Maharashtra", Pincode: "411001", Country: "India",
		PhoneNumber: "9876543210", UserID: "u1",
	}
	backend := &fakeBackend{
		addAddressResult: &commerce.AddAddressResult{Message: "Address saved successfully!", Success: true},
		address:          &saved,
	}
	manager := newManager(backend, &memTokens{token: "tok"}, &fakeGateway{}, &notifyRecorder{})

	result, err := manager.AddAddress(context.Background(), saved)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, backend.callCount("Address"), "save must be followed by a re-fetch")
	require.NotNil(t, manager.Address())
	assert.Equal(t, "Pune", manager.Address().City)
}

// # Address Form Tests

/*
TestAddressForm_PrefillsName verifies that a fresh form carries the session
profile's name.
*/
func TestAddressForm_PrefillsName(t *testing.T) {
	form := commerce.NewAddressForm(&commerce.User{Name: "Asha Verma"})
	assert.Equal(t, "Asha Verma", form.FullName)

	anonymous := commerce.NewAddressForm(nil)
	assert.Empty(t, anonymous.FullName)
}

/*
TestApplyPincodeLookup_OverwritesDerivedFields verifies that a successful
lookup replaces city, state, and country even when the user typed them, and
clears any prior form error.
*/
func TestApplyPincodeLookup_OverwritesDerivedFields(t *testing.T) {
	form := &commerce.AddressForm{
		Pincode:      "411001",
		City:         "typed-by-hand",
		State:        "typed-by-hand",
		ErrorMessage: "stale error",
	}
	resolver := &fakeResolver{
		location: &commerce.PincodeLocation{City: "Pune", State: "Maharashtra", Country: "India"},
	}

	form.ApplyPincodeLookup(context.Background(), resolver)

	assert.Equal(t, "Pune", form.City)
	assert.Equal(t, "Maharashtra", form.State)
	assert.Equal(t, "India", form.Country)
	assert.Empty(t, form.ErrorMessage)
}

/*
TestApplyPincodeLookup_IgnoresPartialCodes verifies that codes shorter than
6 digits never reach the resolver — the live form calls this per keystroke.
*/
func TestApplyPincodeLookup_IgnoresPartialCodes(t *testing.T) {
	form := &commerce.AddressForm{Pincode: "411"}
	resolver := &fakeResolver{}

	form.ApplyPincodeLookup(context.Background(), resolver)

	assert.Zero(t, resolver.lookups)
	assert.Empty(t, form.ErrorMessage)
}

/*
TestApplyPincodeLookup_UnknownCode verifies the invalid-pincode message while
preserving the previously entered fields.
*/
func TestApplyPincodeLookup_UnknownCode(t *testing.T) {
	form := &commerce.AddressForm{Pincode: "000000", City: "Pune"}
	resolver := &fakeResolver{location: nil}

	form.ApplyPincodeLookup(context.Background(), resolver)

	assert.Equal(t, "Invalid Pincode. Please try again.", form.ErrorMessage)
	assert.Equal(t, "Pune", form.City, "failed lookup keeps prior values")
}

/*
TestApplyPincodeLookup_TransportFailure verifies the lookup-failed message.
*/
func TestApplyPincodeLookup_TransportFailure(t *testing.T) {
	form := &commerce.AddressForm{Pincode: "411001"}
	resolver := &fakeResolver{err: errors.New("connection refused")}

	form.ApplyPincodeLookup(context.Background(), resolver)

	assert.Equal(t, "Failed to fetch location details. Please try again later.", form.ErrorMessage)
}

/*
TestAddressForm_Validate verifies the pre-submit rule set.
*/
func TestAddressForm_Validate(t *testing.T) {
	complete := commerce.AddressForm{
		FullName: "Asha Verma", Address: "12 MG Road", City: "Pune",
		State: "Maharashtra", Pincode: "411001", Country: "India",
		PhoneNumber: "9876543210",
	}

	t.Run("Complete", func(t *testing.T) {
		form := complete
		address, err := form.Validate()
		require.NoError(t, err)
		assert.True(t, address.IsComplete())
		assert.Empty(t, form.ErrorMessage)
	})

	t.Run("MissingField", func(t *testing.T) {
		form := complete
		form.City = ""
		_, err := form.Validate()
		require.Error(t, err)
		assert.NotEmpty(t, form.ErrorMessage)
	})

	t.Run("ShortPincode", func(t *testing.T) {
		form := complete
		form.Pincode = "4110"
		_, err := form.Validate()
		require.Error(t, err)
	})

	t.Run("NonDigitPhone", func(t *testing.T) {
		form := complete
		form.PhoneNumber = "98765abcde"
		_, err := form.Validate()
		require.Error(t, err)
	})
}
