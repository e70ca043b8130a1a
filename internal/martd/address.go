// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

package martd

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mvsmart/storefront/internal/commerce"
	"github.com/mvsmart/storefront/internal/platform/constants"
	"github.com/mvsmart/storefront/internal/platform/middleware"
	requestutil "github.com/mvsmart/storefront/internal/platform/request"
	"github.com/mvsmart/storefront/internal/platform/respond"
	"github.com/mvsmart/storefront/internal/platform/validate"
)

// AddressHandler implements the authenticated shipping-address endpoints.
//
// Saving is append-only and reading returns the latest entry, so the client
// always sees the most recent address without an update endpoint.
type AddressHandler struct {
	store *Store
}

// NewAddressHandler constructs an [AddressHandler].
func NewAddressHandler(store *Store) *AddressHandler {
	return &AddressHandler{store: store}
}

// Routes returns the address route group. Every endpoint requires a session.
//
// # Endpoints
//   - GET  /get : Returns the latest saved address.
//   - POST /add : Saves a new address.
func (handler *AddressHandler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/get", handler.get)
	router.Post("/add", handler.add)

	return router
}

// get returns the latest saved address, or a null userAddress when the user
// has never saved one. GET /address/get.
func (handler *AddressHandler) get(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"userAddress": handler.store.LatestAddress(userID),
	})
}

/*
add saves a shipping address.

POST /address/add

Response:
  - 200: {message, success}
  - 400: Validation failure
*/
func (handler *AddressHandler) add(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var address commerce.Address
	if err := requestutil.DecodeJSON(request, &address); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(commerce.FieldFullName, address.FullName).
		Required(commerce.FieldAddress, address.Address).
		Required(commerce.FieldCity, address.City).
		Required(commerce.FieldState, address.State).
		Required(commerce.FieldCountry, address.Country).
		Required(commerce.FieldPincode, address.Pincode).
		Digits(commerce.FieldPincode, address.Pincode, constants.PincodeLength).
		Required(commerce.FieldPhoneNumber, address.PhoneNumber).
		Digits(commerce.FieldPhoneNumber, address.PhoneNumber, constants.PhoneNumberLength)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.store.AddAddress(userID, address)

	respond.OK(writer, map[string]any{
		constants.FieldMessage: "Address saved successfully!",
		constants.FieldSuccess: true,
	})
}
