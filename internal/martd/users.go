// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

/*
Package martd is the development backend for the MVS Mart storefront.

It serves the complete storefront API contract (identity, catalog, cart,
address, payment verification, pincode stub) from process memory so the
client can be exercised end to end without external services. The wire
shapes are flat JSON envelopes, exactly mirroring the production contract
the storefront was built against.
*/
package martd

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mvsmart/storefront/internal/platform/apperr"
	"github.com/mvsmart/storefront/internal/platform/constants"
	"github.com/mvsmart/storefront/internal/platform/middleware"
	requestutil "github.com/mvsmart/storefront/internal/platform/request"
	"github.com/mvsmart/storefront/internal/platform/respond"
	"github.com/mvsmart/storefront/internal/platform/sec"
	"github.com/mvsmart/storefront/internal/platform/validate"
)

// # Definitions & Constructors

// UserHandler implements the identity endpoints.
type UserHandler struct {
	store  *Store
	tokens *sec.TokenService
}

// NewUserHandler constructs a [UserHandler] with its dependencies.
func NewUserHandler(store *Store, tokens *sec.TokenService) *UserHandler {
	return &UserHandler{store: store, tokens: tokens}
}

// Routes returns the identity route group.
//
// # Endpoints
//   - POST /register : Creates a new account.
//   - POST /login    : Authenticates and returns a session token.
//   - GET  /profile  : Returns the authenticated profile.
func (handler *UserHandler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/register", handler.register)
	router.Post("/login", handler.login)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/profile", handler.profile)
	})

	return router
}

// # Request Payloads

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
register handles the creation of a new account.

POST /user/register

Response:
  - 201: {message, success}
  - 400: Validation failure
  - 409: Email already registered
*/
func (handler *UserHandler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required("name", input.Name).
		Required("email", input.Email).
		Email("email", input.Email).
		Required("password", input.Password).
		MinLen("password", input.Password, 8)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.store.CreateUser(input.Name, input.Email, input.Password); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]any{
		constants.FieldMessage: "User registered successfully!",
		constants.FieldSuccess: true,
	})
}

/*
login authenticates a user and issues a session token.

POST /user/login

Response:
  - 200: {token, message, success}
  - 401: Invalid credentials
*/
func (handler *UserHandler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	record := handler.store.UserByEmail(input.Email)
	if record == nil || !sec.CheckPasswordHash(input.Password, record.PasswordHash) {
		respond.Error(writer, request, apperr.Unauthorized("Invalid email or password"))
		return
	}

	token, err := handler.tokens.GenerateToken(record.ID, record.Name, record.Email, record.Role, constants.SessionTokenTTL)
	if err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	respond.OK(writer, map[string]any{
		"token":                token,
		constants.FieldMessage: "Login successful!",
		constants.FieldSuccess: true,
	})
}

// profile returns the authenticated user's profile. GET /user/profile.
func (handler *UserHandler) profile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	record := handler.store.UserByID(userID)
	if record == nil {
		respond.Error(writer, request, apperr.NotFound("User"))
		return
	}

	respond.OK(writer, map[string]any{"user": record.Profile()})
}
