// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

package martd

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/mvsmart/storefront/internal/platform/config"
	"github.com/mvsmart/storefront/internal/platform/constants"
	"github.com/mvsmart/storefront/internal/platform/middleware"
	"github.com/mvsmart/storefront/internal/platform/respond"
	"github.com/mvsmart/storefront/internal/platform/sec"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in cmd/martd with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers every route group of the storefront API contract.
func NewServer(appCtx context.Context, cfg *config.Config, log *slog.Logger, tokens *sec.TokenService, store *Store) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(appCtx))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(tokens))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", func(writer http.ResponseWriter, request *http.Request) {
		respond.OK(writer, map[string]any{constants.FieldStatus: "ok"})
	})

	// # Application API
	// The storefront contract mounts at the root, unversioned.
	r.Mount("/user", NewUserHandler(store, tokens).Routes())
	r.Mount("/product", NewCatalogHandler(store).Routes())
	r.Mount("/cart", NewCartHandler(store).Routes())
	r.Mount("/address", NewAddressHandler(store).Routes())
	r.Mount("/payment", NewPaymentHandler(store, cfg.GatewaySecret).Routes())
	r.Get("/pincode/{code}", pincodeLookup)

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the router, primarily for in-process test servers.
func (s *Server) Handler() http.Handler { return s.router }

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
