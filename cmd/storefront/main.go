// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

// Command storefront is the interactive MVS Mart shopping client.
//
// # Startup Sequence
//
//  1. Initialize structured logger (stderr, so the shell owns stdout).
//  2. Load configuration from environment variables.
//  3. Wire the remote API client, token store, and payment gateway.
//  4. Construct the state manager and start its synchronization loop.
//  5. Run the interactive shell until EOF or "quit".
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/mvsmart/storefront/internal/commerce"
	"github.com/mvsmart/storefront/internal/payment"
	"github.com/mvsmart/storefront/internal/pincode"
	"github.com/mvsmart/storefront/internal/platform/config"
	"github.com/mvsmart/storefront/internal/platform/tokenstore"
	"github.com/mvsmart/storefront/internal/remote"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// stderr keeps diagnostics away from the interactive output.
	rawLog := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	log := rawLog.With(slog.String("app", "storefront"))
	slog.SetDefault(log)

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "storefront"))
		slog.SetDefault(log)
	}

	log.Info("configuration_loaded",
		slog.String("api_url", cfg.APIBaseURL),
		slog.String("token_path", cfg.TokenPath),
	)

	// ── 3. Collaborators ──────────────────────────────────────────────────
	backend := remote.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)
	tokens := tokenstore.NewFileStore(cfg.TokenPath)
	gateway := payment.NewSandboxGateway(cfg.GatewaySecret)
	resolver := pincode.NewResolver(cfg.PincodeAPIURL, cfg.RequestTimeout)
	notify := newConsoleNotifier(os.Stdout)

	// ── 4. State Manager ──────────────────────────────────────────────────
	manager := commerce.New(backend, tokens, gateway, notify, log, cfg.GatewayKey)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go manager.Run(ctx)

	// ── 5. Interactive Shell ──────────────────────────────────────────────
	sh := newShell(manager, resolver, os.Stdin, os.Stdout)
	sh.run(ctx)

	log.Info("storefront_exited")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
