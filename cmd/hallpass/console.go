// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hallpass Contributors

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hallpass/hallpass/internal/auth"
	"github.com/hallpass/hallpass/internal/config"
	"github.com/hallpass/hallpass/internal/console"
	"github.com/hallpass/hallpass/internal/logging"
	"github.com/hallpass/hallpass/internal/observability"
	"github.com/hallpass/hallpass/internal/web"
	"github.com/hallpass/hallpass/internal/web/handlers"
)

// NewConsoleCmd creates the console subcommand.
func NewConsoleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "console",
		Short: "Start the interactive console app",
		Long: `Start the interactive loop that simulates the web app. Each
iteration reads a path (plus simulated POST fields and a session cookie
where relevant), dispatches it, and prints the response.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConsole(cmd)
		},
	}

	// Flag names mirror the config file keys so the flag layer can
	// override the file layer key by key.
	cmd.Flags().String("log.format", "json", "log format (json or text)")
	cmd.Flags().String("log.level", "info", "log level (debug, info, warn, error)")
	cmd.Flags().String("auth.hasher", config.HasherSHA256, "password hasher (sha256 or argon2id)")
	cmd.Flags().String("metrics.addr", "", "metrics/health HTTP address (empty = disabled)")

	return cmd
}

// runConsole wires the stores, dispatcher, and loop, then runs until exit.
func runConsole(cmd *cobra.Command) error {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logging.SetDefault("hallpass", version, cfg.LogFormat, logging.ParseLevel(cfg.LogLevel))

	hasher, err := hasherFor(cfg.Hasher)
	if err != nil {
		return err
	}

	users := auth.NewMemoryUserStore()
	sessions := auth.NewMemorySessionRegistry()
	svc, err := auth.NewService(users, sessions, hasher)
	if err != nil {
		return fmt.Errorf("failed to create auth service: %w", err)
	}

	routes := web.NewRouteTable()
	handlers.RegisterAll(routes)

	dispatcher, err := web.NewDispatcher(routes,
		&web.Services{Users: users, Sessions: sessions, Auth: svc},
		web.WithNotFound(handlers.NotFoundHandler))
	if err != nil {
		return fmt.Errorf("failed to create dispatcher: %w", err)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Start observability server if configured
	var obsServer *observability.Server
	if cfg.MetricsAddr != "" {
		obsServer = observability.NewServer(cfg.MetricsAddr)
		obsErrChan, startErr := obsServer.Start()
		if startErr != nil {
			return fmt.Errorf("failed to start observability server: %w", startErr)
		}
		go monitorServerErrors(ctx, cancel, obsErrChan, "observability")
	}

	slog.Info("console app ready", "hasher", cfg.Hasher, "metrics_addr", cfg.MetricsAddr)

	loop, err := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), dispatcher, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to create console loop: %w", err)
	}

	runErr := loop.Run(ctx)

	if obsServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if stopErr := obsServer.Stop(shutdownCtx); stopErr != nil {
			slog.Warn("error stopping observability server", "error", stopErr)
		}
	}

	slog.Info("shutdown complete")
	return runErr
}

// hasherFor maps the configured algorithm name to a hasher.
func hasherFor(name string) (auth.PasswordHasher, error) {
	switch name {
	case config.HasherSHA256:
		return auth.NewSHA256Hasher(), nil
	case config.HasherArgon2id:
		return auth.NewArgon2idHasher(), nil
	default:
		return nil, fmt.Errorf("unknown hasher %q", name)
	}
}

// monitorServerErrors monitors a server's error channel and cancels the
// context on error so a failing sidecar server stops the whole process.
// It exits when an error is received, the channel closes, or the context
// is cancelled.
func monitorServerErrors(ctx context.Context, cancel context.CancelFunc, errCh <-chan error, serverName string) {
	select {
	case err, ok := <-errCh:
		if !ok {
			// Channel closed, server stopped gracefully
			return
		}
		if err != nil {
			slog.Error("server error, triggering shutdown",
				"server", serverName,
				"error", err,
			)
			cancel()
		}
	case <-ctx.Done():
		// Context cancelled, exit monitoring
	}
}
