package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rick-stevens-ai/Sophia-tools/internal/api"
	"github.com/rick-stevens-ai/Sophia-tools/internal/api/handler"
	"github.com/rick-stevens-ai/Sophia-tools/internal/cache"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the reconciled status view over HTTP",
		Long:  "Exposes the same reconciled view the status command prints as JSON, with an optional short-TTL Redis snapshot cache in front of the gateway.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}))
			slog.SetDefault(logger)

			tk, err := newToolkit(false)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var snapshots cache.Cache
			if tk.cfg.Redis.URL != "" {
				rc, err := cache.NewRedisCache(tk.cfg.Redis.URL)
				if err != nil {
					return fmt.Errorf("create redis cache: %w", err)
				}
				defer rc.Close()

				if err := rc.Ping(ctx); err != nil {
					return fmt.Errorf("ping redis: %w", err)
				}
				slog.Info("redis connected", "ttl", tk.cfg.Redis.CacheTTL)
				snapshots = rc
			}

			h := handler.NewStatus(tk.status, snapshots, tk.cfg.Redis.CacheTTL, tk.cfg.API.Host)
			router := api.NewRouter(api.Dependencies{
				StatusHandler: h.Report,
				ModelsHandler: h.Models,
				HealthHandler: h.Health,
			})

			addr := fmt.Sprintf(":%d", tk.cfg.Server.Port)
			srv := &http.Server{
				Addr:         addr,
				Handler:      router,
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 2 * tk.cfg.API.Timeout,
				IdleTimeout:  60 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				slog.Info("server listening", "addr", addr, "gateway", tk.cfg.API.Host)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return fmt.Errorf("server error: %w", err)
			case <-ctx.Done():
				slog.Info("shutdown signal received, draining connections...")
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("server shutdown: %w", err)
			}

			slog.Info("server stopped gracefully")
			return nil
		},
	}
}
