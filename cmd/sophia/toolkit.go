package main

import (
	"fmt"
	"os"

	"github.com/rick-stevens-ai/Sophia-tools/internal/alcf"
	"github.com/rick-stevens-ai/Sophia-tools/internal/auth"
	"github.com/rick-stevens-ai/Sophia-tools/internal/config"
	"github.com/rick-stevens-ai/Sophia-tools/internal/console"
	"github.com/rick-stevens-ai/Sophia-tools/internal/status"
)

// toolkit bundles the pieces every subcommand needs: config, diagnostics,
// an authenticated gateway client and the status service on top of it.
type toolkit struct {
	cfg    *config.Config
	diag   *console.Logger
	client *alcf.HTTPClient
	status *status.Service
}

// newToolkit loads config and acquires a credential. A missing credential
// is the one fatal startup condition; the returned error carries
// auth.ErrNoToken in that case.
func newToolkit(verbose bool) (*toolkit, error) {
	diag := console.New(os.Stdout, os.Stderr, verbose)

	cfg, err := config.Load()
	if err != nil {
		diag.Criticalf("Invalid configuration: %v", err)
		return nil, err
	}

	diag.Infof("Initializing ALCF API client...")
	token, err := auth.NewChain(diag,
		auth.FileProvider{Path: cfg.Auth.TokenFile},
		auth.EnvProvider{Key: cfg.Auth.TokenEnv},
	).Token()
	if err != nil {
		diag.Criticalf("Set %s or drop a token at %s", cfg.Auth.TokenEnv, cfg.Auth.TokenFile)
		return nil, fmt.Errorf("acquiring access token: %w", err)
	}

	client := alcf.NewHTTPClient(cfg.API.Host, cfg.API.ResourcePath, token, cfg.API.Timeout)

	return &toolkit{
		cfg:    cfg,
		diag:   diag,
		client: client,
		status: status.NewService(client, cfg.API.Host, diag),
	}, nil
}
