// Package auth acquires the bearer token for the inference gateway.
package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rick-stevens-ai/Sophia-tools/internal/console"
)

// ErrNoToken indicates no provider in the chain could produce a token.
// Callers treat this as a fatal startup condition.
var ErrNoToken = errors.New("no access token available")

// Provider yields a bearer token from one source.
type Provider interface {
	Token() (string, error)
	Name() string
}

// FileProvider reads a token from the file dropped by the external
// authentication helper. The whole file is the token, surrounding
// whitespace ignored.
type FileProvider struct {
	Path string
}

func (p FileProvider) Name() string { return "token file " + p.Path }

func (p FileProvider) Token() (string, error) {
	if p.Path == "" {
		return "", fmt.Errorf("token file path not configured: %w", ErrNoToken)
	}
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return "", fmt.Errorf("reading token file: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("token file %s is empty: %w", p.Path, ErrNoToken)
	}
	return token, nil
}

// EnvProvider reads a token from an environment variable.
type EnvProvider struct {
	Key string
}

func (p EnvProvider) Name() string { return "environment variable " + p.Key }

func (p EnvProvider) Token() (string, error) {
	token := strings.TrimSpace(os.Getenv(p.Key))
	if token == "" {
		return "", fmt.Errorf("%s is not set: %w", p.Key, ErrNoToken)
	}
	return token, nil
}

// Chain tries each provider in order and returns the first token found.
type Chain struct {
	providers []Provider
	diag      *console.Logger
}

// NewChain builds a Chain narrating attempts through diag.
func NewChain(diag *console.Logger, providers ...Provider) *Chain {
	return &Chain{providers: providers, diag: diag}
}

func (c *Chain) Name() string { return "provider chain" }

// Token returns the first token any provider yields, or ErrNoToken once
// every provider has been exhausted.
func (c *Chain) Token() (string, error) {
	for _, p := range c.providers {
		c.diag.Progressf("Getting access token from %s...", p.Name())
		token, err := p.Token()
		if err != nil {
			c.diag.Warningf("Failed to get token from %s: %v", p.Name(), err)
			continue
		}
		c.diag.Successf("Access token obtained from %s", p.Name())
		return token, nil
	}
	return "", ErrNoToken
}

var (
	_ Provider = FileProvider{}
	_ Provider = EnvProvider{}
	_ Provider = (*Chain)(nil)
)
