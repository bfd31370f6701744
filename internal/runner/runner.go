// Package runner sends prompts to model chat endpoints, one model or a
// sweep over everything currently active.
package runner

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rick-stevens-ai/Sophia-tools/internal/alcf"
	"github.com/rick-stevens-ai/Sophia-tools/internal/console"
	"github.com/rick-stevens-ai/Sophia-tools/internal/status"
)

// defaultChatPath is the gateway's vLLM chat route, used for models the
// catalog has no chat URL for.
const defaultChatPath = "/resource_server/sophia/vllm/v1/chat/completions"

// Options controls how sweep responses are reported.
type Options struct {
	// DisplayLength caps how many characters of each response are shown.
	DisplayLength int
	// Brief suppresses response bodies entirely.
	Brief bool
}

// Service sends chat prompts through the gateway.
type Service struct {
	client  alcf.Client
	status  *status.Service
	diag    *console.Logger
	host    string
	timeout time.Duration
}

// NewService creates a runner backed by the given gateway client and
// status service.
func NewService(client alcf.Client, st *status.Service, diag *console.Logger, host string, timeout time.Duration) *Service {
	return &Service{client: client, status: st, diag: diag, host: host, timeout: timeout}
}

// RunOne sends the prompt to a single model and writes the full response.
func (s *Service) RunOne(ctx context.Context, model, prompt string, out io.Writer) error {
	endpoint := s.chatEndpoints(ctx)[model]
	if endpoint == "" {
		endpoint = s.host + defaultChatPath
	}
	s.diag.Progressf("Sending prompt to %s via %s", model, endpoint)

	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	content, err := s.client.ChatCompletion(runCtx, endpoint, model, prompt)
	if err != nil {
		return fmt.Errorf("running %s: %w", model, err)
	}

	fmt.Fprintln(out, content)
	return nil
}

// RunAll sends the prompt to every currently-active model in turn.
// Per-model failures are reported inline and do not stop the sweep; only a
// failed jobs fetch aborts it.
func (s *Service) RunAll(ctx context.Context, prompt string, opts Options, out io.Writer) error {
	buckets, err := s.status.Classify(ctx)
	if err != nil {
		return err
	}

	active := buckets.SortedActive()
	if len(active) == 0 {
		fmt.Fprintln(out, "No models are currently active.")
		return nil
	}

	endpoints := s.chatEndpoints(ctx)

	for _, model := range active {
		endpoint := endpoints[model]
		if endpoint == "" {
			endpoint = s.host + defaultChatPath
		}

		start := time.Now()
		runCtx, cancel := context.WithTimeout(ctx, s.timeout)
		content, err := s.client.ChatCompletion(runCtx, endpoint, model, prompt)
		cancel()
		elapsed := time.Since(start).Seconds()

		switch {
		case err != nil:
			fmt.Fprintf(out, "%-60s  error after %.2fs: %v\n", model, elapsed, err)
		case opts.Brief:
			fmt.Fprintf(out, "%-60s  ok in %.2fs\n", model, elapsed)
		default:
			fmt.Fprintf(out, "%-60s  %.2fs  %s\n", model, elapsed, truncate(content, opts.DisplayLength))
		}
	}

	return nil
}

// chatEndpoints maps catalog model names to their chat URLs. Models
// without one are simply absent.
func (s *Service) chatEndpoints(ctx context.Context) map[string]string {
	endpoints := make(map[string]string)
	for _, rec := range s.status.AvailableModels(ctx) {
		if rec.ChatURL != "" {
			endpoints[rec.Name] = rec.ChatURL
		}
	}
	return endpoints
}

// truncate flattens newlines and cuts the text to max runes.
func truncate(text string, max int) string {
	flat := strings.Join(strings.Fields(text), " ")
	if max <= 0 {
		return flat
	}
	runes := []rune(flat)
	if len(runes) <= max {
		return flat
	}
	return string(runes[:max]) + "…"
}
