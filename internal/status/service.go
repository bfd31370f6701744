package status

import (
	"context"
	"fmt"

	"github.com/rick-stevens-ai/Sophia-tools/internal/alcf"
	"github.com/rick-stevens-ai/Sophia-tools/internal/console"
	"github.com/rick-stevens-ai/Sophia-tools/pkg/models"
)

// Service runs the full status poll: catalog candidates, job
// classification, reconciliation. Everything is built fresh per call;
// nothing is retained between polls.
type Service struct {
	client alcf.Client
	host   string
	diag   *console.Logger
}

// NewService creates a Service. host is the gateway base used when
// building chat URLs.
func NewService(client alcf.Client, host string, diag *console.Logger) *Service {
	return &Service{client: client, host: host, diag: diag}
}

// AvailableModels probes each catalog candidate in declared order. Every
// fetch is best-effort: a failing candidate is logged and contributes zero
// records. Results are concatenated and deduplicated first-seen-wins.
func (s *Service) AvailableModels(ctx context.Context) []models.ModelRecord {
	var all []models.ModelRecord
	for _, suffix := range alcf.CatalogCandidates {
		s.diag.Progressf("Checking models endpoint: %s", suffix)

		body, err := s.client.CatalogCandidate(ctx, suffix)
		if err != nil {
			s.diag.Warningf("Failed to fetch models from %s: %v", suffix, err)
			continue
		}

		records := NormalizeCatalog(s.host, body)
		if len(records) == 0 {
			s.diag.Warningf("No models found in response from %s", suffix)
			continue
		}
		s.diag.Successf("Found %d models from %s", len(records), suffix)
		all = append(all, records...)
	}
	return DedupeModels(all)
}

// Classify fetches the jobs queue and buckets model names. Unlike the
// catalog candidates, the jobs fetch is required: its failure aborts the
// poll.
func (s *Service) Classify(ctx context.Context) (models.Buckets, error) {
	s.diag.Progressf("Fetching current jobs status...")
	body, err := s.client.Jobs(ctx)
	if err != nil {
		return models.Buckets{}, fmt.Errorf("fetching jobs: %w", err)
	}
	return ClassifyJobs(body, s.diag), nil
}

// Report runs one complete poll and reconciliation. The raw buckets are
// returned alongside the report so callers can see classified models that
// never made it into the catalog.
func (s *Service) Report(ctx context.Context) (models.StatusReport, models.Buckets, error) {
	s.diag.Infof("Fetching available models...")
	catalog := s.AvailableModels(ctx)
	s.diag.Successf("Found %d total available models", len(catalog))

	buckets, err := s.Classify(ctx)
	if err != nil {
		return models.StatusReport{}, models.Buckets{}, err
	}

	return Reconcile(catalog, buckets), buckets, nil
}
