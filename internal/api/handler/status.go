// Package handler contains the serve-mode HTTP handlers.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/rick-stevens-ai/Sophia-tools/internal/api/response"
	"github.com/rick-stevens-ai/Sophia-tools/internal/cache"
	"github.com/rick-stevens-ai/Sophia-tools/pkg/models"
)

// Poller runs one status poll against the gateway. *status.Service
// satisfies it.
type Poller interface {
	Report(ctx context.Context) (models.StatusReport, models.Buckets, error)
	AvailableModels(ctx context.Context) []models.ModelRecord
}

// Status serves the reconciled view, optionally through a short-TTL
// snapshot cache. A nil cache disables caching entirely.
type Status struct {
	poller Poller
	cache  cache.Cache
	ttl    time.Duration
	host   string
}

// NewStatus creates the status handler set.
func NewStatus(poller Poller, c cache.Cache, ttl time.Duration, host string) *Status {
	return &Status{poller: poller, cache: c, ttl: ttl, host: host}
}

type jobBuckets struct {
	Active   []string `json:"active"`
	Starting []string `json:"starting"`
	Queued   []string `json:"queued"`
}

type statusPayload struct {
	Report models.StatusReport `json:"report"`
	// Buckets carries the raw classification sets so models classified from
	// jobs but absent from the catalog stay visible.
	Buckets jobBuckets `json:"buckets"`
}

// Report handles GET /api/v1/status.
func (h *Status) Report(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.cache != nil {
		if cached, found, err := h.cache.Get(ctx, cache.ReportKey(h.host)); err == nil && found {
			response.Raw(w, cached)
			return
		}
	}

	report, buckets, err := h.poller.Report(ctx)
	if err != nil {
		response.Error(w, http.StatusBadGateway, "UPSTREAM_ERROR", "status poll failed", err.Error())
		return
	}

	payload := statusPayload{
		Report: report,
		Buckets: jobBuckets{
			Active:   buckets.SortedActive(),
			Starting: buckets.SortedStarting(),
			Queued:   buckets.SortedQueued(),
		},
	}

	if h.cache != nil {
		if data, err := json.Marshal(payload); err == nil {
			if err := h.cache.Set(ctx, cache.ReportKey(h.host), data, h.ttl); err != nil {
				slog.Warn("snapshot cache write failed", "error", err)
			}
		}
	}

	response.JSON(w, payload)
}

// Models handles GET /api/v1/models: the deduplicated catalog only, no job
// classification. An empty catalog is a valid 200 response.
func (h *Status) Models(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.cache != nil {
		if cached, found, err := h.cache.Get(ctx, cache.CatalogKey(h.host)); err == nil && found {
			response.Raw(w, cached)
			return
		}
	}

	catalog := h.poller.AvailableModels(ctx)
	if catalog == nil {
		catalog = []models.ModelRecord{}
	}

	if h.cache != nil {
		if data, err := json.Marshal(catalog); err == nil {
			if err := h.cache.Set(ctx, cache.CatalogKey(h.host), data, h.ttl); err != nil {
				slog.Warn("snapshot cache write failed", "error", err)
			}
		}
	}

	response.JSON(w, catalog)
}

// Health handles GET /api/v1/health.
func (h *Status) Health(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{}
	if h.cache != nil {
		checks["cache"] = "ok"
		if err := h.cache.Ping(r.Context()); err != nil {
			checks["cache"] = "degraded"
		}
	}

	if checks["cache"] == "degraded" {
		response.Error(w, http.StatusServiceUnavailable, "DEGRADED",
			"Snapshot cache unreachable", checks)
		return
	}

	response.JSON(w, map[string]any{
		"status":   "ok",
		"services": checks,
	})
}
