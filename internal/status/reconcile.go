package status

import (
	"sort"
	"time"

	"github.com/rick-stevens-ai/Sophia-tools/pkg/models"
)

// Reconcile merges the deduplicated catalog with the classification buckets
// into the final per-model view. Precedence is fixed: a name found in the
// active bucket is Active even when it also sits in starting or queued;
// starting beats queued; a catalog model in no bucket is Stopped.
func Reconcile(catalog []models.ModelRecord, buckets models.Buckets) models.StatusReport {
	entries := make([]models.ModelEntry, 0, len(catalog))
	for _, rec := range catalog {
		entries = append(entries, models.ModelEntry{
			ModelRecord: rec,
			Status:      resolve(rec.Name, buckets),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	return models.StatusReport{
		Models:     entries,
		Configured: len(catalog),

		// Summing per-bucket sizes, not the union: a name reported under two
		// statuses counts once per bucket. Downstream tooling depends on this
		// accounting.
		TotalActive: len(buckets.Active) + len(buckets.Starting) + len(buckets.Queued),

		RunningCount:  len(buckets.Active),
		StartingCount: len(buckets.Starting),
		QueuedCount:   len(buckets.Queued),

		GeneratedAt: time.Now().UTC(),
	}
}

func resolve(name string, buckets models.Buckets) models.ModelStatus {
	switch {
	case buckets.Active[name]:
		return models.StatusActive
	case buckets.Starting[name]:
		return models.StatusStarting
	case buckets.Queued[name]:
		return models.StatusQueued
	default:
		return models.StatusStopped
	}
}
