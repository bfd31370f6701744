package models

import (
	"sort"
	"time"
)

// ModelStatus is one of the four displayed lifecycle states a configured
// model can be reported in.
type ModelStatus string

const (
	StatusActive   ModelStatus = "Active"
	StatusStarting ModelStatus = "Starting"
	StatusQueued   ModelStatus = "Queued"
	StatusStopped  ModelStatus = "Stopped"
)

// Buckets holds the three classification sets produced from the jobs API.
// A name may appear in more than one bucket when different job records
// report it under different statuses; reconciliation resolves that by
// precedence, not the classifier.
type Buckets struct {
	Active   map[string]bool
	Starting map[string]bool
	Queued   map[string]bool
}

// NewBuckets returns Buckets with all three sets allocated.
func NewBuckets() Buckets {
	return Buckets{
		Active:   make(map[string]bool),
		Starting: make(map[string]bool),
		Queued:   make(map[string]bool),
	}
}

// SortedActive returns the active set as a sorted slice.
func (b Buckets) SortedActive() []string { return sortedKeys(b.Active) }

// SortedStarting returns the starting set as a sorted slice.
func (b Buckets) SortedStarting() []string { return sortedKeys(b.Starting) }

// SortedQueued returns the queued set as a sorted slice.
func (b Buckets) SortedQueued() []string { return sortedKeys(b.Queued) }

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ModelEntry pairs a catalog record with its resolved display status.
type ModelEntry struct {
	ModelRecord
	Status ModelStatus `json:"status"`
}

// StatusReport is the reconciled view of every configured model plus
// summary counts, built fresh per poll.
type StatusReport struct {
	Models     []ModelEntry `json:"models"` // sorted by name
	Configured int          `json:"configured"`

	// TotalActive sums the sizes of the three deduplicated buckets.
	// A name reported under two statuses counts once per bucket, so this
	// can exceed the true union size.
	TotalActive int `json:"total_active"`

	RunningCount  int `json:"running"`
	StartingCount int `json:"starting"`
	QueuedCount   int `json:"queued"`

	GeneratedAt time.Time `json:"generated_at"`
}
