package status

import (
	"strings"

	"github.com/rick-stevens-ai/Sophia-tools/internal/console"
	"github.com/rick-stevens-ai/Sophia-tools/pkg/models"
)

// jobSections are merged, in this order, into one working list before
// classification. private-batch-queued is intentionally never processed:
// private queued work does not count toward visible model activity.
var jobSections = []string{"running", "queued", "others", "private-batch-running"}

// activeStatuses are the lowercase statuses that land a job in the active
// bucket.
var activeStatuses = map[string]bool{
	"live":    true,
	"running": true,
	"loaded":  true,
}

// ClassifyJobs walks the jobs response body and buckets model names into
// active, starting and queued sets. The body may be a mapping of named
// sections, a bare list, or a mapping with an "items" list; anything else
// classifies nothing. Records with no resolvable name are skipped with a
// diagnostic.
func ClassifyJobs(body any, diag *console.Logger) models.Buckets {
	buckets := models.NewBuckets()

	for _, record := range collectJobRecords(body, diag) {
		name, jobStatus, ok := GuessFields(record)
		if !ok {
			diag.Warningf("Could not determine name for job item with keys %v", recordKeys(record))
			continue
		}
		if name == "Unknown Job" {
			continue
		}

		var bucket map[string]bool
		switch strings.ToLower(jobStatus) {
		case "starting":
			bucket = buckets.Starting
		case "queued":
			bucket = buckets.Queued
		default:
			if !activeStatuses[strings.ToLower(jobStatus)] {
				// Unclassifiable status: the job contributes no visible model state.
				continue
			}
			bucket = buckets.Active
		}

		// One job, one bucket: every name split out of a comma-joined list
		// follows that job's status.
		for _, n := range splitModelNames(name) {
			bucket[n] = true
		}
	}

	return buckets
}

// collectJobRecords flattens the jobs body into dict records. The "items"
// list is only consulted when none of the named sections produced records.
func collectJobRecords(body any, diag *console.Logger) []Record {
	if list, ok := body.([]any); ok {
		return dictRecords(list)
	}

	m, ok := body.(map[string]any)
	if !ok {
		return nil
	}

	var records []Record
	for _, section := range jobSections {
		list, ok := m[section].([]any)
		if !ok {
			continue
		}
		diag.Infof("Processing %d jobs from %q section", len(list), section)
		records = append(records, dictRecords(list)...)
	}

	if skipped, ok := m["private-batch-queued"].([]any); ok && len(skipped) > 0 {
		diag.Infof("Found %d jobs in \"private-batch-queued\" section (not processed)", len(skipped))
	}

	if len(records) == 0 {
		if items, ok := m["items"].([]any); ok {
			diag.Infof("Falling back to %d jobs from \"items\" list", len(items))
			records = dictRecords(items)
		}
	}

	return records
}

func dictRecords(list []any) []Record {
	records := make([]Record, 0, len(list))
	for _, item := range list {
		if entry, ok := item.(map[string]any); ok {
			records = append(records, Record(entry))
		}
	}
	return records
}

// splitModelNames explodes a comma-joined name into trimmed pieces. Names
// without commas pass through untouched.
func splitModelNames(name string) []string {
	if !strings.Contains(name, ",") {
		return []string{name}
	}
	parts := strings.Split(name, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func recordKeys(r Record) []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
		if len(keys) == 3 {
			break
		}
	}
	return keys
}
