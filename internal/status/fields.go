// Package status contains the normalization and reconciliation core: it
// turns the gateway's loosely-structured catalog and jobs responses into
// one canonical per-model status view.
package status

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is one loosely-structured JSON object from the gateway. Keys are
// optional and the schema evolves independently of this tool.
type Record map[string]any

// An extractor tries to pull one field out of a record. Extractors are
// pure; they are composed with first-match-wins semantics.
type extractor func(Record) (string, bool)

func keyExtractor(key string) extractor {
	return func(r Record) (string, bool) {
		s := asString(r[key])
		return s, s != ""
	}
}

// Key priority is fixed; new schema revisions get their keys appended, not
// reordered.
var (
	nameExtractors = []extractor{
		keyExtractor("model"),
		keyExtractor("name"),
		keyExtractor("endpoint"),
		keyExtractor("id"),
	}
	statusExtractors = []extractor{
		keyExtractor("status"),
		keyExtractor("state"),
		keyExtractor("endpoint_status"),
		keyExtractor("lifecycle"),
	}
)

func firstMatch(r Record, rules []extractor) string {
	for _, rule := range rules {
		if v, ok := rule(r); ok {
			return v
		}
	}
	return ""
}

// GuessFields extracts a canonical (name, status) pair from an arbitrary
// record. A record that yields no name is not an error; ok is false and the
// caller decides whether to mention it.
//
// When the direct name keys miss and the record carries the job shape
// (Models/Framework/Cluster), the name is synthesized: a single model
// verbatim, a multi-model list summarized as "first (+n others)", or
// "Framework on Cluster" as a last resort. A job carrying an
// "Estimated Start Time" is never reported as fully live: its status is
// forced to Starting.
func GuessFields(r Record) (name, status string, ok bool) {
	name = firstMatch(r, nameExtractors)
	status = firstMatch(r, statusExtractors)

	if name == "" {
		if rawModels, present := r["Models"]; present {
			name = jobShapeName(r, rawModels)

			if status == "" {
				status = asString(r["Model Status"])
				if status == "" {
					status = asString(r["Job State"])
				}
				if _, scheduled := r["Estimated Start Time"]; scheduled {
					status = "Starting"
				}
			}
		}
	}

	return name, strings.TrimSpace(status), name != ""
}

func jobShapeName(r Record, rawModels any) string {
	switch v := rawModels.(type) {
	case []any:
		if len(v) > 0 {
			first := asString(v[0])
			if first != "" {
				if len(v) == 1 {
					return first
				}
				return fmt.Sprintf("%s (+%d others)", first, len(v)-1)
			}
		}
	case string:
		return v
	}

	framework := asString(r["Framework"])
	cluster := asString(r["Cluster"])
	if framework != "" && cluster != "" {
		return framework + " on " + cluster
	}
	return ""
}

// asString coerces loose JSON scalars to a string. Whole numbers render
// without a decimal point; anything else non-string yields "".
func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}
