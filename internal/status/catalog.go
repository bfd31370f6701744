package status

import (
	"sort"
	"strings"

	"github.com/rick-stevens-ai/Sophia-tools/pkg/models"
)

// NormalizeCatalog converts one "list models" response body into a flat
// list of ModelRecords. The top-level shape is dispatched in fixed priority
// order — clusters, endpoints list, data list, bare list — and the first
// matching shape wins for that body. An unmatched shape yields zero
// records, never an error.
func NormalizeCatalog(host string, body any) []models.ModelRecord {
	if m, ok := body.(map[string]any); ok {
		if clusters, present := m["clusters"]; present {
			return normalizeClusters(host, clusters)
		}
		if endpoints, ok := m["endpoints"].([]any); ok {
			return normalizeFlatList(endpoints, "model", "name", models.SourceEndpoints)
		}
		if data, ok := m["data"].([]any); ok {
			return normalizeFlatList(data, "id", "name", models.SourceData)
		}
		return nil
	}

	if list, ok := body.([]any); ok {
		return normalizeDirectList(list)
	}

	return nil
}

// normalizeClusters walks clusters → frameworks → models. The chat URL is
// the API host + cluster base_url + framework chat endpoint with any
// trailing slash stripped; frameworks without a chat endpoint get none.
func normalizeClusters(host string, clusters any) []models.ModelRecord {
	clusterMap, ok := clusters.(map[string]any)
	if !ok {
		return nil
	}

	var records []models.ModelRecord
	for _, clusterName := range sortedMapKeys(clusterMap) {
		clusterInfo, ok := clusterMap[clusterName].(map[string]any)
		if !ok {
			continue
		}
		frameworks, ok := clusterInfo["frameworks"].(map[string]any)
		if !ok {
			continue
		}
		baseURL := asString(clusterInfo["base_url"])

		for _, frameworkName := range sortedMapKeys(frameworks) {
			frameworkInfo, ok := frameworks[frameworkName].(map[string]any)
			if !ok {
				continue
			}
			modelList, ok := frameworkInfo["models"].([]any)
			if !ok {
				continue
			}

			var chatURL string
			if endpoints, ok := frameworkInfo["endpoints"].(map[string]any); ok {
				if chat := asString(endpoints["chat"]); chat != "" {
					chatURL = strings.TrimRight(host+baseURL+chat, "/")
				}
			}

			for _, model := range modelList {
				name := asString(model)
				if name == "" {
					continue
				}
				records = append(records, models.ModelRecord{
					Name:      name,
					Cluster:   clusterName,
					Framework: frameworkName,
					ChatURL:   chatURL,
					Source:    models.SourceClusters,
				})
			}
		}
	}
	return records
}

// normalizeFlatList handles the endpoints/data shapes: each dict item
// contributes one record named by primaryKey, falling back to fallbackKey
// and then "Unknown".
func normalizeFlatList(items []any, primaryKey, fallbackKey string, source models.CatalogSource) []models.ModelRecord {
	var records []models.ModelRecord
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name := asString(entry[primaryKey])
		if name == "" {
			name = asString(entry[fallbackKey])
		}
		if name == "" {
			name = "Unknown"
		}
		records = append(records, models.ModelRecord{
			Name:      name,
			Cluster:   "default",
			Framework: "default",
			Source:    source,
		})
	}
	return records
}

// normalizeDirectList handles a bare-list body: each dict item goes through
// the field guesser and only the name is used.
func normalizeDirectList(items []any) []models.ModelRecord {
	var records []models.ModelRecord
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name, _, ok := GuessFields(Record(entry))
		if !ok {
			continue
		}
		records = append(records, models.ModelRecord{
			Name:      name,
			Cluster:   "default",
			Framework: "default",
			Source:    models.SourceDirectList,
		})
	}
	return records
}

// DedupeModels collapses records by exact name. First seen wins: a later
// record for the same name never replaces the survivor's cluster,
// framework or chat URL. Input order is preserved.
func DedupeModels(records []models.ModelRecord) []models.ModelRecord {
	seen := make(map[string]bool, len(records))
	unique := make([]models.ModelRecord, 0, len(records))
	for _, rec := range records {
		if seen[rec.Name] {
			continue
		}
		seen[rec.Name] = true
		unique = append(unique, rec)
	}
	return unique
}

// sortedMapKeys keeps cluster/framework walk order stable across runs;
// only first-seen dedup order depends on it.
func sortedMapKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
