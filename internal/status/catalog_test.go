package status

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/rick-stevens-ai/Sophia-tools/pkg/models"
)

const testHost = "https://inference-api.alcf.anl.gov"

func decodeBody(t *testing.T, raw string) any {
	t.Helper()
	var body any
	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		t.Fatalf("bad test JSON: %v", err)
	}
	return body
}

func TestNormalizeCatalog_ClustersShape(t *testing.T) {
	body := decodeBody(t, `{
		"clusters": {
			"sophia": {
				"base_url": "/resource_server/sophia",
				"frameworks": {
					"vllm": {
						"endpoints": {"chat": "/vllm/v1/chat/completions/"},
						"models": ["llama-8b", "qwen-72b"]
					}
				}
			}
		}
	}`)

	records := NormalizeCatalog(testHost, body)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	want := models.ModelRecord{
		Name:      "llama-8b",
		Cluster:   "sophia",
		Framework: "vllm",
		ChatURL:   "https://inference-api.alcf.anl.gov/resource_server/sophia/vllm/v1/chat/completions",
		Source:    models.SourceClusters,
	}
	if records[0] != want {
		t.Errorf("unexpected first record:\nexpected: %+v\ngot:      %+v", want, records[0])
	}
	if records[1].Name != "qwen-72b" {
		t.Errorf("unexpected second record name: %s", records[1].Name)
	}
}

func TestNormalizeCatalog_ClustersWithoutChatEndpoint(t *testing.T) {
	body := decodeBody(t, `{
		"clusters": {
			"sophia": {
				"base_url": "/resource_server/sophia",
				"frameworks": {
					"embed": {
						"endpoints": {"embeddings": "/v1/embeddings"},
						"models": ["bge-large"]
					}
				}
			}
		}
	}`)

	records := NormalizeCatalog(testHost, body)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].ChatURL != "" {
		t.Errorf("expected no chat URL, got %q", records[0].ChatURL)
	}
}

func TestNormalizeCatalog_EndpointsShape(t *testing.T) {
	body := decodeBody(t, `{
		"endpoints": [
			{"model": "llama-8b"},
			{"name": "qwen-72b"},
			{"other": true},
			"not a dict"
		]
	}`)

	records := NormalizeCatalog(testHost, body)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	names := []string{records[0].Name, records[1].Name, records[2].Name}
	wantNames := []string{"llama-8b", "qwen-72b", "Unknown"}
	if !reflect.DeepEqual(names, wantNames) {
		t.Errorf("expected names %v, got %v", wantNames, names)
	}
	for _, rec := range records {
		if rec.Cluster != "default" || rec.Framework != "default" {
			t.Errorf("expected default cluster/framework, got %+v", rec)
		}
		if rec.Source != models.SourceEndpoints {
			t.Errorf("expected endpoints source, got %s", rec.Source)
		}
	}
}

func TestNormalizeCatalog_DataShape(t *testing.T) {
	body := decodeBody(t, `{"data": [{"id": "llama-8b"}, {"name": "qwen-72b"}]}`)

	records := NormalizeCatalog(testHost, body)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Name != "llama-8b" || records[1].Name != "qwen-72b" {
		t.Errorf("unexpected names: %s, %s", records[0].Name, records[1].Name)
	}
	if records[0].Source != models.SourceData {
		t.Errorf("expected data source, got %s", records[0].Source)
	}
}

func TestNormalizeCatalog_ClustersWinsOverEndpoints(t *testing.T) {
	// Shapes are not combined within one body: clusters takes priority.
	body := decodeBody(t, `{
		"clusters": {
			"sophia": {
				"frameworks": {
					"vllm": {"models": ["from-clusters"]}
				}
			}
		},
		"endpoints": [{"model": "from-endpoints"}]
	}`)

	records := NormalizeCatalog(testHost, body)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Name != "from-clusters" {
		t.Errorf("expected clusters shape to win, got %s", records[0].Name)
	}
}

func TestNormalizeCatalog_DirectList(t *testing.T) {
	body := decodeBody(t, `[
		{"model": "llama-8b", "status": "ignored here"},
		{"nothing": "useful"}
	]`)

	records := NormalizeCatalog(testHost, body)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Name != "llama-8b" {
		t.Errorf("unexpected name: %s", records[0].Name)
	}
	if records[0].Source != models.SourceDirectList {
		t.Errorf("expected direct_list source, got %s", records[0].Source)
	}
}

func TestNormalizeCatalog_UnknownShape(t *testing.T) {
	for _, raw := range []string{`{"foo": 1}`, `"just a string"`, `42`, `null`} {
		records := NormalizeCatalog(testHost, decodeBody(t, raw))
		if len(records) != 0 {
			t.Errorf("expected no records for body %s, got %d", raw, len(records))
		}
	}
}

func TestNormalizeCatalog_Idempotent(t *testing.T) {
	body := decodeBody(t, `{
		"clusters": {
			"sophia": {
				"base_url": "/resource_server/sophia",
				"frameworks": {
					"vllm": {
						"endpoints": {"chat": "/v1/chat"},
						"models": ["m1", "m2"]
					}
				}
			}
		}
	}`)

	first := NormalizeCatalog(testHost, body)
	second := NormalizeCatalog(testHost, body)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("normalization is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestDedupeModels_FirstSeenWins(t *testing.T) {
	records := []models.ModelRecord{
		{Name: "m1", Cluster: "sophia", Source: models.SourceClusters},
		{Name: "m2", Cluster: "sophia", Source: models.SourceClusters},
		{Name: "m1", Cluster: "polaris", Source: models.SourceData},
	}

	unique := DedupeModels(records)
	if len(unique) != 2 {
		t.Fatalf("expected 2 unique records, got %d", len(unique))
	}
	if unique[0].Cluster != "sophia" {
		t.Errorf("first-seen cluster should survive, got %s", unique[0].Cluster)
	}
}

func TestDedupeModels_CaseSensitiveNames(t *testing.T) {
	records := []models.ModelRecord{
		{Name: "Llama"},
		{Name: "llama"},
	}
	if got := len(DedupeModels(records)); got != 2 {
		t.Errorf("names differing only by case are distinct, expected 2, got %d", got)
	}
}
