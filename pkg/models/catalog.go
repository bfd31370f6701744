// Package models contains shared data models used across the Sophia tools codebase.
package models

// CatalogSource identifies which response shape a ModelRecord was extracted from.
type CatalogSource string

const (
	SourceClusters   CatalogSource = "clusters"
	SourceEndpoints  CatalogSource = "endpoints"
	SourceData       CatalogSource = "data"
	SourceDirectList CatalogSource = "direct_list"
)

// ModelRecord is one configured model endpoint from the gateway catalog.
// Records are immutable after creation; identity is the exact Name string.
type ModelRecord struct {
	Name      string        `json:"name"`
	Cluster   string        `json:"cluster"`
	Framework string        `json:"framework"`
	ChatURL   string        `json:"chat_url,omitempty"` // empty when the framework exposes no chat endpoint
	Source    CatalogSource `json:"source"`
}
