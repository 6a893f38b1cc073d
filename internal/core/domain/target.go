package domain

import "sort"

// IndexTarget identifies a CSV ingestion target.
type IndexTarget string

// Available CSV ingestion targets.
const (
	TargetNetflixTitles IndexTarget = "netflix_titles"
	TargetImageData     IndexTarget = "image_data"
	TargetResumes       IndexTarget = "resumes"
	TargetAsosProducts  IndexTarget = "asos_products"
)

// DefaultIndexTarget is ingested when no target is named.
const DefaultIndexTarget = TargetNetflixTitles

// AllIndexTargets returns every target in a stable order.
func AllIndexTargets() []IndexTarget {
	targets := []IndexTarget{TargetNetflixTitles, TargetImageData, TargetResumes, TargetAsosProducts}
	sort.Slice(targets, func(i, j int) bool { return targets[i] < targets[j] })
	return targets
}

// IsValid returns true if the target is recognised.
func (t IndexTarget) IsValid() bool {
	switch t {
	case TargetNetflixTitles, TargetImageData, TargetResumes, TargetAsosProducts:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t IndexTarget) String() string {
	return string(t)
}

// IndexBackend identifies the search index implementation.
type IndexBackend string

// Available index backends.
const (
	// BackendHTTP talks to an Elasticsearch-compatible REST endpoint.
	BackendHTTP IndexBackend = "http"

	// BackendSQLite stores documents in a local SQLite database.
	BackendSQLite IndexBackend = "sqlite"

	// BackendMemory keeps documents in process memory (dry runs).
	BackendMemory IndexBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b IndexBackend) IsValid() bool {
	switch b {
	case BackendHTTP, BackendSQLite, BackendMemory:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b IndexBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b IndexBackend) Description() string {
	switch b {
	case BackendHTTP:
		return "HTTP (Elasticsearch-compatible bulk API)"
	case BackendSQLite:
		return "SQLite (local file)"
	case BackendMemory:
		return "Memory (discarded on exit)"
	default:
		return "Unknown"
	}
}
