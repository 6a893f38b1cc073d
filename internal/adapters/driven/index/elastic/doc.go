// Package elastic implements driven.SearchIndex against an
// Elasticsearch-compatible REST endpoint.
//
// Documents are submitted through the bulk API as NDJSON with explicit ids,
// so re-submitting a document replaces it. Requests are throttled with a
// token bucket and transient failures (transport errors, 429, 5xx) can be
// retried with exponential backoff.
package elastic
