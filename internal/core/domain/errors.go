package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown index target or backend.
	ErrUnsupportedType = errors.New("unsupported type")

	// Ingestion Errors.

	// ErrMissingSource indicates the docs directory or CSV file does not exist.
	// The run aborts with a failure status.
	ErrMissingSource = errors.New("source not found")

	// ErrNoSources indicates the source directory holds no Markdown pages.
	ErrNoSources = errors.New("no source files")

	// ErrParse indicates the frontmatter block is not valid YAML.
	// Reference behaviour aborts the whole run on the first bad file.
	ErrParse = errors.New("parse error")

	// ErrNoContent indicates a page rendered to no element nodes.
	// Callers treat it as a per-file skip, not a failure.
	ErrNoContent = errors.New("no content")

	// Index Errors.

	// ErrBulkRejected indicates the index accepted the request but
	// rejected one or more documents in it.
	ErrBulkRejected = errors.New("bulk upsert rejected")

	// ErrIndexUnavailable indicates the index backend could not be reached.
	ErrIndexUnavailable = errors.New("search index unavailable")
)
