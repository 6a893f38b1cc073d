// Package sqlite provides a local SearchIndex backed by a single SQLite file.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. Each index is a row in the indices table; its documents
// live in the documents table keyed by (index_name, id) with their fields
// stored as JSON. Dropping an index cascades to its documents.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Applied versions are recorded in schema_migrations.
//
// # Data Location
//
// By default, the database is stored at ~/.docsindex/data/index.db
//
// # Thread Safety
//
// All operations are safe for concurrent use. The store relies on the
// database-level locking SQLite provides in WAL mode.
package sqlite
