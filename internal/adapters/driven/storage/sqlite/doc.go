// Package sqlite provides a SQLite-backed implementation of driven.TaskStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It keeps the same ordered task collection
// as the JSON document backend, one row per task keyed by its 1-based position.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
// Applied versions are recorded in schema_migrations.
//
// # Data Location
//
// By default, the database is stored at ~/.taskmgr/tasks.db
//
// # Consistency
//
// Save replaces every row inside a single transaction, so readers see either the
// previous collection or the new one.
package sqlite
