// Package sqlite provides a SQLite-backed implementation of driven.RecordStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. It lets processed records survive across CLI invocations,
// so reports processed by one `medreport process` run are included in the
// summary printed by a later `medreport summary`.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
// Findings, metadata and the pattern snapshot are stored as JSON columns.
//
// # Data Location
//
// By default, the database is stored at ~/.medreport/data/records.db
//
// # Thread Safety
//
// All operations are thread-safe. Reset and Replace run inside a single
// transaction, so readers never observe a partially cleared store.
package sqlite
