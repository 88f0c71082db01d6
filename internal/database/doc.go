// Package database provides SQLite-based storage for audit history.
//
// HistoryDB keeps one row per audit run with the aggregate numbers needed
// for listing and comparison, plus the full AuditSummary as JSON. Passwords
// are never stored: a summary only carries counts, averages and the digest
// of the audited list.
//
// The database is a single file opened through modernc.org/sqlite, so the
// binary stays CGO-free.
package database
