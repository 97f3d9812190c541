// Package journal implements the SQLite-backed invocation journal.
// Implements: prd002-journal-backend (R3 SQLite schema);
//
//	docs/ARCHITECTURE § Journal Backend.
package journal

// Schema DDL for the invocations table (prd002-journal-backend R3.1).
const createInvocations = `CREATE TABLE invocations (
    invocation_id TEXT PRIMARY KEY,
    handler TEXT NOT NULL,
    status TEXT NOT NULL,
    timestamp INTEGER NOT NULL,
    data TEXT,
    created_at TEXT NOT NULL
);`
