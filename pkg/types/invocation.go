package types

import "time"

// Invocation records one handler invocation in the journal: which handler
// ran, the envelope it resolved to, and when the record was written.
// JSON keys match the invocations.jsonl record format.
// Implements: prd002-journal-backend R1.
type Invocation struct {
	InvocationID string    `json:"invocation_id"` // UUID v7, generated on record.
	Handler      string    `json:"handler"`       // Registered handler name.
	Status       string    `json:"status"`        // Envelope status at invocation time.
	Timestamp    int64     `json:"timestamp"`     // Envelope timestamp (epoch milliseconds).
	Data         any       `json:"data"`          // Envelope payload.
	CreatedAt    time.Time `json:"created_at"`    // Timestamp the journal record was written.
}
