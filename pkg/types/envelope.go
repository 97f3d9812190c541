package types

import (
	"errors"
	"time"
)

// Envelope statuses. Every handler resolves to an envelope carrying one of
// these status values.
// Implements: prd001-envelope-core R1.
const (
	StatusOK = "ok"
)

// Envelope is the uniform response shape produced by every handler: a status
// marker, an epoch-millisecond timestamp, and the caller's payload echoed
// back unchanged.
// Implements: prd001-envelope-core R1.
type Envelope struct {
	Status    string `json:"status"`    // Status marker ("ok" on success).
	Timestamp int64  `json:"timestamp"` // Epoch milliseconds at construction.
	Data      any    `json:"data"`      // Caller payload, echoed unchanged.
}

// Envelope validation errors (prd001-envelope-core R1.3).
var (
	ErrStatusEmpty      = errors.New("status must not be empty")
	ErrTimestampInvalid = errors.New("timestamp must be positive")
)

// NewEnvelope wraps data in an Envelope with StatusOK and the current time
// in epoch milliseconds.
// Implements: prd001-envelope-core R1.1.
func NewEnvelope(data any) Envelope {
	return Envelope{
		Status:    StatusOK,
		Timestamp: time.Now().UnixMilli(),
		Data:      data,
	}
}

// Validate checks that the envelope is well-formed. It returns a sentinel
// error from this package on failure (prd001-envelope-core R1.3).
func (e Envelope) Validate() error {
	if e.Status == "" {
		return ErrStatusEmpty
	}
	if e.Timestamp <= 0 {
		return ErrTimestampInvalid
	}
	return nil
}

// OK reports whether the envelope carries the success status.
func (e Envelope) OK() bool {
	return e.Status == StatusOK
}
