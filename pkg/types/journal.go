package types

import "errors"

// Journal defines the interface for persistent invocation recording.
// Callers attach to a backend, record and query invocations, and detach
// when done.
// Implements: prd002-journal-backend R2.
type Journal interface {
	// Record persists one handler invocation and returns the generated
	// invocation ID. Returns ErrJournalDetached if not attached.
	Record(handler string, env Envelope) (string, error)

	// Get retrieves the invocation with the given ID.
	// Returns ErrNotFound if no invocation exists with that ID.
	Get(id string) (*Invocation, error)

	// List returns invocations ordered newest first. A limit of zero or
	// less returns every invocation.
	List(limit int) ([]*Invocation, error)

	// Attach connects the Journal to the backend described by config.
	// Creates the DataDir if it does not exist. Idempotent on first call;
	// returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, operations return ErrJournalDetached.
	Detach() error
}

// Journal lifecycle errors (prd002-journal-backend R2.3).
var (
	ErrJournalDetached = errors.New("journal is detached")
	ErrAlreadyAttached = errors.New("journal is already attached")
)

// Journal operation errors (prd002-journal-backend R2.4).
var (
	ErrNotFound  = errors.New("invocation not found")
	ErrInvalidID = errors.New("invalid invocation ID")
)
