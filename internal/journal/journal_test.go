package journal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/veneer/pkg/types"
)

// attachedJournal returns a journal attached to a fresh temp data dir.
func attachedJournal(t *testing.T) (*Journal, string) {
	t.Helper()
	dataDir := t.TempDir()
	j := NewJournal()
	require.NoError(t, j.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir}))
	t.Cleanup(func() { _ = j.Detach() })
	return j, dataDir
}

func TestAttachLifecycle(t *testing.T) {
	dataDir := t.TempDir()
	j := NewJournal()

	err := j.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir})
	require.NoError(t, err)

	// Second attach is rejected.
	err = j.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir})
	assert.ErrorIs(t, err, types.ErrAlreadyAttached)

	// Attach creates the database and JSONL files.
	assert.FileExists(t, filepath.Join(dataDir, "journal.db"))
	assert.FileExists(t, filepath.Join(dataDir, "invocations.jsonl"))

	// Detach is idempotent.
	assert.NoError(t, j.Detach())
	assert.NoError(t, j.Detach())
}

func TestAttachInvalidConfig(t *testing.T) {
	j := NewJournal()

	assert.ErrorIs(t, j.Attach(types.Config{}), types.ErrBackendEmpty)
	assert.ErrorIs(t, j.Attach(types.Config{Backend: "postgres"}), types.ErrBackendUnknown)
}

func TestAttachCreatesDataDir(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "nested", "journal")
	j := NewJournal()

	require.NoError(t, j.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir}))
	defer j.Detach()

	assert.DirExists(t, dataDir)
}

func TestDetachedOperations(t *testing.T) {
	j := NewJournal()

	_, err := j.Record("echo", types.NewEnvelope(nil))
	assert.ErrorIs(t, err, types.ErrJournalDetached)

	_, err = j.Get("some-id")
	assert.ErrorIs(t, err, types.ErrJournalDetached)

	_, err = j.List(0)
	assert.ErrorIs(t, err, types.ErrJournalDetached)
}

func TestRecordAndGet(t *testing.T) {
	j, _ := attachedJournal(t)

	env := types.NewEnvelope(map[string]any{"key": "value"})
	id, err := j.Record("echo", env)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	inv, err := j.Get(id)
	require.NoError(t, err)
	assert.Equal(t, id, inv.InvocationID)
	assert.Equal(t, "echo", inv.Handler)
	assert.Equal(t, types.StatusOK, inv.Status)
	assert.Equal(t, env.Timestamp, inv.Timestamp)
	assert.Equal(t, map[string]any{"key": "value"}, inv.Data)
	assert.WithinDuration(t, time.Now(), inv.CreatedAt, time.Minute)
}

func TestRecordInvalidEnvelope(t *testing.T) {
	j, _ := attachedJournal(t)

	_, err := j.Record("echo", types.Envelope{})
	assert.ErrorIs(t, err, types.ErrStatusEmpty)
}

func TestGetErrors(t *testing.T) {
	j, _ := attachedJournal(t)

	_, err := j.Get("")
	assert.ErrorIs(t, err, types.ErrInvalidID)

	_, err = j.Get("no-such-id")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestListNewestFirst(t *testing.T) {
	j, _ := attachedJournal(t)

	// UUID v7 generation is monotonic, so successive records list in order.
	var ids []string
	for range 3 {
		id, err := j.Record("echo", types.NewEnvelope("payload"))
		require.NoError(t, err)
		ids = append(ids, id)
	}

	all, err := j.List(0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, ids[2], all[0].InvocationID)
	assert.Equal(t, ids[0], all[2].InvocationID)

	limited, err := j.List(2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, ids[2], limited[0].InvocationID)
}

func TestListEmpty(t *testing.T) {
	j, _ := attachedJournal(t)

	all, err := j.List(0)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestPersistenceAcrossAttachCycles(t *testing.T) {
	dataDir := t.TempDir()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dataDir}

	first := NewJournal()
	require.NoError(t, first.Attach(cfg))
	id, err := first.Record("echo", types.NewEnvelope("survives"))
	require.NoError(t, err)
	require.NoError(t, first.Detach())

	// A new journal over the same DataDir sees the record: the JSONL file
	// is the source of truth and is reloaded on attach.
	second := NewJournal()
	require.NoError(t, second.Attach(cfg))
	defer second.Detach()

	inv, err := second.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "echo", inv.Handler)
	assert.Equal(t, "survives", inv.Data)
}

func TestListOrderingIgnoresCreatedAtTruncation(t *testing.T) {
	// RFC 3339 strings with truncated fractional seconds do not sort
	// lexically in time order ("…:05Z" > "…:05.5Z"); ordering must come
	// from the time-ordered invocation IDs instead.
	dataDir := t.TempDir()
	older := `{"invocation_id":"0191-aaaa","handler":"echo","status":"ok","timestamp":1700000000000,"data":null,"created_at":"2026-01-02T03:04:05Z"}`
	newer := `{"invocation_id":"0192-bbbb","handler":"echo","status":"ok","timestamp":1700000001000,"data":null,"created_at":"2026-01-02T03:04:05.500000000Z"}`
	content := older + "\n" + newer + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "invocations.jsonl"), []byte(content), 0o644))

	j := NewJournal()
	require.NoError(t, j.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir}))
	defer j.Detach()

	all, err := j.List(0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "0192-bbbb", all[0].InvocationID)
	assert.Equal(t, "0191-aaaa", all[1].InvocationID)
}

func TestRecordRollsBackOnPersistFailure(t *testing.T) {
	j, dataDir := attachedJournal(t)

	// Replace invocations.jsonl with a directory so the atomic rename in
	// the JSONL writer fails.
	jsonlPath := filepath.Join(dataDir, "invocations.jsonl")
	require.NoError(t, os.Remove(jsonlPath))
	require.NoError(t, os.Mkdir(jsonlPath, 0o755))

	_, err := j.Record("echo", types.NewEnvelope("lost"))
	require.Error(t, err)

	// The failed write must not leave a row visible in SQLite: the JSONL
	// file is the source of truth.
	all, err := j.List(0)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMalformedJSONLLinesSkipped(t *testing.T) {
	dataDir := t.TempDir()
	valid := `{"invocation_id":"0191-valid","handler":"echo","status":"ok","timestamp":1700000000000,"data":"x","created_at":"2026-01-02T03:04:05.000000006Z"}`
	content := "not json\n" + valid + "\n{broken\n"
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "invocations.jsonl"), []byte(content), 0o644))

	j := NewJournal()
	require.NoError(t, j.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir}))
	defer j.Detach()

	all, err := j.List(0)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "0191-valid", all[0].InvocationID)
}
