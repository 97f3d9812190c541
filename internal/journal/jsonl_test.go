package journal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadJSONLSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.jsonl")
	content := "{\"a\":1}\n\nnot json\n{\"b\":2}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	records, err := readJSONL(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.JSONEq(t, `{"a":1}`, string(records[0]))
	assert.JSONEq(t, `{"b":2}`, string(records[1]))
}

func TestReadJSONLMissingFile(t *testing.T) {
	_, err := readJSONL(filepath.Join(t.TempDir(), "absent.jsonl"))
	assert.Error(t, err)
}

func TestWriteJSONLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.jsonl")
	records := []json.RawMessage{
		json.RawMessage(`{"a":1}`),
		json.RawMessage(`{"b":2}`),
	}

	require.NoError(t, writeJSONL(path, records))

	got, err := readJSONL(path)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestWriteJSONLReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.jsonl")
	require.NoError(t, writeJSONL(path, []json.RawMessage{json.RawMessage(`{"old":true}`)}))
	require.NoError(t, writeJSONL(path, []json.RawMessage{json.RawMessage(`{"new":true}`)}))

	got, err := readJSONL(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.JSONEq(t, `{"new":true}`, string(got[0]))
}

func TestWriteJSONLEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.jsonl")
	require.NoError(t, writeJSONL(path, nil))

	got, err := readJSONL(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}
