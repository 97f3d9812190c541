package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvocationJSONKeys(t *testing.T) {
	inv := Invocation{
		InvocationID: "0191-test",
		Handler:      "echo",
		Status:       StatusOK,
		Timestamp:    1700000000000,
		Data:         "payload",
		CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	out, err := json.Marshal(inv)
	require.NoError(t, err)

	// Keys are snake_case, matching the envelope and the JSONL record format.
	var keys map[string]any
	require.NoError(t, json.Unmarshal(out, &keys))
	for _, key := range []string{"invocation_id", "handler", "status", "timestamp", "data", "created_at"} {
		assert.Contains(t, keys, key)
	}
	assert.NotContains(t, keys, "InvocationID")
	assert.NotContains(t, keys, "CreatedAt")
}
