package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewEnvelope(t *testing.T) {
	before := time.Now().UnixMilli()
	env := NewEnvelope(map[string]any{"key": "value"})
	after := time.Now().UnixMilli()

	assert.Equal(t, StatusOK, env.Status)
	assert.GreaterOrEqual(t, env.Timestamp, before)
	assert.LessOrEqual(t, env.Timestamp, after)
	assert.Equal(t, map[string]any{"key": "value"}, env.Data)
}

func TestNewEnvelopeNilData(t *testing.T) {
	env := NewEnvelope(nil)

	assert.Equal(t, StatusOK, env.Status)
	assert.Nil(t, env.Data)
	assert.NoError(t, env.Validate())
}

func TestEnvelopeValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     Envelope
		wantErr error
	}{
		{
			name: "valid envelope",
			env:  Envelope{Status: StatusOK, Timestamp: 1700000000000},
		},
		{
			name:    "empty status rejected",
			env:     Envelope{Timestamp: 1700000000000},
			wantErr: ErrStatusEmpty,
		},
		{
			name:    "zero timestamp rejected",
			env:     Envelope{Status: StatusOK},
			wantErr: ErrTimestampInvalid,
		},
		{
			name:    "negative timestamp rejected",
			env:     Envelope{Status: StatusOK, Timestamp: -1},
			wantErr: ErrTimestampInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.env.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEnvelopeOK(t *testing.T) {
	assert.True(t, NewEnvelope("x").OK())
	assert.False(t, Envelope{Status: "error"}.OK())
}

func TestEnvelopeJSONShape(t *testing.T) {
	env := Envelope{Status: StatusOK, Timestamp: 1700000000000, Data: "payload"}

	out, err := json.Marshal(env)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok","timestamp":1700000000000,"data":"payload"}`, string(out))
}
