package stub

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/veneer/pkg/types"
)

func TestEcho(t *testing.T) {
	env, err := Echo(map[string]any{"key": "value"})

	assert.NoError(t, err)
	assert.Equal(t, types.StatusOK, env.Status)
	assert.Positive(t, env.Timestamp)
	assert.Equal(t, map[string]any{"key": "value"}, env.Data)
}

func TestEchoNilParam(t *testing.T) {
	env, err := Echo(nil)

	assert.NoError(t, err)
	assert.Equal(t, types.StatusOK, env.Status)
	assert.Nil(t, env.Data)
}

func TestRegistryRegister(t *testing.T) {
	tests := []struct {
		name        string
		handlerName string
		handler     Handler
		wantErr     error
	}{
		{"valid handler", "echo", Echo, nil},
		{"empty name rejected", "", Echo, ErrInvalidName},
		{"nil handler rejected", "broken", nil, ErrNilHandler},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			err := r.Register(tt.handlerName, tt.handler)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, r.Len())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, r.Len())
			}
		})
	}
}

func TestRegistryRegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	assert.NoError(t, r.Register("echo", Echo))

	err := r.Register("echo", Echo)
	assert.ErrorIs(t, err, ErrHandlerExists)
	assert.Equal(t, 1, r.Len())
}

func TestRegistryInvoke(t *testing.T) {
	r := NewRegistry()
	assert.NoError(t, r.Register("echo", Echo))

	env, err := r.Invoke("echo", "payload")
	assert.NoError(t, err)
	assert.Equal(t, types.StatusOK, env.Status)
	assert.Equal(t, "payload", env.Data)
}

func TestRegistryInvokeUnknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Invoke("missing", nil)
	assert.ErrorIs(t, err, ErrHandlerNotFound)
	assert.Contains(t, err.Error(), "missing")
}

func TestRegistryInvokeHandlerError(t *testing.T) {
	r := NewRegistry()
	sentinel := errors.New("handler failed")
	assert.NoError(t, r.Register("failing", func(param any) (types.Envelope, error) {
		return types.Envelope{}, sentinel
	}))

	_, err := r.Invoke("failing", nil)
	assert.ErrorIs(t, err, sentinel)
}

func TestRegistryNames(t *testing.T) {
	r := NewRegistry()
	assert.NoError(t, r.Register("zeta", Echo))
	assert.NoError(t, r.Register("alpha", Echo))
	assert.NoError(t, r.Register("mid", Echo))

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.Names())
}

// recordingObserver collects invocation notifications for assertions.
type recordingObserver struct {
	mu       sync.Mutex
	handlers []string
	envs     []types.Envelope
}

func (o *recordingObserver) Invoked(handler string, env types.Envelope) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.handlers = append(o.handlers, handler)
	o.envs = append(o.envs, env)
}

func TestRegistryObserver(t *testing.T) {
	r := NewRegistry()
	obs := &recordingObserver{}
	r.SetObserver(obs)
	assert.NoError(t, r.Register("echo", Echo))

	_, err := r.Invoke("echo", "first")
	assert.NoError(t, err)
	_, err = r.Invoke("echo", "second")
	assert.NoError(t, err)

	assert.Equal(t, []string{"echo", "echo"}, obs.handlers)
	assert.Equal(t, "first", obs.envs[0].Data)
	assert.Equal(t, "second", obs.envs[1].Data)
}

func TestRegistryObserverNotCalledOnError(t *testing.T) {
	r := NewRegistry()
	obs := &recordingObserver{}
	r.SetObserver(obs)
	assert.NoError(t, r.Register("failing", func(param any) (types.Envelope, error) {
		return types.Envelope{}, errors.New("boom")
	}))

	_, err := r.Invoke("failing", nil)
	assert.Error(t, err)
	assert.Empty(t, obs.handlers)
}

func TestRegistryConcurrentInvoke(t *testing.T) {
	r := NewRegistry()
	assert.NoError(t, r.Register("echo", Echo))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			env, err := r.Invoke("echo", n)
			assert.NoError(t, err)
			assert.Equal(t, n, env.Data)
		}(i)
	}
	wg.Wait()
}
