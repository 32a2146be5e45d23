package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStore = errors.New("store unavailable")

func failing() error { return errStore }

func succeeding() error { return nil }

func TestCircuitBreaker_Execute(t *testing.T) {
	tests := []struct {
		name          string
		calls         []func() error
		expectedState State
		expectedErr   error
	}{
		{
			name:          "success keeps circuit closed",
			calls:         []func() error{succeeding},
			expectedState: StateClosed,
		},
		{
			name:          "failures below threshold keep circuit closed",
			calls:         []func() error{failing},
			expectedState: StateClosed,
			expectedErr:   errStore,
		},
		{
			name:          "failures at threshold open circuit",
			calls:         []func() error{failing, failing},
			expectedState: StateOpen,
			expectedErr:   errStore,
		},
		{
			name:          "success resets failure count",
			calls:         []func() error{failing, succeeding, failing},
			expectedState: StateClosed,
			expectedErr:   errStore,
		},
		{
			name:          "open circuit rejects calls",
			calls:         []func() error{failing, failing, succeeding},
			expectedState: StateOpen,
			expectedErr:   ErrCircuitOpen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := New(Config{FailureThreshold: 2, SuccessThreshold: 1, Timeout: time.Hour, Name: "test"})

			var err error
			for _, call := range tt.calls {
				err = cb.Execute(context.Background(), call)
			}

			assert.ErrorIs(t, err, tt.expectedErr)
			if tt.expectedErr == nil {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedState, cb.State())
		})
	}
}

func TestCircuitBreaker_Recovery(t *testing.T) {
	cb := New(Config{FailureThreshold: 1, SuccessThreshold: 2, Timeout: 20 * time.Millisecond, Name: "test"})

	_ = cb.Execute(context.Background(), failing)
	require.True(t, cb.IsOpen())

	time.Sleep(30 * time.Millisecond)

	require.NoError(t, cb.Execute(context.Background(), succeeding))
	assert.Equal(t, StateHalfOpen, cb.State())

	require.NoError(t, cb.Execute(context.Background(), succeeding))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := New(Config{FailureThreshold: 3, SuccessThreshold: 2, Timeout: 20 * time.Millisecond, Name: "test"})

	for i := 0; i < 3; i++ {
		_ = cb.Execute(context.Background(), failing)
	}
	require.True(t, cb.IsOpen())

	time.Sleep(30 * time.Millisecond)

	assert.ErrorIs(t, cb.Execute(context.Background(), failing), errStore)
	assert.True(t, cb.IsOpen())
	assert.ErrorIs(t, cb.Execute(context.Background(), succeeding), ErrCircuitOpen)
}

func TestCircuitBreaker_CancelledContext(t *testing.T) {
	cb := New(Config{FailureThreshold: 1, SuccessThreshold: 1, Timeout: time.Hour, Name: "test"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := cb.Execute(ctx, func() error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
	assert.Equal(t, StateClosed, cb.State())

	err = cb.Execute(context.Background(), func() error { return context.Canceled })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_OnStateChange(t *testing.T) {
	type transition struct {
		from, to State
	}

	var (
		mu          sync.Mutex
		transitions []transition
	)
	cb := New(Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          20 * time.Millisecond,
		Name:             "pack-sizes",
		OnStateChange: func(name string, from, to State) {
			assert.Equal(t, "pack-sizes", name)
			mu.Lock()
			transitions = append(transitions, transition{from, to})
			mu.Unlock()
		},
	})

	_ = cb.Execute(context.Background(), failing)
	time.Sleep(30 * time.Millisecond)
	_ = cb.Execute(context.Background(), succeeding)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []transition{
		{StateClosed, StateOpen},
		{StateOpen, StateHalfOpen},
		{StateHalfOpen, StateClosed},
	}, transitions)
}

func TestCircuitBreaker_GetStats(t *testing.T) {
	cb := New(Config{FailureThreshold: 5, SuccessThreshold: 1, Timeout: time.Hour, Name: "stats"})
	_ = cb.Execute(context.Background(), failing)

	stats := cb.GetStats()
	assert.Equal(t, "closed", stats.State)
	assert.Equal(t, 1, stats.FailureCount)
	assert.True(t, stats.IsHealthy)
	assert.False(t, stats.LastFailure.IsZero())
	assert.Equal(t, "stats", cb.Name())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", State(42).String())
}

func TestNew_NormalizesThresholds(t *testing.T) {
	cb := New(Config{Name: "zero"})
	_ = cb.Execute(context.Background(), failing)
	assert.True(t, cb.IsOpen())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 5, cfg.FailureThreshold)
	assert.Equal(t, 2, cfg.SuccessThreshold)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Nil(t, cfg.OnStateChange)
}
