package retry

import (
	"context"
	"errors"
	"fmt"
	"syscall"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fast keeps the tests quick; Backoff is covered separately.
func fast(name string, attempts int) Config {
	return Config{
		Name:         name,
		MaxAttempts:  attempts,
		InitialDelay: time.Millisecond,
		MaxDelay:     2 * time.Millisecond,
		Multiplier:   2,
	}
}

/* ───────── WithBackoff ───────── */

func TestWithBackoff(t *testing.T) {
	starting := &TransientError{Err: errors.New("database system is starting up")}

	tests := []struct {
		name      string
		attempts  int
		results   []error // returned by successive calls; the last one repeats
		wantCalls int
	}{
		{"first try", 3, []error{nil}, 1},
		{"transient then success", 3, []error{starting, starting, nil}, 3},
		{"gives up", 3, []error{starting}, 3},
		{"non-retryable stops at once", 5, []error{errors.New("syntax error")}, 1},
		{"zero attempts still tries once", 0, []error{nil}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := WithBackoff(context.Background(), fast("test", tt.attempts), func() error {
				res := tt.results[min(calls, len(tt.results)-1)]
				calls++
				return res
			})

			assert.Equal(t, tt.wantCalls, calls)
			last := tt.results[len(tt.results)-1]
			if last == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, last)
		})
	}
}

func TestWithBackoff_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := Config{Name: "test", MaxAttempts: 5, InitialDelay: time.Hour}

	calls := 0
	err := WithBackoff(ctx, cfg, func() error {
		calls++
		cancel()
		return &TransientError{Err: errors.New("connection refused")}
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestWithBackoff_RecordsOutcomes(t *testing.T) {
	before := testutil.ToFloat64(attemptsTotal.WithLabelValues("metrics-test", outcomeRetry))
	calls := 0
	_ = WithBackoff(context.Background(), fast("metrics-test", 3), func() error {
		calls++
		if calls < 3 {
			return &TransientError{Err: errors.New("not yet")}
		}
		return nil
	})

	assert.Equal(t, before+2, testutil.ToFloat64(attemptsTotal.WithLabelValues("metrics-test", outcomeRetry)))
	assert.Equal(t, 1.0, testutil.ToFloat64(attemptsTotal.WithLabelValues("metrics-test", outcomeSuccess)))
}

/* ───────── Backoff / jitter ───────── */

func TestBackoff(t *testing.T) {
	cfg := Config{InitialDelay: 100 * time.Millisecond, MaxDelay: time.Second, Multiplier: 2}

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 100 * time.Millisecond},
		{1, 100 * time.Millisecond},
		{2, 200 * time.Millisecond},
		{3, 400 * time.Millisecond},
		{4, 800 * time.Millisecond},
		{5, time.Second},
		{30, time.Second},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.attempt), func(t *testing.T) {
			assert.Equal(t, tt.want, Backoff(cfg, tt.attempt))
		})
	}

	constant := Config{InitialDelay: 50 * time.Millisecond, Multiplier: 0.5}
	assert.Equal(t, 50*time.Millisecond, Backoff(constant, 4), "multiplier below 1 means constant delay")
}

func TestJitter(t *testing.T) {
	base := 100 * time.Millisecond
	for range 50 {
		d := jitter(base, 0.2)
		assert.GreaterOrEqual(t, d, base)
		assert.LessOrEqual(t, d, base+20*time.Millisecond)
	}
	assert.Equal(t, base, jitter(base, 0))
	assert.LessOrEqual(t, jitter(base, 7), 2*base, "fraction is capped at 1")
}

/* ───────── classification ───────── */

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("duplicate key"), false},
		{"canceled", context.Canceled, false},
		{"deadline", fmt.Errorf("ping: %w", context.DeadlineExceeded), false},
		{"transient", &TransientError{Err: errors.New("x")}, true},
		{"wrapped transient", fmt.Errorf("open: %w", &TransientError{Err: errors.New("x")}), true},
		{"conn refused", fmt.Errorf("dial: %w", syscall.ECONNREFUSED), true},
		{"conn reset", syscall.ECONNRESET, true},
		{"transient wrapping cancel", &TransientError{Err: context.Canceled}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestTransientError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &TransientError{Err: cause}
	assert.Equal(t, "transient: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestPresets(t *testing.T) {
	db := DBConfig()
	assert.Equal(t, "database", db.Name)
	assert.Equal(t, 3, db.MaxAttempts)

	s := StartupConfig("rabbitmq")
	assert.Equal(t, "rabbitmq", s.Name)
	assert.Greater(t, s.MaxAttempts, db.MaxAttempts)
	assert.Equal(t, s.MaxDelay, Backoff(s, s.MaxAttempts))
}
