package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockStreakResetter is a mock implementation of StreakResetter
type mockStreakResetter struct {
	reset int
	err   error
	calls int
	at    time.Time
}

func (m *mockStreakResetter) ResetStaleStreaks(ctx context.Context, now time.Time) (int, error) {
	m.calls++
	m.at = now
	return m.reset, m.err
}

func TestNewScheduler(t *testing.T) {
	tests := []struct {
		name        string
		spec        string
		expectError bool
	}{
		{name: "daily", spec: "5 0 * * *"},
		{name: "descriptor", spec: "@hourly"},
		{name: "invalid", spec: "every day", expectError: true},
		{name: "seconds field not accepted", spec: "0 5 0 * * *", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewScheduler(tt.spec, &mockStreakResetter{}, zap.NewNop())
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, s)
		})
	}
}

func TestScheduler_ResetStreaks(t *testing.T) {
	clock := time.Date(2026, 5, 4, 0, 5, 0, 0, time.UTC)
	resetter := &mockStreakResetter{reset: 2}
	s, err := NewScheduler("5 0 * * *", resetter, zap.NewNop())
	require.NoError(t, err)
	s.now = func() time.Time { return clock }

	s.resetStreaks()

	assert.Equal(t, 1, resetter.calls)
	assert.Equal(t, clock, resetter.at)

	resetter.err = assert.AnError
	s.resetStreaks()
	assert.Equal(t, 2, resetter.calls)
}

func TestScheduler_StartStop(t *testing.T) {
	s, err := NewScheduler("5 0 * * *", &mockStreakResetter{}, zap.NewNop())
	require.NoError(t, err)

	s.Start()
	next := s.NextRun()
	s.Stop()

	assert.False(t, next.IsZero())
	assert.Equal(t, 0, next.Hour())
	assert.Equal(t, 5, next.Minute())
}
