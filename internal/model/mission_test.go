package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMissionStatus(t *testing.T) {
	for _, valid := range []string{"pending", "in_progress", "completed", "failed"} {
		status, err := ParseMissionStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, MissionStatus(valid), status)
	}

	for _, invalid := range []string{"", "done", "PENDING", "in-progress"} {
		_, err := ParseMissionStatus(invalid)
		assert.ErrorIs(t, err, ErrInvalidMissionStatus, "input %q", invalid)
	}
}

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    MissionStatus
		to      MissionStatus
		allowed bool
	}{
		{MissionPending, MissionInProgress, true},
		{MissionInProgress, MissionCompleted, true},
		{MissionInProgress, MissionFailed, true},

		// Skipping the in-progress step is not allowed
		{MissionPending, MissionCompleted, false},
		{MissionPending, MissionFailed, false},

		// Nothing transitions back to pending
		{MissionInProgress, MissionPending, false},
		{MissionCompleted, MissionPending, false},

		// Terminal states admit nothing
		{MissionCompleted, MissionInProgress, false},
		{MissionCompleted, MissionFailed, false},
		{MissionFailed, MissionCompleted, false},
		{MissionFailed, MissionInProgress, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestTerminal(t *testing.T) {
	assert.False(t, MissionPending.Terminal())
	assert.False(t, MissionInProgress.Terminal())
	assert.True(t, MissionCompleted.Terminal())
	assert.True(t, MissionFailed.Terminal())
}

func TestMissionDeleted(t *testing.T) {
	m := Mission{}
	assert.False(t, m.Deleted())

	now := time.Now()
	m.DeletedAt = &now
	assert.True(t, m.Deleted())
}
