package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{JobPending, JobInProgress, true},
		{JobPending, JobCompleted, true},
		{JobPending, JobCancelled, true},
		{JobInProgress, JobCompleted, true},
		{JobInProgress, JobCancelled, true},

		// never backward
		{JobInProgress, JobPending, false},
		{JobCompleted, JobInProgress, false},
		{JobCompleted, JobPending, false},

		// terminal states stay terminal
		{JobCompleted, JobCancelled, false},
		{JobCancelled, JobPending, false},
		{JobCancelled, JobCompleted, false},

		// no self transitions
		{JobPending, JobPending, false},
		{JobInProgress, JobInProgress, false},

		// unknown statuses
		{"PAUSED", JobCompleted, false},
		{JobPending, "PAUSED", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to),
			"transition %s -> %s", tt.from, tt.to)
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(JobPending))
	assert.True(t, ValidStatus(JobCancelled))
	assert.False(t, ValidStatus("DONE"))
	assert.False(t, ValidStatus(""))
}

func TestValidPriority(t *testing.T) {
	assert.True(t, ValidPriority(PriorityHigh))
	assert.False(t, ValidPriority("URGENT"))
}
