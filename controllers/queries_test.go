package controllers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunQueriesAllSucceed(t *testing.T) {
	ran := 0
	err := runQueries(
		func() error { ran++; return nil },
		func() error { ran++; return nil },
		func() error { ran++; return nil },
	)
	assert.NoError(t, err)
	assert.Equal(t, 3, ran)
}

// A failing query aborts the sequence: later queries never run and the
// failure reaches the caller instead of leaving zeros in the payload.
func TestRunQueriesStopsAtFirstFailure(t *testing.T) {
	boom := errors.New("connection reset")
	ran := 0
	err := runQueries(
		func() error { ran++; return nil },
		func() error { ran++; return boom },
		func() error { ran++; return nil },
	)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, ran)
}

func TestRunQueriesEmpty(t *testing.T) {
	assert.NoError(t, runQueries())
}
