package documents

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleSpacesRendersInOrder(t *testing.T) {
	s := NewBulkScheduler(500*time.Millisecond, nil)

	var slept []time.Duration
	s.sleep = func(d time.Duration) { slept = append(slept, d) }

	var order []int
	results, err := s.Schedule(3, func(i int) error {
		order = append(order, i)
		return nil
	})
	require.NoError(t, err)

	collected := make([]RenderResult, 0, 3)
	for res := range results {
		collected = append(collected, res)
	}

	assert.Equal(t, []int{0, 1, 2}, order)
	// The first render fires immediately; each following one waits the
	// fixed delay.
	assert.Equal(t, []time.Duration{500 * time.Millisecond, 500 * time.Millisecond}, slept)

	require.Len(t, collected, 3)
	for i, res := range collected {
		assert.Equal(t, i, res.Index)
		assert.NoError(t, res.Err)
	}
}

func TestScheduleNothingToGenerate(t *testing.T) {
	s := NewBulkScheduler(time.Millisecond, nil)

	invoked := false
	results, err := s.Schedule(0, func(int) error {
		invoked = true
		return nil
	})

	assert.ErrorIs(t, err, ErrNothingToGenerate)
	assert.Nil(t, results)
	assert.False(t, invoked)
}

func TestScheduleReportsPerItemFailures(t *testing.T) {
	s := NewBulkScheduler(time.Millisecond, nil)
	s.sleep = func(time.Duration) {}

	renderErr := errors.New("render backend exploded")
	results, err := s.Schedule(3, func(i int) error {
		if i == 1 {
			return renderErr
		}
		return nil
	})
	require.NoError(t, err)

	collected := make([]RenderResult, 0, 3)
	for res := range results {
		collected = append(collected, res)
	}

	// One failure does not stop the remaining renders.
	require.Len(t, collected, 3)
	assert.NoError(t, collected[0].Err)
	assert.ErrorIs(t, collected[1].Err, renderErr)
	assert.NoError(t, collected[2].Err)
}

func TestScheduleDefaultDelay(t *testing.T) {
	s := NewBulkScheduler(0, nil)
	assert.Equal(t, DefaultBulkDelay, s.delay)
}
