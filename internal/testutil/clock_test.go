package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClockAdvances(t *testing.T) {
	start := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	clock := NewFixedClock(start, time.Minute)

	assert.Equal(t, start, clock.Now())
	assert.Equal(t, start.Add(time.Minute), clock.Now())
	assert.Equal(t, start.Add(2*time.Minute), clock.Now())
}

func TestFixedClockCurrentDoesNotAdvance(t *testing.T) {
	start := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	clock := NewFixedClock(start, time.Minute)

	assert.Equal(t, start, clock.Current())
	assert.Equal(t, start, clock.Current())
	assert.Equal(t, start, clock.Now())
}
