package matchwin_test

import (
	"testing"
	"time"

	"github.com/ctforge/backend/matchwin"
	"github.com/stretchr/testify/assert"
)

func window(start, end time.Time) matchwin.Window {
	return matchwin.Window{Start: &start, End: &end, TimerEnabled: true}
}

func TestBeforeStart(t *testing.T) {
	now := time.Now()
	w := window(now.Add(time.Hour), now.Add(2*time.Hour))

	assert.Equal(t, matchwin.NotStarted, w.State(now, false))
	assert.False(t, w.IsStarted(now, false))
	assert.True(t, w.IsNotEnded(now, false))
}

func TestDuringMatch(t *testing.T) {
	now := time.Now()
	w := window(now.Add(-time.Hour), now.Add(time.Hour))

	assert.Equal(t, matchwin.Active, w.State(now, false))
	assert.True(t, w.IsStarted(now, false))
	assert.True(t, w.IsNotEnded(now, false))
}

func TestAfterEnd(t *testing.T) {
	now := time.Now()
	w := window(now.Add(-2*time.Hour), now.Add(-time.Hour))

	assert.Equal(t, matchwin.Ended, w.State(now, false))
	assert.True(t, w.IsStarted(now, false))
	assert.False(t, w.IsNotEnded(now, false))
}

func TestEndInstantCountsAsEnded(t *testing.T) {
	now := time.Now()
	w := window(now.Add(-time.Hour), now)
	assert.Equal(t, matchwin.Ended, w.State(now, false))
}

func TestStartInstantCountsAsStarted(t *testing.T) {
	now := time.Now()
	w := window(now, now.Add(time.Hour))
	assert.Equal(t, matchwin.Active, w.State(now, false))
}

func TestAdminBypassesWindow(t *testing.T) {
	now := time.Now()

	future := window(now.Add(time.Hour), now.Add(2*time.Hour))
	assert.True(t, future.IsStarted(now, true))

	past := window(now.Add(-2*time.Hour), now.Add(-time.Hour))
	assert.True(t, past.IsNotEnded(now, true))
}

func TestTimerDisabledAlwaysActive(t *testing.T) {
	now := time.Now()
	w := window(now.Add(time.Hour), now.Add(2*time.Hour))
	w.TimerEnabled = false

	assert.Equal(t, matchwin.Active, w.State(now, false))
}

func TestNilBoundsAreOpen(t *testing.T) {
	now := time.Now()
	w := matchwin.Window{TimerEnabled: true}

	assert.Equal(t, matchwin.Active, w.State(now, false))
	assert.True(t, w.IsStarted(now, false))
	assert.True(t, w.IsNotEnded(now, false))
}
