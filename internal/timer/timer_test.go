package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartTwiceKeepsSingleTicker(t *testing.T) {
	tm := New()
	h1, ok := tm.Start()
	require.True(t, ok)
	_, ok = tm.Start()
	assert.False(t, ok)

	assert.True(t, tm.Tick(h1))
	assert.Equal(t, "00:01", tm.Display())
}

func TestRollover(t *testing.T) {
	tm := New()
	h, _ := tm.Start()
	for i := 0; i < 59; i++ {
		require.True(t, tm.Tick(h))
	}
	assert.Equal(t, "00:59", tm.Display())
	require.True(t, tm.Tick(h))
	assert.Equal(t, "01:00", tm.Display())
	assert.Equal(t, 1, tm.Minutes())
	assert.Equal(t, 0, tm.Seconds())
}

func TestPauseDropsInFlightTick(t *testing.T) {
	tm := New()
	h, _ := tm.Start()
	tm.Tick(h)
	tm.Pause()
	assert.False(t, tm.Running())
	assert.False(t, tm.Tick(h))
	assert.Equal(t, "00:01", tm.Display())

	tm.Pause()
	assert.False(t, tm.Running())
}

func TestRestartRetiresOldHandle(t *testing.T) {
	tm := New()
	old, _ := tm.Start()
	tm.Pause()
	fresh, ok := tm.Start()
	require.True(t, ok)
	assert.NotEqual(t, old, fresh)

	assert.False(t, tm.Tick(old))
	assert.True(t, tm.Tick(fresh))
	assert.Equal(t, 1, tm.Seconds())
}

func TestReset(t *testing.T) {
	tm := New()
	h, _ := tm.Start()
	for i := 0; i < 75; i++ {
		tm.Tick(h)
	}
	tm.Reset()
	assert.False(t, tm.Running())
	assert.Equal(t, "00:00", tm.Display())
	assert.False(t, tm.Tick(h))
}

func TestPresetAfterRunning(t *testing.T) {
	tm := New()
	h, _ := tm.Start()
	for i := 0; i < 10; i++ {
		tm.Tick(h)
	}
	tm.SetPreset(25)
	assert.Equal(t, "25:00", tm.Display())
	assert.False(t, tm.Running())
	assert.False(t, tm.Tick(h))
}

func TestPresetClampsNegative(t *testing.T) {
	tm := New()
	tm.SetPreset(-3)
	assert.Equal(t, "00:00", tm.Display())
}

func TestDigitsBeyondTwoPlaces(t *testing.T) {
	tm := New()
	tm.SetPreset(120)
	m, s := tm.Digits()
	assert.Equal(t, "120", m)
	assert.Equal(t, "00", s)
}
