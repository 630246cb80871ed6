package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testVisualConfig() VisualConfig {
	return VisualConfig{Radius: 16, HoverRadius: 40, PressScale: 0.75, Duration: 0.3}
}

func TestVisualRestsIdle(t *testing.T) {
	v := NewVisual(testVisualConfig())

	assert.Equal(t, 16.0, v.Radius())
	assert.Equal(t, 1.0, v.Scale())
	assert.Equal(t, 0.0, v.Fill())
	assert.False(t, v.Animating())
}

func TestVisualHoverTransition(t *testing.T) {
	v := NewVisual(testVisualConfig())
	v.Retarget(true, false)
	assert.True(t, v.Animating())

	v.Update(0.1)
	assert.Greater(t, v.Radius(), 16.0)
	assert.Less(t, v.Radius(), 40.0)

	v.Update(0.3)
	assert.InDelta(t, 40.0, v.Radius(), 1e-4)
	assert.InDelta(t, 1.0, v.Fill(), 1e-4)
	assert.False(t, v.Animating())
}

func TestVisualPressScalesIndependently(t *testing.T) {
	v := NewVisual(testVisualConfig())
	v.Retarget(false, true)
	v.Update(1)

	assert.InDelta(t, 0.75, v.Scale(), 1e-4)
	assert.Equal(t, 16.0, v.Radius())

	v.Retarget(false, false)
	v.Update(1)
	assert.InDelta(t, 1.0, v.Scale(), 1e-4)
}

func TestVisualRetargetMidTransitionStartsFromCurrent(t *testing.T) {
	v := NewVisual(testVisualConfig())
	v.Retarget(true, false)
	v.Update(0.15)
	mid := v.Radius()

	v.Retarget(false, false)
	v.Update(0.01)
	assert.Less(t, v.Radius(), mid)
	assert.Greater(t, v.Radius(), 16.0)
}

func TestVisualWithoutDurationSnaps(t *testing.T) {
	cfg := testVisualConfig()
	cfg.Duration = 0
	v := NewVisual(cfg)

	v.Retarget(true, true)
	v.Update(0.016)
	assert.InDelta(t, 40.0, v.Radius(), 1e-4)
	assert.InDelta(t, 0.75, v.Scale(), 1e-4)
}
