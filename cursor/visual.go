package cursor

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// VisualConfig describes the bubble's idle, hover and press appearance.
type VisualConfig struct {
	Radius      float64 // idle radius
	HoverRadius float64 // radius while hovering an interactive element
	PressScale  float64 // scale while a press is held
	Duration    float32 // transition length in seconds
}

// Visual eases the bubble between its idle, hover and press looks. The dot has
// no Visual: it must never lag behind the pointer.
type Visual struct {
	cfg VisualConfig

	radius *gween.Tween
	scale  *gween.Tween
	fill   *gween.Tween

	curRadius float32
	curScale  float32
	curFill   float32

	hovering bool
	pressed  bool
}

// NewVisual creates a visual resting in the idle state.
func NewVisual(cfg VisualConfig) *Visual {
	return &Visual{
		cfg:       cfg,
		curRadius: float32(cfg.Radius),
		curScale:  1,
	}
}

// Retarget starts transitions toward the look for the given flags. Unchanged
// flags keep their running transition.
func (v *Visual) Retarget(hovering, pressed bool) {
	if hovering != v.hovering {
		v.hovering = hovering
		radius, fill := float32(v.cfg.Radius), float32(0)
		if hovering {
			radius, fill = float32(v.cfg.HoverRadius), 1
		}
		v.radius = v.transition(v.curRadius, radius)
		v.fill = v.transition(v.curFill, fill)
	}
	if pressed != v.pressed {
		v.pressed = pressed
		scale := float32(1)
		if pressed {
			scale = float32(v.cfg.PressScale)
		}
		v.scale = v.transition(v.curScale, scale)
	}
}

func (v *Visual) transition(from, to float32) *gween.Tween {
	if v.cfg.Duration <= 0 {
		return gween.New(to, to, 0.0001, ease.Linear)
	}
	return gween.New(from, to, v.cfg.Duration, ease.OutCubic)
}

// Update advances running transitions by dt seconds.
func (v *Visual) Update(dt float32) {
	if v.radius != nil {
		cur, done := v.radius.Update(dt)
		v.curRadius = cur
		if done {
			v.radius = nil
		}
	}
	if v.fill != nil {
		cur, done := v.fill.Update(dt)
		v.curFill = cur
		if done {
			v.fill = nil
		}
	}
	if v.scale != nil {
		cur, done := v.scale.Update(dt)
		v.curScale = cur
		if done {
			v.scale = nil
		}
	}
}

// Radius returns the unscaled bubble radius.
func (v *Visual) Radius() float64 {
	return float64(v.curRadius)
}

// Scale returns the press scale factor.
func (v *Visual) Scale() float64 {
	return float64(v.curScale)
}

// Fill returns the bubble fill opacity in [0, 1].
func (v *Visual) Fill() float64 {
	return float64(v.curFill)
}

// Animating reports whether any transition is still running.
func (v *Visual) Animating() bool {
	return v.radius != nil || v.scale != nil || v.fill != nil
}
