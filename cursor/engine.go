// Package cursor implements the custom pointer: an immediate dot that tracks
// raw input and a bubble that follows it with exponential smoothing.
package cursor

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// DefaultSmoothing is the fraction of the remaining distance the bubble closes per frame.
const DefaultSmoothing = 0.15

// Indicator receives a position whenever the engine moves one of its points.
type Indicator interface {
	Place(p dmath.Vec2)
}

// Config holds the product choices of the follower.
type Config struct {
	Smoothing  float64    // (0, 1]; lower is laggier, 1 removes lag
	Offscreen  dmath.Vec2 // initial position of both points, outside the viewport
	Classifier Classifier

	// Dot and Bubble are optional hooks for embedders that position their
	// own visuals. The ECS renderer reads State instead and leaves them nil.
	Dot    Indicator // placed synchronously on every move
	Bubble Indicator // placed after every tick
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		Smoothing:  DefaultSmoothing,
		Offscreen:  dmath.NewVec2(-100, -100),
		Classifier: DefaultClassifier(),
	}
}

// State is what the presentation layer reads each frame.
type State struct {
	Immediate dmath.Vec2
	Lagging   dmath.Vec2
	Hovering  bool
	Pressed   bool
}

// Engine owns the follower state for one mount. It is not safe for
// concurrent use; hosts call it from their update goroutine.
type Engine struct {
	cfg    Config
	frames FrameScheduler
	input  *Dispatcher

	pointer  dmath.Vec2
	follower dmath.Vec2
	hovering bool
	pressed  bool

	running bool
	frameID FrameID
	handles []Handle
	ticks   uint64
}

// NewEngine creates a stopped engine. A nil scheduler or input surface means
// the host has no pointer display, and Start will refuse to run.
func NewEngine(frames FrameScheduler, input *Dispatcher, cfg Config) *Engine {
	cfg.Smoothing = normalizeSmoothing(cfg.Smoothing)
	e := &Engine{
		cfg:    cfg,
		frames: frames,
		input:  input,
	}
	e.reset()
	return e
}

func normalizeSmoothing(s float64) float64 {
	if math.IsNaN(s) || s <= 0 {
		return DefaultSmoothing
	}
	if s > 1 {
		return 1
	}
	return s
}

func (e *Engine) reset() {
	e.pointer = e.cfg.Offscreen
	e.follower = e.cfg.Offscreen
	e.hovering = false
	e.pressed = false
	e.ticks = 0
}

// Start registers the pointer listeners and requests the first frame.
// It returns false when the environment has no pointer or display surface.
// Starting a running engine is a no-op.
func (e *Engine) Start() bool {
	if e.running {
		return true
	}
	if e.frames == nil || e.input == nil {
		return false
	}

	e.reset()
	e.handles = append(e.handles[:0],
		e.input.Listen(EventMove, func(ev PointerEvent) { e.OnPointerMove(ev.X, ev.Y) }),
		e.input.Listen(EventOver, func(ev PointerEvent) { e.OnPointerOver(ev.Target) }),
		e.input.Listen(EventDown, func(PointerEvent) { e.OnPointerDown() }),
		e.input.Listen(EventUp, func(PointerEvent) { e.OnPointerUp() }),
	)
	e.running = true
	e.frameID = e.frames.RequestFrame(e.Tick)
	return true
}

// Stop removes every listener and cancels the pending frame. No tick runs and
// no listener fires once Stop returns. Stopping a stopped engine is a no-op.
func (e *Engine) Stop() {
	for _, h := range e.handles {
		h.Remove()
	}
	clear(e.handles)
	e.handles = e.handles[:0]

	if e.frameID != 0 {
		e.frames.CancelFrame(e.frameID)
		e.frameID = 0
	}
	e.running = false
}

// Running reports whether the loop is active.
func (e *Engine) Running() bool {
	return e.running
}

// OnPointerMove records the raw pointer sample and places the dot immediately.
func (e *Engine) OnPointerMove(x, y float64) {
	if !e.running {
		return
	}
	e.pointer = dmath.NewVec2(x, y)
	if e.cfg.Dot != nil {
		e.cfg.Dot.Place(e.pointer)
	}
}

// OnPointerOver sets the hover flag from the element now under the pointer.
func (e *Engine) OnPointerOver(target Element) {
	if !e.running {
		return
	}
	e.hovering = e.cfg.Classifier.IsInteractive(target)
}

// OnPointerDown marks a press as held.
func (e *Engine) OnPointerDown() {
	if !e.running {
		return
	}
	e.pressed = true
}

// OnPointerUp releases the press.
func (e *Engine) OnPointerUp() {
	if !e.running {
		return
	}
	e.pressed = false
}

// Tick moves the bubble toward the pointer by the smoothing fraction, then
// requests the next frame. Any outstanding request is cancelled first so only
// one loop exists even when Tick is called outside the scheduler.
func (e *Engine) Tick() {
	if !e.running {
		return
	}

	e.follower = e.follower.Add(e.pointer.Sub(e.follower).MulScalar(e.cfg.Smoothing))
	e.ticks++
	if e.cfg.Bubble != nil {
		e.cfg.Bubble.Place(e.follower)
		// Place may have stopped the engine.
		if !e.running {
			return
		}
	}

	if e.frameID != 0 {
		e.frames.CancelFrame(e.frameID)
	}
	e.frameID = e.frames.RequestFrame(e.Tick)
}

// Ticks returns the number of ticks run since the last Start.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// Pointer returns the immediate position.
func (e *Engine) Pointer() dmath.Vec2 {
	return e.pointer
}

// Follower returns the smoothed position.
func (e *Engine) Follower() dmath.Vec2 {
	return e.follower
}

// Hovering reports whether the pointer is over an interactive element.
func (e *Engine) Hovering() bool {
	return e.hovering
}

// Pressed reports whether a press is held.
func (e *Engine) Pressed() bool {
	return e.pressed
}

// Smoothing returns the effective smoothing coefficient.
func (e *Engine) Smoothing() float64 {
	return e.cfg.Smoothing
}

// State returns a snapshot for rendering.
func (e *Engine) State() State {
	return State{
		Immediate: e.pointer,
		Lagging:   e.follower,
		Hovering:  e.hovering,
		Pressed:   e.pressed,
	}
}
