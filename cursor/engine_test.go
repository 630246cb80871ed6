package cursor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

// countingScheduler wraps a FrameQueue and counts requests.
type countingScheduler struct {
	*FrameQueue
	requests int
}

func (c *countingScheduler) RequestFrame(fn func()) FrameID {
	c.requests++
	return c.FrameQueue.RequestFrame(fn)
}

type recordingIndicator struct {
	placed []dmath.Vec2
}

func (r *recordingIndicator) Place(p dmath.Vec2) {
	r.placed = append(r.placed, p)
}

func distance(a, b dmath.Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func newStartedEngine(t *testing.T, cfg Config) (*Engine, *FrameQueue, *Dispatcher) {
	t.Helper()
	frames := NewFrameQueue()
	input := NewDispatcher()
	e := NewEngine(frames, input, cfg)
	require.True(t, e.Start())
	return e, frames, input
}

func originConfig() Config {
	cfg := DefaultConfig()
	cfg.Offscreen = dmath.NewVec2(0, 0)
	return cfg
}

func TestEngineStartsOffscreen(t *testing.T) {
	e := NewEngine(NewFrameQueue(), NewDispatcher(), DefaultConfig())

	assert.Equal(t, dmath.NewVec2(-100, -100), e.Pointer())
	assert.Equal(t, dmath.NewVec2(-100, -100), e.Follower())
	assert.False(t, e.Hovering())
	assert.False(t, e.Pressed())
	assert.False(t, e.Running())
}

func TestTickConvergesTowardFixedTarget(t *testing.T) {
	e, frames, input := newStartedEngine(t, originConfig())
	input.Dispatch(PointerEvent{Kind: EventMove, X: 100, Y: 100})

	frames.Advance()
	assert.InDelta(t, 15.0, e.Follower().X, 1e-9)
	assert.InDelta(t, 15.0, e.Follower().Y, 1e-9)

	frames.Advance()
	assert.InDelta(t, 27.75, e.Follower().X, 1e-9)
	assert.InDelta(t, 27.75, e.Follower().Y, 1e-9)

	target := dmath.NewVec2(100, 100)
	prev := distance(e.Follower(), target)
	for i := 0; i < 60; i++ {
		frames.Advance()
		f := e.Follower()
		assert.LessOrEqual(t, f.X, 100.0, "never overshoots")
		assert.LessOrEqual(t, f.Y, 100.0, "never overshoots")

		d := distance(f, target)
		assert.Less(t, d, prev, "distance strictly decreases at tick %d", i)
		prev = d
	}
	assert.Less(t, prev, 0.01)
}

func TestTickConvergesForAnySmoothing(t *testing.T) {
	for _, alpha := range []float64{0.01, 0.15, 0.5, 0.99, 1} {
		cfg := originConfig()
		cfg.Smoothing = alpha
		e, frames, input := newStartedEngine(t, cfg)
		input.Dispatch(PointerEvent{Kind: EventMove, X: -40, Y: 250})

		for i := 0; i < 2000; i++ {
			frames.Advance()
		}
		assert.InDelta(t, -40.0, e.Follower().X, 1e-3, "alpha %v", alpha)
		assert.InDelta(t, 250.0, e.Follower().Y, 1e-3, "alpha %v", alpha)
	}
}

func TestSmoothingOfOneRemovesLag(t *testing.T) {
	cfg := originConfig()
	cfg.Smoothing = 1
	e, frames, input := newStartedEngine(t, cfg)

	input.Dispatch(PointerEvent{Kind: EventMove, X: 42, Y: 7})
	frames.Advance()

	assert.Equal(t, dmath.NewVec2(42, 7), e.Follower())
}

func TestInvalidSmoothingFallsBackToDefault(t *testing.T) {
	for _, alpha := range []float64{0, -1} {
		cfg := DefaultConfig()
		cfg.Smoothing = alpha
		assert.Equal(t, DefaultSmoothing, NewEngine(nil, nil, cfg).Smoothing())
	}

	cfg := DefaultConfig()
	cfg.Smoothing = 3
	assert.Equal(t, 1.0, NewEngine(nil, nil, cfg).Smoothing())
}

func TestImmediateIndicatorHasNoSmoothing(t *testing.T) {
	dot := &recordingIndicator{}
	cfg := DefaultConfig()
	cfg.Dot = dot
	e, frames, input := newStartedEngine(t, cfg)

	frames.Advance()
	input.Dispatch(PointerEvent{Kind: EventMove, X: 50, Y: 50})

	assert.Equal(t, dmath.NewVec2(50, 50), e.Pointer())
	assert.Equal(t, dmath.NewVec2(50, 50), e.State().Immediate)
	require.Len(t, dot.placed, 1)
	assert.Equal(t, dmath.NewVec2(50, 50), dot.placed[0])
	assert.NotEqual(t, e.Pointer(), e.Follower())
}

func TestBubbleIndicatorPlacedEachTick(t *testing.T) {
	bubble := &recordingIndicator{}
	cfg := originConfig()
	cfg.Bubble = bubble
	_, frames, input := newStartedEngine(t, cfg)
	input.Dispatch(PointerEvent{Kind: EventMove, X: 100, Y: 0})

	frames.Advance()
	frames.Advance()

	require.Len(t, bubble.placed, 2)
	assert.InDelta(t, 15.0, bubble.placed[0].X, 1e-9)
	assert.InDelta(t, 27.75, bubble.placed[1].X, 1e-9)
}

func TestMoveBeforeTickIsVisibleToThatTick(t *testing.T) {
	e, frames, input := newStartedEngine(t, originConfig())

	input.Dispatch(PointerEvent{Kind: EventMove, X: 10, Y: 10})
	input.Dispatch(PointerEvent{Kind: EventMove, X: 200, Y: 0})
	frames.Advance()

	assert.InDelta(t, 30.0, e.Follower().X, 1e-9)
	assert.InDelta(t, 0.0, e.Follower().Y, 1e-9)
}

func TestHoverFollowsOverEvents(t *testing.T) {
	e, _, input := newStartedEngine(t, DefaultConfig())
	button := &testNode{tag: "BUTTON"}
	span := &testNode{tag: "SPAN", parent: button}
	div := &testNode{tag: "DIV"}

	input.Dispatch(PointerEvent{Kind: EventOver, Target: span})
	assert.True(t, e.Hovering())

	input.Dispatch(PointerEvent{Kind: EventOver, Target: div})
	assert.False(t, e.Hovering())

	input.Dispatch(PointerEvent{Kind: EventOver, Target: nil})
	assert.False(t, e.Hovering())
}

func TestPressIsMomentary(t *testing.T) {
	e, _, input := newStartedEngine(t, DefaultConfig())
	assert.False(t, e.Pressed())

	sequence := []struct {
		kind EventKind
		want bool
	}{
		{EventDown, true},
		{EventUp, false},
		{EventDown, true},
		{EventUp, false},
		{EventUp, false},
		{EventDown, true},
		{EventDown, true},
		{EventUp, false},
	}
	for i, step := range sequence {
		input.Dispatch(PointerEvent{Kind: step.kind})
		assert.Equal(t, step.want, e.Pressed(), "step %d", i)
	}
}

func TestStartTwiceRunsOneLoop(t *testing.T) {
	frames := &countingScheduler{FrameQueue: NewFrameQueue()}
	input := NewDispatcher()
	e := NewEngine(frames, input, DefaultConfig())

	require.True(t, e.Start())
	require.True(t, e.Start())
	assert.Equal(t, 4, input.Listeners())
	assert.Equal(t, 1, frames.Pending())

	const n = 30
	frames.requests = 0
	for i := 0; i < n; i++ {
		assert.Equal(t, 1, frames.Advance())
	}
	assert.Equal(t, n, frames.requests)
	assert.Equal(t, uint64(n), e.Ticks())
}

func TestManualTickDoesNotForkLoop(t *testing.T) {
	e, frames, _ := newStartedEngine(t, DefaultConfig())

	e.Tick()
	e.Tick()
	assert.Equal(t, 1, frames.Pending())
	assert.Equal(t, 1, frames.Advance())
	assert.Equal(t, 1, frames.Pending())
}

func TestStopIsIdempotent(t *testing.T) {
	frames := NewFrameQueue()
	input := NewDispatcher()
	e := NewEngine(frames, input, DefaultConfig())

	assert.NotPanics(t, e.Stop, "stop before start")
	require.True(t, e.Start())

	e.Stop()
	assert.NotPanics(t, e.Stop)
	assert.Equal(t, 0, input.Listeners())
	assert.Equal(t, 0, frames.Pending())
	assert.False(t, e.Running())
}

func TestNothingChangesAfterStop(t *testing.T) {
	e, frames, input := newStartedEngine(t, originConfig())
	input.Dispatch(PointerEvent{Kind: EventMove, X: 100, Y: 100})
	frames.Advance()

	e.Stop()
	before := e.State()
	ticks := e.Ticks()

	for i := 0; i < 10; i++ {
		assert.Equal(t, 0, frames.Advance())
	}
	input.Dispatch(PointerEvent{Kind: EventMove, X: 5, Y: 5})
	input.Dispatch(PointerEvent{Kind: EventOver, Target: &testNode{tag: "a"}})
	input.Dispatch(PointerEvent{Kind: EventDown})
	e.Tick()

	assert.Equal(t, before, e.State())
	assert.Equal(t, ticks, e.Ticks())
}

func TestStopFromListenerPreventsPendingTick(t *testing.T) {
	frames := NewFrameQueue()
	input := NewDispatcher()
	e := NewEngine(frames, input, DefaultConfig())

	// A frame callback requested before the engine's first tick tears it down.
	frames.RequestFrame(e.Stop)
	require.True(t, e.Start())

	frames.Advance()
	assert.Equal(t, uint64(0), e.Ticks())
	assert.Equal(t, 0, frames.Pending())
}

type stoppingIndicator struct {
	stop func()
}

func (s stoppingIndicator) Place(dmath.Vec2) {
	s.stop()
}

func TestStopFromBubbleIndicatorLeavesNoFrame(t *testing.T) {
	frames := NewFrameQueue()
	input := NewDispatcher()
	var e *Engine
	cfg := DefaultConfig()
	cfg.Bubble = stoppingIndicator{stop: func() { e.Stop() }}
	e = NewEngine(frames, input, cfg)
	require.True(t, e.Start())

	frames.Advance()

	assert.False(t, e.Running())
	assert.Equal(t, uint64(1), e.Ticks())
	assert.Equal(t, 0, frames.Pending())
	assert.Equal(t, 0, input.Listeners())
}

func TestRestartResetsMountState(t *testing.T) {
	e, frames, input := newStartedEngine(t, DefaultConfig())
	input.Dispatch(PointerEvent{Kind: EventMove, X: 300, Y: 300})
	input.Dispatch(PointerEvent{Kind: EventDown})
	frames.Advance()

	e.Stop()
	require.True(t, e.Start())

	assert.Equal(t, dmath.NewVec2(-100, -100), e.Pointer())
	assert.Equal(t, dmath.NewVec2(-100, -100), e.Follower())
	assert.False(t, e.Pressed())
	assert.Equal(t, 4, input.Listeners())
	assert.Equal(t, 1, frames.Pending())
}

func TestStartWithoutSurfaceStaysAbsent(t *testing.T) {
	assert.False(t, NewEngine(nil, NewDispatcher(), DefaultConfig()).Start())
	assert.False(t, NewEngine(NewFrameQueue(), nil, DefaultConfig()).Start())

	e := NewEngine(nil, nil, DefaultConfig())
	e.Start()
	assert.NotPanics(t, e.Stop)
	assert.False(t, e.Running())
}
