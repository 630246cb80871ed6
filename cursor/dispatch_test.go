package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchRoutesByKind(t *testing.T) {
	d := NewDispatcher()
	var moves, downs int
	d.Listen(EventMove, func(PointerEvent) { moves++ })
	d.Listen(EventDown, func(PointerEvent) { downs++ })

	d.Dispatch(PointerEvent{Kind: EventMove, X: 1, Y: 2})
	d.Dispatch(PointerEvent{Kind: EventMove})
	d.Dispatch(PointerEvent{Kind: EventDown})
	d.Dispatch(PointerEvent{Kind: EventUp})

	assert.Equal(t, 2, moves)
	assert.Equal(t, 1, downs)
}

func TestHandleRemove(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	h := d.Listen(EventOver, func(PointerEvent) { calls++ })
	assert.Equal(t, 1, d.Listeners())

	h.Remove()
	h.Remove()
	d.Dispatch(PointerEvent{Kind: EventOver})

	assert.Equal(t, 0, d.Listeners())
	assert.Equal(t, 0, calls)
	assert.NotPanics(t, Handle{}.Remove)
}

func TestListenerRemovedMidDispatchDoesNotFire(t *testing.T) {
	d := NewDispatcher()
	var second Handle
	secondCalls := 0

	d.Listen(EventUp, func(PointerEvent) { second.Remove() })
	second = d.Listen(EventUp, func(PointerEvent) { secondCalls++ })

	d.Dispatch(PointerEvent{Kind: EventUp})
	assert.Equal(t, 0, secondCalls)
	assert.Equal(t, 1, d.Listeners())
}

func TestNestedDispatch(t *testing.T) {
	d := NewDispatcher()
	var got []EventKind
	d.Listen(EventDown, func(ev PointerEvent) {
		got = append(got, ev.Kind)
		d.Dispatch(PointerEvent{Kind: EventUp})
	})
	d.Listen(EventDown, func(ev PointerEvent) { got = append(got, ev.Kind) })
	d.Listen(EventUp, func(ev PointerEvent) { got = append(got, ev.Kind) })

	d.Dispatch(PointerEvent{Kind: EventDown})
	assert.Equal(t, []EventKind{EventDown, EventUp, EventDown}, got)
}

func TestListenIgnoresInvalidInput(t *testing.T) {
	d := NewDispatcher()
	d.Listen(EventKind(42), func(PointerEvent) {})
	d.Listen(EventMove, nil)

	assert.Equal(t, 0, d.Listeners())
	assert.NotPanics(t, func() { d.Dispatch(PointerEvent{Kind: EventKind(-1)}) })
}
