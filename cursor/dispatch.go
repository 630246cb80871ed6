package cursor

// EventKind is the kind of pointer event delivered by the input surface.
type EventKind int

const (
	EventMove EventKind = iota
	EventOver
	EventDown
	EventUp
	eventKindCount // Must be last - used for array sizing
)

// PointerEvent carries absolute screen coordinates for moves and the element
// under the pointer for overs.
type PointerEvent struct {
	Kind   EventKind
	X, Y   float64
	Target Element
}

type listener struct {
	id uint32
	fn func(PointerEvent)
}

// Dispatcher is the input surface: hosts feed raw pointer events into Dispatch,
// consumers register per-kind listeners with Listen.
type Dispatcher struct {
	listeners [eventKindCount][]listener
	scratch   []listener
	depth     int
	nextID    uint32
}

// NewDispatcher creates a dispatcher with no listeners.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Handle unregisters a listener added with Listen.
type Handle struct {
	id   uint32
	kind EventKind
	d    *Dispatcher
}

// Remove unregisters the listener. Removing twice is a no-op.
func (h Handle) Remove() {
	if h.d == nil {
		return
	}
	h.d.remove(h.kind, h.id)
}

// Listen registers fn for events of the given kind.
func (d *Dispatcher) Listen(kind EventKind, fn func(PointerEvent)) Handle {
	if kind < 0 || kind >= eventKindCount || fn == nil {
		return Handle{}
	}
	d.nextID++
	d.listeners[kind] = append(d.listeners[kind], listener{id: d.nextID, fn: fn})
	return Handle{id: d.nextID, kind: kind, d: d}
}

// Dispatch delivers ev to every listener registered for its kind. A listener
// removed by an earlier listener in the same dispatch does not fire.
func (d *Dispatcher) Dispatch(ev PointerEvent) {
	if ev.Kind < 0 || ev.Kind >= eventKindCount {
		return
	}
	// Nested dispatches get their own batch so the outer iteration stays intact.
	var batch []listener
	if d.depth == 0 {
		batch = d.scratch[:0]
	}
	batch = append(batch, d.listeners[ev.Kind]...)

	d.depth++
	for _, l := range batch {
		if !d.registered(ev.Kind, l.id) {
			continue
		}
		l.fn(ev)
	}
	d.depth--

	if d.depth == 0 {
		clear(batch)
		d.scratch = batch[:0]
	}
}

// Listeners returns the total number of registered listeners.
func (d *Dispatcher) Listeners() int {
	n := 0
	for i := range d.listeners {
		n += len(d.listeners[i])
	}
	return n
}

func (d *Dispatcher) registered(kind EventKind, id uint32) bool {
	for _, l := range d.listeners[kind] {
		if l.id == id {
			return true
		}
	}
	return false
}

func (d *Dispatcher) remove(kind EventKind, id uint32) {
	s := d.listeners[kind]
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = listener{}
			d.listeners[kind] = s[:len(s)-1]
			return
		}
	}
}
