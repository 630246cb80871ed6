package systems

import (
	"github.com/automoto/lumina/components"
	cfg "github.com/automoto/lumina/config"
	"github.com/automoto/lumina/cursor"
	"github.com/automoto/lumina/page"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// PointerSample is one frame of raw pointer state.
type PointerSample struct {
	X, Y    int
	Pressed bool
}

// UpdatePointer polls the mouse, resolves the node under it and forwards
// the frame's changes to the cursor's input surface.
// Must run after UpdateInput and before UpdateFrames.
func UpdatePointer(ecs *ecs.ECS) {
	x, y := ebiten.CursorPosition()
	sample := PointerSample{X: x, Y: y, Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)}

	var target *page.Node
	if entry, ok := components.Page.First(ecs.World); ok {
		pg := components.Page.Get(entry)
		scroll := components.Scroll.Get(entry)
		target = hitTest(pg, float64(x), float64(y), scroll.Offset)
		pg.Hovered = target
	}

	if entry, ok := components.Cursor.First(ecs.World); ok {
		dispatchPointer(components.Cursor.Get(entry), sample, target)
	}
}

// hitTest prefers the modal overlay when one is present.
func hitTest(pg *components.PageData, x, y, scrollY float64) *page.Node {
	if pg.Overlay != nil {
		if pg.OverlayIndex == nil || pg.OverlayIndex.Root() != pg.Overlay {
			pg.OverlayIndex = page.NewHitIndex(pg.Overlay, float64(cfg.C.Width), float64(cfg.C.Height))
		}
		return pg.OverlayIndex.At(x, y, 0)
	}
	if pg.Dirty || pg.Index == nil {
		pg.Index = page.NewHitIndex(pg.Root, float64(cfg.C.Width), float64(cfg.C.Height))
		pg.Dirty = false
	}
	return pg.Index.At(x, y, scrollY)
}

// dispatchPointer emits move, over, down and up events for whatever changed
// since the previous sample.
func dispatchPointer(c *components.CursorData, s PointerSample, target *page.Node) {
	if !c.Moved || s.X != c.LastX || s.Y != c.LastY {
		c.Input.Dispatch(cursor.PointerEvent{Kind: cursor.EventMove, X: float64(s.X), Y: float64(s.Y)})
		c.LastX, c.LastY = s.X, s.Y
		c.Moved = true
	}

	if target != c.Hover {
		c.Input.Dispatch(cursor.PointerEvent{
			Kind:   cursor.EventOver,
			X:      float64(s.X),
			Y:      float64(s.Y),
			Target: element(target),
		})
		c.Hover = target
	}

	switch {
	case s.Pressed && !c.Pressed:
		c.Input.Dispatch(cursor.PointerEvent{Kind: cursor.EventDown, X: float64(s.X), Y: float64(s.Y)})
	case !s.Pressed && c.Pressed:
		c.Input.Dispatch(cursor.PointerEvent{Kind: cursor.EventUp, X: float64(s.X), Y: float64(s.Y)})
	}
	c.Pressed = s.Pressed
}

// element keeps a missing node an untyped nil.
func element(n *page.Node) cursor.Element {
	if n == nil {
		return nil
	}
	return n
}
