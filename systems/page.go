package systems

import (
	"github.com/automoto/lumina/components"
	"github.com/automoto/lumina/page"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePage turns a press and release over the same node into a click.
// Must run after UpdatePointer.
func UpdatePage(ecs *ecs.ECS) {
	entry, ok := components.Page.First(ecs.World)
	if !ok {
		return
	}
	pg := components.Page.Get(entry)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		Press(pg)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		Release(pg)
	}
}

// Press remembers the node the press started on.
func Press(pg *components.PageData) {
	pg.Pressed = pg.Hovered
}

// Release runs the click handler when the pointer is released over the
// action the press started on. It reports whether a handler ran.
func Release(pg *components.PageData) bool {
	pressed := pg.Pressed
	pg.Pressed = nil
	if pressed == nil || pg.Hovered == nil {
		return false
	}

	action := actionNode(pressed)
	if action == nil || !action.Contains(pg.Hovered) {
		return false
	}
	action.OnClick()
	return true
}

// actionNode is the nearest node at or above n that handles clicks.
func actionNode(n *page.Node) *page.Node {
	for cur := n; cur != nil; {
		if cur.OnClick != nil {
			return cur
		}
		parent, _ := cur.Parent().(*page.Node)
		cur = parent
	}
	return nil
}

// DrawPage paints the view tree: scrolling content first, then pinned nodes
// on top of it.
func DrawPage(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Page.First(ecs.World)
	if !ok {
		return
	}
	pg := components.Page.Get(entry)
	scrollY := components.Scroll.Get(entry).Offset
	viewH := float64(screen.Bounds().Dy())

	paint := func(pinned bool) {
		pg.Root.Walk(func(n *page.Node) bool {
			if n.Paint == nil || n.Pinned() != pinned {
				return true
			}
			r := n.Bounds
			if !pinned {
				r = r.Offset(0, -scrollY)
			}
			if r.Bottom() < 0 || r.Y > viewH {
				return true
			}
			n.Paint(screen, r, hovered(pg, n))
			return true
		})
	}
	paint(false)
	paint(true)
}

// DrawOverlay paints the paint functions of the modal overlay tree, if any.
func DrawOverlay(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Page.First(ecs.World)
	if !ok {
		return
	}
	pg := components.Page.Get(entry)
	if pg.Overlay == nil {
		return
	}
	pg.Overlay.Walk(func(n *page.Node) bool {
		if n.Paint != nil {
			n.Paint(screen, n.Bounds, hovered(pg, n))
		}
		return true
	})
}

func hovered(pg *components.PageData, n *page.Node) bool {
	return pg.Hovered != nil && n.Contains(pg.Hovered)
}
