package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/lumina/components"
	cfg "github.com/automoto/lumina/config"
	"github.com/automoto/lumina/cursor"
	"github.com/automoto/lumina/page"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	entry, ok := components.Page.First(ecs.World)
	if ok {
		pg := components.Page.Get(entry)
		scrollY := components.Scroll.Get(entry).Offset
		viewH := float64(screen.Bounds().Dy())

		root := pg.Root
		if pg.Overlay != nil {
			root = pg.Overlay
			scrollY = 0
		}
		cursorCfg := cursorClassifier(ecs)

		root.Walk(func(n *page.Node) bool {
			r := n.Bounds
			if !n.Pinned() {
				r = r.Offset(0, -scrollY)
			}
			if r.W == 0 || r.H == 0 || r.Bottom() < 0 || r.Y > viewH {
				return true
			}

			// Cyan default, green for interactive targets, yellow under the pointer
			c := color.RGBA{0, 255, 255, 255}
			if cursorCfg != nil && cursorCfg(n) {
				c = color.RGBA{0, 255, 0, 255}
			}
			if n == pg.Hovered {
				c = color.RGBA{255, 255, 0, 255}
			}
			vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, c, false)
			return true
		})
	}

	if entry, ok := components.Cursor.First(ecs.World); ok {
		c := components.Cursor.Get(entry)
		st := c.Engine.State()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"TPS %.0f  ticks %d  smoothing %.2f\ndot %.0f,%.0f  bubble %.1f,%.1f\nhover %v  pressed %v  radius %.1f",
			ebiten.ActualTPS(), c.Engine.Ticks(), c.Engine.Smoothing(),
			st.Immediate.X, st.Immediate.Y, st.Lagging.X, st.Lagging.Y,
			st.Hovering, st.Pressed, c.Visual.Radius()*c.Visual.Scale(),
		), 8, screen.Bounds().Dy()-56)
	}
}

// cursorClassifier returns the interactive test of the configured cursor,
// or nil when the scene has none.
func cursorClassifier(ecs *ecs.ECS) func(*page.Node) bool {
	if _, ok := components.Cursor.First(ecs.World); !ok {
		return nil
	}
	classifier := cursor.Classifier{
		Tags:    cfg.Cursor.InteractiveTags,
		Roles:   cfg.Cursor.InteractiveRoles,
		Classes: cfg.Cursor.InteractiveClasses,
	}
	return func(n *page.Node) bool { return classifier.IsInteractive(n) }
}
