package systems

import (
	"math"

	"github.com/automoto/lumina/components"
	cfg "github.com/automoto/lumina/config"
	"github.com/automoto/lumina/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTicker slides every marquee band by its speed.
func UpdateTicker(ecs *ecs.ECS) {
	components.Ticker.Each(ecs.World, func(entry *donburi.Entry) {
		StepTicker(components.Ticker.Get(entry))
	})
}

// StepTicker advances a band one frame, wrapping inside [0, Span).
func StepTicker(t *components.TickerData) {
	if t.Span <= 0 {
		return
	}
	step := t.Speed
	if t.Reverse {
		step = -step
	}
	t.Offset = math.Mod(t.Offset+step, t.Span)
	if t.Offset < 0 {
		t.Offset += t.Span
	}
}

// DrawTicker draws each band as repeated copies of its text across the screen.
func DrawTicker(ecs *ecs.ECS, screen *ebiten.Image) {
	scrollY := pageScroll(ecs)
	face := fonts.Heading.Get()
	width := float64(screen.Bounds().Dx())

	components.Ticker.Each(ecs.World, func(entry *donburi.Entry) {
		t := components.Ticker.Get(entry)
		y := t.Y - scrollY
		h := cfg.Page.TickerHeight
		if y+h < 0 || y > float64(screen.Bounds().Dy()) || t.Span <= 0 {
			return
		}

		vector.FillRect(screen, 0, float32(y), float32(width), float32(h), cfg.Theme.Accent, false)
		baseline := int(y + h/2 + 10)
		for x := -t.Offset; x < width; x += t.Span {
			text.Draw(screen, t.Text, face, int(x), baseline, cfg.Theme.Background) //nolint:staticcheck // TODO: migrate to text/v2
		}
	})
}

func pageScroll(ecs *ecs.ECS) float64 {
	entry, ok := components.Page.First(ecs.World)
	if !ok {
		return 0
	}
	return components.Scroll.Get(entry).Offset
}
