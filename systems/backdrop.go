package systems

import (
	"image/color"
	"math"

	"github.com/automoto/lumina/assets"
	"github.com/automoto/lumina/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// glow is one background blob. Positions and radius are fractions of the
// screen width and height.
type glow struct {
	x, y, r float64
	color   color.RGBA // premultiplied
	delay   float64    // seconds the drift lags behind
}

var glows = []glow{
	{x: 0.15, y: 0.05, r: 0.25, color: color.RGBA{R: 18, G: 6, B: 27, A: 51}},
	{x: 0.8, y: 0.9, r: 0.3, color: color.RGBA{R: 6, G: 12, B: 28, A: 51}, delay: 2},
	{x: 0.4, y: 0.5, r: 0.1, color: color.RGBA{R: 8, G: 13, B: 10, A: 13}, delay: 1},
}

const (
	driftPixels = 20
	driftPeriod = 6 // seconds
)

// UpdateBackdrop advances the drift of the background glow.
func UpdateBackdrop(ecs *ecs.ECS) {
	b := getOrCreateBackdrop(ecs)
	b.Phase += float64(frameSeconds())
}

// GlowOffset is the vertical drift of a blob at phase seconds.
func GlowOffset(phase, delay float64) float64 {
	return driftPixels * math.Sin(2*math.Pi*(phase-delay)/driftPeriod)
}

// DrawBackdrop paints the fixed background glow. It does nothing when the
// shader failed to compile.
func DrawBackdrop(ecs *ecs.ECS, screen *ebiten.Image) {
	if assets.GlowShader == nil {
		return
	}
	phase := getOrCreateBackdrop(ecs).Phase
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	for _, g := range glows {
		r := g.r * w
		cx, cy := g.x*w, g.y*h+GlowOffset(phase, g.delay)
		size := int(2 * r)

		op := &ebiten.DrawRectShaderOptions{}
		op.GeoM.Translate(cx-r, cy-r)
		op.Uniforms = map[string]any{
			"Center": []float32{float32(cx), float32(cy)},
			"Radius": float32(r),
			"Color": []float32{
				float32(g.color.R) / 255, float32(g.color.G) / 255,
				float32(g.color.B) / 255, float32(g.color.A) / 255,
			},
		}
		screen.DrawRectShader(size, size, assets.GlowShader, op)
	}
}

func getOrCreateBackdrop(ecs *ecs.ECS) *components.BackdropData {
	entry, ok := components.Backdrop.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Backdrop))
	}
	return components.Backdrop.Get(entry)
}
