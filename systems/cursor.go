package systems

import (
	"image/color"

	"github.com/automoto/lumina/components"
	cfg "github.com/automoto/lumina/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFrames presents one frame to the cursor's scheduler, which runs the
// engine tick requested on the previous frame.
func UpdateFrames(ecs *ecs.ECS) {
	entry, ok := components.Cursor.First(ecs.World)
	if !ok {
		return
	}
	components.Cursor.Get(entry).Frames.Advance()
}

// UpdateCursorVisual moves the bubble's size and fill toward the current
// interaction state.
func UpdateCursorVisual(ecs *ecs.ECS) {
	entry, ok := components.Cursor.First(ecs.World)
	if !ok {
		return
	}
	c := components.Cursor.Get(entry)
	state := c.Engine.State()
	c.Visual.Retarget(state.Hovering, state.Pressed)
	c.Visual.Update(frameSeconds())
}

// frameSeconds is the duration of one update at the current rate. With
// SyncWithFPS the rate follows the display, so the measured TPS is used.
func frameSeconds() float32 {
	tps := ebiten.ActualTPS()
	if tps < 1 {
		tps = 60
	}
	return float32(1 / tps)
}

// DrawCursor draws the bubble at the lagging point and the dot at the raw
// pointer. Register it as the last renderer so it stays on top.
func DrawCursor(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Cursor.First(ecs.World)
	if !ok {
		return
	}
	c := components.Cursor.Get(entry)
	if !c.Moved {
		return
	}
	state := c.Engine.State()

	radius := float32(c.Visual.Radius() * c.Visual.Scale())
	bx, by := float32(state.Lagging.X), float32(state.Lagging.Y)
	if fill := c.Visual.Fill(); fill > 0 {
		vector.FillCircle(screen, bx, by, radius, scaleAlpha(cfg.Cursor.BubbleFill, fill), true)
	}
	vector.StrokeCircle(screen, bx, by, radius, 1.5, cfg.Cursor.BubbleColor, true)

	dot := float32(cfg.Cursor.DotRadius)
	if state.Hovering {
		dot /= 2
	}
	vector.FillCircle(screen, float32(state.Immediate.X), float32(state.Immediate.Y), dot, cfg.Cursor.DotColor, true)
}

func scaleAlpha(c color.RGBA, f float64) color.RGBA {
	// Premultiplied: every channel scales with alpha.
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}

// ShowSystemCursor hides the OS pointer while a custom one is running.
func ShowSystemCursor(ecs *ecs.ECS) {
	mode := ebiten.CursorModeVisible
	if entry, ok := components.Cursor.First(ecs.World); ok && components.Cursor.Get(entry).Engine.Running() {
		mode = ebiten.CursorModeHidden
	}
	ebiten.SetCursorMode(mode)
}

// StopCursor stops the scene's engine and gives the pointer back to the OS.
func StopCursor(ecs *ecs.ECS) {
	if entry, ok := components.Cursor.First(ecs.World); ok {
		components.Cursor.Get(entry).Engine.Stop()
	}
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}
