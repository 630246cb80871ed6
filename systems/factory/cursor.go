package factory

import (
	"github.com/automoto/lumina/archetypes"
	"github.com/automoto/lumina/components"
	cfg "github.com/automoto/lumina/config"
	"github.com/automoto/lumina/cursor"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EngineConfig converts the global cursor settings into engine options.
func EngineConfig(c cfg.CursorConfig) cursor.Config {
	return cursor.Config{
		Smoothing: c.Smoothing,
		Offscreen: c.Offscreen,
		Classifier: cursor.Classifier{
			Tags:    c.InteractiveTags,
			Roles:   c.InteractiveRoles,
			Classes: c.InteractiveClasses,
		},
	}
}

// CreateCursor spawns the custom pointer and starts its engine.
// It returns nil when the pointer is disabled or the engine refuses to start.
func CreateCursor(ecs *ecs.ECS, c cfg.CursorConfig) *donburi.Entry {
	if c.Disabled {
		return nil
	}

	frames := cursor.NewFrameQueue()
	input := cursor.NewDispatcher()
	engine := cursor.NewEngine(frames, input, EngineConfig(c))
	if !engine.Start() {
		return nil
	}

	entry := archetypes.Cursor.Spawn(ecs)
	components.Cursor.SetValue(entry, components.CursorData{
		Engine: engine,
		Frames: frames,
		Input:  input,
		Visual: cursor.NewVisual(cursor.VisualConfig{
			Radius:      c.BubbleRadius,
			HoverRadius: c.BubbleHoverRadius,
			PressScale:  c.PressScale,
			Duration:    c.TransitionSeconds,
		}),
	})
	return entry
}
