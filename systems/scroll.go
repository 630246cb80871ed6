package systems

import (
	"math"

	"github.com/automoto/lumina/components"
	cfg "github.com/automoto/lumina/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScroll applies wheel, key and nav-jump input to the page offset.
func UpdateScroll(ecs *ecs.ECS) {
	entry, ok := components.Page.First(ecs.World)
	if !ok {
		return
	}
	scroll := components.Scroll.Get(entry)
	pg := components.Page.Get(entry)
	if pg.Overlay != nil {
		// Modal forms freeze the page underneath.
		return
	}

	input := getOrCreateInput(ecs)
	StepScroll(scroll, scrollDelta(input, scroll), frameSeconds())
}

// scrollDelta converts this frame's input into a change of the target offset.
func scrollDelta(input *components.InputData, scroll *components.ScrollData) float64 {
	view := float64(cfg.C.Height) - cfg.Page.NavHeight
	delta := -input.Wheel * cfg.Page.WheelStep

	if GetAction(input, cfg.ActionScrollUp).Pressed {
		delta -= cfg.Page.KeyStep
	}
	if GetAction(input, cfg.ActionScrollDown).Pressed {
		delta += cfg.Page.KeyStep
	}
	if GetAction(input, cfg.ActionPageUp).JustPressed {
		delta -= view * 0.9
	}
	if GetAction(input, cfg.ActionPageDown).JustPressed {
		delta += view * 0.9
	}
	if GetAction(input, cfg.ActionTop).JustPressed {
		delta = -scroll.Target
	}
	if GetAction(input, cfg.ActionBottom).JustPressed {
		delta = scroll.Max - scroll.Target
	}
	return delta
}

// StepScroll advances the scroll state by one frame. Manual input cancels a
// running jump; the offset then closes ScrollSmoothing of the gap to the
// target, the same follow rule as the camera.
func StepScroll(s *components.ScrollData, delta float64, dt float32) {
	if delta != 0 {
		s.Jump = nil
		s.Target += delta
	}
	if s.Jump != nil {
		v, done := s.Jump.Update(dt)
		s.Target = float64(v)
		if done {
			s.Jump = nil
		}
	}

	s.Target = clampScroll(s.Target, s.Max)
	s.Offset += (s.Target - s.Offset) * cfg.Page.ScrollSmoothing
	if math.Abs(s.Target-s.Offset) < 0.5 {
		s.Offset = s.Target
	}
}

func clampScroll(v, max float64) float64 {
	return math.Max(0, math.Min(max, v))
}

// ScrollTo eases the page so the node with the given id sits just below the
// navbar. Unknown ids are ignored.
func ScrollTo(ecs *ecs.ECS, id string) {
	entry, ok := components.Page.First(ecs.World)
	if !ok {
		return
	}
	pg := components.Page.Get(entry)
	node := pg.Root.Find(id)
	if node == nil {
		return
	}
	JumpTo(components.Scroll.Get(entry), node.Bounds.Y-cfg.Page.NavOffset)
}

// JumpTo starts an eased jump from the current offset to y.
func JumpTo(s *components.ScrollData, y float64) {
	y = clampScroll(y, s.Max)
	s.Jump = gween.New(float32(s.Offset), float32(y), cfg.Page.NavScrollSeconds, ease.InOutCubic)
}

// SetScrollExtent updates the scrollable range after the layout changed.
func SetScrollExtent(ecs *ecs.ECS) {
	entry, ok := components.Page.First(ecs.World)
	if !ok {
		return
	}
	pg := components.Page.Get(entry)
	scroll := components.Scroll.Get(entry)
	scroll.Max = math.Max(0, pg.Root.Extent()-float64(cfg.C.Height))
	scroll.Target = clampScroll(scroll.Target, scroll.Max)
	pg.Dirty = true
}
