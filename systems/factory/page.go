package factory

import (
	"math"

	"github.com/automoto/lumina/archetypes"
	"github.com/automoto/lumina/components"
	cfg "github.com/automoto/lumina/config"
	"github.com/automoto/lumina/page"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePage spawns the view tree of a scene together with its scroll state.
func CreatePage(ecs *ecs.ECS, root *page.Node) *donburi.Entry {
	w, h := float64(cfg.C.Width), float64(cfg.C.Height)

	entry := archetypes.Page.Spawn(ecs)
	components.Page.SetValue(entry, components.PageData{
		Root:  root,
		Index: page.NewHitIndex(root, w, h),
	})
	components.Scroll.SetValue(entry, components.ScrollData{
		Max: math.Max(0, root.Extent()-h),
	})
	return entry
}
