package systems

import (
	cfg "github.com/automoto/lumina/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateShortcuts returns a system that fires the scene-level key
// shortcuts. Either callback may be nil.
func NewUpdateShortcuts(onSecretAdmin, onBack func()) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		if onSecretAdmin != nil && Action(ecs, cfg.ActionSecretAdmin).JustPressed {
			onSecretAdmin()
			return
		}
		if onBack != nil && Action(ecs, cfg.ActionBack).JustPressed {
			onBack()
		}
	}
}
