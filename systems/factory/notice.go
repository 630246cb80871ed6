package factory

import (
	"github.com/automoto/lumina/archetypes"
	"github.com/automoto/lumina/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateNotice spawns the empty notice banner of a scene
func CreateNotice(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Notice.Spawn(ecs)
	components.Notice.SetValue(entry, components.NoticeData{})
	return entry
}
