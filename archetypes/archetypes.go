package archetypes

import (
	"github.com/automoto/lumina/components"
	cfg "github.com/automoto/lumina/config"
	"github.com/automoto/lumina/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Cursor = newArchetype(
		tags.Cursor,
		components.Cursor,
	)
	Page = newArchetype(
		tags.Page,
		components.Page,
		components.Scroll,
	)
	Ticker = newArchetype(
		tags.Ticker,
		components.Ticker,
	)
	Notice = newArchetype(
		tags.Notice,
		components.Notice,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
