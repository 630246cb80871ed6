package factory

import (
	"github.com/automoto/lumina/archetypes"
	"github.com/automoto/lumina/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTicker spawns a marquee band at page coordinate y. span is the drawn
// width of one copy of text including its trailing gap.
func CreateTicker(ecs *ecs.ECS, text string, y, span, speed float64, reverse bool) *donburi.Entry {
	entry := archetypes.Ticker.Spawn(ecs)

	components.Ticker.SetValue(entry, components.TickerData{
		Text:    text,
		Y:       y,
		Span:    span,
		Speed:   speed,
		Reverse: reverse,
	})

	return entry
}
