package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScrollData tracks the vertical page offset
type ScrollData struct {
	Offset float64 // Smoothed offset applied when drawing
	Target float64 // Where wheel and keys want the page to be
	Max    float64 // Largest valid offset for the current layout

	// Jump eases Target toward a section after a nav click; nil otherwise
	Jump *gween.Tween
}

var Scroll = donburi.NewComponentType[ScrollData]()
