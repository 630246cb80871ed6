package components

import (
	"github.com/automoto/lumina/page"
	"github.com/yohamta/donburi"
)

// PageData holds the view tree of the mounted scene and its hit index
type PageData struct {
	Root  *page.Node
	Index *page.HitIndex

	Hovered *page.Node // node under the pointer this frame
	Pressed *page.Node // node under the pointer when the button went down

	// Overlay nodes mirror widget bounds (forms, dialogs). The tree is
	// replaced only when a widget moves, so its index is kept per root.
	Overlay      *page.Node
	OverlayIndex *page.HitIndex

	Dirty bool // layout changed; rebuild the index
}

var Page = donburi.NewComponentType[PageData]()
