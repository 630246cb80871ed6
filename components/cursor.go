package components

import (
	"github.com/automoto/lumina/cursor"
	"github.com/automoto/lumina/page"
	"github.com/yohamta/donburi"
)

// CursorData is the custom pointer of the mounted scene. The engine owns the
// follower state; the rest is the host surface it runs on.
type CursorData struct {
	Engine *cursor.Engine
	Frames *cursor.FrameQueue
	Input  *cursor.Dispatcher
	Visual *cursor.Visual

	Hover   *page.Node // last target sent as an over event
	LastX   int
	LastY   int
	Pressed bool // left button state last frame
	Moved   bool // at least one move was dispatched
}

var Cursor = donburi.NewComponentType[CursorData]()
