package components

import "github.com/yohamta/donburi"

// TickerData is a horizontally scrolling marquee band
type TickerData struct {
	Text    string
	Y       float64 // Page coordinate of the band
	Offset  float64 // Current horizontal shift, wraps at Span
	Span    float64 // Width of one copy of Text
	Speed   float64 // Pixels per frame
	Reverse bool
}

var Ticker = donburi.NewComponentType[TickerData]()
