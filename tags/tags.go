package tags

import "github.com/yohamta/donburi"

var (
	Cursor = donburi.NewTag().SetName("Cursor")
	Page   = donburi.NewTag().SetName("Page")
	Ticker = donburi.NewTag().SetName("Ticker")
	Notice = donburi.NewTag().SetName("Notice")
)
