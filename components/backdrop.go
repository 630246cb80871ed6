package components

import "github.com/yohamta/donburi"

// BackdropData drives the slow drift of the background glow
type BackdropData struct {
	Phase float64 // seconds since the scene mounted
}

var Backdrop = donburi.NewComponentType[BackdropData]()
