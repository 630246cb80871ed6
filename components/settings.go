package components

import "github.com/yohamta/donburi"

// SettingsData holds session-wide toggles
type SettingsData struct {
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()
