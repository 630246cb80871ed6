package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/lumina/components"
	cfg "github.com/automoto/lumina/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the window settings stored on disk
type SavedSettings struct {
	Fullscreen      bool `json:"fullscreen"`
	ResolutionIndex int  `json:"resolutionIndex"`
	DebugOverlay    bool `json:"debugOverlay"`
}

// SettingsStore is the slice of gdata.Manager the settings need.
type SettingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var settingsStore SettingsStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Store.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	settingsStore = m
	return nil
}

// UsePersistence swaps the settings backend.
func UsePersistence(s SettingsStore) {
	settingsStore = s
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing is saved.
func LoadSettings() (*SavedSettings, error) {
	if settingsStore == nil {
		return nil, nil
	}

	data, err := settingsStore.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if settingsStore == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := settingsStore.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// CurrentSettings captures the live window state
func CurrentSettings() *SavedSettings {
	w, _ := ebiten.WindowSize()
	return &SavedSettings{
		Fullscreen:      ebiten.IsFullscreen(),
		ResolutionIndex: cfg.ResolutionIndexFor(w),
		DebugOverlay:    cfg.Debug.Overlay,
	}
}

// ApplySavedSettingsGlobal applies settings during startup before any scene exists
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	ebiten.SetFullscreen(saved.Fullscreen)

	// Apply resolution (only if not fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.Window.Resolutions) {
		res := cfg.Window.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}

	if saved.DebugOverlay {
		cfg.Debug.Overlay = true
	}
}

// UpdateWindow toggles fullscreen and the debug overlay and remembers the choice.
func UpdateWindow(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	changed := false

	if Action(ecs, cfg.ActionFullscreen).JustPressed {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
		changed = true
	}
	if Action(ecs, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		cfg.Debug.Overlay = settings.Debug
		changed = true
	}

	if changed {
		_ = SaveSettings(CurrentSettings())
	}
}

// GetOrCreateSettings returns the session settings singleton, seeded from config
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug: cfg.Debug.Overlay,
		})
	}
	return components.Settings.Get(entry)
}
