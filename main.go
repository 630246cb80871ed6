package main

import (
	"flag"
	"image"
	"log"
	"os"
	"runtime"

	"github.com/automoto/lumina/assets"
	"github.com/automoto/lumina/config"
	"github.com/automoto/lumina/contact"
	"github.com/automoto/lumina/fonts"
	"github.com/automoto/lumina/genai"
	"github.com/automoto/lumina/github"
	"github.com/automoto/lumina/media"
	"github.com/automoto/lumina/scenes"
	"github.com/automoto/lumina/store"
	"github.com/automoto/lumina/systems"
	"github.com/hajimehoshi/ebiten/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/jonboulle/clockwork"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
	app    *scenes.App
}

// Navigate unmounts the current scene and mounts the one for path.
func (g *Game) Navigate(path string) {
	if g.scene != nil {
		g.scene.Unmount()
	}
	g.scene = scenes.New(path, g, g.app)
}

func NewGame(app *scenes.App) *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
		app:    app,
	}
	g.Navigate(config.Debug.StartPath)

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.StringVar(&config.Debug.StartPath, "path", config.Debug.StartPath, "view to open at startup (/ or /admin)")
	flag.StringVar(&config.Store.Kind, "store", config.Store.Kind, "project store: gdata or sqlite")
	flag.StringVar(&config.Store.DBPath, "db", config.Store.DBPath, "sqlite database path")
	flag.BoolVar(&config.Cursor.Disabled, "nocursor", config.Cursor.Disabled, "use the system pointer")
	flag.Float64Var(&config.Cursor.Smoothing, "smoothing", config.Cursor.Smoothing, "cursor follow smoothing (0-1]")
	flag.BoolVar(&config.Debug.Overlay, "debug", config.Debug.Overlay, "draw hit boxes and cursor stats")
	flag.Parse()

	// No pointer to follow on touch platforms
	if runtime.GOOS == "android" || runtime.GOOS == "ios" {
		config.Cursor.Disabled = true
	}
	if config.Cursor.Smoothing <= 0 || config.Cursor.Smoothing > 1 {
		log.Fatalf("-smoothing must be in (0, 1], got %v", config.Cursor.Smoothing)
	}
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		config.AI.Model = model
	}

	ebiten.SetWindowTitle("Lumina")
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not compile shaders: %v", err)
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	clock := clockwork.NewRealClock()
	kind := store.Kind(config.Store.Kind)
	dsn := config.Store.AppName
	if kind == store.KindSQLite {
		dsn = config.Store.DBPath
	}
	projects, err := store.Open(kind, dsn, clock)
	if err != nil {
		log.Printf("Warning: Could not open %s project store: %v", kind, err)
		projects = nil
	} else {
		defer projects.Close()
	}

	ai := genai.NewClient(os.Getenv("API_KEY"), config.AI.Model)
	ai.BaseURL = config.AI.BaseURL

	app := &scenes.App{
		StoreKind: kind,
		AI:        ai,
		GitHub:    github.NewClient(),
		Opener:    contact.SystemOpener{},
		Clock:     clock,
		Session:   &scenes.Session{},
	}
	var images media.ImageSource
	if projects != nil {
		app.Store = projects
		images = projects
	}
	app.Images = media.NewCache(media.NewLoader(images), scenes.ThumbWidth, scenes.ThumbHeight)

	if err := ebiten.RunGame(NewGame(app)); err != nil {
		log.Fatal(err)
	}
}
