package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Default is the only render layer; renderers draw in registration order.
const Default ecs.LayerID = 0

// Config holds the logical screen size
type Config struct {
	Width  int
	Height int
}

// CursorConfig contains custom pointer configuration values
type CursorConfig struct {
	Smoothing float64    // Fraction of remaining distance the bubble closes per frame (0-1]
	Offscreen dmath.Vec2 // Where both points start before the first move

	DotRadius         float64
	BubbleRadius      float64
	BubbleHoverRadius float64
	PressScale        float64
	TransitionSeconds float32

	DotColor    color.RGBA
	BubbleColor color.RGBA
	BubbleFill  color.RGBA // fill at full hover

	InteractiveTags    []string
	InteractiveRoles   []string
	InteractiveClasses []string

	// Disabled skips the custom pointer entirely (touch devices, -nocursor)
	Disabled bool
}

// PageConfig contains scrolling and layout metrics for the home page
type PageConfig struct {
	ScrollSmoothing   float64 // Same follow rule as the cursor bubble
	WheelStep         float64 // Pixels per wheel notch
	KeyStep           float64 // Pixels per arrow key frame
	NavScrollSeconds  float32 // Duration of the eased jump to a section
	NavHeight         float64
	NavOffset         float64 // Space left above a section after a nav jump
	ContentWidth      float64
	SectionGap        float64
	CardHeight        float64
	CardGap           float64
	CardColumns       int
	MaxVisibleTags    int
	TickerSpeed       float64 // Pixels per frame
	TickerHeight      float64
	NoticeTopMargin   float64
	NoticePadding     float64
	DeleteNoticeSecs  float64
	SaveNoticeSecs    float64
	ContactNoticeSecs float64
}

// ThemeConfig is the palette of the site
type ThemeConfig struct {
	Background color.RGBA
	Card       color.RGBA
	CardHover  color.RGBA
	Border     color.RGBA
	Accent     color.RGBA
	Secondary  color.RGBA
	Text       color.RGBA
	Muted      color.RGBA
	Dim        color.RGBA
	Error      color.RGBA
	Success    color.RGBA
	Overlay    color.RGBA
}

// ContactConfig contains where contact form messages are sent
type ContactConfig struct {
	MailTo       string // mailto recipient
	PublicEmail  string // shown next to the form
	Availability string
}

// AdminConfig contains the hidden dashboard gate
type AdminConfig struct {
	Passphrase string
	Hint       string
}

// AIConfig contains the generative text endpoint settings
type AIConfig struct {
	Model   string
	BaseURL string
	Profile string // context sent with project suggestions
}

// StoreConfig selects the project backend
type StoreConfig struct {
	Kind    string // "gdata" or "sqlite"
	AppName string
	DBPath  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay   bool   // Draw hit boxes and cursor stats
	StartPath string // Route mounted at startup
}

// Global configuration instances
var C *Config
var Cursor CursorConfig
var Page PageConfig
var Theme ThemeConfig
var Contact ContactConfig
var Admin AdminConfig
var AI AIConfig
var Store StoreConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Transparent  = color.RGBA{}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
	}

	Theme = ThemeConfig{
		Background: color.RGBA{R: 18, G: 11, B: 46, A: 255},
		Card:       color.RGBA{R: 30, G: 22, B: 66, A: 255},
		CardHover:  color.RGBA{R: 40, G: 32, B: 84, A: 255},
		Border:     color.RGBA{R: 26, G: 26, B: 26, A: 26},
		Accent:     color.RGBA{R: 163, G: 255, B: 206, A: 255},
		Secondary:  color.RGBA{R: 120, G: 160, B: 255, A: 255},
		Text:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Muted:      color.RGBA{R: 156, G: 163, B: 175, A: 255},
		Dim:        color.RGBA{R: 107, G: 114, B: 128, A: 255},
		Error:      color.RGBA{R: 248, G: 113, B: 113, A: 255},
		Success:    color.RGBA{R: 74, G: 222, B: 128, A: 255},
		Overlay:    color.RGBA{R: 0, G: 0, B: 0, A: 200},
	}

	Cursor = CursorConfig{
		Smoothing: 0.15,
		Offscreen: dmath.NewVec2(-100, -100),

		DotRadius:         4,
		BubbleRadius:      16,
		BubbleHoverRadius: 40,
		PressScale:        0.75,
		TransitionSeconds: 0.3,

		DotColor:    Theme.Accent,
		BubbleColor: Theme.Accent,
		BubbleFill:  color.RGBA{R: 26, G: 40, B: 32, A: 40}, // premultiplied accent

		InteractiveTags:    []string{"A", "BUTTON", "INPUT", "TEXTAREA"},
		InteractiveRoles:   []string{"button"},
		InteractiveClasses: []string{"clickable"},
	}

	Page = PageConfig{
		ScrollSmoothing:   0.15,
		WheelStep:         60,
		KeyStep:           14,
		NavScrollSeconds:  0.6,
		NavHeight:         64,
		NavOffset:         80,
		ContentWidth:      1120,
		SectionGap:        96,
		CardHeight:        420,
		CardGap:           32,
		CardColumns:       3,
		MaxVisibleTags:    4,
		TickerSpeed:       1.2,
		TickerHeight:      48,
		NoticeTopMargin:   80,
		NoticePadding:     12,
		DeleteNoticeSecs:  3,
		SaveNoticeSecs:    5,
		ContactNoticeSecs: 4,
	}

	Contact = ContactConfig{
		MailTo:       "boulfaf2013@gmail.com",
		PublicEmail:  "zakaria.boulagjame@arkx.academy",
		Availability: "Available for Freelance & Consulting",
	}

	Admin = AdminConfig{
		Passphrase: "admin22@",
		Hint:       "Hint: admin22@",
	}

	AI = AIConfig{
		Model:   "gemini-2.5-flash",
		BaseURL: "https://generativelanguage.googleapis.com/v1beta",
		Profile: "AI Workflow & Automation Specialist. From Scientific Rigor to Business Scalability. n8n, Make.com, Zapier, Python, LLM agents.",
	}

	Store = StoreConfig{
		Kind:    "gdata",
		AppName: "lumina",
		DBPath:  "lumina.db",
	}

	Debug = DebugConfig{
		StartPath: "/",
	}
}
