package scenes

import (
	"github.com/automoto/lumina/contact"
	"github.com/automoto/lumina/genai"
	"github.com/automoto/lumina/github"
	"github.com/automoto/lumina/media"
	"github.com/automoto/lumina/store"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jonboulle/clockwork"
)

const (
	PathHome  = "/"
	PathAdmin = "/admin"
)

// Scene is one mounted view.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	// Unmount stops the scene's cursor engine and background work.
	Unmount()
}

// Navigator switches the mounted view.
type Navigator interface {
	Navigate(path string)
}

// Session is the state that survives navigation for the lifetime of the window.
type Session struct {
	// SecretAccess is set by the hidden shortcut and gates /admin.
	SecretAccess bool
}

// App holds the services the scenes share.
type App struct {
	Store     store.ProjectStore // nil when the backend failed to open
	StoreKind store.Kind
	AI        *genai.Client
	GitHub    *github.Client
	Opener    contact.Opener
	Clock     clockwork.Clock
	Images    *media.Cache
	Session   *Session
}

// Resolve maps a requested path to the view that will be mounted.
func Resolve(path string, session *Session) string {
	switch path {
	case PathAdmin:
		if session == nil || !session.SecretAccess {
			return PathHome
		}
		return PathAdmin
	default:
		return PathHome
	}
}

// New creates the scene for path after resolving it.
func New(path string, nav Navigator, app *App) Scene {
	if Resolve(path, app.Session) == PathAdmin {
		return NewAdminScene(nav, app)
	}
	return NewHomeScene(nav, app)
}
