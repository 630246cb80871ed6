package scenes

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/automoto/lumina/components"
	"github.com/automoto/lumina/contact"
	cfg "github.com/automoto/lumina/config"
	"github.com/automoto/lumina/fonts"
	"github.com/automoto/lumina/portfolio"
	"github.com/automoto/lumina/systems"
	"github.com/automoto/lumina/systems/factory"
	"github.com/automoto/lumina/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const loadTimeout = 10 * time.Second

// HomeScene is the public portfolio page.
type HomeScene struct {
	ecs  *ecs.ECS
	nav  Navigator
	app  *App
	once sync.Once
	jobs jobs

	page    *donburi.Entry
	content homeContent

	contactUI   *ui.ContactUI
	contactOpen bool

	next string
}

func NewHomeScene(nav Navigator, app *App) *HomeScene {
	return &HomeScene{
		nav: nav,
		app: app,
		content: homeContent{
			profile: portfolio.DefaultProfile(),
			loading: true,
		},
	}
}

func (s *HomeScene) Update() {
	s.once.Do(s.configure)

	s.jobs.Drain()

	pg := components.Page.Get(s.page)
	if s.contactOpen {
		s.contactUI.Update()
		pg.Overlay = s.contactUI.Targets()
	} else {
		pg.Overlay = nil
	}

	s.ecs.Update()

	if s.next != "" {
		next := s.next
		s.next = ""
		s.nav.Navigate(next)
	}
}

func (s *HomeScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Theme.Background)
	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *HomeScene) Unmount() {
	s.jobs.Close()
	if s.ecs != nil {
		systems.StopCursor(s.ecs)
	}
}

func (s *HomeScene) configure() {
	s.ecs = ecs.NewECS(donburi.NewWorld())

	s.ecs.AddSystem(systems.UpdateInput)
	s.ecs.AddSystem(systems.UpdateBackdrop)
	s.ecs.AddSystem(systems.UpdatePointer)
	s.ecs.AddSystem(systems.UpdateFrames)
	s.ecs.AddSystem(systems.UpdateCursorVisual)
	s.ecs.AddSystem(systems.UpdateScroll)
	s.ecs.AddSystem(systems.UpdatePage)
	s.ecs.AddSystem(systems.UpdateTicker)
	s.ecs.AddSystem(systems.NewUpdateNotice(s.app.Clock))
	s.ecs.AddSystem(systems.UpdateWindow)
	s.ecs.AddSystem(systems.ShowSystemCursor)
	s.ecs.AddSystem(systems.NewUpdateShortcuts(s.openAdmin, s.closeContact))

	s.ecs.AddRenderer(cfg.Default, systems.DrawBackdrop)
	s.ecs.AddRenderer(cfg.Default, systems.DrawPage)
	s.ecs.AddRenderer(cfg.Default, systems.DrawTicker)
	s.ecs.AddRenderer(cfg.Default, systems.DrawOverlay)
	s.ecs.AddRenderer(cfg.Default, s.drawContact)
	s.ecs.AddRenderer(cfg.Default, systems.DrawNotice)
	s.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	s.ecs.AddRenderer(cfg.Default, systems.DrawCursor)

	s.contactUI = ui.NewContactUI(s.sendMessage, s.closeContact)

	layout := s.layout()
	s.page = factory.CreatePage(s.ecs, layout.root)
	span := float64(fonts.Width(fonts.Heading.Get(), layout.ticker)) + 32
	factory.CreateTicker(s.ecs, layout.ticker, layout.tickerY, span, cfg.Page.TickerSpeed, false)
	factory.CreateNotice(s.ecs)
	factory.CreateCursor(s.ecs, cfg.Cursor)

	s.loadProjects()
}

func (s *HomeScene) actions() homeActions {
	return homeActions{
		scrollTo: func(id string) { systems.ScrollTo(s.ecs, id) },
		top:      func() { systems.JumpTo(components.Scroll.Get(s.page), 0) },
		open:     func(url string) { s.openURL(url) },
		contact:  s.openContact,
	}
}

func (s *HomeScene) layout() homeLayout {
	thumb := func(string) *ebiten.Image { return nil }
	if s.app.Images != nil {
		thumb = s.app.Images.Get
	}
	return layoutHome(s.content, s.actions(), thumb)
}

// relayout swaps in a tree built from the current content.
func (s *HomeScene) relayout() {
	pg := components.Page.Get(s.page)
	pg.Root = s.layout().root
	pg.Hovered = nil
	pg.Pressed = nil
	systems.SetScrollExtent(s.ecs)
}

func (s *HomeScene) loadProjects() {
	st := s.app.Store
	if st == nil {
		s.content.loading = false
		s.content.offline = true
		s.content.projects = portfolio.SeedProjects()
		s.relayout()
		return
	}

	s.jobs.Go(func() func() {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		projects, err := st.List(ctx)
		if err != nil {
			log.Printf("Warning: Could not load projects: %v", err)
		}
		pingErr := st.Ping(ctx)
		if pingErr != nil {
			log.Printf("Warning: Project store unreachable: %v", pingErr)
		}

		return func() {
			s.content.loading = false
			s.content.offline = pingErr != nil
			s.content.projects = portfolio.Showcase(projects)
			s.relayout()
		}
	})
}

// openURL hands url to the desktop and reports whether that worked.
func (s *HomeScene) openURL(url string) bool {
	if url == "" || s.app.Opener == nil {
		return false
	}
	if err := s.app.Opener.Open(url); err != nil {
		log.Printf("Warning: Could not open %s: %v", url, err)
		systems.ShowNotice(s.ecs, s.app.Clock.Now(), "Could not open the link.", components.NoticeError, 0)
		return false
	}
	return true
}

func (s *HomeScene) openContact() {
	s.contactOpen = true
	s.contactUI.SetStatus("")
}

func (s *HomeScene) closeContact() {
	s.contactOpen = false
}

func (s *HomeScene) sendMessage(msg contact.Message) {
	opened := s.openURL(contact.MailtoURL(cfg.Contact.MailTo, msg))
	s.contactUI.Clear()
	s.contactOpen = false
	if !opened {
		return
	}
	systems.ShowNotice(s.ecs, s.app.Clock.Now(), "Opening your email client to send the message...",
		components.NoticeInfo, seconds(cfg.Page.ContactNoticeSecs))
}

func (s *HomeScene) openAdmin() {
	s.app.Session.SecretAccess = true
	s.next = PathAdmin
}

func (s *HomeScene) drawContact(_ *ecs.ECS, screen *ebiten.Image) {
	if !s.contactOpen {
		return
	}
	dimScreen(screen)
	s.contactUI.UI.Draw(screen)
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}

func dimScreen(screen *ebiten.Image) {
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), cfg.Theme.Overlay, false)
}
