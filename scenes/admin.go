package scenes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/automoto/lumina/components"
	cfg "github.com/automoto/lumina/config"
	"github.com/automoto/lumina/fonts"
	"github.com/automoto/lumina/genai"
	"github.com/automoto/lumina/github"
	"github.com/automoto/lumina/page"
	"github.com/automoto/lumina/store"
	"github.com/automoto/lumina/systems"
	"github.com/automoto/lumina/systems/factory"
	"github.com/automoto/lumina/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	storeTimeout = 15 * time.Second
	aiTimeout    = 90 * time.Second
)

var errNoStore = errors.New("project store unavailable")

// AdminScene is the hidden dashboard: a passphrase gate, then the project editor.
type AdminScene struct {
	ecs  *ecs.ECS
	nav  Navigator
	app  *App
	once sync.Once
	jobs jobs

	page       *donburi.Entry
	login      *ui.LoginUI
	dash       *ui.DashboardUI
	authorized bool
	busy       *page.Node

	ed      editor
	loading string

	next string
}

func NewAdminScene(nav Navigator, app *App) *AdminScene {
	return &AdminScene{nav: nav, app: app}
}

func (s *AdminScene) Update() {
	s.once.Do(s.configure)

	s.jobs.Drain()

	pg := components.Page.Get(s.page)
	switch {
	case s.jobs.Busy():
		// Nothing under the busy overlay can be hovered or clicked.
		pg.Overlay = s.busy
	case s.authorized:
		s.dash.Update()
		pg.Overlay = s.dash.Targets()
	default:
		s.login.Update()
		pg.Overlay = s.login.Targets()
	}

	s.ecs.Update()

	if s.next != "" {
		next := s.next
		s.next = ""
		s.nav.Navigate(next)
	}
}

func (s *AdminScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Theme.Background)
	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *AdminScene) Unmount() {
	s.jobs.Close()
	if s.ecs != nil {
		systems.StopCursor(s.ecs)
	}
}

func (s *AdminScene) configure() {
	s.ecs = ecs.NewECS(donburi.NewWorld())

	s.ecs.AddSystem(systems.UpdateInput)
	s.ecs.AddSystem(systems.UpdateBackdrop)
	s.ecs.AddSystem(systems.UpdatePointer)
	s.ecs.AddSystem(systems.UpdateFrames)
	s.ecs.AddSystem(systems.UpdateCursorVisual)
	s.ecs.AddSystem(systems.NewUpdateNotice(s.app.Clock))
	s.ecs.AddSystem(systems.UpdateWindow)
	s.ecs.AddSystem(systems.ShowSystemCursor)
	s.ecs.AddSystem(systems.NewUpdateShortcuts(nil, s.goHome))

	s.ecs.AddRenderer(cfg.Default, systems.DrawBackdrop)
	s.ecs.AddRenderer(cfg.Default, systems.DrawPage)
	s.ecs.AddRenderer(cfg.Default, s.drawForms)
	s.ecs.AddRenderer(cfg.Default, s.drawBusy)
	s.ecs.AddRenderer(cfg.Default, systems.DrawNotice)
	s.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	s.ecs.AddRenderer(cfg.Default, systems.DrawCursor)

	s.login = ui.NewLoginUI(s.submitPassphrase, s.goHome)
	s.dash = ui.NewDashboardUI(ui.DashboardHandlers{
		Fetch:         s.fetchRepo,
		Enhance:       s.enhance,
		Generate:      s.suggest,
		Save:          s.save,
		Cancel:        s.cancelEdit,
		Edit:          s.edit,
		Delete:        s.remove,
		UseSuggestion: s.useSuggestion,
		Page:          s.turnPage,
		Exit:          s.goHome,
	})
	s.dash.SetStorage(s.storageLabel())

	s.busy = page.Div().At(0, 0, float64(cfg.C.Width), float64(cfg.C.Height)).Pin()
	root := page.Div().At(0, 0, float64(cfg.C.Width), float64(cfg.C.Height))
	s.page = factory.CreatePage(s.ecs, root)
	factory.CreateNotice(s.ecs)
	factory.CreateCursor(s.ecs, cfg.Cursor)
}

func (s *AdminScene) storageLabel() string {
	if s.app.Store == nil {
		return "Storage: offline"
	}
	kind := s.app.StoreKind
	if kind == "" {
		kind = store.KindGData
	}
	return fmt.Sprintf("Storage: %s", kind)
}

func (s *AdminScene) goHome() {
	s.next = PathHome
}

func (s *AdminScene) submitPassphrase(pass string) {
	if pass != cfg.Admin.Passphrase {
		s.login.Reject("Incorrect password")
		return
	}
	s.authorized = true
	s.refresh()
}

func (s *AdminScene) now() time.Time {
	return s.app.Clock.Now()
}

func (s *AdminScene) fail(msg string) {
	systems.ShowNotice(s.ecs, s.now(), msg, components.NoticeError, 0)
}

func (s *AdminScene) succeed(msg string, secs float64) {
	systems.ShowNotice(s.ecs, s.now(), msg, components.NoticeSuccess, seconds(secs))
}

// begin starts a dashboard action: it picks up the typed form, drops a
// pending delete and clears the previous message.
func (s *AdminScene) begin() {
	s.ed.form = s.dash.Form()
	s.ed.touch()
	systems.ClearNotice(s.ecs)
	s.syncList()
}

// run shows msg over the dashboard until work's result is applied.
func (s *AdminScene) run(msg string, work func() func()) {
	s.loading = msg
	s.jobs.Go(work)
}

func (s *AdminScene) syncList() {
	s.dash.SetProjects(s.ed.rows(), s.ed.page, s.ed.pages())
}

func (s *AdminScene) syncForm() {
	s.dash.SetForm(s.ed.form)
	_, editing := s.ed.editing()
	s.dash.SetEditing(editing)
}

func (s *AdminScene) refresh() {
	st := s.app.Store
	if st == nil {
		s.fail("Project store unavailable. Changes cannot be saved.")
		return
	}
	s.run("Loading projects...", func() func() {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		projects, err := st.List(ctx)
		return func() {
			if err != nil {
				log.Printf("Warning: Could not load projects: %v", err)
				s.fail("Failed to load projects.")
				return
			}
			s.ed.setProjects(projects)
			s.syncList()
		}
	})
}

func (s *AdminScene) fetchRepo() {
	s.begin()
	url := s.ed.form.RepoURL
	if url == "" {
		s.fail("Please enter a valid GitHub repository URL first")
		return
	}
	if _, _, err := github.ParseRepoURL(url); err != nil {
		s.fail("Invalid GitHub URL format.")
		return
	}

	client := s.app.GitHub
	s.run("Fetching repository data from GitHub...", func() func() {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		repo, err := client.FetchRepo(ctx, url)
		return func() {
			if err != nil {
				log.Printf("Warning: Could not fetch %s: %v", url, err)
				s.fail("Could not fetch data from GitHub.")
				return
			}
			s.ed.form = s.dash.Form()
			s.ed.applyRepo(repo)
			s.syncForm()
		}
	})
}

func (s *AdminScene) enhance() {
	s.begin()
	title, notes := s.ed.form.Title, s.ed.form.Description
	if notes == "" {
		s.fail("Write a few notes in the description first.")
		return
	}

	client := s.app.AI
	s.run("Enhancing description with Gemini...", func() func() {
		ctx, cancel := context.WithTimeout(context.Background(), aiTimeout)
		defer cancel()
		enhanced, err := client.EnhanceDescription(ctx, title, notes)
		return func() {
			if err != nil {
				s.aiFailed(err)
				return
			}
			s.dash.SetCaseStudy(enhanced)
		}
	})
}

func (s *AdminScene) suggest() {
	s.begin()
	client := s.app.AI
	s.run("Generating project ideas with Gemini...", func() func() {
		ctx, cancel := context.WithTimeout(context.Background(), aiTimeout)
		defer cancel()
		ideas, err := client.SuggestProjects(ctx, cfg.AI.Profile)
		return func() {
			if err != nil {
				s.aiFailed(err)
				return
			}
			if len(ideas) > ui.SuggestionSlots {
				ideas = ideas[:ui.SuggestionSlots]
			}
			s.ed.suggestions = ideas
			s.dash.SetSuggestions(s.ed.suggestionTitles())
			if len(ideas) == 0 {
				s.fail("No project ideas came back. Try again.")
			}
		}
	})
}

func (s *AdminScene) aiFailed(err error) {
	log.Printf("Warning: AI request failed: %v", err)
	if errors.Is(err, genai.ErrUnavailable) {
		s.fail("AI service unavailable. Set API_KEY to enable it.")
		return
	}
	s.fail("AI request failed. Please try again.")
}

func (s *AdminScene) save() {
	s.begin()
	draft, err := s.ed.draft()
	if err != nil {
		s.fail("Title is required")
		return
	}
	st := s.app.Store
	if st == nil {
		s.fail("Failed to save project: " + errNoStore.Error())
		return
	}

	local := s.ed.localImage()
	msg := "Saving project..."
	if local != "" {
		if err := checkImage(local); err != nil {
			s.fail(imageProblem(err))
			return
		}
		msg = "Uploading image..."
	}

	s.run(msg, func() func() {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		r := saveProject(ctx, st, draft, local)
		return func() { s.applySave(r) }
	})
}

func (s *AdminScene) applySave(r saveResult) {
	msg, failed := r.message()
	if r.saveErr != nil {
		s.fail(msg)
		return
	}
	s.ed.reset()
	s.syncForm()
	if r.listErr == nil {
		s.ed.setProjects(r.projects)
	}
	s.syncList()
	if failed {
		s.fail(msg)
		return
	}
	s.succeed(msg, cfg.Page.SaveNoticeSecs)
}

func (s *AdminScene) cancelEdit() {
	s.begin()
	s.ed.reset()
	s.syncForm()
}

func (s *AdminScene) edit(row int) {
	s.begin()
	if s.ed.edit(row) {
		s.syncForm()
	}
}

func (s *AdminScene) remove(row int) {
	s.ed.form = s.dash.Form()
	systems.ClearNotice(s.ecs)
	id, confirmed := s.ed.requestDelete(row)
	s.syncList()
	if !confirmed {
		return
	}
	st := s.app.Store
	if st == nil {
		s.fail("Failed to delete project.")
		return
	}

	s.run("Deleting project...", func() func() {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		err := st.Delete(ctx, id)
		return func() {
			if err != nil {
				log.Printf("Warning: Could not delete project %s: %v", id, err)
				s.fail("Failed to delete project.")
				return
			}
			s.ed.form = s.dash.Form()
			s.ed.deleted(id)
			s.syncForm()
			s.syncList()
			s.succeed("Project deleted successfully.", cfg.Page.DeleteNoticeSecs)
		}
	})
}

func (s *AdminScene) useSuggestion(slot int) {
	s.begin()
	if s.ed.useSuggestion(slot) {
		s.dash.SetForm(s.ed.form)
	}
}

func (s *AdminScene) turnPage(delta int) {
	s.begin()
	s.ed.turn(delta)
	s.syncList()
}

func (s *AdminScene) drawForms(_ *ecs.ECS, screen *ebiten.Image) {
	if s.authorized {
		s.dash.UI.Draw(screen)
		return
	}
	s.login.UI.Draw(screen)
}

func (s *AdminScene) drawBusy(_ *ecs.ECS, screen *ebiten.Image) {
	if !s.jobs.Busy() {
		return
	}
	dimScreen(screen)
	b := screen.Bounds()
	r := page.Rect{X: 0, Y: float64(b.Dy()) / 2, W: float64(b.Dx()), H: 24}
	vector.StrokeCircle(screen, float32(r.W/2), float32(r.Y-32), 16, 3, cfg.Theme.Accent, true)
	drawCentered(screen, s.loading, fonts.Bold, r, cfg.Theme.Accent)
}
