package systems

import (
	"testing"
	"time"

	"github.com/automoto/lumina/components"
	cfg "github.com/automoto/lumina/config"
	"github.com/automoto/lumina/page"
	"github.com/automoto/lumina/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func TestGetActionEdges(t *testing.T) {
	input := &components.InputData{}
	input.Current[cfg.ActionTop] = true
	assert.Equal(t, components.ActionState{Pressed: true, JustPressed: true}, GetAction(input, cfg.ActionTop))

	input.Previous = input.Current
	assert.Equal(t, components.ActionState{Pressed: true}, GetAction(input, cfg.ActionTop))

	input.Current = [cfg.ActionCount]bool{}
	assert.Equal(t, components.ActionState{JustReleased: true}, GetAction(input, cfg.ActionTop))
}

func TestPollBindingChordNeedsEveryKey(t *testing.T) {
	binding := cfg.Input.Bindings[cfg.ActionSecretAdmin]
	held := map[ebiten.Key]bool{ebiten.KeyControl: true, ebiten.KeyShift: true}
	pressed := func(k ebiten.Key) bool { return held[k] }

	assert.False(t, pollBinding(binding, pressed))
	held[ebiten.KeyL] = true
	assert.True(t, pollBinding(binding, pressed))

	// A plain L does not open the dashboard.
	assert.False(t, pollBinding(binding, func(k ebiten.Key) bool { return k == ebiten.KeyL }))
}

func TestPollBindingAnyKey(t *testing.T) {
	binding := cfg.Input.Bindings[cfg.ActionPageDown]
	assert.True(t, pollBinding(binding, func(k ebiten.Key) bool { return k == ebiten.KeySpace }))
	assert.False(t, pollBinding(binding, func(ebiten.Key) bool { return false }))
}

func TestStepScrollFollowsTarget(t *testing.T) {
	s := &components.ScrollData{Max: 1000}
	StepScroll(s, 200, 1.0/60)

	assert.Equal(t, 200.0, s.Target)
	assert.InDelta(t, 200*cfg.Page.ScrollSmoothing, s.Offset, 1e-9)

	for i := 0; i < 200; i++ {
		StepScroll(s, 0, 1.0/60)
	}
	assert.Equal(t, 200.0, s.Offset)
}

func TestStepScrollClamps(t *testing.T) {
	s := &components.ScrollData{Max: 300}
	StepScroll(s, -50, 1.0/60)
	assert.Equal(t, 0.0, s.Target)

	StepScroll(s, 5000, 1.0/60)
	assert.Equal(t, 300.0, s.Target)
}

func TestJumpEasesToTargetAndManualInputCancels(t *testing.T) {
	s := &components.ScrollData{Max: 2000}
	JumpTo(s, 900)
	require.NotNil(t, s.Jump)

	frames := int(cfg.Page.NavScrollSeconds*60) + 2
	for i := 0; i < frames; i++ {
		StepScroll(s, 0, 1.0/60)
	}
	assert.Nil(t, s.Jump)
	assert.InDelta(t, 900, s.Target, 1e-3)

	JumpTo(s, 0)
	StepScroll(s, 10, 1.0/60)
	assert.Nil(t, s.Jump)
}

func TestScrollToSection(t *testing.T) {
	e := newECS()
	root := page.Div(
		page.Section().WithID("work").At(0, 1500, 1280, 800),
	).At(0, 0, 1280, 2400)
	entry := factory.CreatePage(e, root)

	ScrollTo(e, "work")
	scroll := components.Scroll.Get(entry)
	require.NotNil(t, scroll.Jump)
	assert.Equal(t, 2400.0-float64(cfg.C.Height), scroll.Max)

	ScrollTo(e, "missing")
	assert.NotNil(t, scroll.Jump)
}

func TestStepTickerWraps(t *testing.T) {
	tk := &components.TickerData{Span: 100, Speed: 30}
	for i := 0; i < 4; i++ {
		StepTicker(tk)
	}
	assert.InDelta(t, 20, tk.Offset, 1e-9)

	rev := &components.TickerData{Span: 100, Speed: 30, Reverse: true}
	StepTicker(rev)
	assert.InDelta(t, 70, rev.Offset, 1e-9)

	empty := &components.TickerData{Speed: 5}
	StepTicker(empty)
	assert.Zero(t, empty.Offset)
}

func TestNoticeExpiresWithClock(t *testing.T) {
	e := newECS()
	clock := clockwork.NewFakeClock()
	update := NewUpdateNotice(clock)

	ShowNotice(e, clock.Now(), "Project deleted", components.NoticeSuccess, 3*time.Second)
	update(e)
	assert.Equal(t, "Project deleted", CurrentNotice(e))

	clock.Advance(2999 * time.Millisecond)
	update(e)
	assert.Equal(t, "Project deleted", CurrentNotice(e))

	clock.Advance(time.Millisecond)
	update(e)
	assert.Empty(t, CurrentNotice(e))
}

func TestErrorNoticeStaysUntilReplaced(t *testing.T) {
	e := newECS()
	clock := clockwork.NewFakeClock()
	update := NewUpdateNotice(clock)

	ShowNotice(e, clock.Now(), "Save failed", components.NoticeError, 0)
	clock.Advance(time.Hour)
	update(e)
	assert.Equal(t, "Save failed", CurrentNotice(e))

	ShowNotice(e, clock.Now(), "Saved", components.NoticeSuccess, 5*time.Second)
	assert.Equal(t, "Saved", CurrentNotice(e))
	ClearNotice(e)
	assert.Empty(t, CurrentNotice(e))
}

func TestReleaseClicksOnlyOverPressedAction(t *testing.T) {
	clicks := 0
	label := page.Span().WithText("Contact")
	link := page.Link(label).Click(func() { clicks++ })
	other := page.Div()
	page.Div(link, other)

	pg := &components.PageData{Hovered: label}
	Press(pg)
	pg.Hovered = link
	assert.True(t, Release(pg))
	assert.Equal(t, 1, clicks)

	pg.Hovered = label
	Press(pg)
	pg.Hovered = other
	assert.False(t, Release(pg))
	assert.Equal(t, 1, clicks)

	// Release without a press does nothing.
	pg.Hovered = link
	assert.False(t, Release(pg))
	assert.Nil(t, pg.Pressed)
}

func TestHitTestReusesOverlayIndex(t *testing.T) {
	button := page.Button().At(10, 10, 100, 40)
	overlay := page.Div(button).At(0, 0, float64(cfg.C.Width), float64(cfg.C.Height)).Pin()
	pg := &components.PageData{Root: page.Div(), Overlay: overlay}

	assert.Same(t, button, hitTest(pg, 20, 20, 0))
	first := pg.OverlayIndex
	require.NotNil(t, first)

	assert.Same(t, button, hitTest(pg, 30, 30, 500))
	assert.Same(t, first, pg.OverlayIndex)

	moved := page.Button().At(300, 300, 100, 40)
	pg.Overlay = page.Div(moved).At(0, 0, float64(cfg.C.Width), float64(cfg.C.Height)).Pin()
	assert.Same(t, moved, hitTest(pg, 320, 320, 0))
	assert.NotSame(t, first, pg.OverlayIndex)
}

func TestDispatchPointerDrivesEngine(t *testing.T) {
	e := newECS()
	c := cfg.Cursor
	c.Disabled = false
	entry := factory.CreateCursor(e, c)
	require.NotNil(t, entry)
	cur := components.Cursor.Get(entry)

	button := page.Button().At(0, 0, 100, 40)
	page.Div(button)

	dispatchPointer(cur, PointerSample{X: 50, Y: 20}, button)
	st := cur.Engine.State()
	assert.Equal(t, 50.0, st.Immediate.X)
	assert.Equal(t, 20.0, st.Immediate.Y)
	assert.True(t, st.Hovering)
	assert.Equal(t, cfg.Cursor.Offscreen, st.Lagging)

	dispatchPointer(cur, PointerSample{X: 50, Y: 20, Pressed: true}, button)
	assert.True(t, cur.Engine.State().Pressed)

	dispatchPointer(cur, PointerSample{X: 300, Y: 20}, nil)
	st = cur.Engine.State()
	assert.False(t, st.Pressed)
	assert.False(t, st.Hovering)

	// The frame queue runs the tick requested at start.
	cur.Frames.Advance()
	assert.Equal(t, uint64(1), cur.Engine.Ticks())
	assert.Greater(t, cur.Engine.State().Lagging.X, cfg.Cursor.Offscreen.X)
}

func TestCreateCursorDisabled(t *testing.T) {
	c := cfg.Cursor
	c.Disabled = true
	assert.Nil(t, factory.CreateCursor(newECS(), c))
}

type memSettings map[string][]byte

func (m memSettings) LoadItem(key string) ([]byte, error) { return m[key], nil }

func (m memSettings) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

func TestSettingsRoundTrip(t *testing.T) {
	prev := settingsStore
	t.Cleanup(func() { settingsStore = prev })

	UsePersistence(memSettings{})
	saved, err := LoadSettings()
	require.NoError(t, err)
	assert.Nil(t, saved)

	require.NoError(t, SaveSettings(&SavedSettings{Fullscreen: true, ResolutionIndex: 2}))
	saved, err = LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.True(t, saved.Fullscreen)
	assert.Equal(t, 2, saved.ResolutionIndex)
}

func TestLoadSettingsRejectsGarbage(t *testing.T) {
	prev := settingsStore
	t.Cleanup(func() { settingsStore = prev })

	UsePersistence(memSettings{"settings": []byte("{")})
	_, err := LoadSettings()
	assert.Error(t, err)
}

func TestShortcuts(t *testing.T) {
	e := newECS()
	var admin, back int
	update := NewUpdateShortcuts(func() { admin++ }, func() { back++ })

	input := getOrCreateInput(e)
	input.Current[cfg.ActionSecretAdmin] = true
	update(e)
	assert.Equal(t, 1, admin)

	input.Previous = input.Current
	update(e)
	assert.Equal(t, 1, admin)

	input.Previous = [cfg.ActionCount]bool{}
	input.Current = [cfg.ActionCount]bool{}
	input.Current[cfg.ActionBack] = true
	update(e)
	assert.Equal(t, 1, back)
}

func TestBackdropDrifts(t *testing.T) {
	e := newECS()
	UpdateBackdrop(e)
	phase := getOrCreateBackdrop(e).Phase
	assert.Greater(t, phase, 0.0)

	assert.InDelta(t, 0, GlowOffset(0, 0), 1e-9)
	assert.InDelta(t, driftPixels, GlowOffset(driftPeriod/4.0, 0), 1e-9)
	assert.InDelta(t, GlowOffset(1, 0), GlowOffset(3, 2), 1e-9)
}
