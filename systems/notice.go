package systems

import (
	"image/color"
	"time"

	"github.com/automoto/lumina/components"
	cfg "github.com/automoto/lumina/config"
	"github.com/automoto/lumina/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jonboulle/clockwork"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateNotice returns a system that clears the banner once it expires.
func NewUpdateNotice(clock clockwork.Clock) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		ExpireNotice(getOrCreateNotice(ecs), clock.Now())
	}
}

// ExpireNotice clears n when its deadline has passed. Notices without a
// deadline stay until replaced.
func ExpireNotice(n *components.NoticeData, now time.Time) {
	if n.Text == "" || n.Expires.IsZero() {
		return
	}
	if !now.Before(n.Expires) {
		*n = components.NoticeData{}
	}
}

// ShowNotice replaces the banner. A ttl of zero keeps it until the next call.
func ShowNotice(ecs *ecs.ECS, now time.Time, text string, kind components.NoticeKind, ttl time.Duration) {
	n := getOrCreateNotice(ecs)
	n.Text = text
	n.Kind = kind
	n.Expires = time.Time{}
	if ttl > 0 {
		n.Expires = now.Add(ttl)
	}
}

// ClearNotice removes the banner immediately.
func ClearNotice(ecs *ecs.ECS) {
	*getOrCreateNotice(ecs) = components.NoticeData{}
}

// CurrentNotice returns the banner text, empty when none is shown.
func CurrentNotice(ecs *ecs.ECS) string {
	return getOrCreateNotice(ecs).Text
}

// DrawNotice renders the banner at the top center of the screen
func DrawNotice(ecs *ecs.ECS, screen *ebiten.Image) {
	n := getOrCreateNotice(ecs)
	if n.Text == "" {
		return
	}

	face := fonts.Body.Get()
	bounds := text.BoundString(face, n.Text) //nolint:staticcheck // TODO: migrate to text/v2
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()

	padding := float32(cfg.Page.NoticePadding)
	boxWidth := float32(textWidth) + padding*2
	boxHeight := float32(textHeight) + padding*2

	screenWidth := float64(screen.Bounds().Dx())
	boxX := float32((screenWidth - float64(boxWidth)) / 2)
	boxY := float32(cfg.Page.NoticeTopMargin)

	vector.FillRect(screen, boxX, boxY, boxWidth, boxHeight, cfg.BlackOverlay, false)
	vector.StrokeRect(screen, boxX, boxY, boxWidth, boxHeight, 1, noticeColor(n.Kind), false)

	textX := int(boxX + padding)
	textY := int(boxY + padding + float32(textHeight))
	text.Draw(screen, n.Text, face, textX, textY, noticeColor(n.Kind)) //nolint:staticcheck // TODO: migrate to text/v2
}

func noticeColor(kind components.NoticeKind) color.Color {
	switch kind {
	case components.NoticeSuccess:
		return cfg.Theme.Success
	case components.NoticeError:
		return cfg.Theme.Error
	default:
		return cfg.Theme.Accent
	}
}

// getOrCreateNotice returns the singleton Notice component
func getOrCreateNotice(ecs *ecs.ECS) *components.NoticeData {
	entry, ok := components.Notice.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Notice))
	}
	return components.Notice.Get(entry)
}
