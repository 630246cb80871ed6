package scenes

import (
	"fmt"
	"image/color"
	"strings"

	cfg "github.com/automoto/lumina/config"
	"github.com/automoto/lumina/fonts"
	"github.com/automoto/lumina/page"
	"github.com/automoto/lumina/portfolio"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Card thumbnails are decoded at this size.
const (
	ThumbWidth  = 352
	ThumbHeight = 200
)

const (
	descLines   = 4
	quoteLines  = 5
	contactCopy = "Have a complex workflow that needs taming? Looking to integrate AI into your business operations? Let's build the future of your business together."
)

// homeContent is what the home page shows.
type homeContent struct {
	profile  portfolio.Profile
	projects []portfolio.Project
	loading  bool
	offline  bool
}

// homeActions are the handlers the page's links and buttons call.
type homeActions struct {
	scrollTo func(id string)
	top      func()
	open     func(url string)
	contact  func()
}

// homeLayout is the result of laying out the page.
type homeLayout struct {
	root    *page.Node
	tickerY float64
	ticker  string
}

func tickerText(p portfolio.Profile) string {
	return fmt.Sprintf("• %s • AUTOMATION • AI AGENTS • WORKFLOWS •", strings.ToUpper(p.Title))
}

// layoutHome builds the page tree top to bottom. thumb returns a loaded
// thumbnail for an image url, or nil while it is not available.
func layoutHome(c homeContent, a homeActions, thumb func(url string) *ebiten.Image) homeLayout {
	w := float64(cfg.C.Width)
	h := float64(cfg.C.Height)
	left := (w - cfg.Page.ContentWidth) / 2
	cw := cfg.Page.ContentWidth

	root := page.Div().At(0, 0, w, h)
	root.Append(layoutNav(c.profile, a, w))

	// Hero
	hero := page.Section().WithID("hero").At(0, 0, w, h)
	pill := page.Span().WithClass("clickable").WithText("Available for Projects").
		At(w/2-120, 180, 240, 32).
		Click(func() { a.scrollTo("contact") }).
		Painted(paintPill)
	hero.Append(
		pill,
		textNode("IMPACT", fonts.Title, cfg.Theme.Text, true).At(left, 240, cw, 80),
		textNode("AT SCALE", fonts.Title, cfg.Theme.Accent, true).At(left, 320, cw, 80),
		paragraph(c.profile.Tagline+". Specializing in n8n, Make, & Zapier to automate the impossible.",
			fonts.Body, cfg.Theme.Muted, true, 3).At(w/2-300, 440, 600, 72),
		textNode("SCROLL TO EXPLORE", fonts.Mono, cfg.Theme.Dim, true).At(left, h-60, cw, 20),
	)
	root.Append(hero)

	y := h + 32
	layout := homeLayout{tickerY: y, ticker: tickerText(c.profile)}
	y += cfg.Page.TickerHeight + 32

	// Work
	work := page.Section().WithID("projects")
	workTop := y
	y += cfg.Page.SectionGap
	work.Append(
		textNode("WORK", fonts.Title, cfg.Theme.Text, false).At(left, y, cw, 80),
		textNode("Selected Automations & Architectures", fonts.Bold, cfg.Theme.Muted, false).At(left, y+84, cw, 24),
		page.Div().At(left+cw-128, y+100, 128, 1).Painted(fillPaint(cfg.Theme.Accent)),
	)
	y += 84 + 24 + 64

	if c.loading && len(c.projects) == 0 {
		work.Append(textNode("Loading projects...", fonts.Body, cfg.Theme.Muted, false).At(left, y, cw, 24))
		y += 24
	}
	cols := cfg.Page.CardColumns
	cardW := (cw - float64(cols-1)*cfg.Page.CardGap) / float64(cols)
	for i, p := range c.projects {
		col, row := i%cols, i/cols
		x := left + float64(col)*(cardW+cfg.Page.CardGap)
		cy := y + float64(row)*(cfg.Page.CardHeight+cfg.Page.CardGap)
		work.Append(projectCard(p, a, thumb).At(x, cy, cardW, cfg.Page.CardHeight))
	}
	if n := len(c.projects); n > 0 {
		rows := (n + cols - 1) / cols
		y += float64(rows)*(cfg.Page.CardHeight+cfg.Page.CardGap) - cfg.Page.CardGap
	}
	y += cfg.Page.SectionGap
	work.At(0, workTop, w, y-workTop)
	root.Append(work)

	// Experience
	exp := page.Section().WithID("experience").Painted(fillPaint(cardTint))
	expTop := y
	y += cfg.Page.SectionGap
	inner := 880.0
	innerLeft := (w - inner) / 2
	exp.Append(textNode(c.profile.Name, fonts.Heading, cfg.Theme.Text, true).At(innerLeft, y, inner, 40))
	y += 64
	bio := fonts.Wrap(fonts.Bold.Get(), `"`+c.profile.Bio+`"`, int(inner))
	exp.Append(lines(bio, fonts.Bold, cfg.Theme.Muted, true).At(innerLeft, y, inner, float64(len(bio)*lineHeight(fonts.Bold))))
	y += float64(len(bio)*lineHeight(fonts.Bold)) + 48

	skills := portfolio.Skills()
	gap := 24.0
	skillW := (inner - gap*float64(len(skills)-1)) / float64(len(skills))
	for i, g := range skills {
		exp.Append(skillBox(g).At(innerLeft+float64(i)*(skillW+gap), y, skillW, 120))
	}
	y += 120 + 64

	// Testimonials
	badges := portfolio.Badges()
	badgeW := 160.0
	bx := w/2 - (badgeW*float64(len(badges))+gap*float64(len(badges)-1))/2
	for i, b := range badges {
		exp.Append(badge(b).At(bx+float64(i)*(badgeW+gap), y, badgeW, 32))
	}
	y += 32 + 32

	quotes := portfolio.Testimonials()
	quoteW := (cw - gap) / 2
	for i, q := range quotes {
		exp.Append(quoteCard(q, quoteW).At(left+float64(i)*(quoteW+gap), y, quoteW, 200))
	}
	y += 200 + cfg.Page.SectionGap
	exp.At(0, expTop, w, y-expTop)
	root.Append(exp)

	// Contact
	con := page.Section().WithID("contact")
	conTop := y
	y += cfg.Page.SectionGap
	half := (cw - 64) / 2
	copyLines := fonts.Wrap(fonts.Body.Get(), contactCopy, int(half))
	con.Append(
		textNode("LET'S", fonts.Title, cfg.Theme.Text, false).At(left, y, half, 76),
		textNode("COLLABORATE", fonts.Title, cfg.Theme.Accent, false).At(left, y+76, half, 76),
		lines(copyLines, fonts.Body, cfg.Theme.Muted, false).At(left, y+176, half, float64(len(copyLines)*lineHeight(fonts.Body))),
	)
	infoY := y + 176 + float64(len(copyLines)*lineHeight(fonts.Body)) + 24
	con.Append(
		infoRow("@", cfg.Contact.PublicEmail).At(left, infoY, half, 40),
		infoRow(">", cfg.Contact.Availability).At(left, infoY+56, half, 40),
	)

	formX := left + half + 64
	con.Append(
		page.Div().At(formX, y+40, half, 260).Painted(panelPaint),
		textNode("Tell me about your automation needs.", fonts.Bold, cfg.Theme.Text, true).At(formX, y+90, half, 24),
		page.Button(page.Span().WithText("Send Message")).
			At(formX+40, y+150, half-80, 56).
			Click(a.contact).
			Painted(paintSendButton),
		textNode("*Opens your default email client", fonts.Small, cfg.Theme.Dim, true).At(formX, y+222, half, 16),
	)
	y += 360 + cfg.Page.SectionGap
	con.At(0, conTop, w, y-conTop)
	root.Append(con)

	// Footer
	foot := page.Div().At(0, y, w, 96).Painted(func(screen *ebiten.Image, r page.Rect, _ bool) {
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), 1, cfg.Theme.Border, false)
	})
	foot.Append(textNode(fmt.Sprintf("© 2025 %s • Visual Euphoria in Automation", c.profile.Name),
		fonts.Mono, cfg.Theme.Dim, true).At(0, y+36, w, 16))
	if c.offline {
		foot.Append(textNode("Local Storage Mode", fonts.Small, offlineColor, true).At(0, y+60, w, 16))
	}
	root.Append(foot)
	root.Bounds.H = y + 96

	layout.root = root
	return layout
}

var (
	cardTint     = color.RGBA{R: 6, G: 4, B: 13, A: 51}
	offlineColor = color.RGBA{R: 101, G: 69, B: 2, A: 128}
	shade        = color.RGBA{R: 0, G: 0, B: 0, A: 128}
)

func layoutNav(p portfolio.Profile, a homeActions, w float64) *page.Node {
	nav := page.Div().At(0, 0, w, cfg.Page.NavHeight).Pin().
		Painted(fillPaint(color.RGBA{R: 16, G: 10, B: 41, A: 230}))

	brand := page.Link(page.Span().WithText(strings.ToUpper(p.Name))).
		WithClass("clickable").
		At(24, 12, 380, 40).
		Click(a.top).
		Painted(func(screen *ebiten.Image, r page.Rect, hovered bool) {
			cx, cy := float32(r.X+20), float32(r.Y+20)
			if hovered {
				vector.FillCircle(screen, cx, cy, 20, cfg.Theme.Accent, true)
			}
			vector.StrokeCircle(screen, cx, cy, 20, 1, cfg.Theme.Accent, true)
			vector.FillCircle(screen, cx, cy+3, 3, cfg.Theme.Secondary, true)
			drawText(screen, strings.ToUpper(p.Name), fonts.Bold, r.X+52, r.Y+10, cfg.Theme.Text)
		})
	nav.Append(brand)

	x := w - 420
	for _, item := range []struct{ label, id string }{
		{"WORK", "projects"},
		{"EXPERIENCE", "experience"},
		{"CONTACT", "contact"},
	} {
		id := item.id
		bw := float64(fonts.Width(fonts.Small.Get(), item.label)) + 16
		nav.Append(page.Button(page.Span().WithText(item.label)).
			At(x, 20, bw, 24).
			Click(func() { a.scrollTo(id) }).
			Painted(func(screen *ebiten.Image, r page.Rect, hovered bool) {
				c := cfg.Theme.Text
				if hovered {
					c = cfg.Theme.Accent
				}
				drawText(screen, strings.TrimSpace(item.label), fonts.Small, r.X+8, r.Y+4, c)
			}))
		x += bw + 24
	}

	nav.Append(page.Link(page.Span().WithText("in")).
		WithClass("clickable").
		At(w-64, 12, 40, 40).
		Click(func() { a.open(p.LinkedInURL) }).
		Painted(func(screen *ebiten.Image, r page.Rect, hovered bool) {
			cx, cy := float32(r.X+20), float32(r.Y+20)
			fg := color.Color(cfg.Theme.Text)
			if hovered {
				vector.FillCircle(screen, cx, cy, 20, cfg.Theme.Text, true)
				fg = cfg.Theme.Background
			}
			vector.StrokeCircle(screen, cx, cy, 20, 1, color.RGBA{R: 51, G: 51, B: 51, A: 51}, true)
			drawText(screen, "in", fonts.Bold, r.X+12, r.Y+9, fg)
		}))
	return nav
}

func projectCard(p portfolio.Project, a homeActions, thumb func(string) *ebiten.Image) *page.Node {
	var card *page.Node
	if p.HasRepo() {
		url := p.RepoURL
		card = page.Link().WithClass("clickable").Click(func() { a.open(url) })
	} else {
		card = page.Div()
	}
	card.WithText(p.Title)

	tags, more := portfolio.VisibleTags(p.Tags, cfg.Page.MaxVisibleTags)
	card.Painted(func(screen *ebiten.Image, r page.Rect, hovered bool) {
		bg, border := cfg.Theme.Card, cfg.Theme.Border
		if hovered {
			// lift
			r = r.Offset(0, -8)
			bg, border = cfg.Theme.CardHover, cfg.Theme.Accent
		}
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bg, false)

		img := page.Rect{X: r.X, Y: r.Y, W: r.W, H: ThumbHeight}
		switch {
		case p.VideoURL != "":
			vector.FillRect(screen, float32(img.X), float32(img.Y), float32(img.W), float32(img.H), color.Black, false)
			drawCentered(screen, "[Video Preview: "+p.Title+"]", fonts.Mono, img, cfg.Theme.Dim)
		case p.ImageURL != "" && thumb(p.ImageURL) != nil:
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(img.X, img.Y)
			if !hovered {
				op.ColorScale.Scale(0.8, 0.8, 0.8, 1)
			}
			screen.DrawImage(thumb(p.ImageURL), op)
		default:
			vector.FillRect(screen, float32(img.X), float32(img.Y), float32(img.W), float32(img.H), color.RGBA{R: 13, G: 13, B: 13, A: 13}, false)
			drawCentered(screen, "NO IMAGE", fonts.Mono, img, cfg.Theme.Dim)
		}
		if p.BusinessOutcome != "" && hovered {
			band := page.Rect{X: img.X + 16, Y: img.Bottom() - 48, W: img.W - 32, H: 32}
			vector.FillRect(screen, float32(band.X), float32(band.Y), float32(band.W), float32(band.H), shade, false)
			drawText(screen, p.BusinessOutcome, fonts.Mono, band.X+12, band.Y+9, cfg.Theme.Accent)
		}
		if p.HasRepo() {
			drawText(screen, "SOURCE", fonts.Mono, r.X+r.W-88, r.Y+16, cfg.Theme.Accent)
		}

		titleColor := cfg.Theme.Text
		if hovered {
			titleColor = cfg.Theme.Accent
		}
		ty := img.Bottom() + 20
		drawText(screen, p.Title, fonts.Bold, r.X+24, ty, titleColor)

		desc := fonts.Clamp(fonts.Wrap(fonts.Small.Get(), p.Description, int(r.W-48)), descLines)
		drawLines(screen, desc, fonts.Small, r.X+24, ty+32, cfg.Theme.Muted, false, r.W-48)

		tx := r.X + 24
		tagY := r.Bottom() - 40
		for _, tag := range tags {
			label := strings.ToUpper(tag)
			tw := float64(fonts.Width(fonts.Mono.Get(), label)) + 16
			if tx+tw > r.X+r.W-24 {
				break
			}
			vector.StrokeRect(screen, float32(tx), float32(tagY), float32(tw), 22, 1, border, false)
			drawText(screen, label, fonts.Mono, tx+8, tagY+4, cfg.Theme.Dim)
			tx += tw + 8
		}
		if more > 0 {
			drawText(screen, fmt.Sprintf("+%d", more), fonts.Mono, tx+4, tagY+4, cfg.Theme.Dim)
		}
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, border, false)
	})
	return card
}

func skillBox(g portfolio.SkillGroup) *page.Node {
	return page.Div().Painted(func(screen *ebiten.Image, r page.Rect, hovered bool) {
		if hovered {
			vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), color.RGBA{R: 13, G: 13, B: 13, A: 13}, false)
		}
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, cfg.Theme.Border, false)
		drawText(screen, g.Heading, fonts.Mono, r.X+16, r.Y+16, cfg.Theme.Accent)
		drawLines(screen, g.Items, fonts.Small, r.X+16, r.Y+40, cfg.Theme.Muted, false, r.W)
	})
}

func badge(b portfolio.Badge) *page.Node {
	return page.Div().Painted(func(screen *ebiten.Image, r page.Rect, _ bool) {
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, cfg.Theme.Border, false)
		accent := strings.ToUpper(b.Accent)
		drawText(screen, accent, fonts.Bold, r.X+16, r.Y+6, cfg.Theme.Accent)
		drawText(screen, b.Label, fonts.Small, r.X+24+float64(fonts.Width(fonts.Bold.Get(), accent)), r.Y+9, cfg.Theme.Muted)
	})
}

func quoteCard(q portfolio.Testimonial, width float64) *page.Node {
	quote := fonts.Clamp(fonts.Wrap(fonts.Body.Get(), `"`+q.Quote+`"`, int(width-64)), quoteLines)
	return page.Div().Painted(func(screen *ebiten.Image, r page.Rect, _ bool) {
		panelPaint(screen, r, false)
		drawLines(screen, quote, fonts.Body, r.X+32, r.Y+28, cfg.Theme.Text, false, r.W)
		drawText(screen, q.Author, fonts.Bold, r.X+32, r.Bottom()-56, cfg.Theme.Accent)
		drawText(screen, q.Role, fonts.Small, r.X+32, r.Bottom()-32, cfg.Theme.Dim)
	})
}

func infoRow(icon, label string) *page.Node {
	return page.Div().Painted(func(screen *ebiten.Image, r page.Rect, _ bool) {
		cx, cy := float32(r.X+20), float32(r.Y+20)
		vector.FillCircle(screen, cx, cy, 20, color.RGBA{R: 13, G: 13, B: 13, A: 13}, true)
		vector.StrokeCircle(screen, cx, cy, 20, 1, cfg.Theme.Border, true)
		drawText(screen, icon, fonts.Bold, r.X+14, r.Y+9, cfg.Theme.Accent)
		drawText(screen, label, fonts.Body, r.X+56, r.Y+11, cfg.Theme.Text)
	})
}

func paintPill(screen *ebiten.Image, r page.Rect, hovered bool) {
	if hovered {
		r = page.Rect{X: r.X - 4, Y: r.Y - 1, W: r.W + 8, H: r.H + 2}
	}
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), color.RGBA{R: 8, G: 13, B: 10, A: 13}, false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, cfg.Theme.Accent, false)
	drawCentered(screen, "AVAILABLE FOR PROJECTS", fonts.Mono, r, cfg.Theme.Accent)
}

func paintSendButton(screen *ebiten.Image, r page.Rect, hovered bool) {
	bg := cfg.Theme.Text
	if hovered {
		bg = cfg.Theme.Accent
	}
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bg, false)
	drawCentered(screen, "Send Message  >", fonts.Bold, r, cfg.Theme.Background)
}

func panelPaint(screen *ebiten.Image, r page.Rect, _ bool) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), cfg.Theme.Card, false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, cfg.Theme.Border, false)
}

func fillPaint(c color.Color) page.PaintFunc {
	return func(screen *ebiten.Image, r page.Rect, _ bool) {
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
	}
}

// textNode is a single line of static text.
func textNode(s string, name fonts.FontName, c color.Color, center bool) *page.Node {
	return page.Span().WithText(s).Painted(func(screen *ebiten.Image, r page.Rect, _ bool) {
		if center {
			drawCentered(screen, s, name, page.Rect{X: r.X, Y: r.Y, W: r.W, H: float64(lineHeight(name))}, c)
			return
		}
		drawText(screen, s, name, r.X, r.Y, c)
	})
}

// paragraph wraps s to the node width when painted.
func paragraph(s string, name fonts.FontName, c color.Color, center bool, max int) *page.Node {
	return page.Span().WithText(s).Painted(func(screen *ebiten.Image, r page.Rect, _ bool) {
		wrapped := fonts.Clamp(fonts.Wrap(name.Get(), s, int(r.W)), max)
		drawLines(screen, wrapped, name, r.X, r.Y, c, center, r.W)
	})
}

func lines(ls []string, name fonts.FontName, c color.Color, center bool) *page.Node {
	return page.Span().WithText(strings.Join(ls, " ")).Painted(func(screen *ebiten.Image, r page.Rect, _ bool) {
		drawLines(screen, ls, name, r.X, r.Y, c, center, r.W)
	})
}

func lineHeight(name fonts.FontName) int {
	return fonts.LineHeight(name.Get())
}

// drawText draws s with its top-left corner at x, y.
func drawText(screen *ebiten.Image, s string, name fonts.FontName, x, y float64, c color.Color) {
	face := name.Get()
	text.Draw(screen, s, face, int(x), int(y)+ascent(face), c) //nolint:staticcheck // TODO: migrate to text/v2
}

func drawCentered(screen *ebiten.Image, s string, name fonts.FontName, r page.Rect, c color.Color) {
	face := name.Get()
	x := r.X + (r.W-float64(fonts.Width(face, s)))/2
	y := r.Y + (r.H-float64(fonts.LineHeight(face)))/2
	drawText(screen, s, name, x, y, c)
}

func drawLines(screen *ebiten.Image, ls []string, name fonts.FontName, x, y float64, c color.Color, center bool, width float64) {
	lh := float64(lineHeight(name))
	for i, l := range ls {
		r := page.Rect{X: x, Y: y + float64(i)*lh, W: width, H: lh}
		if center {
			drawCentered(screen, l, name, r, c)
			continue
		}
		drawText(screen, l, name, r.X, r.Y, c)
	}
}

func ascent(face font.Face) int {
	return face.Metrics().Ascent.Ceil()
}
