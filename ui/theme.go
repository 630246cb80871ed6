package ui

import (
	"bytes"
	"image"
	"image/color"
	"log"
	"slices"
	"strings"

	cfg "github.com/automoto/lumina/config"
	"github.com/automoto/lumina/page"
	euiimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// faces are the text faces every form shares.
type faces struct {
	title  text.Face
	bold   text.Face
	normal text.Face
	small  text.Face
}

func loadFaces() faces {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	return faces{
		title:  &text.GoTextFace{Source: bold, Size: 28},
		bold:   &text.GoTextFace{Source: bold, Size: 15},
		normal: &text.GoTextFace{Source: regular, Size: 14},
		small:  &text.GoTextFace{Source: regular, Size: 12},
	}
}

var (
	panelColor    = color.RGBA{30, 22, 66, 255}
	fieldColor    = color.RGBA{14, 9, 36, 255}
	fieldDisabled = color.RGBA{24, 18, 48, 255}
	mutedText     = color.RGBA{156, 163, 175, 255}
	disabledText  = color.RGBA{90, 90, 110, 255}
)

func vertical(spacing int, padding *widget.Insets, opts ...widget.ContainerOpt) *widget.Container {
	rowOpts := []widget.RowLayoutOpt{
		widget.RowLayoutOpts.Direction(widget.DirectionVertical),
		widget.RowLayoutOpts.Spacing(spacing),
	}
	if padding != nil {
		rowOpts = append(rowOpts, widget.RowLayoutOpts.Padding(padding))
	}
	return widget.NewContainer(append([]widget.ContainerOpt{
		widget.ContainerOpts.Layout(widget.NewRowLayout(rowOpts...)),
	}, opts...)...)
}

func horizontal(spacing int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
	)
}

func panel(padding int, opts ...widget.ContainerOpt) *widget.Container {
	return vertical(8, widget.NewInsetsSimple(padding), append([]widget.ContainerOpt{
		widget.ContainerOpts.BackgroundImage(euiimage.NewNineSliceColor(panelColor)),
	}, opts...)...)
}

// centered anchors a container in the middle of its parent.
func centered() widget.ContainerOpt {
	return widget.ContainerOpts.WidgetOpts(
		widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		}),
	)
}

func newLabel(s string, face *text.Face, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{
			Idle:     c,
			Disabled: disabledText,
		}),
	)
}

func newTextInput(face *text.Face, width int, placeholder string, secure bool) *widget.TextInput {
	opts := []widget.TextInputOpt{
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, 30)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     euiimage.NewNineSliceColor(fieldColor),
			Disabled: euiimage.NewNineSliceColor(fieldDisabled),
		}),
		widget.TextInputOpts.Face(face),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          cfg.White,
			Disabled:      disabledText,
			Caret:         cfg.Theme.Accent,
			DisabledCaret: disabledText,
		}),
		widget.TextInputOpts.Placeholder(placeholder),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(6)),
	}
	if secure {
		opts = append(opts, widget.TextInputOpts.Secure(true))
	}
	return widget.NewTextInput(opts...)
}

// buttonStyle picks the palette of a button.
type buttonStyle int

const (
	stylePlain buttonStyle = iota
	stylePrimary
	styleDanger
)

func newButton(label string, face *text.Face, width int, style buttonStyle, onClick func()) *widget.Button {
	idle, hover, pressed := color.RGBA{50, 42, 90, 255}, color.RGBA{70, 60, 120, 255}, color.RGBA{40, 32, 70, 255}
	textIdle := color.Color(cfg.White)
	switch style {
	case stylePrimary:
		idle, hover, pressed = cfg.Theme.Accent, color.RGBA{255, 255, 255, 255}, color.RGBA{120, 200, 160, 255}
		textIdle = cfg.Theme.Background
	case styleDanger:
		idle, hover, pressed = color.RGBA{120, 30, 40, 255}, color.RGBA{200, 50, 60, 255}, color.RGBA{90, 20, 30, 255}
	}

	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, 30)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     euiimage.NewNineSliceColor(idle),
			Hover:    euiimage.NewNineSliceColor(hover),
			Pressed:  euiimage.NewNineSliceColor(pressed),
			Disabled: euiimage.NewNineSliceColor(fieldDisabled),
		}),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{
			Idle:     textIdle,
			Hover:    cfg.Theme.Background,
			Pressed:  cfg.Theme.Background,
			Disabled: disabledText,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

func setButtonLabel(b *widget.Button, label string) {
	if t := b.Text(); t != nil {
		t.Label = label
	}
}

// wrapText breaks s into lines no wider than width for face.
func wrapText(face text.Face, s string, width float64) string {
	var out []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if text.Advance(line+" "+w, face) > width {
				out = append(out, line)
				line = w
				continue
			}
			line += " " + w
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// targets mirrors the live widgets as a page tree so the custom cursor can
// hover them. The root covers the whole screen, which makes the form modal.
type targets struct {
	buttons   []*widget.Button
	inputs    []*widget.TextInput
	textAreas []*widget.TextInput

	last  *page.Node
	rects []image.Rectangle
}

func (t *targets) button(b *widget.Button) *widget.Button {
	t.buttons = append(t.buttons, b)
	return b
}

func (t *targets) input(in *widget.TextInput) *widget.TextInput {
	t.inputs = append(t.inputs, in)
	return in
}

func (t *targets) textArea(in *widget.TextInput) *widget.TextInput {
	t.textAreas = append(t.textAreas, in)
	return in
}

// tree returns the previous tree while no widget has moved or changed state.
func (t *targets) tree() *page.Node {
	rects := t.snapshot()
	if t.last != nil && slices.Equal(rects, t.rects) {
		return t.last
	}
	t.rects = rects
	t.last = t.build()
	return t.last
}

// snapshot lists every target rect. Disabled buttons record an empty rect.
func (t *targets) snapshot() []image.Rectangle {
	rects := make([]image.Rectangle, 0, len(t.buttons)+len(t.inputs)+len(t.textAreas))
	for _, b := range t.buttons {
		w := b.GetWidget()
		if w.Disabled {
			rects = append(rects, image.Rectangle{})
			continue
		}
		rects = append(rects, w.Rect)
	}
	for _, in := range t.inputs {
		rects = append(rects, in.GetWidget().Rect)
	}
	for _, in := range t.textAreas {
		rects = append(rects, in.GetWidget().Rect)
	}
	return rects
}

func (t *targets) build() *page.Node {
	root := page.Div().At(0, 0, float64(cfg.C.Width), float64(cfg.C.Height)).Pin()
	for _, b := range t.buttons {
		w := b.GetWidget()
		if w.Disabled {
			continue
		}
		root.Append(rectNode(page.Button(), w.Rect))
	}
	for _, in := range t.inputs {
		root.Append(rectNode(page.Input(), in.GetWidget().Rect))
	}
	for _, in := range t.textAreas {
		root.Append(rectNode(page.TextArea(), in.GetWidget().Rect))
	}
	return root
}

func rectNode(n *page.Node, r image.Rectangle) *page.Node {
	return n.At(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
}
