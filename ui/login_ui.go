package ui

import (
	cfg "github.com/automoto/lumina/config"
	"github.com/automoto/lumina/page"
	"github.com/ebitenui/ebitenui"
	euiimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// LoginUI asks for the dashboard passphrase.
type LoginUI struct {
	UI *ebitenui.UI

	OnSubmit func(passphrase string)
	OnGoBack func()

	passInput   *widget.TextInput
	statusLabel *widget.Label

	targets targets

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewLoginUI(onSubmit func(string), onGoBack func()) *LoginUI {
	ui := &LoginUI{
		OnSubmit: onSubmit,
		OnGoBack: onGoBack,
	}
	f := loadFaces()
	ui.titleFace, ui.normalFace, ui.smallFace = f.title, f.normal, f.small
	ui.buildUI()
	return ui
}

func (ui *LoginUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(euiimage.NewNineSliceColor(cfg.Theme.Background)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := panel(32, centered())

	content.AddChild(newLabel("Admin Access", &ui.titleFace, cfg.White))

	ui.passInput = ui.targets.input(newTextInput(&ui.normalFace, 320, "Password", true))
	content.AddChild(ui.passInput)

	content.AddChild(ui.targets.button(newButton("ENTER DASHBOARD", &ui.normalFace, 320, stylePrimary, ui.Submit)))

	ui.statusLabel = newLabel("", &ui.smallFace, cfg.Theme.Error)
	content.AddChild(ui.statusLabel)
	content.AddChild(newLabel(cfg.Admin.Hint, &ui.smallFace, mutedText))

	content.AddChild(ui.targets.button(newButton("Back to site", &ui.smallFace, 320, stylePlain, func() {
		if ui.OnGoBack != nil {
			ui.OnGoBack()
		}
	})))

	rootContainer.AddChild(content)
	ui.UI = &ebitenui.UI{Container: rootContainer}
}

// Submit hands the typed passphrase to OnSubmit.
func (ui *LoginUI) Submit() {
	if ui.OnSubmit != nil {
		ui.OnSubmit(ui.passInput.GetText())
	}
}

// Reject clears the field and shows why.
func (ui *LoginUI) Reject(msg string) {
	ui.passInput.SetText("")
	ui.statusLabel.Label = msg
}

func (ui *LoginUI) Targets() *page.Node {
	return ui.targets.tree()
}

func (ui *LoginUI) Update() {
	ui.UI.Update()
}
