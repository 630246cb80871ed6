package ui

import (
	"github.com/automoto/lumina/contact"
	cfg "github.com/automoto/lumina/config"
	"github.com/automoto/lumina/page"
	"github.com/ebitenui/ebitenui"
	euiimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ContactUI is the modal message form of the home page.
type ContactUI struct {
	UI *ebitenui.UI

	OnSend  func(msg contact.Message)
	OnClose func()

	nameInput    *widget.TextInput
	emailInput   *widget.TextInput
	messageInput *widget.TextInput
	statusLabel  *widget.Label

	targets targets

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewContactUI(onSend func(contact.Message), onClose func()) *ContactUI {
	ui := &ContactUI{
		OnSend:  onSend,
		OnClose: onClose,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *ContactUI) loadFonts() {
	f := loadFaces()
	ui.titleFace = f.title
	ui.normalFace = f.normal
	ui.smallFace = f.small
}

func (ui *ContactUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(euiimage.NewNineSliceColor(cfg.Theme.Overlay)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := panel(24, centered())

	content.AddChild(newLabel("Send a Message", &ui.titleFace, cfg.White))
	content.AddChild(newLabel("Reach me directly at "+cfg.Contact.PublicEmail, &ui.smallFace, mutedText))

	content.AddChild(newLabel("NAME", &ui.smallFace, mutedText))
	ui.nameInput = ui.targets.input(newTextInput(&ui.normalFace, 460, "John Doe", false))
	content.AddChild(ui.nameInput)

	content.AddChild(newLabel("EMAIL", &ui.smallFace, mutedText))
	ui.emailInput = ui.targets.input(newTextInput(&ui.normalFace, 460, "john@company.com", false))
	content.AddChild(ui.emailInput)

	content.AddChild(newLabel("MESSAGE", &ui.smallFace, mutedText))
	ui.messageInput = ui.targets.textArea(newTextInput(&ui.normalFace, 460, "Tell me about your automation needs...", false))
	content.AddChild(ui.messageInput)

	ui.statusLabel = newLabel("", &ui.smallFace, cfg.Theme.Error)
	content.AddChild(ui.statusLabel)

	buttons := horizontal(10)
	buttons.AddChild(ui.targets.button(newButton("SEND MESSAGE", &ui.normalFace, 220, stylePrimary, ui.send)))
	buttons.AddChild(ui.targets.button(newButton("Close", &ui.normalFace, 100, stylePlain, func() {
		if ui.OnClose != nil {
			ui.OnClose()
		}
	})))
	content.AddChild(buttons)

	rootContainer.AddChild(content)
	ui.UI = &ebitenui.UI{Container: rootContainer}
}

// Message returns the form contents.
func (ui *ContactUI) Message() contact.Message {
	return contact.Message{
		Name:  ui.nameInput.GetText(),
		Email: ui.emailInput.GetText(),
		Body:  ui.messageInput.GetText(),
	}
}

func (ui *ContactUI) send() {
	msg := ui.Message()
	if err := msg.Validate(); err != nil {
		ui.SetStatus("Please fill in your name, email and message.")
		return
	}
	ui.SetStatus("")
	if ui.OnSend != nil {
		ui.OnSend(msg)
	}
}

// Clear empties every field.
func (ui *ContactUI) Clear() {
	ui.nameInput.SetText("")
	ui.emailInput.SetText("")
	ui.messageInput.SetText("")
	ui.SetStatus("")
}

func (ui *ContactUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

// Targets returns the pointer targets of the visible widgets.
func (ui *ContactUI) Targets() *page.Node {
	return ui.targets.tree()
}

func (ui *ContactUI) Update() {
	ui.UI.Update()
}
