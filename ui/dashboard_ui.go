package ui

import (
	"fmt"
	"strings"

	cfg "github.com/automoto/lumina/config"
	"github.com/automoto/lumina/page"
	"github.com/ebitenui/ebitenui"
	euiimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// RowsPerPage is how many projects the list shows at once.
const RowsPerPage = 7

// SuggestionSlots is how many generated ideas fit under the form.
const SuggestionSlots = 3

const caseStudyWidth = 600

// ProjectForm is the editable state of the dashboard form.
type ProjectForm struct {
	RepoURL     string
	Title       string
	Tags        string // comma separated
	Image       string // URL or local file path
	Description string
	CaseStudy   string
}

// ProjectRow is one entry of the project list.
type ProjectRow struct {
	Title      string
	Subtitle   string
	Confirming bool // delete was clicked once
}

// DashboardHandlers are the actions the dashboard exposes. Nil handlers are ignored.
type DashboardHandlers struct {
	Fetch         func()
	Enhance       func()
	Generate      func()
	Save          func()
	Cancel        func()
	Edit          func(row int)
	Delete        func(row int)
	UseSuggestion func(slot int)
	Page          func(delta int)
	Exit          func()
}

type projectRowWidgets struct {
	title    *widget.Label
	subtitle *widget.Label
	edit     *widget.Button
	del      *widget.Button
}

// DashboardUI edits the stored projects.
type DashboardUI struct {
	UI *ebitenui.UI

	h DashboardHandlers

	repoInput  *widget.TextInput
	titleInput *widget.TextInput
	tagsInput  *widget.TextInput
	imageInput *widget.TextInput
	descInput  *widget.TextInput

	headingLabel   *widget.Label
	caseStudyLabel *widget.Label
	storageLabel   *widget.Label
	emptyLabel     *widget.Label
	pageLabel      *widget.Label

	saveBtn     *widget.Button
	cancelBtn   *widget.Button
	prevBtn     *widget.Button
	nextBtn     *widget.Button
	suggestions [SuggestionSlots]*widget.Button
	rows        [RowsPerPage]projectRowWidgets

	caseStudy string
	targets   targets

	titleFace  text.Face
	boldFace   text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewDashboardUI(h DashboardHandlers) *DashboardUI {
	ui := &DashboardUI{h: h}
	f := loadFaces()
	ui.titleFace, ui.boldFace, ui.normalFace, ui.smallFace = f.title, f.bold, f.normal, f.small
	ui.buildUI()
	ui.SetEditing(false)
	ui.SetSuggestions(nil)
	ui.SetProjects(nil, 0, 1)
	return ui
}

func (ui *DashboardUI) buildUI() {
	rootContainer := vertical(16, widget.NewInsetsSimple(24),
		widget.ContainerOpts.BackgroundImage(euiimage.NewNineSliceColor(cfg.Theme.Background)),
	)

	header := horizontal(24)
	header.AddChild(newLabel("Dashboard", &ui.titleFace, cfg.White))
	ui.storageLabel = newLabel("", &ui.smallFace, cfg.Theme.Accent)
	header.AddChild(ui.storageLabel)
	header.AddChild(ui.targets.button(newButton("View Site", &ui.smallFace, 110, stylePlain, ui.h.Exit)))
	rootContainer.AddChild(header)

	columns := horizontal(24)
	columns.AddChild(ui.buildForm())
	columns.AddChild(ui.buildList())
	rootContainer.AddChild(columns)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *DashboardUI) buildForm() *widget.Container {
	form := panel(16)

	ui.headingLabel = newLabel("", &ui.boldFace, cfg.White)
	form.AddChild(ui.headingLabel)

	form.AddChild(newLabel("IMPORT FROM GITHUB", &ui.smallFace, cfg.Theme.Accent))
	githubRow := horizontal(8)
	ui.repoInput = ui.targets.input(newTextInput(&ui.normalFace, 470, "https://github.com/username/repository", false))
	githubRow.AddChild(ui.repoInput)
	githubRow.AddChild(ui.targets.button(newButton("Fetch Data", &ui.smallFace, 110, stylePlain, ui.h.Fetch)))
	form.AddChild(githubRow)

	fieldsRow := horizontal(8)
	titleCol := vertical(4, nil)
	titleCol.AddChild(newLabel("TITLE", &ui.smallFace, mutedText))
	ui.titleInput = ui.targets.input(newTextInput(&ui.normalFace, 290, "e.g. n8n Enterprise Automation", false))
	titleCol.AddChild(ui.titleInput)
	fieldsRow.AddChild(titleCol)
	tagsCol := vertical(4, nil)
	tagsCol.AddChild(newLabel("TAGS", &ui.smallFace, mutedText))
	ui.tagsInput = ui.targets.input(newTextInput(&ui.normalFace, 290, "n8n, Python, Make (comma separated)", false))
	tagsCol.AddChild(ui.tagsInput)
	fieldsRow.AddChild(tagsCol)
	form.AddChild(fieldsRow)

	form.AddChild(newLabel("SHORT DESCRIPTION", &ui.smallFace, mutedText))
	ui.descInput = ui.targets.textArea(newTextInput(&ui.normalFace, 588, "Brief overview of the project...", false))
	form.AddChild(ui.descInput)

	form.AddChild(newLabel("COVER IMAGE (URL OR FILE PATH, MAX 5 MB)", &ui.smallFace, mutedText))
	imageRow := horizontal(8)
	ui.imageInput = ui.targets.input(newTextInput(&ui.normalFace, 470, "/home/me/screenshot.png", false))
	imageRow.AddChild(ui.imageInput)
	imageRow.AddChild(ui.targets.button(newButton("Remove", &ui.smallFace, 110, styleDanger, func() {
		ui.imageInput.SetText("")
	})))
	form.AddChild(imageRow)

	actions := horizontal(8)
	actions.AddChild(ui.targets.button(newButton("Generate Case Study", &ui.smallFace, 160, stylePlain, ui.h.Enhance)))
	actions.AddChild(ui.targets.button(newButton("Suggest Ideas", &ui.smallFace, 120, stylePlain, ui.h.Generate)))
	ui.cancelBtn = ui.targets.button(newButton("Cancel Edit", &ui.smallFace, 110, stylePlain, ui.h.Cancel))
	actions.AddChild(ui.cancelBtn)
	ui.saveBtn = ui.targets.button(newButton("", &ui.normalFace, 180, stylePrimary, ui.h.Save))
	actions.AddChild(ui.saveBtn)
	form.AddChild(actions)

	suggestionRow := horizontal(8)
	for i := range ui.suggestions {
		slot := i
		ui.suggestions[i] = ui.targets.button(newButton("", &ui.smallFace, 190, stylePlain, func() {
			if ui.h.UseSuggestion != nil {
				ui.h.UseSuggestion(slot)
			}
		}))
		suggestionRow.AddChild(ui.suggestions[i])
	}
	form.AddChild(suggestionRow)

	ui.caseStudyLabel = newLabel("", &ui.smallFace, mutedText)
	form.AddChild(ui.caseStudyLabel)

	return form
}

func (ui *DashboardUI) buildList() *widget.Container {
	list := panel(16)
	list.AddChild(newLabel("EXISTING PROJECTS", &ui.boldFace, mutedText))

	ui.emptyLabel = newLabel("", &ui.smallFace, mutedText)
	list.AddChild(ui.emptyLabel)

	for i := range ui.rows {
		row := i
		r := &ui.rows[i]

		container := horizontal(8)
		texts := vertical(2, nil)
		r.title = newLabel("", &ui.normalFace, cfg.White)
		r.subtitle = newLabel("", &ui.smallFace, mutedText)
		texts.AddChild(r.title)
		texts.AddChild(r.subtitle)

		r.edit = ui.targets.button(newButton("Edit", &ui.smallFace, 60, stylePlain, func() {
			if ui.h.Edit != nil {
				ui.h.Edit(row)
			}
		}))
		r.del = ui.targets.button(newButton("Delete", &ui.smallFace, 80, styleDanger, func() {
			if ui.h.Delete != nil {
				ui.h.Delete(row)
			}
		}))
		container.AddChild(r.edit)
		container.AddChild(r.del)
		container.AddChild(texts)
		list.AddChild(container)
	}

	pager := horizontal(8)
	ui.prevBtn = ui.targets.button(newButton("Prev", &ui.smallFace, 60, stylePlain, func() {
		if ui.h.Page != nil {
			ui.h.Page(-1)
		}
	}))
	ui.nextBtn = ui.targets.button(newButton("Next", &ui.smallFace, 60, stylePlain, func() {
		if ui.h.Page != nil {
			ui.h.Page(1)
		}
	}))
	ui.pageLabel = newLabel("", &ui.smallFace, mutedText)
	pager.AddChild(ui.prevBtn)
	pager.AddChild(ui.pageLabel)
	pager.AddChild(ui.nextBtn)
	list.AddChild(pager)

	return list
}

// Form returns the current field values.
func (ui *DashboardUI) Form() ProjectForm {
	return ProjectForm{
		RepoURL:     strings.TrimSpace(ui.repoInput.GetText()),
		Title:       strings.TrimSpace(ui.titleInput.GetText()),
		Tags:        ui.tagsInput.GetText(),
		Image:       strings.TrimSpace(ui.imageInput.GetText()),
		Description: ui.descInput.GetText(),
		CaseStudy:   ui.caseStudy,
	}
}

// SetForm replaces every field.
func (ui *DashboardUI) SetForm(f ProjectForm) {
	ui.repoInput.SetText(f.RepoURL)
	ui.titleInput.SetText(f.Title)
	ui.tagsInput.SetText(f.Tags)
	ui.imageInput.SetText(f.Image)
	ui.descInput.SetText(f.Description)
	ui.SetCaseStudy(f.CaseStudy)
}

// SetCaseStudy shows a preview of the case study kept with the form.
func (ui *DashboardUI) SetCaseStudy(s string) {
	ui.caseStudy = s
	if s == "" {
		ui.caseStudyLabel.Label = ""
		return
	}
	lines := strings.Split(wrapText(ui.smallFace, s, caseStudyWidth), "\n")
	if len(lines) > 5 {
		lines = append(lines[:5], "...")
	}
	ui.caseStudyLabel.Label = "CASE STUDY\n" + strings.Join(lines, "\n")
}

// SetEditing switches between adding and updating a project.
func (ui *DashboardUI) SetEditing(editing bool) {
	if editing {
		ui.headingLabel.Label = "Edit Project"
		setButtonLabel(ui.saveBtn, "Update Project")
	} else {
		ui.headingLabel.Label = "Add New Project"
		setButtonLabel(ui.saveBtn, "Save Project")
	}
	ui.cancelBtn.GetWidget().Disabled = !editing
}

// SetSuggestions fills the idea buttons; empty slots are disabled.
func (ui *DashboardUI) SetSuggestions(titles []string) {
	for i, b := range ui.suggestions {
		label := ""
		if i < len(titles) {
			label = titles[i]
			if r := []rune(label); len(r) > 26 {
				label = string(r[:25]) + "..."
			}
		}
		setButtonLabel(b, label)
		b.GetWidget().Disabled = label == ""
	}
}

// SetProjects shows one page of the list. current is zero-based.
func (ui *DashboardUI) SetProjects(rows []ProjectRow, current, pages int) {
	if len(rows) == 0 && current == 0 {
		ui.emptyLabel.Label = "No projects yet. Add one on the left."
	} else {
		ui.emptyLabel.Label = ""
	}

	for i := range ui.rows {
		r := &ui.rows[i]
		if i >= len(rows) {
			r.title.Label, r.subtitle.Label = "", ""
			setButtonLabel(r.edit, "")
			setButtonLabel(r.del, "")
			r.edit.GetWidget().Disabled = true
			r.del.GetWidget().Disabled = true
			continue
		}
		r.title.Label = rows[i].Title
		r.subtitle.Label = rows[i].Subtitle
		setButtonLabel(r.edit, "Edit")
		setButtonLabel(r.del, "Delete")
		if rows[i].Confirming {
			setButtonLabel(r.del, "Confirm?")
		}
		r.edit.GetWidget().Disabled = false
		r.del.GetWidget().Disabled = false
	}

	if pages < 1 {
		pages = 1
	}
	ui.pageLabel.Label = fmt.Sprintf("%d / %d", current+1, pages)
	ui.prevBtn.GetWidget().Disabled = current <= 0
	ui.nextBtn.GetWidget().Disabled = current >= pages-1
}

// SetStorage shows which backend the dashboard writes to.
func (ui *DashboardUI) SetStorage(s string) {
	ui.storageLabel.Label = s
}

func (ui *DashboardUI) Targets() *page.Node {
	return ui.targets.tree()
}

func (ui *DashboardUI) Update() {
	ui.UI.Update()
}
