package scenes

import (
	"strings"

	"github.com/automoto/lumina/github"
	"github.com/automoto/lumina/portfolio"
	"github.com/automoto/lumina/store"
	"github.com/automoto/lumina/ui"
)

// editor is the dashboard state without any widgets: the form, which
// project is being edited, the pending delete and the list page.
type editor struct {
	form        ui.ProjectForm
	editingID   string
	confirmID   string
	projects    []portfolio.Project
	suggestions []portfolio.Project
	page        int
}

func (e *editor) pages() int {
	n := (len(e.projects) + ui.RowsPerPage - 1) / ui.RowsPerPage
	if n == 0 {
		return 1
	}
	return n
}

// turn moves the list by delta pages, staying in range.
func (e *editor) turn(delta int) {
	e.page += delta
	if e.page >= e.pages() {
		e.page = e.pages() - 1
	}
	if e.page < 0 {
		e.page = 0
	}
}

func (e *editor) setProjects(projects []portfolio.Project) {
	e.projects = projects
	e.turn(0)
}

// projectAt returns the project shown in row of the current page.
func (e *editor) projectAt(row int) (portfolio.Project, bool) {
	i := e.page*ui.RowsPerPage + row
	if row < 0 || row >= ui.RowsPerPage || i >= len(e.projects) {
		return portfolio.Project{}, false
	}
	return e.projects[i], true
}

func (e *editor) rows() []ui.ProjectRow {
	var rows []ui.ProjectRow
	for row := 0; row < ui.RowsPerPage; row++ {
		p, ok := e.projectAt(row)
		if !ok {
			break
		}
		rows = append(rows, ui.ProjectRow{
			Title:      p.Title,
			Subtitle:   portfolio.JoinTags(p.Tags),
			Confirming: p.ID == e.confirmID,
		})
	}
	return rows
}

// touch cancels a pending delete. Every action other than the second
// delete click calls it.
func (e *editor) touch() {
	e.confirmID = ""
}

func (e *editor) edit(row int) bool {
	e.touch()
	p, ok := e.projectAt(row)
	if !ok {
		return false
	}
	e.editingID = p.ID
	e.form = formOf(p)
	return true
}

// requestDelete returns the project id once the same row was clicked twice.
func (e *editor) requestDelete(row int) (string, bool) {
	p, ok := e.projectAt(row)
	if !ok {
		e.touch()
		return "", false
	}
	if e.confirmID == p.ID {
		e.confirmID = ""
		return p.ID, true
	}
	e.confirmID = p.ID
	return "", false
}

// deleted drops id from the list and resets the form if it was being edited.
func (e *editor) deleted(id string) {
	var kept []portfolio.Project
	for _, p := range e.projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	e.setProjects(kept)
	if e.editingID == id {
		e.reset()
	}
}

func (e *editor) reset() {
	e.form = ui.ProjectForm{}
	e.editingID = ""
	e.touch()
}

func (e *editor) editing() (portfolio.Project, bool) {
	if e.editingID == "" {
		return portfolio.Project{}, false
	}
	for _, p := range e.projects {
		if p.ID == e.editingID {
			return p, true
		}
	}
	return portfolio.Project{ID: e.editingID}, true
}

// draft builds the record to save from the form. Fields the form does not
// show are kept from the project being edited.
func (e *editor) draft() (portfolio.Project, error) {
	p, _ := e.editing()
	p.Title = strings.TrimSpace(e.form.Title)
	p.Description = e.form.Description
	p.Tags = portfolio.ParseTags(e.form.Tags)
	p.CaseStudy = e.form.CaseStudy
	p.RepoURL = strings.TrimSpace(e.form.RepoURL)
	if localImage(e.form.Image) == "" {
		p.ImageURL = strings.TrimSpace(e.form.Image)
	}
	return p, p.Validate()
}

// localImage returns the form's image when it names a file to upload.
func (e *editor) localImage() string {
	return localImage(e.form.Image)
}

func localImage(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || store.IsImageURL(s) || strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return ""
	}
	return s
}

// applyRepo fills the form from imported repository data.
func (e *editor) applyRepo(r github.Repo) {
	p, _ := e.draft()
	r.ApplyTo(&p)
	repoURL := e.form.RepoURL
	e.form = formOf(p)
	if p.RepoURL == "" {
		e.form.RepoURL = repoURL
	}
}

// useSuggestion copies a generated idea into the form.
func (e *editor) useSuggestion(slot int) bool {
	e.touch()
	if slot < 0 || slot >= len(e.suggestions) {
		return false
	}
	s := e.suggestions[slot]
	e.form.Title = s.Title
	e.form.Description = s.Description
	e.form.Tags = portfolio.JoinTags(s.Tags)
	return true
}

func (e *editor) suggestionTitles() []string {
	titles := make([]string, 0, len(e.suggestions))
	for _, s := range e.suggestions {
		titles = append(titles, s.Title)
	}
	return titles
}

func formOf(p portfolio.Project) ui.ProjectForm {
	return ui.ProjectForm{
		RepoURL:     p.RepoURL,
		Title:       p.Title,
		Tags:        portfolio.JoinTags(p.Tags),
		Image:       p.ImageURL,
		Description: p.Description,
		CaseStudy:   p.CaseStudy,
	}
}
