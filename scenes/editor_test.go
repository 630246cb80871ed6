package scenes

import (
	"fmt"
	"testing"
	"time"

	"github.com/automoto/lumina/github"
	"github.com/automoto/lumina/portfolio"
	"github.com/automoto/lumina/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProjects(n int) []portfolio.Project {
	projects := make([]portfolio.Project, n)
	for i := range projects {
		projects[i] = portfolio.Project{
			ID:    fmt.Sprintf("p%d", i),
			Title: fmt.Sprintf("Project %d", i),
			Tags:  []string{"n8n", "Go"},
		}
	}
	return projects
}

func TestEditorPaging(t *testing.T) {
	var e editor
	assert.Equal(t, 1, e.pages())
	assert.Empty(t, e.rows())

	e.setProjects(sampleProjects(ui.RowsPerPage + 2))
	assert.Equal(t, 2, e.pages())
	assert.Len(t, e.rows(), ui.RowsPerPage)

	e.turn(1)
	assert.Equal(t, 1, e.page)
	rows := e.rows()
	require.Len(t, rows, 2)
	assert.Equal(t, fmt.Sprintf("Project %d", ui.RowsPerPage), rows[0].Title)
	assert.Equal(t, "n8n, Go", rows[0].Subtitle)

	e.turn(5)
	assert.Equal(t, 1, e.page)
	e.turn(-5)
	assert.Equal(t, 0, e.page)

	// Shrinking the list pulls the page back in range.
	e.page = 1
	e.setProjects(sampleProjects(3))
	assert.Equal(t, 0, e.page)
}

func TestEditorTwoStepDelete(t *testing.T) {
	var e editor
	e.setProjects(sampleProjects(3))

	id, ok := e.requestDelete(1)
	assert.False(t, ok)
	assert.Empty(t, id)
	assert.True(t, e.rows()[1].Confirming)

	// Any other action cancels the pending delete.
	e.touch()
	assert.False(t, e.rows()[1].Confirming)

	e.requestDelete(1)
	id, ok = e.requestDelete(2)
	assert.False(t, ok)
	assert.Empty(t, id)
	assert.True(t, e.rows()[2].Confirming)

	id, ok = e.requestDelete(2)
	assert.True(t, ok)
	assert.Equal(t, "p2", id)
	assert.False(t, e.rows()[2].Confirming)

	_, ok = e.requestDelete(9)
	assert.False(t, ok)
}

func TestEditorDeletedResetsEditedForm(t *testing.T) {
	var e editor
	e.setProjects(sampleProjects(3))
	require.True(t, e.edit(1))
	assert.Equal(t, "Project 1", e.form.Title)

	e.deleted("p0")
	assert.Len(t, e.projects, 2)
	assert.Equal(t, "p1", e.editingID)

	e.deleted("p1")
	assert.Len(t, e.projects, 1)
	assert.Empty(t, e.editingID)
	assert.Equal(t, ui.ProjectForm{}, e.form)
}

func TestEditorDraftKeepsHiddenFields(t *testing.T) {
	created := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	var e editor
	e.setProjects([]portfolio.Project{{
		ID:              "p0",
		Title:           "Old",
		ImageURL:        "store://images/1.png",
		VideoURL:        "https://example.com/v.mp4",
		BusinessOutcome: "3x leads",
		CreatedAt:       created,
	}})
	require.True(t, e.edit(0))

	e.form.Title = "  New title "
	e.form.Tags = "a, b,,c"
	p, err := e.draft()
	require.NoError(t, err)
	assert.Equal(t, "p0", p.ID)
	assert.Equal(t, "New title", p.Title)
	assert.Equal(t, []string{"a", "b", "c"}, p.Tags)
	assert.Equal(t, "store://images/1.png", p.ImageURL)
	assert.Equal(t, "https://example.com/v.mp4", p.VideoURL)
	assert.Equal(t, "3x leads", p.BusinessOutcome)
	assert.Equal(t, created, p.CreatedAt)

	// A local path is uploaded on save; until then the old image stays.
	e.form.Image = "/home/me/shot.png"
	assert.Equal(t, "/home/me/shot.png", e.localImage())
	p, err = e.draft()
	require.NoError(t, err)
	assert.Equal(t, "store://images/1.png", p.ImageURL)
}

func TestEditorDraftNeedsTitle(t *testing.T) {
	e := editor{form: ui.ProjectForm{Title: "   ", Description: "notes"}}
	_, err := e.draft()
	assert.ErrorIs(t, err, portfolio.ErrTitleRequired)
}

func TestLocalImage(t *testing.T) {
	assert.Empty(t, localImage(""))
	assert.Empty(t, localImage("https://placehold.co/800x600"))
	assert.Empty(t, localImage("http://example.com/a.png"))
	assert.Empty(t, localImage("store://images/1.png"))
	assert.Equal(t, "shot.jpg", localImage(" shot.jpg "))
}

func TestEditorApplyRepo(t *testing.T) {
	e := editor{form: ui.ProjectForm{
		RepoURL:     "https://github.com/acme/lead-router",
		Description: "my notes",
		Tags:        "keep",
	}}
	e.applyRepo(github.Repo{
		Title:    "lead router",
		ImageURL: "https://opengraph.githubassets.com/1/acme/lead-router",
	})

	assert.Equal(t, "lead router", e.form.Title)
	assert.Equal(t, "my notes", e.form.Description)
	assert.Equal(t, "keep", e.form.Tags)
	assert.Equal(t, "https://opengraph.githubassets.com/1/acme/lead-router", e.form.Image)
	assert.Equal(t, "https://github.com/acme/lead-router", e.form.RepoURL)
}

func TestEditorUseSuggestion(t *testing.T) {
	e := editor{suggestions: []portfolio.Project{{
		Title:       "Invoice Agent",
		Description: "Reads invoices",
		Tags:        []string{"OCR", "n8n"},
	}}}
	e.confirmID = "p1"

	assert.False(t, e.useSuggestion(3))
	assert.Empty(t, e.confirmID)

	require.True(t, e.useSuggestion(0))
	assert.Equal(t, "Invoice Agent", e.form.Title)
	assert.Equal(t, "Reads invoices", e.form.Description)
	assert.Equal(t, "OCR, n8n", e.form.Tags)
	assert.Equal(t, []string{"Invoice Agent"}, e.suggestionTitles())
}
