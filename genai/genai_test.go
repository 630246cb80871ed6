package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reply(text string) string {
	out, _ := json.Marshal(map[string]any{
		"candidates": []any{
			map[string]any{"content": map[string]any{"parts": []any{map[string]any{"text": text}}}},
		},
	})
	return string(out)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient("test-key", "")
	c.BaseURL = srv.URL
	return c
}

func TestEnhanceDescription(t *testing.T) {
	var got generateRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(reply("  A polished write-up.\n")))
	})

	text, err := c.EnhanceDescription(context.Background(), "BizCard AI", "reads cards")
	require.NoError(t, err)
	assert.Equal(t, "A polished write-up.", text)

	require.Len(t, got.Contents, 1)
	assert.Contains(t, got.Contents[0].Parts[0].Text, "high-end tech portfolio")
	assert.Contains(t, got.Contents[0].Parts[0].Text, "Title: BizCard AI. Raw notes: reads cards")
	assert.Nil(t, got.GenerationConfig)
}

func TestSuggestProjectsRequestsJSON(t *testing.T) {
	var got generateRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(reply(`[
			{"id": "generate-uuid", "title": "Lead Router", "description": "Routes leads", "tags": ["n8n", "Python"], "caseStudy": "Long form."},
			{"title": "", "description": "dropped"},
			{"title": "Invoice Bot"}
		]`)))
	})

	projects, err := c.SuggestProjects(context.Background(), "automation specialist")
	require.NoError(t, err)
	require.NotNil(t, got.GenerationConfig)
	assert.Equal(t, "application/json", got.GenerationConfig.ResponseMIMEType)

	require.Len(t, projects, 2)
	assert.Equal(t, "Lead Router", projects[0].Title)
	assert.Equal(t, []string{"n8n", "Python"}, projects[0].Tags)
	assert.Equal(t, "Long form.", projects[0].CaseStudy)
	assert.Empty(t, projects[0].ID)
	assert.Equal(t, []string{}, projects[1].Tags)
}

func TestSuggestProjectsToleratesBadJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(reply("Sure! Here are some projects.")))
	})

	projects, err := c.SuggestProjects(context.Background(), "x")
	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestParseSuggestionsStripsCodeFence(t *testing.T) {
	projects := parseSuggestions("```json\n[{\"title\": \"Fenced\"}]\n```")
	require.Len(t, projects, 1)
	assert.Equal(t, "Fenced", projects[0].Title)
}

func TestAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "quota exceeded"}}`))
	})

	_, err := c.EnhanceDescription(context.Background(), "", "notes")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Equal(t, "quota exceeded", apiErr.Message)
}

func TestMissingKeyIsUnavailable(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { called = true })
	c.APIKey = ""

	_, err := c.EnhanceDescription(context.Background(), "t", "n")
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = c.SuggestProjects(context.Background(), "p")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.False(t, called)

	var nilClient *Client
	assert.False(t, nilClient.Available())
}

func TestEmptyCandidates(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	})

	text, err := c.EnhanceDescription(context.Background(), "", "n")
	require.NoError(t, err)
	assert.Empty(t, text)
}
