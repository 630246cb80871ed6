// Package genai calls the Gemini generateContent endpoint to write and
// suggest portfolio copy.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/automoto/lumina/portfolio"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-2.5-flash"
)

// ErrUnavailable is returned when no API key is configured.
var ErrUnavailable = errors.New("AI service unavailable")

// APIError is a non-2xx reply from the endpoint.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gemini returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("gemini returned status %d: %s", e.StatusCode, e.Message)
}

// Client is safe for concurrent use.
type Client struct {
	APIKey  string
	Model   string
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a client with the default endpoint and a request timeout.
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: DefaultBaseURL,
		HTTP:    &http.Client{Timeout: 60 * time.Second},
	}
}

// Available reports whether requests can be made at all.
func (c *Client) Available() bool {
	return c != nil && c.APIKey != ""
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) generate(ctx context.Context, prompt, mimeType string) (string, error) {
	if !c.Available() {
		return "", ErrUnavailable
	}

	body := generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	}
	if mimeType != "" {
		body.GenerationConfig = &generationConfig{ResponseMIMEType: mimeType}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", strings.TrimRight(c.BaseURL, "/"), c.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.APIKey)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read gemini reply: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var e errorResponse
		if json.Unmarshal(data, &e) == nil {
			apiErr.Message = e.Error.Message
		}
		return "", apiErr
	}

	var out generateResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("decode gemini reply: %w", err)
	}
	if len(out.Candidates) == 0 {
		return "", nil
	}
	var sb strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

// EnhanceDescription rewrites a project write-up for the showcase.
func (c *Client) EnhanceDescription(ctx context.Context, title, notes string) (string, error) {
	text, err := c.generate(ctx, enhancePrompt(title, notes), "")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// SuggestProjects asks for hypothetical projects matching a profile. Output
// that is not a JSON array of projects yields an empty slice.
func (c *Client) SuggestProjects(ctx context.Context, profileContext string) ([]portfolio.Project, error) {
	text, err := c.generate(ctx, suggestPrompt(profileContext), "application/json")
	if err != nil {
		return nil, err
	}
	return parseSuggestions(text), nil
}

type suggestion struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	CaseStudy   string   `json:"caseStudy"`
}

func parseSuggestions(text string) []portfolio.Project {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var raw []suggestion
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &raw); err != nil {
		log.Printf("Warning: Could not parse project suggestions: %v", err)
		return []portfolio.Project{}
	}

	projects := make([]portfolio.Project, 0, len(raw))
	for _, s := range raw {
		if strings.TrimSpace(s.Title) == "" {
			continue
		}
		tags := s.Tags
		if tags == nil {
			tags = []string{}
		}
		projects = append(projects, portfolio.Project{
			Title:       s.Title,
			Description: s.Description,
			Tags:        tags,
			CaseStudy:   s.CaseStudy,
		})
	}
	return projects
}
