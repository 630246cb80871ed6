// Package github imports repository metadata into a project draft.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/automoto/lumina/portfolio"
)

const DefaultAPIURL = "https://api.github.com"

var ErrInvalidRepoURL = errors.New("invalid GitHub URL format")

var repoPattern = regexp.MustCompile(`github\.com/([^/\s]+)/([^/\s?#]+)`)

// APIError is a non-200 reply from the repos endpoint.
type APIError struct {
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github returned status %d", e.StatusCode)
}

// Repo is what the dashboard copies into a project.
type Repo struct {
	Title       string
	Description string
	Topics      []string
	ImageURL    string
	HTMLURL     string
}

// ParseRepoURL extracts owner and name from any URL containing
// github.com/<owner>/<repo>.
func ParseRepoURL(url string) (owner, repo string, err error) {
	m := repoPattern.FindStringSubmatch(strings.TrimSpace(url))
	if m == nil {
		return "", "", ErrInvalidRepoURL
	}
	return m[1], strings.TrimSuffix(m[2], ".git"), nil
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL: DefaultAPIURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

type repoResponse struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Topics      []string `json:"topics"`
	HTMLURL     string   `json:"html_url"`
}

// FetchRepo looks up the repository named in url.
func (c *Client) FetchRepo(ctx context.Context, url string) (Repo, error) {
	owner, name, err := ParseRepoURL(url)
	if err != nil {
		return Repo{}, err
	}

	endpoint := fmt.Sprintf("%s/repos/%s/%s", strings.TrimRight(c.BaseURL, "/"), owner, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Repo{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return Repo{}, fmt.Errorf("fetch repo %s/%s: %w", owner, name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Repo{}, &APIError{StatusCode: resp.StatusCode}
	}

	var data repoResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return Repo{}, fmt.Errorf("decode repo %s/%s: %w", owner, name, err)
	}

	title := strings.NewReplacer("-", " ", "_", " ").Replace(data.Name)
	return Repo{
		Title:       title,
		Description: data.Description,
		Topics:      data.Topics,
		ImageURL:    fmt.Sprintf("https://opengraph.githubassets.com/1/%s/%s", owner, name),
		HTMLURL:     data.HTMLURL,
	}, nil
}

// ApplyTo fills a project draft. An empty description or topic list keeps
// what the draft already had.
func (r Repo) ApplyTo(p *portfolio.Project) {
	p.Title = r.Title
	if r.Description != "" {
		p.Description = r.Description
	}
	if len(r.Topics) > 0 {
		p.Tags = append([]string(nil), r.Topics...)
	}
	p.ImageURL = r.ImageURL
	if r.HTMLURL != "" {
		p.RepoURL = r.HTMLURL
	}
}
