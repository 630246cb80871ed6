// Package portfolio holds the records shown on the home page and edited from
// the admin dashboard.
package portfolio

import (
	"errors"
	"strings"
	"time"
)

var ErrTitleRequired = errors.New("project title is required")

// Project is one showcase entry.
type Project struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Tags            []string  `json:"tags"`
	ImageURL        string    `json:"imageUrl,omitempty"`
	VideoURL        string    `json:"videoUrl,omitempty"`
	CaseStudy       string    `json:"caseStudy,omitempty"`
	RepoURL         string    `json:"repoUrl,omitempty"`
	BusinessOutcome string    `json:"businessOutcome,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Validate checks the fields the dashboard refuses to save without.
func (p Project) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrTitleRequired
	}
	return nil
}

// HasRepo reports whether the card links to source code.
func (p Project) HasRepo() bool {
	return p.RepoURL != ""
}

// ParseTags splits a comma separated list, dropping blanks.
func ParseTags(s string) []string {
	tags := []string{}
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// JoinTags is the inverse of ParseTags.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// VisibleTags returns at most max tags and how many were left out.
func VisibleTags(tags []string, max int) ([]string, int) {
	if max < 0 {
		max = 0
	}
	if len(tags) <= max {
		return tags, 0
	}
	return tags[:max], len(tags) - max
}
