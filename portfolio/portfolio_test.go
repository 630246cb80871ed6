package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, Project{}.Validate(), ErrTitleRequired)
	assert.ErrorIs(t, Project{Title: "   "}.Validate(), ErrTitleRequired)
	assert.NoError(t, Project{Title: "BizCard AI"}.Validate())
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"a, b,,c", []string{"a", "b", "c"}},
		{"  n8n  ,Python ", []string{"n8n", "Python"}},
		{",,,", []string{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseTags(tt.in), "input %q", tt.in)
	}
}

func TestJoinTagsRoundTrip(t *testing.T) {
	tags := []string{"React", "Supabase", "Gemini Vision"}
	assert.Equal(t, "React, Supabase, Gemini Vision", JoinTags(tags))
	assert.Equal(t, tags, ParseTags(JoinTags(tags)))
}

func TestVisibleTags(t *testing.T) {
	tags := []string{"a", "b", "c", "d", "e", "f"}

	shown, more := VisibleTags(tags, 4)
	assert.Equal(t, []string{"a", "b", "c", "d"}, shown)
	assert.Equal(t, 2, more)

	shown, more = VisibleTags(tags[:3], 4)
	assert.Len(t, shown, 3)
	assert.Zero(t, more)
}

func TestShowcaseFallsBackToSeed(t *testing.T) {
	assert.Len(t, Showcase(nil), 3)

	stored := []Project{{ID: "x", Title: "Mine"}}
	assert.Equal(t, stored, Showcase(stored))
}
