package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testNode struct {
	tag     string
	role    string
	classes []string
	parent  *testNode
}

func (n *testNode) Tag() string  { return n.tag }
func (n *testNode) Role() string { return n.role }

func (n *testNode) HasClass(name string) bool {
	for _, c := range n.classes {
		if c == name {
			return true
		}
	}
	return false
}

func (n *testNode) Parent() Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func TestIsInteractive(t *testing.T) {
	c := DefaultClassifier()

	body := &testNode{tag: "BODY"}
	button := &testNode{tag: "BUTTON", parent: body}
	link := &testNode{tag: "A", parent: body}
	card := &testNode{tag: "DIV", classes: []string{"group", "clickable"}, parent: body}
	roleDiv := &testNode{tag: "DIV", role: "button", parent: body}
	plain := &testNode{tag: "DIV", parent: body}

	tests := []struct {
		name string
		el   Element
		want bool
	}{
		{"button", button, true},
		{"link", link, true},
		{"text input", &testNode{tag: "INPUT"}, true},
		{"textarea", &testNode{tag: "TEXTAREA"}, true},
		{"lowercase tag", &testNode{tag: "button"}, true},
		{"span inside button", &testNode{tag: "SPAN", parent: button}, true},
		{"svg deep inside link", &testNode{tag: "PATH", parent: &testNode{tag: "SVG", parent: &testNode{tag: "SPAN", parent: link}}}, true},
		{"role button", roleDiv, true},
		{"child of role button", &testNode{tag: "SPAN", parent: roleDiv}, true},
		{"clickable class", card, true},
		{"image inside clickable card", &testNode{tag: "IMG", parent: &testNode{tag: "DIV", parent: card}}, true},
		{"plain div", plain, false},
		{"span in plain div", &testNode{tag: "SPAN", parent: plain}, false},
		{"other role", &testNode{tag: "DIV", role: "heading"}, false},
		{"body", body, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsInteractive(tt.el))
		})
	}
}

func TestIsInteractiveIsStateless(t *testing.T) {
	c := DefaultClassifier()
	button := &testNode{tag: "BUTTON"}
	div := &testNode{tag: "DIV"}

	assert.True(t, c.IsInteractive(button))
	assert.False(t, c.IsInteractive(div))
	assert.True(t, c.IsInteractive(button))
}

func TestCustomClassifier(t *testing.T) {
	c := Classifier{Tags: []string{"summary"}, Classes: []string{"tappable"}}

	assert.True(t, c.IsInteractive(&testNode{tag: "SUMMARY"}))
	assert.True(t, c.IsInteractive(&testNode{tag: "LI", classes: []string{"tappable"}}))
	assert.False(t, c.IsInteractive(&testNode{tag: "BUTTON"}))
	assert.False(t, c.IsInteractive(&testNode{tag: "DIV", role: "button"}))
}

func TestIsInteractiveStopsOnCycles(t *testing.T) {
	a := &testNode{tag: "DIV"}
	b := &testNode{tag: "DIV", parent: a}
	a.parent = b

	assert.False(t, DefaultClassifier().IsInteractive(a))
}
