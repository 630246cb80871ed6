package cursor

import "strings"

// maxAncestorDepth bounds the ancestor walk so a malformed tree cannot loop forever.
const maxAncestorDepth = 256

// Element is a node of the view tree that pointer events can target.
// Parent must return an untyped nil at the root.
type Element interface {
	Tag() string
	Role() string
	HasClass(name string) bool
	Parent() Element
}

// Classifier decides whether an element reacts to clicks.
type Classifier struct {
	Tags    []string // element tags, case-insensitive
	Roles   []string // explicit role markers
	Classes []string // opt-in class markers
}

// DefaultClassifier treats links, buttons, text inputs and textareas as
// interactive, plus anything marked role="button" or class "clickable".
func DefaultClassifier() Classifier {
	return Classifier{
		Tags:    []string{"a", "button", "input", "textarea"},
		Roles:   []string{"button"},
		Classes: []string{"clickable"},
	}
}

// IsInteractive reports whether el or any of its ancestors matches the classifier.
func (c Classifier) IsInteractive(el Element) bool {
	for depth := 0; el != nil && depth < maxAncestorDepth; depth++ {
		if c.matches(el) {
			return true
		}
		el = el.Parent()
	}
	return false
}

func (c Classifier) matches(el Element) bool {
	tag := el.Tag()
	for _, t := range c.Tags {
		if strings.EqualFold(tag, t) {
			return true
		}
	}
	if role := el.Role(); role != "" {
		for _, r := range c.Roles {
			if role == r {
				return true
			}
		}
	}
	for _, cl := range c.Classes {
		if el.HasClass(cl) {
			return true
		}
	}
	return false
}
