// Package page is the retained element tree the home and admin views are
// built from. Nodes carry the tag, role and class markers the cursor uses to
// decide what counts as interactive.
package page

import (
	"strings"

	"github.com/automoto/lumina/cursor"
	"github.com/hajimehoshi/ebiten/v2"
)

// Rect is an axis-aligned box in page coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Offset returns r moved by dx, dy.
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// PaintFunc draws a node at its on-screen rectangle.
type PaintFunc func(screen *ebiten.Image, r Rect, hovered bool)

// Node is one element of the page tree.
type Node struct {
	ID     string
	Text   string
	Bounds Rect

	// Fixed nodes ignore the scroll offset, like the navbar.
	Fixed bool

	OnClick func()
	Paint   PaintFunc

	Children []*Node

	tag     string
	role    string
	classes []string
	parent  *Node
}

var _ cursor.Element = (*Node)(nil)

// New creates a node with the given tag and children.
func New(tag string, children ...*Node) *Node {
	n := &Node{tag: strings.ToUpper(tag)}
	n.Append(children...)
	return n
}

func (n *Node) Tag() string  { return n.tag }
func (n *Node) Role() string { return n.role }

func (n *Node) HasClass(name string) bool {
	for _, c := range n.classes {
		if c == name {
			return true
		}
	}
	return false
}

// Parent returns an untyped nil at the root so callers can compare to nil.
func (n *Node) Parent() cursor.Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Append adds children and makes n their parent.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		c.parent = n
		n.Children = append(n.Children, c)
	}
	return n
}

func (n *Node) WithID(id string) *Node {
	n.ID = id
	return n
}

func (n *Node) WithRole(role string) *Node {
	n.role = role
	return n
}

func (n *Node) WithClass(classes ...string) *Node {
	n.classes = append(n.classes, classes...)
	return n
}

func (n *Node) WithText(text string) *Node {
	n.Text = text
	return n
}

func (n *Node) At(x, y, w, h float64) *Node {
	n.Bounds = Rect{X: x, Y: y, W: w, H: h}
	return n
}

func (n *Node) Click(fn func()) *Node {
	n.OnClick = fn
	return n
}

func (n *Node) Painted(fn PaintFunc) *Node {
	n.Paint = fn
	return n
}

// Pin marks the node and its subtree as fixed to the viewport.
func (n *Node) Pin() *Node {
	n.Fixed = true
	return n
}

// Pinned reports whether n or an ancestor is fixed.
func (n *Node) Pinned() bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.Fixed {
			return true
		}
	}
	return false
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// Action returns the click handler of n or its nearest ancestor that has one.
func (n *Node) Action() func() {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.OnClick != nil {
			return cur.OnClick
		}
	}
	return nil
}

// Walk visits n and its descendants in document order. Returning false from
// fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Find returns the first node with the given id.
func (n *Node) Find(id string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.ID == id {
			found = c
			return false
		}
		return true
	})
	return found
}

// Extent returns the bottom edge of the lowest scrolling node.
func (n *Node) Extent() float64 {
	var bottom float64
	n.Walk(func(c *Node) bool {
		if c.Fixed {
			return false
		}
		if b := c.Bounds.Bottom(); b > bottom {
			bottom = b
		}
		return true
	})
	return bottom
}

func Div(children ...*Node) *Node     { return New("div", children...) }
func Span(children ...*Node) *Node    { return New("span", children...) }
func Section(children ...*Node) *Node { return New("section", children...) }
func Link(children ...*Node) *Node    { return New("a", children...) }
func Button(children ...*Node) *Node  { return New("button", children...) }
func Input() *Node                    { return New("input") }
func TextArea() *Node                 { return New("textarea") }
