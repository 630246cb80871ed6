package page

import (
	"math"

	"github.com/solarlune/resolv"
)

const (
	resolvNode = "node"
	hitCell    = 32
)

// HitIndex answers "which node is under the pointer" for one page tree.
// Scrolling nodes live in a space in page coordinates, pinned nodes in a
// second space in screen coordinates.
type HitIndex struct {
	root      *Node
	scrolling *resolv.Space
	pinned    *resolv.Space
	probes    map[*resolv.Space]*resolv.Object
	depth     map[*Node]int
	order     map[*Node]int
}

// NewHitIndex indexes every node of root that has a non-empty box.
func NewHitIndex(root *Node, viewW, viewH float64) *HitIndex {
	h := &HitIndex{
		root:   root,
		probes: map[*resolv.Space]*resolv.Object{},
		depth:  map[*Node]int{},
		order:  map[*Node]int{},
	}
	pageH := math.Max(root.Extent(), viewH)
	h.scrolling = newSpace(viewW, pageH)
	h.pinned = newSpace(viewW, viewH)

	var index func(n *Node, depth int)
	index = func(n *Node, depth int) {
		h.depth[n] = depth
		h.order[n] = len(h.order)
		if n.Bounds.W > 0 && n.Bounds.H > 0 {
			obj := resolv.NewObject(n.Bounds.X, n.Bounds.Y, n.Bounds.W, n.Bounds.H, resolvNode)
			obj.SetShape(resolv.NewRectangle(0, 0, n.Bounds.W, n.Bounds.H))
			obj.Data = n
			h.spaceFor(n).Add(obj)
		}
		for _, c := range n.Children {
			index(c, depth+1)
		}
	}
	if root != nil {
		index(root, 0)
	}

	for _, s := range []*resolv.Space{h.scrolling, h.pinned} {
		probe := resolv.NewObject(-1, -1, 1, 1)
		s.Add(probe)
		h.probes[s] = probe
	}
	return h
}

func newSpace(w, h float64) *resolv.Space {
	cols := int(math.Ceil(w/hitCell)) * hitCell
	rows := int(math.Ceil(h/hitCell)) * hitCell
	return resolv.NewSpace(cols, rows, hitCell, hitCell)
}

func (h *HitIndex) spaceFor(n *Node) *resolv.Space {
	if n.Pinned() {
		return h.pinned
	}
	return h.scrolling
}

// At returns the deepest node under the screen point (x, y) with the page
// scrolled by scrollY, or nil. Pinned nodes sit above scrolling ones.
func (h *HitIndex) At(x, y, scrollY float64) *Node {
	if n := h.query(h.pinned, x, y); n != nil {
		return n
	}
	return h.query(h.scrolling, x, y+scrollY)
}

func (h *HitIndex) query(space *resolv.Space, x, y float64) *Node {
	probe := h.probes[space]
	probe.X, probe.Y = x, y
	probe.Update()

	check := probe.Check(0, 0, resolvNode)
	if check == nil {
		return nil
	}

	var best *Node
	for _, obj := range check.Objects {
		n, ok := obj.Data.(*Node)
		if !ok || !n.Bounds.Contains(x, y) {
			continue
		}
		if best == nil || h.above(n, best) {
			best = n
		}
	}
	return best
}

// above orders by depth, then by document order so later siblings win.
func (h *HitIndex) above(a, b *Node) bool {
	if h.depth[a] != h.depth[b] {
		return h.depth[a] > h.depth[b]
	}
	return h.order[a] > h.order[b]
}

// Find returns the node with the given id.
func (h *HitIndex) Find(id string) *Node {
	if h.root == nil {
		return nil
	}
	return h.root.Find(id)
}

func (h *HitIndex) Root() *Node {
	return h.root
}
