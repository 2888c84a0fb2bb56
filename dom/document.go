package dom

import "errors"

var (
	// ErrDetached is returned by geometry reads on a node that is not part of
	// a document.
	ErrDetached = errors.New("dom: node is not attached to a document")

	// ErrNoParent is returned by Container on a node without a parent.
	ErrNoParent = errors.New("dom: node has no parent element")
)

// Document owns the node tree and the window looking at it.
type Document struct {
	body   *Node
	window *Window
	dirty  bool
}

// NewDocument creates an empty document with a viewport of the given size.
func NewDocument(viewportWidth, viewportHeight float64) *Document {
	d := &Document{dirty: true}
	d.body = New(WithID("body"))
	d.body.doc = d
	d.window = &Window{doc: d, width: viewportWidth, height: viewportHeight}
	return d
}

// Body returns the root node.
func (d *Document) Body() *Node {
	return d.body
}

// Window returns the document's viewport.
func (d *Document) Window() *Window {
	return d.window
}

// Height returns the scrollable height of the document.
func (d *Document) Height() float64 {
	d.ensureLayout()
	return d.body.box.Bottom() + d.body.margin.Bottom
}

// GetElementByID returns the first node with the given id, in document order.
func (d *Document) GetElementByID(id string) *Node {
	var found *Node
	walk(d.body, func(n *Node) bool {
		if n.id == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// GetElementsByClassName returns every node carrying class, in document order.
func (d *Document) GetElementsByClassName(class string) []*Node {
	var out []*Node
	walk(d.body, func(n *Node) bool {
		if n.HasClass(class) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// MarkDirty forces the next geometry read to recompute layout.
func (d *Document) MarkDirty() {
	d.dirty = true
}

func (d *Document) ensureLayout() {
	if !d.dirty {
		return
	}
	d.dirty = false
	computeLayout(d)
}

// walk visits nodes depth-first in document order until fn returns false.
func walk(n *Node, fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}
