package dom

import (
	"slices"

	"github.com/grindlemire/go-pin/internal/layout"
)

// Node is a block box in the document tree.
type Node struct {
	// Tree structure
	doc      *Document
	parent   *Node
	children []*Node

	// Attributes
	id       string
	classes  []string
	style    string
	hasStyle bool

	// Box model. Width and height are content sizes; nil means auto.
	width   *float64
	height  *float64
	margin  layout.Edges
	padding layout.Edges
	border  layout.Edges

	// Computed by layout, document coordinates of the border box.
	box layout.Rect
	// Where the node would sit in normal flow (margin edge) and the width
	// available to it there. Only meaningful for out-of-flow nodes.
	static      layout.Point
	staticWidth float64
}

// Option configures a Node.
type Option func(*Node)

// New creates a detached Node with the given options.
func New(opts ...Option) *Node {
	n := &Node{}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// WithID sets the node's id attribute.
func WithID(id string) Option {
	return func(n *Node) {
		n.id = id
	}
}

// WithClass adds classes to the node.
func WithClass(classes ...string) Option {
	return func(n *Node) {
		for _, c := range classes {
			if c != "" && !slices.Contains(n.classes, c) {
				n.classes = append(n.classes, c)
			}
		}
	}
}

// WithStyle sets the raw inline style attribute.
func WithStyle(style string) Option {
	return func(n *Node) {
		n.style = style
		n.hasStyle = true
	}
}

// WithHeight sets a fixed content height.
func WithHeight(px float64) Option {
	return func(n *Node) {
		n.height = &px
	}
}

// WithWidth sets a fixed content width.
func WithWidth(px float64) Option {
	return func(n *Node) {
		n.width = &px
	}
}

// WithMargin sets the margin edges.
func WithMargin(e layout.Edges) Option {
	return func(n *Node) {
		n.margin = e
	}
}

// WithPadding sets the padding edges.
func WithPadding(e layout.Edges) Option {
	return func(n *Node) {
		n.padding = e
	}
}

// WithBorder sets the border widths.
func WithBorder(e layout.Edges) Option {
	return func(n *Node) {
		n.border = e
	}
}

// WithChildren appends children at construction time.
func WithChildren(children ...*Node) Option {
	return func(n *Node) {
		n.AppendChild(children...)
	}
}

// ID returns the node's id attribute.
func (n *Node) ID() string {
	return n.id
}

// String identifies the node for logs.
func (n *Node) String() string {
	if n.id != "" {
		return "#" + n.id
	}
	if len(n.classes) > 0 {
		return "." + n.classes[0]
	}
	return "node"
}

// --- Tree ---

// AppendChild appends children to this node.
func (n *Node) AppendChild(children ...*Node) {
	for _, child := range children {
		if child.parent != nil {
			child.parent.RemoveChild(child)
		}
		child.parent = n
		child.setDocRecursive(n.doc)
		n.children = append(n.children, child)
	}
	n.markDirty()
}

// InsertAfter inserts child into this node right after ref. If ref is not a
// child of this node, child is appended.
func (n *Node) InsertAfter(child, ref *Node) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	idx := slices.Index(n.children, ref)
	if idx < 0 {
		n.AppendChild(child)
		return
	}
	child.parent = n
	child.setDocRecursive(n.doc)
	n.children = slices.Insert(n.children, idx+1, child)
	n.markDirty()
}

// RemoveChild removes a child, preserving sibling order.
// Returns true if the child was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	idx := slices.Index(n.children, child)
	if idx < 0 {
		return false
	}
	n.children = slices.Delete(n.children, idx, idx+1)
	child.parent = nil
	child.setDocRecursive(nil)
	n.markDirty()
	return true
}

// Children returns the child nodes.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the parent node, or nil for the body and detached nodes.
func (n *Node) Parent() *Node {
	return n.parent
}

// NextSibling returns the node following this one under the same parent.
func (n *Node) NextSibling() *Node {
	if n.parent == nil {
		return nil
	}
	idx := slices.Index(n.parent.children, n)
	if idx < 0 || idx+1 >= len(n.parent.children) {
		return nil
	}
	return n.parent.children[idx+1]
}

// Clone returns a deep copy of the node without a parent. The id attribute
// is not copied so that ids stay unique.
func (n *Node) Clone() *Node {
	c := &Node{
		classes:  slices.Clone(n.classes),
		style:    n.style,
		hasStyle: n.hasStyle,
		width:    n.width,
		height:   n.height,
		margin:   n.margin,
		padding:  n.padding,
		border:   n.border,
	}
	for _, child := range n.children {
		cc := child.Clone()
		cc.parent = c
		c.children = append(c.children, cc)
	}
	return c
}

func (n *Node) setDocRecursive(doc *Document) {
	n.doc = doc
	for _, child := range n.children {
		child.setDocRecursive(doc)
	}
}

func (n *Node) markDirty() {
	if n.doc != nil {
		n.doc.MarkDirty()
	}
}
