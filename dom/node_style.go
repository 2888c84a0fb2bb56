package dom

import (
	"slices"

	"github.com/grindlemire/go-pin/internal/layout"
)

// StyleAttribute returns the raw inline style attribute and whether it is
// present at all.
func (n *Node) StyleAttribute() (string, bool, error) {
	return n.style, n.hasStyle, nil
}

// SetStyleAttribute replaces the raw inline style attribute. present=false
// removes the attribute.
func (n *Node) SetStyleAttribute(value string, present bool) error {
	if !present {
		value = ""
	}
	n.style = value
	n.hasStyle = present
	n.markDirty()
	return nil
}

// SetCSS merges declarations into the inline style attribute.
// An empty value removes the property.
func (n *Node) SetCSS(decls ...layout.Declaration) error {
	merged := layout.Merge(layout.ParseDeclarations(n.style), decls...)
	n.style = layout.FormatDeclarations(merged)
	n.hasStyle = true
	n.markDirty()
	return nil
}

// CSS returns the inline value of property, or "" if unset.
func (n *Node) CSS(property string) string {
	value := ""
	for _, d := range layout.ParseDeclarations(n.style) {
		if d.Property == property {
			value = d.Value
		}
	}
	return value
}

// AddClass adds class if not already present.
func (n *Node) AddClass(class string) error {
	if class != "" && !slices.Contains(n.classes, class) {
		n.classes = append(n.classes, class)
	}
	return nil
}

// RemoveClass removes class if present.
func (n *Node) RemoveClass(class string) error {
	n.classes = slices.DeleteFunc(n.classes, func(c string) bool { return c == class })
	return nil
}

// HasClass reports whether the node carries class.
func (n *Node) HasClass(class string) bool {
	return slices.Contains(n.classes, class)
}

// Classes returns the node's classes in insertion order.
func (n *Node) Classes() []string {
	return slices.Clone(n.classes)
}

// SetHeight changes the node's fixed content height. A negative value
// restores auto height.
func (n *Node) SetHeight(px float64) {
	if px < 0 {
		n.height = nil
	} else {
		n.height = &px
	}
	n.markDirty()
}

// InsertShadow inserts a hidden copy of the node right after it, carrying
// class. The returned func removes the copy again.
func (n *Node) InsertShadow(class string) (func() error, error) {
	if n.parent == nil {
		return nil, ErrDetached
	}
	parent := n.parent
	shadow := n.Clone()
	_ = shadow.AddClass(class)
	_ = shadow.SetCSS(layout.Declaration{Property: "visibility", Value: "hidden"})
	parent.InsertAfter(shadow, n)

	return func() error {
		if shadow.parent != nil {
			shadow.parent.RemoveChild(shadow)
		}
		return nil
	}, nil
}

// --- Geometry ---

// Offset returns the border-box top-left corner relative to the document.
func (n *Node) Offset() (layout.Point, error) {
	if !n.attached() {
		return layout.Point{}, ErrDetached
	}
	n.doc.ensureLayout()
	return n.box.Origin(), nil
}

// Position returns the margin-edge top-left corner relative to the offset
// parent's padding box.
func (n *Node) Position() (layout.Point, error) {
	if !n.attached() {
		return layout.Point{}, ErrDetached
	}
	n.doc.ensureLayout()
	return n.box.Outset(n.margin).Origin().Sub(n.offsetParentOrigin()), nil
}

// OuterSize returns the border-box size.
func (n *Node) OuterSize() (layout.Size, error) {
	if !n.attached() {
		return layout.Size{}, ErrDetached
	}
	n.doc.ensureLayout()
	return layout.Size{Width: n.box.Width, Height: n.box.Height}, nil
}

// Margin returns the node's margin edges.
func (n *Node) Margin() (layout.Edges, error) {
	if !n.attached() {
		return layout.Edges{}, ErrDetached
	}
	return n.margin, nil
}

// Container returns the parent's document offset with its content size.
func (n *Node) Container() (layout.Rect, error) {
	if !n.attached() {
		return layout.Rect{}, ErrDetached
	}
	if n.parent == nil {
		return layout.Rect{}, ErrNoParent
	}
	n.doc.ensureLayout()
	p := n.parent
	content := p.contentBox()
	return layout.Rect{X: p.box.X, Y: p.box.Y, Width: content.Width, Height: content.Height}, nil
}

func (n *Node) attached() bool {
	if n.doc == nil {
		return false
	}
	root := n
	for root.parent != nil {
		root = root.parent
	}
	return root == n.doc.body
}

func (n *Node) contentBox() layout.Rect {
	return n.box.Inset(n.border).Inset(n.padding)
}

// offsetParentOrigin returns the padding-box origin of the nearest
// positioned ancestor. Fixed nodes are positioned against the viewport.
func (n *Node) offsetParentOrigin() layout.Point {
	if n.position() == "fixed" {
		return layout.Point{Y: n.doc.window.scrollTop}
	}
	for p := n.parent; p != nil; p = p.parent {
		if p.position() != "static" {
			return p.box.Inset(p.border).Origin()
		}
	}
	return layout.Point{}
}

func (n *Node) position() string {
	switch v := n.CSS("position"); v {
	case "relative", "absolute", "fixed":
		return v
	default:
		return "static"
	}
}
