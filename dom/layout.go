package dom

import "github.com/grindlemire/go-pin/internal/layout"

// computeLayout lays out the whole document. Normal-flow boxes are placed
// first; out-of-flow boxes are placed afterwards in document order, once
// every potential offset parent has its final box.
func computeLayout(d *Document) {
	var deferred []*Node
	body := d.body
	layoutFlow(body, 0, 0, d.window.width, &deferred)

	for i := 0; i < len(deferred); i++ {
		layoutPositioned(d, deferred[i], &deferred)
	}
}

// layoutFlow places n with its margin edge at (x, y) and lays out its
// in-flow subtree. Returns the vertical space consumed including margins.
func layoutFlow(n *Node, x, y, available float64, deferred *[]*Node) float64 {
	width := available - n.margin.Horizontal()
	if w, ok := layout.ParsePx(n.CSS("width")); ok {
		width = w
	} else if n.width != nil {
		width = *n.width + n.padding.Horizontal() + n.border.Horizontal()
	}
	if width < 0 {
		width = 0
	}

	n.box.X = x + n.margin.Left
	n.box.Y = y + n.margin.Top
	n.box.Width = width
	n.box.Height = 0

	content := n.box.Inset(n.border).Inset(n.padding)
	cursor := content.Y
	for _, child := range n.children {
		if child.outOfFlow() {
			child.static = layout.Point{X: content.X, Y: cursor}
			child.staticWidth = content.Width
			*deferred = append(*deferred, child)
			continue
		}
		cursor += layoutFlow(child, content.X, cursor, content.Width, deferred)
	}

	contentHeight := cursor - content.Y
	if h, ok := layout.ParsePx(n.CSS("height")); ok {
		contentHeight = h
	} else if n.height != nil {
		contentHeight = *n.height
	}
	n.box.Height = contentHeight + n.padding.Vertical() + n.border.Vertical()

	if n.position() == "relative" {
		shiftRelative(n)
	}
	return n.margin.Vertical() + n.box.Height
}

// layoutPositioned places an absolute or fixed node and lays out its subtree.
func layoutPositioned(d *Document, n *Node, deferred *[]*Node) {
	x, y := n.static.X, n.static.Y
	left, hasLeft := layout.ParsePx(n.CSS("left"))
	top, hasTop := layout.ParsePx(n.CSS("top"))

	var origin layout.Point
	if hasLeft || hasTop {
		origin = n.offsetParentOrigin()
	}
	if hasLeft {
		x = origin.X + left
	}
	if hasTop {
		y = origin.Y + top
	}
	layoutFlow(n, x, y, n.staticWidth, deferred)
}

// shiftRelative moves a relatively positioned subtree by its top/left.
func shiftRelative(n *Node) {
	dx, _ := layout.ParsePx(n.CSS("left"))
	dy, _ := layout.ParsePx(n.CSS("top"))
	if dx == 0 && dy == 0 {
		return
	}
	var shift func(*Node)
	shift = func(m *Node) {
		m.box.X += dx
		m.box.Y += dy
		for _, c := range m.children {
			if !c.outOfFlow() {
				shift(c)
			}
		}
	}
	shift(n)
}

func (n *Node) outOfFlow() bool {
	switch n.position() {
	case "absolute", "fixed":
		return n.parent != nil
	default:
		return false
	}
}
