package pin

// Node is an element managed by the host layout engine.
//
// Geometry reads may fail when the element is detached or the host cannot be
// reached. Mutations are applied in call order.
type Node interface {
	// Offset returns the border-box top-left corner relative to the document.
	Offset() (Point, error)
	// Position returns the margin-edge top-left corner relative to the
	// offset parent.
	Position() (Point, error)
	// OuterSize returns the size including padding and border.
	OuterSize() (Size, error)
	// Margin returns the computed margins.
	Margin() (Edges, error)
	// Container returns the parent element's document offset and content size.
	Container() (Rect, error)

	// StyleAttribute returns the raw style attribute and whether it exists.
	StyleAttribute() (value string, present bool, err error)
	// SetStyleAttribute replaces the raw style attribute verbatim.
	// present=false removes it.
	SetStyleAttribute(value string, present bool) error
	// SetCSS merges declarations into the inline style.
	SetCSS(decls ...Declaration) error
	AddClass(class string) error
	RemoveClass(class string) error

	// InsertShadow inserts a hidden copy of the element right after it,
	// carrying class, and returns a func that removes the copy.
	InsertShadow(class string) (remove func() error, err error)
}

// Viewport is the scrolling window the elements are pinned against.
// It also dispatches scroll and resize events.
type Viewport interface {
	ScrollTop() (float64, error)
	// On registers fn for the event type under namespace.
	On(t EventType, namespace string, fn func())
	// Off removes every handler for the event type under namespace.
	Off(t EventType, namespace string)
}

// Elements converts a slice of concrete nodes into []Node.
func Elements[T Node](nodes ...T) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = n
	}
	return out
}
