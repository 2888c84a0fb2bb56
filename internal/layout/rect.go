package layout

// Rect is an axis-aligned rectangle. X/Y is the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Inset shrinks the rectangle by the given edges. Width and height never
// go below zero.
func (r Rect) Inset(e Edges) Rect {
	out := Rect{
		X:      r.X + e.Left,
		Y:      r.Y + e.Top,
		Width:  r.Width - e.Horizontal(),
		Height: r.Height - e.Vertical(),
	}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// Outset grows the rectangle by the given edges.
func (r Rect) Outset(e Edges) Rect {
	return Rect{
		X:      r.X - e.Left,
		Y:      r.Y - e.Top,
		Width:  r.Width + e.Horizontal(),
		Height: r.Height + e.Vertical(),
	}
}

// Edges is spacing on four sides, in CSS order.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// EdgeAll returns Edges with the same value on every side.
func EdgeAll(n float64) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeTRBL returns Edges from individual values.
func EdgeTRBL(top, right, bottom, left float64) Edges {
	return Edges{Top: top, Right: right, Bottom: bottom, Left: left}
}

// Horizontal returns Left + Right.
func (e Edges) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns Top + Bottom.
func (e Edges) Vertical() float64 {
	return e.Top + e.Bottom
}
