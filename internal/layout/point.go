package layout

// Point represents an (X, Y) coordinate in CSS pixels.
type Point struct {
	X, Y float64
}

// Sub returns a new Point with other subtracted.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}
