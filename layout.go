// layout.go re-exports geometry types from internal/layout and event types
// from internal/event. Any changes there must be mirrored here.
package pin

import (
	"github.com/grindlemire/go-pin/internal/event"
	"github.com/grindlemire/go-pin/internal/layout"
)

// Point represents an x/y coordinate in CSS pixels.
type Point = layout.Point

// Size represents a width/height pair.
type Size = layout.Size

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Declaration is a single inline CSS property assignment.
type Declaration = layout.Declaration

// EventType names a viewport event.
type EventType = event.Type

const (
	EventScroll = event.Scroll
	EventResize = event.Resize
)

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return layout.EdgeAll(n)
}

// Px formats a pixel length for a CSS declaration.
func Px(v float64) string {
	return layout.Px(v)
}
