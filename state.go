package pin

import (
	"fmt"
	"math"
)

// LifecycleState is where an element stands in the pin state machine.
type LifecycleState int

const (
	// Unpinned elements are in normal document flow.
	Unpinned LifecycleState = iota
	// Pinned elements use fixed positioning at TopSpacing.
	Pinned
	// PinnedAtContainerBottom elements are parked with absolute positioning
	// at the bottom of their container.
	PinnedAtContainerBottom
)

func (s LifecycleState) String() string {
	switch s {
	case Unpinned:
		return "unpinned"
	case Pinned:
		return "pinned"
	case PinnedAtContainerBottom:
		return "pinned-at-container-bottom"
	default:
		return fmt.Sprintf("LifecycleState(%d)", int(s))
	}
}

// IsPinned reports whether the element is out of normal flow.
func (s LifecycleState) IsPinned() bool {
	return s == Pinned || s == PinnedAtContainerBottom
}

// Geometry is the snapshot of an element's layout taken by one Update pass.
type Geometry struct {
	// Offset is document-relative with margins subtracted, so that it can be
	// used directly as a fixed left/top.
	Offset Point
	// Position is relative to the offset parent; the absolute left/top.
	Position Point
	// Size includes padding and border.
	Size Size
	// Container is the parent's document offset and content size. Nil
	// unless Contain is set.
	Container *Rect
}

// PinThreshold is the scroll offset at which the element becomes pinned.
func (g Geometry) PinThreshold(cfg Config) float64 {
	return g.Offset.Y - cfg.TopSpacing
}

// ContainThreshold is the scroll offset at which a contained element parks
// at the container bottom. Without a container it is +Inf.
func (g Geometry) ContainThreshold(cfg Config) float64 {
	if g.Container == nil {
		return math.Inf(1)
	}
	return g.Container.Bottom() - cfg.TopSpacing - g.Size.Height - cfg.BottomSpacing
}

// ContainedTop is the absolute top, relative to the offset parent, at which
// the element's bottom sits BottomSpacing above the container's bottom.
func (g Geometry) ContainedTop(cfg Config) float64 {
	if g.Container == nil {
		return g.Position.Y
	}
	offsetParentTop := g.Offset.Y - g.Position.Y
	return g.Container.Bottom() - g.Size.Height - cfg.BottomSpacing - offsetParentTop
}

func (g Geometry) finite() bool {
	vals := []float64{g.Offset.X, g.Offset.Y, g.Position.X, g.Position.Y, g.Size.Width, g.Size.Height}
	if g.Container != nil {
		vals = append(vals, g.Container.Y, g.Container.Height)
	}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Evaluate returns the state an element with geometry g should be in at the
// given scroll offset. Unpinning depends only on the pin threshold and wins
// over containment; offsets equal to a threshold count as crossed.
func Evaluate(g Geometry, cfg Config, scroll float64) LifecycleState {
	if scroll < g.PinThreshold(cfg) {
		return Unpinned
	}
	if cfg.Contain && scroll >= g.ContainThreshold(cfg) {
		return PinnedAtContainerBottom
	}
	return Pinned
}

// styleSnapshot is an element's style attribute before pinning.
type styleSnapshot struct {
	value   string
	present bool
}

// ElementPinState is the manager's record for one element.
type ElementPinState struct {
	index     int
	node      Node
	namespace string

	geometry Geometry
	state    LifecycleState

	// snapshot is non-nil exactly while the element is pinned.
	snapshot     *styleSnapshot
	removeShadow func() error
	// notified is true between an OnPin and its matching OnUnpin.
	notified bool
	// tracking is true while a scroll handler is installed.
	tracking bool
}

// Index returns the element's position in the manager's element list.
func (s *ElementPinState) Index() int { return s.index }

// Node returns the managed element.
func (s *ElementPinState) Node() Node { return s.node }

// State returns the current lifecycle state.
func (s *ElementPinState) State() LifecycleState { return s.state }

// Geometry returns the snapshot taken by the last Update.
func (s *ElementPinState) Geometry() Geometry { return s.geometry }

// Tracking reports whether a scroll handler is installed for the element.
func (s *ElementPinState) Tracking() bool { return s.tracking }
