package dom

import "github.com/grindlemire/go-pin/internal/event"

// Window is the viewport through which the document is scrolled.
type Window struct {
	doc       *Document
	width     float64
	height    float64
	scrollTop float64
	events    event.Registry
}

// ScrollTop returns the current vertical scroll offset.
func (w *Window) ScrollTop() (float64, error) {
	return w.scrollTop, nil
}

// Size returns the viewport dimensions.
func (w *Window) Size() (width, height float64) {
	return w.width, w.height
}

// On registers fn for the event type under namespace.
func (w *Window) On(t event.Type, namespace string, fn func()) {
	w.events.On(t, namespace, fn)
}

// Off removes the handlers registered for the event type under namespace.
func (w *Window) Off(t event.Type, namespace string) {
	w.events.Off(t, namespace)
}

// Handlers returns the number of handlers registered for the event type.
func (w *Window) Handlers(t event.Type) int {
	return w.events.Count(t)
}

// MaxScroll returns the largest reachable scroll offset.
func (w *Window) MaxScroll() float64 {
	limit := w.doc.Height() - w.height
	if limit < 0 {
		return 0
	}
	return limit
}

// ScrollTo scrolls the viewport to y, clamped to the scrollable range, and
// fires a scroll event if the offset changed.
func (w *Window) ScrollTo(y float64) {
	if y > w.MaxScroll() {
		y = w.MaxScroll()
	}
	if y < 0 {
		y = 0
	}
	if y == w.scrollTop {
		return
	}
	w.scrollTop = y
	w.doc.MarkDirty()
	w.events.Emit(event.Scroll)
}

// DispatchScroll fires a scroll event without moving the viewport.
func (w *Window) DispatchScroll() {
	w.events.Emit(event.Scroll)
}

// Resize changes the viewport dimensions and fires a resize event. The
// scroll offset is re-clamped to the new range first.
func (w *Window) Resize(width, height float64) {
	w.width = width
	w.height = height
	w.doc.MarkDirty()
	if w.scrollTop > w.MaxScroll() {
		w.scrollTop = w.MaxScroll()
	}
	w.events.Emit(event.Resize)
}
