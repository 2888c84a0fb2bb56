// Package event implements the namespaced viewport event registry shared by
// the layout hosts.
//
// Handlers are registered under a (type, namespace) pair so that one owner
// can remove its own handlers without touching anyone else's.
package event

import "sync"

// Type names a viewport event.
type Type string

const (
	// Scroll fires whenever the viewport's vertical scroll offset changes.
	Scroll Type = "scroll"
	// Resize fires whenever the viewport dimensions change.
	Resize Type = "resize"
)

type entry struct {
	namespace string
	fn        func()
}

// Registry holds handlers keyed by event type. The zero value is ready to use.
type Registry struct {
	mu       sync.RWMutex
	handlers map[Type][]entry
}

// On adds a handler for the event type under namespace.
// Existing handlers under the same namespace are kept.
func (r *Registry) On(t Type, namespace string, fn func()) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	if r.handlers == nil {
		r.handlers = make(map[Type][]entry)
	}
	r.handlers[t] = append(r.handlers[t], entry{namespace: namespace, fn: fn})
	r.mu.Unlock()
}

// Off removes every handler for the event type registered under namespace.
// An empty namespace removes all handlers for the type.
func (r *Registry) Off(t Type, namespace string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if namespace == "" {
		delete(r.handlers, t)
		return
	}
	kept := r.handlers[t][:0:0]
	for _, e := range r.handlers[t] {
		if e.namespace != namespace {
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		delete(r.handlers, t)
		return
	}
	r.handlers[t] = kept
}

// Emit calls every handler for the event type in registration order.
// Handlers added or removed during dispatch take effect on the next Emit.
func (r *Registry) Emit(t Type) {
	for _, fn := range r.snapshot(t) {
		fn()
	}
}

// Count returns the number of handlers registered for the event type.
func (r *Registry) Count(t Type) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers[t])
}

func (r *Registry) snapshot(t Type) []func() {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fns := make([]func(), 0, len(r.handlers[t]))
	for _, e := range r.handlers[t] {
		fns = append(fns, e.fn)
	}
	return fns
}
