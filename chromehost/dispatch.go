package chromehost

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/grindlemire/go-pin/internal/event"
)

// ErrClosed is returned by Do and Run once the host has been closed.
var ErrClosed = errors.New("chromehost: closed")

// dispatcher serializes page events and queued work onto the goroutine
// running run. Repeated events of one type collapse while one is queued,
// since handlers read the current scroll offset rather than the event.
type dispatcher struct {
	queue  chan func()
	events event.Registry
	logger *zap.Logger

	pendingScroll atomic.Bool
	pendingResize atomic.Bool

	done      chan struct{}
	closeOnce sync.Once
}

func newDispatcher(size int, logger *zap.Logger) *dispatcher {
	return &dispatcher{
		queue:  make(chan func(), size),
		logger: logger,
		done:   make(chan struct{}),
	}
}

// post enqueues fn without blocking. Returns false if the queue is full or
// the dispatcher is closed.
func (d *dispatcher) post(fn func()) bool {
	select {
	case <-d.done:
		return false
	default:
	}
	select {
	case d.queue <- fn:
		return true
	default:
		return false
	}
}

// emit queues a dispatch of the event type unless one is already pending.
func (d *dispatcher) emit(t event.Type) {
	pending := d.pending(t)
	if pending == nil {
		d.logger.Debug("ignoring unknown page event", zap.String("type", string(t)))
		return
	}
	if pending.Swap(true) {
		return
	}
	if !d.post(func() {
		pending.Store(false)
		d.events.Emit(t)
	}) {
		pending.Store(false)
		d.logger.Warn("event queue full, dropping page event", zap.String("type", string(t)))
	}
}

func (d *dispatcher) pending(t event.Type) *atomic.Bool {
	switch t {
	case event.Scroll:
		return &d.pendingScroll
	case event.Resize:
		return &d.pendingResize
	default:
		return nil
	}
}

// do runs fn on the dispatch goroutine and waits for it to finish.
func (d *dispatcher) do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	task := func() {
		defer close(finished)
		fn()
	}
	select {
	case d.queue <- task:
	case <-d.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-finished:
		return nil
	case <-d.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run drains the queue until ctx is cancelled or the dispatcher is closed.
func (d *dispatcher) run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-d.done:
			return nil
		case fn := <-d.queue:
			fn()
		}
	}
}

func (d *dispatcher) close() {
	d.closeOnce.Do(func() { close(d.done) })
}
