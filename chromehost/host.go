package chromehost

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/grindlemire/go-pin/internal/event"
)

const (
	defaultQueueSize = 256
	defaultTimeout   = 10 * time.Second
)

// Host is a browser tab acting as the pin viewport.
type Host struct {
	ctx     context.Context
	logger  *zap.Logger
	timeout time.Duration
	queue   int

	dispatch *dispatcher
}

// Option configures a Host.
type Option func(*Host) error

// WithTimeout bounds every evaluation in the page. Default is 10s.
func WithTimeout(d time.Duration) Option {
	return func(h *Host) error {
		if d <= 0 {
			return fmt.Errorf("timeout must be positive, got %v", d)
		}
		h.timeout = d
		return nil
	}
}

// WithQueueSize sets the capacity of the event queue. Default is 256.
func WithQueueSize(n int) Option {
	return func(h *Host) error {
		if n < 1 {
			return fmt.Errorf("queue size must be at least 1")
		}
		h.queue = n
		return nil
	}
}

// New attaches to the tab behind ctx, which must come from
// chromedp.NewContext. It installs the event bridge on the current page and
// on every page loaded afterwards.
func New(ctx context.Context, logger *zap.Logger, opts ...Option) (*Host, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Host{
		ctx:     ctx,
		logger:  logger.Named("chromehost"),
		timeout: defaultTimeout,
		queue:   defaultQueueSize,
	}
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, fmt.Errorf("chromehost: %w", err)
		}
	}
	h.dispatch = newDispatcher(h.queue, h.logger)

	chromedp.ListenTarget(ctx, func(ev any) {
		if b, ok := ev.(*runtime.EventBindingCalled); ok && b.Name == bindingName {
			h.dispatch.emit(event.Type(b.Payload))
		}
	})

	if err := chromedp.Run(ctx,
		runtime.AddBinding(bindingName),
		chromedp.ActionFunc(func(ctx context.Context) error {
			_, err := page.AddScriptToEvaluateOnNewDocument(bootstrapScript).Do(ctx)
			return err
		}),
		chromedp.Evaluate(bootstrapScript, nil),
	); err != nil {
		return nil, fmt.Errorf("chromehost: install event bridge: %w", err)
	}
	return h, nil
}

// Navigate loads url and waits for the body to be ready.
func (h *Host) Navigate(url string) error {
	ctx, cancel := context.WithTimeout(h.ctx, 3*h.timeout)
	defer cancel()
	if err := chromedp.Run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	); err != nil {
		return fmt.Errorf("chromehost: navigate %s: %w", url, err)
	}
	return nil
}

// Query resolves selector to element handles in document order.
func (h *Host) Query(selector string) ([]*Node, error) {
	var ids []int
	if err := h.eval(&ids, queryScript, selector); err != nil {
		return nil, fmt.Errorf("chromehost: query %q: %w", selector, err)
	}
	nodes := make([]*Node, len(ids))
	for i, id := range ids {
		nodes[i] = &Node{host: h, id: id, selector: selector}
	}
	return nodes, nil
}

// ScrollTop returns the page's vertical scroll offset.
func (h *Host) ScrollTop() (float64, error) {
	var y float64
	ctx, cancel := context.WithTimeout(h.ctx, h.timeout)
	defer cancel()
	if err := chromedp.Run(ctx, chromedp.Evaluate(scrollTopScript, &y)); err != nil {
		return 0, fmt.Errorf("chromehost: read scroll offset: %w", err)
	}
	return y, nil
}

// ScrollTo scrolls the page. The resulting scroll event arrives through the
// event bridge.
func (h *Host) ScrollTo(y float64) (float64, error) {
	var got float64
	if err := h.eval(&got, scrollToScript, y); err != nil {
		return 0, fmt.Errorf("chromehost: scroll to %v: %w", y, err)
	}
	return got, nil
}

// On registers fn for the event type under namespace.
func (h *Host) On(t event.Type, namespace string, fn func()) {
	h.dispatch.events.On(t, namespace, fn)
}

// Off removes the handlers registered for the event type under namespace.
func (h *Host) Off(t event.Type, namespace string) {
	h.dispatch.events.Off(t, namespace)
}

// Handlers returns the number of handlers registered for the event type.
func (h *Host) Handlers(t event.Type) int {
	return h.dispatch.events.Count(t)
}

// Run dispatches page events and queued work until ctx is cancelled or the
// host is closed. Exactly one goroutine should call Run.
func (h *Host) Run(ctx context.Context) error {
	return h.dispatch.run(ctx)
}

// Do runs fn on the Run goroutine and waits for it to return.
func (h *Host) Do(ctx context.Context, fn func()) error {
	return h.dispatch.do(ctx, fn)
}

// Close stops Run. Pending work is discarded.
func (h *Host) Close() {
	h.dispatch.close()
}

// eval calls fn with args in the page and decodes the result into out.
func (h *Host) eval(out any, fn string, args ...any) error {
	script, err := call(fn, args...)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(h.ctx, h.timeout)
	defer cancel()

	var raw json.RawMessage
	if err := chromedp.Run(ctx, chromedp.Evaluate(script, &raw, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
		return p.WithReturnByValue(true).WithAwaitPromise(true)
	})); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}
