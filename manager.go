package pin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/grindlemire/go-pin/internal/debug"
)

// Manager pins a fixed set of elements against one viewport.
//
// All methods must be called from the goroutine that dispatches the
// viewport's events; the manager does no locking of its own.
type Manager struct {
	id       string
	cfg      Config
	viewport Viewport
	logger   *zap.Logger
	states   []*ElementPinState

	destroyed bool
}

// New creates a Manager for elements, runs the first Update and subscribes
// to viewport resizes.
//
// If any element cannot be managed (a *ConfigurationError) the manager is
// torn down and nil is returned with the error. Other errors from the first
// Update, such as a *CallbackError from OnPin on an already scrolled page,
// leave the applied styles and subscriptions in place: the manager is
// returned together with the error.
func New(viewport Viewport, elements []Node, opts ...Option) (*Manager, error) {
	if viewport == nil {
		return nil, fmt.Errorf("pin: nil viewport")
	}

	m := &Manager{
		id:       strings.ReplaceAll(uuid.NewString(), "-", "")[:12],
		cfg:      DefaultConfig(),
		viewport: viewport,
		logger:   debug.Logger(),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, fmt.Errorf("pin: %w", err)
		}
	}
	if err := m.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pin: %w", err)
	}
	m.logger = m.logger.With(zap.String("instance", m.id))

	m.states = make([]*ElementPinState, len(elements))
	for i, n := range elements {
		if n == nil {
			return nil, fmt.Errorf("pin: element %d is nil", i)
		}
		m.states[i] = &ElementPinState{
			index:     i,
			node:      n,
			namespace: fmt.Sprintf("pin_%s_%d", m.id, i),
		}
	}

	err := m.Update()
	var confErr *ConfigurationError
	if errors.As(err, &confErr) {
		if derr := m.Destroy(); derr != nil {
			err = errors.Join(err, derr)
		}
		return nil, err
	}

	m.viewport.On(EventResize, m.resizeNamespace(), m.handleResize)
	m.logger.Debug("manager started", zap.Int("elements", len(m.states)), zap.Bool("hard", m.cfg.Hard),
		zap.Bool("contain", m.cfg.Contain))
	return m, err
}

// ID returns the generated instance identifier used to namespace events.
func (m *Manager) ID() string {
	return m.id
}

// Config returns the effective configuration.
func (m *Manager) Config() Config {
	return m.cfg
}

// Len returns the number of managed elements.
func (m *Manager) Len() int {
	return len(m.states)
}

// Element returns the state record for element i.
func (m *Manager) Element(i int) *ElementPinState {
	return m.states[i]
}

// State returns the lifecycle state of element i.
func (m *Manager) State(i int) LifecycleState {
	return m.states[i].state
}

// States returns the lifecycle state of every element, in order.
func (m *Manager) States() []LifecycleState {
	out := make([]LifecycleState, len(m.states))
	for i, st := range m.states {
		out[i] = st.state
	}
	return out
}

// Update re-reads every element's geometry and re-evaluates its state
// against the current scroll offset. Call it when the page layout changes,
// for example when a container's height changes. Resizes call it
// automatically.
//
// Elements that fail are left in normal flow without a scroll handler and
// reported in the returned error; the rest are processed normally.
func (m *Manager) Update() error {
	if m.destroyed {
		return ErrDestroyed
	}
	var errs []error
	for _, st := range m.states {
		if err := m.updateElement(st); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Manager) updateElement(st *ElementPinState) error {
	m.untrack(st)

	// Geometry must be read in normal flow.
	if st.state.IsPinned() {
		if err := m.restore(st); err != nil {
			return err
		}
	}

	g, err := m.measure(st)
	if err != nil {
		m.logger.Warn("element not managed", m.fields(st, zap.Error(err))...)
		return m.settleUnpinned(st, err)
	}
	st.geometry = g

	if m.cfg.Hard {
		return m.applyHard(st)
	}

	m.viewport.On(EventScroll, st.namespace, func() { m.handleScroll(st) })
	st.tracking = true

	return m.settleUnpinned(st, m.check(st))
}

// settleUnpinned fires the OnUnpin owed by an element that was pinned
// before Update and did not end up pinned again.
func (m *Manager) settleUnpinned(st *ElementPinState, cause error) error {
	if st.state.IsPinned() {
		return cause
	}
	return errors.Join(cause, m.notifyUnpin(st))
}

// measure reads the element's geometry for this Update pass.
func (m *Manager) measure(st *ElementPinState) (Geometry, error) {
	n := st.node
	confErr := func(err error) error {
		return &ConfigurationError{Index: st.index, Element: n, Err: err}
	}

	offset, err := n.Offset()
	if err != nil {
		return Geometry{}, confErr(fmt.Errorf("read offset: %w", err))
	}
	position, err := n.Position()
	if err != nil {
		return Geometry{}, confErr(fmt.Errorf("read position: %w", err))
	}
	size, err := n.OuterSize()
	if err != nil {
		return Geometry{}, confErr(fmt.Errorf("read size: %w", err))
	}
	margin, err := n.Margin()
	if err != nil {
		return Geometry{}, confErr(fmt.Errorf("read margin: %w", err))
	}

	// The document offset is the border box while left/top place the
	// margin edge.
	offset = offset.Sub(Point{X: margin.Left, Y: margin.Top})

	g := Geometry{Offset: offset, Position: position, Size: size}
	if m.cfg.Contain {
		c, err := n.Container()
		if err != nil {
			return Geometry{}, confErr(fmt.Errorf("%w: %w", ErrNoContainer, err))
		}
		g.Container = &c
	}
	if !g.finite() {
		return Geometry{}, confErr(ErrIndeterminate)
	}
	return g, nil
}

// check evaluates the element against the current scroll offset.
func (m *Manager) check(st *ElementPinState) error {
	scroll, err := m.viewport.ScrollTop()
	if err != nil {
		return fmt.Errorf("element %d: read scroll offset: %w", st.index, err)
	}
	return m.transition(st, Evaluate(st.geometry, m.cfg, scroll))
}

func (m *Manager) handleScroll(st *ElementPinState) {
	if err := m.check(st); err != nil {
		m.report(err)
	}
}

func (m *Manager) handleResize() {
	if err := m.Update(); err != nil {
		m.report(err)
	}
}

func (m *Manager) report(err error) {
	m.logger.Error("pin event failed", zap.Error(err))
	if m.cfg.OnError != nil {
		m.cfg.OnError(err)
	}
}

// Destroy unsubscribes every handler and restores every element's original
// style. Callbacks are not invoked. Calling Destroy again is a no-op.
func (m *Manager) Destroy() error {
	if m.destroyed {
		return nil
	}
	m.destroyed = true
	m.viewport.Off(EventResize, m.resizeNamespace())

	var errs []error
	for _, st := range m.states {
		m.untrack(st)
		if st.snapshot != nil || st.removeShadow != nil || st.state.IsPinned() {
			if err := m.restore(st); err != nil {
				errs = append(errs, err)
			}
		}
		st.notified = false
	}
	m.logger.Debug("manager destroyed")
	return errors.Join(errs...)
}

func (m *Manager) untrack(st *ElementPinState) {
	m.viewport.Off(EventScroll, st.namespace)
	st.tracking = false
}

func (m *Manager) resizeNamespace() string {
	return "pin_" + m.id
}

func (m *Manager) fields(st *ElementPinState, extra ...zap.Field) []zap.Field {
	fields := []zap.Field{zap.Int("element", st.index), zap.Stringer("state", st.state)}
	if s, ok := st.node.(fmt.Stringer); ok {
		fields = append(fields, zap.Stringer("node", s))
	}
	return append(fields, extra...)
}
