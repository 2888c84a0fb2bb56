package pin

import (
	"fmt"

	"go.uber.org/zap"
)

// Option is a functional option for configuring a Manager.
type Option func(*Manager) error

// WithConfig replaces the whole configuration. Start from DefaultConfig to
// keep defaults for the fields you do not set.
func WithConfig(cfg Config) Option {
	return func(m *Manager) error {
		m.cfg = cfg
		return nil
	}
}

// WithClassName sets the class added to pinned elements.
func WithClassName(name string) Option {
	return func(m *Manager) error {
		if name == "" {
			return fmt.Errorf("class name must not be empty")
		}
		m.cfg.ClassName = name
		return nil
	}
}

// WithContain restricts pinned elements to their parent's bounds.
func WithContain() Option {
	return func(m *Manager) error {
		m.cfg.Contain = true
		return nil
	}
}

// WithHard pins elements at their current position at every Update, without
// scroll tracking.
func WithHard() Option {
	return func(m *Manager) error {
		m.cfg.Hard = true
		return nil
	}
}

// WithTopSpacing sets the distance from the viewport top at which elements
// become pinned.
func WithTopSpacing(px float64) Option {
	return func(m *Manager) error {
		m.cfg.TopSpacing = px
		return nil
	}
}

// WithBottomSpacing sets the distance kept free above the container bottom.
// Only meaningful together with WithContain.
func WithBottomSpacing(px float64) Option {
	return func(m *Manager) error {
		if px < 0 {
			return fmt.Errorf("bottom spacing must not be negative, got %v", px)
		}
		m.cfg.BottomSpacing = px
		return nil
	}
}

// WithZIndex sets the z-index applied while pinned. Default is 1000.
func WithZIndex(z int) Option {
	return func(m *Manager) error {
		m.cfg.ZIndex = z
		return nil
	}
}

// WithoutReserveSpace disables the hidden copy that keeps a pinned
// element's place in the layout.
func WithoutReserveSpace() Option {
	return func(m *Manager) error {
		m.cfg.ReserveSpace = false
		return nil
	}
}

// WithOnPin sets the callback run when an element becomes pinned.
func WithOnPin(fn Callback) Option {
	return func(m *Manager) error {
		m.cfg.OnPin = fn
		return nil
	}
}

// WithOnUnpin sets the callback run when an element returns to normal flow.
func WithOnUnpin(fn Callback) Option {
	return func(m *Manager) error {
		m.cfg.OnUnpin = fn
		return nil
	}
}

// WithErrorHandler receives errors raised while handling scroll and resize
// events, which have no caller to return them to.
func WithErrorHandler(fn func(error)) Option {
	return func(m *Manager) error {
		m.cfg.OnError = fn
		return nil
	}
}

// WithLogger sets the structured logger. By default the manager logs to the
// PIN_DEBUG file, if any.
func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) error {
		if l == nil {
			return fmt.Errorf("logger must not be nil")
		}
		m.logger = l
		return nil
	}
}
