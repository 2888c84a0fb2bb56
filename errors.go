package pin

import (
	"errors"
	"fmt"
)

var (
	// ErrNoContainer is wrapped by a ConfigurationError when Contain is set
	// but the element's parent geometry cannot be read.
	ErrNoContainer = errors.New("containment requested but element has no usable parent")

	// ErrIndeterminate is wrapped by a ConfigurationError when the host
	// returns non-finite geometry.
	ErrIndeterminate = errors.New("element geometry is indeterminate")

	// ErrDestroyed is returned by Update after Destroy.
	ErrDestroyed = errors.New("pin: manager destroyed")
)

// ConfigurationError reports an element that cannot be managed with the
// current configuration. The element is left in normal flow.
type ConfigurationError struct {
	Index   int
	Element Node
	Err     error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("pin: element %d: %v", e.Index, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// CallbackError wraps an error returned by OnPin or OnUnpin.
type CallbackError struct {
	Index   int
	Element Node
	// Event is "pin" or "unpin".
	Event string
	Err   error
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("pin: element %d: %s callback: %v", e.Index, e.Event, e.Err)
}

func (e *CallbackError) Unwrap() error {
	return e.Err
}
