package pin

import "fmt"

const (
	// DefaultClassName is the class added to pinned elements.
	DefaultClassName = "pinned"
	// DefaultZIndex is the z-index applied to pinned elements.
	DefaultZIndex = 1000
)

// Callback is invoked synchronously when an element changes lifecycle.
// A returned error is reported as a *CallbackError; the style change that
// triggered the callback has already been applied.
type Callback func(Node) error

// Config holds the options shared by every element of a Manager.
type Config struct {
	// ClassName is added while an element is pinned.
	ClassName string `mapstructure:"class_name" yaml:"class_name"`
	// Contain keeps pinned elements inside their parent's bottom edge.
	Contain bool `mapstructure:"contain" yaml:"contain"`
	// Hard pins elements at their initial position without scroll tracking.
	Hard bool `mapstructure:"hard" yaml:"hard"`
	// TopSpacing is the distance from the viewport top at which elements pin.
	TopSpacing float64 `mapstructure:"top_spacing" yaml:"top_spacing"`
	// BottomSpacing is kept free above the container's bottom edge.
	BottomSpacing float64 `mapstructure:"bottom_spacing" yaml:"bottom_spacing"`
	// ZIndex is applied while pinned.
	ZIndex int `mapstructure:"z_index" yaml:"z_index"`
	// ReserveSpace inserts a hidden copy of a pinned element so that
	// following content does not reflow.
	ReserveSpace bool `mapstructure:"reserve_space" yaml:"reserve_space"`

	OnPin   Callback    `mapstructure:"-" yaml:"-"`
	OnUnpin Callback    `mapstructure:"-" yaml:"-"`
	OnError func(error) `mapstructure:"-" yaml:"-"`
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		ClassName:    DefaultClassName,
		ZIndex:       DefaultZIndex,
		ReserveSpace: true,
	}
}

// ContainedClass is the class added while an element is parked at the
// bottom of its container.
func (c Config) ContainedClass() string {
	return c.ClassName + "-contained"
}

// ShadowClass is the class carried by the hidden copy of a pinned element.
func (c Config) ShadowClass() string {
	return c.ClassName + "-shadow"
}

// Validate reports configuration values that cannot work.
func (c Config) Validate() error {
	if c.ClassName == "" {
		return fmt.Errorf("class name must not be empty")
	}
	if c.BottomSpacing < 0 {
		return fmt.Errorf("bottom spacing must not be negative, got %v", c.BottomSpacing)
	}
	return nil
}
