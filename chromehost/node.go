package chromehost

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/grindlemire/go-pin/internal/layout"
)

var (
	// ErrDetached is returned when the element is no longer in the page.
	ErrDetached = errors.New("chromehost: element is not connected to the document")

	// ErrNoParent is returned by Container for an element without a parent.
	ErrNoParent = errors.New("chromehost: element has no parent element")
)

// Node is a handle to an element in the page.
type Node struct {
	host     *Host
	id       int
	selector string
}

// String identifies the node for logs.
func (n *Node) String() string {
	return n.selector + "#" + strconv.Itoa(n.id)
}

type geometry struct {
	Offset   layout.Point `json:"offset"`
	Position layout.Point `json:"position"`
	Size     struct {
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	} `json:"size"`
	Margin struct {
		Top    float64 `json:"top"`
		Right  float64 `json:"right"`
		Bottom float64 `json:"bottom"`
		Left   float64 `json:"left"`
	} `json:"margin"`
}

func (n *Node) geometry() (*geometry, error) {
	var g *geometry
	if err := n.host.eval(&g, geometryScript, n.id); err != nil {
		return nil, fmt.Errorf("chromehost: %s: read geometry: %w", n, err)
	}
	if g == nil {
		return nil, ErrDetached
	}
	return g, nil
}

// Offset returns the border-box corner relative to the document.
func (n *Node) Offset() (layout.Point, error) {
	g, err := n.geometry()
	if err != nil {
		return layout.Point{}, err
	}
	return g.Offset, nil
}

// Position returns the margin-edge corner relative to the offset parent.
func (n *Node) Position() (layout.Point, error) {
	g, err := n.geometry()
	if err != nil {
		return layout.Point{}, err
	}
	return g.Position, nil
}

// OuterSize returns offsetWidth and offsetHeight.
func (n *Node) OuterSize() (layout.Size, error) {
	g, err := n.geometry()
	if err != nil {
		return layout.Size{}, err
	}
	return layout.Size{Width: g.Size.Width, Height: g.Size.Height}, nil
}

// Margin returns the computed margins.
func (n *Node) Margin() (layout.Edges, error) {
	g, err := n.geometry()
	if err != nil {
		return layout.Edges{}, err
	}
	m := g.Margin
	return layout.EdgeTRBL(m.Top, m.Right, m.Bottom, m.Left), nil
}

// Container returns the parent element's document offset and content size.
func (n *Node) Container() (layout.Rect, error) {
	var res struct {
		layout.Rect
		Detached bool `json:"detached"`
		NoParent bool `json:"noParent"`
	}
	if err := n.host.eval(&res, containerScript, n.id); err != nil {
		return layout.Rect{}, fmt.Errorf("chromehost: %s: read container: %w", n, err)
	}
	switch {
	case res.Detached:
		return layout.Rect{}, ErrDetached
	case res.NoParent:
		return layout.Rect{}, ErrNoParent
	}
	return res.Rect, nil
}

// StyleAttribute returns the raw style attribute.
func (n *Node) StyleAttribute() (string, bool, error) {
	var res *struct {
		Value   string `json:"value"`
		Present bool   `json:"present"`
	}
	if err := n.host.eval(&res, getStyleScript, n.id); err != nil {
		return "", false, fmt.Errorf("chromehost: %s: read style: %w", n, err)
	}
	if res == nil {
		return "", false, ErrDetached
	}
	return res.Value, res.Present, nil
}

// SetStyleAttribute replaces or removes the raw style attribute.
func (n *Node) SetStyleAttribute(value string, present bool) error {
	return n.mutate("write style", setStyleScript, value, present)
}

// SetCSS sets inline style properties in order.
func (n *Node) SetCSS(decls ...layout.Declaration) error {
	type decl struct {
		Property string `json:"property"`
		Value    string `json:"value"`
	}
	out := make([]decl, len(decls))
	for i, d := range decls {
		out[i] = decl{Property: d.Property, Value: d.Value}
	}
	return n.mutate("set css", setCSSScript, out)
}

// AddClass adds class to the element's class list.
func (n *Node) AddClass(class string) error {
	return n.mutate("add class", classScript, class, true)
}

// RemoveClass removes class from the element's class list.
func (n *Node) RemoveClass(class string) error {
	return n.mutate("remove class", classScript, class, false)
}

// InsertShadow inserts a hidden clone right after the element.
func (n *Node) InsertShadow(class string) (func() error, error) {
	var shadow int
	if err := n.host.eval(&shadow, shadowScript, n.id, class); err != nil {
		return nil, fmt.Errorf("chromehost: %s: insert shadow: %w", n, err)
	}
	if shadow < 0 {
		return nil, ErrDetached
	}
	return func() error {
		if err := n.host.eval(nil, removeScript, shadow); err != nil {
			return fmt.Errorf("chromehost: %s: remove shadow: %w", n, err)
		}
		return nil
	}, nil
}

func (n *Node) mutate(what, script string, args ...any) error {
	var ok bool
	if err := n.host.eval(&ok, script, append([]any{n.id}, args...)...); err != nil {
		return fmt.Errorf("chromehost: %s: %s: %w", n, what, err)
	}
	if !ok {
		return ErrDetached
	}
	return nil
}
