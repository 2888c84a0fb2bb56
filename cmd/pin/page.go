package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-pin/dom"
	"github.com/grindlemire/go-pin/internal/layout"
)

// pageSpec is a YAML page fixture for the simulate command.
type pageSpec struct {
	Viewport struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"viewport"`
	// Select picks the pinned elements: "#id" or ".class".
	Select string     `yaml:"select"`
	Body   []nodeSpec `yaml:"body"`
	Steps  []stepSpec `yaml:"steps"`
}

type nodeSpec struct {
	ID       string     `yaml:"id"`
	Class    []string   `yaml:"class"`
	Style    *string    `yaml:"style"`
	Height   *float64   `yaml:"height"`
	Width    *float64   `yaml:"width"`
	Margin   []float64  `yaml:"margin"`
	Padding  []float64  `yaml:"padding"`
	Border   []float64  `yaml:"border"`
	Children []nodeSpec `yaml:"children"`
}

// stepSpec is one scripted action. Exactly one field is set.
type stepSpec struct {
	Scroll    *float64   `yaml:"scroll"`
	Resize    []float64  `yaml:"resize"`
	SetHeight *heightSet `yaml:"set_height"`
	Update    bool       `yaml:"update"`
}

type heightSet struct {
	ID     string  `yaml:"id"`
	Height float64 `yaml:"height"`
}

// loadPage decodes a fixture. Unknown fields are rejected.
func loadPage(r io.Reader) (*pageSpec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read page: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var spec pageSpec
	if err := dec.Decode(&spec); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode page: %w", err)
	}
	if spec.Viewport.Width <= 0 || spec.Viewport.Height <= 0 {
		return nil, fmt.Errorf("page viewport must have a positive width and height")
	}
	for i, s := range spec.Steps {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &spec, nil
}

func (s stepSpec) validate() error {
	set := 0
	if s.Scroll != nil {
		set++
	}
	if s.Resize != nil {
		if len(s.Resize) != 2 {
			return fmt.Errorf("resize takes [width, height]")
		}
		set++
	}
	if s.SetHeight != nil {
		set++
	}
	if s.Update {
		set++
	}
	if set != 1 {
		return fmt.Errorf("exactly one of scroll, resize, set_height, update must be set")
	}
	return nil
}

// build creates the document described by the fixture.
func (p *pageSpec) build() (*dom.Document, error) {
	doc := dom.NewDocument(p.Viewport.Width, p.Viewport.Height)
	for _, ns := range p.Body {
		n, err := ns.build()
		if err != nil {
			return nil, err
		}
		doc.Body().AppendChild(n)
	}
	return doc, nil
}

func (ns nodeSpec) build() (*dom.Node, error) {
	opts := []dom.Option{dom.WithID(ns.ID), dom.WithClass(ns.Class...)}
	if ns.Style != nil {
		opts = append(opts, dom.WithStyle(*ns.Style))
	}
	if ns.Height != nil {
		opts = append(opts, dom.WithHeight(*ns.Height))
	}
	if ns.Width != nil {
		opts = append(opts, dom.WithWidth(*ns.Width))
	}
	for _, box := range []struct {
		name   string
		values []float64
		opt    func(layout.Edges) dom.Option
	}{
		{"margin", ns.Margin, dom.WithMargin},
		{"padding", ns.Padding, dom.WithPadding},
		{"border", ns.Border, dom.WithBorder},
	} {
		if box.values == nil {
			continue
		}
		e, err := edges(box.values)
		if err != nil {
			return nil, fmt.Errorf("node %q: %s: %w", ns.ID, box.name, err)
		}
		opts = append(opts, box.opt(e))
	}

	n := dom.New(opts...)
	for _, cs := range ns.Children {
		child, err := cs.build()
		if err != nil {
			return nil, err
		}
		n.AppendChild(child)
	}
	return n, nil
}

// edges expands CSS shorthand: [all], [vertical, horizontal] or
// [top, right, bottom, left].
func edges(v []float64) (layout.Edges, error) {
	switch len(v) {
	case 1:
		return layout.EdgeAll(v[0]), nil
	case 2:
		return layout.EdgeTRBL(v[0], v[1], v[0], v[1]), nil
	case 4:
		return layout.EdgeTRBL(v[0], v[1], v[2], v[3]), nil
	default:
		return layout.Edges{}, fmt.Errorf("want 1, 2 or 4 values, got %d", len(v))
	}
}

// selectNodes resolves "#id" or ".class" against doc.
func selectNodes(doc *dom.Document, selector string) ([]*dom.Node, error) {
	switch {
	case strings.HasPrefix(selector, "#"):
		n := doc.GetElementByID(selector[1:])
		if n == nil {
			return nil, fmt.Errorf("no element matches %q", selector)
		}
		return []*dom.Node{n}, nil
	case strings.HasPrefix(selector, "."):
		nodes := doc.GetElementsByClassName(selector[1:])
		if len(nodes) == 0 {
			return nil, fmt.Errorf("no element matches %q", selector)
		}
		return nodes, nil
	default:
		return nil, fmt.Errorf("unsupported selector %q: use #id or .class", selector)
	}
}
