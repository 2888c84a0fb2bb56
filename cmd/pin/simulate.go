package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grindlemire/go-pin"
	"github.com/grindlemire/go-pin/dom"
)

func newSimulateCmd(a *app) *cobra.Command {
	var (
		pagePath string
		scrolls  []float64
		selector string
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the pin manager against a page fixture",
		Long: `Simulate builds the page described by a YAML fixture, pins the
selected elements and replays the fixture's steps, printing every
lifecycle change and the resulting element styles.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(pagePath)
			if err != nil {
				return err
			}
			defer f.Close()

			spec, err := loadPage(f)
			if err != nil {
				return fmt.Errorf("%s: %w", pagePath, err)
			}
			if selector != "" {
				spec.Select = selector
			}
			if cmd.Flags().Changed("scroll") {
				spec.Steps = spec.Steps[:0]
				for _, y := range scrolls {
					y := y
					spec.Steps = append(spec.Steps, stepSpec{Scroll: &y})
				}
			}
			return a.simulate(cmd.OutOrStdout(), spec)
		},
	}
	cmd.Flags().StringVarP(&pagePath, "page", "p", "", "page fixture (YAML)")
	cmd.Flags().Float64SliceVar(&scrolls, "scroll", nil, "scroll positions to replay instead of the fixture steps")
	cmd.Flags().StringVarP(&selector, "select", "s", "", "elements to pin (#id or .class)")
	_ = cmd.MarkFlagRequired("page")
	return cmd
}

// simulate replays spec and writes a transcript to w.
func (a *app) simulate(w io.Writer, spec *pageSpec) error {
	doc, err := spec.build()
	if err != nil {
		return err
	}
	if spec.Select == "" {
		return errors.New("no elements selected")
	}
	nodes, err := selectNodes(doc, spec.Select)
	if err != nil {
		return err
	}

	event := func(name string) pin.Callback {
		return func(n pin.Node) error {
			fmt.Fprintf(w, "  %s %v\n", name, n)
			return nil
		}
	}
	opts := append(a.pinOptions(),
		pin.WithOnPin(event("pin")),
		pin.WithOnUnpin(event("unpin")),
		pin.WithErrorHandler(func(err error) {
			fmt.Fprintf(w, "  error %v\n", err)
		}),
	)

	fmt.Fprintf(w, "load\n")
	m, err := pin.New(doc.Window(), pin.Elements(nodes...), opts...)
	if m == nil {
		return err
	}
	if err != nil {
		fmt.Fprintf(w, "  error %v\n", err)
	}
	defer func() {
		if err := m.Destroy(); err != nil {
			a.logger.Warn("destroy failed", zap.Error(err))
		}
	}()
	printStates(w, m, nodes)

	win := doc.Window()
	for i, step := range spec.Steps {
		switch {
		case step.Scroll != nil:
			fmt.Fprintf(w, "step %d: scroll %g\n", i+1, *step.Scroll)
			win.ScrollTo(*step.Scroll)
		case step.Resize != nil:
			fmt.Fprintf(w, "step %d: resize %gx%g\n", i+1, step.Resize[0], step.Resize[1])
			win.Resize(step.Resize[0], step.Resize[1])
		case step.SetHeight != nil:
			fmt.Fprintf(w, "step %d: set height #%s %g\n", i+1, step.SetHeight.ID, step.SetHeight.Height)
			n := doc.GetElementByID(step.SetHeight.ID)
			if n == nil {
				return fmt.Errorf("step %d: no element #%s", i+1, step.SetHeight.ID)
			}
			n.SetHeight(step.SetHeight.Height)
		case step.Update:
			fmt.Fprintf(w, "step %d: update\n", i+1)
			if err := m.Update(); err != nil {
				fmt.Fprintf(w, "  error %v\n", err)
			}
		}
		printStates(w, m, nodes)
	}
	a.logger.Debug("simulation finished", zap.Int("steps", len(spec.Steps)), zap.String("manager", m.ID()))
	return nil
}

func printStates(w io.Writer, m *pin.Manager, nodes []*dom.Node) {
	for i, n := range nodes {
		style, _, _ := n.StyleAttribute()
		fmt.Fprintf(w, "  %v %s style=%q\n", n, m.State(i), style)
	}
}
