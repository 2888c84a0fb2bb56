package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-pin"
	"github.com/grindlemire/go-pin/chromehost"
)

type browseFlags struct {
	url      string
	selector string
	scrolls  []float64
	chrome   string
	headless bool
	width    int
	height   int
	settle   time.Duration
	timeout  time.Duration
}

func newBrowseCmd(a *app) *cobra.Command {
	var bf browseFlags
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Pin elements of a live page in Chrome",
		Long: `Browse opens a page in Chrome, pins the elements matching a CSS
selector and scrolls through the given positions, printing each element's
state after every step.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.browse(cmd.Context(), cmd.OutOrStdout(), bf)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&bf.url, "url", "u", "", "page to open")
	f.StringVarP(&bf.selector, "selector", "s", "", "CSS selector of the elements to pin")
	f.Float64SliceVar(&bf.scrolls, "scroll", []float64{0}, "scroll positions to visit")
	f.StringVar(&bf.chrome, "chrome", "", "path to the Chrome binary (default: search PATH)")
	f.BoolVar(&bf.headless, "headless", true, "run Chrome without a window")
	f.IntVar(&bf.width, "width", 1280, "browser window width")
	f.IntVar(&bf.height, "height", 800, "browser window height")
	f.DurationVar(&bf.settle, "settle", 200*time.Millisecond, "wait after each scroll before reading states")
	f.DurationVar(&bf.timeout, "timeout", time.Minute, "overall time limit")
	_ = cmd.MarkFlagRequired("url")
	_ = cmd.MarkFlagRequired("selector")
	return cmd
}

func (a *app) browse(ctx context.Context, w io.Writer, bf browseFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, bf.timeout)
	defer cancel()

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", bf.headless),
		chromedp.WindowSize(bf.width, bf.height),
	)
	if bf.chrome != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(bf.chrome))
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()
	tabCtx, cancelTab := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(a.logger.Sugar().Debugf),
		chromedp.WithErrorf(a.logger.Sugar().Errorf),
	)
	defer cancelTab()

	host, err := chromehost.New(tabCtx, a.logger)
	if err != nil {
		return err
	}
	if err := host.Navigate(bf.url); err != nil {
		return err
	}
	nodes, err := host.Query(bf.selector)
	if err != nil {
		return err
	}
	if len(nodes) == 0 {
		return fmt.Errorf("no element matches %q", bf.selector)
	}
	a.logger.Info("page loaded", zap.String("url", bf.url), zap.Int("elements", len(nodes)))

	g, gctx := errgroup.WithContext(tabCtx)
	g.Go(func() error {
		err := host.Run(gctx)
		if errors.Is(err, chromehost.ErrClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		defer host.Close()
		return a.drive(gctx, w, host, nodes, bf)
	})
	return g.Wait()
}

// drive runs the pin manager on the host's event goroutine and walks the
// scroll positions.
func (a *app) drive(ctx context.Context, w io.Writer, host *chromehost.Host, nodes []*chromehost.Node, bf browseFlags) error {
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

	var (
		m      *pin.Manager
		newErr error
	)
	if err := host.Do(ctx, func() {
		m, newErr = pin.New(host, pin.Elements(nodes...), opts...)
	}); err != nil {
		return err
	}
	if m == nil {
		return newErr
	}
	if newErr != nil {
		fmt.Fprintf(w, "  error %v\n", newErr)
	}
	defer func() {
		var derr error
		if err := host.Do(ctx, func() { derr = m.Destroy() }); err != nil {
			derr = errors.Join(derr, err)
		}
		if derr != nil {
			a.logger.Warn("destroy failed", zap.Error(derr))
		}
	}()

	for _, y := range bf.scrolls {
		got, err := host.ScrollTo(y)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(bf.settle):
		}

		fmt.Fprintf(w, "scroll %g\n", got)
		if err := host.Do(ctx, func() {
			for i, n := range nodes {
				style, _, _ := n.StyleAttribute()
				fmt.Fprintf(w, "  %v %s style=%q\n", n, m.State(i), style)
			}
		}); err != nil {
			return err
		}
	}
	return nil
}
