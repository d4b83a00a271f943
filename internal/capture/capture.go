// Package capture takes page screenshots in a headless Chrome via chromedp.
package capture

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// DefaultTimeout bounds a capture when Options.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// Options describes one screenshot.
type Options struct {
	URL          string
	Width        int
	Height       int
	FullPage     bool
	WaitSelector string // CSS selector that must be visible before capture
	ShowBrowser  bool   // run with a visible window instead of headless
	Timeout      time.Duration
}

func (o Options) validate() error {
	if o.URL == "" {
		return fmt.Errorf("capture: URL is required")
	}
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("capture: invalid viewport %dx%d", o.Width, o.Height)
	}
	return nil
}

// Viewport formats the dimensions the way the service tags runs, e.g. "1280x720".
func (o Options) Viewport() string {
	return fmt.Sprintf("%dx%d", o.Width, o.Height)
}

func (o Options) allocatorOptions() []chromedp.ExecAllocatorOption {
	return append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", !o.ShowBrowser),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("hide-scrollbars", true),
		chromedp.WindowSize(o.Width, o.Height),
	)
}

func (o Options) actions(buf *[]byte) chromedp.Tasks {
	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(o.Width), int64(o.Height)),
		chromedp.Navigate(o.URL),
	}
	if o.WaitSelector != "" {
		tasks = append(tasks, chromedp.WaitVisible(o.WaitSelector, chromedp.ByQuery))
	}
	if o.FullPage {
		// quality 100 selects PNG output
		tasks = append(tasks, chromedp.FullScreenshot(buf, 100))
	} else {
		tasks = append(tasks, chromedp.CaptureScreenshot(buf))
	}
	return tasks
}

// Screenshot loads opts.URL and returns a PNG of the viewport (or the whole
// page when FullPage is set).
func Screenshot(ctx context.Context, opts Options) ([]byte, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts.allocatorOptions()...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	var buf []byte
	if err := chromedp.Run(browserCtx, opts.actions(&buf)); err != nil {
		return nil, fmt.Errorf("capture %s: %w", opts.URL, err)
	}
	if len(buf) == 0 {
		return nil, fmt.Errorf("capture %s: empty screenshot", opts.URL)
	}
	return buf, nil
}

// ParseViewport parses "WIDTHxHEIGHT", e.g. "1280x720".
func ParseViewport(s string) (width, height int, err error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("viewport %q: want WIDTHxHEIGHT", s)
	}
	if width, err = strconv.Atoi(w); err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("viewport %q: bad width", s)
	}
	if height, err = strconv.Atoi(h); err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("viewport %q: bad height", s)
	}
	return width, height, nil
}
