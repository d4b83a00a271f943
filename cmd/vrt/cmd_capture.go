package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vrt/internal/capture"
)

type captureFlags struct {
	url         string
	name        string
	viewport    string
	fullPage    bool
	wait        string
	showBrowser bool
	attrs       trackAttrs
}

func newCaptureCmd(rf *rootFlags) *cobra.Command {
	cf := &captureFlags{}
	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Screenshot a page in headless Chrome and submit it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCapture(cmd, rf, cf)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cf.url, "url", "", "Page to capture (required)")
	f.StringVarP(&cf.name, "name", "n", "", "Test name (required)")
	f.BoolVar(&cf.fullPage, "full-page", false, "Capture the whole page, not just the viewport")
	f.StringVar(&cf.wait, "wait", "", "CSS selector to wait for before capturing")
	f.BoolVar(&cf.showBrowser, "show-browser", false, "Run Chrome with a visible window")
	// capture sizes the window from --viewport, so it needs a default
	cf.attrs.viewport = "1280x720"
	cf.attrs.register(f)

	_ = cmd.MarkFlagRequired("url")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func (cf *captureFlags) options() (capture.Options, error) {
	w, h, err := capture.ParseViewport(cf.attrs.viewport)
	if err != nil {
		return capture.Options{}, err
	}
	return capture.Options{
		URL:          cf.url,
		Width:        w,
		Height:       h,
		FullPage:     cf.fullPage,
		WaitSelector: cf.wait,
		ShowBrowser:  cf.showBrowser,
	}, nil
}

func runCapture(cmd *cobra.Command, rf *rootFlags, cf *captureFlags) error {
	copts, err := cf.options()
	if err != nil {
		return err
	}
	// normalized so the tag matches the window size, e.g. " 800X600" -> "800x600"
	cf.attrs.viewport = copts.Viewport()
	if cf.attrs.browser == "" {
		cf.attrs.browser = "chrome"
	}
	opts, err := cf.attrs.options()
	if err != nil {
		return err
	}
	tracker, err := rf.newTracker(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	png, err := capture.Screenshot(ctx, copts)
	if err != nil {
		return fmt.Errorf("capture: %w", err)
	}

	return withBuild(ctx, tracker, func() error {
		result, err := tracker.TrackBytes(ctx, cf.name, png, opts...)
		return report(cmd.OutOrStdout(), cf.name, result, err)
	})
}
