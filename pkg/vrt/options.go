package vrt

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"vrt/internal/api"
)

// Option configures a Tracker during construction.
type Option func(*trackerConfig) error

type trackerConfig struct {
	httpClient *http.Client
	logger     *slog.Logger
	timeout    time.Duration
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *trackerConfig) error {
		if c == nil {
			return fmt.Errorf("vrt: nil http client")
		}
		cfg.httpClient = c
		return nil
	}
}

// WithLogger configures structured logging for the tracker and its transport.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *trackerConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithTimeout bounds every request made by the tracker.
func WithTimeout(d time.Duration) Option {
	return func(cfg *trackerConfig) error {
		cfg.timeout = d
		return nil
	}
}

func (cfg *trackerConfig) apiOptions() []api.Option {
	var opts []api.Option
	if cfg.httpClient != nil {
		opts = append(opts, api.WithHTTPClient(cfg.httpClient))
	}
	if cfg.timeout > 0 {
		opts = append(opts, api.WithTimeout(cfg.timeout))
	}
	return append(opts, api.WithLogger(cfg.logger))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// IgnoreArea is a rectangle, in pixels, excluded from comparison.
type IgnoreArea = api.IgnoreArea

// TrackOption sets an optional attribute of a submitted test run.
type TrackOption func(*api.CreateTestRunRequest)

// WithOS tags the run with an operating system.
func WithOS(os string) TrackOption {
	return func(r *api.CreateTestRunRequest) { r.OS = os }
}

// WithBrowser tags the run with a browser name.
func WithBrowser(browser string) TrackOption {
	return func(r *api.CreateTestRunRequest) { r.Browser = browser }
}

// WithViewport tags the run with a viewport, e.g. "1280x720".
func WithViewport(viewport string) TrackOption {
	return func(r *api.CreateTestRunRequest) { r.Viewport = viewport }
}

// WithDevice tags the run with a device name.
func WithDevice(device string) TrackOption {
	return func(r *api.CreateTestRunRequest) { r.Device = device }
}

// WithCustomTags attaches free-form tags.
func WithCustomTags(tags string) TrackOption {
	return func(r *api.CreateTestRunRequest) { r.CustomTags = tags }
}

// WithDiffTolerance sets the percentage of differing pixels still treated as ok.
func WithDiffTolerance(percent float64) TrackOption {
	return func(r *api.CreateTestRunRequest) { r.DiffTollerancePercent = percent }
}

// WithComment attaches a comment to the run.
func WithComment(comment string) TrackOption {
	return func(r *api.CreateTestRunRequest) { r.Comment = comment }
}

// WithIgnoreAreas excludes the given rectangles from comparison, in order.
func WithIgnoreAreas(areas ...IgnoreArea) TrackOption {
	return func(r *api.CreateTestRunRequest) {
		r.IgnoreAreas = append(r.IgnoreAreas, areas...)
	}
}
