package vrt

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"vrt/internal/api"
	"vrt/pkg/config"
)

// Tracker drives one build session at a time against the service.
// It moves between idle and started; Start, Stop and Track must not be
// called concurrently.
type Tracker struct {
	cfg    config.Config
	client *api.Client
	logger *slog.Logger

	// nil while idle
	build *buildRef
}

type buildRef struct {
	buildID   string
	projectID string
}

// New validates cfg and returns an idle Tracker. A missing required field
// is reported as a *config.MissingFieldError before any request is made.
func New(cfg config.Config, opts ...Option) (*Tracker, error) {
	if err := cfg.CheckComplete(); err != nil {
		return nil, err
	}

	tc := &trackerConfig{}
	for _, opt := range opts {
		if err := opt(tc); err != nil {
			return nil, err
		}
	}
	if tc.logger == nil {
		tc.logger = discardLogger()
	}

	client, err := api.New(cfg.APIURL, cfg.APIKey, cfg.Project, tc.apiOptions()...)
	if err != nil {
		return nil, fmt.Errorf("vrt: %w", err)
	}

	return &Tracker{
		cfg:    cfg,
		client: client,
		logger: tc.logger,
	}, nil
}

// NewFromEnvironment resolves the configuration from the default config
// file and VRT_* variables, then calls New.
func NewFromEnvironment(opts ...Option) (*Tracker, error) {
	cfg, err := config.Load("", config.Overrides{})
	if err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

// Config returns the configuration the tracker was built with.
func (t *Tracker) Config() config.Config { return t.cfg }

// IsStarted reports whether a build is open.
func (t *Tracker) IsStarted() bool { return t.build != nil }

// BuildID returns the open build's id, or "" when idle.
func (t *Tracker) BuildID() string {
	if t.build == nil {
		return ""
	}
	return t.build.buildID
}

// ProjectID returns the open build's project id, or "" when idle.
func (t *Tracker) ProjectID() string {
	if t.build == nil {
		return ""
	}
	return t.build.projectID
}

// Start opens a build for the configured project and branch. The returned
// Session stops the build when closed. On failure the tracker stays idle.
func (t *Tracker) Start(ctx context.Context) (*Session, error) {
	if t.build != nil {
		return nil, ErrAlreadyStarted
	}

	resp, err := t.client.CreateBuild(ctx, api.CreateBuildRequest{
		Project:    t.cfg.Project,
		BranchName: t.cfg.BranchName,
		CIBuildID:  t.cfg.CIBuildID,
	})
	if err != nil {
		return nil, &TransportError{Op: "start", Err: err}
	}
	if resp.ID == "" || resp.ProjectID == "" {
		return nil, &TransportError{Op: "start", Err: fmt.Errorf("create build: response missing id or projectId")}
	}

	t.build = &buildRef{buildID: resp.ID, projectID: resp.ProjectID}
	t.logger.InfoContext(ctx, "build started",
		"buildId", resp.ID, "projectId", resp.ProjectID, "branch", t.cfg.BranchName)

	return &Session{tracker: t, ctx: ctx, buildID: resp.ID, projectID: resp.ProjectID}, nil
}

// Stop closes the open build. The identifiers are cleared only once the
// service has accepted the request; on failure the build stays open.
func (t *Tracker) Stop(ctx context.Context) error {
	if t.build == nil {
		return ErrNotStarted
	}

	buildID := t.build.buildID
	if err := t.client.StopBuild(ctx, buildID); err != nil {
		return &TransportError{Op: "stop", Err: err}
	}

	t.build = nil
	t.logger.InfoContext(ctx, "build stopped", "buildId", buildID)
	return nil
}

// Track submits a base64-encoded screenshot under name within the open
// build and interprets the service's verdict (see Interpret).
func (t *Tracker) Track(ctx context.Context, name, imageBase64 string, opts ...TrackOption) (*TestRunResult, error) {
	if t.build == nil {
		return nil, ErrNotStarted
	}

	req := api.CreateTestRunRequest{
		ProjectID:   t.build.projectID,
		BuildID:     t.build.buildID,
		BranchName:  t.cfg.BranchName,
		Name:        name,
		ImageBase64: imageBase64,
	}
	for _, opt := range opts {
		opt(&req)
	}

	resp, err := t.client.SubmitTestRun(ctx, req)
	if err != nil {
		return nil, &TransportError{Op: "track", Err: err}
	}

	result, err := Interpret(resp, t.cfg.EnableSoftAssert)
	if err != nil {
		if IsProtocol(err) {
			return nil, fmt.Errorf("vrt: track %q: %w", name, err)
		}
		t.logger.WarnContext(ctx, "comparison failed", "name", name, "status", resp.Status, "url", resp.URL)
		return nil, err
	}

	t.logger.InfoContext(ctx, "test run tracked", "name", name, "status", result.Status.String(), "url", result.URL)
	return result, nil
}

// TrackBytes encodes image and calls Track.
func (t *Tracker) TrackBytes(ctx context.Context, name string, image []byte, opts ...TrackOption) (*TestRunResult, error) {
	if t.build == nil {
		return nil, ErrNotStarted
	}
	return t.Track(ctx, name, EncodeImage(image), opts...)
}

// TrackReader reads and encodes image, then calls Track. A read error is
// returned without contacting the service.
func (t *Tracker) TrackReader(ctx context.Context, name string, image io.Reader, opts ...TrackOption) (*TestRunResult, error) {
	if t.build == nil {
		return nil, ErrNotStarted
	}
	encoded, err := EncodeImageReader(image)
	if err != nil {
		return nil, err
	}
	return t.Track(ctx, name, encoded, opts...)
}
