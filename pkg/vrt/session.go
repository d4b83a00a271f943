package vrt

import "context"

// Session is the handle returned by Start. Closing it stops the build it
// opened, using the context given to Start:
//
//	session, err := tracker.Start(ctx)
//	if err != nil {
//		return err
//	}
//	defer session.Close()
type Session struct {
	tracker   *Tracker
	ctx       context.Context // from Start; Close reuses it for Stop
	buildID   string
	projectID string
	closed    bool
}

// BuildID returns the id of the build this session opened.
func (s *Session) BuildID() string { return s.buildID }

// ProjectID returns the project id reported when the build was opened.
func (s *Session) ProjectID() string { return s.projectID }

// Close stops the build. Closing again after a successful Close is a no-op.
// If the build was already stopped through the tracker, Close returns
// ErrNotStarted. A failed stop leaves the session open so Close may be retried.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	if s.tracker.BuildID() != s.buildID {
		return ErrNotStarted
	}
	if err := s.tracker.Stop(s.ctx); err != nil {
		return err
	}
	s.closed = true
	return nil
}
