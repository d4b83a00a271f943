package vrt

import (
	"errors"
	"fmt"
)

// ErrSessionState is matched by every session-state violation.
var ErrSessionState = errors.New("vrt: invalid session state")

var (
	// ErrNotStarted is returned by Stop and Track before Start.
	ErrNotStarted = fmt.Errorf("%w: visual regression tracker has not been started", ErrSessionState)
	// ErrAlreadyStarted is returned by Start while a build is open.
	ErrAlreadyStarted = fmt.Errorf("%w: visual regression tracker is already started", ErrSessionState)
)

// TransportError wraps any failure to complete a request: connection
// errors, non-2xx responses, cancellation, undecodable bodies.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("vrt: %s: %v", e.Op, e.Err) }

func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError reports a status value outside the known set.
type ProtocolError struct {
	Status string
}

func (e *ProtocolError) Error() string { return fmt.Sprintf("unexpected status %q", e.Status) }

// AssertionError is a failed comparison with soft assert disabled.
// Result holds the interpreted comparison.
type AssertionError struct {
	Status Status
	URL    string
	Result *TestRunResult
}

func (e *AssertionError) Error() string {
	switch e.Status {
	case StatusNew:
		return "No baseline: " + e.URL
	case StatusUnresolved:
		return "Difference found: " + e.URL
	default:
		return "Unexpected status"
	}
}

// IsTransport reports whether err is a *TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsProtocol reports whether err is a *ProtocolError.
func IsProtocol(err error) bool {
	var pe *ProtocolError
	return errors.As(err, &pe)
}

// IsAssertion reports whether err is an *AssertionError.
func IsAssertion(err error) bool {
	var ae *AssertionError
	return errors.As(err, &ae)
}

// IsSessionState reports whether err is a session-state violation.
func IsSessionState(err error) bool { return errors.Is(err, ErrSessionState) }
