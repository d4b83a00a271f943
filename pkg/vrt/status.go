package vrt

import "fmt"

// Status is the outcome of a comparison as reported by the service.
type Status uint8

const (
	StatusNew Status = iota + 1
	StatusOk
	StatusUnresolved
	StatusApproved
	StatusAutoApproved
	StatusFailed
)

var statusWire = map[Status]string{
	StatusNew:          "new",
	StatusOk:           "ok",
	StatusUnresolved:   "unresolved",
	StatusApproved:     "approved",
	StatusAutoApproved: "autoApproved",
	StatusFailed:       "failed",
}

var wireStatus = func() map[string]Status {
	m := make(map[string]Status, len(statusWire))
	for s, w := range statusWire {
		m[w] = s
	}
	return m
}()

// ParseStatus maps a wire value to a Status. Matching is exact and
// case-sensitive; anything else is a *ProtocolError.
func ParseStatus(wire string) (Status, error) {
	if s, ok := wireStatus[wire]; ok {
		return s, nil
	}
	return 0, &ProtocolError{Status: wire}
}

// String returns the wire value.
func (s Status) String() string {
	if w, ok := statusWire[s]; ok {
		return w
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	w, ok := statusWire[s]
	if !ok {
		return nil, fmt.Errorf("vrt: invalid status %d", uint8(s))
	}
	return []byte(w), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
