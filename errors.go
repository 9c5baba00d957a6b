package protodetect

import (
	"errors"
	"fmt"

	"github.com/darkit/protodetect/protocols"
)

var (
	// ErrUnsupportedTransport is returned when a detector is added to a
	// builder for a transport it doesn't support.
	ErrUnsupportedTransport = errors.New("protodetect: detector does not support this transport")
	// ErrDuplicateDetector is returned when two detectors for the same
	// protocol are added to the same builder.
	ErrDuplicateDetector = errors.New("protodetect: detector for this protocol already added")
	// ErrInvalidMaxInspect is returned by Build when SetMaxInspect was given
	// a non-positive value.
	ErrInvalidMaxInspect = errors.New("protodetect: max inspect length must be positive")
	// ErrEmptyChain is returned by Build when no detectors were added.
	ErrEmptyChain = errors.New("protodetect: chain has no detectors")
)

// BuildError reports a construction-time failure, naming the operation and
// (when applicable) the protocol involved.
type BuildError struct {
	Op       string
	Protocol protocols.Protocol
	Err      error
}

func (e *BuildError) Error() string {
	if e.Protocol == protocols.Unset {
		return fmt.Sprintf("protodetect: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("protodetect: %s %s: %v", e.Op, e.Protocol, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }
