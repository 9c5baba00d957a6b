package protodetect

import "github.com/darkit/protodetect/protocols"

// TraceEvent describes one detector's verdict during a single Detect call.
type TraceEvent struct {
	Protocol protocols.Protocol
	Outcome  protocols.MatchOutcome
}

// Sink observes chain progress without the core depending on any particular
// logging or tracing library. Implementations must not block or panic:
// Detect calls OnDetectorResult synchronously, once per detector consulted.
//
// A DetectionChain built with no Sink skips these calls entirely (a nil
// check, not a no-op Sink), so tracing costs nothing when unused.
type Sink interface {
	OnDetectorResult(TraceEvent)
}
