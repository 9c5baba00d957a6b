package protodetect

import "github.com/darkit/protodetect/protocols"

// DefaultMaxInspect is the number of leading bytes a DetectionChain
// inspects by default. Detectors are designed around this window; widening
// it rarely helps and costs more per call.
const DefaultMaxInspect = 64

// DetectionChain orders a fixed list of detectors for one transport and
// classifies a buffer by consulting them in order.
type DetectionChain struct {
	transport  protocols.Transport
	entries    []DetectorEntry
	maxInspect int
	sink       Sink
}

// Transport reports which transport this chain was built for.
func (c *DetectionChain) Transport() protocols.Transport { return c.transport }

// Entries returns the chain's detector entries in dispatch order. The
// returned slice is owned by the caller; mutating it does not affect c.
func (c *DetectionChain) Entries() []DetectorEntry {
	out := make([]DetectorEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Detect classifies buf by trying each detector in chain order and
// returning the first one that decisively matches (and whose version
// passes its filter). If none matches, NeedMoreData is set when at least
// one detector judged its prefix still consistent with its protocol.
//
// Detect only ever inspects the first maxInspect bytes of buf
// (DefaultMaxInspect unless the builder's SetMaxInspect changed it); it neither
// allocates nor mutates buf.
func (c *DetectionChain) Detect(buf []byte) DetectResult {
	view := buf
	if len(view) > c.maxInspect {
		view = view[:c.maxInspect]
	}

	needMore := false
	for _, entry := range c.entries {
		outcome := entry.Detector.TryMatch(view)
		c.trace(entry.Detector.Kind(), outcome)

		switch outcome.Status {
		case protocols.Match:
			if entry.Filter.Allows(outcome.Version.Tag) {
				return DetectResult{Matched: true, Version: outcome.Version}
			}
			// A version filter downgrades a rejected match to NoMatch, never
			// to NeedMoreData, so the chain keeps scanning.
		case protocols.NeedMoreData:
			needMore = true
		}
	}
	return DetectResult{NeedMoreData: needMore}
}

func (c *DetectionChain) trace(p protocols.Protocol, outcome protocols.MatchOutcome) {
	if c.sink == nil {
		return
	}
	c.sink.OnDetectorResult(TraceEvent{Protocol: p, Outcome: outcome})
}
