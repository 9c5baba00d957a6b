package protodetect

import "github.com/darkit/protodetect/protocols"

// DetectResult is what DetectionChain.Detect returns for one buffer.
type DetectResult struct {
	// Matched is true once some detector in the chain decisively recognized
	// the buffer; Version is only meaningful when Matched is true.
	Matched bool
	Version protocols.Version
	// NeedMoreData is advisory: at least one detector in the chain reported
	// its prefix was still consistent with its protocol. Callers decide
	// whether to read more and retry, or give up.
	NeedMoreData bool
}

// Unknown is the shared zero result: no detector matched and none asked for
// more data.
func Unknown() DetectResult { return DetectResult{} }
