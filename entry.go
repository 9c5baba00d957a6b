package protodetect

import "github.com/darkit/protodetect/protocols"

// DetectorEntry pairs a detector with the version filter applied to its
// matches. A zero-value Filter accepts whatever version the detector
// reports.
type DetectorEntry struct {
	Detector protocols.Detector
	Filter   VersionFilter
}
