package protocols

import "github.com/darkit/protodetect/internal/bytesview"

const ntpMinLength = 48

type ntpDetector struct{}

// NTPDetector recognizes an NTP packet by its version and mode fields and a
// minimum 48-byte length. The leap-indicator field is two bits wide and so
// is never out of range; it is not checked separately. NTP carries no
// version worth surfacing beyond what the header already encodes.
var NTPDetector Detector = ntpDetector{}

func (ntpDetector) Kind() Protocol { return NTP }

func (ntpDetector) Transports() TransportSet { return Transports(UDP) }

func (ntpDetector) TryMatch(buf []byte) MatchOutcome {
	b0, ok := bytesview.At(buf, 0)
	if !ok {
		return NeedMoreDataOutcome()
	}
	vn := (b0 >> 3) & 0x07
	mode := b0 & 0x07
	if vn < 1 || vn > 4 {
		return NoMatchOutcome()
	}
	if mode < 1 || mode > 5 {
		return NoMatchOutcome()
	}

	if len(buf) < ntpMinLength {
		return NeedMoreDataOutcome()
	}
	return MatchedUnversioned(NTP)
}
