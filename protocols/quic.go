package protocols

import "github.com/darkit/protodetect/internal/bytesview"

const quicMaxDCIDLen = 20

type quicDetector struct{}

// QUICDetector recognizes a QUIC long-header Initial packet: header form and
// fixed bit set, packet type Initial, a non-zero version, and a plausible
// destination connection ID length. QUIC has no version bytes worth
// surfacing beyond wire compatibility, so a match is always unversioned.
var QUICDetector Detector = quicDetector{}

func (quicDetector) Kind() Protocol { return QUIC }

func (quicDetector) Transports() TransportSet { return Transports(UDP) }

func (quicDetector) TryMatch(buf []byte) MatchOutcome {
	b0, ok := bytesview.At(buf, 0)
	if !ok {
		return NeedMoreDataOutcome()
	}
	// Long header form (bit 7) and fixed bit (bit 6) both set, packet type
	// (bits 5-4) == 00 (Initial).
	if b0&0xf0 != 0xc0 {
		return NoMatchOutcome()
	}

	version, ok := bytesview.BE32(buf, 1)
	if !ok {
		return NeedMoreDataOutcome()
	}
	if version == 0 || !quicKnownVersion(version) {
		return NoMatchOutcome()
	}

	dcidLen, ok := bytesview.At(buf, 5)
	if !ok {
		return NeedMoreDataOutcome()
	}
	if dcidLen > quicMaxDCIDLen {
		return NoMatchOutcome()
	}

	return MatchedUnversioned(QUIC)
}

func quicKnownVersion(v uint32) bool {
	switch v {
	case 0x00000001, 0x6b3343cf:
		return true
	}
	return v&0xff000000 == 0xff000000
}
