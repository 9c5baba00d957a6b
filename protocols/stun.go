package protocols

import "github.com/darkit/protodetect/internal/bytesview"

const stunMagicCookie = 0x2112a442

type stunDetector struct{}

// STUNDetector recognizes the STUN message header: the top two bits of byte
// 0 clear, a length field that is a multiple of 4, and the fixed magic
// cookie at bytes 4-7. STUN carries no version worth surfacing.
var STUNDetector Detector = stunDetector{}

func (stunDetector) Kind() Protocol { return STUN }

func (stunDetector) Transports() TransportSet { return Transports(UDP) }

func (stunDetector) TryMatch(buf []byte) MatchOutcome {
	b0, ok := bytesview.At(buf, 0)
	if !ok {
		return NeedMoreDataOutcome()
	}
	if b0&0xc0 != 0 {
		return NoMatchOutcome()
	}

	length, ok := bytesview.BE16(buf, 2)
	if !ok {
		return NeedMoreDataOutcome()
	}
	if length%4 != 0 {
		return NoMatchOutcome()
	}

	cookie, ok := bytesview.BE32(buf, 4)
	if !ok {
		return NeedMoreDataOutcome()
	}
	if cookie != stunMagicCookie {
		return NoMatchOutcome()
	}
	return MatchedUnversioned(STUN)
}
