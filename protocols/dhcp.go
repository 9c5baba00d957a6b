package protocols

import "github.com/darkit/protodetect/internal/bytesview"

const (
	dhcpMagicCookie   = 0x63825363
	dhcpMagicOffset   = 236
	dhcpMaxHlen       = 16
	dhcpMaxHtype      = 48
	dhcpFullHeaderLen = 240
)

type dhcpDetector struct{}

// DHCPDetector recognizes a BOOTP/DHCP header by op/htype/hlen sanity plus
// the magic cookie at byte 236. Below the full 240-byte header the header
// fields alone decide plausibility and the outcome is always advisory.
// DHCP carries no version worth surfacing.
var DHCPDetector Detector = dhcpDetector{}

func (dhcpDetector) Kind() Protocol { return DHCP }

func (dhcpDetector) Transports() TransportSet { return Transports(UDP) }

func (dhcpDetector) TryMatch(buf []byte) MatchOutcome {
	op, ok := bytesview.At(buf, 0)
	if !ok {
		return NeedMoreDataOutcome()
	}
	if op != 1 && op != 2 {
		return NoMatchOutcome()
	}

	htype, ok := bytesview.At(buf, 1)
	if !ok {
		return NeedMoreDataOutcome()
	}
	if htype < 1 || htype > dhcpMaxHtype {
		return NoMatchOutcome()
	}

	hlen, ok := bytesview.At(buf, 2)
	if !ok {
		return NeedMoreDataOutcome()
	}
	if hlen > dhcpMaxHlen {
		return NoMatchOutcome()
	}

	if len(buf) < dhcpFullHeaderLen {
		return NeedMoreDataOutcome()
	}

	cookie, ok := bytesview.BE32(buf, dhcpMagicOffset)
	if !ok {
		return NeedMoreDataOutcome()
	}
	if cookie != dhcpMagicCookie {
		return NoMatchOutcome()
	}
	return MatchedUnversioned(DHCP)
}
