package protocols

import "github.com/darkit/protodetect/internal/bytesview"

type dnsDetector struct{}

// DNSDetector recognizes a DNS message header, either bare (UDP, and TCP
// framing already stripped by the caller) or behind a 2-byte big-endian
// length prefix (TCP). DNS carries no useful version information.
var DNSDetector Detector = dnsDetector{}

func (dnsDetector) Kind() Protocol { return DNS }

func (dnsDetector) Transports() TransportSet { return Transports(TCP, UDP) }

func (dnsDetector) TryMatch(buf []byte) MatchOutcome {
	udpStatus := dnsHeaderCheck(buf, 0)
	if udpStatus == Match {
		return MatchedUnversioned(DNS)
	}

	tcpStatus := dnsTCPCheck(buf)
	if tcpStatus == Match {
		return MatchedUnversioned(DNS)
	}

	if udpStatus == NeedMoreData || tcpStatus == NeedMoreData {
		return NeedMoreDataOutcome()
	}
	return NoMatchOutcome()
}

func dnsTCPCheck(buf []byte) Status {
	length, ok := bytesview.BE16(buf, 0)
	if !ok {
		return NeedMoreData
	}
	if length < 12 || length > 65535 {
		return NoMatch
	}
	return dnsHeaderCheck(buf, 2)
}

// dnsHeaderCheck validates the 12-byte DNS header at offset.
func dnsHeaderCheck(buf []byte, offset int) Status {
	flags, ok := bytesview.At(buf, offset+2)
	if !ok {
		return NeedMoreData
	}
	opcode := (flags >> 3) & 0x0f
	if !dnsValidOpcode(opcode) {
		return NoMatch
	}

	// The RCODE nibble (offset+3, low bits) is read for presence only: values
	// >= 11 are technically reserved but tolerated here.
	if _, ok := bytesview.At(buf, offset+3); !ok {
		return NeedMoreData
	}

	qd, ok := bytesview.BE16(buf, offset+4)
	if !ok {
		return NeedMoreData
	}
	if qd > 20 {
		return NoMatch
	}

	an, ok := bytesview.BE16(buf, offset+6)
	if !ok {
		return NeedMoreData
	}
	if an > 100 {
		return NoMatch
	}

	ns, ok := bytesview.BE16(buf, offset+8)
	if !ok {
		return NeedMoreData
	}
	if ns > 100 {
		return NoMatch
	}

	ar, ok := bytesview.BE16(buf, offset+10)
	if !ok {
		return NeedMoreData
	}
	if ar > 100 {
		return NoMatch
	}

	return Match
}

func dnsValidOpcode(op byte) bool {
	switch op {
	case 0, 1, 2, 4, 5:
		return true
	}
	return false
}
