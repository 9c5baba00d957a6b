package protocols

import "github.com/darkit/protodetect/internal/bytesview"

type mysqlDetector struct{}

// MySQLDetector recognizes the server's initial handshake packet: a 3-byte
// little-endian payload length, a sequence ID, a protocol version byte, and
// a NUL-terminated server version string. MySQL's version byte identifies
// the wire protocol generation, not a version worth surfacing through
// VersionTag, so a match is unversioned.
var MySQLDetector Detector = mysqlDetector{}

func (mysqlDetector) Kind() Protocol { return MySQL }

func (mysqlDetector) Transports() TransportSet { return Transports(TCP) }

func (mysqlDetector) TryMatch(buf []byte) MatchOutcome {
	payloadLen, ok := bytesview.LE24(buf, 0)
	if !ok {
		return NeedMoreDataOutcome()
	}

	if _, ok := bytesview.At(buf, 3); !ok {
		return NeedMoreDataOutcome()
	}

	protoVersion, ok := bytesview.At(buf, 4)
	if !ok {
		return NeedMoreDataOutcome()
	}
	if protoVersion != 10 && protoVersion != 9 {
		return NoMatchOutcome()
	}

	payloadEnd := 4 + int(payloadLen)
	viewLimit := payloadEnd
	truncated := false
	if viewLimit > len(buf) {
		viewLimit = len(buf)
		truncated = true
	}

	if bytesview.IndexByte(buf, 5, viewLimit-5, 0x00) >= 0 {
		return MatchedUnversioned(MySQL)
	}
	if truncated {
		return NeedMoreDataOutcome()
	}
	return NoMatchOutcome()
}
