package protocols

import "github.com/darkit/protodetect/internal/bytesview"

var postgresSSLRequest = []byte{0x00, 0x00, 0x00, 0x08, 0x04, 0xd2, 0x16, 0x2f}

const (
	postgresMinStartupLen  = 8
	postgresMaxStartupLen  = 10000
	postgresProtocolNumber = 0x00030000
)

type postgresDetector struct{}

// PostgresDetector recognizes a StartupMessage or an SSLRequest, both sent
// client-to-server before any TLS or authentication exchange. Neither
// carries a version worth surfacing beyond the fixed wire protocol number.
var PostgresDetector Detector = postgresDetector{}

func (postgresDetector) Kind() Protocol { return PostgreSQL }

func (postgresDetector) Transports() TransportSet { return Transports(TCP) }

func (postgresDetector) TryMatch(buf []byte) MatchOutcome {
	if outcome, decided := matchPostgresSSLRequest(buf); decided {
		return outcome
	}

	length, ok := bytesview.BE32(buf, 0)
	if !ok {
		return NeedMoreDataOutcome()
	}
	if length < postgresMinStartupLen || length > postgresMaxStartupLen {
		return NoMatchOutcome()
	}

	version, ok := bytesview.BE32(buf, 4)
	if !ok {
		return NeedMoreDataOutcome()
	}
	if version != postgresProtocolNumber {
		return NoMatchOutcome()
	}
	return MatchedUnversioned(PostgreSQL)
}

func matchPostgresSSLRequest(buf []byte) (MatchOutcome, bool) {
	if len(buf) >= len(postgresSSLRequest) {
		if bytesview.HasPrefix(buf, postgresSSLRequest) {
			return MatchedUnversioned(PostgreSQL), true
		}
		return MatchOutcome{}, false
	}
	if bytesview.HasPrefix(postgresSSLRequest, buf) {
		return NeedMoreDataOutcome(), true
	}
	return MatchOutcome{}, false
}
