package protocols

import "github.com/darkit/protodetect/internal/bytesview"

const (
	tlsMaxRecordLength = 1<<14 + 2048

	tlsHandshakeClientHello = 0x01

	tlsExtSupportedVersions = 0x002b
	tlsVersionTLS1_3Wire    = 0x0304
)

type tlsDetector struct{}

// TLSDetector recognizes the TLS record layer (ContentType + legacy record
// version + length) and, for a ClientHello, extracts the negotiated version
// by preferring the supported_versions extension over the legacy
// client_version field.
var TLSDetector Detector = tlsDetector{}

func (tlsDetector) Kind() Protocol { return TLS }

func (tlsDetector) Transports() TransportSet { return Transports(TCP) }

func (tlsDetector) TryMatch(buf []byte) MatchOutcome {
	contentType, ok := bytesview.At(buf, 0)
	if !ok {
		return NeedMoreDataOutcome()
	}
	if contentType < 0x14 || contentType > 0x17 {
		return NoMatchOutcome()
	}

	major, ok := bytesview.At(buf, 1)
	if !ok {
		return NeedMoreDataOutcome()
	}
	if major != 0x03 {
		return NoMatchOutcome()
	}
	minor, ok := bytesview.At(buf, 2)
	if !ok {
		return NeedMoreDataOutcome()
	}
	if minor > 0x04 {
		return NoMatchOutcome()
	}

	length, ok := bytesview.BE16(buf, 3)
	if !ok {
		return NeedMoreDataOutcome()
	}
	if length == 0 || int(length) > tlsMaxRecordLength {
		return NoMatchOutcome()
	}

	// The 5-byte record header is valid: this is decisively TLS. Any
	// further inconsistency or truncation in the handshake body is not
	// grounds to retract the match, per the truncated-ClientHello rule.
	if contentType != 0x16 {
		return MatchedUnversioned(TLS)
	}

	handshakeType, ok := bytesview.At(buf, 5)
	if !ok || handshakeType != tlsHandshakeClientHello {
		return MatchedUnversioned(TLS)
	}

	if tag, ok := clientHelloSupportedVersion(buf); ok {
		return Matched(TLS, tag)
	}
	return Matched(TLS, legacyClientHelloVersion(buf))
}

// clientHelloSupportedVersion walks the ClientHello's extensions, bounded by
// the view, looking for a supported_versions entry of 0x0304 (TLS 1.3).
func clientHelloSupportedVersion(buf []byte) (VersionTag, bool) {
	// record header(5) + handshake type(1) + handshake length(3) +
	// client_version(2) + random(32) = offset 43 for session_id_length.
	offset := 43
	sessionIDLen, ok := bytesview.At(buf, offset)
	if !ok {
		return VersionNone, false
	}
	offset++
	offset += int(sessionIDLen)

	cipherSuitesLen, ok := bytesview.BE16(buf, offset)
	if !ok {
		return VersionNone, false
	}
	offset += 2
	offset += int(cipherSuitesLen)

	compressionLen, ok := bytesview.At(buf, offset)
	if !ok {
		return VersionNone, false
	}
	offset++
	offset += int(compressionLen)

	extensionsLen, ok := bytesview.BE16(buf, offset)
	if !ok {
		return VersionNone, false
	}
	offset += 2

	extEnd := offset + int(extensionsLen)
	if extEnd > len(buf) {
		extEnd = len(buf)
	}

	for offset+4 <= extEnd {
		extType, ok := bytesview.BE16(buf, offset)
		if !ok {
			break
		}
		extLen, ok := bytesview.BE16(buf, offset+2)
		if !ok {
			break
		}
		dataStart := offset + 4
		dataEnd := dataStart + int(extLen)
		if dataEnd > len(buf) {
			dataEnd = len(buf)
		}

		if extType == tlsExtSupportedVersions && dataStart < dataEnd {
			listLen, ok := bytesview.At(buf, dataStart)
			if ok {
				entries, ok := bytesview.Slice(buf, dataStart+1, minInt(dataStart+1+int(listLen), dataEnd))
				if ok {
					for i := 0; i+1 < len(entries); i += 2 {
						if uint16(entries[i])<<8|uint16(entries[i+1]) == tlsVersionTLS1_3Wire {
							return TLS1_3, true
						}
					}
				}
			}
		}

		offset = dataStart + int(extLen)
	}
	return VersionNone, false
}

func legacyClientHelloVersion(buf []byte) VersionTag {
	clientVersion, ok := bytesview.BE16(buf, 9)
	if !ok {
		return VersionNone
	}
	switch clientVersion {
	case 0x0300:
		return TLSSSL3_0
	case 0x0301:
		return TLS1_0
	case 0x0302:
		return TLS1_1
	case 0x0303:
		return TLS1_2
	case 0x0304:
		return TLS1_3
	default:
		return VersionNone
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
