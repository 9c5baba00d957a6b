package protocols

import "github.com/darkit/protodetect/internal/bytesview"

var (
	smbMagicV1 = []byte{0xff, 'S', 'M', 'B'}
	smbMagicV2 = []byte{0xfe, 'S', 'M', 'B'}
)

const (
	smbHeaderLenV1  = 32
	smbHeaderLenV2  = 64
	smbDialectV3Min = 0x0300
)

type smbDetector struct{}

// SMBDetector recognizes the SMB1 ("\xffSMB") and SMB2/3 ("\xfeSMB") magic,
// either bare or behind NetBIOS/Direct-TCP session framing (a 0x00 byte
// followed by a 3-byte big-endian length). SMB2 vs SMB3 is resolved from the
// Negotiate response's DialectRevision field when it falls within the view;
// otherwise it defaults to SMBv2.
var SMBDetector Detector = smbDetector{}

func (smbDetector) Kind() Protocol { return SMB }

func (smbDetector) Transports() TransportSet { return Transports(TCP) }

func (smbDetector) TryMatch(buf []byte) MatchOutcome {
	if outcome, decided := smbMatchAt(buf, 0, -1); decided {
		return outcome
	}
	return smbMatchFramed(buf)
}

func smbMatchFramed(buf []byte) MatchOutcome {
	b0, ok := bytesview.At(buf, 0)
	if !ok {
		return NeedMoreDataOutcome()
	}
	if b0 != 0x00 {
		return NoMatchOutcome()
	}
	length, ok := bytesview.BE24(buf, 1)
	if !ok {
		return NeedMoreDataOutcome()
	}
	if outcome, decided := smbMatchAt(buf, 4, int(length)); decided {
		return outcome
	}
	return NoMatchOutcome()
}

// smbMatchAt looks for the SMB1/SMB2 magic at offset. declaredLen < 0 means
// no NetBIOS framing length is available to sanity-check the header against.
func smbMatchAt(buf []byte, offset int, declaredLen int) (MatchOutcome, bool) {
	switch literalAtStatus(buf, offset, smbMagicV1) {
	case Match:
		if declaredLen >= 0 && declaredLen < smbHeaderLenV1 {
			return NoMatchOutcome(), true
		}
		return Matched(SMB, SMBv1), true
	case NeedMoreData:
		return NeedMoreDataOutcome(), true
	}

	switch literalAtStatus(buf, offset, smbMagicV2) {
	case Match:
		if declaredLen >= 0 && declaredLen < smbHeaderLenV2 {
			return NoMatchOutcome(), true
		}
		return Matched(SMB, smbDialectVersion(buf, offset)), true
	case NeedMoreData:
		return NeedMoreDataOutcome(), true
	}

	return MatchOutcome{}, false
}

func smbDialectVersion(buf []byte, magicOffset int) VersionTag {
	dialect, ok := bytesview.LE16(buf, magicOffset+smbHeaderLenV2+4)
	if !ok || dialect == 0 {
		return SMBv2
	}
	if dialect >= smbDialectV3Min {
		return SMBv3
	}
	return SMBv2
}
