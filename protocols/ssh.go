package protocols

import "github.com/darkit/protodetect/internal/bytesview"

var sshPrefix = []byte("SSH-")

type sshDetector struct{}

// SSHDetector recognizes the SSH identification string (RFC 4253 §4.2):
// "SSH-" alone is sufficient to match; the protocol-version token between
// the second and third hyphen is extracted eagerly, without waiting for the
// CR/LF line terminator.
var SSHDetector Detector = sshDetector{}

func (sshDetector) Kind() Protocol { return SSH }

func (sshDetector) Transports() TransportSet { return Transports(TCP) }

func (sshDetector) TryMatch(buf []byte) MatchOutcome {
	if len(buf) >= len(sshPrefix) {
		if !bytesview.HasPrefix(buf, sshPrefix) {
			return NoMatchOutcome()
		}
		return Matched(SSH, sshProtoVersion(buf[len(sshPrefix):]))
	}
	if bytesview.HasPrefix(sshPrefix, buf) {
		return NeedMoreDataOutcome()
	}
	return NoMatchOutcome()
}

func sshProtoVersion(rest []byte) VersionTag {
	dash := bytesview.IndexByte(rest, 0, -1, '-')
	if dash < 0 {
		return VersionNone
	}
	proto := rest[:dash]
	switch {
	case sshProtoEquals(proto, "2.0"):
		return SSH2_0
	case sshProtoEquals(proto, "1.5"):
		return SSH1_5
	default:
		return VersionNone
	}
}

func sshProtoEquals(proto []byte, want string) bool {
	if len(proto) != len(want) {
		return false
	}
	for i := 0; i < len(proto); i++ {
		if proto[i] != want[i] {
			return false
		}
	}
	return true
}
