package protocols

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dhcpPacket(op, htype, hlen byte, cookie []byte) []byte {
	buf := make([]byte, 240)
	buf[0], buf[1], buf[2] = op, htype, hlen
	copy(buf[236:240], cookie)
	return buf
}

func TestDHCPDetector_MatchesFullPacket(t *testing.T) {
	buf := dhcpPacket(1, 1, 6, []byte{0x63, 0x82, 0x53, 0x63})
	out := DHCPDetector.TryMatch(buf)
	require.Equal(t, Match, out.Status)
	assert.Equal(t, DHCP, out.Version.Protocol)
}

func TestDHCPDetector_RejectsBadOp(t *testing.T) {
	buf := dhcpPacket(3, 1, 6, []byte{0x63, 0x82, 0x53, 0x63})
	out := DHCPDetector.TryMatch(buf)
	assert.Equal(t, NoMatch, out.Status)
}

func TestDHCPDetector_RejectsBadHlen(t *testing.T) {
	buf := dhcpPacket(1, 1, 200, []byte{0x63, 0x82, 0x53, 0x63})
	out := DHCPDetector.TryMatch(buf)
	assert.Equal(t, NoMatch, out.Status)
}

func TestDHCPDetector_RejectsWrongMagicCookie(t *testing.T) {
	buf := dhcpPacket(1, 1, 6, []byte{0, 0, 0, 0})
	out := DHCPDetector.TryMatch(buf)
	assert.Equal(t, NoMatch, out.Status)
}

func TestDHCPDetector_NeedMoreDataBelowFullHeader(t *testing.T) {
	buf := dhcpPacket(1, 1, 6, []byte{0x63, 0x82, 0x53, 0x63})[:100]
	out := DHCPDetector.TryMatch(buf)
	assert.Equal(t, NeedMoreData, out.Status)
}
