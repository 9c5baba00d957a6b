package protocols

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMySQLDetector_MatchesGreeting(t *testing.T) {
	buf := []byte{
		10, 0, 0, // payload length (LE24) = 10
		0,      // sequence id
		10,     // protocol version
		'a', 'b', 'c', 0x00,
		0, 0, 0, 0, 0, // padding to fill declared payload length
	}
	out := MySQLDetector.TryMatch(buf)
	require.Equal(t, Match, out.Status)
	assert.Equal(t, MySQL, out.Version.Protocol)
}

func TestMySQLDetector_AcceptsLegacyProtocolVersion9(t *testing.T) {
	buf := []byte{6, 0, 0, 0, 9, 'x', 0x00, 0, 0}
	out := MySQLDetector.TryMatch(buf)
	assert.Equal(t, Match, out.Status)
}

func TestMySQLDetector_RejectsUnknownProtocolVersion(t *testing.T) {
	buf := []byte{3, 0, 0, 0, 5, 1, 2, 3}
	out := MySQLDetector.TryMatch(buf)
	assert.Equal(t, NoMatch, out.Status)
}

func TestMySQLDetector_NeedMoreDataWhenVersionStringNotYetTerminated(t *testing.T) {
	buf := []byte{20, 0, 0, 0, 10, 'a', 'b', 'c'}
	out := MySQLDetector.TryMatch(buf)
	assert.Equal(t, NeedMoreData, out.Status)
}

func TestMySQLDetector_NeedMoreDataOnShortBuffer(t *testing.T) {
	out := MySQLDetector.TryMatch([]byte{1, 0})
	assert.Equal(t, NeedMoreData, out.Status)
}
