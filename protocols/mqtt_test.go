package protocols

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMQTTDetector_MatchesMQTTName(t *testing.T) {
	buf := []byte{0x10, 10, 0, 4, 'M', 'Q', 'T', 'T', 0x04, 0x02, 0x00, 0x3c}
	out := MQTTDetector.TryMatch(buf)
	require.Equal(t, Match, out.Status)
	assert.Equal(t, MQTT, out.Version.Protocol)
}

func TestMQTTDetector_MatchesLegacyMQIsdpName(t *testing.T) {
	buf := []byte{0x10, 12, 0, 6, 'M', 'Q', 'I', 's', 'd', 'p', 0x03}
	out := MQTTDetector.TryMatch(buf)
	require.Equal(t, Match, out.Status)
}

func TestMQTTDetector_RejectsWrongFixedHeaderByte(t *testing.T) {
	buf := []byte{0x20, 10, 0, 4, 'M', 'Q', 'T', 'T'}
	out := MQTTDetector.TryMatch(buf)
	assert.Equal(t, NoMatch, out.Status)
}

func TestMQTTDetector_RejectsUnknownProtocolName(t *testing.T) {
	buf := []byte{0x10, 10, 0, 4, 'X', 'Y', 'Z', 'W'}
	out := MQTTDetector.TryMatch(buf)
	assert.Equal(t, NoMatch, out.Status)
}

func TestMQTTDetector_NeedMoreDataOnShortBuffer(t *testing.T) {
	out := MQTTDetector.TryMatch([]byte{0x10})
	assert.Equal(t, NeedMoreData, out.Status)
}
