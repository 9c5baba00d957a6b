package protocols

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQUICDetector_LongHeaderInitial(t *testing.T) {
	buf := []byte{0xc0, 0x00, 0x00, 0x00, 0x01, 0x08, 1, 2, 3, 4, 5, 6, 7, 8}
	out := QUICDetector.TryMatch(buf)
	require.Equal(t, Match, out.Status)
	assert.Equal(t, QUIC, out.Version.Protocol)
	assert.Equal(t, VersionNone, out.Version.Tag)
}

func TestQUICDetector_RejectsShortHeaderForm(t *testing.T) {
	buf := []byte{0x40, 0x00, 0x00, 0x00, 0x01, 0x08}
	out := QUICDetector.TryMatch(buf)
	assert.Equal(t, NoMatch, out.Status)
}

func TestQUICDetector_RejectsUnknownVersion(t *testing.T) {
	buf := []byte{0xc0, 0x01, 0x02, 0x03, 0x04, 0x08}
	out := QUICDetector.TryMatch(buf)
	assert.Equal(t, NoMatch, out.Status)
}

func TestQUICDetector_RejectsOversizeDCID(t *testing.T) {
	buf := []byte{0xc0, 0x00, 0x00, 0x00, 0x01, 0xff}
	out := QUICDetector.TryMatch(buf)
	assert.Equal(t, NoMatch, out.Status)
}

func TestQUICDetector_NeedMoreDataOnShortBuffer(t *testing.T) {
	out := QUICDetector.TryMatch([]byte{0xc0, 0x00})
	assert.Equal(t, NeedMoreData, out.Status)
}

func TestQUICDetector_UDPOnly(t *testing.T) {
	assert.True(t, QUICDetector.Transports().Includes(UDP))
	assert.False(t, QUICDetector.Transports().Includes(TCP))
}
