package protocols

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresDetector_SSLRequest(t *testing.T) {
	buf := []byte{0x00, 0x00, 0x00, 0x08, 0x04, 0xd2, 0x16, 0x2f}
	out := PostgresDetector.TryMatch(buf)
	require.Equal(t, Match, out.Status)
	assert.Equal(t, PostgreSQL, out.Version.Protocol)
}

func TestPostgresDetector_StartupMessage(t *testing.T) {
	buf := make([]byte, 12)
	binary.BigEndian.PutUint32(buf[0:4], 12)
	binary.BigEndian.PutUint32(buf[4:8], 0x00030000)
	out := PostgresDetector.TryMatch(buf)
	require.Equal(t, Match, out.Status)
}

func TestPostgresDetector_RejectsUnknownProtocolVersion(t *testing.T) {
	buf := make([]byte, 12)
	binary.BigEndian.PutUint32(buf[0:4], 12)
	binary.BigEndian.PutUint32(buf[4:8], 0x00020000)
	out := PostgresDetector.TryMatch(buf)
	assert.Equal(t, NoMatch, out.Status)
}

func TestPostgresDetector_RejectsImplausibleLength(t *testing.T) {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint32(buf[0:4], 2)
	binary.BigEndian.PutUint32(buf[4:8], 0x00030000)
	out := PostgresDetector.TryMatch(buf)
	assert.Equal(t, NoMatch, out.Status)
}

func TestPostgresDetector_NeedMoreDataOnPartialSSLRequest(t *testing.T) {
	out := PostgresDetector.TryMatch([]byte{0x00, 0x00, 0x00, 0x08, 0x04})
	assert.Equal(t, NeedMoreData, out.Status)
}
