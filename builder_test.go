package protodetect

import (
	"testing"

	"github.com/darkit/protodetect/protocols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderTCP_RejectsUDPOnlyDetector(t *testing.T) {
	_, err := BuilderTCP().Add(protocols.QUICDetector).Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedTransport)
}

func TestBuilderUDP_RejectsTCPOnlyDetector(t *testing.T) {
	_, err := BuilderUDP().Add(protocols.HTTPDetector).Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedTransport)
}

func TestBuilder_RejectsDuplicateDetector(t *testing.T) {
	_, err := BuilderTCP().Add(protocols.HTTPDetector).Add(protocols.HTTPDetector).Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateDetector)
}

func TestBuilder_RejectsEmptyChain(t *testing.T) {
	_, err := BuilderTCP().Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyChain)
}

func TestBuilder_RejectsInvalidMaxInspect(t *testing.T) {
	_, err := BuilderTCP().Add(protocols.HTTPDetector).SetMaxInspect(0).Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMaxInspect)
}

func TestBuilder_FirstErrorWins(t *testing.T) {
	_, err := BuilderTCP().
		Add(protocols.QUICDetector). // fails: wrong transport
		Add(protocols.HTTPDetector). // never reached
		Build()
	require.Error(t, err)
	var buildErr *BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Equal(t, protocols.QUIC, buildErr.Protocol)
}

func TestBuilder_WithDefaultChain(t *testing.T) {
	chain, err := BuilderTCP().WithDefaultChain().Build()
	require.NoError(t, err)
	assert.Len(t, chain.Entries(), len(protocols.DefaultTCPOrder()))

	udpChain, err := BuilderUDP().WithDefaultChain().Build()
	require.NoError(t, err)
	assert.Len(t, udpChain.Entries(), len(protocols.DefaultUDPOrder()))
}

func TestBuilder_EntriesAreACopy(t *testing.T) {
	chain, err := BuilderTCP().Add(protocols.HTTPDetector).Build()
	require.NoError(t, err)

	entries := chain.Entries()
	entries[0] = DetectorEntry{}
	assert.Equal(t, protocols.HTTP, chain.Entries()[0].Detector.Kind())
}
