//go:build (linux || android) && !baremetal

package iouring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsarna/sigext/pkg/process"
	"github.com/tsarna/sigext/pkg/signal"
)

func TestMaskBits(t *testing.T) {
	assert.Equal(t, uint64(0), MaskBits())
	assert.Equal(t, uint64(1), MaskBits(signal.HUP))
	assert.Equal(t, uint64(1)<<(signal.TERM.AsRaw()-1)|1<<(signal.INT.AsRaw()-1), MaskBits(signal.TERM, signal.INT))
}

func TestRealtimeMask(t *testing.T) {
	first, ok := RealtimeSignal(0)
	require.True(t, ok)
	assert.NotZero(t, MaskBits(first))
}

func TestSharedWithProcess(t *testing.T) {
	a, ok := SignalFromRaw(signal.USR1.AsRaw())
	require.True(t, ok)
	b, ok := process.SignalFromRaw(signal.USR1.AsRaw())
	require.True(t, ok)
	assert.Equal(t, a, b)

	var s process.Signal = a
	assert.Equal(t, signal.USR1, s)
}
