//go:build unix && !hurd && !baremetal

package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsarna/sigext/pkg/signal"
	"golang.org/x/sys/unix"
)

func TestSignalFromRaw(t *testing.T) {
	sig, ok := SignalFromRaw(int32(unix.SIGKILL))
	require.True(t, ok)
	assert.Equal(t, signal.KILL, sig)

	_, ok = SignalFromRaw(0)
	assert.False(t, ok)
}

func TestTermSignal(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   Signal
		ok     bool
	}{
		{"killed", int(unix.SIGKILL), signal.KILL, true},
		{"killed with core", int(unix.SIGSEGV) | 0x80, signal.SEGV, true},
		{"exited", 3 << 8, Signal{}, false},
		{"stopped", 0x7f | int(unix.SIGSTOP)<<8, Signal{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TermSignal(tt.status)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
