//go:build (linux || solaris) && !baremetal

package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsarna/sigext/pkg/sigext"
)

func TestRealtimeSignal(t *testing.T) {
	got, ok := RealtimeSignal(2)
	require.True(t, ok)
	assert.Equal(t, sigext.RTMin().AsRaw()+2, got.AsRaw())

	_, ok = RealtimeSignal(-1)
	assert.False(t, ok)
}
