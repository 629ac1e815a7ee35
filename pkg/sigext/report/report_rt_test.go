//go:build (linux || solaris) && !baremetal

package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsarna/sigext/pkg/sigext"
)

func TestRealtimeEntry(t *testing.T) {
	sig, ok := sigext.RT(4)
	require.True(t, ok)

	e := FromSignal(sigext.Default(), sig)
	assert.Equal(t, KindRealtime, e.Kind)
	assert.Equal(t, "SIGRTMIN+4", e.Name)
	require.NotNil(t, e.Offset)
	assert.Equal(t, int32(4), *e.Offset)

	rows := List(sigext.Default()).Rows()
	assert.Equal(t, KindRealtime, rows[len(rows)-1][2])
}
