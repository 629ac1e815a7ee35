//go:build (linux || solaris) && !baremetal

package cmd

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsarna/sigext/pkg/sigext"
	"github.com/tsarna/sigext/pkg/sigext/report"
)

func TestRTCommand(t *testing.T) {
	w, ok := sigext.Default().RealtimeWindow()
	require.True(t, ok)

	out, err := run(t, "rt", "-o", "json", "0", "1", strconv.Itoa(math.MaxInt32))
	require.NoError(t, err)

	entries := decodeEntries(t, out)
	require.Len(t, entries, 5)

	assert.Equal(t, w.Min, entries[0].Raw)
	assert.Equal(t, "SIGRTMIN", entries[0].Name)
	assert.Equal(t, w.Max, entries[1].Raw)
	assert.Equal(t, w.Min, entries[2].Raw)
	assert.Equal(t, w.Min+1, entries[3].Raw)
	assert.Equal(t, "SIGRTMIN+1", entries[3].Name)
	require.NotNil(t, entries[3].Offset)
	assert.Equal(t, int32(1), *entries[3].Offset)
	assert.Equal(t, report.KindNone, entries[4].Kind)
}

func TestRTCommandNegativeOffset(t *testing.T) {
	out, err := run(t, "rt", "-o", "json", "0", "-1")
	require.NoError(t, err)

	entries := decodeEntries(t, out)
	require.Len(t, entries, 4)
	assert.Equal(t, report.KindRealtime, entries[2].Kind)
	assert.Equal(t, report.KindNone, entries[3].Kind)
	require.NotNil(t, entries[3].Offset)
	assert.Equal(t, int32(-1), *entries[3].Offset)
}

func TestRTCommandBadOffset(t *testing.T) {
	_, err := run(t, "rt", "first")
	assert.Error(t, err)
}
