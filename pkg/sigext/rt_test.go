//go:build (linux || solaris) && !baremetal

package sigext

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRTZeroIsMin(t *testing.T) {
	got, ok := RT(0)
	require.True(t, ok)
	assert.Equal(t, RTMin(), got)
	assert.Empty(t, got.Name())
}

func TestRTOffset(t *testing.T) {
	got, ok := RT(7)
	require.True(t, ok)
	assert.Equal(t, RTMin().AsRaw()+7, got.AsRaw())
	assert.NotEqual(t, RTMin(), got)
	assert.NotEqual(t, RTMax(), got)
}

func TestRTWholeWindow(t *testing.T) {
	lo, hi := RTMin().AsRaw(), RTMax().AsRaw()
	require.Less(t, lo, hi)

	for n := int32(0); n <= hi-lo; n++ {
		viaRT, ok := RT(n)
		require.True(t, ok, "offset %d", n)

		viaRaw, ok := FromRaw(lo + n)
		require.True(t, ok, "raw %d", lo+n)
		assert.Equal(t, viaRT, viaRaw)
	}

	_, ok := RT(hi - lo + 1)
	assert.False(t, ok)
}

func TestRTOutsideWindow(t *testing.T) {
	_, ok := RT(-1)
	assert.False(t, ok)

	_, ok = RT(math.MaxInt32)
	assert.False(t, ok, "wrapped addition must not be accepted")

	_, ok = RT(math.MinInt32)
	assert.False(t, ok)

	_, ok = FromRaw(RTMin().AsRaw() - 1)
	assert.False(t, ok, "SIGRTMIN-1 is kept by the C library")

	_, ok = FromRaw(RTMax().AsRaw() + 1)
	assert.False(t, ok)
}

func TestWindowMatchesBounds(t *testing.T) {
	w, ok := Default().RealtimeWindow()
	require.True(t, ok)
	assert.Equal(t, RTMin().AsRaw(), w.Min)
	assert.Equal(t, RTMax().AsRaw(), w.Max)
	assert.NoError(t, w.validate())
}

func TestCachedWindow(t *testing.T) {
	live, ok := Default().RealtimeWindow()
	require.True(t, ok)

	m, err := NewMapper().WithCachedWindow(true).Build()
	require.NoError(t, err)

	cached, ok := m.RealtimeWindow()
	require.True(t, ok)
	assert.Equal(t, live, cached)
	assert.Equal(t, RTMin(), m.RTMin())

	got, ok := m.RT(1)
	require.True(t, ok)
	assert.Equal(t, live.Min+1, got.AsRaw())
}

func TestRTCounts(t *testing.T) {
	provider := newCountingProvider()
	m, err := NewMapper().WithMetrics(provider).Build()
	require.NoError(t, err)

	_, ok := m.RT(0)
	require.True(t, ok)
	_, ok = m.FromRaw(m.RTMax().AsRaw())
	require.True(t, ok)
	_, ok = m.RT(-1)
	require.False(t, ok)

	assert.Equal(t, int64(2), provider.get(OutcomeRealtime))
	assert.Equal(t, int64(1), provider.get(OutcomeNone))
}

func TestRTConcurrent(t *testing.T) {
	want, ok := RT(3)
	require.True(t, ok)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got, ok := RT(3)
				assert.True(t, ok)
				assert.Equal(t, want, got)
			}
		}()
	}
	wg.Wait()
}
