package sigtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUncheckedRoundTrip(t *testing.T) {
	s := FromRawUnchecked(1000)
	assert.Equal(t, int32(1000), s.AsRaw())
	assert.Equal(t, int32(1000), s.AsRawNonZero().Get())
	assert.Equal(t, "signal 1000", s.String())
	assert.Empty(t, s.Name())
}

func TestDefine(t *testing.T) {
	before := len(named)
	t.Cleanup(func() { named = named[:before] })

	s := Define("TESTONLY", "TSTONLY", 5000)
	assert.Equal(t, "TESTONLY", s.Name())
	assert.Equal(t, "SIGTSTONLY", s.String())

	byName, ok := ByName("sigtstonly")
	assert.True(t, ok)
	assert.Equal(t, s, byName)

	all := Named()
	assert.Equal(t, s, all[len(all)-1])
}
