//go:build (linux || solaris) && !baremetal

package profile

import (
	_ "embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsarna/sigext/pkg/sigext"
)

//go:embed testdata/realtime.hcl
var realtime []byte

func TestRealtimeAliases(t *testing.T) {
	p, diags := New().WithSources(realtime).Build()
	require.False(t, diags.HasErrors(), diags.Error())

	first := p.Aliases["first"].Signal
	assert.Equal(t, sigext.RTMin(), first)

	wake, ok := sigext.RT(1)
	require.True(t, ok)
	assert.Equal(t, wake, p.Aliases["wake"].Signal)

	flush, ok := sigext.RT(2)
	require.True(t, ok)
	assert.Equal(t, flush, p.Aliases["flush"].Signal)
	assert.Equal(t, "flush buffers", p.Aliases["flush"].Description)
	assert.Equal(t, "SIGRTMIN+2", p.Mapper.Describe(flush))
}

func TestRealtimeOffsetPastMax(t *testing.T) {
	src := []byte(`
alias "too_far" {
  signal = sigrt(sigrtmax() - sigrtmin() + 1)
}
`)
	_, diags := New().WithSources(src).Build()
	require.True(t, diags.HasErrors())
	assert.Contains(t, diags.Error(), "past SIGRTMAX")
}
