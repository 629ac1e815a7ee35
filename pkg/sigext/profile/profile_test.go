//go:build unix && !hurd && !baremetal

package profile

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsarna/sigext/pkg/signal"
	"go.uber.org/zap/zaptest"
)

//go:embed testdata/basic.hcl
var basic []byte

//go:embed testdata/cycle.hcl
var cycle []byte

//go:embed testdata/assertfail.hcl
var assertFailure []byte

//go:embed testdata/badsignal.hcl
var badSignal []byte

//go:embed testdata/missing.hcl
var missingAlias []byte

//go:embed testdata/reserved.hcl
var reserved []byte

//go:embed testdata/split
var split embed.FS

func TestBasicProfile(t *testing.T) {
	p, diags := New().WithLogger(zaptest.NewLogger(t)).WithSources(basic).Build()
	require.False(t, diags.HasErrors(), diags.Error())

	assert.Equal(t, []string{"reload", "rotate", "shutdown"}, p.AliasNames())

	reload := p.Aliases["reload"]
	assert.Equal(t, signal.HUP, reload.Signal)
	assert.Equal(t, "re-read basic configuration", reload.Description)

	assert.Equal(t, signal.TERM, p.Aliases["shutdown"].Signal)
	assert.Empty(t, p.Aliases["shutdown"].Description)
	assert.Contains(t, p.Aliases["rotate"].Description, "rotate logs after")

	sig, ok := p.Resolve("rotate")
	require.True(t, ok)
	assert.Equal(t, signal.USR1, sig)

	sig, ok = p.Resolve("SIGINT")
	require.True(t, ok)
	assert.Equal(t, signal.INT, sig)

	_, ok = p.Resolve("nope")
	assert.False(t, ok)
}

func TestConstantsAsGo(t *testing.T) {
	p, diags := New().WithSources(basic).Build()
	require.False(t, diags.HasErrors(), diags.Error())

	consts, err := p.ConstantsAsGo()
	require.NoError(t, err)

	assert.Equal(t, "basic profile", consts["greeting"])
	assert.Equal(t, int64(signal.TERM.AsRaw()), consts["stop_sig"])
	assert.NotContains(t, consts, VarEnv)
	assert.NotContains(t, consts, VarPlatform)
	assert.NotContains(t, consts, VarAlias)
}

func TestEval(t *testing.T) {
	p, diags := New().WithSources(basic).Build()
	require.False(t, diags.HasErrors(), diags.Error())

	v, diags := p.Eval("signame(alias.reload)")
	require.False(t, diags.HasErrors(), diags.Error())
	assert.Equal(t, "SIGHUP", v.AsString())

	_, diags = p.Eval("alias.")
	assert.True(t, diags.HasErrors())

	_, diags = p.Eval("signal(\"BOGUS\")")
	assert.True(t, diags.HasErrors())
}

func TestAliasCycle(t *testing.T) {
	_, diags := New().WithSources(cycle).Build()
	require.True(t, diags.HasErrors())
	assert.Contains(t, diags.Error(), "Circular dependency")
}

func TestAliasNotFound(t *testing.T) {
	_, diags := New().WithSources(missingAlias).Build()
	require.True(t, diags.HasErrors())
	assert.Contains(t, diags.Error(), "Alias not found")
}

func TestAssertFailure(t *testing.T) {
	_, diags := New().WithSources(assertFailure).Build()
	require.True(t, diags.HasErrors())
	assert.Contains(t, diags.Error(), "always_fails")
}

func TestInvalidSignal(t *testing.T) {
	_, diags := New().WithSources(badSignal).Build()
	require.True(t, diags.HasErrors())
	assert.Contains(t, diags.Error(), "Invalid signal")
}

func TestReservedConstant(t *testing.T) {
	_, diags := New().WithSources(reserved).Build()
	require.True(t, diags.HasErrors())
	assert.Contains(t, diags.Error(), "Reserved name")
}

func TestDuplicateAliasWarns(t *testing.T) {
	src := []byte(`
alias "a" {
  signal = "TERM"
}

alias "b" {
  signal = signal("TERM")
}
`)
	p, diags := New().WithSources(src).Build()
	require.False(t, diags.HasErrors(), diags.Error())
	require.Len(t, diags, 1)
	assert.Equal(t, "Signal aliased twice", diags[0].Summary)
	assert.Equal(t, p.Aliases["a"].Signal, p.Aliases["b"].Signal)
}

func TestDuplicateAliasName(t *testing.T) {
	src := []byte(`
alias "a" {
  signal = "TERM"
}
`)
	_, diags := New().WithSources(src, src).Build()
	require.True(t, diags.HasErrors())
	assert.Contains(t, diags.Error(), "Duplicate alias")
}

func TestUnknownBlock(t *testing.T) {
	_, diags := New().WithSources([]byte(`bus "main" {}`)).Build()
	assert.True(t, diags.HasErrors())
}

func TestUserFunctionCannotShadowBuiltin(t *testing.T) {
	src := []byte(`
function "signal" {
  params = [x]
  result = x
}
`)
	_, diags := New().WithSources(src).Build()
	require.True(t, diags.HasErrors())
	assert.Contains(t, diags.Error(), "reserved")
}

func TestSplitAcrossFiles(t *testing.T) {
	p, diags := New().WithSources(split).Build()
	require.False(t, diags.HasErrors(), diags.Error())
	assert.Equal(t, signal.USR2, p.Aliases["user"].Signal)
}

func TestDirectorySource(t *testing.T) {
	p, diags := New().WithSources("testdata/split").Build()
	require.False(t, diags.HasErrors(), diags.Error())
	assert.Equal(t, signal.USR2, p.Aliases["user"].Signal)
}

func TestInvalidSources(t *testing.T) {
	_, diags := New().WithSources(42).Build()
	assert.True(t, diags.HasErrors())

	_, diags = New().WithSources("testdata/does-not-exist.hcl").Build()
	assert.True(t, diags.HasErrors())
}

func TestSanitizeEnvVarName(t *testing.T) {
	assert.Equal(t, "HOME", sanitizeEnvVarName("HOME"))
	assert.Equal(t, "_PATH", sanitizeEnvVarName("1PATH"))
	assert.Equal(t, "a_b-c", sanitizeEnvVarName("a.b-c"))
	assert.Equal(t, "_", sanitizeEnvVarName(""))
}

func TestEnvObject(t *testing.T) {
	t.Setenv("SIGEXT_TEST_VALUE", "hello")

	env := GetEnvObject()
	assert.Equal(t, "hello", env.GetAttr("SIGEXT_TEST_VALUE").AsString())
}
