//go:build unix && !hurd && !baremetal

package functions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsarna/sigext/pkg/sigext"
	"github.com/tsarna/sigext/pkg/signal"
	"github.com/zclconf/go-cty/cty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestToRaw(t *testing.T) {
	raw, err := ToRaw(cty.NumberIntVal(15))
	require.NoError(t, err)
	assert.Equal(t, int32(15), raw)

	_, err = ToRaw(cty.NumberFloatVal(1.5))
	assert.Error(t, err)

	_, err = ToRaw(cty.NumberIntVal(1 << 40))
	assert.Error(t, err)

	_, err = ToRaw(cty.StringVal("15"))
	assert.Error(t, err)

	_, err = ToRaw(cty.NullVal(cty.Number))
	assert.Error(t, err)
}

func TestSignalFunctions(t *testing.T) {
	funcs := GetSignalFunctions(sigext.Default())

	v, err := funcs["signal"].Call([]cty.Value{cty.StringVal("SIGTERM")})
	require.NoError(t, err)
	assert.True(t, v.RawEquals(cty.NumberIntVal(int64(signal.TERM.AsRaw()))))

	_, err = funcs["signal"].Call([]cty.Value{cty.StringVal("NOPE")})
	assert.Error(t, err)

	v, err = funcs["signame"].Call([]cty.Value{cty.NumberIntVal(int64(signal.KILL.AsRaw()))})
	require.NoError(t, err)
	assert.Equal(t, "SIGKILL", v.AsString())

	v, err = funcs["signame"].Call([]cty.Value{cty.NumberIntVal(0)})
	require.NoError(t, err)
	assert.True(t, v.IsNull())

	v, err = funcs["sigvalid"].Call([]cty.Value{cty.NumberIntVal(-1)})
	require.NoError(t, err)
	assert.True(t, v.False())

	v, err = funcs["sigvalid"].Call([]cty.Value{cty.NumberIntVal(int64(signal.HUP.AsRaw()))})
	require.NoError(t, err)
	assert.True(t, v.True())

	_, hasRT := funcs["sigrt"]
	assert.Equal(t, sigext.HasRealtime, hasRT)
}

func TestJqFunction(t *testing.T) {
	fn, err := JqFunction(".name")
	require.NoError(t, err)

	v, err := fn.Call([]cty.Value{cty.ObjectVal(map[string]cty.Value{
		"name": cty.StringVal("reload"),
		"raw":  cty.NumberIntVal(1),
	})})
	require.NoError(t, err)
	assert.Equal(t, "reload", v.AsString())

	fn, err = JqFunction(".[] | select(. > 1)")
	require.NoError(t, err)

	v, err = fn.Call([]cty.Value{cty.TupleVal([]cty.Value{cty.NumberIntVal(1), cty.NumberIntVal(2), cty.NumberIntVal(3)})})
	require.NoError(t, err)
	assert.True(t, v.Type().IsTupleType())
	assert.Equal(t, 2, v.LengthInt())

	fn, err = JqFunction("empty")
	require.NoError(t, err)
	v, err = fn.Call([]cty.Value{cty.StringVal("x")})
	require.NoError(t, err)
	assert.True(t, v.IsNull())

	fn, err = JqFunction(".raw + 1")
	require.NoError(t, err)
	v, err = fn.Call([]cty.Value{cty.ObjectVal(map[string]cty.Value{
		"raw": cty.NumberIntVal(34),
	})})
	require.NoError(t, err)
	assert.True(t, v.Equals(cty.NumberIntVal(35)).True())

	_, err = JqFunction(".[")
	assert.Error(t, err)
}

func TestNormalizeJQ(t *testing.T) {
	in := map[string]any{
		"n":    int64(7),
		"list": []any{int64(1), "x", 2.5},
	}
	out := normalizeJQ(in).(map[string]any)
	assert.Equal(t, 7, out["n"])
	assert.Equal(t, []any{1, "x", 2.5}, out["list"])
}

func TestLogFunctions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	funcs := GetLogFunctions(zap.New(core))

	v, err := funcs["log_warn"].Call([]cty.Value{
		cty.StringVal("check"),
		cty.ObjectVal(map[string]cty.Value{"signal": cty.StringVal("SIGHUP"), "raw": cty.NumberIntVal(1)}),
	})
	require.NoError(t, err)
	assert.True(t, v.True())

	v, err = funcs["log_msg"].Call([]cty.Value{cty.StringVal("bogus"), cty.StringVal("fallback"), cty.True})
	require.NoError(t, err)
	assert.True(t, v.True())

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "SIGHUP", entries[0].ContextMap()["signal"])
	assert.Equal(t, int64(1), entries[0].ContextMap()["raw"])
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, true, entries[1].ContextMap()["$1"])

	v, err = GetLogFunctions(nil)["log_info"].Call([]cty.Value{cty.StringVal("dropped")})
	require.NoError(t, err)
	assert.True(t, v.False())
}
