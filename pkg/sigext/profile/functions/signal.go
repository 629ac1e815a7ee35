package functions

import (
	"fmt"
	"math"
	"math/big"

	"github.com/tsarna/sigext/pkg/sigext"
	"github.com/tsarna/sigext/pkg/signal"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// GetSignalFunctions returns the functions that look signals up through m.
// On targets with a real-time window sigrt, sigrtmin and sigrtmax are
// included as well.
func GetSignalFunctions(m *sigext.Mapper) map[string]function.Function {
	funcs := map[string]function.Function{
		"signal":   makeSignalFunc(),
		"signame":  makeSignameFunc(m),
		"sigvalid": makeSigvalidFunc(m),
	}

	for name, fn := range realtimeFunctions(m) {
		funcs[name] = fn
	}

	return funcs
}

// ToRaw converts a cty number into a raw signal number.
func ToRaw(v cty.Value) (int32, error) {
	if v.IsNull() || !v.IsKnown() || v.Type() != cty.Number {
		return 0, fmt.Errorf("signal number must be a known number, got %s", v.Type().FriendlyName())
	}

	bf := v.AsBigFloat()
	if !bf.IsInt() {
		return 0, fmt.Errorf("signal number %s is not a whole number", bf.Text('g', -1))
	}

	i, acc := bf.Int64()
	if acc != big.Exact || i < math.MinInt32 || i > math.MaxInt32 {
		return 0, fmt.Errorf("signal number %s is out of range", bf.Text('g', -1))
	}

	return int32(i), nil
}

func signalVal(sig signal.Signal) cty.Value {
	return cty.NumberIntVal(int64(sig.AsRaw()))
}

func makeSignalFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Returns the number of the named signal",
		Params: []function.Parameter{
			{Name: "name", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.Number),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			name := args[0].AsString()
			sig, ok := signal.ByName(name)
			if !ok {
				return cty.NilVal, function.NewArgErrorf(0, "no signal named %q on this platform", name)
			}
			return signalVal(sig), nil
		},
	})
}

func makeSignameFunc(m *sigext.Mapper) function.Function {
	return function.New(&function.Spec{
		Description: "Returns the name of a signal number, or null if it is not a signal",
		Params: []function.Parameter{
			{Name: "number", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			raw, err := ToRaw(args[0])
			if err != nil {
				return cty.NilVal, function.NewArgError(0, err)
			}
			sig, ok := m.FromRaw(raw)
			if !ok {
				return cty.NullVal(cty.String), nil
			}
			return cty.StringVal(m.Describe(sig)), nil
		},
	})
}

func makeSigvalidFunc(m *sigext.Mapper) function.Function {
	return function.New(&function.Spec{
		Description: "Returns whether a number is a signal on this platform",
		Params: []function.Parameter{
			{Name: "number", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.Bool),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			raw, err := ToRaw(args[0])
			if err != nil {
				return cty.False, nil
			}
			_, ok := m.FromRaw(raw)
			return cty.BoolVal(ok), nil
		},
	})
}
