//go:build (linux || solaris) && !baremetal

package functions

import (
	"github.com/tsarna/sigext/pkg/sigext"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

func realtimeFunctions(m *sigext.Mapper) map[string]function.Function {
	return map[string]function.Function{
		"sigrt": function.New(&function.Spec{
			Description: "Returns SIGRTMIN+n, or null if that is past SIGRTMAX",
			Params: []function.Parameter{
				{Name: "n", Type: cty.Number},
			},
			Type: function.StaticReturnType(cty.Number),
			Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
				n, err := ToRaw(args[0])
				if err != nil {
					return cty.NilVal, function.NewArgError(0, err)
				}
				sig, ok := m.RT(n)
				if !ok {
					return cty.NullVal(cty.Number), nil
				}
				return signalVal(sig), nil
			},
		}),
		"sigrtmin": function.New(&function.Spec{
			Description: "Returns SIGRTMIN",
			Type:        function.StaticReturnType(cty.Number),
			Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
				return signalVal(m.RTMin()), nil
			},
		}),
		"sigrtmax": function.New(&function.Spec{
			Description: "Returns SIGRTMAX",
			Type:        function.StaticReturnType(cty.Number),
			Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
				return signalVal(m.RTMax()), nil
			},
		}),
	}
}
