package functions

import (
	"fmt"
	"math/big"

	"github.com/tsarna/go2cty2go"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// GetLogFunctions returns the log_* functions, writing to logger. With a nil
// logger the functions do nothing and return false.
func GetLogFunctions(logger *zap.Logger) map[string]function.Function {
	return map[string]function.Function{
		"log_debug": makeLogFunc(logger, zapcore.DebugLevel),
		"log_info":  makeLogFunc(logger, zapcore.InfoLevel),
		"log_warn":  makeLogFunc(logger, zapcore.WarnLevel),
		"log_error": makeLogFunc(logger, zapcore.ErrorLevel),
		"log_msg":   makeLogLevelFunc(logger),
	}
}

func makeLogFunc(logger *zap.Logger, level zapcore.Level) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "message", Type: cty.String},
		},
		VarParam: &function.Parameter{
			Name:      "fields",
			Type:      cty.DynamicPseudoType,
			AllowNull: true,
		},
		Type: function.StaticReturnType(cty.Bool),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			if logger == nil {
				return cty.False, nil
			}
			logger.Log(level, args[0].AsString(), convertArgsToZapFields(args[1:])...)
			return cty.True, nil
		},
	})
}

func makeLogLevelFunc(logger *zap.Logger) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "level", Type: cty.String},
			{Name: "message", Type: cty.String},
		},
		VarParam: &function.Parameter{
			Name:      "fields",
			Type:      cty.DynamicPseudoType,
			AllowNull: true,
		},
		Type: function.StaticReturnType(cty.Bool),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			if logger == nil {
				return cty.False, nil
			}

			level, err := zapcore.ParseLevel(args[0].AsString())
			if err != nil {
				// unknown levels log at info
				level = zapcore.InfoLevel
			}

			logger.Log(level, args[1].AsString(), convertArgsToZapFields(args[2:])...)
			return cty.True, nil
		},
	})
}

// convertArgsToZapFields turns extra log arguments into fields. A single
// object or map argument supplies the field names; anything else is named
// positionally ($1, $2, ...).
func convertArgsToZapFields(args []cty.Value) []zap.Field {
	var fields []zap.Field

	if len(args) == 1 && !args[0].IsNull() && args[0].IsKnown() &&
		(args[0].Type().IsMapType() || args[0].Type().IsObjectType()) && args[0].LengthInt() > 0 {
		for it := args[0].ElementIterator(); it.Next(); {
			key, val := it.Element()
			fields = append(fields, convertCtyValueToZapField(key.AsString(), val))
		}
		return fields
	}

	for i, arg := range args {
		fields = append(fields, convertCtyValueToZapField(fmt.Sprintf("$%d", i+1), arg))
	}
	return fields
}

func convertCtyValueToZapField(key string, val cty.Value) zap.Field {
	if val.IsNull() {
		return zap.String(key, "<null>")
	}
	if !val.IsKnown() {
		return zap.String(key, "<unknown>")
	}

	switch val.Type() {
	case cty.String:
		return zap.String(key, val.AsString())
	case cty.Bool:
		return zap.Bool(key, val.True())
	case cty.Number:
		bf := val.AsBigFloat()
		if i, acc := bf.Int64(); acc == big.Exact {
			return zap.Int64(key, i)
		}
		f, _ := bf.Float64()
		return zap.Float64(key, f)
	}

	v, err := go2cty2go.CtyToAny(val)
	if err != nil {
		return zap.String(key, val.GoString())
	}
	return zap.Any(key, v)
}
