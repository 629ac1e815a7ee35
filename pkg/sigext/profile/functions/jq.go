package functions

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/itchyny/gojq"
	"github.com/tsarna/go2cty2go"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

type jqDefinition struct {
	Query    string    `hcl:"query"`
	DefRange hcl.Range `hcl:",def_range"`
}

// DecodeJqFunctions turns every block of the given type into a function of
// one argument that runs the block's jq query on it:
//
//	jq "rt_names" {
//	  query = "[.[] | select(.kind == \"realtime\") | .name]"
//	}
//
// A query producing one result returns it, several results are returned as
// a tuple and no result is null.
func DecodeJqFunctions(body hcl.Body, blockType string) (map[string]function.Function, hcl.Body, hcl.Diagnostics) {
	schema := &hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: blockType, LabelNames: []string{"name"}},
		},
	}

	content, remain, diags := body.PartialContent(schema)
	if diags.HasErrors() {
		return nil, remain, diags
	}

	funcs := make(map[string]function.Function)
	for _, block := range content.Blocks {
		def := jqDefinition{}
		decodeDiags := gohcl.DecodeBody(block.Body, nil, &def)
		diags = diags.Extend(decodeDiags)
		if decodeDiags.HasErrors() {
			continue
		}

		fn, err := JqFunction(def.Query)
		if err != nil {
			diags = diags.Append(&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid jq query",
				Detail:   err.Error(),
				Subject:  &def.DefRange,
			})
			continue
		}

		name := block.Labels[0]
		if _, exists := funcs[name]; exists {
			diags = diags.Append(&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate function",
				Detail:   fmt.Sprintf("Function %s is already defined", name),
				Subject:  &block.DefRange,
			})
			continue
		}
		funcs[name] = fn
	}

	return funcs, remain, diags
}

// JqFunction compiles query into a cty function.
func JqFunction(query string) (function.Function, error) {
	parsed, err := gojq.Parse(query)
	if err != nil {
		return function.Function{}, fmt.Errorf("failed to parse jq query '%s': %w", query, err)
	}

	code, err := gojq.Compile(parsed)
	if err != nil {
		return function.Function{}, fmt.Errorf("failed to compile jq query '%s': %w", query, err)
	}

	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "input", Type: cty.DynamicPseudoType, AllowNull: true},
		},
		Type: function.StaticReturnType(cty.DynamicPseudoType),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			input, err := go2cty2go.CtyToAny(args[0])
			if err != nil {
				return cty.NilVal, err
			}

			var results []cty.Value
			iter := code.RunWithContext(context.Background(), normalizeJQ(input))
			for {
				result, ok := iter.Next()
				if !ok {
					break
				}
				if err, isErr := result.(error); isErr {
					return cty.NilVal, err
				}

				v, err := go2cty2go.AnyToCty(result)
				if err != nil {
					return cty.NilVal, err
				}
				results = append(results, v)
			}

			switch len(results) {
			case 0:
				return cty.NullVal(cty.DynamicPseudoType), nil
			case 1:
				return results[0], nil
			default:
				return cty.TupleVal(results), nil
			}
		},
	}), nil
}

// normalizeJQ rewrites the int64 values produced by go2cty2go as int, the
// integer type gojq accepts.
func normalizeJQ(v any) any {
	switch v := v.(type) {
	case int64:
		if int64(int(v)) == v {
			return int(v)
		}
		return float64(v)
	case []any:
		for i, e := range v {
			v[i] = normalizeJQ(e)
		}
		return v
	case map[string]any:
		for k, e := range v {
			v[k] = normalizeJQ(e)
		}
		return v
	default:
		return v
	}
}
