package functions

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/ext/userfunc"
	"github.com/zclconf/go-cty/cty/function"
)

// ExtractUserFunctions decodes the function and jq blocks of every body and
// returns the functions along with the bodies that remain. getCtx is called
// when a user function runs, so it may return a context that does not exist
// yet at decode time.
func ExtractUserFunctions(bodies []hcl.Body, getCtx func() *hcl.EvalContext) (map[string]function.Function, []hcl.Body, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	remainingBodies := make([]hcl.Body, 0, len(bodies))
	allFuncs := make(map[string]function.Function)

	for _, body := range bodies {
		funcs, remainingBody, funcDiags := userfunc.DecodeUserFunctions(body, "function", getCtx)
		diags = diags.Extend(funcDiags)
		if funcDiags.HasErrors() {
			return nil, nil, diags
		}

		jqFuncs, remainingBody, jqDiags := DecodeJqFunctions(remainingBody, "jq")
		diags = diags.Extend(jqDiags)
		if jqDiags.HasErrors() {
			return nil, nil, diags
		}

		remainingBodies = append(remainingBodies, remainingBody)

		for _, funcset := range []map[string]function.Function{funcs, jqFuncs} {
			for name, fn := range funcset {
				if _, exists := allFuncs[name]; exists {
					diags = diags.Append(&hcl.Diagnostic{
						Severity: hcl.DiagError,
						Summary:  "Duplicate function",
						Detail:   fmt.Sprintf("Function %s is already defined", name),
					})
				}
				allFuncs[name] = fn
			}
		}
	}

	if diags.HasErrors() {
		return nil, nil, diags
	}

	return allFuncs, remainingBodies, diags
}
