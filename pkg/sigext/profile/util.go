package profile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// IsExpressionProvided checks if an HCL expression was actually provided in
// the profile. Omitted optional attributes decode to empty expressions with
// a zero-length range.
func IsExpressionProvided(expr hcl.Expression) bool {
	return expr != nil && expr.Range().End.Byte > expr.Range().Start.Byte
}

func (p *Profile) evalString(expr hcl.Expression) (string, hcl.Diagnostics) {
	value, diags := expr.Value(p.evalCtx)
	if diags.HasErrors() || value.IsNull() {
		return "", diags
	}

	str, err := convert.Convert(value, cty.String)
	if err != nil || str.IsNull() || !str.IsKnown() {
		return "", diags.Append(&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid string",
			Detail:   fmt.Sprintf("Expected a string, got %s", value.Type().FriendlyName()),
			Subject:  expr.Range().Ptr(),
		})
	}

	return str.AsString(), diags
}
