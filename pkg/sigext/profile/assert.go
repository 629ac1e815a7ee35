package profile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"go.uber.org/zap"
)

// Assert checks a condition once constants and aliases are known, so that
// a profile can refuse platforms it was not written for.
type Assert struct {
	Condition bool `hcl:"condition"`
}

type AssertBlockHandler struct {
	BlockHandlerBase
}

func NewAssertBlockHandler() *AssertBlockHandler {
	return &AssertBlockHandler{}
}

func (h *AssertBlockHandler) Process(p *Profile, block *hcl.Block) hcl.Diagnostics {
	assertion := Assert{}
	diags := gohcl.DecodeBody(block.Body, p.evalCtx, &assertion)
	if diags.HasErrors() {
		return diags
	}

	name := block.Labels[0]
	if !assertion.Condition {
		p.Logger.Error("Assertion failed", zap.String("assert", name), zap.Any("location", block.DefRange))

		return hcl.Diagnostics{
			&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Assertion failed",
				Detail:   fmt.Sprintf("Assertion %s failed", name),
				Subject:  &block.DefRange,
			},
		}
	}

	p.Logger.Debug("Assertion passed", zap.String("assert", name))
	return nil
}
