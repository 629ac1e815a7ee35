package profile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/tsarna/sigext/pkg/sigext/profile/functions"
	"github.com/tsarna/sigext/pkg/signal"
	"github.com/zclconf/go-cty/cty"
	"go.uber.org/zap"
)

// Alias is an application name for a signal.
type Alias struct {
	Name        string
	Signal      signal.Signal
	Description string
	DefRange    hcl.Range
}

type aliasDefinition struct {
	Name        string
	Signal      hcl.Expression `hcl:"signal"`
	Description hcl.Expression `hcl:"description,optional"`
	DefRange    hcl.Range      `hcl:",def_range"`
}

func (d *aliasDefinition) expressions() []hcl.Expression {
	exprs := []hcl.Expression{d.Signal}
	if IsExpressionProvided(d.Description) {
		exprs = append(exprs, d.Description)
	}
	return exprs
}

type AliasBlockHandler struct {
	BlockHandlerBase

	defs map[string]*aliasDefinition
}

func NewAliasBlockHandler() *AliasBlockHandler {
	return &AliasBlockHandler{
		defs: make(map[string]*aliasDefinition),
	}
}

func (h *AliasBlockHandler) Preprocess(block *hcl.Block) hcl.Diagnostics {
	def := &aliasDefinition{}
	diags := gohcl.DecodeBody(block.Body, nil, def)
	if diags.HasErrors() {
		return diags
	}
	def.Name = block.Labels[0]

	if existing, exists := h.defs[def.Name]; exists {
		return diags.Append(&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Duplicate alias",
			Detail:   fmt.Sprintf("Alias %s is already defined at %v", def.Name, existing.DefRange),
			Subject:  &block.DefRange,
		})
	}

	h.defs[def.Name] = def
	return diags
}

// FinishPreprocessing resolves the aliases in dependency order, publishing
// each one to the alias variable before the next is evaluated.
func (h *AliasBlockHandler) FinishPreprocessing(p *Profile) hcl.Diagnostics {
	defs, diags := SortAliasesByDependencies(h.defs)
	if diags.HasErrors() {
		return diags
	}

	values := make(map[string]cty.Value, len(defs))
	owners := make(map[signal.Signal]string, len(defs))

	for _, def := range defs {
		alias, aliasDiags := p.resolveAlias(def)
		diags = diags.Extend(aliasDiags)
		if aliasDiags.HasErrors() {
			return diags
		}

		if owner, taken := owners[alias.Signal]; taken {
			diags = diags.Append(&hcl.Diagnostic{
				Severity: hcl.DiagWarning,
				Summary:  "Signal aliased twice",
				Detail:   fmt.Sprintf("Aliases %s and %s both name %s", owner, alias.Name, p.Mapper.Describe(alias.Signal)),
				Subject:  def.Signal.Range().Ptr(),
			})
		} else {
			owners[alias.Signal] = alias.Name
		}

		p.Aliases[alias.Name] = alias
		values[alias.Name] = cty.NumberIntVal(int64(alias.Signal.AsRaw()))
		p.Constants[VarAlias] = cty.ObjectVal(values)

		p.Logger.Debug("Alias resolved",
			zap.String("alias", alias.Name),
			zap.String("signal", p.Mapper.Describe(alias.Signal)),
			zap.Int32("raw", alias.Signal.AsRaw()))
	}

	return diags
}

// resolveAlias evaluates an alias. The signal may be given as a number,
// which must be valid on this platform, or as a signal name.
func (p *Profile) resolveAlias(def *aliasDefinition) (*Alias, hcl.Diagnostics) {
	value, diags := def.Signal.Value(p.evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}

	invalid := func(detail string) (*Alias, hcl.Diagnostics) {
		return nil, diags.Append(&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid signal",
			Detail:   fmt.Sprintf("Alias %s: %s", def.Name, detail),
			Subject:  def.Signal.Range().Ptr(),
		})
	}

	if value.IsNull() {
		return invalid("signal is null; is the real-time offset past SIGRTMAX?")
	}

	alias := &Alias{Name: def.Name, DefRange: def.DefRange}

	switch value.Type() {
	case cty.String:
		sig, ok := signal.ByName(value.AsString())
		if !ok {
			return invalid(fmt.Sprintf("no signal named %q on this platform", value.AsString()))
		}
		alias.Signal = sig
	case cty.Number:
		raw, err := functions.ToRaw(value)
		if err != nil {
			return invalid(err.Error())
		}
		sig, ok := p.Mapper.FromRaw(raw)
		if !ok {
			return invalid(fmt.Sprintf("%d is not a signal on this platform", raw))
		}
		alias.Signal = sig
	default:
		return invalid(fmt.Sprintf("signal must be a number or a name, got %s", value.Type().FriendlyName()))
	}

	if IsExpressionProvided(def.Description) {
		var descDiags hcl.Diagnostics
		alias.Description, descDiags = p.evalString(def.Description)
		diags = diags.Extend(descDiags)
		if descDiags.HasErrors() {
			return nil, diags
		}
	}

	return alias, diags
}
