// Package profile loads signal profiles: HCL files that give application
// names to signals, usually offsets into the real-time window, and check
// assumptions about the platform they run on.
//
//	const {
//	  base = 2
//	}
//
//	alias "reload" {
//	  signal      = "HUP"
//	  description = "re-read configuration"
//	}
//
//	alias "flush" {
//	  signal = sigrt(base)
//	}
//
//	assert "distinct" {
//	  condition = alias.flush != alias.reload
//	}
package profile

import (
	"fmt"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/tsarna/go2cty2go"
	"github.com/tsarna/sigext/pkg/sigext"
	"github.com/tsarna/sigext/pkg/sigext/profile/functions"
	"github.com/tsarna/sigext/pkg/signal"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"go.uber.org/zap"
)

// Names of the variables every profile sees. Constants cannot use them.
const (
	VarEnv      = "env"
	VarPlatform = "platform"
	VarAlias    = "alias"
)

type Builder struct {
	logger  *zap.Logger
	mapper  *sigext.Mapper
	sources []any
}

type Profile struct {
	Logger    *zap.Logger
	Mapper    *sigext.Mapper
	Functions map[string]function.Function
	Constants map[string]cty.Value
	Aliases   map[string]*Alias
	evalCtx   *hcl.EvalContext
}

func New() *Builder {
	return &Builder{
		sources: make([]any, 0),
	}
}

func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	b.logger = logger
	return b
}

// WithMapper sets the mapper aliases are validated with. Defaults to
// sigext.Default().
func (b *Builder) WithMapper(m *sigext.Mapper) *Builder {
	b.mapper = m
	return b
}

// WithSources adds profile sources: file or directory paths, []string of
// paths, []byte contents or an embed.FS.
func (b *Builder) WithSources(sources ...any) *Builder {
	b.sources = append(b.sources, sources...)
	return b
}

func (b *Builder) Build() (*Profile, hcl.Diagnostics) {
	p := &Profile{
		Logger:    b.logger,
		Mapper:    b.mapper,
		Constants: make(map[string]cty.Value),
		Aliases:   make(map[string]*Alias),
	}
	if p.Logger == nil {
		p.Logger = zap.NewNop()
	}
	if p.Mapper == nil {
		p.Mapper = sigext.Default()
	}

	bodies, diags := ParseFiles(b.sources...)
	if diags.HasErrors() {
		return nil, diags
	}

	userFuncs, remainingBodies, addDiags := functions.ExtractUserFunctions(bodies, func() *hcl.EvalContext {
		return p.evalCtx
	})
	diags = diags.Extend(addDiags)
	if diags.HasErrors() {
		return nil, diags
	}

	p.Functions, addDiags = p.GetFunctions(userFuncs)
	diags = diags.Extend(addDiags)
	if diags.HasErrors() {
		return nil, diags
	}

	blocks, addDiags := GetBlocks(remainingBodies)
	diags = diags.Extend(addDiags)
	if diags.HasErrors() {
		return nil, diags
	}

	p.Constants[VarEnv] = GetEnvObject()
	p.Constants[VarPlatform] = GetPlatformObject()
	p.Constants[VarAlias] = cty.EmptyObjectVal

	p.evalCtx = &hcl.EvalContext{
		Functions: p.Functions,
		Variables: p.Constants,
	}

	// Preprocess blocks

	blockHandlers := GetBlockHandlers()

	for _, block := range blocks {
		if handler, ok := blockHandlers[block.Type]; ok {
			diags = diags.Extend(handler.Preprocess(block))
		}
	}
	if diags.HasErrors() {
		return nil, diags
	}

	for _, name := range blockHandlerOrder {
		diags = diags.Extend(blockHandlers[name].FinishPreprocessing(p))
		if diags.HasErrors() {
			return nil, diags
		}
	}

	// Process blocks

	for _, name := range blockHandlerOrder {
		for _, block := range blocks {
			if block.Type == name {
				diags = diags.Extend(blockHandlers[name].Process(p, block))
			}
		}
	}
	if diags.HasErrors() {
		return nil, diags
	}

	p.Logger.Info("Profile built successfully", zap.Int("aliases", len(p.Aliases)))

	return p, diags
}

// GetFunctions combines the built-in functions with the user's. User
// functions cannot replace built-in ones.
func (p *Profile) GetFunctions(userFuncs map[string]function.Function) (map[string]function.Function, hcl.Diagnostics) {
	funcs := functions.GetStandardLibraryFunctions()
	diags := hcl.Diagnostics{}

	for name, fn := range functions.GetLogFunctions(p.Logger) {
		funcs[name] = fn
	}
	for name, fn := range functions.GetSignalFunctions(p.Mapper) {
		funcs[name] = fn
	}

	funcs["error"] = functions.ErrorFunc
	funcs["typeof"] = functions.TypeOfFunc

	for name, fn := range userFuncs {
		if _, exists := funcs[name]; exists {
			diags = diags.Append(&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate function",
				Detail:   fmt.Sprintf("Function %s is reserved and can't be overridden", name),
			})
			continue
		}
		funcs[name] = fn
	}

	return funcs, diags
}

// AliasNames returns the alias names in sorted order.
func (p *Profile) AliasNames() []string {
	names := make([]string, 0, len(p.Aliases))
	for name := range p.Aliases {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Resolve finds a signal by alias or, failing that, by signal name.
func (p *Profile) Resolve(name string) (signal.Signal, bool) {
	if a, ok := p.Aliases[name]; ok {
		return a.Signal, true
	}
	return signal.ByName(name)
}

// Eval evaluates a single expression in the profile's context.
func (p *Profile) Eval(expr string) (cty.Value, hcl.Diagnostics) {
	parsed, diags := hclsyntax.ParseExpression([]byte(expr), "<eval>", hcl.InitialPos)
	if diags.HasErrors() {
		return cty.NilVal, diags
	}

	v, evalDiags := parsed.Value(p.evalCtx)
	return v, diags.Extend(evalDiags)
}

// ConstantsAsGo returns the user constants converted to plain Go values.
func (p *Profile) ConstantsAsGo() (map[string]any, error) {
	result := make(map[string]any, len(p.Constants))
	for name, v := range p.Constants {
		if isReservedName(name) {
			continue
		}
		converted, err := go2cty2go.CtyToAny(v)
		if err != nil {
			return nil, fmt.Errorf("failed to convert constant %s: %w", name, err)
		}
		result[name] = converted
	}
	return result, nil
}

func isReservedName(name string) bool {
	return name == VarEnv || name == VarPlatform || name == VarAlias
}
