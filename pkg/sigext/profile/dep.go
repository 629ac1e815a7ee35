package profile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/heimdalr/dag"
)

// reference is a variable used by an expression: its root name and, when
// present, the first attribute after it.
type reference struct {
	root string
	attr string
	rng  hcl.Range
}

func extractReferences(expr hcl.Expression) []reference {
	var refs []reference

	for _, traversal := range expr.Variables() {
		if len(traversal) == 0 {
			continue
		}

		ref := reference{root: traversal.RootName(), rng: traversal.SourceRange()}
		if len(traversal) > 1 {
			if step, ok := traversal[1].(hcl.TraverseAttr); ok {
				ref.attr = step.Name
			}
		}
		refs = append(refs, ref)
	}

	return refs
}

// SortAttributesByDependencies orders constants so that each comes after
// the constants it references. References to the env and platform variables
// are allowed; references to aliases and to unknown names are errors.
func SortAttributesByDependencies(attrs hcl.Attributes) ([]*hcl.Attribute, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	graph := dag.NewDAG()

	for _, attr := range attrs {
		err := graph.AddVertexByID(attr.Name, attr)
		if err != nil {
			diags = diags.Append(&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Failed to add constant to dependency graph",
				Detail:   fmt.Sprintf("Error adding constant %s: %s", attr.Name, err),
				Subject:  &attr.NameRange,
			})
		}
	}

	for name, attr := range attrs {
		for _, ref := range extractReferences(attr.Expr) {
			switch {
			case ref.root == VarEnv || ref.root == VarPlatform:
				continue
			case ref.root == VarAlias:
				diags = diags.Append(&hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid reference",
					Detail:   fmt.Sprintf("Constant %s references an alias; constants are evaluated before aliases", name),
					Subject:  ref.rng.Ptr(),
				})
			case attrs[ref.root] != nil:
				if err := graph.AddEdge(ref.root, name); err != nil {
					diags = diags.Append(&hcl.Diagnostic{
						Severity: hcl.DiagError,
						Summary:  "Circular dependency detected",
						Detail:   fmt.Sprintf("Cannot add dependency from %s to %s: %s", ref.root, name, err),
						Subject:  &attr.Range,
					})
				}
			default:
				diags = diags.Append(&hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Dependency not found",
					Detail:   fmt.Sprintf("Dependency %s of %s not found", ref.root, name),
					Subject:  ref.rng.Ptr(),
				})
			}
		}
	}

	if diags.HasErrors() {
		return nil, diags
	}

	visitor := &orderedVisitor[*hcl.Attribute]{}
	graph.OrderedWalk(visitor)

	return visitor.values, diags
}

// SortAliasesByDependencies orders alias definitions so that each comes
// after the aliases its signal expression references.
func SortAliasesByDependencies(defs map[string]*aliasDefinition) ([]*aliasDefinition, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	graph := dag.NewDAG()

	for name, def := range defs {
		if err := graph.AddVertexByID(name, def); err != nil {
			diags = diags.Append(&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Failed to add alias to dependency graph",
				Detail:   fmt.Sprintf("Error adding alias %s: %s", name, err),
				Subject:  &def.DefRange,
			})
		}
	}

	for name, def := range defs {
		for _, expr := range def.expressions() {
			for _, ref := range extractReferences(expr) {
				if ref.root != VarAlias {
					continue
				}

				if _, exists := defs[ref.attr]; !exists {
					diags = diags.Append(&hcl.Diagnostic{
						Severity: hcl.DiagError,
						Summary:  "Alias not found",
						Detail:   fmt.Sprintf("Alias %s references undefined alias %q", name, ref.attr),
						Subject:  ref.rng.Ptr(),
					})
					continue
				}

				if err := graph.AddEdge(ref.attr, name); err != nil {
					diags = diags.Append(&hcl.Diagnostic{
						Severity: hcl.DiagError,
						Summary:  "Circular dependency detected",
						Detail:   fmt.Sprintf("Cannot add dependency from alias %s to %s: %s", ref.attr, name, err),
						Subject:  ref.rng.Ptr(),
					})
				}
			}
		}
	}

	if diags.HasErrors() {
		return nil, diags
	}

	visitor := &orderedVisitor[*aliasDefinition]{}
	graph.OrderedWalk(visitor)

	return visitor.values, diags
}

type orderedVisitor[T any] struct {
	values []T
}

func (v *orderedVisitor[T]) Visit(vertex dag.Vertexer) {
	_, value := vertex.Vertex()
	v.values = append(v.values, value.(T))
}
