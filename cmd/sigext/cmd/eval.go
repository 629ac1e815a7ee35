//go:build (unix && !hurd) || baremetal

package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tsarna/go2cty2go"
	"github.com/tsarna/sigext/pkg/sigext/profile"
	"github.com/tsarna/sigext/pkg/sigext/report"
)

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate an HCL expression in a profile's context",
	Long: `Evaluate an expression with the functions, constants and aliases of the
loaded profiles. Without --profile the expression sees only the built-in
functions and the env and platform objects.

Examples:
  sigext eval 'signal("TERM")'
  sigext eval 'platform.goos'
  sigext -p app.hcl eval 'alias.reload'`,
	Args: cobra.MinimumNArgs(1),
	RunE: withSession(runEval),
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEval(s *session, args []string) error {
	if s.profile == nil {
		p, diags := profile.New().
			WithLogger(s.logger.Named("profile")).
			WithMapper(s.mapper).
			Build()
		if diags.HasErrors() {
			return diags
		}
		s.profile = p
	}

	expr := strings.Join(args, " ")
	v, diags := s.profile.Eval(expr)
	if diags.HasErrors() {
		return diags
	}
	if !v.IsWhollyKnown() {
		return errors.New("expression has no known value")
	}

	result, err := go2cty2go.CtyToAny(v)
	if err != nil {
		return err
	}

	return s.print(report.Value{Expression: expr, Result: result})
}
