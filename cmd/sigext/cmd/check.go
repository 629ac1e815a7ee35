//go:build (unix && !hurd) || baremetal

package cmd

import (
	"errors"
	"slices"

	"github.com/spf13/cobra"
	"github.com/tsarna/sigext/pkg/sigext/report"
	"go.uber.org/zap"
)

var checkCmd = &cobra.Command{
	Use:   "check [profile...]",
	Short: "Validate signal profiles against this platform",
	Long: `Load the given profiles, together with any passed via --profile, and
print the aliases and constants they define. Every alias must name a signal
that exists on this platform and every assert block must hold.

Examples:
  sigext check app.hcl
  sigext check ./profiles/ -o yaml`,
	RunE: withSession(runCheck),
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(s *session, args []string) error {
	if len(args) > 0 {
		if err := s.loadProfile(append(slices.Clone(profilePaths), args...)); err != nil {
			return err
		}
	}

	if s.profile == nil {
		return errors.New("no profile given")
	}

	summary, err := report.Profile(s.profile)
	if err != nil {
		return err
	}

	s.logger.Info("Profile is valid",
		zap.Int("aliases", len(summary.Aliases)),
		zap.Int("constants", len(summary.Constants)),
	)

	return s.print(summary)
}
