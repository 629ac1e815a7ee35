//go:build (unix && !hurd) || baremetal

package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
	"github.com/tsarna/sigext/pkg/sigext/report"
)

var platformGOOS string

var platformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Show the platform categories of a target",
	Long: `Show the platform categories of the build target, or of any GOOS
given with --goos, and whether it has a real-time signal window.

Examples:
  sigext platform
  sigext platform --goos illumos -o json`,
	Args: cobra.NoArgs,
	RunE: withSession(runPlatform),
}

func init() {
	rootCmd.AddCommand(platformCmd)

	platformCmd.Flags().StringVar(&platformGOOS, "goos", runtime.GOOS, "target operating system to classify")
}

func runPlatform(s *session, args []string) error {
	return s.print(report.Platform(s.mapper, platformGOOS))
}
