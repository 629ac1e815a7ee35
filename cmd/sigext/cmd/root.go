//go:build (unix && !hurd) || baremetal

package cmd

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	debug        bool
	logLevel     string
	logFile      string
	profilePaths []string
	outputFormat string
	jqQuery      string
	cacheWindow  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sigext",
	Short: "Inspect signal numbers of the build target",
	Long: `sigext reports how raw signal numbers map to signals on the platform
it was built for: the named signals of the C library, the real-time
window between SIGRTMIN and SIGRTMAX, and the platform categories that
decide which of these exist.

Signal profiles (HCL files) can give application names to signals and
are validated against the running platform.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()

	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	flags.BoolVarP(&debug, "debug", "d", false, "debug output")
	flags.StringVarP(&logLevel, "log-level", "l", "warn", "log level (debug, info, warn, error)")
	flags.StringVar(&logFile, "log-file", "", "also write logs to this file, rotated by size")
	flags.StringArrayVarP(&profilePaths, "profile", "p", nil, "signal profile file or directory (repeatable)")
	flags.StringVarP(&outputFormat, "output", "o", "table", "output format (table, json, yaml)")
	flags.StringVar(&jqQuery, "jq", "", "jq filter applied to the output document")
	flags.BoolVar(&cacheWindow, "cache-window", false, "query the real-time window once instead of on every lookup")
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}

// GetDebug returns the debug flag value
func GetDebug() bool {
	return debug
}
