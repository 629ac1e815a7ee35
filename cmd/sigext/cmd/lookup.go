//go:build (unix && !hurd) || baremetal

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tsarna/sigext/pkg/sigext/report"
	"go.uber.org/zap"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <number|name|alias>...",
	Short: "Classify signal numbers and names",
	Long: `Classify each argument. Numbers (decimal, 0x hex or 0 octal) are
checked against the named signals and the real-time window; anything else
is looked up as a profile alias or a signal name such as TERM or SIGTERM.
Flags must come before the values; put a leading negative number after "--".

Examples:
  sigext lookup 15 0 -3 40
  sigext lookup -o json -- -1 2
  sigext lookup SIGHUP usr1
  sigext -p app.hcl lookup reload`,
	Args: cobra.MinimumNArgs(1),
	RunE: withSession(runLookup),
}

func init() {
	rootCmd.AddCommand(lookupCmd)

	// Raw numbers may be negative; stop flag parsing at the first value.
	lookupCmd.Flags().SetInterspersed(false)
}

func runLookup(s *session, args []string) error {
	entries := make(report.Entries, 0, len(args))

	for _, arg := range args {
		if n, err := strconv.ParseInt(arg, 0, 32); err == nil {
			entries = append(entries, s.annotate(report.Lookup(s.mapper, int32(n))))
			continue
		}

		sig, ok := s.resolve(arg)
		if !ok {
			s.logger.Debug("Unknown signal name", zap.String("name", arg))
			return fmt.Errorf("no signal or alias named %q", arg)
		}

		e := report.FromSignal(s.mapper, sig)
		if s.profile != nil {
			if a, isAlias := s.profile.Aliases[arg]; isAlias {
				e.Alias = a.Name
				e.Description = a.Description
			}
		}
		entries = append(entries, s.annotate(e))
	}

	return s.print(entries)
}
