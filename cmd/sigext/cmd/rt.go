//go:build (unix && !hurd) || baremetal

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var rtCmd = &cobra.Command{
	Use:   "rt [offset...]",
	Short: "Show the real-time signal window",
	Long: `Show SIGRTMIN and SIGRTMAX as reported by the C library and, for each
offset given, the signal SIGRTMIN+offset. Offsets past SIGRTMAX are
reported with kind "none".

Only available on targets with real-time signals (Linux, Android,
Solaris and illumos). Flags must come before the offsets; put a leading
negative offset after "--".

Examples:
  sigext rt
  sigext rt -o yaml 0 1 2
  sigext rt -- -1 0`,
	RunE: withSession(runRT),
}

func init() {
	rootCmd.AddCommand(rtCmd)

	// Offsets may be negative; stop flag parsing at the first one.
	rtCmd.Flags().SetInterspersed(false)
}

func runRT(s *session, args []string) error {
	offsets := make([]int32, 0, len(args))
	for _, arg := range args {
		n, err := strconv.ParseInt(arg, 0, 32)
		if err != nil {
			return fmt.Errorf("invalid offset %q: %w", arg, err)
		}
		offsets = append(offsets, int32(n))
	}

	entries, err := realtimeEntries(s, offsets)
	if err != nil {
		return err
	}

	for i, e := range entries {
		entries[i] = s.annotate(e)
	}
	return s.print(entries)
}
