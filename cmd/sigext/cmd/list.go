//go:build (unix && !hurd) || baremetal

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tsarna/sigext/pkg/sigext/report"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the named signals and the real-time window",
	Args:  cobra.NoArgs,
	RunE:  withSession(runList),
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(s *session, args []string) error {
	listing := report.List(s.mapper)
	for i, e := range listing.Named {
		listing.Named[i] = s.annotate(e)
	}
	return s.print(listing)
}
