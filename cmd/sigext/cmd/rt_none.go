//go:build ((unix && !hurd) || baremetal) && !((linux || solaris) && !baremetal)

package cmd

import (
	"fmt"
	"runtime"

	"github.com/tsarna/sigext/pkg/sigext/report"
)

func realtimeEntries(s *session, offsets []int32) (report.Entries, error) {
	return nil, fmt.Errorf("%s has no real-time signals", runtime.GOOS)
}
