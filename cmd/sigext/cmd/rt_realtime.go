//go:build (linux || solaris) && !baremetal

package cmd

import (
	"github.com/tsarna/sigext/pkg/sigext/report"
	"go.uber.org/zap"
)

// realtimeEntries reports SIGRTMIN, SIGRTMAX and then every requested
// offset.
func realtimeEntries(s *session, offsets []int32) (report.Entries, error) {
	entries := report.Entries{
		report.FromSignal(s.mapper, s.mapper.RTMin()),
		report.FromSignal(s.mapper, s.mapper.RTMax()),
	}

	for _, n := range offsets {
		sig, ok := s.mapper.RT(n)
		if !ok {
			s.logger.Info("Offset outside the real-time window", zap.Int32("offset", n))
			offset := n
			entries = append(entries, report.Entry{Kind: report.KindNone, Offset: &offset})
			continue
		}
		entries = append(entries, report.FromSignal(s.mapper, sig))
	}

	return entries, nil
}
