//go:build (unix && !hurd) || baremetal

// Package process exposes the signal identities used when managing child
// processes: the signal type and the checked conversions from raw numbers,
// such as the termination signal reported by wait(2).
package process

import (
	"github.com/tsarna/sigext/pkg/sigext"
	"github.com/tsarna/sigext/pkg/signal"
)

// Signal is a validated signal identity.
type Signal = signal.Signal

// SignalFromRaw converts a raw signal number, such as the one decoded from a
// wait status.
func SignalFromRaw(raw int32) (Signal, bool) {
	return sigext.FromRaw(raw)
}

// TermSignal decodes the signal that terminated a child from a wait status
// value. It reports false when the child was not killed by a signal.
func TermSignal(status int) (Signal, bool) {
	// WIFSIGNALED: low seven bits hold a signal number other than 0x7f.
	sig := int32(status & 0x7f)
	if sig == 0 || sig == 0x7f {
		return Signal{}, false
	}
	return sigext.FromRaw(sig)
}
