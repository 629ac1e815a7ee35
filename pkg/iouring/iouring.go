//go:build (linux || android) && !baremetal

// Package iouring exposes the signal identities used by io_uring batching,
// where completion of a wait can be interrupted by a signal from a mask.
package iouring

import (
	"github.com/tsarna/sigext/pkg/sigext"
	"github.com/tsarna/sigext/pkg/signal"
)

// Signal is a validated signal identity.
type Signal = signal.Signal

// SignalFromRaw converts a raw signal number.
func SignalFromRaw(raw int32) (Signal, bool) {
	return sigext.FromRaw(raw)
}

// RealtimeSignal returns SIGRTMIN+n, or false if it is past SIGRTMAX.
func RealtimeSignal(n int32) (Signal, bool) {
	return sigext.RT(n)
}

// MaskBits returns the bits of a kernel sigset_t word for sigs, as passed to
// io_uring_enter(2). Signals past the first 64 are ignored.
func MaskBits(sigs ...Signal) uint64 {
	var mask uint64
	for _, s := range sigs {
		raw := s.AsRaw()
		if raw < 1 || raw > 64 {
			continue
		}
		mask |= 1 << uint(raw-1)
	}
	return mask
}
