//go:build (linux || solaris) && !baremetal

package process

import "github.com/tsarna/sigext/pkg/sigext"

// RealtimeSignal returns SIGRTMIN+n for use as a termination or
// notification signal, or false if the C library has no such signal.
func RealtimeSignal(n int32) (Signal, bool) {
	return sigext.RT(n)
}
