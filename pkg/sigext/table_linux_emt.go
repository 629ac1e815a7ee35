//go:build linux && (mips || mipsle || mips64 || mips64le || sparc64) && !baremetal

package sigext

import "github.com/tsarna/sigext/pkg/signal"

// MIPS and SPARC kernels number SIGEMT where other architectures have
// SIGSTKFLT, so EMT is matched only here.
func lookupArch(raw int32) (signal.Signal, bool) {
	if raw == signal.EMT.AsRaw() {
		return signal.EMT, true
	}
	return signal.Signal{}, false
}
