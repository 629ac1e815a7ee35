//go:build linux && !mips && !mipsle && !mips64 && !mips64le && !sparc64 && !baremetal

package sigext

import (
	"github.com/tsarna/sigext/pkg/signal"
	"golang.org/x/sys/unix"
)

func lookupArch(raw int32) (signal.Signal, bool) {
	if raw == int32(unix.SIGSTKFLT) {
		return signal.STKFLT, true
	}
	return signal.Signal{}, false
}
