//go:build !baremetal

package sigext

import (
	"github.com/tsarna/sigext/pkg/signal"
	"golang.org/x/sys/unix"
)

func lookupFamily(raw int32) (signal.Signal, bool) {
	switch raw {
	case signal.EMT.AsRaw():
		return signal.EMT, true
	case int32(unix.SIGINFO):
		return signal.INFO, true
	case int32(unix.SIGTHR):
		return signal.THR, true
	case int32(unix.SIGLIBRT):
		return signal.LIBRT, true
	default:
		return signal.Signal{}, false
	}
}
