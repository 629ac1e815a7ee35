//go:build (darwin || dragonfly || netbsd || openbsd) && !baremetal

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
	default:
		return signal.Signal{}, false
	}
}
