//go:build !baremetal

package sigext

import (
	"github.com/tsarna/sigext/pkg/signal"
	"golang.org/x/sys/unix"
)

func lookupFamily(raw int32) (signal.Signal, bool) {
	switch raw {
	case int32(unix.SIGPWR):
		return signal.POWER, true
	case signal.EMT.AsRaw():
		return signal.EMT, true
	default:
		return signal.Signal{}, false
	}
}
