//go:build (linux || solaris || aix) && !baremetal

package signal

import "golang.org/x/sys/unix"

// POWER is the power-failure signal.
var POWER = define("POWER", "PWR", int32(unix.SIGPWR))
