//go:build (darwin || freebsd || dragonfly || netbsd || openbsd) && !baremetal

package signal

import "golang.org/x/sys/unix"

// INFO is the keyboard status request signal.
var INFO = define("INFO", "INFO", int32(unix.SIGINFO))
