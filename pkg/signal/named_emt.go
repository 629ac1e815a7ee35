//go:build ((linux && (mips || mipsle || mips64 || mips64le || sparc64)) || darwin || freebsd || dragonfly || netbsd || openbsd || solaris || aix) && !baremetal

package signal

import "golang.org/x/sys/unix"

// EMT is the emulator trap signal.
var EMT = define("EMT", "EMT", int32(unix.SIGEMT))
