//go:build linux && !mips && !mipsle && !mips64 && !mips64le && !sparc64 && !baremetal

package signal

import "golang.org/x/sys/unix"

// STKFLT is the coprocessor stack fault signal. Linux on MIPS and SPARC
// numbers EMT where other architectures have STKFLT.
var STKFLT = define("STKFLT", "STKFLT", int32(unix.SIGSTKFLT))
