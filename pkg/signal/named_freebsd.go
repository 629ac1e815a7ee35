//go:build !baremetal

package signal

import "golang.org/x/sys/unix"

// Signals reserved by the FreeBSD thread and real-time libraries.
var (
	THR   = define("THR", "THR", int32(unix.SIGTHR))
	LIBRT = define("LIBRT", "LIBRT", int32(unix.SIGLIBRT))
)
