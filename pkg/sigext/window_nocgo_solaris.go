//go:build !cgo && !baremetal

package sigext

import "golang.org/x/sys/unix"

// sysconf(3C) names from <unistd.h>.
const (
	scSigRTMax = 40
	scSigRTMin = 41
)

// The window of current illumos and Solaris releases, used when sysconf
// does not answer sensibly.
var solarisWindow = Window{Min: 42, Max: 49}

// libcWindow asks libc through sysconf, which is what the SIGRTMIN and
// SIGRTMAX macros expand to. Go links libc on these systems even without cgo.
func libcWindow() (Window, bool) {
	lo, err := unix.Sysconf(scSigRTMin)
	if err != nil {
		return solarisWindow, true
	}
	hi, err := unix.Sysconf(scSigRTMax)
	if err != nil {
		return solarisWindow, true
	}

	w := Window{Min: int32(lo), Max: int32(hi)}
	if w.Min <= int32(unix.SIGINFO) || w.Len() < 8 {
		return solarisWindow, true
	}
	return w, true
}
