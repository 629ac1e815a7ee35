//go:build cgo && (linux || solaris) && !baremetal

package sigext

/*
#include <signal.h>

static int sigext_rtmin(void) { return SIGRTMIN; }
static int sigext_rtmax(void) { return SIGRTMAX; }
*/
import "C"

// libcWindow asks the C library for its real-time window. glibc, musl and
// bionic compute SIGRTMIN at run time, so the answer is not cached here.
func libcWindow() (Window, bool) {
	return Window{
		Min: int32(C.sigext_rtmin()),
		Max: int32(C.sigext_rtmax()),
	}, true
}
