//go:build !cgo && !baremetal

package sigext

// glibc keeps kernel signals 32 and 33 for its thread implementation and
// advertises SIGRTMIN as 34.
const glibcSIGRTMIN = 34

// Without cgo no C library is loaded and the Go runtime is the only owner of
// signal handlers. The window reported is the one glibc advertises, so that
// numbers agree with cgo builds and with the rest of the system.
func libcWindow() (Window, bool) {
	return Window{Min: glibcSIGRTMIN, Max: linuxSIGRTMAX}, true
}
