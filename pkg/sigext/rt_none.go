//go:build baremetal || (unix && !hurd && !linux && !solaris)

package sigext

type rtExt interface{}

func libcWindow() (Window, bool) {
	return Window{}, false
}
