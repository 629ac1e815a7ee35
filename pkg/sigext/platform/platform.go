// Package platform classifies build targets into the families that share a
// signal numbering scheme or C library API surface.
//
// The categories of the target being compiled are available as the constant
// Current, which is generated per GOOS (see gen.go). Code that needs to
// exist only for some families is gated with build constraints that mirror
// these categories:
//
//   - LinuxLike, LinuxKernel: linux || android
//   - Solarish: solaris || illumos
//   - BSD: darwin || ios || freebsd || dragonfly || netbsd || openbsd
//
// Classify performs the same derivation for an arbitrary GOOS string, which
// is what the generator and the sigext CLI use.
package platform

import (
	"strings"
)

// Category is a set of platform families.
type Category uint16

const (
	FreeBSDLike Category = 1 << iota
	NetBSDLike
	Apple
	LinuxLike
	Solarish
	BSD
	LinuxKernel
)

var categoryNames = []struct {
	cat  Category
	name string
}{
	{FreeBSDLike, "freebsdlike"},
	{NetBSDLike, "netbsdlike"},
	{Apple, "apple"},
	{LinuxLike, "linux_like"},
	{Solarish, "solarish"},
	{BSD, "bsd"},
	{LinuxKernel, "linux_kernel"},
}

// All returns every known category in declaration order.
func All() []Category {
	all := make([]Category, len(categoryNames))
	for i, cn := range categoryNames {
		all[i] = cn.cat
	}
	return all
}

// Classify derives the categories of the given target operating system.
// Each category is a plain membership test, so a target can belong to
// several (darwin is both Apple and BSD). Unknown systems have no categories.
func Classify(goos string) Category {
	var c Category

	freebsdlike := goos == "freebsd" || goos == "dragonfly"
	if freebsdlike {
		c |= FreeBSDLike
	}

	netbsdlike := goos == "openbsd" || goos == "netbsd"
	if netbsdlike {
		c |= NetBSDLike
	}

	apple := goos == "darwin" || goos == "ios"
	if apple {
		c |= Apple
	}

	if goos == "linux" || goos == "android" {
		c |= LinuxLike
	}

	if goos == "solaris" || goos == "illumos" {
		c |= Solarish
	}

	if apple || freebsdlike || netbsdlike {
		c |= BSD
	}

	// Android and "regular" Linux share a kernel.
	if goos == "linux" || goos == "android" {
		c |= LinuxKernel
	}

	return c
}

// Has reports whether every category in other is present in c.
func (c Category) Has(other Category) bool {
	return c&other == other
}

// Any reports whether at least one category in other is present in c.
func (c Category) Any(other Category) bool {
	return c&other != 0
}

// Names returns the names of the categories in c.
func (c Category) Names() []string {
	names := make([]string, 0, len(categoryNames))
	for _, cn := range categoryNames {
		if c.Has(cn.cat) {
			names = append(names, cn.name)
		}
	}
	return names
}

func (c Category) String() string {
	if c == 0 {
		return "none"
	}
	return strings.Join(c.Names(), "|")
}

// Parse returns the category with the given name.
func Parse(name string) (Category, bool) {
	for _, cn := range categoryNames {
		if cn.name == name {
			return cn.cat, true
		}
	}
	return 0, false
}

// HasRealtime reports whether targets in c expose a real-time signal window.
func (c Category) HasRealtime() bool {
	return c.Any(LinuxLike | Solarish)
}
