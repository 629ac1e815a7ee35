// Package signal defines Signal, a validated signal identity, together with
// the named signals of the build target.
//
// A Signal can only be obtained from the named variables of this package or
// through the checked conversions in package sigext. The zero Signal is not
// a valid signal.
package signal

import "github.com/tsarna/sigext/internal/sigtype"

// Signal is a signal number known to be valid on the build target.
type Signal = sigtype.Signal

// NonZero is a raw signal number that is not zero.
type NonZero = sigtype.NonZero

// NewNonZero returns v as a NonZero, or false if v is zero.
func NewNonZero(v int32) (NonZero, bool) {
	return sigtype.NewNonZero(v)
}

func define(name, cname string, raw int32) Signal {
	return sigtype.Define(name, cname, raw)
}

// Named returns the named signals of the build target ordered by number.
func Named() []Signal {
	return sigtype.Named()
}

// ByName finds a named signal by variant name ("ABORT") or C name ("ABRT",
// "SIGABRT"), ignoring case.
func ByName(name string) (Signal, bool) {
	return sigtype.ByName(name)
}
