// Package sigtype defines the Signal and NonZero types re-exported by
// package signal. Signal has no exported fields and its only unchecked
// constructor lives here, so code outside this module can obtain a Signal
// only through the named variables and checked conversions.
package sigtype

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// Signal is a signal number known to be valid on the build target.
type Signal struct {
	raw int32
}

// NonZero is a raw signal number that is not zero.
type NonZero struct {
	v int32
}

// NewNonZero returns v as a NonZero, or false if v is zero.
func NewNonZero(v int32) (NonZero, bool) {
	if v == 0 {
		return NonZero{}, false
	}
	return NonZero{v: v}, true
}

// Get returns the raw value.
func (n NonZero) Get() int32 {
	return n.v
}

// FromRawUnchecked builds a Signal without validation. Callers must have
// established that raw is a named signal of the target or lies inside its
// real-time window.
func FromRawUnchecked(raw int32) Signal {
	return Signal{raw: raw}
}

// AsRaw returns the raw signal number.
func (s Signal) AsRaw() int32 {
	return s.raw
}

// AsRawNonZero returns the raw signal number as a NonZero. It panics on the
// zero Signal, which no checked conversion ever returns.
func (s Signal) AsRawNonZero() NonZero {
	if s.raw == 0 {
		panic("signal: AsRawNonZero called on the zero Signal")
	}
	return NonZero{v: s.raw}
}

// IsZero reports whether s is the zero Signal.
func (s Signal) IsZero() bool {
	return s.raw == 0
}

// Name returns the variant name of a named signal ("ABORT", "CHILD", ...),
// or "" for signals without a name, such as real-time signals.
func (s Signal) Name() string {
	if e, ok := lookup(s.raw); ok {
		return e.name
	}
	return ""
}

// String returns the conventional C name ("SIGABRT") of a named signal and
// "signal N" otherwise.
func (s Signal) String() string {
	if e, ok := lookup(s.raw); ok {
		return "SIG" + e.cname
	}
	return "signal " + strconv.Itoa(int(s.raw))
}

type entry struct {
	name  string
	cname string
	sig   Signal
}

var named []entry

// Define registers a named variant. cname is the C spelling without the SIG
// prefix and may equal name. It is only called from package-level variable
// initialisers.
func Define(name, cname string, raw int32) Signal {
	sig := Signal{raw: raw}
	named = append(named, entry{name: name, cname: cname, sig: sig})
	return sig
}

func lookup(raw int32) (entry, bool) {
	for _, e := range named {
		if e.sig.raw == raw {
			return e, true
		}
	}
	return entry{}, false
}

// Named returns the registered signals ordered by number.
func Named() []Signal {
	sorted := slices.Clone(named)
	slices.SortFunc(sorted, func(a, b entry) int {
		return cmp.Compare(a.sig.raw, b.sig.raw)
	})

	sigs := make([]Signal, len(sorted))
	for i, e := range sorted {
		sigs[i] = e.sig
	}
	return sigs
}

// ByName finds a registered signal by variant name ("ABORT") or C name
// ("ABRT", "SIGABRT"), ignoring case.
func ByName(name string) (Signal, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	bare := strings.TrimPrefix(name, "SIG")

	for _, e := range named {
		if e.name == name || e.cname == name || e.name == bare || e.cname == bare {
			return e.sig, true
		}
	}
	return Signal{}, false
}
