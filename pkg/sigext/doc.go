// Package sigext converts raw signal numbers into validated signal.Signal
// values and reports the real-time signal window of the C library.
//
// Raw numbers are matched against a fixed table of named signals chosen at
// compile time for the target family, then against the real-time window,
// which is queried from the C library on every call. The named table always
// wins. Anything else is "no such signal", reported as a false second
// result rather than an error.
//
// The named-table conversions exist on every unix target and on baremetal
// builds. RTMin, RTMax and RT exist only where the C library has a real-time
// window: linux, android, solaris and illumos.
package sigext
