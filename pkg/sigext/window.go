//go:build (unix && !hurd) || baremetal

package sigext

import (
	"fmt"

	"github.com/tsarna/sigext/pkg/signal"
)

// Window is the inclusive range [Min, Max] of real-time signal numbers that
// the C library leaves to applications.
type Window struct {
	Min int32
	Max int32
}

// Contains reports whether raw lies inside the window.
func (w Window) Contains(raw int32) bool {
	return raw >= w.Min && raw <= w.Max
}

// Len returns the number of signals in the window.
func (w Window) Len() int {
	if w.Max < w.Min {
		return 0
	}
	return int(w.Max) - int(w.Min) + 1
}

func (w Window) String() string {
	return fmt.Sprintf("[%d, %d]", w.Min, w.Max)
}

// validate checks a window before it is trusted without re-querying.
func (w Window) validate() error {
	if w.Min <= 0 {
		return fmt.Errorf("real-time window %s starts at a non-positive signal", w)
	}
	if w.Max < w.Min {
		return fmt.Errorf("real-time window %s is empty", w)
	}
	for _, sig := range signal.Named() {
		if w.Contains(sig.AsRaw()) {
			return fmt.Errorf("real-time window %s overlaps %s", w, sig)
		}
	}
	return nil
}
