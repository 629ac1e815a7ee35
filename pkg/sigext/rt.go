//go:build (linux || solaris) && !baremetal

package sigext

import (
	"github.com/tsarna/sigext/internal/sigtype"
	"github.com/tsarna/sigext/pkg/signal"
)

type rtExt interface {
	RTMin() signal.Signal
	RTMax() signal.Signal
	RT(n int32) (signal.Signal, bool)
}

// RTMin returns SIGRTMIN as reported by the C library.
func RTMin() signal.Signal {
	return defaultMapper.RTMin()
}

// RTMax returns SIGRTMAX as reported by the C library.
func RTMax() signal.Signal {
	return defaultMapper.RTMax()
}

// RT returns SIGRTMIN+n, or false if that is past SIGRTMAX.
func RT(n int32) (signal.Signal, bool) {
	return defaultMapper.RT(n)
}

// RTMin returns the libc SIGRTMIN. It can be above the kernel's SIGRTMIN,
// since the C library may keep the first real-time signals for itself.
func (m *Mapper) RTMin() signal.Signal {
	w := m.realtime()
	return sigtype.FromRawUnchecked(w.Min)
}

// RTMax returns the libc SIGRTMAX.
func (m *Mapper) RTMax() signal.Signal {
	w := m.realtime()
	return sigtype.FromRawUnchecked(w.Max)
}

// RT returns SIGRTMIN+n. Results outside [SIGRTMIN, SIGRTMAX] are refused,
// so that numbers the C library keeps for internal use never escape. The
// addition wraps on overflow and any wrapped result falls outside the window.
func (m *Mapper) RT(n int32) (signal.Signal, bool) {
	w := m.realtime()
	sig := w.Min + n
	if sig >= w.Min && sig <= w.Max {
		m.record(OutcomeRealtime)
		return sigtype.FromRawUnchecked(sig), true
	}

	m.record(OutcomeNone)
	return signal.Signal{}, false
}

func (m *Mapper) realtime() Window {
	w, _ := m.window()
	return w
}
