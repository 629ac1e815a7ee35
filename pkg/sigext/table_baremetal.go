//go:build baremetal

package sigext

import "github.com/tsarna/sigext/pkg/signal"

// lookupNamed matches the minimal bare-metal table. Job control, USR1/USR2
// and the asynchronous notification signals are deliberately absent.
func lookupNamed(raw int32) (signal.Signal, bool) {
	switch raw {
	case signal.HUP.AsRaw():
		return signal.HUP, true
	case signal.INT.AsRaw():
		return signal.INT, true
	case signal.QUIT.AsRaw():
		return signal.QUIT, true
	case signal.ILL.AsRaw():
		return signal.ILL, true
	case signal.TRAP.AsRaw():
		return signal.TRAP, true
	case signal.ABORT.AsRaw():
		return signal.ABORT, true
	case signal.BUS.AsRaw():
		return signal.BUS, true
	case signal.FPE.AsRaw():
		return signal.FPE, true
	case signal.KILL.AsRaw():
		return signal.KILL, true
	case signal.SEGV.AsRaw():
		return signal.SEGV, true
	case signal.PIPE.AsRaw():
		return signal.PIPE, true
	case signal.ALARM.AsRaw():
		return signal.ALARM, true
	case signal.TERM.AsRaw():
		return signal.TERM, true
	case signal.SYS.AsRaw():
		return signal.SYS, true
	default:
		return signal.Signal{}, false
	}
}
