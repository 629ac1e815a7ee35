//go:build unix && !hurd && !baremetal

package sigext

import (
	"github.com/tsarna/sigext/pkg/signal"
	"golang.org/x/sys/unix"
)

// lookupNamed matches raw against the named signals of the target. The
// signals below exist on every unix; lookupFamily covers the rest.
func lookupNamed(raw int32) (signal.Signal, bool) {
	switch raw {
	case int32(unix.SIGHUP):
		return signal.HUP, true
	case int32(unix.SIGINT):
		return signal.INT, true
	case int32(unix.SIGQUIT):
		return signal.QUIT, true
	case int32(unix.SIGILL):
		return signal.ILL, true
	case int32(unix.SIGTRAP):
		return signal.TRAP, true
	case int32(unix.SIGABRT):
		return signal.ABORT, true
	case int32(unix.SIGBUS):
		return signal.BUS, true
	case int32(unix.SIGFPE):
		return signal.FPE, true
	case int32(unix.SIGKILL):
		return signal.KILL, true
	case int32(unix.SIGUSR1):
		return signal.USR1, true
	case int32(unix.SIGSEGV):
		return signal.SEGV, true
	case int32(unix.SIGUSR2):
		return signal.USR2, true
	case int32(unix.SIGPIPE):
		return signal.PIPE, true
	case int32(unix.SIGALRM):
		return signal.ALARM, true
	case int32(unix.SIGTERM):
		return signal.TERM, true
	case int32(unix.SIGCHLD):
		return signal.CHILD, true
	case int32(unix.SIGCONT):
		return signal.CONT, true
	case int32(unix.SIGSTOP):
		return signal.STOP, true
	case int32(unix.SIGTSTP):
		return signal.TSTP, true
	case int32(unix.SIGTTIN):
		return signal.TTIN, true
	case int32(unix.SIGTTOU):
		return signal.TTOU, true
	case int32(unix.SIGURG):
		return signal.URG, true
	case int32(unix.SIGXCPU):
		return signal.XCPU, true
	case int32(unix.SIGXFSZ):
		return signal.XFSZ, true
	case int32(unix.SIGVTALRM):
		return signal.VTALARM, true
	case int32(unix.SIGPROF):
		return signal.PROF, true
	case int32(unix.SIGWINCH):
		return signal.WINCH, true
	case int32(unix.SIGIO):
		return signal.IO, true
	case int32(unix.SIGSYS):
		return signal.SYS, true
	default:
		return lookupFamily(raw)
	}
}
