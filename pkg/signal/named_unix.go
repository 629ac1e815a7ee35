//go:build unix && !hurd && !baremetal

package signal

import "golang.org/x/sys/unix"

// Signals present on every unix target.
var (
	HUP     = define("HUP", "HUP", int32(unix.SIGHUP))
	INT     = define("INT", "INT", int32(unix.SIGINT))
	QUIT    = define("QUIT", "QUIT", int32(unix.SIGQUIT))
	ILL     = define("ILL", "ILL", int32(unix.SIGILL))
	TRAP    = define("TRAP", "TRAP", int32(unix.SIGTRAP))
	ABORT   = define("ABORT", "ABRT", int32(unix.SIGABRT))
	BUS     = define("BUS", "BUS", int32(unix.SIGBUS))
	FPE     = define("FPE", "FPE", int32(unix.SIGFPE))
	KILL    = define("KILL", "KILL", int32(unix.SIGKILL))
	USR1    = define("USR1", "USR1", int32(unix.SIGUSR1))
	SEGV    = define("SEGV", "SEGV", int32(unix.SIGSEGV))
	USR2    = define("USR2", "USR2", int32(unix.SIGUSR2))
	PIPE    = define("PIPE", "PIPE", int32(unix.SIGPIPE))
	ALARM   = define("ALARM", "ALRM", int32(unix.SIGALRM))
	TERM    = define("TERM", "TERM", int32(unix.SIGTERM))
	CHILD   = define("CHILD", "CHLD", int32(unix.SIGCHLD))
	CONT    = define("CONT", "CONT", int32(unix.SIGCONT))
	STOP    = define("STOP", "STOP", int32(unix.SIGSTOP))
	TSTP    = define("TSTP", "TSTP", int32(unix.SIGTSTP))
	TTIN    = define("TTIN", "TTIN", int32(unix.SIGTTIN))
	TTOU    = define("TTOU", "TTOU", int32(unix.SIGTTOU))
	URG     = define("URG", "URG", int32(unix.SIGURG))
	XCPU    = define("XCPU", "XCPU", int32(unix.SIGXCPU))
	XFSZ    = define("XFSZ", "XFSZ", int32(unix.SIGXFSZ))
	VTALARM = define("VTALARM", "VTALRM", int32(unix.SIGVTALRM))
	PROF    = define("PROF", "PROF", int32(unix.SIGPROF))
	WINCH   = define("WINCH", "WINCH", int32(unix.SIGWINCH))
	IO      = define("IO", "IO", int32(unix.SIGIO))
	SYS     = define("SYS", "SYS", int32(unix.SIGSYS))
)
