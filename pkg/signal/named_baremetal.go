//go:build baremetal

package signal

// Bare-metal C libraries only carry the ISO C signals and the few POSIX
// signals needed to abort a program. Job control, user-defined and
// asynchronous notification signals do not exist there. Numbers follow
// newlib.
var (
	HUP   = define("HUP", "HUP", 1)
	INT   = define("INT", "INT", 2)
	QUIT  = define("QUIT", "QUIT", 3)
	ILL   = define("ILL", "ILL", 4)
	TRAP  = define("TRAP", "TRAP", 5)
	ABORT = define("ABORT", "ABRT", 6)
	FPE   = define("FPE", "FPE", 8)
	KILL  = define("KILL", "KILL", 9)
	BUS   = define("BUS", "BUS", 10)
	SEGV  = define("SEGV", "SEGV", 11)
	SYS   = define("SYS", "SYS", 12)
	PIPE  = define("PIPE", "PIPE", 13)
	ALARM = define("ALARM", "ALRM", 14)
	TERM  = define("TERM", "TERM", 15)
)
