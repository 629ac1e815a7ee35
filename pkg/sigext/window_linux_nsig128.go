//go:build linux && (mips || mipsle || mips64 || mips64le) && !baremetal

package sigext

// MIPS kernels have 128 signals.
const linuxSIGRTMAX = 127
