//go:build linux && !mips && !mipsle && !mips64 && !mips64le && !baremetal

package sigext

const linuxSIGRTMAX = 64
