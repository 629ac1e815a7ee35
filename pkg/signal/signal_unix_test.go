//go:build unix && !hurd && !baremetal

package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestCommonVariants(t *testing.T) {
	assert.Equal(t, int32(unix.SIGTERM), TERM.AsRaw())
	assert.Equal(t, "SIGTERM", TERM.String())
	assert.Equal(t, "ABORT", ABORT.Name())
	assert.Equal(t, "SIGABRT", ABORT.String())
	assert.Equal(t, "SIGCHLD", CHILD.String())
}

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		want Signal
	}{
		{"TERM", TERM},
		{"SIGTERM", TERM},
		{"sigterm", TERM},
		{" hup ", HUP},
		{"ABRT", ABORT},
		{"ABORT", ABORT},
		{"SIGALRM", ALARM},
		{"VTALARM", VTALARM},
		{"SIGVTALRM", VTALARM},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ByName(tt.name)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := ByName("SIGBOGUS")
	assert.False(t, ok)
	_, ok = ByName("")
	assert.False(t, ok)
}
