// Package report turns signal lookups into documents and prints them as a
// table, JSON or YAML, optionally through a jq filter.
package report

import (
	"strconv"

	"github.com/tsarna/sigext/pkg/sigext"
	"github.com/tsarna/sigext/pkg/signal"
)

// Kinds of entries.
const (
	KindNamed    = "named"
	KindRealtime = "realtime"
	KindNone     = "none"
)

// Entry describes one raw signal number.
type Entry struct {
	Raw         int32  `json:"raw" yaml:"raw"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Kind        string `json:"kind" yaml:"kind"`
	Offset      *int32 `json:"offset,omitempty" yaml:"offset,omitempty"`
	Alias       string `json:"alias,omitempty" yaml:"alias,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Lookup classifies raw through m.
func Lookup(m *sigext.Mapper, raw int32) Entry {
	sig, ok := m.FromRaw(raw)
	if !ok {
		return Entry{Raw: raw, Kind: KindNone}
	}
	return FromSignal(m, sig)
}

// FromSignal describes a signal already known to be valid.
func FromSignal(m *sigext.Mapper, sig signal.Signal) Entry {
	e := Entry{
		Raw:  sig.AsRaw(),
		Name: m.Describe(sig),
		Kind: KindNamed,
	}

	if sig.Name() == "" {
		e.Kind = KindRealtime
		if w, ok := m.RealtimeWindow(); ok {
			offset := sig.AsRaw() - w.Min
			e.Offset = &offset
		}
	}

	return e
}

// Entries is a list of entries printed one per row.
type Entries []Entry

func (e Entries) Headers() []string {
	return []string{"RAW", "NAME", "KIND", "ALIAS", "DESCRIPTION"}
}

func (e Entries) Rows() [][]string {
	rows := make([][]string, len(e))
	for i, entry := range e {
		name := entry.Name
		if name == "" {
			name = "-"
		}
		rows[i] = []string{
			strconv.Itoa(int(entry.Raw)),
			name,
			entry.Kind,
			entry.Alias,
			entry.Description,
		}
	}
	return rows
}
