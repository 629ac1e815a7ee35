//go:build unix && !hurd && !baremetal

package report

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsarna/sigext/pkg/sigext"
	"github.com/tsarna/sigext/pkg/sigext/profile"
	"github.com/tsarna/sigext/pkg/signal"
	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"table", FormatTable},
		{"JSON", FormatJSON},
		{" yaml ", FormatYAML},
		{"yml", FormatYAML},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestLookup(t *testing.T) {
	m := sigext.Default()

	e := Lookup(m, signal.TERM.AsRaw())
	assert.Equal(t, KindNamed, e.Kind)
	assert.Equal(t, "SIGTERM", e.Name)
	assert.Nil(t, e.Offset)

	e = Lookup(m, 0)
	assert.Equal(t, KindNone, e.Kind)
	assert.Empty(t, e.Name)
}

func TestPrintJSON(t *testing.T) {
	printer, err := NewPrinter().WithFormat(FormatJSON).Build()
	require.NoError(t, err)

	var buf bytes.Buffer
	doc := Entries{Lookup(sigext.Default(), signal.HUP.AsRaw()), Lookup(sigext.Default(), -4)}
	require.NoError(t, printer.Print(context.Background(), &buf, doc))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "SIGHUP", decoded[0]["name"])
	assert.Equal(t, KindNone, decoded[1]["kind"])
	assert.NotContains(t, decoded[1], "name")
}

func TestPrintYAML(t *testing.T) {
	printer, err := NewPrinter().WithFormat(FormatYAML).Build()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printer.Print(context.Background(), &buf, List(sigext.Default())))

	var decoded Listing
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded.Named, len(signal.Named()))
	assert.Equal(t, sigext.HasRealtime, decoded.Window != nil)
}

func TestPrintQuery(t *testing.T) {
	printer, err := NewPrinter().WithQuery(`.named[] | select(.name == "SIGKILL") | .raw`).Build()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printer.Print(context.Background(), &buf, List(sigext.Default())))
	assert.Equal(t, jsonNumber(signal.KILL.AsRaw()), strings.TrimSpace(buf.String()))
}

func TestPrintQueryErrors(t *testing.T) {
	_, err := NewPrinter().WithQuery(".[").Build()
	assert.Error(t, err)

	printer, err := NewPrinter().WithQuery(`error("boom")`).Build()
	require.NoError(t, err)
	err = printer.Print(context.Background(), &bytes.Buffer{}, Entries{})
	assert.ErrorContains(t, err, "boom")
}

func TestPrintTable(t *testing.T) {
	printer, err := NewPrinter().Build()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printer.Print(context.Background(), &buf, List(sigext.Default())))
	out := buf.String()
	assert.Contains(t, out, "SIGTERM")
	assert.Contains(t, out, "NAME")
}

func TestPlatform(t *testing.T) {
	info := Platform(sigext.Default(), "illumos")
	assert.Equal(t, []string{"solarish"}, info.Categories)
	assert.True(t, info.Realtime)

	info = Platform(sigext.Default(), "plan9")
	assert.Empty(t, info.Categories)
	assert.False(t, info.Realtime)
	assert.Nil(t, info.Window)
	assert.Contains(t, info.Rows(), []string{"categories", "none"})
}

func TestProfileSummary(t *testing.T) {
	p, diags := profile.New().WithSources([]byte(`
const {
  level = 3
}

alias "stop" {
  signal      = "TERM"
  description = "graceful stop"
}
`)).Build()
	require.False(t, diags.HasErrors(), diags.Error())

	s, err := Profile(p)
	require.NoError(t, err)
	require.Len(t, s.Aliases, 1)
	assert.Equal(t, "stop", s.Aliases[0].Alias)
	assert.Equal(t, "SIGTERM", s.Aliases[0].Name)
	assert.Equal(t, int64(3), s.Constants["level"])

	rows := s.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "alias", rows[0][0])
	assert.Equal(t, []string{"const", "level", "3", ""}, rows[1])
}

func jsonNumber(n int32) string {
	b, _ := json.Marshal(n)
	return string(b)
}

func TestValueRows(t *testing.T) {
	v := Value{Expression: "signal(\"HUP\")", Result: int64(1)}
	assert.Equal(t, [][]string{{"signal(\"HUP\")", "1"}}, v.Rows())

	v = Value{Expression: "x", Result: map[string]any{"a": "b"}}
	assert.Equal(t, `{"a":"b"}`, v.Rows()[0][1])
}
