package report

import (
	"encoding/json"
	"fmt"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"github.com/tsarna/sigext/pkg/sigext"
	"github.com/tsarna/sigext/pkg/sigext/platform"
	"github.com/tsarna/sigext/pkg/sigext/profile"
	"github.com/tsarna/sigext/pkg/signal"
)

// WindowInfo is the real-time window of the running process.
type WindowInfo struct {
	Min int32 `json:"min" yaml:"min"`
	Max int32 `json:"max" yaml:"max"`
	Len int   `json:"len" yaml:"len"`
}

func NewWindowInfo(m *sigext.Mapper) *WindowInfo {
	w, ok := m.RealtimeWindow()
	if !ok {
		return nil
	}
	return &WindowInfo{Min: w.Min, Max: w.Max, Len: w.Len()}
}

// PlatformInfo describes a target: its categories and, for the running
// target, its real-time window.
type PlatformInfo struct {
	GOOS       string      `json:"goos" yaml:"goos"`
	Categories []string    `json:"categories" yaml:"categories"`
	Realtime   bool        `json:"realtime" yaml:"realtime"`
	Window     *WindowInfo `json:"window,omitempty" yaml:"window,omitempty"`
}

// Platform describes goos. The window is only reported for the target the
// program was built for.
func Platform(m *sigext.Mapper, goos string) PlatformInfo {
	c := platform.Classify(goos)
	info := PlatformInfo{
		GOOS:       goos,
		Categories: c.Names(),
		Realtime:   c.HasRealtime(),
	}
	if goos == runtime.GOOS {
		info.Window = NewWindowInfo(m)
	}
	return info
}

func (p PlatformInfo) Headers() []string {
	return []string{"PROPERTY", "VALUE"}
}

func (p PlatformInfo) Rows() [][]string {
	categories := strings.Join(p.Categories, ", ")
	if categories == "" {
		categories = "none"
	}

	rows := [][]string{
		{"goos", p.GOOS},
		{"categories", categories},
		{"realtime", strconv.FormatBool(p.Realtime)},
	}
	if p.Window != nil {
		rows = append(rows, []string{"window", fmt.Sprintf("[%d, %d] (%d signals)", p.Window.Min, p.Window.Max, p.Window.Len)})
	}
	return rows
}

// Listing is the named table of the target followed by its real-time
// window.
type Listing struct {
	Named  Entries     `json:"named" yaml:"named"`
	Window *WindowInfo `json:"window,omitempty" yaml:"window,omitempty"`
}

func List(m *sigext.Mapper) Listing {
	named := signal.Named()
	l := Listing{
		Named:  make(Entries, len(named)),
		Window: NewWindowInfo(m),
	}
	for i, sig := range named {
		l.Named[i] = FromSignal(m, sig)
	}
	return l
}

func (l Listing) Headers() []string {
	return l.Named.Headers()
}

func (l Listing) Rows() [][]string {
	rows := l.Named.Rows()
	if l.Window != nil {
		rows = append(rows, []string{
			fmt.Sprintf("%d-%d", l.Window.Min, l.Window.Max),
			"SIGRTMIN..SIGRTMAX",
			KindRealtime,
			"",
			fmt.Sprintf("%d real-time signals", l.Window.Len),
		})
	}
	return rows
}

// ProfileSummary is the result of checking profiles.
type ProfileSummary struct {
	Aliases   Entries        `json:"aliases" yaml:"aliases"`
	Constants map[string]any `json:"constants,omitempty" yaml:"constants,omitempty"`
}

func Profile(p *profile.Profile) (ProfileSummary, error) {
	consts, err := p.ConstantsAsGo()
	if err != nil {
		return ProfileSummary{}, err
	}

	s := ProfileSummary{
		Aliases:   make(Entries, 0, len(p.Aliases)),
		Constants: consts,
	}
	for _, name := range p.AliasNames() {
		a := p.Aliases[name]
		e := FromSignal(p.Mapper, a.Signal)
		e.Alias = a.Name
		e.Description = a.Description
		s.Aliases = append(s.Aliases, e)
	}
	return s, nil
}

func (s ProfileSummary) Headers() []string {
	return []string{"KIND", "NAME", "VALUE", "DESCRIPTION"}
}

func (s ProfileSummary) Rows() [][]string {
	rows := make([][]string, 0, len(s.Aliases)+len(s.Constants))
	for _, a := range s.Aliases {
		rows = append(rows, []string{"alias", a.Alias, fmt.Sprintf("%s (%d)", a.Name, a.Raw), a.Description})
	}

	names := make([]string, 0, len(s.Constants))
	for name := range s.Constants {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rows = append(rows, []string{"const", name, fmt.Sprint(s.Constants[name]), ""})
	}
	return rows
}

// Value is the result of evaluating a profile expression.
type Value struct {
	Expression string `json:"expression" yaml:"expression"`
	Result     any    `json:"result" yaml:"result"`
}

func (v Value) Headers() []string {
	return []string{"EXPRESSION", "RESULT"}
}

func (v Value) Rows() [][]string {
	result, err := json.Marshal(v.Result)
	if err != nil {
		result = []byte(fmt.Sprint(v.Result))
	}
	return [][]string{{v.Expression, string(result)}}
}
