// Command categories writes the per-target zcategories_*.go files of the
// platform package. Each file is selected by build constraints and defines
// the constant Current for that target.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/tsarna/sigext/pkg/sigext/platform"
)

type target struct {
	GOOS       string
	Constraint string
}

// Every named target excludes baremetal, which TinyGo combines with a real
// GOOS such as linux.
var targets = []target{
	{GOOS: "linux", Constraint: "linux && !android && !baremetal"},
	{GOOS: "android", Constraint: "android && !baremetal"},
	{GOOS: "darwin", Constraint: "darwin && !ios && !baremetal"},
	{GOOS: "ios", Constraint: "ios && !baremetal"},
	{GOOS: "freebsd", Constraint: "freebsd && !baremetal"},
	{GOOS: "dragonfly", Constraint: "dragonfly && !baremetal"},
	{GOOS: "openbsd", Constraint: "openbsd && !baremetal"},
	{GOOS: "netbsd", Constraint: "netbsd && !baremetal"},
	{GOOS: "solaris", Constraint: "solaris && !illumos && !baremetal"},
	{GOOS: "illumos", Constraint: "illumos && !baremetal"},
	{GOOS: "other", Constraint: "baremetal || !(linux || darwin || freebsd || dragonfly || openbsd || netbsd || solaris)"},
}

var identifiers = map[platform.Category]string{
	platform.FreeBSDLike: "FreeBSDLike",
	platform.NetBSDLike:  "NetBSDLike",
	platform.Apple:       "Apple",
	platform.LinuxLike:   "LinuxLike",
	platform.Solarish:    "Solarish",
	platform.BSD:         "BSD",
	platform.LinuxKernel: "LinuxKernel",
}

var fileTemplate = template.Must(template.New("zcategories").Parse(`// Code generated by go run ./internal/gen/categories. DO NOT EDIT.

//go:build {{.Constraint}}

package platform

// Current is the set of categories of the build target.
const Current Category = {{.Expr}}
`))

func expression(c platform.Category) string {
	var parts []string
	for _, cat := range platform.All() {
		if c.Has(cat) {
			parts = append(parts, identifiers[cat])
		}
	}
	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(parts, " | ")
}

func render(t target) ([]byte, error) {
	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Constraint string
		Expr       string
	}{
		Constraint: t.Constraint,
		Expr:       expression(platform.Classify(t.GOOS)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", t.GOOS, err)
	}

	return format.Source(buf.Bytes())
}

func main() {
	out := flag.String("out", ".", "output directory")
	flag.Parse()

	for _, t := range targets {
		src, err := render(t)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		path := filepath.Join(*out, "zcategories_"+t.GOOS+".go")
		if err := os.WriteFile(path, src, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}
