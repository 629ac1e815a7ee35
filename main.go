//go:build (unix && !hurd) || baremetal

package main

import (
	"fmt"
	"os"

	"github.com/tsarna/sigext/cmd/sigext/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
