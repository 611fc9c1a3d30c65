// Package main provides the tenet binary entry point.
// Tenet is an engineering-principles corpus engine: it loads principle
// documents, validates their content invariants, and matches them against
// target projects.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/praxislabs/tenet/commands"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
