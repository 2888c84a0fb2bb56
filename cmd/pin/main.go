// Package main provides the pin command-line tool.
//
// Usage:
//
//	pin simulate --page page.yaml     Run a page fixture on the in-memory host
//	pin browse --url URL --selector S Pin elements of a live page in Chrome
//	pin version                       Print version information
//
// Options come from flags, then environment variables (PIN_ followed by the
// config key, e.g. PIN_PIN_TOP_SPACING), then ./pin.yaml or --config.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
