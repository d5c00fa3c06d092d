// Package main provides the hpdb CLI application.
// hpdb consolidates per-source host-plant CSV tables of Japanese
// moths into a single master table and exports it for downstream use.
package main

import (
	"os"
)

var (
	// Version is set by build flags
	Version = "dev"
)

func main() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
