// Command litgo validates and rewrites overloaded literals in annotated Go
// source, turning invalid literals into build failures.
package main

import (
	"os"

	// Conformance registrations for the in-tree target types.
	_ "github.com/funvibe/litgo/pkg/greeting"
	_ "github.com/funvibe/litgo/pkg/nonzero"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
