package main

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"knight/internal/environment"
)

// maybePrintStats prints a short diagnostic summary of interner and
// variable-table occupancy when --stats is set. It exists for poking
// at refcount/interning behavior from the command line; it has no
// effect on program semantics.
func maybePrintStats(env *environment.Environment) {
	if !statsFlag {
		return
	}
	fmt.Printf("variables: %s\n", humanize.Comma(int64(env.VariableCount())))
	fmt.Printf("interned strings: %s\n", humanize.Comma(int64(env.Interner().Len())))
}
