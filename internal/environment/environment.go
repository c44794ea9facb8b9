// Package environment implements Knight's variable table: a
// name-keyed map of stable, addressable Variable cells, plus the
// Interner and PRNG an Environment owns on their behalf (spec.md §3.6,
// §4.4).
package environment

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand"

	"knight/internal/kstring"
	"knight/internal/value"
)

// Environment owns every variable cell, the string interner, and the
// PRNG backing the "R" operator. Its lifetime must enclose every Value
// derived from it, since variables and interned strings hold pointers
// that assume the Environment (and therefore their backing storage)
// outlives them.
type Environment struct {
	variables map[string]*value.Variable
	interner  *kstring.Interner
	rng       *mathrand.Rand
}

// New constructs an Environment with a fresh interner and a PRNG
// seeded from OS entropy — per spec.md §4.4, "seeded once from OS
// entropy at init... NOT a security primitive", so math/rand (not
// crypto/rand) drives every subsequent draw.
func New() *Environment {
	return &Environment{
		variables: make(map[string]*value.Variable),
		interner:  kstring.NewInterner(),
		rng:       mathrand.New(mathrand.NewSource(seedFromOS())),
	}
}

func seedFromOS() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand failing indicates a broken host; fall back to a
		// fixed seed rather than aborting construction of an
		// Environment, matching spec.md's framing of the RNG as a
		// non-security convenience, never a hard dependency.
		return 0x5eed
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

// Lookup returns the stable *Variable for name, inserting an
// undefined-valued cell on first reference. Lookup is amortized O(1)
// (Go's builtin map) and is pointer-stable: repeated lookups of the
// same name return the same *Variable, which spec.md §3.3 and §8
// require (Value encodes variables by pointer).
func (e *Environment) Lookup(name string) *value.Variable {
	if v, ok := e.variables[name]; ok {
		return v
	}
	v := value.NewVariable(name)
	e.variables[name] = v
	return v
}

// Interner returns the Environment's string pool.
func (e *Environment) Interner() *kstring.Interner { return e.interner }

// VariableCount reports how many distinct names have been looked up
// so far. Diagnostic only (the "--stats" CLI flag).
func (e *Environment) VariableCount() int { return len(e.variables) }

// NextRandom returns the next PRNG draw as a non-negative value
// suitable for the "R" operator's integer result.
func (e *Environment) NextRandom() uint64 {
	return e.rng.Uint64()
}

// Release drops every variable's current value (decrementing any
// string/block payload) and frees the cells themselves. Call once, at
// the end of the Environment's lifetime, mirroring spec.md §4.4's
// teardown order (here Go's GC reclaims the map, the Variable
// structs, and the interner's pool once unreferenced, so Release only
// needs to run the refcount side effects that are externally
// observable: decrementing payload strings/blocks).
func (e *Environment) Release() {
	for name, v := range e.variables {
		v.Value.Decrement()
		delete(e.variables, name)
	}
}
