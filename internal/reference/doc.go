// Package reference provides the static tables used by the analysis engine:
// known weak passwords, common dictionary words and keyboard patterns.
//
// The default tables are embedded in the binary and parsed once on first
// use. Tables are immutable after construction and may be shared freely
// between goroutines. Tests and callers that need different data build
// their own Tables with New or extend the defaults with Load.
package reference
