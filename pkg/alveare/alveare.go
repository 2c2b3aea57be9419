// Package alveare generates letter-hive word puzzles: seven letters, one of
// them mandatory, and the dictionary words playable with them.
package alveare

// Version returns the current version of the package.
func Version() string { return "0.1.0" }
