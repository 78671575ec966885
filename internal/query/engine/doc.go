// Package engine evaluates doctor searches over an in-memory collection.
//
// Every function is pure: inputs are never mutated and each call re-scans the
// whole collection. Callers own the returned slices.
package engine
