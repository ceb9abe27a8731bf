// Package strings holds small string and slice helpers for module wiring
package strings

import std "strings"

// IfEmpty returns def when in has no elements
func IfEmpty[T any](in, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString panics naming what is missing when s is blank
func MustString(s, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix turns " sessions/ " into "/sessions", the bare root panics
func MustPrefix(s string) string {
	p := "/" + std.Trim(s, " /")
	if p == "/" {
		panic("root path is required")
	}
	return p
}
