// Package strings provides small string and pointer helpers
package strings

import std "strings"

// Blank reports whether s is empty or all whitespace
func Blank(s string) bool { return std.TrimSpace(s) == "" }

// MustString returns s if it has non whitespace content otherwise panics.
// name is used in the panic message so you can tell what was missing
func MustString(s string, name string) string {
	if Blank(s) {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes and asserts a mount path like /users or /matches.
// Ensures a single leading slash and no trailing slash; panics on blank input
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// Ptr returns a pointer to s, or nil if s is empty
func Ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns "" if ps is nil, else *ps
func Deref(ps *string) string {
	if ps == nil {
		return ""
	}
	return *ps
}

// SQLNull returns nil for blank strings so query args store NULL instead of ""
func SQLNull(s string) any {
	if Blank(s) {
		return nil
	}
	return s
}

// SQLNullPtr is SQLNull for optional strings
func SQLNullPtr(ps *string) any {
	if ps == nil {
		return nil
	}
	return SQLNull(*ps)
}
