// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lpath

package lpath

// posixRules implements Platform for POSIX paths.
type posixRules struct{}

func (posixRules) sealed() {}

// Kind returns KindPosix.
func (posixRules) Kind() Kind { return KindPosix }

// Name returns "posix".
func (posixRules) Name() string { return "posix" }

// Separator returns '/'.
func (posixRules) Separator() byte { return '/' }

// IsSeparator accepts only '/'.
func (posixRules) IsSeparator(c byte) bool { return c == '/' }

// CaseSensitive returns true.
func (posixRules) CaseSensitive() bool { return true }

// IsAbs reports whether path starts with '/'.
func (posixRules) IsAbs(path string) bool {
	return len(path) > 0 && path[0] == '/'
}

// Drive is always empty on POSIX.
func (posixRules) Drive(...string) string { return "" }

// Root returns "/", "//" or "" for the right-most rooted argument.
//
// Exactly two leading slashes form a distinct root; one or three and more
// collapse to "/".
func (posixRules) Root(args ...string) string {
	for i := len(args) - 1; i >= 0; i-- {
		s := args[i]
		if len(s) == 0 || s[0] != '/' {
			continue
		}

		if len(s) >= 2 && s[1] == '/' && (len(s) == 2 || s[2] != '/') {
			return "//"
		}

		return "/"
	}

	return ""
}

// Anchor equals Root on POSIX.
func (p posixRules) Anchor(args ...string) string {
	return p.Root(args...)
}

// Concat restarts at the right-most absolute argument and joins the rest with '/'.
func (p posixRules) Concat(args ...string) string {
	parts := spans(args)
	start := 0
	for i, s := range args {
		if p.IsAbs(s) {
			start = i
		}
	}

	return string(concatFrom(parts, start, concatRules{
		isSep: p.IsSeparator,
		sep:   '/',
	}))
}
