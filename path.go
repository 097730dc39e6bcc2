// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lpath

package lpath

import (
	"iter"
	"slices"
)

// Concat joins args into one separator-normalized path, "." when empty.
func (l *Lib) Concat(args ...string) string {
	return l.rules.Concat(args...)
}

// IsAbs reports whether the concatenated path is absolute.
func (l *Lib) IsAbs(args ...string) bool {
	return l.rules.IsAbs(l.rules.Concat(args...))
}

// Drive returns the drive of the right-most argument carrying one.
func (l *Lib) Drive(args ...string) string {
	return l.rules.Drive(args...)
}

// Root returns the root of the right-most argument exposing one.
func (l *Lib) Root(args ...string) string {
	return l.rules.Root(args...)
}

// Anchor returns drive and root of args.
func (l *Lib) Anchor(args ...string) string {
	return l.rules.Anchor(args...)
}

// Path returns the canonical form of the concatenated args.
//
// A trailing separator (or trailing "/.") on the input is kept unless the
// result ends in "..". A path that cancels out completely becomes ".".
func (l *Lib) Path(args ...string) string {
	cat := span(l.rules.Concat(args...))
	if cat.isDot() {
		return string(cat)
	}

	anchor := span(l.rules.Anchor(args...))
	res := canon(l.rules, anchor, cat)
	if len(res) == 0 {
		return "."
	}

	sep := l.rules.IsSeparator
	trailing := sep(cat.last()) || (sep(cat.lastN(1)) && cat.endsWithDot())
	if trailing && !sep(res.last()) && !res.endsWithDots() {
		return string(res) + string(l.rules.Separator())
	}

	return string(res)
}

// components splits the concatenated args below their anchor.
//
// anchor is empty for relative paths.
func (l *Lib) components(args []string) (path, anchor span, parts []span, absolute bool) {
	path = span(l.rules.Concat(args...))
	absolute = l.rules.IsAbs(string(path))
	if absolute {
		anchor = span(l.rules.Anchor(string(path)))
	}

	return path, anchor, canonSplit(l.rules, anchor, path, true, false), absolute
}

// Parent returns the logical parent of the concatenated args.
//
// Relative paths walk upwards through "..": Parent("a") is "." and
// Parent("..") is "../..". On Windows a bare drive "Z:" gives "Z:..".
func (l *Lib) Parent(args ...string) string {
	path, anchor, parts, absolute := l.components(args)
	if len(parts) == 0 {
		if !absolute {
			return ".."
		}

		if l.rules.Kind() == KindWindows && anchor.last() == ':' {
			return string(anchor) + ".."
		}

		return string(anchor)
	}

	last := parts[len(parts)-1]
	parts = parts[:len(parts)-1]
	if last.isDotDot() {
		if absolute {
			return l.rules.Anchor(string(path))
		}

		parts = append(parts, "..", "..")
	}

	if len(parts) == 0 && !absolute {
		return "."
	}

	res := join(l.rules, anchor, parts)
	if l.rules.Kind() == KindWindows && res.second() == ':' && res.first() >= 'a' && res.first() <= 'z' {
		return string(toUpper(res[0])) + string(res[1:])
	}

	return string(res)
}

// Name returns the last canonical component or "".
func (l *Lib) Name(args ...string) string {
	_, _, parts, _ := l.components(args)
	if len(parts) == 0 {
		return ""
	}

	return string(parts[len(parts)-1])
}

// Stem returns Name without its last suffix.
func (l *Lib) Stem(args ...string) string {
	name := span(l.Name(args...))
	if l.rules.Kind() == KindWindows && name.endsWithDot() {
		return string(name)
	}

	for i := len(name) - 1; i > 0; i-- {
		if name[i] == '.' {
			return string(name[:i])
		}
	}

	return string(name)
}

// Suffix returns the last dot group of Name, "" when there is none.
//
// A leading dot never starts a suffix. On Windows a name ending in '.' or a
// space after the last dot means no suffix.
func (l *Lib) Suffix(args ...string) string {
	name := span(l.Name(args...))
	windows := l.rules.Kind() == KindWindows
	if windows && name.endsWithDot() {
		return ""
	}

	for i := len(name) - 1; i > 0; i-- {
		if windows && name[i] == ' ' {
			return ""
		}

		if name[i] == '.' {
			return string(name[i:])
		}
	}

	return ""
}

// Suffixes yields all dot groups of Name from left to right.
//
// The sequence is computed on every iteration.
func (l *Lib) Suffixes(args ...string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, s := range l.suffixList(args) {
			if !yield(i+1, s) {
				return
			}
		}
	}
}

// suffixList collects dot groups of the name of args.
func (l *Lib) suffixList(args []string) []string {
	name := span(l.Name(args...))
	windows := l.rules.Kind() == KindWindows
	if windows && name.endsWithDot() {
		return nil
	}

	var out []string
	end := len(name)
	for i := len(name) - 1; i > 0; i-- {
		if windows && name[i] == ' ' {
			break
		}

		if name[i] == '.' {
			out = append(out, string(name[i:end]))
			end = i
		}
	}

	slices.Reverse(out)
	return out
}

// Parts yields the anchor (for absolute paths) and canonical components.
//
// Indexes are 1-based.
func (l *Lib) Parts(args ...string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, s := range l.partList(args) {
			if !yield(i+1, string(s)) {
				return
			}
		}
	}
}

// Part returns one element of Parts.
//
// index is 1-based; negative counts from the end. Zero or out of range
// reports false.
func (l *Lib) Part(index int, args ...string) (string, bool) {
	if index == 0 {
		return "", false
	}

	parts := l.partList(args)
	if index < 0 {
		index += len(parts)
	} else {
		index--
	}

	if index < 0 || index >= len(parts) {
		return "", false
	}

	return string(parts[index]), true
}

// partList returns anchor-prefixed components.
func (l *Lib) partList(args []string) []span {
	_, anchor, parts, absolute := l.components(args)
	if !absolute {
		return parts
	}

	out := make([]span, 0, len(parts)+1)
	out = append(out, anchor)
	return append(out, parts...)
}
