// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lpath

package lpath

// unicodePrefix is the Windows long-path escape prefix.
const unicodePrefix span = `\\?\`

// windowsRules implements Platform for Windows paths.
type windowsRules struct{}

func (windowsRules) sealed() {}

// Kind returns KindWindows.
func (windowsRules) Kind() Kind { return KindWindows }

// Name returns "windows".
func (windowsRules) Name() string { return "windows" }

// Separator returns '\'.
func (windowsRules) Separator() byte { return '\\' }

// IsSeparator accepts '/' and '\'.
func (windowsRules) IsSeparator(c byte) bool { return c == '/' || c == '\\' }

// CaseSensitive returns false.
func (windowsRules) CaseSensitive() bool { return false }

// IsAbs reports a leading separator or a drive letter prefix.
func (w windowsRules) IsAbs(path string) bool {
	if len(path) == 0 {
		return false
	}

	if w.IsSeparator(path[0]) {
		return true
	}

	return span(path).hasDrivePrefix()
}

// Drive returns the normalized drive of the right-most argument carrying one.
//
// Forms: "C:", `\\SERVER\SHARE`, `\\?\C:`, `\\?\SERVER\SHARE`. Letters are
// uppercased. A malformed escaped UNC degrades to `\\?\`.
func (w windowsRules) Drive(args ...string) string {
	for i := len(args) - 1; i >= 0; i-- {
		s := span(args[i])
		if len(s) < 2 {
			continue
		}

		if d, ok := windowsDrive(s); ok {
			return string(d)
		}
	}

	return ""
}

// windowsDrive extracts the drive of a single argument.
//
// ok is false when the argument carries no drive and scanning must go on.
func windowsDrive(s span) (span, bool) {
	unicode := false
	if s.hasUnicodePrefix() {
		s = s.sub(4)
		unicode = true
	}

	if s.hasDrivePrefix() {
		d := span([]byte{toUpper(s[0]), ':'})
		if unicode {
			return unicodePrefix.cat(d), true
		}

		return d, true
	}

	fallback := span("")
	if unicode {
		fallback = unicodePrefix
	} else {
		f := s.first()
		if (f != '\\' && f != '/') || s.second() != f {
			return "", false
		}

		s = s.sub(2)
	}

	if unicode && len(s) == 0 {
		return unicodePrefix, true
	}

	server, rest, found := cutSeparator(s)
	if !found || len(server) == 0 {
		return fallback, true
	}

	share, _, _ := cutSeparator(rest)
	if len(share) == 0 && len(rest) > 0 {
		return fallback, true
	}

	if unicode && len(share) == 0 {
		return unicodePrefix, true
	}

	b := newBuilder(len(unicodePrefix) + len(server) + len(share) + 1)
	if unicode {
		b.write(unicodePrefix)
	} else {
		b.write(`\\`)
	}

	b.write(server)
	b.writeByte('\\')
	b.write(share)
	return asciiUpper(b.span()), true
}

// cutSeparator splits s at the first '/' or '\'.
func cutSeparator(s span) (before, after span, found bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == '/' || s[i] == '\\' {
			return s[:i], s[i+1:], true
		}
	}

	return s, "", false
}

// Root returns `\` for the right-most argument rooted after its drive.
func (w windowsRules) Root(args ...string) string {
	for i := len(args) - 1; i >= 0; i-- {
		s := span(args[i])
		if len(s) == 0 {
			continue
		}

		if s.hasUnicodePrefix() {
			if len(s) == 4 {
				return ""
			}

			s = s.sub(4)
		}

		if w.IsSeparator(s[0]) {
			return `\`
		}

		if len(s) < 3 {
			continue
		}

		if s.hasDrivePrefix() {
			if w.IsSeparator(s[2]) {
				return `\`
			}

			return ""
		}
	}

	return ""
}

// Anchor returns Drive(args...) + Root(args...).
func (w windowsRules) Anchor(args ...string) string {
	return string(span(w.Drive(args...)).cat(span(w.Root(args...))))
}

// Concat joins args with '\'.
//
// An absolute argument restarts the result only when it has a root or a drive
// different from the one tracked so far, so "C:a", "d:", "c" gives `D:c`.
// The drive prefix of the result is rewritten to its normalized form.
func (w windowsRules) Concat(args ...string) string {
	parts := spans(args)
	start := 0
	lastDrive := ""
	for i, s := range args {
		if !w.IsAbs(s) {
			continue
		}

		drive := w.Drive(s)
		if w.Root(s) != "" || drive != lastDrive {
			start = i
			lastDrive = drive
		}
	}

	result := concatFrom(parts, start, concatRules{
		isSep: w.IsSeparator,
		skip: func(s span) int {
			return len(w.Drive(string(s)))
		},
		sep:             '\\',
		noSepAfterColon: true,
	})

	drive := span(w.Drive(args...))
	if !result.hasPrefix(drive) {
		rdrive := w.Drive(string(result))
		return string(drive.cat(result.sub(len(rdrive))))
	}

	return string(result)
}
