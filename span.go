// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lpath

package lpath

// span is an immutable view over path bytes.
//
// Slicing a string never copies, so spans taken from caller input alias it
// until a builder produces a fresh one.
type span string

// first returns the first byte or zero for an empty span.
func (s span) first() byte {
	if len(s) == 0 {
		return 0
	}

	return s[0]
}

// second returns the second byte or zero when out of range.
func (s span) second() byte {
	if len(s) < 2 {
		return 0
	}

	return s[1]
}

// last returns the last byte or zero for an empty span.
func (s span) last() byte {
	return s.lastN(0)
}

// lastN returns the byte n positions before the last one, zero when out of range.
func (s span) lastN(n int) byte {
	i := len(s) - 1 - n
	if n < 0 || i < 0 {
		return 0
	}

	return s[i]
}

// sub returns the tail starting at start, clamped to [0, len].
func (s span) sub(start int) span {
	if start <= 0 {
		return s
	}

	if start >= len(s) {
		return ""
	}

	return s[start:]
}

// cat concatenates two spans without allocating when either side is empty.
func (s span) cat(o span) span {
	if len(o) == 0 {
		return s
	}

	if len(s) == 0 {
		return o
	}

	return s + o
}

// hasPrefix reports whether s starts with p.
func (s span) hasPrefix(p span) bool {
	return len(s) >= len(p) && s[:len(p)] == p
}

// isDot reports whether s is exactly ".".
func (s span) isDot() bool {
	return s == "."
}

// isDotDot reports whether s is exactly "..".
func (s span) isDotDot() bool {
	return s == ".."
}

// endsWithDot reports whether the last byte is '.'.
func (s span) endsWithDot() bool {
	return s.last() == '.'
}

// endsWithDots reports whether s ends with "..".
func (s span) endsWithDots() bool {
	return len(s) > 1 && s[len(s)-1] == '.' && s[len(s)-2] == '.'
}

// hasUnicodePrefix reports the Windows escape prefix `\\?\` (or `//?/`).
//
// Both leading separators and the one after '?' must be the same byte.
func (s span) hasUnicodePrefix() bool {
	if len(s) <= 3 {
		return false
	}

	c := s[0]
	return (c == '\\' || c == '/') && s[1] == c && s[2] == '?' && s[3] == c
}

// hasDrivePrefix reports whether s starts with an ASCII letter followed by ':'.
func (s span) hasDrivePrefix() bool {
	return len(s) >= 2 && s[1] == ':' && isASCIILetter(s[0])
}

// equalFold compares spans folding ASCII case, treating '/' and '\' as equal.
func (s span) equalFold(o span) bool {
	if len(s) != len(o) {
		return false
	}

	for i := 0; i < len(s); i++ {
		if !bytesEqualFold(s[i], o[i]) {
			return false
		}
	}

	return true
}

// bytesEqualFold is the case-insensitive byte comparison used by paths and patterns.
func bytesEqualFold(a, b byte) bool {
	if toUpper(a) == toUpper(b) {
		return true
	}

	return (a == '/' && b == '\\') || (a == '\\' && b == '/')
}

// isASCIILetter reports whether c is in [A-Za-z].
func isASCIILetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// toUpper converts ASCII a-z to A-Z and leaves other bytes unchanged.
func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}

	return c
}

// asciiUpper uppercases ASCII letters of s.
func asciiUpper(s span) span {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'a' && s[i] <= 'z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				b[j] = toUpper(b[j])
			}

			return span(b)
		}
	}

	return s
}

// builder accumulates output bytes for construction routines.
//
// span hands the buffer over; the builder must not be used afterwards.
type builder struct {
	buf []byte
}

// newBuilder creates a builder with capacity hint size.
func newBuilder(size int) *builder {
	return &builder{buf: make([]byte, 0, size)}
}

// writeByte appends one byte.
func (b *builder) writeByte(c byte) {
	b.buf = append(b.buf, c)
}

// write appends all bytes of s.
func (b *builder) write(s span) {
	b.buf = append(b.buf, s...)
}

// len returns the number of bytes written.
func (b *builder) len() int {
	return len(b.buf)
}

// last returns the last written byte or zero.
func (b *builder) last() byte {
	if len(b.buf) == 0 {
		return 0
	}

	return b.buf[len(b.buf)-1]
}

// span finishes the builder and returns its content.
func (b *builder) span() span {
	s := span(b.buf)
	b.buf = nil
	return s
}
