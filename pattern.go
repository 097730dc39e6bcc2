// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lpath

package lpath

import "strings"

// tokenKind identifies one node of a compiled pattern chain.
type tokenKind uint8

const (
	// tokenHead is the no-op chain head.
	tokenHead tokenKind = iota
	// tokenNever never matches; it terminates the chain of an empty pattern.
	tokenNever
	// tokenLiteral matches literal bytes.
	tokenLiteral
	// tokenAny matches exactly one byte.
	tokenAny
	// tokenClass matches one byte of an accept set.
	tokenClass
	// tokenWildcard matches a backtracking run of bytes.
	tokenWildcard
)

// token is one node of a compiled pattern chain.
type token struct {
	// next is the following node, nil at the chain end.
	next *token
	// literal holds bytes of a literal node.
	literal string
	// class is the accept set of a class node.
	class byteSet
	kind  tokenKind
	// glob reports a wildcard compiled in glob mode.
	glob bool
	// double reports a "**" wildcard allowed to cross separators.
	double bool
}

// byteSet is a set over all 256 byte values.
type byteSet [4]uint64

// add puts c into the set.
func (s *byteSet) add(c byte) {
	s[c>>6] |= 1 << (c & 63)
}

// has reports whether c is in the set.
func (s *byteSet) has(c byte) bool {
	return s[c>>6]&(1<<(c&63)) != 0
}

// invert complements the set.
func (s *byteSet) invert() {
	for i := range s {
		s[i] = ^s[i]
	}
}

// PatternOptions controls pattern compilation.
type PatternOptions struct {
	// Glob enables path-aware wildcards: '*' stops before a separator and a
	// "**" segment spans directories.
	Glob bool `json:"glob,omitempty" yaml:"glob,omitempty"`
	// CaseInsensitive folds ASCII case and treats '/' and '\' as equal.
	CaseInsensitive bool `json:"case_insensitive,omitempty" yaml:"case_insensitive,omitempty"`
}

// Pattern is a compiled fnmatch/glob pattern.
//
// A Pattern is immutable and safe for concurrent use.
type Pattern struct {
	// head is the chain head node.
	head *token
	// source is the original pattern text.
	source string
	// fold enables case-insensitive comparison.
	fold bool
}

// CompilePattern compiles pattern into a matcher chain.
//
// Compilation never fails. Syntax:
//   - "?" matches exactly one byte
//   - "[...]" matches one byte of a class, "!" first negates; "X-Y" accepts
//     the two bytes following X and ignores Y
//   - "*" matches any run of bytes, shortest first
//   - in glob mode "**" between separators (or at the pattern edges) spans directories
//
// A "[" without a "]" at least two bytes further is literal.
func CompilePattern(pattern string, opts PatternOptions) *Pattern {
	p := &Pattern{
		source: pattern,
		fold:   opts.CaseInsensitive,
	}

	if pattern == "" {
		p.head = &token{kind: tokenNever}
		return p
	}

	isSep := func(c byte) bool {
		return c == '/' || (opts.CaseInsensitive && c == '\\')
	}

	head := &token{kind: tokenHead}
	cur := head
	push := func(t *token) {
		cur.next = t
		cur = t
	}

	litStart := 0
	flush := func(end int) {
		if end > litStart {
			push(&token{kind: tokenLiteral, literal: pattern[litStart:end]})
		}
	}

	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '[':
			end := strings.IndexByte(pattern[i:], ']')
			if end <= 1 {
				continue
			}

			flush(i)
			push(&token{kind: tokenClass, class: compileClass(pattern[i+1 : i+end])})
			i += end
			litStart = i + 1

		case '?':
			flush(i)
			push(&token{kind: tokenAny})
			litStart = i + 1

		case '*':
			flush(i)
			double := false
			if opts.Glob && (i == 0 || isSep(pattern[i-1])) {
				switch {
				case i+1 >= len(pattern):
					double = true
				case pattern[i+1] == '*' && (i+2 == len(pattern) || isSep(pattern[i+2])):
					double = true
				}
			}

			push(&token{kind: tokenWildcard, glob: opts.Glob, double: double})
			litStart = i + 1
			if double && i+1 < len(pattern) {
				// "**/" collapses into one node, the separator included.
				n := min(2, len(pattern)-i-1)
				i += n
				litStart += n
			}
		}
	}

	if litStart < len(pattern) {
		flush(len(pattern))
	}

	p.head = head
	return p
}

// compileClass builds the accept set of a "[...]" body.
func compileClass(body string) byteSet {
	var set byteSet
	negate := false
	prev := -1
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '!' && i == 0 {
			negate = true
			continue
		}

		if c == '-' && prev != -1 && i+1 < len(body) {
			i++
			set.add(byte(prev + 1))
			set.add(byte(prev + 2))
			prev = -1
			continue
		}

		set.add(c)
		prev = int(c)
	}

	if negate {
		set.invert()
	}

	return set
}

// String returns the pattern source.
func (p *Pattern) String() string {
	return p.source
}

// chain describes the compiled node chain, for debugging.
func (p *Pattern) chain() string {
	var b strings.Builder
	for t := p.head; t != nil; t = t.next {
		if t != p.head {
			b.WriteString(" -> ")
		}

		switch t.kind {
		case tokenHead:
			b.WriteString("Head")
		case tokenNever:
			b.WriteString("Never")
		case tokenLiteral:
			b.WriteString("Literal(" + t.literal + ")")
		case tokenAny:
			b.WriteString("Any")
		case tokenClass:
			b.WriteString("Class")
		case tokenWildcard:
			if t.double {
				b.WriteString("DoubleWildcard")
			} else {
				b.WriteString("Wildcard")
			}
		}
	}

	return b.String()
}
