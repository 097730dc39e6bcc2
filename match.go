// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lpath

package lpath

// PathPattern is a compiled whole-path pattern matched component by component.
type PathPattern struct {
	// rules are the platform rules the pattern was compiled for.
	rules Platform
	// source is the original pattern text.
	source string
	// drive is the pattern drive, compared exactly for absolute patterns.
	drive string
	// parts hold one compiled pattern per canonical component.
	parts []*Pattern
	// absolute reports an anchored pattern.
	absolute bool
	// exact requires equal component counts (a leading ".." or an absolute pattern).
	exact bool
}

// CompilePath compiles a whole-path pattern for Match.
func (l *Lib) CompilePath(pattern string) *PathPattern {
	if l.cache != nil {
		return l.cache.get(pattern, func() *PathPattern {
			return compilePathPattern(l.rules, pattern)
		})
	}

	return compilePathPattern(l.rules, pattern)
}

// compilePathPattern splits pattern into components and compiles each of them.
func compilePathPattern(p Platform, pattern string) *PathPattern {
	src := span(pattern)
	comps := canonSplit(p, span(p.Anchor(pattern)), src, false, false)
	pp := &PathPattern{
		rules:    p,
		source:   pattern,
		absolute: p.IsAbs(pattern),
		parts:    make([]*Pattern, len(comps)),
	}

	if pp.absolute {
		pp.drive = p.Drive(pattern)
	}

	pp.exact = pp.absolute || (len(comps) > 0 && comps[0].isDotDot())

	opts := PatternOptions{CaseInsensitive: !p.CaseSensitive()}
	for i, c := range comps {
		pp.parts[i] = CompilePattern(string(c), opts)
	}

	return pp
}

// String returns the pattern source.
func (pp *PathPattern) String() string {
	return pp.source
}

// Match reports whether candidate matches the pattern.
//
// An empty pattern matches every non-empty candidate. Relative patterns
// match trailing components of longer candidates.
func (pp *PathPattern) Match(candidate string) bool {
	if candidate == "" {
		return false
	}

	if pp.source == "" {
		return true
	}

	p := pp.rules
	names := canonSplit(p, span(p.Anchor(candidate)), span(candidate), false, false)

	if pp.absolute {
		if !p.IsAbs(candidate) || p.Drive(candidate) != pp.drive {
			return false
		}
	}

	switch {
	case pp.exact && len(names) != len(pp.parts):
		return false
	case len(names) < len(pp.parts):
		return false
	case len(pp.parts) == 0 && len(names) > 0:
		return false
	}

	for i, j := len(pp.parts)-1, len(names)-1; i >= 0; i, j = i-1, j-1 {
		if !pp.parts[i].Match(string(names[j])) {
			return false
		}
	}

	return true
}

// Fnmatch matches candidate as a single string against pattern.
//
// Wildcards cross separators; case folding follows the platform.
func (l *Lib) Fnmatch(candidate, pattern string) bool {
	return CompilePattern(pattern, PatternOptions{CaseInsensitive: !l.rules.CaseSensitive()}).Match(candidate)
}

// Match matches candidate against pattern component by component.
//
// It returns candidate and true on success, "" and false otherwise.
func (l *Lib) Match(candidate, pattern string) (string, bool) {
	if !l.CompilePath(pattern).Match(candidate) {
		return "", false
	}

	return candidate, true
}

// Glob matches candidate as a single string against pattern in glob mode.
func (l *Lib) Glob(candidate, pattern string) bool {
	return CompilePattern(pattern, PatternOptions{
		Glob:            true,
		CaseInsensitive: !l.rules.CaseSensitive(),
	}).Match(candidate)
}
