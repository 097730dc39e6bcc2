// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lpath

package lpath

import (
	"strings"
	"sync"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
)

type fnCase struct {
	candidate string
	pattern   string
	want      bool
}

func TestFnmatch(t *testing.T) {
	t.Parallel()

	lib := NewFor(Posix)
	tests := []fnCase{
		{"abc", "*", true},
		{"abc", "a?c", true},
		{"ac", "a?c", false},
		{"a/b", "a*b", true},
		{"a/b", "a?b", true},
		{"", "", true},
		{"a", "", false},
		{"", "*", true},
		{"", "a", false},
		{"b", "[abc]", true},
		{"d", "[!abc]", true},
		{"a", "[!abc]", false},
		{"[", "[", true},
		{"[]", "[]", true},
		{"a*c", "a[*]c", true},
		{"init.LUA", "*.lua", false},
		{"init.lua", "*.lua", true},
		{"init.lua.bak", "*.lua", false},
		{"tmxxxxxionmlol", "tm*on*lol", true},
	}

	for _, tt := range tests {
		if got := lib.Fnmatch(tt.candidate, tt.pattern); got != tt.want {
			t.Fatalf("Fnmatch(%q, %q) got=%v, want %v", tt.candidate, tt.pattern, got, tt.want)
		}
	}
}

func TestFnmatchCaseInsensitive(t *testing.T) {
	t.Parallel()

	lib := NewFor(Windows)
	tests := []fnCase{
		{"A.LUA", "*.lua", true},
		{`a\b`, "a/b", true},
		{"a/b", `a\b`, true},
		{"a.b", "a/b", false},
		{"aBc", "ab[c]", true},
	}

	for _, tt := range tests {
		if got := lib.Fnmatch(tt.candidate, tt.pattern); got != tt.want {
			t.Fatalf("Fnmatch(%q, %q) got=%v, want %v", tt.candidate, tt.pattern, got, tt.want)
		}
	}
}

func TestClassRangeRule(t *testing.T) {
	t.Parallel()

	p := CompilePattern("a[A-Z]c", PatternOptions{})
	for candidate, want := range map[string]bool{
		"aAc": true,
		"aBc": true,
		"aCc": true,
		"aDc": false,
		"aZc": false,
	} {
		if got := p.Match(candidate); got != want {
			t.Fatalf("Match(%q) got=%v, want %v", candidate, got, want)
		}
	}
}

func TestLiteralStarInCandidate(t *testing.T) {
	t.Parallel()

	tests := []fnCase{
		{"a***c", "a*[*]*c", true},
		{"a****c", "a*[*]*c", false},
		{"a*****c", "a**[*]**c", true},
		{"a******c", "a**[*]**c", false},
	}

	for _, tt := range tests {
		if got := CompilePattern(tt.pattern, PatternOptions{}).Match(tt.candidate); got != tt.want {
			t.Fatalf("Match(%q, %q) got=%v, want %v", tt.candidate, tt.pattern, got, tt.want)
		}
	}
}

func TestWildcardBacktrackingBounded(t *testing.T) {
	t.Parallel()

	p := CompilePattern("*a*a*a*a*a*a*a*a*a*a", PatternOptions{})
	in := strings.Repeat("a", 50)
	if !p.Match(in) {
		t.Fatalf("50 a's must match")
	}

	if p.Match(in + "b") {
		t.Fatalf("50 a's followed by b must not match")
	}
}

func TestGlob(t *testing.T) {
	t.Parallel()

	lib := NewFor(Posix)
	tests := []fnCase{
		{"test_glob/case_1/a", "test_glob/case_1/**/a", true},
		{"test/test2/file3", "test/**/*f[i]le*", true},
		{"test_glob/case_1/a/a/a/a/c/a/b", "test_glob/**/a/b", true},
		{"x/y/z/a/b", "x/**/a/b", true},
		{"x/y", "x/**/y", true},
		{"x/y/z", "x/*/z", true},
		{"x/y/w/z", "x/*/z", false},
		{"a/b/c", "a/**", true},
		{"a/b/c", "a/*", true},
		{"a/b/c", "**", true},
		{"a.go", "*.go", true},
		{"src/a.go", "*.go", false},
	}

	for _, tt := range tests {
		if got := lib.Glob(tt.candidate, tt.pattern); got != tt.want {
			t.Fatalf("Glob(%q, %q) got=%v, want %v", tt.candidate, tt.pattern, got, tt.want)
		}
	}

	if !NewFor(Windows).Glob(`TEST_GLOB\case_1\a`, "test_glob/case_1/**/a") {
		t.Fatalf("case-insensitive glob must fold case and separators")
	}
}

func TestGlobAgreesWithDoublestar(t *testing.T) {
	t.Parallel()

	lib := NewFor(Posix)
	patterns := []string{"*.go", "x/*/z", "**/x", "a/**", "src/**/*.go"}
	candidates := []string{
		"a.go", "src/a.go", "a.go.txt",
		"x/y/z", "x/y/w/z", "x/z",
		"x", "a/b/x", "a/b/y",
		"a/b/c", "b/c",
		"src/c.go", "src/a/b/c.go", "src/a/c.txt",
	}

	for _, pattern := range patterns {
		for _, candidate := range candidates {
			want, err := doublestar.Match(pattern, candidate)
			if err != nil {
				t.Fatalf("doublestar.Match(%q): %v", pattern, err)
			}

			if got := lib.Glob(candidate, pattern); got != want {
				t.Fatalf("Glob(%q, %q) got=%v, doublestar %v", candidate, pattern, got, want)
			}
		}
	}
}

func TestPatternChain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		glob    bool
		want    string
	}{
		{"a*[bc]?d", false, "Head -> Literal(a) -> Wildcard -> Class -> Any -> Literal(d)"},
		{"x/**/y", true, "Head -> Literal(x/) -> DoubleWildcard -> Literal(y)"},
		{"a/**", true, "Head -> Literal(a/) -> DoubleWildcard"},
		{"a/*", true, "Head -> Literal(a/) -> DoubleWildcard"},
		{"a/*.c", true, "Head -> Literal(a/) -> Wildcard -> Literal(.c)"},
		{"**", false, "Head -> Wildcard -> Wildcard"},
		{"[x", false, "Head -> Literal([x)"},
		{"", false, "Never"},
	}

	for _, tt := range tests {
		p := CompilePattern(tt.pattern, PatternOptions{Glob: tt.glob})
		if got := p.chain(); got != tt.want {
			t.Fatalf("chain(%q) got=%q, want %q", tt.pattern, got, tt.want)
		}

		if p.String() != tt.pattern {
			t.Fatalf("String() got=%q, want %q", p.String(), tt.pattern)
		}
	}
}

func TestZeroPattern(t *testing.T) {
	t.Parallel()

	var p Pattern
	if !p.Match("") || p.Match("a") {
		t.Fatalf("zero Pattern must match only the empty string")
	}

	if p.chain() != "" || p.String() != "" {
		t.Fatalf("zero Pattern must describe itself as empty")
	}
}

func TestPatternConcurrentMatch(t *testing.T) {
	t.Parallel()

	p := CompilePattern("src/**/*.go", PatternOptions{Glob: true})

	var wg sync.WaitGroup
	results := make([]bool, 32)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = p.Match("src/a/b/c.go") && !p.Match("src/a/b/c.txt")
		}()
	}

	wg.Wait()
	for i, ok := range results {
		if !ok {
			t.Fatalf("goroutine %d got a wrong result", i)
		}
	}
}
