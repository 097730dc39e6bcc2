// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lpath

package lpath

import (
	"strings"
	"testing"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	lib := NewFor(Posix)
	tests := []fnCase{
		{"abc", "*", true},
		{"a", "", true},
		{"", "", false},
		{"a", ".", false},
		{".", ".", true},
		{"../../a", "../a", false},
		{"../../a", "../../a", true},
		{"../../a/", "../../a", false},
		{"b.lua", "*.lua", true},
		{"b.lua", "/*.lua", false},
		{"/b.lua", "/*.lua", true},
		{"/x/b.lua", "/*.lua", false},
		{"x/y/b.lua", "y/*.lua", true},
		{"x/y/b.lua", "z/*.lua", false},
		{"a/b/c", "a/b/c", true},
		{"a/x", "a/", false},
		{"a*c", "a[*]c", true},
		{"a***c", "a*[*]*c", true},
		{"a****c", "a*[*]*c", false},
		{"a*****c", "a**[*]**c", true},
		{"a******c", "a**[*]**c", false},
		{"aAc", "a[A-Z]c", true},
		{"aBc", "a[A-Z]c", true},
		{"aCc", "a[A-Z]c", true},
		{"aDc", "a[A-Z]c", false},
		{strings.Repeat("a", 50), "*a*a*a*a*a*a*a*a*a*a", true},
		{strings.Repeat("a", 50) + "b", "*a*a*a*a*a*a*a*a*a*a", false},
	}

	for _, tt := range tests {
		got, ok := lib.Match(tt.candidate, tt.pattern)
		if ok != tt.want {
			t.Fatalf("Match(%q, %q) got=%v, want %v", tt.candidate, tt.pattern, ok, tt.want)
		}

		if ok && got != tt.candidate {
			t.Fatalf("Match(%q, %q) must return the candidate, got=%q", tt.candidate, tt.pattern, got)
		}

		if !ok && got != "" {
			t.Fatalf("Match(%q, %q) must return an empty string on failure, got=%q", tt.candidate, tt.pattern, got)
		}
	}
}

func TestMatchWindows(t *testing.T) {
	t.Parallel()

	lib := NewFor(Windows)
	tests := []fnCase{
		{`C:\Src\Init.LUA`, "c:/src/*.lua", true},
		{`D:\src\init.lua`, "c:/src/*.lua", false},
		{`src\init.lua`, "c:/src/*.lua", false},
		{`\\srv\share\a.txt`, `//SRV/SHARE/*.txt`, true},
		{`x\Y\z`, "y/z", true},
	}

	for _, tt := range tests {
		if _, ok := lib.Match(tt.candidate, tt.pattern); ok != tt.want {
			t.Fatalf("Match(%q, %q) got=%v, want %v", tt.candidate, tt.pattern, ok, tt.want)
		}
	}
}

func TestCompilePathReuse(t *testing.T) {
	t.Parallel()

	lib := NewFor(Posix)
	pp := lib.CompilePath("src/*.go")
	if pp.String() != "src/*.go" {
		t.Fatalf("String() got=%q", pp.String())
	}

	for _, candidate := range []string{"src/a.go", "/home/u/src/b.go"} {
		if !pp.Match(candidate) {
			t.Fatalf("%q must match", candidate)
		}
	}

	if pp.Match("src/a/b.go") {
		t.Fatalf("a component pattern must not cross separators")
	}

	if lib.CompilePath("src/*.go") != pp {
		t.Fatalf("a cached pattern must be reused")
	}
}

func TestCompilePathWithoutCache(t *testing.T) {
	t.Parallel()

	lib, err := New(Options{Platform: "posix", PatternCacheSize: -1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if lib.cache != nil {
		t.Fatalf("negative cache size must disable caching")
	}

	if lib.CompilePath("*.go") == lib.CompilePath("*.go") {
		t.Fatalf("uncached compilation must return fresh patterns")
	}

	if _, ok := lib.Match("a.go", "*.go"); !ok {
		t.Fatalf("a.go must match without a cache")
	}
}
