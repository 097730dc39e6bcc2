// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lpath

package lpath

import (
	"errors"
	"testing"
)

func TestSpanAccessors(t *testing.T) {
	t.Parallel()

	s := span("abc")
	if s.first() != 'a' || s.second() != 'b' || s.last() != 'c' || s.lastN(2) != 'a' {
		t.Fatalf("accessors returned wrong bytes")
	}

	if s.lastN(3) != 0 || s.lastN(-1) != 0 || span("").first() != 0 || span("a").second() != 0 {
		t.Fatalf("out of range accessors must return zero")
	}

	if s.sub(-1) != "abc" || s.sub(1) != "bc" || s.sub(9) != "" {
		t.Fatalf("sub must clamp its start")
	}

	if s.cat("") != "abc" || span("").cat(s) != "abc" || s.cat("d") != "abcd" {
		t.Fatalf("cat returned wrong spans")
	}
}

func TestSpanPrefixes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		unicode bool
		drive   bool
	}{
		{`\\?\C:\x`, true, false},
		{`//?/C:/x`, true, false},
		{`\\?\`, true, false},
		{`\\?`, false, false},
		{`\/?\x`, false, false},
		{`c:x`, false, true},
		{`1:x`, false, false},
		{`C`, false, false},
	}

	for _, tt := range tests {
		s := span(tt.in)
		if s.hasUnicodePrefix() != tt.unicode {
			t.Fatalf("hasUnicodePrefix(%q) must be %v", tt.in, tt.unicode)
		}

		if s.hasDrivePrefix() != tt.drive {
			t.Fatalf("hasDrivePrefix(%q) must be %v", tt.in, tt.drive)
		}
	}
}

func TestSpanFold(t *testing.T) {
	t.Parallel()

	if !span(`C:\Dir`).equalFold(`c:/dIR`) {
		t.Fatalf("equalFold must fold case and separators")
	}

	if span("a.b").equalFold("a/b") || span("ab").equalFold("abc") {
		t.Fatalf("equalFold must reject different spans")
	}

	if got := asciiUpper("c:\\ÿx"); got != "C:\\ÿX" {
		t.Fatalf("asciiUpper got=%q", got)
	}

	in := span("C:")
	if got := asciiUpper(in); got != in {
		t.Fatalf("asciiUpper must return upper-case input unchanged")
	}
}

func TestSpanDots(t *testing.T) {
	t.Parallel()

	if !span(".").isDot() || span("..").isDot() || !span("..").isDotDot() || span("...").isDotDot() {
		t.Fatalf("isDot/isDotDot disagree")
	}

	if !span("a.").endsWithDot() || !span("a..").endsWithDots() || span(".").endsWithDots() {
		t.Fatalf("endsWithDot/endsWithDots disagree")
	}
}

func TestBuilder(t *testing.T) {
	t.Parallel()

	b := newBuilder(4)
	if b.last() != 0 || b.len() != 0 {
		t.Fatalf("empty builder must report zero")
	}

	b.write("ab")
	b.writeByte('/')
	if b.len() != 3 || b.last() != '/' {
		t.Fatalf("len=%d last=%q", b.len(), b.last())
	}

	if got := b.span(); got != "ab/" {
		t.Fatalf("got=%q, want %q", got, "ab/")
	}
}

func TestNewOptions(t *testing.T) {
	t.Parallel()

	if _, err := New(Options{Platform: "plan9"}); !errors.Is(err, ErrUnknownPlatform) {
		t.Fatalf("err=%v, want ErrUnknownPlatform", err)
	}

	lib, err := New(Options{Platform: "windows"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if lib.Platform() != Windows || lib.cache == nil || lib.cache.limit != defaultPatternCacheSize {
		t.Fatalf("zero options must select defaults")
	}

	if _, ok := lib.env.(OSEnvironment); !ok {
		t.Fatalf("nil environment must default to OSEnvironment")
	}

	cfg := Config{Platform: "posix", PatternCacheSize: 8}
	if opts := cfg.Options(); opts.Platform != "posix" || opts.PatternCacheSize != 8 {
		t.Fatalf("Config.Options got=%+v", opts)
	}
}
