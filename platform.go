// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lpath

package lpath

import (
	"fmt"
	"runtime"
	"strings"
)

// Kind identifies a platform path convention.
type Kind uint8

const (
	// KindPosix is the POSIX convention: '/' separator, case-sensitive.
	KindPosix Kind = iota
	// KindWindows is the Windows convention: drives, UNC shares, '\' separator.
	KindWindows
)

// String returns the platform name of k.
func (k Kind) String() string {
	if k == KindWindows {
		return "windows"
	}

	return "posix"
}

// Platform is the set of path rules that differ between POSIX and Windows.
//
// Implementations are stateless; Posix and Windows are the only values.
// Every method taking args scans or concatenates them as one path.
type Platform interface {
	// Kind returns the platform convention.
	Kind() Kind
	// Name returns "posix" or "windows".
	Name() string
	// Separator returns the separator byte used for output.
	Separator() byte
	// IsSeparator reports whether c separates components on input.
	IsSeparator(c byte) bool
	// CaseSensitive reports whether names compare case-sensitively.
	CaseSensitive() bool
	// IsAbs reports whether path is absolute.
	IsAbs(path string) bool
	// Drive returns the drive of the right-most argument carrying one.
	Drive(args ...string) string
	// Root returns the root of the right-most argument exposing one.
	Root(args ...string) string
	// Anchor returns Drive(args...) + Root(args...).
	Anchor(args ...string) string
	// Concat joins args into one separator-normalized path.
	Concat(args ...string) string

	sealed()
}

var (
	// Posix implements POSIX path rules.
	Posix Platform = posixRules{}
	// Windows implements Windows path rules.
	Windows Platform = windowsRules{}
)

// native is selected once from the build target.
var native = func() Platform {
	if runtime.GOOS == "windows" {
		return Windows
	}

	return Posix
}()

// Native returns the rules of the platform the program runs on.
func Native() Platform {
	return native
}

// PlatformByName returns rules by name; empty name selects Native.
func PlatformByName(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return Native(), nil
	case "posix", "linux", "unix":
		return Posix, nil
	case "windows", "win":
		return Windows, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlatform, name)
	}
}

// spans converts arguments to spans without copying.
func spans(args []string) []span {
	out := make([]span, len(args))
	for i, a := range args {
		out[i] = span(a)
	}

	return out
}
