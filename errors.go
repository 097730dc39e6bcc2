// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lpath

package lpath

import "errors"

// Sentinel errors for lpath operations.
var (
	// ErrUnknownPlatform indicates an unsupported platform name.
	ErrUnknownPlatform = errors.New("unknown platform")
	// ErrUnsupportedConfig indicates a config file format that cannot be decoded.
	ErrUnsupportedConfig = errors.New("unsupported config format")
	// ErrInvalidRule indicates malformed or unsupported rule input.
	ErrInvalidRule = errors.New("invalid rule")
	// ErrInvalidAction indicates an unknown action name.
	ErrInvalidAction = errors.New("invalid action")
	// ErrPathOutsideRoot indicates a rule tree path that is absolute or climbs above the root.
	ErrPathOutsideRoot = errors.New("path outside root")
	// ErrInvalidRulesFileName indicates a rules file name that is not a plain base name.
	ErrInvalidRulesFileName = errors.New("invalid rules file name")
)

// OpError is a failure of the environment collaborator, tagged with the
// operation that asked for it.
type OpError struct {
	// Op is the originating operation: "abs", "rel", "resolve" or "cwd".
	Op string
	// Path is the operation input, empty for "cwd".
	Path string
	// Err is the collaborator error, passed through unchanged.
	Err error
}

// Error formats the failure as "op:path: err".
func (e *OpError) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}

	return e.Op + ":" + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the collaborator error.
func (e *OpError) Unwrap() error {
	return e.Err
}
