// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lpath

package lpath

import (
	"fmt"
	"log/slog"
)

// Lib exposes path operations for one platform.
//
// Pure operations are safe for concurrent use. Abs, Rel, Resolve and Cwd
// are as safe as the configured Environment.
type Lib struct {
	// rules are the platform path rules.
	rules Platform
	// env answers resolution queries.
	env Environment
	// logger receives collaborator failures.
	logger *slog.Logger
	// cache stores compiled whole-path patterns, nil when disabled.
	cache *patternCache
}

// New creates a Lib from options.
func New(opts Options) (*Lib, error) {
	opts.applyDefaults()

	rules, err := PlatformByName(opts.Platform)
	if err != nil {
		return nil, fmt.Errorf("select platform: %w", err)
	}

	lib := &Lib{
		rules:  rules,
		env:    opts.Environment,
		logger: opts.Logger,
	}

	if opts.PatternCacheSize > 0 {
		lib.cache = newPatternCache(opts.PatternCacheSize, opts.Logger)
	}

	return lib, nil
}

// NewFor creates a Lib for platform p with default options.
func NewFor(p Platform) *Lib {
	opts := Options{}
	opts.applyDefaults()
	return &Lib{
		rules:  p,
		env:    opts.Environment,
		logger: opts.Logger,
		cache:  newPatternCache(opts.PatternCacheSize, opts.Logger),
	}
}

// Platform returns the path rules of l.
func (l *Lib) Platform() Platform {
	return l.rules
}

// Info returns platform path constants.
func (l *Lib) Info() Info {
	return infoFor(l.rules)
}
