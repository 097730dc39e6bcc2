// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lpath

package lpath

import (
	"fmt"
	"log/slog"
	"strings"
)

const defaultPatternCacheSize = 256

// Options configures a Lib.
type Options struct {
	// Environment answers working directory and path resolution queries.
	// Nil defaults to OSEnvironment.
	Environment Environment `json:"-" yaml:"-" toml:"-"`
	// Logger receives debug records about collaborator failures. Nil discards.
	Logger *slog.Logger `json:"-" yaml:"-" toml:"-"`
	// Platform selects path rules: "posix", "windows" or empty for the native ones.
	Platform string `json:"platform,omitempty" yaml:"platform,omitempty" toml:"platform,omitempty"`
	// PatternCacheSize bounds cached compiled whole-path patterns.
	// Zero means 256, negative disables caching.
	PatternCacheSize int `json:"pattern_cache_size,omitempty" yaml:"pattern_cache_size,omitempty" toml:"pattern_cache_size,omitempty"`
}

// applyDefaults fills zero-valued options with defaults.
func (opts *Options) applyDefaults() {
	if opts.Environment == nil {
		opts.Environment = OSEnvironment{}
	}

	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	if opts.PatternCacheSize == 0 {
		opts.PatternCacheSize = defaultPatternCacheSize
	}
}

// Action represents a decision action of one rule.
type Action uint8

const (
	// ActionUnknown is unset/invalid action placeholder.
	ActionUnknown Action = iota
	// ActionExclude means matching path should be excluded.
	ActionExclude
	// ActionInclude means matching path should be included.
	ActionInclude
)

// valid reports whether action value is supported.
func (a Action) valid() bool {
	return a == ActionExclude || a == ActionInclude
}

// String returns "exclude", "include" or "unknown".
func (a Action) String() string {
	switch a {
	case ActionExclude:
		return "exclude"
	case ActionInclude:
		return "include"
	default:
		return "unknown"
	}
}

// MarshalText encodes the action name.
func (a Action) MarshalText() ([]byte, error) {
	if !a.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAction, a)
	}

	return []byte(a.String()), nil
}

// UnmarshalText decodes "exclude" or "include".
func (a *Action) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "exclude":
		*a = ActionExclude
	case "include":
		*a = ActionInclude
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAction, text)
	}

	return nil
}

// Rule is one user-visible path rule.
type Rule struct {
	// Pattern is a whole-path pattern evaluated with Lib.Match semantics.
	Pattern string `json:"pattern" yaml:"pattern" toml:"pattern"`
	// Action is a decision action applied when the rule matches.
	Action Action `json:"action" yaml:"action" toml:"action"`
}

// RuleSetOptions controls rule set decisions.
type RuleSetOptions struct {
	// DefaultAction is applied when no rule matched.
	DefaultAction Action `json:"default_action,omitempty" yaml:"default_action,omitempty" toml:"default_action,omitempty"`
}

// applyDefaults fills zero-valued options with defaults.
func (opts *RuleSetOptions) applyDefaults() {
	if !opts.DefaultAction.valid() {
		opts.DefaultAction = ActionInclude
	}
}

// MatchResult is a deterministic decision produced by a rule set.
type MatchResult struct {
	// Included reports final include decision.
	Included bool `json:"included" yaml:"included"`
	// Matched reports whether at least one rule matched.
	Matched bool `json:"matched" yaml:"matched"`
	// RuleIndex is the matched rule index in input order, -1 when no match.
	RuleIndex int `json:"rule_index" yaml:"rule_index"`
}

// Config is the file form of Options plus an optional rule set.
type Config struct {
	// Platform selects path rules, see Options.Platform.
	Platform string `json:"platform,omitempty" yaml:"platform,omitempty" toml:"platform,omitempty"`
	// Rules are evaluated in order, last match wins.
	Rules []Rule `json:"rules,omitempty" yaml:"rules,omitempty" toml:"rules,omitempty"`
	// PatternCacheSize bounds the compiled pattern cache, see Options.PatternCacheSize.
	PatternCacheSize int `json:"pattern_cache_size,omitempty" yaml:"pattern_cache_size,omitempty" toml:"pattern_cache_size,omitempty"`
	// DefaultAction applies when no rule matched.
	DefaultAction Action `json:"default_action,omitempty" yaml:"default_action,omitempty" toml:"default_action,omitempty"`
}

// Options returns runtime options described by the config.
func (c Config) Options() Options {
	return Options{
		Platform:         c.Platform,
		PatternCacheSize: c.PatternCacheSize,
	}
}

// RuleSet compiles the config rules against lib.
func (c Config) RuleSet(lib *Lib) (*RuleSet, error) {
	return NewRuleSet(lib, c.Rules, RuleSetOptions{DefaultAction: c.DefaultAction})
}

// Info holds platform path constants.
type Info struct {
	Platform string `json:"platform" yaml:"platform"`
	Sep      string `json:"sep" yaml:"sep"`
	AltSep   string `json:"altsep" yaml:"altsep"`
	CurDir   string `json:"curdir" yaml:"curdir"`
	ParDir   string `json:"pardir" yaml:"pardir"`
	ExtSep   string `json:"extsep" yaml:"extsep"`
	DevNull  string `json:"devnull" yaml:"devnull"`
	PathSep  string `json:"pathsep" yaml:"pathsep"`
}

// infoFor returns the constants of platform p.
func infoFor(p Platform) Info {
	info := Info{
		Platform: p.Name(),
		Sep:      string(p.Separator()),
		AltSep:   "/",
		CurDir:   ".",
		ParDir:   "..",
		ExtSep:   ".",
		DevNull:  "/dev/null",
		PathSep:  ":",
	}

	if p.Kind() == KindWindows {
		info.DevNull = "nul"
		info.PathSep = ";"
	}

	return info
}
