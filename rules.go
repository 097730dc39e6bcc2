// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lpath

package lpath

import (
	"fmt"
	"slices"
	"strings"
)

// RuleSet evaluates path decisions against compiled ordered rules.
type RuleSet struct {
	// patterns are compiled rule patterns in input order.
	patterns []*PathPattern
	// rules are the source rules.
	rules []Rule
	// defaultAction applies when no rule matched.
	defaultAction Action
}

// NewRuleSet compiles ordered rules with the path rules of lib.
func NewRuleSet(lib *Lib, rules []Rule, opts RuleSetOptions) (*RuleSet, error) {
	opts.applyDefaults()

	patterns := make([]*PathPattern, 0, len(rules))
	for i, rule := range rules {
		if !rule.Action.valid() {
			return nil, fmt.Errorf("%w: rule %d: unsupported action %d", ErrInvalidRule, i, rule.Action)
		}

		if strings.TrimSpace(rule.Pattern) == "" {
			return nil, fmt.Errorf("%w: rule %d: empty pattern", ErrInvalidRule, i)
		}

		patterns = append(patterns, lib.CompilePath(rule.Pattern))
	}

	return &RuleSet{
		patterns:      patterns,
		rules:         slices.Clone(rules),
		defaultAction: opts.DefaultAction,
	}, nil
}

// Decide returns deterministic include/exclude decision for one path.
//
// Decision policy:
// - last matched rule wins
// - if no rule matched, default action is used
func (s *RuleSet) Decide(path string) MatchResult {
	res := MatchResult{
		Included:  s.defaultAction == ActionInclude,
		RuleIndex: -1,
	}

	for i, pattern := range s.patterns {
		if !pattern.Match(path) {
			continue
		}

		res.Matched = true
		res.RuleIndex = i
		res.Included = s.rules[i].Action == ActionInclude
	}

	return res
}

// Included reports whether path is included by decision policy.
func (s *RuleSet) Included(path string) bool {
	return s.Decide(path).Included
}

// Excluded reports whether path is excluded by decision policy.
func (s *RuleSet) Excluded(path string) bool {
	return !s.Decide(path).Included
}

// Rules returns a copy of the source rules.
func (s *RuleSet) Rules() []Rule {
	return slices.Clone(s.rules)
}

// MergeRules concatenates rule lists preserving input order.
func MergeRules(ruleSets ...[]Rule) []Rule {
	return slices.Concat(ruleSets...)
}
