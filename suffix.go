// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lpath

package lpath

import "strings"

// SuffixRules converts a suffix list to rules matching file names by suffix.
//
// Accepted suffix forms:
//   - "lua"
//   - ".lua"
//   - "*.lua"
//
// Empty values are skipped. Case is kept; matching folds it on Windows.
func SuffixRules(action Action, suffixes ...string) []Rule {
	rules := make([]Rule, 0, len(suffixes))
	for _, suffix := range suffixes {
		suffix = strings.TrimSpace(suffix)
		suffix = strings.TrimPrefix(suffix, "*.")
		suffix = strings.TrimLeft(suffix, ".")
		if suffix == "" {
			continue
		}

		rules = append(rules, Rule{
			Action:  action,
			Pattern: "*." + suffix,
		})
	}

	return rules
}
