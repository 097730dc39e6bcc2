// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lpath

package lpath

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// utf8BOM is stripped from the first line; Windows editors write it.
const utf8BOM = "\ufeff"

// ParseRules reads one pattern per line.
//
// A plain line excludes, a "!" line includes. Blank lines and "#" comments
// are skipped; "\#" and "\!" make the marker literal. Trailing blanks are
// dropped unless the last one is escaped with "\". CRLF endings and a
// leading UTF-8 BOM are accepted.
func ParseRules(r io.Reader) ([]Rule, error) {
	s := bufio.NewScanner(r)
	rules := make([]Rule, 0, 16)

	n := 0
	for s.Scan() {
		n++
		line := s.Text()
		if n == 1 {
			line = strings.TrimPrefix(line, utf8BOM)
		}

		if rule, ok := parseRuleLine(line); ok {
			rules = append(rules, rule)
		}
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan rules after line %d: %w", n, err)
	}

	return rules, nil
}

// ParseRulesString parses rules from string input.
func ParseRulesString(src string) ([]Rule, error) {
	return ParseRules(strings.NewReader(src))
}

// parseRuleLine converts one line; false means the line holds no rule.
func parseRuleLine(line string) (Rule, bool) {
	line = trimTrailingSpaces(strings.TrimSuffix(line, "\r"))

	rule := Rule{Action: ActionExclude}
	switch {
	case line == "", line[0] == '#':
		return Rule{}, false
	case line[0] == '!':
		rule.Action = ActionInclude
		line = line[1:]
	case strings.HasPrefix(line, `\!`), strings.HasPrefix(line, `\#`):
		line = line[1:]
	}

	if line == "" {
		return Rule{}, false
	}

	rule.Pattern = line
	return rule, true
}

// trimTrailingSpaces drops trailing blanks; an escaped last blank survives
// without its backslash.
func trimTrailingSpaces(s string) string {
	end := len(s)
	for end > 0 && (s[end-1] == ' ' || s[end-1] == '\t') {
		if end >= 2 && s[end-2] == '\\' {
			return s[:end-2] + s[end-1:end]
		}

		end--
	}

	return s[:end]
}
