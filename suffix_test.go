// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lpath

package lpath

import "testing"

func TestSuffixRules(t *testing.T) {
	t.Parallel()

	got := SuffixRules(ActionInclude,
		"lua",
		".LUA",
		"*.so",
		" ..cfg  ",
		"",
		"   ",
	)

	want := []Rule{
		{Action: ActionInclude, Pattern: "*.lua"},
		{Action: ActionInclude, Pattern: "*.LUA"},
		{Action: ActionInclude, Pattern: "*.so"},
		{Action: ActionInclude, Pattern: "*.cfg"},
	}

	if len(got) != len(want) {
		t.Fatalf("len(got)=%d, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rule[%d]=%+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSuffixRulesAllowList(t *testing.T) {
	t.Parallel()

	set, err := NewRuleSet(NewFor(Posix), SuffixRules(ActionInclude, "lua", "so"), RuleSetOptions{
		DefaultAction: ActionExclude,
	})
	if err != nil {
		t.Fatalf("NewRuleSet: %v", err)
	}

	if !set.Included("lib/init.lua") {
		t.Fatalf("lib/init.lua must be included")
	}

	if !set.Included("/usr/lib/lua/lfs.so") {
		t.Fatalf("lfs.so must be included")
	}

	if set.Included("README.md") {
		t.Fatalf("README.md must be excluded by default")
	}
}

func TestSuffixRulesEmpty(t *testing.T) {
	t.Parallel()

	if got := SuffixRules(ActionExclude); len(got) != 0 {
		t.Fatalf("len(got)=%d, want 0", len(got))
	}
}
