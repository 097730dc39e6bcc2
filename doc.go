// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lpath

/*
Package lpath implements lpath-compatible path string semantics for POSIX and Windows
together with an fnmatch/glob style pattern matcher.

All path operations are pure string transformations. They never touch the filesystem
except Abs, Rel, Resolve and Cwd, which ask an Environment.

Basic flow:
  - create a library for one platform (`New`, `NewFor`)
  - join and normalize arguments (`Concat`, `Path`)
  - take paths apart (`Drive`, `Root`, `Anchor`, `Parent`, `Name`, `Stem`, `Suffix`, `Suffixes`, `Parts`, `Part`)
  - match names and paths (`Fnmatch`, `Match`, `Glob`, `CompilePattern`, `CompilePath`)
  - resolve against an environment (`Abs`, `Rel`, `Resolve`, `Cwd`)

Pattern syntax differs from POSIX glob:
  - "?" matches exactly one byte, separators included
  - "[abc]" and "[!abc]" match one byte of a class
  - "[X-Y]" accepts X and the two bytes after it and ignores Y, so "[A-Z]" means A, B or C
  - "*" matches any run of bytes, shortest first; a literal "*" in the input is consumed as-is
  - in glob mode "*" stops in front of a separator and a "**" segment spans directories

For ordered include/exclude selection, use `RuleSet`:
  - parse rules from text (`ParseRules`) or load them (`LoadRulesFile`)
  - or read them from a YAML/TOML config (`LoadConfigFile`)
  - compile (`NewRuleSet`) and ask for a decision (`Decide` / `Included` / `Excluded`)
  - build extension lists with `SuffixRules`
  - for per-directory rules files over an afero filesystem, use `RuleTree`

The luapath subpackage exposes the library as a gopher-lua module.
*/
package lpath
