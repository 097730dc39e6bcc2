// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lpath

package lpath

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"
)

const defaultRulesFileName = ".lpathrules"

// RuleTreeOptions configures a RuleTree.
type RuleTreeOptions struct {
	// RulesFileName is the rules file read in every directory of the path
	// chain. Empty defaults to ".lpathrules".
	RulesFileName string `json:"rules_file_name,omitempty" yaml:"rules_file_name,omitempty" toml:"rules_file_name,omitempty"`
	// BaseRules are evaluated before any directory rules.
	BaseRules []Rule `json:"base_rules,omitempty" yaml:"base_rules,omitempty" toml:"base_rules,omitempty"`
	// DefaultAction applies when no rule matched anywhere.
	DefaultAction Action `json:"default_action,omitempty" yaml:"default_action,omitempty" toml:"default_action,omitempty"`
}

// RuleTree decides paths with rules files found along their directory chain.
//
// A rules file in directory D applies to paths below D, matched relative to
// D. Deeper files are evaluated later, so their matches win.
type RuleTree struct {
	// lib splits candidate paths.
	lib *Lib
	// fs holds the tree.
	fs afero.Fs
	// base evaluates BaseRules.
	base *RuleSet
	// dirs caches loaded directory rules by slash-joined relative directory.
	dirs map[string]*cachedDirRules
	// root is the tree root inside fs.
	root string
	// rulesFileName is the per-directory rules file name.
	rulesFileName string

	// mu guards dirs.
	mu sync.Mutex
	// defaultAction applies when nothing matched.
	defaultAction Action
}

// cachedDirRules stores one directory rule set or its load error.
type cachedDirRules struct {
	// set is nil when the directory has no rules file.
	set *RuleSet
	// err is replayed to every later caller.
	err error
	// loading reports whether another goroutine is reading the file.
	loading bool
	// wg coordinates concurrent waiters for one load.
	wg sync.WaitGroup
}

// NewRuleTree creates a rule tree rooted at root inside fs.
func NewRuleTree(lib *Lib, fs afero.Fs, root string, opts RuleTreeOptions) (*RuleTree, error) {
	ropts := RuleSetOptions{DefaultAction: opts.DefaultAction}
	ropts.applyDefaults()

	base, err := NewRuleSet(lib, opts.BaseRules, ropts)
	if err != nil {
		return nil, fmt.Errorf("compile base rules: %w", err)
	}

	name, err := cleanRulesFileName(opts.RulesFileName)
	if err != nil {
		return nil, err
	}

	return &RuleTree{
		lib:           lib,
		fs:            fs,
		base:          base,
		dirs:          make(map[string]*cachedDirRules),
		root:          root,
		rulesFileName: name,
		defaultAction: ropts.DefaultAction,
	}, nil
}

// Decide returns the decision for a path relative to the tree root.
//
// Base rules go first, then rules files from the root down to the directory
// containing the path. Last match wins.
func (t *RuleTree) Decide(relPath string) (MatchResult, error) {
	_, _, parts, absolute := t.lib.components([]string{relPath})
	if absolute || len(parts) == 0 || parts[0].isDotDot() {
		return MatchResult{}, fmt.Errorf("%w: %q", ErrPathOutsideRoot, relPath)
	}

	res := t.base.Decide(string(join(t.lib.rules, "", parts)))

	for depth := 0; depth < len(parts); depth++ {
		set, err := t.dirRules(parts[:depth])
		if err != nil {
			return MatchResult{}, err
		}

		if set == nil {
			continue
		}

		decision := set.Decide(string(join(t.lib.rules, "", parts[depth:])))
		if decision.Matched {
			res = decision
		}
	}

	return res, nil
}

// Included reports whether relPath is included.
func (t *RuleTree) Included(relPath string) (bool, error) {
	res, err := t.Decide(relPath)
	if err != nil {
		return false, err
	}

	return res.Included, nil
}

// Excluded reports whether relPath is excluded.
func (t *RuleTree) Excluded(relPath string) (bool, error) {
	included, err := t.Included(relPath)
	if err != nil {
		return false, err
	}

	return !included, nil
}

// dirRules returns the cached or newly loaded rules of one directory.
func (t *RuleTree) dirRules(dir []span) (*RuleSet, error) {
	names := make([]string, len(dir))
	for i, d := range dir {
		names[i] = string(d)
	}

	key := strings.Join(names, "/")

	t.mu.Lock()
	cached, ok := t.dirs[key]
	if ok {
		loading := cached.loading
		t.mu.Unlock()
		if loading {
			cached.wg.Wait()
		}

		return cached.set, cached.err
	}

	cached = &cachedDirRules{
		loading: true,
	}
	cached.wg.Add(1)
	t.dirs[key] = cached
	t.mu.Unlock()

	set, err := t.loadDirRules(names)

	t.mu.Lock()
	cached.set = set
	cached.err = err
	cached.loading = false
	cached.wg.Done()
	t.mu.Unlock()

	return set, err
}

// loadDirRules reads and compiles one directory rules file.
func (t *RuleTree) loadDirRules(dir []string) (*RuleSet, error) {
	elems := append([]string{t.root}, dir...)
	rulesPath := filepath.Join(append(elems, t.rulesFileName)...)

	content, err := afero.ReadFile(t.fs, rulesPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("read %s: %w", rulesPath, err)
	}

	rules, err := ParseRules(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", rulesPath, err)
	}

	set, err := NewRuleSet(t.lib, rules, RuleSetOptions{DefaultAction: t.defaultAction})
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", rulesPath, err)
	}

	t.lib.logger.Debug("rules file loaded",
		slog.String("path", rulesPath),
		slog.Int("rules", len(rules)),
	)

	return set, nil
}

// cleanRulesFileName validates a per-directory rules file name.
func cleanRulesFileName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		name = defaultRulesFileName
	}

	if filepath.IsAbs(name) || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidRulesFileName, raw)
	}

	return name, nil
}
