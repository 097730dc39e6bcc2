// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lpath

package lpath

import (
	"log/slog"
	"strings"
)

// Abs returns the absolute form of the concatenated args.
//
// A trailing separator is kept. On Windows an `\\?\` input prefix is
// stripped before resolution and restored on the result.
func (l *Lib) Abs(args ...string) (string, error) {
	fs := span(l.rules.Concat(args...))
	abs, err := l.env.AbsPath(l.hostPath(fs))
	if err != nil {
		return "", l.opError("abs", string(fs), err)
	}

	sep := string(l.rules.Separator())
	if l.rules.IsSeparator(fs.last()) && !strings.HasSuffix(abs, sep) {
		abs += sep
	}

	if l.rules.Kind() == KindWindows && fs.hasUnicodePrefix() {
		if !strings.HasPrefix(abs, `\`) {
			abs = `\` + abs
		}

		abs = `\\?` + abs
	}

	return abs, nil
}

// Rel returns path relative to base, or to the working directory when base
// is empty.
//
// Paths on different drives come back canonicalized but not relative.
// A result that is empty or still absolute becomes ".".
func (l *Lib) Rel(path, base string) (string, error) {
	fs := span(path)
	target, err := l.env.AbsPath(l.hostPath(fs))
	if err != nil {
		return "", l.opError("rel", path, err)
	}

	var from string
	if base == "" {
		from, err = l.env.WorkingDirectory()
	} else {
		from, err = l.env.AbsPath(l.hostPath(span(base)))
	}

	if err != nil {
		return "", l.opError("rel", path, err)
	}

	if l.rules.Drive(target) != l.rules.Drive(from) {
		return l.Path(path), nil
	}

	rel := string(l.relativize(span(from), span(target)))
	if l.rules.IsSeparator(fs.last()) && !l.rules.IsSeparator(span(rel).last()) && !strings.HasSuffix(rel, "..") {
		rel += string(l.rules.Separator())
	}

	if rel == "" || l.rules.IsAbs(rel) {
		return ".", nil
	}

	return rel, nil
}

// Resolve returns the concatenated args with symlinks resolved.
func (l *Lib) Resolve(args ...string) (string, error) {
	fs := l.rules.Concat(args...)
	resolved, err := l.env.RealPath(l.hostPath(span(fs)))
	if err != nil {
		return "", l.opError("resolve", fs, err)
	}

	return resolved, nil
}

// Cwd returns the working directory of the environment.
func (l *Lib) Cwd() (string, error) {
	dir, err := l.env.WorkingDirectory()
	if err != nil {
		return "", l.opError("cwd", "", err)
	}

	return dir, nil
}

// hostPath strips the Windows escape prefix the environment cannot handle.
//
// `\\?\C:\x` keeps "C:\x"; other escaped forms keep their leading separator.
func (l *Lib) hostPath(s span) string {
	if l.rules.Kind() != KindWindows || !s.hasPrefix(unicodePrefix) {
		return string(s)
	}

	if len(s) >= 6 && s[5] == ':' {
		return string(s[4:])
	}

	return string(s[3:])
}

// relativize returns the lexical path from base to target.
//
// Both are absolute; components compare case-insensitively on Windows.
func (l *Lib) relativize(base, target span) span {
	p := l.rules
	bp := canonSplit(p, span(p.Anchor(string(base))), base, true, true)
	tp := canonSplit(p, span(p.Anchor(string(target))), target, true, true)

	common := 0
	for common < len(bp) && common < len(tp) {
		if p.CaseSensitive() {
			if bp[common] != tp[common] {
				break
			}
		} else if !bp[common].equalFold(tp[common]) {
			break
		}

		common++
	}

	parts := make([]span, 0, len(bp)-common+len(tp)-common)
	for range len(bp) - common {
		parts = append(parts, "..")
	}

	parts = append(parts, tp[common:]...)
	return join(p, "", parts)
}

// opError wraps a collaborator failure and logs it.
func (l *Lib) opError(op, path string, err error) error {
	l.logger.Debug("environment failure",
		slog.String("op", op),
		slog.String("path", path),
		slog.Any("err", err),
	)

	return &OpError{Op: op, Path: path, Err: err}
}
