// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lpath

package lpath

import "slices"

// canonSplit strips anchor from path, splits the rest into components and
// elides "." and resolvable "..".
//
// Surviving leading ".." are kept unless ignorePreceding is set.
func canonSplit(p Platform, anchor, path span, ignoreLastSep, ignorePreceding bool) []span {
	if len(path) < len(anchor) {
		return nil
	}

	path = path.sub(len(anchor))
	if ignoreLastSep && len(path) > 0 && p.IsSeparator(path.last()) {
		path = path[:len(path)-1]
	}

	if len(path) == 0 {
		return nil
	}

	return elide(split(p, path), ignorePreceding)
}

// split cuts path at every separator; empty gaps become empty components.
func split(p Platform, path span) []span {
	out := make([]span, 0, 8)
	start := 0
	for i := 0; i < len(path); i++ {
		if !p.IsSeparator(path[i]) {
			continue
		}

		out = append(out, path[start:i])
		start = i + 1
	}

	return append(out, path[start:])
}

// elide drops "." and cancels ".." against preceding components, scanning backwards.
func elide(parts []span, ignorePreceding bool) []span {
	kept := make([]span, 0, len(parts))
	pending := 0
	for i := len(parts) - 1; i >= 0; i-- {
		part := parts[i]
		switch {
		case part.isDot():
			continue
		case part.isDotDot():
			pending++
			continue
		case pending > 0:
			pending--
			continue
		}

		kept = append(kept, part)
	}

	slices.Reverse(kept)
	if ignorePreceding || pending == 0 {
		return kept
	}

	out := make([]span, 0, pending+len(kept))
	for range pending {
		out = append(out, "..")
	}

	return append(out, kept...)
}

// join writes anchor followed by parts separated by the platform separator.
func join(p Platform, anchor span, parts []span) span {
	if len(parts) == 0 {
		return anchor
	}

	size := len(anchor) + len(parts)
	for _, part := range parts {
		size += len(part)
	}

	b := newBuilder(size)
	b.write(anchor)
	for i, part := range parts {
		if i > 0 {
			b.writeByte(p.Separator())
		}

		b.write(part)
	}

	return b.span()
}

// canon returns the canonical form of path below anchor.
//
// Anchored paths never grow leading "..".
func canon(p Platform, anchor, path span) span {
	return join(p, anchor, canonSplit(p, anchor, path, true, len(anchor) > 0))
}
