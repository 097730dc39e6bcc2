// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lpath

package lpath

// concatRules parameterizes the shared concatenation loop per platform.
type concatRules struct {
	// isSep reports input separator bytes.
	isSep func(c byte) bool
	// skip returns how many leading bytes of a non-first argument are dropped.
	skip func(s span) int
	// sep is written for every separator.
	sep byte
	// noSepAfterColon suppresses the joining separator after a bare drive.
	noSepAfterColon bool
}

// concatFrom concatenates parts[start:] collapsing separator runs.
//
// A leading double separator survives once at the very start of the output.
// An empty result is ".".
func concatFrom(parts []span, start int, r concatRules) span {
	size := 0
	for _, p := range parts[start:] {
		size += len(p) + 1
	}

	b := newBuilder(size)
	for x := start; x < len(parts); x++ {
		str := parts[x]

		if b.len() > 0 {
			last := b.last()
			if !r.isSep(last) && !(r.noSepAfterColon && last == ':') {
				b.writeByte(r.sep)
			}
		}

		if len(str) == 0 {
			continue
		}

		i := 0
		if x > start && r.skip != nil {
			i = r.skip(str)
		}

		skipSep := false
		for ; i < len(str); i++ {
			c := str[i]
			if r.isSep(c) {
				c = r.sep
				if skipSep {
					continue
				}

				if b.len() > 0 && r.isSep(b.last()) {
					if b.len() == 1 {
						if i+1 >= len(str) || !r.isSep(str[i+1]) {
							b.writeByte(c)
							continue
						}

						skipSep = true
					}

					continue
				}
			}

			skipSep = false
			b.writeByte(c)
		}
	}

	if b.len() == 0 {
		return "."
	}

	return b.span()
}
