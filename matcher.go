// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lpath

package lpath

// matchState is the per-call scratch state of one match.
type matchState struct {
	// active is the wildcard currently extending, nil outside any wildcard.
	active *token
	// input is the candidate.
	input string
	// pos is the cursor into input.
	pos int
	// fold enables case-insensitive comparison.
	fold bool
	// done stops the outer loops once a wildcard matched the chain rest.
	done bool
	// failed aborts every enclosing wildcard.
	failed bool
}

// Match reports whether candidate matches the whole pattern.
//
// A zero Pattern behaves like the empty pattern.
func (p *Pattern) Match(candidate string) bool {
	if p.head == nil || p.head.kind == tokenNever {
		return candidate == ""
	}

	st := matchState{
		input: candidate,
		fold:  p.fold,
	}

	return st.proceed(p.head)
}

// proceed runs the chain from t and reports whether it ends at the input end.
func (st *matchState) proceed(t *token) bool {
	for ; t != nil && !st.done; t = t.next {
		if !st.step(t) || st.failed {
			return false
		}
	}

	return st.pos == len(st.input) && !st.failed
}

// step matches one node at the cursor.
func (st *matchState) step(t *token) bool {
	rest := len(st.input) - st.pos

	switch t.kind {
	case tokenHead:
		return true

	case tokenLiteral:
		if rest < len(t.literal) {
			return false
		}

		for i := 0; i < len(t.literal); i++ {
			if !st.equal(t.literal[i], st.input[st.pos+i]) {
				return false
			}
		}

		st.pos += len(t.literal)
		return true

	case tokenAny:
		if rest < 1 {
			return false
		}

		st.pos++
		return true

	case tokenClass:
		if rest < 1 || !t.class.has(st.input[st.pos]) {
			return false
		}

		st.pos++
		return true

	case tokenWildcard:
		return st.wildcard(t)

	default:
		return false
	}
}

// wildcard extends t one byte at a time, retrying the chain rest each time.
//
// A literal '*' in the input is consumed as-is. A second wildcard started
// while another one is extending fails the whole match when it reaches a
// '*' or runs out of input. In glob mode a plain wildcard stops in front of
// a separator and hands the separator to the next node.
func (st *matchState) wildcard(t *token) bool {
	if st.pos >= len(st.input) {
		return true
	}

	if st.input[st.pos] == '*' {
		st.pos++
		return true
	}

	outer := st.active
	start := st.pos
	for ext := 0; ; ext++ {
		st.pos = start + ext
		rest := len(st.input) - st.pos
		if rest > 0 {
			c := st.input[st.pos]
			if c == '*' {
				if outer != nil {
					st.failed = true
				}

				return false
			}

			if t.glob && !t.double && st.isSeparator(c) {
				st.active = outer
				return true
			}
		}

		st.active = t
		if st.proceed(t.next) {
			st.done = true
			return true
		}

		if rest < 1 || st.failed {
			if outer != nil {
				st.failed = true
			}

			return false
		}
	}
}

// isSeparator reports a separator byte in the candidate.
func (st *matchState) isSeparator(c byte) bool {
	return c == '/' || (st.fold && c == '\\')
}

// equal compares a pattern byte with an input byte.
func (st *matchState) equal(pc, ic byte) bool {
	if !st.fold {
		return pc == ic
	}

	return bytesEqualFold(pc, ic)
}
