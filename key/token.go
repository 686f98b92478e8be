// Package key defines the token alphabet and sequence primitives the KUI
// matcher operates on. A token is any non-negative integer; zero is reserved
// as the sequence terminator and must never appear inside a key or value
// sequence. Ordinary input bytes and named logical keys (see kui/term) share
// this same integer space but occupy disjoint ranges.
package key

// Token is a single element of the key alphabet. Zero is the terminator
// sentinel; it must not occur inside a Sequence.
type Token int32

// Zero is the reserved terminator value.
const Zero Token = 0

// RawNUL represents a literal NUL byte (0x00) read from an input source,
// e.g. Ctrl-@. It is distinct from Zero so a genuine NUL keystroke is never
// mistaken for "no data arrived within timeout" or an end-of-sequence
// marker; kui/source maps a raw 0x00 byte to RawNUL rather than Token(0).
// It is the largest Token value, so it stays non-negative and outside both
// the byte range and kui/term's named-key range.
const RawNUL Token = 1<<31 - 1

// FromByte converts a raw input byte into its Token representation,
// remapping the one byte value (0x00) that would otherwise collide with
// Zero.
func FromByte(b byte) Token {
	if b == 0 {
		return RawNUL
	}
	return Token(b)
}

// Sequence is a finite, conceptually zero-terminated list of tokens. Slices
// built by NewSequence always carry a trailing Zero; callers that
// build sequences by hand must do the same.
type Sequence []Token

// NewSequence builds a zero-terminated Sequence from the given tokens.
func NewSequence(tokens ...Token) Sequence {
	s := make(Sequence, len(tokens)+1)
	copy(s, tokens)
	s[len(tokens)] = Zero
	return s
}

// Len returns the index of the first Zero token, i.e. the sequence's logical
// length excluding the terminator.
func Len(s Sequence) int {
	for i, t := range s {
		if t == Zero {
			return i
		}
	}
	return len(s)
}

// Cmp lexicographically compares two sequences to completion. A sequence
// that is a strict prefix of another orders before it.
func Cmp(a, b Sequence) int {
	for i := 0; ; i++ {
		at, bt := at(a, i), at(b, i)
		switch {
		case at == Zero && bt == Zero:
			return 0
		case at == Zero:
			return -1
		case bt == Zero:
			return 1
		case at < bt:
			return -1
		case at > bt:
			return 1
		}
	}
}

// CmpN compares the first n positions of two sequences, with the same
// early-termination-on-Zero convention as Cmp.
func CmpN(a, b Sequence, n int) int {
	for i := 0; i < n; i++ {
		at, bt := at(a, i), at(b, i)
		switch {
		case at == Zero && bt == Zero:
			return 0
		case at == Zero:
			return -1
		case bt == Zero:
			return 1
		case at < bt:
			return -1
		case at > bt:
			return 1
		}
	}
	return 0
}

// at returns the token at index i, or Zero if i runs past the slice — this
// lets Cmp/CmpN treat a short Go slice (no stored terminator) the same as a
// properly zero-terminated one.
func at(s Sequence, i int) Token {
	if i >= len(s) {
		return Zero
	}
	return s[i]
}
