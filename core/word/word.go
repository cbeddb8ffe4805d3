// Package word implements the fixed-length Latin-letter sequence that
// every guess and answer in the solver is built from.
package word

import (
	"fmt"
	"strings"
)

// MaxLen is the longest word the solver supports. Feedback packs two
// bitmasks of this many bits, so it also bounds Feedback's storage.
const MaxLen = 15

// Word is an immutable, fixed-length sequence of uppercase Latin
// letters. Equality, ordering, and hashing (via the string form, when
// used as a map key) are by letter sequence.
type Word struct {
	letters [MaxLen]byte
	length  uint8
}

// FromString builds a Word from s, uppercasing it first. It fails if s
// is longer than MaxLen or contains a non-letter.
func FromString(s string) (Word, bool) {
	if len(s) > MaxLen {
		return Word{}, false
	}
	var w Word
	w.length = uint8(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		case c >= 'A' && c <= 'Z':
		default:
			return Word{}, false
		}
		w.letters[i] = c - 'A'
	}
	return w, true
}

// MustFromString is FromString but panics on malformed input. It is
// meant for constants and test fixtures where the word is known good.
func MustFromString(s string) Word {
	w, ok := FromString(s)
	if !ok {
		panic(fmt.Sprintf("word: invalid word %q", s))
	}
	return w
}

// Len returns the number of letters in w.
func (w Word) Len() int {
	return int(w.length)
}

// At returns the uppercase letter at position i, or 0 if i is out of
// range.
func (w Word) At(i int) byte {
	if i < 0 || i >= int(w.length) {
		return 0
	}
	return w.letters[i] + 'A'
}

// String renders w as its uppercase letter sequence.
func (w Word) String() string {
	var sb strings.Builder
	sb.Grow(int(w.length))
	for i := 0; i < int(w.length); i++ {
		sb.WriteByte(w.letters[i] + 'A')
	}
	return sb.String()
}

// Equal reports whether w and other hold the same letter sequence.
func (w Word) Equal(other Word) bool {
	if w.length != other.length {
		return false
	}
	return w.letters == other.letters
}

// Less gives Word a total order by letter sequence, lowest position
// first; used to break heuristic ties deterministically when desired.
func (w Word) Less(other Word) bool {
	n := int(w.length)
	if int(other.length) < n {
		n = int(other.length)
	}
	for i := 0; i < n; i++ {
		if w.letters[i] != other.letters[i] {
			return w.letters[i] < other.letters[i]
		}
	}
	return w.length < other.length
}
