// Package feedback implements the per-position ternary scoring of a
// guess against an answer: Green, Yellow, or Black at each position.
package feedback

import (
	"strings"

	"github.com/wordle-tools/solver/core/word"
)

// Color is the per-position result of scoring one letter.
type Color uint8

const (
	Black Color = iota
	Yellow
	Green
)

// Feedback is a dense, comparable value: two L-bit masks (green set,
// yellow set) plus the word length they were computed against. It is
// fully determined by a (guess, answer) pair and is itself a valid map
// key.
type Feedback struct {
	green  uint16
	yellow uint16
	length uint8
}

// FromWords scores guess against answer following the two-pass
// algorithm: pass 1 marks exact-position matches green and consumes
// both positions; pass 2 scans remaining guess positions in order and,
// for each, the first remaining unconsumed answer position with a
// matching letter is marked yellow and consumed. It fails if the two
// words differ in length.
func FromWords(guess, answer word.Word) (Feedback, bool) {
	if guess.Len() != answer.Len() {
		return Feedback{}, false
	}
	n := guess.Len()

	var gLetters, aLetters [word.MaxLen]byte
	for i := 0; i < n; i++ {
		gLetters[i] = guess.At(i)
		aLetters[i] = answer.At(i)
	}

	const consumed = 0xFF
	var green, yellow uint16

	for i := 0; i < n; i++ {
		if gLetters[i] == aLetters[i] {
			green |= 1 << uint(i)
			gLetters[i] = consumed
			aLetters[i] = consumed
		}
	}
	for i := 0; i < n; i++ {
		if gLetters[i] == consumed {
			continue
		}
		for j := 0; j < n; j++ {
			if aLetters[j] != consumed && gLetters[i] == aLetters[j] {
				yellow |= 1 << uint(i)
				aLetters[j] = consumed
				break
			}
		}
	}

	return Feedback{green: green, yellow: yellow, length: uint8(n)}, true
}

// ID computes guess-vs-answer feedback without constructing a Feedback
// value, for use on hot paths. ID(g,a) == FromWords(g,a).ToID().
func ID(guess, answer word.Word) uint32 {
	n := guess.Len()
	var gLetters, aLetters [word.MaxLen]byte
	for i := 0; i < n; i++ {
		gLetters[i] = guess.At(i)
		aLetters[i] = answer.At(i)
	}

	const consumed = 0xFF
	var id uint32
	w := uint32(1)
	for i := 0; i < n; i++ {
		if gLetters[i] == aLetters[i] {
			id += 2 * w
			gLetters[i] = consumed
			aLetters[i] = consumed
		}
		w *= 3
	}

	w = 1
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if gLetters[i] != consumed && aLetters[j] != consumed && gLetters[i] == aLetters[j] {
				id += w
				aLetters[j] = consumed
				break
			}
		}
		w *= 3
	}

	return id
}

// FromID is the inverse of ToID over the dense 0..3^L index space:
// digit d at position i (base 3, least-significant first) is 0=black,
// 1=yellow, 2=green.
func FromID(id uint32, length uint8) Feedback {
	var fb Feedback
	fb.length = length
	for i := uint8(0); i < length; i++ {
		switch id % 3 {
		case 2:
			fb.green |= 1 << uint(i)
		case 1:
			fb.yellow |= 1 << uint(i)
		}
		id /= 3
	}
	return fb
}

// ToID maps fb onto its dense index in 0..3^L.
func (fb Feedback) ToID() uint32 {
	var id uint32
	w := uint32(1)
	for i := uint8(0); i < fb.length; i++ {
		if fb.green&(1<<uint(i)) != 0 {
			id += 2 * w
		} else if fb.yellow&(1<<uint(i)) != 0 {
			id += w
		}
		w *= 3
	}
	return id
}

// Len returns the word length fb was computed for.
func (fb Feedback) Len() int {
	return int(fb.length)
}

// At returns the Color at position i.
func (fb Feedback) At(i int) Color {
	bit := uint16(1) << uint(i)
	switch {
	case fb.green&bit != 0:
		return Green
	case fb.yellow&bit != 0:
		return Yellow
	default:
		return Black
	}
}

// IsCorrect reports whether every position is green, i.e. guess ==
// answer.
func (fb Feedback) IsCorrect() bool {
	return fb.green == (1<<uint(fb.length))-1
}

// String renders fb as L characters from {G,Y,B}.
func (fb Feedback) String() string {
	var sb strings.Builder
	sb.Grow(int(fb.length))
	for i := 0; i < int(fb.length); i++ {
		switch fb.At(i) {
		case Green:
			sb.WriteByte('G')
		case Yellow:
			sb.WriteByte('Y')
		default:
			sb.WriteByte('B')
		}
	}
	return sb.String()
}

// FromString parses an L-character {G,Y,B} string (case-insensitive)
// into a Feedback.
func FromString(s string) (Feedback, bool) {
	if len(s) > word.MaxLen {
		return Feedback{}, false
	}
	var fb Feedback
	fb.length = uint8(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'G', 'g':
			fb.green |= 1 << uint(i)
		case 'Y', 'y':
			fb.yellow |= 1 << uint(i)
		case 'B', 'b':
		default:
			return Feedback{}, false
		}
	}
	return fb, true
}
