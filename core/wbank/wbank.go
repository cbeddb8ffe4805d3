// Package wbank loads and samples (guess, answer) word-bank pairs.
package wbank

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/wordle-tools/solver/core/word"
)

// WordBank is an immutable pair (Guesses, Answers) of Words of the
// same length, where Answers is a subset of Guesses.
type WordBank struct {
	Guesses []word.Word
	Answers []word.Word
	WordLen uint8
}

// Load reads the CSV word-bank file at path (header row
// "word,kind,length"), keeping only rows whose length column equals
// wordLen. kind "A" rows are added to both Answers and Guesses; kind
// "G" rows are guess-only.
func Load(path string, wordLen uint8) (*WordBank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wbank: open %s: %w", path, err)
	}
	defer f.Close()
	return load(f, wordLen)
}

// LoadReader is Load for a caller that already has the CSV bytes in
// hand (e.g. an embedded asset) instead of a filesystem path.
func LoadReader(r io.Reader, wordLen uint8) (*WordBank, error) {
	return load(r, wordLen)
}

func load(r io.Reader, wordLen uint8) (*WordBank, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil { // header
		return nil, fmt.Errorf("wbank: reading header: %w", err)
	}

	wb := &WordBank{WordLen: wordLen}
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("wbank: malformed row: %w", err)
		}
		if len(rec) < 3 {
			return nil, fmt.Errorf("wbank: malformed row %v: expected 3 columns", rec)
		}
		var length int
		if _, err := fmt.Sscanf(rec[2], "%d", &length); err != nil {
			return nil, fmt.Errorf("wbank: malformed length %q: %w", rec[2], err)
		}
		if uint8(length) != wordLen {
			continue
		}
		w, ok := word.FromString(rec[0])
		if !ok {
			return nil, fmt.Errorf("wbank: malformed word %q", rec[0])
		}
		switch rec[1] {
		case "A":
			wb.Answers = append(wb.Answers, w)
			wb.Guesses = append(wb.Guesses, w)
		case "G":
			wb.Guesses = append(wb.Guesses, w)
		default:
			return nil, fmt.Errorf("wbank: unknown kind %q for word %q", rec[1], rec[0])
		}
	}
	return wb, nil
}

// GuessCount and AnswerCount report the size of each list.
func (wb *WordBank) GuessCount() int { return len(wb.Guesses) }
func (wb *WordBank) AnswerCount() int { return len(wb.Answers) }

// ContainsGuess and ContainsAnswer do a linear membership check.
func (wb *WordBank) ContainsGuess(w word.Word) bool {
	for _, g := range wb.Guesses {
		if g.Equal(w) {
			return true
		}
	}
	return false
}

func (wb *WordBank) ContainsAnswer(w word.Word) bool {
	for _, a := range wb.Answers {
		if a.Equal(w) {
			return true
		}
	}
	return false
}

// Sample draws a random sub-bank: guessCount guesses and answerCount
// answers (nil means "keep all"). A count at or above the list's size
// keeps the whole list.
func (wb *WordBank) Sample(rng *rand.Rand, guessCount, answerCount *int) *WordBank {
	gc := len(wb.Guesses)
	if guessCount != nil {
		gc = *guessCount
	}
	ac := len(wb.Answers)
	if answerCount != nil {
		ac = *answerCount
	}
	return &WordBank{
		Guesses: sampleWords(rng, wb.Guesses, gc),
		Answers: sampleWords(rng, wb.Answers, ac),
		WordLen: wb.WordLen,
	}
}

func sampleWords(rng *rand.Rand, src []word.Word, n int) []word.Word {
	if n >= len(src) {
		out := make([]word.Word, len(src))
		copy(out, src)
		return out
	}
	perm := rng.Perm(len(src))
	out := make([]word.Word, n)
	for i := 0; i < n; i++ {
		out[i] = src[perm[i]]
	}
	return out
}
