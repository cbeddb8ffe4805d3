// Package fbmap implements a polymorphic dense/sparse container keyed
// by feedback.Feedback: a flat vector indexed by the feedback's dense
// id when the word is short and the answer set is large enough to
// amortize the 3^L allocation, a hash map otherwise. Callers never
// observe which backing was chosen.
package fbmap

import (
	"github.com/wordle-tools/solver/core/feedback"
	"github.com/wordle-tools/solver/core/word"
)

// Empirically tuned crossover points between the two backings.
const (
	denseWordLenCutoff   = 7
	denseAnswerLenCutoff = 25
)

// Map is a Feedback-keyed container over values of type T, backed by a
// dense vector or a hash map depending on (wordLen, answerSetSize) at
// construction time.
type Map[T any] struct {
	wordLen uint8
	zero    T
	dense   []T
	present []bool
	sparse  map[feedback.Feedback]*T
}

// New constructs a Map sized for words of wordLen letters and an
// answer set of approximately answerSetSize entries, with zero as the
// default value handed back by GetOrInit for unseen keys.
func New[T any](wordLen uint8, answerSetSize int, zero T) *Map[T] {
	m := &Map[T]{wordLen: wordLen, zero: zero}
	if wordLen <= denseWordLenCutoff && answerSetSize >= denseAnswerLenCutoff {
		n := pow3(wordLen)
		m.dense = make([]T, n)
		m.present = make([]bool, n)
		for i := range m.dense {
			m.dense[i] = zero
		}
	} else {
		m.sparse = make(map[feedback.Feedback]*T, answerSetSize)
	}
	return m
}

func pow3(n uint8) int {
	p := 1
	for i := uint8(0); i < n; i++ {
		p *= 3
	}
	return p
}

// GetOrInit returns a pointer to the slot for the feedback of
// (guess, answer), creating it with the Map's zero value on first
// access. The pointer is stable across calls for the same feedback.
func (m *Map[T]) GetOrInit(guess, answer word.Word) *T {
	if m.dense != nil {
		id := feedback.ID(guess, answer)
		m.present[id] = true
		return &m.dense[id]
	}
	fb, _ := feedback.FromWords(guess, answer)
	return m.getOrInitSparse(fb)
}

// GetOrInitFB is GetOrInit for a caller that already has a Feedback in
// hand (e.g. a sampled feedback tuple), avoiding recomputation.
func (m *Map[T]) GetOrInitFB(fb feedback.Feedback) *T {
	if m.dense != nil {
		id := fb.ToID()
		m.present[id] = true
		return &m.dense[id]
	}
	return m.getOrInitSparse(fb)
}

func (m *Map[T]) getOrInitSparse(fb feedback.Feedback) *T {
	if p, ok := m.sparse[fb]; ok {
		return p
	}
	v := m.zero
	p := &v
	m.sparse[fb] = p
	return p
}

// Get returns the value stored for fb and whether it was ever set.
func (m *Map[T]) Get(fb feedback.Feedback) (T, bool) {
	if m.dense != nil {
		id := fb.ToID()
		return m.dense[id], m.present[id]
	}
	p, ok := m.sparse[fb]
	if !ok {
		return m.zero, false
	}
	return *p, true
}

// Entry is one observed (Feedback, value) pair, yielded by All.
type Entry[T any] struct {
	Feedback feedback.Feedback
	Value    T
}

// All returns every observed (Feedback, value) pair. Unobserved slots
// in the dense backing are skipped.
func (m *Map[T]) All() []Entry[T] {
	var out []Entry[T]
	if m.dense != nil {
		for id, present := range m.present {
			if present {
				out = append(out, Entry[T]{
					Feedback: feedback.FromID(uint32(id), m.wordLen),
					Value:    m.dense[id],
				})
			}
		}
		return out
	}
	out = make([]Entry[T], 0, len(m.sparse))
	for fb, p := range m.sparse {
		out = append(out, Entry[T]{Feedback: fb, Value: *p})
	}
	return out
}
