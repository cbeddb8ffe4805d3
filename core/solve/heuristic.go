package solve

import (
	"context"
	"sort"

	"github.com/wordle-tools/solver/core/feedback"
	"github.com/wordle-tools/solver/core/word"
)

// letterEvals computes, over Answers, the two tables stage 1 of the
// heuristic scores against: posCount[c][i] is the number of answers
// with letter c at position i, anyCount[c] is the number of answers
// containing c anywhere. Both are turned into "entropy-ish" weights
// x*(n-x) up front so letterHeuristic is a handful of table lookups.
func (s State) letterEvals() (posCount [26][word.MaxLen]float64, anyCount [26]float64) {
	var posN [26][word.MaxLen]int
	var anyN [26]int
	n := len(s.Answers)

	for _, aw := range s.Answers {
		var seen [26]bool
		for i := 0; i < int(s.WordLen); i++ {
			c := aw.At(i) - 'A'
			posN[c][i]++
			if !seen[c] {
				seen[c] = true
				anyN[c]++
			}
		}
	}

	for c := 0; c < 26; c++ {
		for i := 0; i < int(s.WordLen); i++ {
			x := float64(posN[c][i])
			posCount[c][i] = x * (float64(n) - x)
		}
		x := float64(anyN[c])
		anyCount[c] = x * (float64(n) - x)
	}
	return
}

// letterHeuristic is stage 1: the cheap letter-position entropy score,
// with a bonus for guesses that are themselves possible answers.
// Higher is better.
func (s State) letterHeuristic(gw word.Word, posCount [26][word.MaxLen]float64, anyCount [26]float64) float64 {
	var h float64
	var seen [26]bool
	for i := 0; i < int(s.WordLen); i++ {
		c := gw.At(i) - 'A'
		h += posCount[c][i]
		if !seen[c] {
			seen[c] = true
			h += anyCount[c]
		}
	}
	if containsWord(s.Answers, gw) {
		h *= AwsBonusFactor
	}
	return h
}

// heuristic is stage 2: twice the number of distinct feedbacks gw
// produces against the remaining answers, plus one if gw is itself a
// possible answer. Candidates are ranked highest-score-first.
func (s State) heuristic(gw word.Word) float64 {
	seen := make(map[uint32]bool, len(s.Answers))
	for _, aw := range s.Answers {
		seen[feedback.ID(gw, aw)] = true
	}
	sum := len(seen)
	if containsWord(s.Answers, gw) {
		return float64(2*sum + 1)
	}
	return float64(2 * sum)
}

func containsWord(ws []word.Word, w word.Word) bool {
	for _, x := range ws {
		if x.Equal(w) {
			return true
		}
	}
	return false
}

// scoredWord pairs a candidate guess with its current heuristic score.
type scoredWord struct {
	w word.Word
	h float64
}

// topWords runs the two-stage candidate selection: stage 1
// (letter-position entropy) narrows Guesses to NTops1 candidates,
// stage 2 (feedback distinctness) narrows those to NTops2 (doubled in
// hard mode, since hard-mode legality will further constrain what can
// actually be expanded). Both stages score in parallel and sort.Slice
// the result; NTops1 and NTops2 are small relative to the guess list,
// so a full sort costs little more than a partial selection would.
func (s State) topWords(sd *SData) []word.Word {
	glen := len(s.Guesses)
	ntops1 := minInt(sd.NTops1, glen)
	ntops2 := sd.NTops2
	if s.Hard {
		ntops2 *= 2
	}
	ntops2 = minInt(ntops2, glen)

	posCount, anyCount := s.letterEvals()
	tops := make([]scoredWord, glen)
	stage1 := make([]func(ctx context.Context) error, glen)
	for i, gw := range s.Guesses {
		i, gw := i, gw
		stage1[i] = func(ctx context.Context) error {
			tops[i] = scoredWord{w: gw, h: s.letterHeuristic(gw, posCount, anyCount)}
			return nil
		}
	}
	_ = sd.pool().Go(context.Background(), stage1...)
	sort.Slice(tops, func(i, j int) bool { return tops[i].h > tops[j].h })
	if ntops1 < len(tops) {
		tops = tops[:ntops1]
	}

	stage2 := make([]func(ctx context.Context) error, len(tops))
	for i := range tops {
		i := i
		stage2[i] = func(ctx context.Context) error {
			tops[i].h = s.heuristic(tops[i].w)
			return nil
		}
	}
	_ = sd.pool().Go(context.Background(), stage2...)
	sort.Slice(tops, func(i, j int) bool { return tops[i].h > tops[j].h })
	if ntops2 < len(tops) {
		tops = tops[:ntops2]
	}

	out := make([]word.Word, len(tops))
	for i, sw := range tops {
		out[i] = sw.w
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
