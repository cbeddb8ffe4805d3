package msolve

import (
	"context"
	"sort"

	"github.com/wordle-tools/solver/core/word"
)

// heuristic scores a guess across all boards at once: for every unfinished
// board, 16 times the number of distinct feedbacks gw produces against
// that board's answers (normalized by the board's size so boards of
// very different sizes contribute comparably), plus a small bonus if
// gw is itself one of that board's possible answers.
func (s MState) heuristic(gw word.Word) float64 {
	var h float64
	for b, board := range s.Boards {
		if s.Finished[b] {
			continue
		}
		counts := fbCountsBoard(gw, board)
		n := float64(len(board))
		if containsWord(board, gw) {
			h += (16*float64(len(counts)) + 1) / n
		} else {
			h += 16 * float64(len(counts)) / n
		}
	}
	return h
}

func containsWord(ws []word.Word, w word.Word) bool {
	for _, x := range ws {
		if x.Equal(w) {
			return true
		}
	}
	return false
}

// topWords selects the NGuesses candidate guesses with the highest
// heuristic score (a single-stage selection, unlike
// core/solve's two-stage heuristic, since the per-board feedback-count
// pass here is already the full cost).
func (s MState) topWords(md *MData) []word.Word {
	ntops := len(s.Guesses)
	if md.NGuesses < ntops {
		ntops = md.NGuesses
	}

	type scored struct {
		w word.Word
		h float64
	}
	scores := make([]scored, len(s.Guesses))
	tasks := make([]func(ctx context.Context) error, len(s.Guesses))
	for i, gw := range s.Guesses {
		i, gw := i, gw
		tasks[i] = func(ctx context.Context) error {
			scores[i] = scored{w: gw, h: s.heuristic(gw)}
			return nil
		}
	}
	_ = md.pool().Go(context.Background(), tasks...)
	sort.Slice(scores, func(i, j int) bool { return scores[i].h > scores[j].h })
	if ntops < len(scores) {
		scores = scores[:ntops]
	}

	out := make([]word.Word, len(scores))
	for i, sc := range scores {
		out[i] = sc.w
	}
	return out
}
