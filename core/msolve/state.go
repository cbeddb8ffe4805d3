// Package msolve implements the multi-board search core: MState/MData,
// Cartesian-product answer sampling, a feedback-tuple partition, and a
// size-weighted expected-tot search. The endgame test applies the
// single-board separation check per board; top-word selection uses its
// own single-stage heuristic summed over the unfinished boards.
package msolve

import (
	"math/rand"

	"github.com/wordle-tools/solver/core/cache"
	"github.com/wordle-tools/solver/core/feedback"
	"github.com/wordle-tools/solver/core/wbank"
	"github.com/wordle-tools/solver/core/word"
	"github.com/wordle-tools/solver/core/workpool"
	"github.com/wordle-tools/solver/logger"
)

// MData bundles what MState.Solve needs: the shared cache (kept for
// parity with the single-board search context; the sampled partition
// revisits a state too rarely for lookups to pay off, so Solve never
// consults it), the number of candidate guesses to try, the number of
// sampled answer tuples per guess, and the endgame cutoff.
type MData struct {
	Cache    *cache.Cache
	NGuesses int
	NAnswers int
	EndgCut  int
	Pool     *workpool.Pool
	Rng      *rand.Rand
	// Log, nil by default, mirrors SData.Log: Debug-level traces of
	// the endgame shortcut and per-candidate expected-tot updates.
	Log *logger.Logger
}

// NewMData builds an MData with a fresh default-seeded RNG. Pass an
// explicit Rng for seed-stable runs: sampling is not stable across
// seeds, but is reproducible for a fixed one.
func NewMData(nguesses, nanswers, endgcut int) *MData {
	return &MData{
		NGuesses: nguesses,
		NAnswers: nanswers,
		EndgCut:  endgcut,
		Pool:     workpool.Default(),
		Rng:      rand.New(rand.NewSource(1)),
	}
}

// WithLog attaches a logger to md and returns md, mirroring
// SData.WithLog.
func (md *MData) WithLog(log *logger.Logger) *MData {
	md.Log = log
	return md
}

func (md *MData) debug(msg string, args ...any) {
	if md.Log != nil {
		md.Log.Debug(msg, args...)
	}
}

func (md *MData) pool() *workpool.Pool {
	if md.Pool == nil {
		return workpool.Default()
	}
	return md.Pool
}

func (md *MData) rng() *rand.Rand {
	if md.Rng == nil {
		return rand.New(rand.NewSource(1))
	}
	return md.Rng
}

// MState is the multi-board search state: a shared legal-guess list,
// one possible-answer list per board, a per-board "solved" flag, turns
// remaining, and the hard-mode flag.
type MState struct {
	Guesses   []word.Word
	Boards    [][]word.Word
	Finished  []bool
	WordLen   uint8
	TurnsLeft uint32
	Hard      bool
}

// NewMState builds the initial MState for nBoards independent boards
// sharing one word bank, each starting with the full answer list.
func NewMState(wb *wbank.WordBank, nBoards int, turns uint32, hard bool) MState {
	boards := make([][]word.Word, nBoards)
	for i := range boards {
		boards[i] = wb.Answers
	}
	return MState{
		Guesses:   wb.Guesses,
		Boards:    boards,
		Finished:  make([]bool, nBoards),
		WordLen:   wb.WordLen,
		TurnsLeft: turns,
		Hard:      hard,
	}
}

// Size returns the Cartesian-product size of the remaining answer
// space, Π|A'_b|, used to weight this state in its parent's expected
// value.
func (s MState) Size() int {
	n := 1
	for _, b := range s.Boards {
		n *= len(b)
	}
	return n
}

func (s MState) child(boards [][]word.Word, finished []bool) MState {
	return MState{
		Guesses:   s.Guesses,
		Boards:    boards,
		Finished:  finished,
		WordLen:   s.WordLen,
		TurnsLeft: s.TurnsLeft - 1,
		Hard:      s.Hard,
	}
}

func fbFilterBoard(gw word.Word, fb feedback.Feedback, board []word.Word) []word.Word {
	var out []word.Word
	for _, aw := range board {
		if wfb, ok := feedback.FromWords(gw, aw); ok && wfb == fb {
			out = append(out, aw)
		}
	}
	return out
}

// FollowGuess rebuilds the state one ply deeper after gw was played
// against every board and fbs (one feedback per board) observed,
// narrowing each board's answers as core/solve.State.FollowGuess does
// for a single board. The legal-guess list is kept as is, in hard mode
// too.
func (s MState) FollowGuess(gw word.Word, fbs []feedback.Feedback) MState {
	boards := make([][]word.Word, len(s.Boards))
	finished := make([]bool, len(s.Boards))
	for b, board := range s.Boards {
		boards[b] = fbFilterBoard(gw, fbs[b], board)
		finished[b] = s.Finished[b] || fbs[b].IsCorrect()
	}
	return s.child(boards, finished)
}

// sampleAnswers draws nAnswers answer tuples, one answer per board
// chosen uniformly at random.
func (s MState) sampleAnswers(md *MData) [][]word.Word {
	rng := md.rng()
	out := make([][]word.Word, md.NAnswers)
	for i := range out {
		tuple := make([]word.Word, len(s.Boards))
		for b, board := range s.Boards {
			tuple[b] = board[rng.Intn(len(board))]
		}
		out[i] = tuple
	}
	return out
}

// fbCountsBoard counts, for a single board, how many answers land in
// each feedback bucket gw would produce.
func fbCountsBoard(gw word.Word, board []word.Word) map[feedback.Feedback]int {
	counts := make(map[feedback.Feedback]int, len(board))
	for _, aw := range board {
		fb, _ := feedback.FromWords(gw, aw)
		counts[fb]++
	}
	return counts
}

// boardFixesOthers reports whether gw separates every remaining
// answer on board, the single-board endgame test applied to one board.
func boardFixesOthers(gw word.Word, board []word.Word) bool {
	counts := fbCountsBoard(gw, board)
	for _, n := range counts {
		if n != 1 {
			return false
		}
	}
	return true
}
