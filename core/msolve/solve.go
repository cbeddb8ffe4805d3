package msolve

import (
	"math"
	"strings"

	"github.com/wordle-tools/solver/core/feedback"
	"github.com/wordle-tools/solver/core/word"
)

func fbKey(fbs []feedback.Feedback) string {
	var sb strings.Builder
	for _, fb := range fbs {
		sb.WriteString(fb.String())
		sb.WriteByte('|')
	}
	return sb.String()
}

// fbPartition draws feedback tuples for the sampled answer tuples,
// deduplicates by the tuple itself, and builds one child MState per
// distinct tuple.
func (s MState) fbPartition(gw word.Word, sampled [][]word.Word) map[string]MState {
	out := make(map[string]MState, len(sampled))
	for _, tuple := range sampled {
		fbs := make([]feedback.Feedback, len(tuple))
		for i, aw := range tuple {
			fbs[i], _ = feedback.FromWords(gw, aw)
		}
		key := fbKey(fbs)
		if _, ok := out[key]; ok {
			continue
		}
		boards := make([][]word.Word, len(s.Boards))
		finished := make([]bool, len(s.Boards))
		for b := range s.Boards {
			boards[b] = fbFilterBoard(gw, fbs[b], s.Boards[b])
			finished[b] = s.Finished[b] || fbs[b].IsCorrect()
		}
		out[key] = s.child(boards, finished)
	}
	return out
}

// SolveGiven draws MData.NAnswers sample answer tuples, partitions
// them by the feedback gw produces, recurses on each distinct child,
// and aggregates by a size-weighted average.
func (s MState) SolveGiven(gw word.Word, md *MData) (float64, bool) {
	sampled := s.sampleAnswers(md)
	children := s.fbPartition(gw, sampled)

	var tot float64
	var sz int
	for _, child := range children {
		sz2 := child.Size()
		childTot, ok := child.Solve(md)
		if !ok {
			return 0, false
		}
		tot += float64(sz2) * childTot
		sz += sz2
	}
	if sz == 0 {
		return 1, true
	}
	return 1 + tot/float64(sz), true
}

func allBoardsSmall(boards [][]word.Word, cutoff int) bool {
	for _, b := range boards {
		if len(b) >= cutoff {
			return false
		}
	}
	return true
}

// separatesAllBoards reports whether gw would leave every unfinished
// board's answers fully distinguished: the single-board endgame test,
// applied per board and required to hold across all of them at once,
// since a single guess is played against every board simultaneously.
func (s MState) separatesAllBoards(gw word.Word) bool {
	for b, board := range s.Boards {
		if s.Finished[b] {
			continue
		}
		if !boardFixesOthers(gw, board) {
			return false
		}
	}
	return true
}

// endgameFix looks for a candidate answer that separates every board
// at once, drawn from the smallest unfinished board that has one; if
// found, the next guess finishes everything, so the expected cost collapses to
// roughly one guess per remaining unfinished board.
func (s MState) endgameFix(nUnfinished int) (float64, bool) {
	smallestFix := -1
	for b, board := range s.Boards {
		if s.Finished[b] {
			continue
		}
		if smallestFix != -1 && len(board) >= smallestFix {
			continue
		}
		for _, aw := range board {
			if s.separatesAllBoards(aw) {
				smallestFix = len(board)
				break
			}
		}
	}
	if smallestFix == -1 {
		return 0, false
	}
	return float64(nUnfinished) - 1/float64(smallestFix), true
}

// Solve computes the expected total guesses to finish every board, or
// false if no solution exists within the turn budget. Unlike
// core/solve.State.Solve, the sampling-based partition makes an exact
// decision tree untenable, so the result is a float, not a
// dtree.DTree.
func (s MState) Solve(md *MData) (float64, bool) {
	allFinished := true
	for _, f := range s.Finished {
		if !f {
			allFinished = false
			break
		}
	}
	if allFinished {
		return 0, true
	}
	if s.TurnsLeft == 0 {
		return 0, false
	}

	nFinished := 0
	for _, f := range s.Finished {
		if f {
			nFinished++
		}
	}
	nUnfinished := len(s.Boards) - nFinished

	for b, board := range s.Boards {
		if !s.Finished[b] && len(board) == 1 {
			return s.SolveGiven(board[0], md)
		}
	}

	if allBoardsSmall(s.Boards, md.EndgCut) {
		if fix, ok := s.endgameFix(nUnfinished); ok {
			md.debug("msolve: endgame shortcut", "boards", len(s.Boards), "unfinished", nUnfinished)
			return fix, true
		}
	}

	best := math.Inf(1)
	for _, gw := range s.topWords(md) {
		tot, ok := s.SolveGiven(gw, md)
		if !ok {
			continue
		}
		if tot < best {
			best = tot
			md.debug("msolve: best improved", "guess", gw.String(), "expected", tot)
		}
		if tot == float64(nUnfinished) {
			return tot, true
		}
	}
	if math.IsInf(best, 1) {
		return 0, false
	}
	return best, true
}
