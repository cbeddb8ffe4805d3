package solve

import (
	"testing"

	"github.com/wordle-tools/solver/core/feedback"
	"github.com/wordle-tools/solver/core/word"
)

func ws(t *testing.T, ss ...string) []word.Word {
	t.Helper()
	out := make([]word.Word, len(ss))
	for i, s := range ss {
		out[i] = word.MustFromString(s)
	}
	return out
}

func newTestSData() *SData {
	return NewSData(64, 16, 1000, 20, 15)
}

// S1: sole answer solves in one guess.
func TestSolveSoleAnswer(t *testing.T) {
	answers := ws(t, "CIGAR")
	s := State{Guesses: answers, Answers: answers, WordLen: 5, TurnsLeft: 6}
	sd := newTestSData()

	tree := s.Solve(sd, ^uint32(0))
	if tree == nil {
		t.Fatalf("expected a tree")
	}
	if tree.Tot() != 1 {
		t.Fatalf("tot = %d, want 1", tree.Tot())
	}
	if !tree.Word().Equal(word.MustFromString("CIGAR")) {
		t.Fatalf("word = %s, want CIGAR", tree.Word())
	}
}

// S2: a guess separating two candidates should finish in one more turn each.
func TestSolveTwoAnswersSeparable(t *testing.T) {
	answers := ws(t, "FLICK", "ICILY")
	guesses := answers
	s := State{Guesses: guesses, Answers: answers, WordLen: 5, TurnsLeft: 3}
	sd := newTestSData()

	tree := s.Solve(sd, ^uint32(0))
	if tree == nil {
		t.Fatalf("expected a tree")
	}
	if tree.Tot() != 3 {
		t.Fatalf("tot = %d, want 3", tree.Tot())
	}
}

// S3: ENSUE/GUESS/GUISE/ISSUE in two turns; tot=7, guess in {ENSUE, ISSUE}.
func TestSolveEndgameFourWay(t *testing.T) {
	answers := ws(t, "ENSUE", "GUESS", "GUISE", "ISSUE")
	guesses := answers
	s := State{Guesses: guesses, Answers: answers, WordLen: 5, TurnsLeft: 2}
	sd := newTestSData()

	tree := s.Solve(sd, ^uint32(0))
	if tree == nil {
		t.Fatalf("expected a tree")
	}
	if tree.Tot() != 7 {
		t.Fatalf("tot = %d, want 7", tree.Tot())
	}
	word0 := tree.Word().String()
	if word0 != "ENSUE" && word0 != "ISSUE" {
		t.Fatalf("guess = %s, want ENSUE or ISSUE", word0)
	}
}

// S4 (scaled down): SolveGiven from a fixed first guess must still
// produce a tree whose tot stays under the naive 6-per-answer bound.
func TestSolveGivenBounded(t *testing.T) {
	answers := ws(t, "CIGAR", "FLICK", "ICILY", "SALET", "ROBOT", "SLATE")
	guesses := answers
	s := State{Guesses: guesses, Answers: answers, WordLen: 5, TurnsLeft: 6}
	sd := newTestSData()

	tree := s.SolveGiven(word.MustFromString("SALET"), sd, ^uint32(0))
	if tree == nil {
		t.Fatalf("expected a tree")
	}
	if tree.Tot() >= uint32(6*len(answers)) {
		t.Fatalf("tot = %d, want < %d", tree.Tot(), 6*len(answers))
	}
}

// S5: hard mode over near-equidistant answers must still find a
// solution within the worst-case bound 2|A|+|A|-1. The guess list
// holds one word outside the answer set (JUMPY), as a full bank would;
// with only the answers to guess from, each guess splits off just
// itself and the best tot is 1+2+3+4+5 = 15.
func TestSolveHardModeBounded(t *testing.T) {
	answers := ws(t, "GAMER", "GAZER", "GAPER", "GAYER", "GATER")
	guesses := append(append([]word.Word{}, answers...), word.MustFromString("JUMPY"))
	s := State{Guesses: guesses, Answers: answers, WordLen: 5, TurnsLeft: 6, Hard: true}
	sd := newTestSData()

	tree := s.Solve(sd, ^uint32(0))
	if tree == nil {
		t.Fatalf("expected a tree in hard mode")
	}
	if tree.Tot() > uint32(2*len(answers)+len(answers)-1) {
		t.Fatalf("tot = %d, want <= %d", tree.Tot(), 2*len(answers)+len(answers)-1)
	}
}

// Impossible: turns budget too small for the answer set.
func TestSolveImpossibleReturnsNil(t *testing.T) {
	answers := ws(t, "CIGAR", "FLICK", "ICILY")
	s := State{Guesses: answers, Answers: answers, WordLen: 5, TurnsLeft: 1}
	sd := newTestSData()

	if tree := s.Solve(sd, ^uint32(0)); tree != nil {
		t.Fatalf("expected nil, got tree with tot %d", tree.Tot())
	}
}

// Law 7: beta monotonicity. A larger beta never produces a worse tot.
func TestSolveBetaMonotonic(t *testing.T) {
	answers := ws(t, "ENSUE", "GUESS", "GUISE", "ISSUE")
	s := State{Guesses: answers, Answers: answers, WordLen: 5, TurnsLeft: 2}
	sd := newTestSData()

	small := s.Solve(sd, 8)
	large := s.Solve(sd, 100)
	if small == nil || large == nil {
		t.Fatalf("expected both to solve")
	}
	if small.Tot() < large.Tot() {
		t.Fatalf("small-beta tot %d should be >= large-beta tot %d", small.Tot(), large.Tot())
	}
	if large.Tot() >= 100 {
		t.Fatalf("large.Tot() = %d should be < beta 100", large.Tot())
	}
}

// Easy-mode cache round-trip: a second identical Solve call should
// come back from the cache with a structurally identical tree. The
// endgame shortcut is switched off (ECut 0) because it returns before
// the cache is read or written, and FLICK separates this answer set.
func TestSolveCacheRoundTrip(t *testing.T) {
	answers := ws(t, "FLICK", "ICILY")
	s := State{Guesses: answers, Answers: answers, WordLen: 5, TurnsLeft: 3}
	sd := newTestSData()
	sd.ECut = 0

	first := s.Solve(sd, ^uint32(0))
	if first == nil {
		t.Fatalf("expected a tree")
	}
	if got := sd.Cache.Len(); got == 0 {
		t.Fatalf("expected cache to have an entry after Solve")
	}

	second := s.Solve(sd, ^uint32(0))
	if second == nil || !second.Equal(first) {
		t.Fatalf("expected cached solve to equal first solve")
	}
}

func TestFollowGuessFiltersAnswers(t *testing.T) {
	answers := ws(t, "FLICK", "ICILY", "SLATE")
	s := State{Guesses: answers, Answers: answers, WordLen: 5, TurnsLeft: 4}

	gw := word.MustFromString("SLATE")
	fb, ok := feedback.FromWords(gw, word.MustFromString("SLATE"))
	if !ok {
		t.Fatalf("feedback failed")
	}
	next := s.FollowGuess(gw, fb)
	if next.TurnsLeft != 3 {
		t.Fatalf("TurnsLeft = %d, want 3", next.TurnsLeft)
	}
	if len(next.Answers) != 1 || !next.Answers[0].Equal(word.MustFromString("SLATE")) {
		t.Fatalf("expected only SLATE to remain, got %v", next.Answers)
	}
}
