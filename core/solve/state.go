// Package solve implements the single-board search core: State/SData,
// the two-stage heuristic, and the Solve / SolveGiven recursion with
// alpha/beta-style pruning, an endgame shortcut, and an easy-mode
// transposition cache.
package solve

import (
	"github.com/wordle-tools/solver/core/adata"
	"github.com/wordle-tools/solver/core/cache"
	"github.com/wordle-tools/solver/core/fbmap"
	"github.com/wordle-tools/solver/core/feedback"
	"github.com/wordle-tools/solver/core/wbank"
	"github.com/wordle-tools/solver/core/word"
	"github.com/wordle-tools/solver/core/workpool"
	"github.com/wordle-tools/solver/logger"
)

// MaxTwoSolve is the largest answer-set size solvable in exactly two
// guesses: with one guess left after this one, a turnsLeft==2 state
// can only succeed if every answer could be distinguished by the next
// guess, and distinctness tops out in practice around this size.
const MaxTwoSolve = 20

// AwsBonusFactor is the stage-1 heuristic bonus for a candidate guess
// that is itself a possible answer. A tuning knob, not a correctness
// knob.
const AwsBonusFactor = 1.05

// SData bundles everything Solve and SolveGiven need besides the
// State itself: the shared transposition cache, optional analysis-data
// tables, the two heuristic fan-out widths, and the endgame cutoff.
type SData struct {
	Cache  *cache.Cache
	Adata  adata.AnalysisData
	NTops1 int
	NTops2 int
	ECut   int
	Pool   *workpool.Pool
	// Log, when set, receives Debug-level traces of the search's
	// decision points (cache hit, endgame shortcut, beta improvement).
	// Left nil, Solve/SolveGiven never touch it, so the hot path stays
	// free of I/O by default.
	Log *logger.Logger
}

// NewSData builds an SData with a fresh cache of the given shape and
// no analysis data, so alphaBound uses 2*|answers|-1 alone. Analysis
// data only tightens that lower bound; the heuristic does not read it.
func NewSData(cacheRows, cacheCols, ntops1, ntops2, ecut int) *SData {
	return &SData{
		Cache:  cache.New(cacheRows, cacheCols),
		NTops1: ntops1,
		NTops2: ntops2,
		ECut:   ecut,
		Pool:   workpool.Default(),
	}
}

// WithLog attaches a logger to sd and returns sd, for the common
// "build an SData, then wire it to the request's correlation-scoped
// logger" call shape.
func (sd *SData) WithLog(log *logger.Logger) *SData {
	sd.Log = log
	return sd
}

// State is the single-board search state: the currently-legal guess
// list, the currently-possible answer list, the shared word length,
// turns remaining, and the hard-mode flag.
type State struct {
	Guesses   []word.Word
	Answers   []word.Word
	WordLen   uint8
	TurnsLeft uint32
	Hard      bool
}

// NewState builds the initial State for a fresh board from a word
// bank. There is no default turn budget; callers always say how many
// turns they have.
func NewState(wb *wbank.WordBank, turns uint32, hard bool) State {
	return State{
		Guesses:   wb.Guesses,
		Answers:   wb.Answers,
		WordLen:   wb.WordLen,
		TurnsLeft: turns,
		Hard:      hard,
	}
}

// child builds the State one ply deeper: turnsLeft-1, with the given
// legal-guess and possible-answer lists.
func (s State) child(guesses, answers []word.Word) State {
	return State{
		Guesses:   guesses,
		Answers:   answers,
		WordLen:   s.WordLen,
		TurnsLeft: s.TurnsLeft - 1,
		Hard:      s.Hard,
	}
}

// fbFilter returns the subsequence of words that produce feedback fb
// when scored against gw.
func fbFilter(gw word.Word, fb feedback.Feedback, words []word.Word) []word.Word {
	var out []word.Word
	for _, w := range words {
		if wfb, ok := feedback.FromWords(gw, w); ok && wfb == fb {
			out = append(out, w)
		}
	}
	return out
}

// FollowGuess rebuilds the state one ply deeper after gw was played
// and fb observed: it is how a caller holding a played guess/feedback
// history reconstructs a State to hand to Solve.
func (s State) FollowGuess(gw word.Word, fb feedback.Feedback) State {
	guesses := s.Guesses
	if s.Hard {
		guesses = fbFilter(gw, fb, s.Guesses)
	}
	answers := fbFilter(gw, fb, s.Answers)
	return s.child(guesses, answers)
}

// part is one cell of a feedback partition: the legal guesses (hard
// mode only) and possible answers that would remain after gw produced
// this feedback.
type part struct {
	guesses []word.Word
	answers []word.Word
}

// fbPartition buckets Guesses (in hard mode) and Answers by the
// feedback gw would produce against each, in one pass over each list.
func (s State) fbPartition(gw word.Word) *fbmap.Map[part] {
	m := fbmap.New[part](s.WordLen, len(s.Answers), part{})
	if s.Hard {
		for _, gw2 := range s.Guesses {
			p := m.GetOrInit(gw, gw2)
			p.guesses = append(p.guesses, gw2)
		}
	}
	for _, aw := range s.Answers {
		p := m.GetOrInit(gw, aw)
		p.answers = append(p.answers, aw)
	}
	return m
}

// fbUnique reports whether gw separates every remaining answer: every
// feedback bucket it produces against Answers holds exactly one
// answer. This is the endgame-shortcut test.
func (s State) fbUnique(gw word.Word) bool {
	m := fbmap.New[bool](s.WordLen, len(s.Answers), false)
	for _, aw := range s.Answers {
		p := m.GetOrInit(gw, aw)
		if *p {
			return false
		}
		*p = true
	}
	return true
}
