package solve

import (
	"context"
	"sync"

	"github.com/wordle-tools/solver/core/cache"
	"github.com/wordle-tools/solver/core/dtree"
	"github.com/wordle-tools/solver/core/feedback"
	"github.com/wordle-tools/solver/core/word"
	"github.com/wordle-tools/solver/core/workpool"
)

// debug is nil-safe: SData.Log is optional, and debug does nothing
// when it is unset, keeping the hot path free of I/O by default. The
// call sites do not guard, so their arguments are still evaluated.
func (sd *SData) debug(msg string, args ...any) {
	if sd.Log != nil {
		sd.Log.Debug(msg, args...)
	}
}

// alphaBound returns the tightest lower bound this State's tot could
// possibly achieve: at most one answer is confirmed by the first guess,
// and every other answer costs at least two guesses, i.e. 2*|answers|-1,
// tightened by an analysis-data lower bound when one is loaded for
// this answer-set size.
func (s State) alphaBound(sd *SData) uint32 {
	alen := uint32(len(s.Answers))
	bound := 2*alen - 1
	if sd.Adata != nil {
		if lb, ok := sd.Adata.GetLowerBound(len(s.Answers)); ok && lb > bound {
			bound = lb
		}
	}
	return bound
}

// SolveGiven computes the best decision tree rooted at gw, or nil if
// none exists meeting the turn/beta budget.
func (s State) SolveGiven(gw word.Word, sd *SData, beta uint32) *dtree.DTree {
	alen := len(s.Answers)

	if alen == 1 && gw.Equal(s.Answers[0]) {
		return &dtree.Leaf
	}
	if s.TurnsLeft == 0 ||
		(s.TurnsLeft == 1 && alen > 1) ||
		(s.TurnsLeft == 2 && alen > MaxTwoSolve) {
		return nil
	}
	if beta <= s.alphaBound(sd) {
		return nil
	}

	parts := s.fbPartition(gw)
	entries := parts.All()

	var mu sync.Mutex
	tot := uint32(alen)
	var stop workpool.StopSignal
	children := make(map[feedback.Feedback]*dtree.DTree, len(entries))

	tasks := make([]func(ctx context.Context) error, 0, len(entries))
	for _, e := range entries {
		e := e
		if len(e.Value.answers) == 0 {
			continue
		}
		tasks = append(tasks, func(ctx context.Context) error {
			if stop.Fired() {
				return nil
			}
			if e.Feedback.IsCorrect() {
				mu.Lock()
				children[e.Feedback] = &dtree.Leaf
				mu.Unlock()
				return nil
			}
			mu.Lock()
			curTot := tot
			mu.Unlock()
			if curTot >= beta {
				stop.Fire()
				return nil
			}

			guesses := s.Guesses
			if s.Hard {
				guesses = e.Value.guesses
			}
			child := s.child(guesses, e.Value.answers)
			childTree := child.Solve(sd, beta-curTot)

			if childTree == nil {
				stop.Fire()
				return nil
			}
			mu.Lock()
			tot += childTree.Tot()
			children[e.Feedback] = childTree
			if tot >= beta {
				stop.Fire()
			}
			mu.Unlock()
			return nil
		})
	}

	_ = sd.pool().Go(context.Background(), tasks...)

	if stop.Fired() {
		sd.debug("solve_given: impossible", "guess", gw.String(), "answers", alen, "beta", beta)
		return nil
	}
	return dtree.NewNode(gw, tot, children)
}

// Solve computes the best decision tree reachable from s, or nil if
// none exists within the turn/beta budget.
func (s State) Solve(sd *SData, beta uint32) *dtree.DTree {
	alen := len(s.Answers)
	if alen == 0 {
		panic("solve: Solve called with an empty answer set")
	}
	if s.TurnsLeft == 0 {
		return nil
	}
	if alen == 1 {
		correct, _ := feedback.FromWords(s.Answers[0], s.Answers[0])
		return dtree.NewNode(s.Answers[0], 1, map[feedback.Feedback]*dtree.DTree{
			correct: &dtree.Leaf,
		})
	}
	if beta <= s.alphaBound(sd) {
		return nil
	}

	if alen <= sd.ECut {
		for _, aw := range s.Answers {
			if s.fbUnique(aw) {
				sd.debug("solve: endgame shortcut", "guess", aw.String(), "answers", alen)
				return s.SolveGiven(aw, sd, beta)
			}
		}
	}

	if !s.Hard && sd.Cache != nil {
		key := cache.Key(s.TurnsLeft, s.Answers)
		if tree, ok := sd.Cache.Get(key); ok {
			sd.debug("solve: cache hit", "answers", alen, "turnsLeft", s.TurnsLeft)
			return tree
		}
	}

	best := workpool.NewBest[*dtree.DTree](beta)

	candidates := s.topWords(sd)
	tasks := make([]func(ctx context.Context) error, 0, len(candidates))
	for _, gw := range candidates {
		gw := gw
		tasks = append(tasks, func(ctx context.Context) error {
			b := best.Bound()
			if b <= 2*uint32(alen) {
				return nil
			}
			tree := s.SolveGiven(gw, sd, b)
			if tree == nil {
				return nil
			}
			if best.Update(tree.Tot(), tree) {
				sd.debug("solve: beta improved", "guess", gw.String(), "tot", tree.Tot())
			}
			return nil
		})
	}
	_ = sd.pool().Go(context.Background(), tasks...)

	tree, ok := best.Value()
	if !ok {
		return nil
	}
	if !s.Hard && sd.Cache != nil {
		key := cache.Key(s.TurnsLeft, s.Answers)
		sd.Cache.Add(key, tree)
	}
	return tree
}

func (sd *SData) pool() *workpool.Pool {
	if sd.Pool == nil {
		return workpool.Default()
	}
	return sd.Pool
}
