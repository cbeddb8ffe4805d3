package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/wordle-tools/solver/config"
	"github.com/wordle-tools/solver/core/dtree"
	"github.com/wordle-tools/solver/core/feedback"
	"github.com/wordle-tools/solver/core/msolve"
	"github.com/wordle-tools/solver/core/solve"
	"github.com/wordle-tools/solver/core/wbank"
	"github.com/wordle-tools/solver/core/word"
	"github.com/wordle-tools/solver/logger"
	"github.com/wordle-tools/solver/models"
)

// Solve handles POST /api/v1/solve. Unlike SuggestStream's depth-
// limited heuristic suggestions, this runs the exact solver to
// completion and returns either a full decision tree (single board)
// or an expected-guess-count figure (multiple boards), per
// models.SolveResponse.
func Solve(cfg config.Config, wb *wbank.WordBank) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Solve handler called",
			"method", r.Method,
			"path", r.RequestURI,
		)

		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req models.SolveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Error decoding solve request", "error", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if req.Turns == 0 {
			http.Error(w, "turns must be > 0", http.StatusBadRequest)
			return
		}

		state, err := replayHistory(wb, req.GameState.History, req.Turns, req.Hard)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if len(state.Answers) == 0 {
			// Solve treats an empty answer set as a violated invariant,
			// but a history no bank word is consistent with is a valid
			// query whose answer is "nothing to solve".
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(models.SolveResponse{Solvable: false})
			return
		}

		solveID := uuid.New().String()
		solveLog := log.WithTag(solveID)
		solveLog.Info("Solve starting",
			"answers", len(state.Answers),
			"turns", req.Turns,
			"hard", req.Hard,
			"boards", req.Boards,
		)

		if req.Boards > 1 {
			writeMultiBoardSolve(w, cfg, wb, state, req, solveLog)
			return
		}
		writeSingleBoardSolve(w, cfg, state, req, solveLog)
	}
}

// replayHistory rebuilds the solve.State reached after req's
// guess/feedback history, via the same State.FollowGuess a CLI
// replaying a "W1.F1.W2.F2.…" game-state string would use: in hard
// mode this also narrows the legal-guess list, not just the
// possible-answer list.
func replayHistory(wb *wbank.WordBank, history []models.GuessEntry, turns uint32, hard bool) (solve.State, error) {
	s := solve.NewState(wb, turns, hard)
	for _, entry := range history {
		gw, ok := word.FromString(entry.Guess.String())
		if !ok {
			return solve.State{}, errBadWord(entry.Guess.String())
		}
		fb, ok := feedback.FromString(colorString(entry.Feedback.Colors[:]))
		if !ok {
			return solve.State{}, errBadWord("feedback")
		}
		s = s.FollowGuess(gw, fb)
	}
	return s, nil
}

func colorString(colors []models.LetterColor) string {
	var sb strings.Builder
	for _, c := range colors {
		switch c {
		case models.GREEN:
			sb.WriteByte('G')
		case models.YELLOW:
			sb.WriteByte('Y')
		default:
			sb.WriteByte('B')
		}
	}
	return sb.String()
}

type badWordError string

func (e badWordError) Error() string { return "invalid word in history: " + string(e) }
func errBadWord(s string) error      { return badWordError(s) }

func writeSingleBoardSolve(w http.ResponseWriter, cfg config.Config, state solve.State, req models.SolveRequest, solveLog *logger.Logger) {
	sd := solve.NewSData(cfg.CacheRows, cfg.CacheCols, cfg.NTops1, cfg.NTops2, cfg.ECut).WithLog(solveLog)

	var tree *dtree.DTree
	if req.Guess != "" {
		gw, ok := word.FromString(req.Guess)
		if !ok {
			http.Error(w, "invalid guess word", http.StatusBadRequest)
			return
		}
		tree = state.SolveGiven(gw, sd, ^uint32(0))
	} else {
		tree = state.Solve(sd, ^uint32(0))
	}
	resp := models.SolveResponse{Solvable: tree != nil}
	if tree != nil {
		var sb strings.Builder
		if err := tree.Pprint(&sb, 1); err == nil {
			resp.Tree = sb.String()
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// writeMultiBoardSolve starts every board from the same post-history
// answer set computed by replayHistory: the wire format carries one
// shared guess/feedback history, not a per-board one, so a request
// asking for multiple boards is read as "these boards all started
// from the same position" rather than carrying independent histories.
func writeMultiBoardSolve(w http.ResponseWriter, cfg config.Config, wb *wbank.WordBank, single solve.State, req models.SolveRequest, solveLog *logger.Logger) {
	md := msolve.NewMData(cfg.NTops1, cfg.NTops2, cfg.ECut).WithLog(solveLog)
	boards := make([][]word.Word, req.Boards)
	finished := make([]bool, req.Boards)
	for i := range boards {
		boards[i] = single.Answers
	}

	state := msolve.MState{
		Guesses:   single.Guesses,
		Boards:    boards,
		Finished:  finished,
		WordLen:   wb.WordLen,
		TurnsLeft: single.TurnsLeft,
		Hard:      req.Hard,
	}

	var expected float64
	var ok bool
	if req.Guess != "" {
		gw, wok := word.FromString(req.Guess)
		if !wok {
			http.Error(w, "invalid guess word", http.StatusBadRequest)
			return
		}
		expected, ok = state.SolveGiven(gw, md)
	} else {
		expected, ok = state.Solve(md)
	}
	resp := models.SolveResponse{Solvable: ok, ExpectedGuesses: expected}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
