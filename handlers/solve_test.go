package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/wordle-tools/solver/config"
	"github.com/wordle-tools/solver/core/wbank"
	"github.com/wordle-tools/solver/models"
)

func testWordBank(t *testing.T) *wbank.WordBank {
	t.Helper()
	csv := "word,kind,length\n" +
		"CIGAR,A,5\n" +
		"FLICK,A,5\n" +
		"ICILY,A,5\n" +
		"SALET,G,5\n"
	wb, err := wbank.LoadReader(strings.NewReader(csv), 5)
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	return wb
}

func TestSolveInvalidMethod(t *testing.T) {
	wb := testWordBank(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/solve", nil)
	w := httptest.NewRecorder()

	Solve(config.Load(), wb)(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
}

func TestSolveInvalidJSON(t *testing.T) {
	wb := testWordBank(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/solve", strings.NewReader("not json"))
	w := httptest.NewRecorder()

	Solve(config.Load(), wb)(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestSolveZeroTurnsRejected(t *testing.T) {
	wb := testWordBank(t)
	body, _ := json.Marshal(models.SolveRequest{Turns: 0})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/solve", bytes.NewReader(body))
	w := httptest.NewRecorder()

	Solve(config.Load(), wb)(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestSolveSingleBoardFreshGame(t *testing.T) {
	wb := testWordBank(t)
	body, _ := json.Marshal(models.SolveRequest{Turns: 6})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/solve", bytes.NewReader(body))
	w := httptest.NewRecorder()

	Solve(config.Load(), wb)(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body=%s", w.Code, http.StatusOK, w.Body.String())
	}
	var resp models.SolveResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Solvable {
		t.Fatalf("expected solvable response, got %+v", resp)
	}
	if resp.Tree == "" {
		t.Fatalf("expected a non-empty tree")
	}
}

func TestSolveSingleBoardWithHistory(t *testing.T) {
	wb := testWordBank(t)
	reqData := models.SolveRequest{
		Turns: 6,
		GameState: models.GameState{
			History: []models.GuessEntry{
				{
					Guess: models.StringToWord("SALET"),
					Feedback: models.Feedback{
						Colors: [5]models.LetterColor{
							models.GRAY, models.GRAY, models.GRAY, models.GRAY, models.GRAY,
						},
					},
				},
			},
		},
	}
	body, _ := json.Marshal(reqData)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/solve", bytes.NewReader(body))
	w := httptest.NewRecorder()

	Solve(config.Load(), wb)(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body=%s", w.Code, http.StatusOK, w.Body.String())
	}
}

func TestSolveMultiBoard(t *testing.T) {
	wb := testWordBank(t)
	reqData := models.SolveRequest{Turns: 10, Boards: 2}
	body, _ := json.Marshal(reqData)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/solve", bytes.NewReader(body))
	w := httptest.NewRecorder()

	Solve(config.Load(), wb)(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body=%s", w.Code, http.StatusOK, w.Body.String())
	}
	var resp models.SolveResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Solvable {
		t.Fatalf("expected solvable response, got %+v", resp)
	}
}

func TestSolvePinnedGuessRootsTree(t *testing.T) {
	wb := testWordBank(t)
	body, _ := json.Marshal(models.SolveRequest{Turns: 6, Guess: "SALET"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/solve", bytes.NewReader(body))
	w := httptest.NewRecorder()

	Solve(config.Load(), wb)(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body=%s", w.Code, http.StatusOK, w.Body.String())
	}
	var resp models.SolveResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Solvable {
		t.Fatalf("expected solvable response, got %+v", resp)
	}
	if !strings.HasPrefix(resp.Tree, "SALET, ") {
		t.Fatalf("expected tree rooted at the pinned guess, got %q", resp.Tree)
	}
}

func TestSolvePinnedGuessMultiBoard(t *testing.T) {
	wb := testWordBank(t)
	body, _ := json.Marshal(models.SolveRequest{Turns: 10, Boards: 2, Guess: "SALET"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/solve", bytes.NewReader(body))
	w := httptest.NewRecorder()

	Solve(config.Load(), wb)(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body=%s", w.Code, http.StatusOK, w.Body.String())
	}
	var resp models.SolveResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Solvable {
		t.Fatalf("expected solvable response, got %+v", resp)
	}
}

func TestSolveInvalidPinnedGuessRejected(t *testing.T) {
	wb := testWordBank(t)
	body, _ := json.Marshal(models.SolveRequest{Turns: 6, Guess: "SAL3T"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/solve", bytes.NewReader(body))
	w := httptest.NewRecorder()

	Solve(config.Load(), wb)(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestSolveBadWordInHistoryRejected(t *testing.T) {
	wb := testWordBank(t)
	reqData := models.SolveRequest{
		Turns: 6,
		GameState: models.GameState{
			History: []models.GuessEntry{
				{Guess: models.StringToWord("12345")},
			},
		},
	}
	body, _ := json.Marshal(reqData)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/solve", bytes.NewReader(body))
	w := httptest.NewRecorder()

	Solve(config.Load(), wb)(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
