package models

import (
	"encoding/json"
	"testing"
)

func TestStringToWordUppercases(t *testing.T) {
	w := StringToWord("slate")
	if w.String() != "SLATE" {
		t.Errorf("String() = %q, want SLATE", w.String())
	}
}

func TestStringToWordPanicsOnWrongLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a non-5-letter word")
		}
	}()
	StringToWord("TOOLONG")
}

func TestGuessEntryJSONRoundTrip(t *testing.T) {
	ge := GuessEntry{
		Guess: StringToWord("SLATE"),
		Feedback: Feedback{
			Colors: [5]LetterColor{GREEN, YELLOW, GRAY, GRAY, GRAY},
		},
	}

	data, err := json.Marshal(ge)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var out GuessEntry
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if out.Guess != ge.Guess {
		t.Errorf("Guess = %v, want %v", out.Guess, ge.Guess)
	}
	if out.Feedback != ge.Feedback {
		t.Errorf("Feedback = %v, want %v", out.Feedback, ge.Feedback)
	}
}

func TestSuggestRequestJSONRoundTrip(t *testing.T) {
	req := SuggestRequest{
		GameState: GameState{
			History: []GuessEntry{
				{
					Guess: StringToWord("STARE"),
					Feedback: Feedback{
						Colors: [5]LetterColor{GREEN, GRAY, GRAY, GRAY, GRAY},
					},
				},
			},
		},
		MaxDepth: 6,
	}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var out SuggestRequest
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if out.MaxDepth != 6 {
		t.Errorf("MaxDepth = %d, want 6", out.MaxDepth)
	}
	if len(out.GameState.History) != 1 {
		t.Fatalf("History length = %d, want 1", len(out.GameState.History))
	}
	if out.GameState.History[0].Guess.String() != "STARE" {
		t.Errorf("Guess = %q, want STARE", out.GameState.History[0].Guess.String())
	}
}

func TestSolveRequestJSONRoundTrip(t *testing.T) {
	req := SolveRequest{
		GameState: GameState{History: []GuessEntry{}},
		Turns:     6,
		Hard:      true,
		Boards:    2,
	}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var out SolveRequest
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if out.Turns != 6 || !out.Hard || out.Boards != 2 {
		t.Errorf("unexpected round trip: %+v", out)
	}
}
