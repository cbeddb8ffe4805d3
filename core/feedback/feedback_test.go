package feedback

import (
	"testing"

	"github.com/wordle-tools/solver/core/word"
)

func score(t *testing.T, guess, answer string) string {
	t.Helper()
	gw := word.MustFromString(guess)
	aw := word.MustFromString(answer)
	fb, ok := FromWords(gw, aw)
	if !ok {
		t.Fatalf("FromWords(%s, %s) failed", guess, answer)
	}
	return fb.String()
}

func TestScoringDuplicateLetterDiscipline(t *testing.T) {
	cases := []struct {
		guess, answer, want string
	}{
		{"SLATE", "SLATE", "GGGGG"},
		{"XYZZZ", "SLATE", "BBBBB"},
		{"STEAL", "SLATE", "GYYYY"},
		{"LEAST", "SLATE", "YYGYY"},
		{"ROBOT", "ROUND", "GGBBB"},
		{"ERASE", "SPEED", "YBBYY"},
		{"SPEED", "ERASE", "YBYYB"},
		{"EERIE", "GEESE", "YGBBG"},
		{"EEEEE", "SPEED", "BBGGB"},
		{"EEEEE", "GEESE", "BGGBG"},
		{"LLAMA", "SLEET", "BGBBB"},
		{"AABBA", "ABACA", "GYYBG"},
		{"AAAAA", "ABACA", "GBGBG"},
		// a yellow may not re-claim a position pass 1 already consumed.
		{"SALVE", "RAISE", "YGBBG"},
	}
	for _, c := range cases {
		got := score(t, c.guess, c.answer)
		if got != c.want {
			t.Errorf("FromWords(%s,%s) = %s, want %s", c.guess, c.answer, got, c.want)
		}
	}
}

func TestIsCorrectIffEqual(t *testing.T) {
	words := []string{"SLATE", "CIGAR", "FLICK", "AAAAA"}
	for _, g := range words {
		for _, a := range words {
			gw := word.MustFromString(g)
			aw := word.MustFromString(a)
			fb, ok := FromWords(gw, aw)
			if !ok {
				t.Fatalf("FromWords failed for equal-length words")
			}
			if fb.IsCorrect() != (g == a) {
				t.Errorf("FromWords(%s,%s).IsCorrect() = %v, want %v", g, a, fb.IsCorrect(), g == a)
			}
		}
	}
}

func TestFromWordsRejectsLengthMismatch(t *testing.T) {
	gw := word.MustFromString("SLATE")
	aw := word.MustFromString("AB")
	if _, ok := FromWords(gw, aw); ok {
		t.Error("expected failure for mismatched lengths")
	}
}

func TestIDRoundTrip(t *testing.T) {
	const length = 5
	for id := uint32(0); id < 243; id++ {
		fb := FromID(id, length)
		if fb.ToID() != id {
			t.Errorf("FromID(%d).ToID() = %d, want %d", id, fb.ToID(), id)
		}
	}
}

func TestFBIDMatchesFromWords(t *testing.T) {
	pairs := [][2]string{
		{"SALVE", "RAISE"}, {"CABAL", "ANTIC"}, {"SLATE", "SLATE"}, {"CRANE", "TRACE"},
	}
	for _, p := range pairs {
		gw := word.MustFromString(p[0])
		aw := word.MustFromString(p[1])
		fb, _ := FromWords(gw, aw)
		if got := ID(gw, aw); got != fb.ToID() {
			t.Errorf("ID(%s,%s) = %d, want %d", p[0], p[1], got, fb.ToID())
		}
	}
}

func TestFromStringToStringRoundTrip(t *testing.T) {
	strs := []string{"BBYBG", "GYBGBBBY", "YYGY", "BBYGYB", "YYGYBBY"}
	for _, s := range strs {
		fb, ok := FromString(s)
		if !ok {
			t.Fatalf("FromString(%q) failed", s)
		}
		if fb.String() != s {
			t.Errorf("FromString(%q).String() = %q", s, fb.String())
		}
	}
}
