package strategies

import (
	"context"
	"math"
	"sort"

	"github.com/wordle-tools/solver/data"
	"github.com/wordle-tools/solver/models"
)

// InformationGainStrategy implements a greedy solving strategy
// using information gain (entropy reduction) as the heuristic.
// It reports suggestions once per depth up to maxDepth; every depth
// scores the same guesses, so the suggestions do not change with depth.
type InformationGainStrategy struct {
	answerList []string
	guessList  []string
}

// NewInformationGainStrategy creates a new InformationGainStrategy
func NewInformationGainStrategy() *InformationGainStrategy {
	return &InformationGainStrategy{
		answerList: data.GetAnswersList(),
		guessList:  data.GetGuessesList(),
	}
}

// Solve implements the SolvingStrategy interface: for each depth up to
// maxDepth it scores the guesses by information gain and reports them
func (igs *InformationGainStrategy) Solve(
	ctx context.Context,
	gameState models.GameState,
	maxDepth int,
	callback SuggestionCallback,
) error {
	// Convert answer list to Word type
	answerWords := make([]models.Word, len(igs.answerList))
	for i, word := range igs.answerList {
		answerWords[i] = models.StringToWord(word)
	}

	// Get possible answers based on game state
	possibleAnswers := CandidateAnswers(
		gameState.History,
		answerWords,
	)

	// If no possible answers, return empty suggestions
	if len(possibleAnswers) == 0 {
		callback([]models.SuggestionItem{}, 1, 0)
		return nil
	}

	// One callback per depth; each depth evaluates the same guesses
	for depth := 1; depth <= maxDepth; depth++ {
		// Check if context was cancelled
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// Evaluate guesses at this depth
		suggestions := igs.evaluateGuesses(possibleAnswers)

		// Call callback with suggestions
		if !callback(
			suggestions,
			depth,
			len(possibleAnswers),
		) {
			break
		}
	}

	return nil
}

// evaluateGuesses evaluates candidate guesses and returns top
// suggestions sorted by information gain
func (igs *InformationGainStrategy) evaluateGuesses(
	possibleAnswers []models.Word,
) []models.SuggestionItem {
	// Special case: only one possible answer left
	// Return it with max float score (guaranteed solution)
	if len(possibleAnswers) == 1 {
		return []models.SuggestionItem{
			{
				Word:  possibleAnswers[0].String(),
				Score: math.MaxFloat64,
			},
		}
	}

	type guessScore struct {
		word  string
		score float64
	}

	var guesses []guessScore

	// Limit evaluation set for performance on large word banks
	evaluationSet := igs.guessList
	if len(igs.guessList) > 5000 {
		evaluationSet = igs.guessList[:5000]
	}

	// Calculate information gain for each candidate guess
	for _, guess := range evaluationSet {
		gain := igs.calculateInformationGain(
			guess,
			possibleAnswers,
		)
		guesses = append(guesses, guessScore{
			word:  guess,
			score: gain,
		})
	}

	// Sort by information gain (descending)
	sort.Slice(guesses, func(i, j int) bool {
		return guesses[i].score > guesses[j].score
	})

	// Return top 5 suggestions
	result := make([]models.SuggestionItem, 0, 5)
	for i := 0; i < len(guesses) && i < 5; i++ {
		result = append(result, models.SuggestionItem{
			Word:  guesses[i].word,
			Score: guesses[i].score,
		})
	}

	return result
}

// calculateInformationGain calculates the information gain
// (entropy reduction) for a candidate guess given the set of
// possible answers
func (igs *InformationGainStrategy) calculateInformationGain(
	guess string,
	possibleAnswers []models.Word,
) float64 {
	if len(possibleAnswers) == 0 {
		return 0
	}

	// Current entropy before the guess
	currentEntropy := igs.calculateEntropy(
		len(possibleAnswers),
	)

	// Partition answers by feedback pattern, scored the same way
	// the solver core colors a guess (GetFeedback wraps
	// core/feedback.FromWords)
	feedbackPartitions := make(map[string]int)
	for _, answer := range possibleAnswers {
		feedbackPartitions[GetFeedback(answer.String(), guess)]++
	}

	// Calculate expected entropy after the guess
	expectedEntropy := 0.0
	totalAnswers := float64(len(possibleAnswers))
	for _, count := range feedbackPartitions {
		if count > 0 {
			probability := float64(count) / totalAnswers
			expectedEntropy += probability *
				igs.calculateEntropy(count)
		}
	}

	// Information gain = reduction in entropy
	return currentEntropy - expectedEntropy
}

// calculateEntropy calculates Shannon entropy for a set of
// equiprobable outcomes
func (igs *InformationGainStrategy) calculateEntropy(
	count int,
) float64 {
	if count <= 1 {
		return 0
	}

	probability := 1.0 / float64(count)
	return -float64(count) * probability *
		math.Log2(probability)
}
