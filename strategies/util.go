package strategies

import (
	"crypto/md5"
	"fmt"
	"strings"
	"sync"

	"github.com/wordle-tools/solver/core/feedback"
	"github.com/wordle-tools/solver/core/word"
	"github.com/wordle-tools/solver/models"
	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheKey represents a unique key for a game history and word list
// combination
type CacheKey string

// GetFeedback scores guess against answer using the same two-pass
// coloring the solver core uses, returning the result as an L-letter
// string of G/Y/B. It exists so callers that predate core/word (the
// information-gain strategy, its tests) can work with plain strings.
func GetFeedback(answer, guess string) string {
	aw, aok := word.FromString(answer)
	gw, gok := word.FromString(guess)
	if !aok || !gok {
		return ""
	}
	fb, ok := feedback.FromWords(gw, aw)
	if !ok {
		return ""
	}
	return fb.String()
}

// feedbackMatches reports whether fb, as scored by the engine, colors
// every position the same way the wire-format want does.
func feedbackMatches(fb feedback.Feedback, want models.Feedback) bool {
	for i := 0; i < fb.Len(); i++ {
		var c models.LetterColor
		switch fb.At(i) {
		case feedback.Green:
			c = models.GREEN
		case feedback.Yellow:
			c = models.YELLOW
		default:
			c = models.GRAY
		}
		if c != want.Colors[i] {
			return false
		}
	}
	return true
}

// CandidateAnswers replays history against wordList and returns the
// words still consistent with every guess/feedback pair: for each
// candidate, each past guess must reproduce the observed feedback if
// that candidate were the true answer.
func CandidateAnswers(history []models.GuessEntry, wordList []models.Word) []models.Word {
	out := make([]models.Word, 0, len(wordList))
candidate:
	for _, aw := range wordList {
		candidateWord, ok := word.FromString(aw.String())
		if !ok {
			continue
		}
		for _, entry := range history {
			guessWord, ok := word.FromString(entry.Guess.String())
			if !ok {
				continue candidate
			}
			fb, ok := feedback.FromWords(guessWord, candidateWord)
			if !ok || !feedbackMatches(fb, entry.Feedback) {
				continue candidate
			}
		}
		out = append(out, aw)
	}
	return out
}

// CachedCandidateAnswers wraps CandidateAnswers with LRU caching,
// keyed on the game history and the size of the word list being
// filtered.
type CachedCandidateAnswers struct {
	cache *lru.Cache[CacheKey, []models.Word]
	mu    sync.RWMutex
}

// NewCachedCandidateAnswers creates a new cached filter with the
// specified max cache size (number of entries).
func NewCachedCandidateAnswers(maxCacheSize int) (*CachedCandidateAnswers, error) {
	cache, err := lru.New[CacheKey, []models.Word](maxCacheSize)
	if err != nil {
		return nil, err
	}
	return &CachedCandidateAnswers{cache: cache}, nil
}

// GenerateCacheKey creates a unique cache key from a game history and
// word list. Uses an MD5 hash of the guess/feedback sequence combined
// with the word list length for a compact key.
func GenerateCacheKey(history []models.GuessEntry, wordListLen int) CacheKey {
	var sb strings.Builder
	for _, entry := range history {
		sb.WriteString(entry.Guess.String())
		for _, c := range entry.Feedback.Colors {
			fmt.Fprintf(&sb, "%d", c)
		}
		sb.WriteByte('|')
	}
	fmt.Fprintf(&sb, "n:%d", wordListLen)

	hash := md5.Sum([]byte(sb.String()))
	return CacheKey(fmt.Sprintf("%x", hash))
}

// Filter filters wordList down to the candidates consistent with
// history and caches the result.
func (c *CachedCandidateAnswers) Filter(history []models.GuessEntry, wordList []models.Word) []models.Word {
	key := GenerateCacheKey(history, len(wordList))

	c.mu.RLock()
	if cached, ok := c.cache.Get(key); ok {
		c.mu.RUnlock()
		result := make([]models.Word, len(cached))
		copy(result, cached)
		return result
	}
	c.mu.RUnlock()

	filtered := CandidateAnswers(history, wordList)

	c.mu.Lock()
	c.cache.Add(key, filtered)
	c.mu.Unlock()

	return filtered
}

// CacheStats returns cache statistics
func (c *CachedCandidateAnswers) CacheStats() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return map[string]int{"size": c.cache.Len()}
}

// ClearCache clears all cached entries
func (c *CachedCandidateAnswers) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Purge()
}
