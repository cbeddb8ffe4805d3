// Package cache implements the set-associative transposition table:
// rows buckets (rounded up to a power of two), each an LRU of capacity
// cols, looked up by a key canonicalizing (turnsLeft, answers). The
// search consults it only in easy mode, where the legal-guess list is
// constant and the optimal subtree is a function of that key alone.
package cache

import (
	"hash/fnv"
	"sort"
	"strconv"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/wordle-tools/solver/core/dtree"
	"github.com/wordle-tools/solver/core/word"
)

// Cache is the transposition table. Each row is independently locked,
// so lookups against different buckets never contend; golang-lru
// supplies the promote-on-hit / evict-on-overflow policy within a
// bucket.
type Cache struct {
	mask    uint64
	buckets []*bucket
}

type bucket struct {
	mu    sync.Mutex
	trees *lru.Cache[string, *dtree.DTree]
}

// New builds a Cache with rows buckets (rounded up to the next power
// of two) of capacity cols entries each.
func New(rows, cols int) *Cache {
	n := nextPow2(rows)
	c := &Cache{mask: uint64(n - 1), buckets: make([]*bucket, n)}
	for i := range c.buckets {
		l, err := lru.New[string, *dtree.DTree](cols)
		if err != nil {
			// A cache can't have a non-positive per-bucket capacity.
			panic("cache: invalid bucket capacity: " + err.Error())
		}
		c.buckets[i] = &bucket{trees: l}
	}
	return c
}

func nextPow2(n int) int {
	if n < 1 {
		n = 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Key builds the canonical (turnsLeft, answers) identity a State
// hashes to. Answers is treated as a set: the word list is sorted
// before joining so two States with the same answers in different
// orders collide.
func Key(turnsLeft uint32, answers []word.Word) string {
	ws := make([]string, len(answers))
	for i, a := range answers {
		ws[i] = a.String()
	}
	sort.Strings(ws)
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(uint64(turnsLeft), 10))
	sb.WriteByte('|')
	sb.WriteString(strings.Join(ws, ","))
	return sb.String()
}

func (c *Cache) row(key string) *bucket {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	idx := h.Sum64() & c.mask
	return c.buckets[idx]
}

// Get looks up the tree stored for key, promoting it to the front of
// its bucket's LRU order on a hit.
func (c *Cache) Get(key string) (*dtree.DTree, bool) {
	b := c.row(key)
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.trees.Get(key)
}

// Add inserts tree for key, evicting the bucket's least-recently-used
// entry if the bucket is already at capacity. Callers only add a key
// once they have just computed it and found no existing entry.
func (c *Cache) Add(key string, tree *dtree.DTree) {
	b := c.row(key)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.trees.Add(key, tree)
}

// Len reports the total number of entries across all buckets.
func (c *Cache) Len() int {
	n := 0
	for _, b := range c.buckets {
		b.mu.Lock()
		n += b.trees.Len()
		b.mu.Unlock()
	}
	return n
}
