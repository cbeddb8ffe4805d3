// Package dtree implements the decision tree the solver produces,
// plus its pretty-printed text format and the inverse parser.
package dtree

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/wordle-tools/solver/core/feedback"
	"github.com/wordle-tools/solver/core/word"
)

// DTree is either a Leaf ("the answer was just guessed", depth 0) or a
// Node carrying the guess played, the total depth-sum over the
// answers reachable here, and one child per distinct feedback.
type DTree struct {
	isLeaf   bool
	tot      uint32
	word     word.Word
	children map[feedback.Feedback]*DTree
}

// Leaf is the terminal node.
var Leaf = DTree{isLeaf: true}

// NewNode builds a Node with the given guess, total, and children.
func NewNode(w word.Word, tot uint32, children map[feedback.Feedback]*DTree) *DTree {
	return &DTree{tot: tot, word: w, children: children}
}

// IsLeaf reports whether t is the terminal Leaf.
func (t *DTree) IsLeaf() bool {
	return t == nil || t.isLeaf
}

// Tot returns the total guess-depth sum; 0 for a Leaf.
func (t *DTree) Tot() uint32 {
	if t.IsLeaf() {
		return 0
	}
	return t.tot
}

// Word returns the guess at this node; the zero Word for a Leaf.
func (t *DTree) Word() word.Word {
	if t.IsLeaf() {
		return word.Word{}
	}
	return t.word
}

// Follow returns the child reached by playing fb against this node's
// guess, or nil if there is none (including when t is a Leaf).
func (t *DTree) Follow(fb feedback.Feedback) *DTree {
	if t.IsLeaf() {
		return nil
	}
	return t.children[fb]
}

// Children returns this node's feedback-to-child map; nil for a Leaf.
func (t *DTree) Children() map[feedback.Feedback]*DTree {
	if t.IsLeaf() {
		return nil
	}
	return t.children
}

// Equal reports whether t and other represent the same tree
// structure (same guess, tot, and children at every node).
func (t *DTree) Equal(other *DTree) bool {
	if t.IsLeaf() || other.IsLeaf() {
		return t.IsLeaf() == other.IsLeaf()
	}
	if !t.word.Equal(other.word) || t.tot != other.tot {
		return false
	}
	if len(t.children) != len(other.children) {
		return false
	}
	for fb, child := range t.children {
		otherChild, ok := other.children[fb]
		if !ok || !child.Equal(otherChild) {
			return false
		}
	}
	return true
}

// Eval returns tot / answerCount, the expected number of guesses per
// answer; lower is better. 0 if answerCount is 0.
func (t *DTree) Eval(answerCount int) float64 {
	if answerCount == 0 {
		return 0
	}
	return float64(t.Tot()) / float64(answerCount)
}

// Pprint writes t in a depth-first, one-space-per-level indented
// format: "<WORD>, <tot>" then, indented one more
// space, "<FEEDBACK><turn>" per child, recursing with turn+1. A
// correct-feedback line has no following child line (it is an implicit
// Leaf).
func (t *DTree) Pprint(w io.Writer, turn uint32) error {
	return pprint(w, t, "", turn)
}

func pprint(w io.Writer, t *DTree, indent string, turn uint32) error {
	if t.IsLeaf() {
		return nil
	}
	if _, err := fmt.Fprintf(w, "%s%s, %d\n", indent, t.word.String(), t.tot); err != nil {
		return err
	}
	childIndent := indent + " "

	fbs := make([]feedback.Feedback, 0, len(t.children))
	for fb := range t.children {
		fbs = append(fbs, fb)
	}
	sort.Slice(fbs, func(i, j int) bool { return fbs[i].ToID() < fbs[j].ToID() })

	for _, fb := range fbs {
		if _, err := fmt.Fprintf(w, "%s%s%d\n", childIndent, fb.String(), turn); err != nil {
			return err
		}
		if err := pprint(w, t.children[fb], childIndent+" ", turn+1); err != nil {
			return err
		}
	}
	return nil
}

// Parse is the inverse of Pprint: it rebuilds a DTree from its
// pretty-printed text, such that Parse(Pprint(t)) == t. wordLen is the
// fixed word length, needed to size each feedback string read from the
// text.
func Parse(r io.Reader, wordLen uint8) (*DTree, error) {
	scanner := bufio.NewScanner(r)
	lines := make([]string, 0, 64)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dtree: reading: %w", err)
	}
	if len(lines) == 0 {
		return &Leaf, nil
	}
	t, _, err := parseNode(lines, 0, 0, wordLen)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// parseNode parses the node starting at lines[idx], whose indent is
// depth spaces, and returns the node plus the index of the next unread
// line.
func parseNode(lines []string, idx, depth int, wordLen uint8) (*DTree, int, error) {
	if idx >= len(lines) {
		return nil, idx, fmt.Errorf("dtree: unexpected end of input")
	}
	line := lines[idx]
	indent := depth
	rest := strings.TrimPrefix(line, strings.Repeat(" ", indent))
	if rest == line && indent != 0 {
		return nil, idx, fmt.Errorf("dtree: expected %d-space indent at %q", indent, line)
	}

	parts := strings.SplitN(rest, ", ", 2)
	if len(parts) != 2 {
		return nil, idx, fmt.Errorf("dtree: malformed node line %q", line)
	}
	w, ok := word.FromString(parts[0])
	if !ok {
		return nil, idx, fmt.Errorf("dtree: malformed word %q", parts[0])
	}
	var tot uint32
	if _, err := fmt.Sscanf(parts[1], "%d", &tot); err != nil {
		return nil, idx, fmt.Errorf("dtree: malformed tot %q: %w", parts[1], err)
	}

	children := make(map[feedback.Feedback]*DTree)
	childIndent := indent + 1
	i := idx + 1
	for i < len(lines) && lineIndent(lines[i]) == childIndent {
		fbLine := strings.TrimPrefix(lines[i], strings.Repeat(" ", childIndent))
		if len(fbLine) < int(wordLen) {
			return nil, i, fmt.Errorf("dtree: malformed feedback line %q", lines[i])
		}
		fb, ok := feedback.FromString(fbLine[:wordLen])
		if !ok {
			return nil, i, fmt.Errorf("dtree: malformed feedback %q", fbLine[:wordLen])
		}
		i++
		if fb.IsCorrect() {
			children[fb] = &Leaf
			continue
		}
		var child *DTree
		var err error
		child, i, err = parseNode(lines, i, childIndent+1, wordLen)
		if err != nil {
			return nil, i, err
		}
		children[fb] = child
	}

	return NewNode(w, tot, children), i, nil
}

func lineIndent(s string) int {
	n := 0
	for n < len(s) && s[n] == ' ' {
		n++
	}
	return n
}
