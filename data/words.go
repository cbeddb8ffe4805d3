// Package data embeds the default word bank shipped with the binary,
// so the HTTP layer and the strategies package have something to load
// without requiring an operator-supplied CSV path.
package data

import (
	"bytes"
	_ "embed"
	"sync"

	"github.com/wordle-tools/solver/core/wbank"
)

//go:embed wordbank.csv
var wordbankCSV []byte

const defaultWordLen = 5

var (
	bankOnce sync.Once
	bank     *wbank.WordBank
	bankErr  error
)

// DefaultWordBank returns the embedded 5-letter word bank, parsed once
// and shared across callers.
func DefaultWordBank() (*wbank.WordBank, error) {
	bankOnce.Do(func() {
		bank, bankErr = wbank.LoadReader(bytes.NewReader(wordbankCSV), defaultWordLen)
	})
	return bank, bankErr
}

// GetAnswersList returns the embedded answer words as plain strings,
// for callers that predate core/word (strategies.InformationGainStrategy).
func GetAnswersList() []string {
	wb, err := DefaultWordBank()
	if err != nil {
		return nil
	}
	out := make([]string, len(wb.Answers))
	for i, w := range wb.Answers {
		out[i] = w.String()
	}
	return out
}

// GetGuessesList returns the embedded guess words as plain strings.
func GetGuessesList() []string {
	wb, err := DefaultWordBank()
	if err != nil {
		return nil
	}
	out := make([]string, len(wb.Guesses))
	for i, w := range wb.Guesses {
		out[i] = w.String()
	}
	return out
}
