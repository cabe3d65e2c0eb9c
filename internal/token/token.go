// Package token estimates how many LLM tokens a piece of text costs.
package token

import (
	"sync"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
)

// encodingName is the BPE encoding used for estimation.
const encodingName = "cl100k_base"

// charsPerToken is the fallback heuristic when the tiktoken encoding is
// unavailable (e.g. no cached BPE data and no network): roughly four
// characters per token for English text.
const charsPerToken = 4

var (
	initOnce sync.Once
	encoding *tiktoken.Tiktoken
)

// Estimate returns the approximate token count of text. It uses the
// cl100k_base tokenizer when available and falls back to a
// characters-per-token heuristic otherwise; either way the result is an
// estimate, not a billing-accurate count.
func Estimate(text string) int {
	if text == "" {
		return 0
	}

	initOnce.Do(func() {
		enc, err := tiktoken.GetEncoding(encodingName)
		if err == nil {
			encoding = enc
		}
	})

	if encoding != nil {
		return len(encoding.Encode(text, nil, nil))
	}

	// Round up to the nearest whole token.
	return (utf8.RuneCountInString(text) + charsPerToken - 1) / charsPerToken
}
