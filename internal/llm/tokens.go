package llm

import (
	"log/slog"
	"sync"

	"github.com/tiktoken-go/tokenizer"
)

var (
	codec     tokenizer.Codec
	codecOnce sync.Once
)

// CountTokens returns the o200k (GPT-4o) token count of text, or zero if the
// encoding is unavailable.
func CountTokens(text string) int {
	codecOnce.Do(func() {
		c, err := tokenizer.Get(tokenizer.O200kBase)
		if err != nil {
			slog.Error("failed to load tokenizer", "error", err)
			return
		}
		codec = c
	})
	if codec == nil || text == "" {
		return 0
	}
	ids, _, err := codec.Encode(text)
	if err != nil {
		return 0
	}
	return len(ids)
}
