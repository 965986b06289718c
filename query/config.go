package query

import "strings"

/*
ParserConfig bounds the normalization step applied to every search
term before it becomes a [Leaf]: length clamping and stop-word removal.
No stemming is performed at this stage.
*/
type ParserConfig struct {
	MinWordLength int
	MaxWordLength int
	Language      Language
}

/*
Language supplies the stop-word predicate consulted during term
normalization. A nil Language accepts every token.
*/
type Language interface {
	IsStopWord(token string) bool
}

/*
DefaultConfig returns a ParserConfig with permissive bounds (1..64) and
no stop-word filtering.
*/
func DefaultConfig() *ParserConfig {
	return &ParserConfig{MinWordLength: 1, MaxWordLength: 64, Language: noStopWords{}}
}

type noStopWords struct{}

func (noStopWords) IsStopWord(string) bool { return false }

/*
normalize lowercases tok, rejects it if shorter than the configured
minimum length, truncates it if longer than the configured maximum
(spec.md §6.4: over-length tokens are truncated, not discarded, the
same as the original tracker-parser's word-length clamp), and rejects
it if the configured [Language] marks it a stop-word. An empty return
means the token is dropped.
*/
func (c *ParserConfig) normalize(tok string) string {
	tok = strings.ToLower(strings.TrimSpace(tok))
	if len(tok) == 0 {
		return ""
	}
	min, max := c.MinWordLength, c.MaxWordLength
	if min <= 0 {
		min = 1
	}
	if max <= 0 {
		max = 1 << 30
	}
	if len(tok) < min {
		return ""
	}
	if len(tok) > max {
		tok = tok[:max]
	}
	if c.Language != nil && c.Language.IsStopWord(tok) {
		return ""
	}
	return tok
}
