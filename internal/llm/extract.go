package llm

import "strings"

// Extractor recovers a JSON span of the expected kind from raw model
// text. Implementations must return *NoJSONError when no span exists.
type Extractor interface {
	Extract(text string, kind Kind) (string, error)
}

// DelimiterExtractor slices from the first opening delimiter to the
// last matching closing delimiter. It does no bracket balancing, so
// stray delimiters in surrounding prose can corrupt the span; schema
// validation downstream is the safety net for that case.
type DelimiterExtractor struct{}

func (DelimiterExtractor) Extract(text string, kind Kind) (string, error) {
	open, closing := "{", "}"
	if kind == KindArray {
		open, closing = "[", "]"
	}

	start := strings.Index(text, open)
	end := strings.LastIndex(text, closing)
	if start == -1 || end == -1 || end < start {
		return "", &NoJSONError{Kind: kind, Text: text}
	}
	return text[start : end+1], nil
}
