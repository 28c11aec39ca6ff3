package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelimiterExtractor_Object(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"bare object", `{"a": 1}`, `{"a": 1}`},
		{"prose around", `Here is your JSON: {"a": 1} Hope it helps!`, `{"a": 1}`},
		{"markdown fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"nested braces", `{"a": {"b": 2}}`, `{"a": {"b": 2}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DelimiterExtractor{}.Extract(tt.text, KindObject)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDelimiterExtractor_Array(t *testing.T) {
	got, err := DelimiterExtractor{}.Extract(`sure! [1, 2, 3] done`, KindArray)
	require.NoError(t, err)
	assert.Equal(t, `[1, 2, 3]`, got)
}

func TestDelimiterExtractor_NoJSON(t *testing.T) {
	_, err := DelimiterExtractor{}.Extract("I cannot produce that.", KindObject)
	var noJSON *NoJSONError
	require.ErrorAs(t, err, &noJSON)
	assert.Equal(t, KindObject, noJSON.Kind)
	assert.Contains(t, noJSON.Text, "cannot produce")
}

func TestDelimiterExtractor_WrongKind(t *testing.T) {
	// An object reply when an array was expected has no [ ] pair.
	_, err := DelimiterExtractor{}.Extract(`{"a": 1}`, KindArray)
	var noJSON *NoJSONError
	assert.ErrorAs(t, err, &noJSON)
}

func TestDelimiterExtractor_ClosingBeforeOpening(t *testing.T) {
	_, err := DelimiterExtractor{}.Extract(`} nothing here {`, KindObject)
	var noJSON *NoJSONError
	assert.ErrorAs(t, err, &noJSON)
}

// Documented limitation: stray delimiters in prose widen the span. The
// extractor succeeds but the span is not valid JSON, which surfaces as
// a ParseError at the client level.
func TestDelimiterExtractor_StrayBracketsWidenSpan(t *testing.T) {
	got, err := DelimiterExtractor{}.Extract(`note {curly} then {"a": 1}`, KindObject)
	require.NoError(t, err)
	assert.Equal(t, `{curly} then {"a": 1}`, got)
}
