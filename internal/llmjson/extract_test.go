package llmjson

import (
	"encoding/json"
	"testing"

	"examprep/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validMap = `{"root_node":{"id":"root","label":"Algebra"},"nodes":{"root":{"id":"root","label":"Algebra"}}}`

func TestExtractTaggedFence(t *testing.T) {
	text := "Here is your mind map:\n```json\n" + validMap + "\n```\nLet me know if you need changes."
	got, ok := extractTaggedFence(text)
	require.True(t, ok)
	assert.Equal(t, validMap, got)

	_, ok = extractTaggedFence("no fences here")
	assert.False(t, ok)

	// Unterminated fence is not a candidate.
	_, ok = extractTaggedFence("```json\n{\"a\":1}")
	assert.False(t, ok)
}

func TestExtractAnyFence(t *testing.T) {
	got, ok := extractAnyFence("prose\n```\n{\"a\":1}\n```\n")
	require.True(t, ok)
	assert.Equal(t, `{"a":1}`, got)

	// Language tag line is dropped.
	got, ok = extractAnyFence("```javascript\n{\"a\":1}\n```")
	require.True(t, ok)
	assert.Equal(t, `{"a":1}`, got)

	_, ok = extractAnyFence("plain text")
	assert.False(t, ok)
}

func TestExtractBraceSlice(t *testing.T) {
	got, ok := extractBraceSlice(`leading {"a":{"b":2}} trailing`)
	require.True(t, ok)
	assert.Equal(t, `{"a":{"b":2}}`, got)

	_, ok = extractBraceSlice("no braces")
	assert.False(t, ok)

	_, ok = extractBraceSlice("} reversed {")
	assert.False(t, ok)
}

func TestBalancedObjects(t *testing.T) {
	text := `broken {"a": then {"b":{"c":1}} and {"d":"}"}`
	candidates := balancedObjects(text)
	// The first "{" never closes at top level once depth tracking starts,
	// so candidates come from complete objects only.
	assert.Contains(t, candidates, `{"b":{"c":1}}`)

	// Braces inside string literals do not count.
	candidates = balancedObjects(`{"x":"a { b } c"}`)
	require.Len(t, candidates, 1)
	assert.Equal(t, `{"x":"a { b } c"}`, candidates[0])

	assert.Empty(t, balancedObjects("nothing structured"))
}

func TestExtractFencedWithProse(t *testing.T) {
	text := "Sure! Here it is:\n```json\n" + validMap + "\n```\nHope that helps."
	data, err := Extract(text, "root_node", "nodes")
	require.NoError(t, err)

	var obj map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &obj))
	assert.Contains(t, obj, "root_node")
	assert.Contains(t, obj, "nodes")
}

func TestExtractPlainJSON(t *testing.T) {
	data, err := Extract(validMap, "root_node", "nodes")
	require.NoError(t, err)
	assert.JSONEq(t, validMap, string(data))
}

func TestExtractMissingRequiredKey(t *testing.T) {
	var malformed *domain.MalformedOutputError
	_, err := Extract(`{"root_node":{"id":"root"}}`, "root_node", "nodes")
	require.ErrorAs(t, err, &malformed)
	assert.NotEmpty(t, malformed.Excerpt)
}

func TestExtractSecondCandidateWins(t *testing.T) {
	// The first balanced object parses but lacks the required keys; the
	// second has both. The brace-slice strategy grabs first-{ to last-},
	// which is not valid JSON, forcing the balanced scan.
	text := `{"note":"ignore me"} some prose ` + validMap
	data, err := Extract(text, "root_node", "nodes")
	require.NoError(t, err)
	assert.JSONEq(t, validMap, string(data))
}

func TestExtractTruncatedJSON(t *testing.T) {
	_, err := Extract(`{"root_node":{"id":"root","nodes":`, "root_node", "nodes")
	var malformed *domain.MalformedOutputError
	require.ErrorAs(t, err, &malformed)
}

func TestExtractExcerptIsBounded(t *testing.T) {
	long := make([]byte, 10000)
	for i := range long {
		long[i] = 'x'
	}
	var malformed *domain.MalformedOutputError
	_, err := Extract(string(long), "root_node", "nodes")
	require.ErrorAs(t, err, &malformed)
	assert.LessOrEqual(t, len(malformed.Excerpt), 200)
}
