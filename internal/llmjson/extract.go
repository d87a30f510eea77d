// Package llmjson recovers JSON objects from free-form model output.
// Models asked for JSON frequently wrap it in prose or code fences, or
// emit near-valid syntax; a salvageable document is preferred over an
// outright failure.
package llmjson

import (
	"encoding/json"
	"errors"
	"strings"

	"examprep/internal/domain"
)

const fence = "```"

// A strategy extracts a candidate JSON document from raw model text.
// Strategies are pure and are tried in order; the first applicable one
// wins.
type strategy func(text string) (string, bool)

var strategies = []strategy{
	extractTaggedFence,
	extractAnyFence,
	extractBraceSlice,
}

// Extract returns the first JSON object recoverable from text that
// contains every required top-level key. The ordered extraction
// strategies produce a single candidate; if that candidate does not
// parse, the original text is re-scanned for balanced-brace substrings
// and each is tried in turn.
func Extract(text string, required ...string) ([]byte, error) {
	for _, extract := range strategies {
		candidate, ok := extract(text)
		if !ok {
			continue
		}
		if obj := parseObject(candidate, required); obj != nil {
			return []byte(candidate), nil
		}
		break
	}

	// Fallback: scan the original text for balanced-brace candidates.
	for _, candidate := range balancedObjects(text) {
		if obj := parseObject(candidate, required); obj != nil {
			return []byte(candidate), nil
		}
	}

	return nil, domain.NewMalformedOutputError(text, errors.New("no parsable JSON object found"))
}

// extractTaggedFence returns the content of the first ```json fenced
// block.
func extractTaggedFence(text string) (string, bool) {
	start := strings.Index(text, fence+"json")
	if start < 0 {
		return "", false
	}
	rest := text[start+len(fence+"json"):]
	end := strings.Index(rest, fence)
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}

// extractAnyFence returns the content of the first fenced block of any
// tag.
func extractAnyFence(text string) (string, bool) {
	start := strings.Index(text, fence)
	if start < 0 {
		return "", false
	}
	rest := text[start+len(fence):]
	end := strings.Index(rest, fence)
	if end < 0 {
		return "", false
	}
	content := strings.TrimSpace(rest[:end])
	// Drop a leading language tag line such as "json" or "javascript".
	if i := strings.IndexByte(content, '\n'); i >= 0 && !strings.ContainsRune(content[:i], '{') {
		content = strings.TrimSpace(content[i+1:])
	}
	return content, true
}

// extractBraceSlice returns the slice from the first '{' to the last
// '}'.
func extractBraceSlice(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// balancedObjects collects every balanced-brace substring of text,
// ignoring braces inside JSON string literals. Nested objects are
// collected too: an unclosed brace early in the text must not swallow a
// complete object that follows it.
func balancedObjects(text string) []string {
	var candidates []string
	var openings []int
	inString := false
	escaped := false

	for i, r := range text {
		if escaped {
			escaped = false
			continue
		}
		switch r {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				openings = append(openings, i)
			}
		case '}':
			if inString || len(openings) == 0 {
				continue
			}
			start := openings[len(openings)-1]
			openings = openings[:len(openings)-1]
			candidates = append(candidates, text[start:i+1])
		}
	}
	return candidates
}

// parseObject parses candidate as a JSON object and checks the required
// top-level keys; nil means the candidate is unusable.
func parseObject(candidate string, required []string) map[string]json.RawMessage {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
		return nil
	}
	for _, key := range required {
		if _, ok := obj[key]; !ok {
			return nil
		}
	}
	if obj == nil {
		obj = map[string]json.RawMessage{}
	}
	return obj
}
