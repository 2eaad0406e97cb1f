// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// CleanJSONBlock isolates the JSON payload in an LLM response. Models wrap
// JSON in ```json fences, lead with conversational preambles, and append
// trailing chatter even when told not to; all three are stripped here.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = stripCodeFence(text)

	// Locate the first object or array, whichever opens earlier.
	objAt := strings.Index(text, "{")
	arrAt := strings.Index(text, "[")
	start, extract := objAt, extractJSONObject
	if objAt < 0 || (arrAt >= 0 && arrAt < objAt) {
		start, extract = arrAt, extractJSONArray
	}
	if start < 0 {
		return text
	}
	if payload := extract(text[start:]); payload != "" {
		return payload
	}
	return text
}

// stripCodeFence removes a surrounding markdown code fence, including an
// optional language identifier on the opening line.
func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if idx := strings.Index(text, "\n"); idx >= 0 {
		firstLine := text[:idx]
		if len(firstLine) < 20 && !strings.ContainsAny(firstLine, " {[") {
			text = text[idx+1:]
		}
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

// extractJSONObject returns the balanced JSON object at the start of s, or ""
// if s does not begin with one. Braces inside string literals are ignored.
func extractJSONObject(s string) string {
	return extractBalanced(s, '{', '}')
}

// extractJSONArray returns the balanced JSON array at the start of s, or ""
// if s does not begin with one.
func extractJSONArray(s string) string {
	return extractBalanced(s, '[', ']')
}

func extractBalanced(s string, open, close byte) string {
	if len(s) == 0 || s[0] != open {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[:i+1]
			}
		}
	}
	return ""
}
