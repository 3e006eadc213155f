// Package jsonx recovers JSON documents from LLM text output, which may
// arrive wrapped in Markdown code fences or surrounded by commentary.
package jsonx

import "strings"

// StripFence removes a Markdown code-fence wrapper if the text begins with
// one: the first line (the opening fence, possibly with a language tag) and
// everything from the trailing fence onward are dropped.
func StripFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	if i := strings.Index(text, "\n"); i >= 0 {
		text = text[i+1:]
	} else {
		return ""
	}
	if i := strings.LastIndex(text, "```"); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}

// ExtractObject strips any code fence, then, if the remaining text does not
// already start with an opening brace, slices between the first '{' and the
// last '}'. The result is not guaranteed to be valid JSON; callers still
// parse it.
func ExtractObject(text string) string {
	text = StripFence(text)
	if strings.HasPrefix(text, "{") {
		return text
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return text[start : end+1]
	}
	return text
}

// ExtractLastObject slices from the last '{' to the last '}', tolerating
// leading commentary before a trailing JSON object.
func ExtractLastObject(text string) string {
	text = strings.TrimSpace(text)
	start := strings.LastIndex(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return text[start : end+1]
	}
	return text
}
