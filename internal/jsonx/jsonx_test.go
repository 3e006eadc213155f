package jsonx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripFence(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, StripFence("```json\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, StripFence("```\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, StripFence(`{"a": 1}`))
	assert.Equal(t, "plain text", StripFence("plain text"))
}

func TestExtractObject(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, ExtractObject(`{"a": 1}`))
	assert.Equal(t, `{"a": 1}`, ExtractObject(`Here is the JSON you asked for: {"a": 1} hope it helps`))
	assert.Equal(t, `{"a": 1}`, ExtractObject("```json\n{\"a\": 1}\n```"))
	// Nested braces: first { to last }.
	assert.Equal(t, `{"a": {"b": 2}}`, ExtractObject(`preamble {"a": {"b": 2}} trailer`))
	// Nothing recoverable passes through untouched.
	assert.Equal(t, "no json here", ExtractObject("no json here"))
}

func TestExtractLastObject(t *testing.T) {
	assert.Equal(t, `{"eligible": true}`, ExtractLastObject(`Sure! Based on the evidence: {"eligible": true}`))
	assert.Equal(t, `{"b": 2}`, ExtractLastObject(`{"a": 1} and then {"b": 2}`))
	assert.Equal(t, "none", ExtractLastObject("none"))
}
