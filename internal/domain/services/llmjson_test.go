package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: `  {"a": 1}  `, expected: `{"a": 1}`},
		{name: "json fence", input: "```json\n[1, 2]\n```", expected: "[1, 2]"},
		{name: "bare fence", input: "```\n{\"a\": 1}\n```", expected: `{"a": 1}`},
		{name: "prose around fence", input: "Here you go:\n```json\n[1]\n```\nHope it helps!", expected: "[1]"},
		{name: "unterminated fence", input: "```json\n[1, 2]", expected: "[1, 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanJSONResponse(tt.input))
		})
	}
}

func TestExtractEnclosed(t *testing.T) {
	assert.Equal(t, `[{"en": "x"}]`, extractEnclosed(`Sure! [{"en": "x"}] Done.`, '[', ']'))
	assert.Equal(t, `{"a": {"b": 1}}`, extractEnclosed(`result: {"a": {"b": 1}} end`, '{', '}'))
	assert.Equal(t, "no payload", extractEnclosed("no payload", '[', ']'))
	assert.Equal(t, "] backwards [", extractEnclosed("] backwards [", '[', ']'))
}

func TestDecodeLLMJSON(t *testing.T) {
	var items []string
	require.NoError(t, decodeLLMJSON("The list:\n```json\n[\"a\", \"b\"]\n```", '[', ']', &items))
	assert.Equal(t, []string{"a", "b"}, items)

	var obj map[string]any
	assert.Error(t, decodeLLMJSON("I could not find anything.", '{', '}', &obj))
	assert.Error(t, decodeLLMJSON("   ", '{', '}', &obj))
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", preview("short"))

	long := strings.Repeat("塞", 100)
	p := preview(long)
	assert.True(t, strings.HasSuffix(p, "..."))
	assert.LessOrEqual(t, len(p), 203)
	assert.True(t, strings.HasPrefix(long, strings.TrimSuffix(p, "...")))
}
