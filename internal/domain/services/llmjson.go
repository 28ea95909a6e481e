package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var errNoJSONPayload = errors.New("no JSON payload in response")

// cleanJSONResponse keeps the body of the first markdown code block, if any.
func cleanJSONResponse(content string) string {
	for _, fence := range []string{"```json", "```"} {
		idx := strings.Index(content, fence)
		if idx < 0 {
			continue
		}
		body := content[idx+len(fence):]
		if end := strings.Index(body, "```"); end >= 0 {
			body = body[:end]
		}
		return strings.TrimSpace(body)
	}
	return strings.TrimSpace(content)
}

// extractEnclosed slices content from the first open to the last close byte.
// Content without such a pair is returned unchanged.
func extractEnclosed(content string, open, close byte) string {
	start := strings.IndexByte(content, open)
	end := strings.LastIndexByte(content, close)
	if start < 0 || end <= start {
		return content
	}
	return content[start : end+1]
}

// decodeLLMJSON recovers a JSON value delimited by open/close from free model
// text and decodes it into v.
func decodeLLMJSON(content string, open, close byte, v any) error {
	payload := extractEnclosed(cleanJSONResponse(content), open, close)
	if payload == "" {
		return errNoJSONPayload
	}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return fmt.Errorf("decoding model JSON: %w", err)
	}
	return nil
}

// preview shortens a model response for log fields.
func preview(s string) string {
	const max = 200
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
