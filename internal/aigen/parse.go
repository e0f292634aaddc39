package aigen

import (
	"encoding/json"
	"strings"
)

// Parse recovers a validated question batch from raw model output. Models
// wrap their JSON in markdown fences or surround it with prose often enough
// that a direct unmarshal is only the first attempt:
//
//  1. trim whitespace and strip a fence wrapping the whole string
//  2. direct JSON parse of the cleaned string
//  3. failing that, parse the greedy span from the first '{' or '[' to the
//     last matching closer (recovers JSON embedded in prose)
//
// The parsed value may be an object with a "questions" array or a bare
// array. Syntax failures surface as parse errors carrying a truncated copy
// of the raw text; schema failures surface as validation errors. The two
// are kept distinct because prompt debugging needs to know which stage
// broke.
func Parse(raw string) ([]GeneratedQuestion, error) {
	cleaned := stripFence(strings.TrimSpace(raw))

	items, err := decodeBatch(cleaned)
	if err != nil {
		span, ok := jsonSpan(cleaned)
		if !ok {
			return nil, NewParseError("no JSON object or array found in model output", raw, err)
		}
		items, err = decodeBatch(span)
		if err != nil {
			return nil, NewParseError("model output is not valid JSON", raw, err)
		}
	}

	if err := ValidateBatch(items); err != nil {
		return nil, err
	}
	return items, nil
}

type batchEnvelope struct {
	Questions []GeneratedQuestion `json:"questions"`
}

func decodeBatch(s string) ([]GeneratedQuestion, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "[") {
		var items []GeneratedQuestion
		if err := json.Unmarshal([]byte(s), &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var env batchEnvelope
	if err := json.Unmarshal([]byte(s), &env); err != nil {
		return nil, err
	}
	if env.Questions == nil {
		return nil, &Error{Kind: KindParse, Message: "parsed object has no questions array"}
	}
	return env.Questions, nil
}

// stripFence removes a markdown code fence when the entire string is wrapped
// in one, with or without a language tag.
func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") || !strings.HasSuffix(s, "```") {
		return s
	}
	body := strings.TrimSuffix(strings.TrimPrefix(s, "```"), "```")
	// drop the language tag on the opening fence line, e.g. ```json
	if i := strings.IndexByte(body, '\n'); i >= 0 {
		first := strings.TrimSpace(body[:i])
		if first == "" || !strings.ContainsAny(first, "{[") {
			body = body[i+1:]
		}
	}
	return strings.TrimSpace(body)
}

// jsonSpan returns the greedy substring from the first '{' or '[' to the
// last occurrence of the matching closer.
func jsonSpan(s string) (string, bool) {
	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return "", false
	}
	closer := byte('}')
	if s[start] == '[' {
		closer = ']'
	}
	end := strings.LastIndexByte(s, closer)
	if end <= start {
		return "", false
	}
	return s[start : end+1], true
}
