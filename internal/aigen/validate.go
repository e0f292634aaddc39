package aigen

import "fmt"

const (
	minTitleLen   = 5
	maxTitleLen   = 200
	minContentLen = 20
)

// ValidateBatch checks every item of a parsed batch against the question
// schema. The whole batch is rejected if any single item fails, and the
// returned error enumerates every offending field across every item so that
// model drift can be diagnosed from one run. Pure function, no I/O.
func ValidateBatch(items []GeneratedQuestion) error {
	if len(items) < minBatch || len(items) > maxBatch {
		return NewValidationError([]string{
			fmt.Sprintf("batch has %d questions, expected between %d and %d", len(items), minBatch, maxBatch),
		})
	}

	var fields []string
	bad := func(i int, field, detail string) {
		fields = append(fields, fmt.Sprintf("questions[%d].%s: %s", i, field, detail))
	}

	for i, q := range items {
		if n := len(q.Title); n < minTitleLen || n > maxTitleLen {
			bad(i, "title", fmt.Sprintf("length %d outside [%d, %d]", n, minTitleLen, maxTitleLen))
		}
		if n := len(q.Content); n < minContentLen {
			bad(i, "content", fmt.Sprintf("length %d below minimum %d", n, minContentLen))
		}
		if n := len(q.Solution); n < minContentLen {
			bad(i, "solution", fmt.Sprintf("length %d below minimum %d", n, minContentLen))
		}
		if !validCategory(q.Category) {
			bad(i, "category", fmt.Sprintf("%q is not a known category", q.Category))
		}
		if !q.Difficulty.Valid() {
			bad(i, "difficulty", fmt.Sprintf("%q is not one of easy, medium, hard", q.Difficulty))
		}
		if !q.Level.Valid() {
			bad(i, "level", fmt.Sprintf("%q is not one of fresher, junior, senior", q.Level))
		}
	}

	if len(fields) > 0 {
		return NewValidationError(fields)
	}
	return nil
}
