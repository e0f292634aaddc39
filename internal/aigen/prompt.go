package aigen

import (
	"fmt"
	"strings"
)

// SystemPrompt is shared by both provider adapters.
const SystemPrompt = "You are an expert technical interviewer who creates high-quality interview questions and detailed solutions. Always respond with valid JSON only."

// BuildPrompt renders the user prompt for a generation request. Both
// adapters send the same prompt; the response contract (strict JSON, closed
// enums, restricted markup) is spelled out here rather than relying on
// provider-specific response formats.
func BuildPrompt(req GenerationRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate exactly %d interview questions for the topic %q with %s difficulty for %s level developers.\n\n",
		req.Count, strings.TrimSpace(req.Topic), req.Difficulty, req.Level)

	b.WriteString(`Respond with a single JSON object of this shape:
{
  "questions": [
    {
      "title": "Short question title (5-200 characters)",
      "content": "The full question text in HTML (at least 20 characters)",
      "solution": "Clear and detailed explanation/solution in HTML (at least 20 characters)",
      "category": "one of: ` + strings.Join(Categories, ", ") + `",
`)
	fmt.Fprintf(&b, "      %q: %q,\n", "difficulty", req.Difficulty)
	fmt.Fprintf(&b, "      %q: %q\n", "level", req.Level)
	b.WriteString(`    }
  ]
}

Requirements:
- Produce exactly the requested number of questions, no more, no fewer
- Questions must be practical and commonly asked in real interviews
- Solutions should include code examples where applicable using <pre><code> tags
- In content and solution use only these HTML tags: <p>, <pre>, <code>, <strong>, <em>, <ul>, <ol>, <li>, <br>
- Ensure variety in question types (conceptual, practical, coding)
- Make solutions comprehensive but concise

Return only the JSON object, no surrounding prose, no markdown fences.`)

	return b.String()
}
