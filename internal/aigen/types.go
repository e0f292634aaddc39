package aigen

import (
	"fmt"
	"strings"
)

type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

// DisplayName is the human-facing provider name used in test/status messages.
func (p Provider) DisplayName() string {
	switch p {
	case ProviderOpenAI:
		return "OpenAI"
	case ProviderGemini:
		return "Gemini"
	}
	return string(p)
}

func (p Provider) Valid() bool {
	return p == ProviderOpenAI || p == ProviderGemini
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

type Level string

const (
	LevelFresher Level = "fresher"
	LevelJunior  Level = "junior"
	LevelSenior  Level = "senior"
)

func (l Level) Valid() bool {
	return l == LevelFresher || l == LevelJunior || l == LevelSenior
}

// Categories is the closed set of question categories the platform accepts.
var Categories = []string{"Algorithm", "Backend", "Frontend", "Database", "System Design", "DevOps"}

func validCategory(c string) bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

const (
	MinCount = 1
	MaxCount = 20

	// batch bounds for a single model response
	minBatch = 1
	maxBatch = 50
)

// GenerationRequest is the input to one orchestration call. It is validated
// before any network call and never mutated afterwards.
type GenerationRequest struct {
	Topic      string     `json:"topic" binding:"required"`
	Difficulty Difficulty `json:"difficulty" binding:"required"`
	Level      Level      `json:"level" binding:"required"`
	Count      int        `json:"count" binding:"required"`
	Provider   Provider   `json:"provider,omitempty"`
}

// Validate performs the basic shape checks. Failures are fatal and are never
// retried or sent to a provider.
func (r GenerationRequest) Validate() error {
	var problems []string
	if strings.TrimSpace(r.Topic) == "" {
		problems = append(problems, "topic must not be empty")
	}
	if !r.Difficulty.Valid() {
		problems = append(problems, fmt.Sprintf("difficulty %q is not one of easy, medium, hard", r.Difficulty))
	}
	if !r.Level.Valid() {
		problems = append(problems, fmt.Sprintf("level %q is not one of fresher, junior, senior", r.Level))
	}
	if r.Count < MinCount || r.Count > MaxCount {
		problems = append(problems, fmt.Sprintf("count %d is outside [%d, %d]", r.Count, MinCount, MaxCount))
	}
	if r.Provider != "" && !r.Provider.Valid() {
		problems = append(problems, fmt.Sprintf("provider %q is not one of openai, gemini", r.Provider))
	}
	if len(problems) > 0 {
		return &Error{Kind: KindInvalidRequest, Message: strings.Join(problems, "; ")}
	}
	return nil
}

// GeneratedQuestion is the canonical output unit produced by a provider and
// accepted by the validator.
type GeneratedQuestion struct {
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Solution   string     `json:"solution"`
	Category   string     `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
	Level      Level      `json:"level"`
}

// Metadata records which provider ultimately served a result and how.
type Metadata struct {
	Provider     Provider `json:"provider"`
	FallbackUsed bool     `json:"fallback_used"`
	DurationMs   int64    `json:"duration_ms"`
}

// GenerationResult wraps a validated batch with provenance. It is constructed
// once per successful orchestration call and never modified.
type GenerationResult struct {
	Questions []GeneratedQuestion `json:"questions"`
	Metadata  Metadata            `json:"metadata"`
}
