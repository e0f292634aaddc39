package aigen

import (
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt(GenerationRequest{Topic: " Kafka consumers ", Difficulty: DifficultyHard, Level: LevelSenior, Count: 7})

	for _, want := range []string{
		"exactly 7 interview questions",
		`"Kafka consumers"`,
		"hard difficulty",
		"senior level",
		`"questions"`,
		"Return only the JSON object",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	for _, c := range Categories {
		if !strings.Contains(p, c) {
			t.Errorf("prompt should list category %q", c)
		}
	}
}
