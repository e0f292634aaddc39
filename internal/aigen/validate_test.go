package aigen

import (
	"strings"
	"testing"
)

func TestValidateBatchAccepts(t *testing.T) {
	if err := ValidateBatch([]GeneratedQuestion{sampleQuestion()}); err != nil {
		t.Fatalf("ValidateBatch: %v", err)
	}
}

func TestValidateBatchBounds(t *testing.T) {
	if err := ValidateBatch(nil); err == nil {
		t.Error("empty batch should be rejected")
	}

	big := make([]GeneratedQuestion, maxBatch+1)
	for i := range big {
		big[i] = sampleQuestion()
	}
	if err := ValidateBatch(big); err == nil {
		t.Errorf("batch of %d should be rejected", len(big))
	}
	if err := ValidateBatch(big[:maxBatch]); err != nil {
		t.Errorf("batch of %d should be accepted: %v", maxBatch, err)
	}
}

func TestValidateBatchTitleBounds(t *testing.T) {
	q := sampleQuestion()
	q.Title = "Tiny"
	if err := ValidateBatch([]GeneratedQuestion{q}); err == nil {
		t.Error("4-char title should be rejected")
	}

	q.Title = "12345"
	if err := ValidateBatch([]GeneratedQuestion{q}); err != nil {
		t.Errorf("5-char title should be accepted: %v", err)
	}

	q.Title = strings.Repeat("a", 201)
	if err := ValidateBatch([]GeneratedQuestion{q}); err == nil {
		t.Error("201-char title should be rejected")
	}
}

func TestValidateBatchContentAndSolutionMinimums(t *testing.T) {
	q := sampleQuestion()
	q.Content = strings.Repeat("a", 19)
	if err := ValidateBatch([]GeneratedQuestion{q}); err == nil {
		t.Error("19-char content should be rejected")
	}

	q = sampleQuestion()
	q.Solution = strings.Repeat("a", 19)
	if err := ValidateBatch([]GeneratedQuestion{q}); err == nil {
		t.Error("19-char solution should be rejected")
	}
}

func TestValidateBatchEnumeratesAllFailures(t *testing.T) {
	bad := GeneratedQuestion{
		Title:      "x",
		Content:    "short",
		Solution:   "short",
		Category:   "Nope",
		Difficulty: "brutal",
		Level:      "wizard",
	}
	err := ValidateBatch([]GeneratedQuestion{sampleQuestion(), bad})
	if err == nil {
		t.Fatal("expected an error")
	}
	e, ok := err.(*Error)
	if !ok {
		t.Fatalf("unexpected error type %T", err)
	}
	if e.Kind != KindValidation {
		t.Fatalf("kind = %s, want %s", e.Kind, KindValidation)
	}
	if len(e.Fields) != 6 {
		t.Fatalf("got %d field failures, want 6: %v", len(e.Fields), e.Fields)
	}
	for _, f := range e.Fields {
		if !strings.HasPrefix(f, "questions[1].") {
			t.Errorf("failure %q should point at item 1", f)
		}
	}
}

func TestValidateRequest(t *testing.T) {
	valid := GenerationRequest{Topic: "goroutines", Difficulty: DifficultyEasy, Level: LevelJunior, Count: 5}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	cases := []struct {
		name string
		mut  func(*GenerationRequest)
	}{
		{"blank topic", func(r *GenerationRequest) { r.Topic = "   " }},
		{"bad difficulty", func(r *GenerationRequest) { r.Difficulty = "extreme" }},
		{"bad level", func(r *GenerationRequest) { r.Level = "lead" }},
		{"zero count", func(r *GenerationRequest) { r.Count = 0 }},
		{"count over max", func(r *GenerationRequest) { r.Count = MaxCount + 1 }},
		{"bad provider", func(r *GenerationRequest) { r.Provider = "claude" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mut(&req)
			err := req.Validate()
			if err == nil {
				t.Fatal("expected an error")
			}
			if KindOf(err) != KindInvalidRequest {
				t.Fatalf("kind = %s, want %s", KindOf(err), KindInvalidRequest)
			}
		})
	}
}

func TestValidateRequestJoinsAllProblems(t *testing.T) {
	req := GenerationRequest{Topic: "", Difficulty: "x", Level: "y", Count: 0}
	err := req.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	msg := err.Error()
	for _, want := range []string{"topic", "difficulty", "level", "count"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q should mention %s", msg, want)
		}
	}
}
