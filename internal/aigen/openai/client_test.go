package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/quybuiquang/skill-quest-cafe/internal/aigen"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"
	return newWithConfig(cfg, "gpt-4o-mini")
}

func completionResponse(content string) map[string]any {
	return map[string]any{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"model":  "gpt-4o-mini",
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			},
		},
	}
}

func errorResponse(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{"message": msg, "type": "test_error"},
	})
}

func testRequest() aigen.GenerationRequest {
	return aigen.GenerationRequest{Topic: "goroutines", Difficulty: aigen.DifficultyEasy, Level: aigen.LevelJunior, Count: 2}
}

func TestGenerateReturnsCompletionText(t *testing.T) {
	var gotReq openai.ChatCompletionRequest
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionResponse(`{"questions": []}`))
	})

	raw, err := c.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if raw != `{"questions": []}` {
		t.Errorf("got %q", raw)
	}

	if len(gotReq.Messages) != 2 {
		t.Fatalf("got %d messages, want system and user", len(gotReq.Messages))
	}
	if gotReq.Messages[0].Role != "system" || gotReq.Messages[0].Content != aigen.SystemPrompt {
		t.Error("first message should carry the system prompt")
	}
	if !strings.Contains(gotReq.Messages[1].Content, "goroutines") {
		t.Error("user message should carry the rendered prompt")
	}
	if gotReq.MaxTokens != maxTokens {
		t.Errorf("max_tokens = %d, want %d", gotReq.MaxTokens, maxTokens)
	}
}

func TestGenerateClassifiesAuthError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		errorResponse(w, http.StatusUnauthorized, "Incorrect API key provided")
	})

	_, err := c.Generate(context.Background(), testRequest())
	if err == nil {
		t.Fatal("expected an error")
	}
	if aigen.KindOf(err) != aigen.KindAuth {
		t.Fatalf("kind = %s, want %s", aigen.KindOf(err), aigen.KindAuth)
	}
	if aigen.ProviderOf(err) != aigen.ProviderOpenAI {
		t.Errorf("provider = %s, want openai", aigen.ProviderOf(err))
	}
}

func TestGenerateClassifiesRateLimit(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		errorResponse(w, http.StatusTooManyRequests, "Rate limit reached")
	})

	_, err := c.Generate(context.Background(), testRequest())
	if aigen.KindOf(err) != aigen.KindRateLimit {
		t.Fatalf("kind = %s, want %s", aigen.KindOf(err), aigen.KindRateLimit)
	}
	if !aigen.Retryable(err) {
		t.Error("rate limit should be retryable")
	}
}

func TestGenerateClassifiesServerError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		errorResponse(w, http.StatusInternalServerError, "The server had an error")
	})

	_, err := c.Generate(context.Background(), testRequest())
	if aigen.KindOf(err) != aigen.KindServer {
		t.Fatalf("kind = %s, want %s", aigen.KindOf(err), aigen.KindServer)
	}
	if !aigen.Retryable(err) {
		t.Error("5xx should be retryable")
	}
}

func TestGenerateEmptyChoices(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"id": "x", "object": "chat.completion", "choices": []any{}})
	})

	_, err := c.Generate(context.Background(), testRequest())
	if err == nil {
		t.Fatal("expected an error")
	}
	if aigen.KindOf(err) != aigen.KindProvider {
		t.Fatalf("kind = %s, want %s", aigen.KindOf(err), aigen.KindProvider)
	}
}
