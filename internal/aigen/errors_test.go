package aigen

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewProviderErrorStatusMapping(t *testing.T) {
	cases := []struct {
		status int
		want   ErrorKind
	}{
		{401, KindAuth},
		{403, KindAuth},
		{429, KindRateLimit},
		{500, KindServer},
		{503, KindServer},
		{400, KindProvider},
		{404, KindProvider},
		{0, KindProvider},
	}
	for _, tc := range cases {
		e := NewProviderError(ProviderOpenAI, tc.status, "msg", nil)
		if e.Kind != tc.want {
			t.Errorf("status %d: kind = %s, want %s", tc.status, e.Kind, tc.want)
		}
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	e := NewProviderError(ProviderGemini, 500, "upstream", cause)
	if !errors.Is(e, cause) {
		t.Error("wrapped cause should be reachable via errors.Is")
	}
}

func TestErrorString(t *testing.T) {
	e := NewAuthError(ProviderOpenAI, 401, "incorrect API key")
	got := e.Error()
	want := "auth_error (openai): incorrect API key"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestKindOfUnclassified(t *testing.T) {
	if got := KindOf(fmt.Errorf("plain")); got != KindProvider {
		t.Errorf("got %s, want %s", got, KindProvider)
	}
}
