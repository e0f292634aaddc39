package aigen

import (
	"context"
	"testing"
	"time"
)

const testDelay = time.Millisecond

func TestWithRetryStopsAtMaxAttempts(t *testing.T) {
	calls := 0
	_, err := WithRetry(context.Background(), 3, testDelay, func() (string, error) {
		calls++
		return "", &Error{Kind: KindServer, Provider: ProviderOpenAI, Status: 503}
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	if calls != 3 {
		t.Fatalf("got %d attempts, want 3", calls)
	}
	if KindOf(err) != KindServer {
		t.Fatalf("kind = %s, want %s", KindOf(err), KindServer)
	}
}

func TestWithRetryDoesNotRetryAuthErrors(t *testing.T) {
	calls := 0
	_, err := WithRetry(context.Background(), 3, testDelay, func() (string, error) {
		calls++
		return "", NewAuthError(ProviderOpenAI, 401, "bad key")
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	if calls != 1 {
		t.Fatalf("got %d attempts, want 1", calls)
	}
}

func TestWithRetryDoesNotRetryUnclassifiedErrors(t *testing.T) {
	calls := 0
	_, err := WithRetry(context.Background(), 3, testDelay, func() (string, error) {
		calls++
		return "", &Error{Kind: KindProvider, Message: "generic failure"}
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	if calls != 1 {
		t.Fatalf("got %d attempts, want 1", calls)
	}
}

func TestWithRetrySucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	got, err := WithRetry(context.Background(), 3, testDelay, func() (string, error) {
		calls++
		if calls < 3 {
			return "", &Error{Kind: KindRateLimit, Provider: ProviderGemini, Status: 429}
		}
		return "payload", nil
	})
	if err != nil {
		t.Fatalf("WithRetry: %v", err)
	}
	if got != "payload" {
		t.Fatalf("got %q, want payload", got)
	}
	if calls != 3 {
		t.Fatalf("got %d attempts, want 3", calls)
	}
}

func TestWithRetryRespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	_, err := WithRetry(ctx, 10, time.Minute, func() (string, error) {
		calls++
		cancel()
		return "", &Error{Kind: KindServer, Status: 500}
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	if calls != 1 {
		t.Fatalf("got %d attempts, want 1 before cancellation", calls)
	}
}

func TestRetryable(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{&Error{Kind: KindRateLimit}, true},
		{&Error{Kind: KindServer}, true},
		{&Error{Kind: KindAuth}, false},
		{&Error{Kind: KindInvalidRequest}, false},
		{&Error{Kind: KindParse}, false},
		{&Error{Kind: KindValidation}, false},
		{&Error{Kind: KindProvider}, false},
	}
	for _, tc := range cases {
		if got := Retryable(tc.err); got != tc.want {
			t.Errorf("Retryable(%s) = %v, want %v", KindOf(tc.err), got, tc.want)
		}
	}
}
