package aigen

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies every failure that crosses the orchestrator boundary.
// Callers never see raw transport errors.
type ErrorKind string

const (
	KindInvalidRequest ErrorKind = "invalid_request"
	KindAuth           ErrorKind = "auth_error"
	KindRateLimit      ErrorKind = "rate_limit"
	KindServer         ErrorKind = "server_error"
	KindParse          ErrorKind = "parse_error"
	KindValidation     ErrorKind = "validation_error"
	KindProvider       ErrorKind = "provider_error"
)

// rawSnippetLimit bounds how much raw model output an error carries for
// diagnostics.
const rawSnippetLimit = 500

type Error struct {
	Kind     ErrorKind
	Provider Provider // originating provider, empty for request/parse failures before attribution
	Status   int      // HTTP status from the provider, 0 when not applicable
	Message  string
	Raw      string   // truncated raw model output, parse failures only
	Fields   []string // offending fields, validation failures only
	cause    error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if e.Provider != "" {
		fmt.Fprintf(&b, " (%s)", e.Provider)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if len(e.Fields) > 0 {
		fmt.Fprintf(&b, ": %s", strings.Join(e.Fields, "; "))
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.cause }

// NewProviderError builds a taxonomy error from a provider HTTP status.
// 401/403 map to auth, 429 to rate limit, 5xx to server, the rest stay
// generic. Gemini reports bad API keys as 400, so adapters may pass
// authOn400 for that case.
func NewProviderError(p Provider, status int, msg string, cause error) *Error {
	e := &Error{Provider: p, Status: status, Message: msg, cause: cause}
	switch {
	case status == 401 || status == 403:
		e.Kind = KindAuth
	case status == 429:
		e.Kind = KindRateLimit
	case status >= 500:
		e.Kind = KindServer
	default:
		e.Kind = KindProvider
	}
	return e
}

func NewAuthError(p Provider, status int, msg string) *Error {
	return &Error{Kind: KindAuth, Provider: p, Status: status, Message: msg}
}

func NewParseError(msg, raw string, cause error) *Error {
	return &Error{Kind: KindParse, Message: msg, Raw: truncate(raw, rawSnippetLimit), cause: cause}
}

func NewValidationError(fields []string) *Error {
	return &Error{Kind: KindValidation, Message: "model output did not match the question schema", Fields: fields}
}

// KindOf extracts the taxonomy kind, defaulting to generic provider error for
// anything unclassified.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindProvider
}

// ProviderOf reports which provider an error originated from, if any.
func ProviderOf(err error) Provider {
	var e *Error
	if errors.As(err, &e) {
		return e.Provider
	}
	return ""
}

// Retryable reports whether repeating the same call may succeed. Only
// throttling and provider-side 5xx qualify; auth, request, parse and
// validation failures will not improve on repetition.
func Retryable(err error) bool {
	switch KindOf(err) {
	case KindRateLimit, KindServer:
		return true
	}
	return false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
