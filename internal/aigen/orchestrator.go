package aigen

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Generator is the common provider contract. Adapters are stateless and
// interchangeable: they render the prompt, issue one HTTP call per
// invocation and hand back the raw text completion. All transport failures
// come back already classified into the shared error taxonomy.
type Generator interface {
	Name() Provider
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

// Config carries the orchestration knobs. Zero values fall back to the
// defaults below.
type Config struct {
	MaxAttempts int
	// BaseDelays holds the per-provider backoff base. Providers without an
	// entry use DefaultBaseDelay.
	BaseDelays       map[Provider]time.Duration
	DefaultBaseDelay time.Duration
	// LogTimeout bounds the fire-and-forget sink write.
	LogTimeout time.Duration
}

const (
	defaultMaxAttempts = 3
	defaultBaseDelay   = time.Second
	defaultLogTimeout  = 5 * time.Second
)

// DefaultFunc resolves the default provider for requests that do not pin
// one. Wired to the admin settings store by the caller.
type DefaultFunc func(ctx context.Context) Provider

// Orchestrator is the top-level policy around provider calls: request
// validation, cache lookup, retry with backoff, transparent fallback to the
// secondary provider, parse/validate of the raw output, and asynchronous
// generation logging.
type Orchestrator struct {
	cfg        Config
	generators map[Provider]Generator
	cache      Cache
	sink       LogSink
	defaultFn  DefaultFunc
	log        *zap.Logger
}

// NewOrchestrator wires the orchestrator. cache, sink and defaultFn may be
// nil: caching is then skipped, log entries go to the zap logger only, and
// the default provider is picked by credential presence (OpenAI first).
func NewOrchestrator(cfg Config, generators []Generator, cache Cache, sink LogSink, defaultFn DefaultFunc, log *zap.Logger) *Orchestrator {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.DefaultBaseDelay <= 0 {
		cfg.DefaultBaseDelay = defaultBaseDelay
	}
	if cfg.LogTimeout <= 0 {
		cfg.LogTimeout = defaultLogTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}

	byName := make(map[Provider]Generator, len(generators))
	for _, g := range generators {
		byName[g.Name()] = g
	}

	return &Orchestrator{
		cfg:        cfg,
		generators: byName,
		cache:      cache,
		sink:       sink,
		defaultFn:  defaultFn,
		log:        log,
	}
}

// Generate is the sole entry point consumed by the generator UI. Within one
// call the primary provider is always exhausted (including its retries)
// before the fallback starts; the two are never attempted concurrently so a
// single logical request is never billed twice at once.
func (o *Orchestrator) Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	key := Fingerprint(req)
	if o.cache != nil {
		if res, ok := o.cache.Get(ctx, key); ok {
			o.log.Debug("generation cache hit", zap.String("key", key))
			return res, nil
		}
	}

	start := time.Now()

	primary, err := o.selectPrimary(ctx, req)
	if err != nil {
		return nil, err
	}

	raw, used, fallbackUsed, err := o.callWithFallback(ctx, req, primary)
	if err != nil {
		o.dispatchLog(req, primary, fallbackUsed, time.Since(start), err)
		return nil, err
	}

	questions, err := Parse(raw)
	if err != nil {
		// A parse or schema failure is a model-quality problem shared by
		// both providers' prompt, not a provider outage: terminal, no
		// retry and no switch to the other provider.
		if e, ok := err.(*Error); ok && e.Provider == "" {
			e.Provider = used
		}
		o.dispatchLog(req, used, fallbackUsed, time.Since(start), err)
		return nil, err
	}

	res := &GenerationResult{
		Questions: questions,
		Metadata: Metadata{
			Provider:     used,
			FallbackUsed: fallbackUsed,
			DurationMs:   time.Since(start).Milliseconds(),
		},
	}

	if o.cache != nil {
		o.cache.Put(ctx, key, res)
	}
	o.dispatchLog(req, used, fallbackUsed, time.Since(start), nil)

	return res, nil
}

// callWithFallback runs the primary provider under retry, then the
// secondary when one is configured. When both fail the primary's error is
// returned so the caller sees the root cause rather than the fallback's.
func (o *Orchestrator) callWithFallback(ctx context.Context, req GenerationRequest, primary Provider) (raw string, used Provider, fallbackUsed bool, err error) {
	gen := o.generators[primary]

	raw, primaryErr := WithRetry(ctx, o.cfg.MaxAttempts, o.baseDelay(primary), func() (string, error) {
		return gen.Generate(ctx, req)
	})
	if primaryErr == nil {
		return raw, primary, false, nil
	}

	secondary, ok := o.secondary(primary)
	if !ok {
		return "", primary, false, primaryErr
	}

	o.log.Warn("primary provider exhausted, trying fallback",
		zap.String("primary", string(primary)),
		zap.String("fallback", string(secondary)),
		zap.Error(primaryErr),
	)

	sec := o.generators[secondary]
	raw, fallbackErr := WithRetry(ctx, o.cfg.MaxAttempts, o.baseDelay(secondary), func() (string, error) {
		return sec.Generate(ctx, req)
	})
	if fallbackErr != nil {
		o.log.Warn("fallback provider failed as well",
			zap.String("fallback", string(secondary)),
			zap.Error(fallbackErr),
		)
		return "", primary, true, primaryErr
	}

	return raw, secondary, true, nil
}

// TestResult is the outcome of a provider connectivity check.
type TestResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// TestProvider issues a minimal one-question request directly against the
// named provider: no cache, no retries, no fallback, so the reported
// outcome reflects that provider's credentials and connectivity alone.
func (o *Orchestrator) TestProvider(ctx context.Context, p Provider) TestResult {
	gen, ok := o.generators[p]
	if !ok {
		return TestResult{Success: false, Message: fmt.Sprintf("%s is not configured", p.DisplayName())}
	}

	req := GenerationRequest{
		Topic:      "general programming",
		Difficulty: DifficultyEasy,
		Level:      LevelFresher,
		Count:      1,
		Provider:   p,
	}

	raw, err := gen.Generate(ctx, req)
	if err != nil {
		return TestResult{Success: false, Message: fmt.Sprintf("%s test failed: %v", p.DisplayName(), err)}
	}
	if _, err := Parse(raw); err != nil {
		return TestResult{Success: false, Message: fmt.Sprintf("%s responded but the output could not be parsed: %v", p.DisplayName(), err)}
	}
	return TestResult{Success: true, Message: fmt.Sprintf("%s connection verified", p.DisplayName())}
}

// Providers lists the configured providers.
func (o *Orchestrator) Providers() []Provider {
	out := make([]Provider, 0, len(o.generators))
	for _, p := range []Provider{ProviderOpenAI, ProviderGemini} {
		if _, ok := o.generators[p]; ok {
			out = append(out, p)
		}
	}
	return out
}

func (o *Orchestrator) selectPrimary(ctx context.Context, req GenerationRequest) (Provider, error) {
	if req.Provider != "" {
		if _, ok := o.generators[req.Provider]; !ok {
			return "", &Error{Kind: KindInvalidRequest, Message: fmt.Sprintf("provider %s is not configured", req.Provider)}
		}
		return req.Provider, nil
	}

	if o.defaultFn != nil {
		if p := o.defaultFn(ctx); p != "" {
			if _, ok := o.generators[p]; ok {
				return p, nil
			}
			o.log.Warn("configured default provider is unavailable, falling back to credential order", zap.String("provider", string(p)))
		}
	}

	for _, p := range []Provider{ProviderOpenAI, ProviderGemini} {
		if _, ok := o.generators[p]; ok {
			return p, nil
		}
	}
	return "", &Error{Kind: KindInvalidRequest, Message: "no AI provider is configured"}
}

func (o *Orchestrator) secondary(primary Provider) (Provider, bool) {
	for p := range o.generators {
		if p != primary {
			return p, true
		}
	}
	return "", false
}

func (o *Orchestrator) baseDelay(p Provider) time.Duration {
	if d, ok := o.cfg.BaseDelays[p]; ok && d > 0 {
		return d
	}
	return o.cfg.DefaultBaseDelay
}

// dispatchLog hands the entry to the sink without waiting on it. Sink
// failures and panics are swallowed here: observability must never mask or
// replace the primary outcome.
func (o *Orchestrator) dispatchLog(req GenerationRequest, p Provider, fallbackUsed bool, duration time.Duration, genErr error) {
	entry := newLogEntry(req, p, fallbackUsed, duration, genErr)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				o.log.Error("generation log sink panicked", zap.Any("panic", r))
			}
		}()

		if o.sink == nil {
			o.log.Info("generation finished",
				zap.String("provider", string(entry.Provider)),
				zap.Bool("success", entry.Success),
				zap.Bool("fallback_used", entry.FallbackUsed),
				zap.Int64("duration_ms", entry.DurationMs),
			)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), o.cfg.LogTimeout)
		defer cancel()
		if err := o.sink.Record(ctx, entry); err != nil {
			o.log.Warn("generation log write failed", zap.Error(err))
		}
	}()
}
