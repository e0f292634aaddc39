package aigen

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Cache deduplicates identical generation requests for a bounded window.
// Implementations are best-effort: a read or write failure must degrade to
// a miss or a no-op, never to a request failure. Concurrent use must be
// safe; nothing beyond atomic per-key get/put is required.
type Cache interface {
	Get(ctx context.Context, key string) (*GenerationResult, bool)
	Put(ctx context.Context, key string, res *GenerationResult)
}

// Fingerprint derives the deterministic cache key for a request. The topic
// is case- and whitespace-normalized so that "React " and "react" share an
// entry; every other field participates verbatim, including the requested
// provider, so a pinned-provider request never serves another provider's
// cached batch.
func Fingerprint(req GenerationRequest) string {
	topic := strings.ToLower(strings.Join(strings.Fields(req.Topic), " "))
	plain := fmt.Sprintf("v1|%s|%s|%s|%d|%s", topic, req.Difficulty, req.Level, req.Count, req.Provider)
	sum := sha256.Sum256([]byte(plain))
	return "aigen:" + hex.EncodeToString(sum[:])
}
