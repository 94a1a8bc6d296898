package resolution

import (
	"context"
	"fmt"
	"sync"
	"time"

	vo "vendora/internal/domain/resolution/valueobjects"
)

// NumberGenerator produces human-readable case numbers, e.g.
// ISS-20260831-0001. Numbers are unique per kind and day.
type NumberGenerator interface {
	Generate(ctx context.Context, kind vo.CaseKind) (string, error)
}

// NumberPrefix returns the case number prefix for a kind.
func NumberPrefix(kind vo.CaseKind) string {
	if kind == vo.CaseKindDispute {
		return "DSP"
	}
	return "ISS"
}

// DefaultNumberGenerator is the in-memory fallback, suitable for tests
// and single-process runs. Production uses the database-backed
// generator.
type DefaultNumberGenerator struct {
	mu       sync.Mutex
	counters map[string]int
}

func NewDefaultNumberGenerator() *DefaultNumberGenerator {
	return &DefaultNumberGenerator{
		counters: make(map[string]int),
	}
}

func (g *DefaultNumberGenerator) Generate(ctx context.Context, kind vo.CaseKind) (string, error) {
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid case kind: %s", kind)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	dateKey := time.Now().UTC().Format("20060102")
	counterKey := string(kind) + ":" + dateKey

	g.counters[counterKey]++
	return fmt.Sprintf("%s-%s-%04d", NumberPrefix(kind), dateKey, g.counters[counterKey]), nil
}
