// Package token generates human-shareable reference numbers such as
// registration numbers and donation receipt numbers.
package token

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Strategy selects the token format.
type Strategy int

const (
	// StrategyRandom produces prefix-XXXXXXXX with 8 hex characters drawn
	// from crypto/rand. Entropy is high enough that uniqueness is enforced
	// only by the database constraint, without an existence pre-check.
	StrategyRandom Strategy = iota
	// StrategyDateRandom produces prefixYYYYMMDDXXXX with a 4 character
	// random suffix. The short suffix can collide within a day, so callers
	// must pair it with GenerateUnique.
	StrategyDateRandom
)

const (
	randomSuffixLen     = 8
	dateRandomSuffixLen = 4

	// MaxAttempts bounds collision retries in GenerateUnique.
	MaxAttempts = 5
)

// ExistsFunc reports whether a candidate token is already taken.
type ExistsFunc func(ctx context.Context, token string) (bool, error)

// Generate returns a new token for the given prefix and strategy.
func Generate(prefix string, strategy Strategy) string {
	switch strategy {
	case StrategyDateRandom:
		return prefix + time.Now().Format("20060102") + randomHex(dateRandomSuffixLen)
	default:
		return prefix + "-" + randomHex(randomSuffixLen)
	}
}

// GenerateUnique generates a token and retries on collision, using exists to
// probe the persisted uniqueness constraint. It gives up after MaxAttempts.
func GenerateUnique(ctx context.Context, prefix string, strategy Strategy, exists ExistsFunc) (string, error) {
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		candidate := Generate(prefix, strategy)
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("token: no unique candidate after %d attempts", MaxAttempts)
}

func randomHex(n int) string {
	buf := make([]byte, (n+1)/2)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; treat it as fatal
		// rather than silently degrading entropy.
		panic(fmt.Sprintf("token: crypto/rand failed: %v", err))
	}
	return strings.ToUpper(hex.EncodeToString(buf))[:n]
}
