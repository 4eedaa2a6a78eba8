package pushforge

import (
	"time"

	"github.com/draphy/pushforge/internal/crypto"
)

const (
	// MaxTTL is VAPID's maximum assertion lifetime in seconds (24 hours).
	MaxTTL = 86400

	// MaxPayloadSize is the largest serialized payload that fits in one
	// encrypted record.
	MaxPayloadSize = crypto.MaxPayloadSize

	// DefaultMaxPadding is the default cap on random padding per message.
	DefaultMaxPadding = crypto.DefaultMaxPadding
)

// buildConfig holds configuration for a single build.
type buildConfig struct {
	maxPadding int
	provider   crypto.Provider
	now        func() time.Time
}

// BuildOption configures a single call to Build.
type BuildOption func(*buildConfig)

// WithMaxPadding caps the random padding added to each message. The
// padding length is drawn uniformly from [0, min(n, remaining record
// space)]. Zero disables padding; values above the record budget are
// clamped. Default: 100 bytes.
//
// Padding blurs the relationship between payload size and ciphertext
// size. Lowering the cap changes the wire-observable size distribution,
// so keep the default unless you have measured a reason not to.
func WithMaxPadding(n int) BuildOption {
	return func(c *buildConfig) {
		c.maxPadding = n
	}
}

func newBuildConfig(opts []BuildOption) buildConfig {
	cfg := buildConfig{
		maxPadding: DefaultMaxPadding,
		provider:   crypto.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
