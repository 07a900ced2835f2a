package binding

import (
	"errors"
	"fmt"

	"github.com/joeshaw/envdecode"
	"go.uber.org/zap"

	"model-binder/meta"
	"model-binder/primitive"
)

// Config controls how a Binder reports failures and converts text.
type Config struct {
	// Strict makes Bind return the joined setup failures. Otherwise they are
	// logged at warn level and Bind returns nil; the Binding still carries them.
	Strict bool

	// Categories selects the textual representations text views may write
	// back into non-string fields.
	Categories primitive.CategoryEnum

	// OnWriteError, when set, receives every failure raised while writing a
	// widget change back into the model.
	OnWriteError func(error)
}

// DefaultConfig returns a lenient configuration with every text category
// enabled.
func DefaultConfig() Config {
	return Config{Categories: primitive.CategoryAll}
}

type envConfig struct {
	Strict     bool                   `env:"MODELBIND_STRICT,default=false"`
	Categories primitive.CategoryEnum `env:"MODELBIND_CATEGORIES,default=all"`
}

// ConfigFromEnv builds a Config from MODELBIND_STRICT and
// MODELBIND_CATEGORIES, falling back to DefaultConfig values.
func ConfigFromEnv() (Config, error) {
	var env envConfig

	err := envdecode.Decode(&env)
	if err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return DefaultConfig(), fmt.Errorf("failed to read binding config from environment: %w", err)
	}

	if err != nil {
		return DefaultConfig(), nil
	}

	cfg := DefaultConfig()
	cfg.Strict = env.Strict
	cfg.Categories = env.Categories

	return cfg, nil
}

// Option configures a Binder.
type Option func(*Binder)

// WithConfig replaces the binder's configuration.
func WithConfig(cfg Config) Option {
	return func(b *Binder) {
		b.cfg = cfg
	}
}

// WithLogger sets the binder's logger. The package logger is used otherwise.
func WithLogger(l *zap.Logger) Option {
	return func(b *Binder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithCache shares a metadata cache between binders. Sources given with
// WithSource are ignored when a cache is supplied.
func WithCache(c *meta.Cache) Option {
	return func(b *Binder) {
		b.cache = c
	}
}

// WithSource adds a declaration source consulted before struct tags.
func WithSource(src meta.Source) Option {
	return func(b *Binder) {
		b.sources = append(b.sources, src)
	}
}
