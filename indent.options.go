package indent

import (
	"go.uber.org/zap"
)

// WriterOption is a functional option for configuring a Writer.
type WriterOption func(*writerConfig)

// writerConfig holds the internal configuration for a Writer.
type writerConfig struct {
	logger *zap.Logger
}

// defaultWriterConfig returns the default writer configuration.
func defaultWriterConfig() *writerConfig {
	return &writerConfig{
		logger: nil,
	}
}

// WithLogger sets the logger for the writer. Indentation changes and
// lifecycle events are logged at Debug level.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) WriterOption {
	return func(c *writerConfig) {
		c.logger = logger
	}
}
