package postgresengine

import (
	"github.com/solidkit/specification-filter-go/catalog"
)

// Option defines a functional option for configuring a Catalog.
type Option func(*Catalog) error

// WithTableName sets the products table name for the Catalog.
func WithTableName(tableName string) Option {
	return func(c *Catalog) error {
		if tableName == "" {
			return catalog.ErrEmptyProductsTableName
		}

		c.productsTableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the Catalog.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL queries with execution timing (development use)
// Info level: Product counts, durations (production-safe)
// Warn level: Non-critical issues like in-memory fallbacks and cleanup failures
// Error level: Critical failures that cause operation failures.
func WithLogger(logger catalog.Logger) Option {
	return func(c *Catalog) error {
		c.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Catalog.
// The contextual logger will receive log messages with context information including
// automatic trace/span correlation when tracing is enabled. When both loggers are
// configured, the contextual logger takes precedence.
func WithContextualLogger(logger catalog.ContextualLogger) Option {
	return func(c *Catalog) error {
		c.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Catalog.
// The collector will receive performance and operational metrics including
// operation durations, database errors, and in-memory fallback counts.
func WithMetrics(collector catalog.MetricsCollector) Option {
	return func(c *Catalog) error {
		c.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the Catalog.
// The collector will receive distributed tracing information including span
// creation for query/save/remove/count operations and error classification.
func WithTracing(collector catalog.TracingCollector) Option {
	return func(c *Catalog) error {
		c.tracingCollector = collector
		return nil
	}
}
