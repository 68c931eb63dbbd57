package postgresengine

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/solidkit/specification-filter-go/catalog"
)

const (
	metricQueryDuration  = "catalog_query_duration_seconds"
	metricSaveDuration   = "catalog_save_duration_seconds"
	metricRemoveDuration = "catalog_remove_duration_seconds"
	metricCountDuration  = "catalog_count_duration_seconds"
	metricDatabaseErrors = "catalog_database_errors_total"
	metricFallbackTotal  = "catalog_inmemory_fallback_total"
	spanNameQuery        = "catalog.query"
	spanNameSave         = "catalog.save"
	spanNameRemove       = "catalog.remove"
	spanNameCount        = "catalog.count"
	spanAttrOperation    = "operation"
	spanAttrErrorType    = "error_type"
	spanAttrTable        = "table"
	statusOK             = "ok"
	statusError          = "error"
	errorTypeDatabase    = "database"
	errorTypeQueryBuild  = "query_build"
	errorTypeUnsupported = "unsupported_specification"
	errorTypeOther       = "other"
)

// logQueryWithDuration logs SQL queries with execution time at debug level if a logger is configured.
func (c Catalog) logQueryWithDuration(
	ctx context.Context,
	sqlQuery string,
	action string,
	duration time.Duration,
) {

	c.logDebugContext(ctx, logMsgSQLExecuted+action, logAttrDurationMS, toMilliseconds(duration), logAttrQuery, sqlQuery)
}

// logOperationContext logs operational information at info level if a logger is configured.
func (c Catalog) logOperationContext(ctx context.Context, action string, args ...any) {
	if c.contextualLogger != nil {
		c.contextualLogger.InfoContext(ctx, logMsgOperation+action, args...)
		return
	}

	if c.logger != nil {
		c.logger.Info(logMsgOperation+action, args...)
	}
}

// logDebugContext logs debug information, preferring the contextual logger when configured.
func (c Catalog) logDebugContext(ctx context.Context, msg string, args ...any) {
	if c.contextualLogger != nil {
		c.contextualLogger.DebugContext(ctx, msg, args...)
		return
	}

	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}

// logWarnContext logs warnings, preferring the contextual logger when configured.
func (c Catalog) logWarnContext(ctx context.Context, msg string, args ...any) {
	if c.contextualLogger != nil {
		c.contextualLogger.WarnContext(ctx, msg, args...)
		return
	}

	if c.logger != nil {
		c.logger.Warn(msg, args...)
	}
}

// logErrorContext logs error information, preferring the contextual logger when configured.
func (c Catalog) logErrorContext(ctx context.Context, message string, err error, args ...any) {
	allArgs := []any{logAttrError, err.Error()}
	allArgs = append(allArgs, args...)

	if c.contextualLogger != nil {
		c.contextualLogger.ErrorContext(ctx, message, allArgs...)
		return
	}

	if c.logger != nil {
		c.logger.Error(message, allArgs...)
	}
}

// recordDurationMetricsContext records duration metrics with context if the collector supports it.
func (c Catalog) recordDurationMetricsContext(
	ctx context.Context,
	metricName string,
	duration time.Duration,
	operation, status string,
) {

	if c.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operation,
		"status":          status,
	}

	if contextualCollector, ok := c.metricsCollector.(catalog.ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metricName, duration, labels)
	} else {
		c.metricsCollector.RecordDuration(metricName, duration, labels)
	}
}

// recordErrorMetricsContext records error metrics with context if the collector supports it.
func (c Catalog) recordErrorMetricsContext(ctx context.Context, operation, errorType string) {
	if c.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operation,
		"status":          statusError,
		spanAttrErrorType: errorType,
	}

	if contextualCollector, ok := c.metricsCollector.(catalog.ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metricDatabaseErrors, labels)
	} else {
		c.metricsCollector.IncrementCounter(metricDatabaseErrors, labels)
	}
}

// recordFallbackMetricsContext counts in-memory filtering fallbacks per operation.
func (c Catalog) recordFallbackMetricsContext(ctx context.Context, operation string) {
	if c.metricsCollector == nil {
		return
	}

	labels := map[string]string{spanAttrOperation: operation}

	if contextualCollector, ok := c.metricsCollector.(catalog.ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metricFallbackTotal, labels)
	} else {
		c.metricsCollector.IncrementCounter(metricFallbackTotal, labels)
	}
}

// startSpan starts a tracing span if a tracing collector is configured.
// The returned span may be nil and must be finished with finishSpan.
func (c Catalog) startSpan(ctx context.Context, name string) (context.Context, catalog.SpanContext) {
	if c.tracingCollector == nil {
		return ctx, nil
	}

	return c.tracingCollector.StartSpan(ctx, name, map[string]string{spanAttrTable: c.productsTableName})
}

// finishSpan completes a span started with startSpan, attaching the error type when present.
func (c Catalog) finishSpan(span catalog.SpanContext, status string, errorType string) {
	if c.tracingCollector == nil || span == nil {
		return
	}

	attrs := map[string]string{}
	if errorType != "" {
		attrs[spanAttrErrorType] = errorType
	}

	c.tracingCollector.FinishSpan(span, status, attrs)
}

// errorTypeOf maps an error to a coarse classification for spans and metrics.
func errorTypeOf(err error) string {
	switch {
	case errors.Is(err, catalog.ErrUnsupportedSpecification):
		return errorTypeUnsupported
	case errors.Is(err, catalog.ErrBuildingQueryFailed):
		return errorTypeQueryBuild
	case errors.Is(err, catalog.ErrQueryingProductsFailed),
		errors.Is(err, catalog.ErrSavingProductFailed),
		errors.Is(err, catalog.ErrRemovingProductsFailed),
		errors.Is(err, catalog.ErrCountingProductsFailed),
		errors.Is(err, catalog.ErrScanningDBRowFailed):
		return errorTypeDatabase
	default:
		return errorTypeOther
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
