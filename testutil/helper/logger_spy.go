package helper

import (
	"context"
	"sync"

	"github.com/solidkit/specification-filter-go/catalog"
)

// SpyLogRecord represents a captured log call.
type SpyLogRecord struct {
	Level   string
	Message string
	Args    []any
}

// LoggerSpy captures log calls for testing. It implements both catalog.Logger
// and catalog.ContextualLogger so the same spy serves either configuration.
type LoggerSpy struct {
	records []SpyLogRecord
	mu      sync.Mutex
}

// NewLoggerSpy creates a new LoggerSpy.
func NewLoggerSpy() *LoggerSpy {
	return &LoggerSpy{records: make([]SpyLogRecord, 0)}
}

// Debug captures a debug-level log call.
func (s *LoggerSpy) Debug(msg string, args ...any) { s.record("debug", msg, args...) }

// Info captures an info-level log call.
func (s *LoggerSpy) Info(msg string, args ...any) { s.record("info", msg, args...) }

// Warn captures a warn-level log call.
func (s *LoggerSpy) Warn(msg string, args ...any) { s.record("warn", msg, args...) }

// Error captures an error-level log call.
func (s *LoggerSpy) Error(msg string, args ...any) { s.record("error", msg, args...) }

// DebugContext captures a debug-level log call made with context.
func (s *LoggerSpy) DebugContext(_ context.Context, msg string, args ...any) {
	s.record("debug", msg, args...)
}

// InfoContext captures an info-level log call made with context.
func (s *LoggerSpy) InfoContext(_ context.Context, msg string, args ...any) {
	s.record("info", msg, args...)
}

// WarnContext captures a warn-level log call made with context.
func (s *LoggerSpy) WarnContext(_ context.Context, msg string, args ...any) {
	s.record("warn", msg, args...)
}

// ErrorContext captures an error-level log call made with context.
func (s *LoggerSpy) ErrorContext(_ context.Context, msg string, args ...any) {
	s.record("error", msg, args...)
}

func (s *LoggerSpy) record(level string, msg string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, SpyLogRecord{Level: level, Message: msg, Args: args})
}

// Records returns a copy of all captured log records.
func (s *LoggerSpy) Records() []SpyLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := make([]SpyLogRecord, len(s.records))
	copy(records, s.records)

	return records
}

// HasLog checks if a log record with the given level and message was captured.
func (s *LoggerSpy) HasLog(level string, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.records {
		if record.Level == level && record.Message == message {
			return true
		}
	}

	return false
}

// Reset clears all captured log records.
func (s *LoggerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = s.records[:0]
}

// Ensure LoggerSpy implements both logging interfaces.
var (
	_ catalog.Logger           = (*LoggerSpy)(nil)
	_ catalog.ContextualLogger = (*LoggerSpy)(nil)
)
