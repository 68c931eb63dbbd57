package helper

import (
	"context"
	"maps"
	"sync"

	"github.com/solidkit/specification-filter-go/catalog"
)

// SpySpan represents a span lifecycle captured by the TracingCollectorSpy.
type SpySpan struct {
	Name         string
	StartAttrs   map[string]string
	FinishStatus string
	FinishAttrs  map[string]string
	Finished     bool
}

// TracingCollectorSpy is a catalog.TracingCollector implementation that
// captures span lifecycles for testing.
type TracingCollectorSpy struct {
	spans []*SpySpan
	mu    sync.Mutex
}

// NewTracingCollectorSpy creates a new TracingCollectorSpy.
func NewTracingCollectorSpy() *TracingCollectorSpy {
	return &TracingCollectorSpy{spans: make([]*SpySpan, 0)}
}

// spySpanContext implements catalog.SpanContext for the spy.
type spySpanContext struct {
	span *SpySpan
	mu   *sync.Mutex
}

// SetStatus records the status on the underlying spy span.
func (s *spySpanContext) SetStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.span.FinishStatus = status
}

// AddAttribute records an attribute on the underlying spy span.
func (s *spySpanContext) AddAttribute(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.span.FinishAttrs == nil {
		s.span.FinishAttrs = make(map[string]string)
	}
	s.span.FinishAttrs[key] = value
}

// StartSpan captures the start of a span.
func (s *TracingCollectorSpy) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, catalog.SpanContext) {
	s.mu.Lock()
	defer s.mu.Unlock()

	span := &SpySpan{Name: name, StartAttrs: maps.Clone(attrs)}
	s.spans = append(s.spans, span)

	return ctx, &spySpanContext{span: span, mu: &s.mu}
}

// FinishSpan captures the end of a span.
func (s *TracingCollectorSpy) FinishSpan(spanCtx catalog.SpanContext, status string, attrs map[string]string) {
	spy, ok := spanCtx.(*spySpanContext)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	spy.span.FinishStatus = status
	spy.span.FinishAttrs = maps.Clone(attrs)
	spy.span.Finished = true
}

// Spans returns the captured spans.
func (s *TracingCollectorSpy) Spans() []*SpySpan {
	s.mu.Lock()
	defer s.mu.Unlock()
	spans := make([]*SpySpan, len(s.spans))
	copy(spans, s.spans)

	return spans
}

// HasFinishedSpan checks whether a span with the given name was started and
// finished with the given status.
func (s *TracingCollectorSpy) HasFinishedSpan(name string, status string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, span := range s.spans {
		if span.Name == name && span.Finished && span.FinishStatus == status {
			return true
		}
	}

	return false
}

// Ensure TracingCollectorSpy implements catalog.TracingCollector.
var _ catalog.TracingCollector = (*TracingCollectorSpy)(nil)
