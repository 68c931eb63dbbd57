// Package helper provides shared test utilities for the catalog and
// specification tests.
//
// Test ID Generation:
//
//	GivenUniqueID: generates UUID v7 for test entity IDs
//
// Product Fixtures:
//
//	GivenProduct: builds a validated product for a test
//	GivenSampleProducts: the canonical apple/tree/house trio
//
// Observability Test Doubles:
//
//	LoggerSpy: captures log calls for assertions
//	MetricsCollectorSpy: captures metric calls for assertions
//	TracingCollectorSpy: captures span lifecycles for assertions
package helper
