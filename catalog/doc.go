// Package catalog provides the product domain for the specification library:
// a small, immutable Product record with comparable attributes (color, size)
// and typed specifications over it.
//
// The typed specifications (HasColor, HasSize, NameStartsWith) are concrete
// types with accessors so that storage engines can compile them into their
// own query language. Combined with the boolean combinators from the
// specification package, the same values filter in-memory collections and
// drive SQL queries in catalog/postgresengine.
//
// Common usage pattern:
//
//	product, err := catalog.BuildProductWithGeneratedID("Tree", catalog.ColorGreen, catalog.SizeLarge)
//	if err != nil {
//		// handle error
//	}
//
//	greenAndLarge := specification.And[catalog.Product](
//		catalog.HasColor(catalog.ColorGreen),
//		catalog.HasSize(catalog.SizeLarge))
//
//	matches := specification.CollectMatching(products, greenAndLarge)
//
// The package also defines the dependency-free observability interfaces
// (Logger, ContextualLogger, MetricsCollector, TracingCollector) consumed by
// the storage engines, and the common error definitions shared across them.
package catalog
