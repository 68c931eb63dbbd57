// Package specification provides a small, composable predicate algebra for
// filtering collections of arbitrary items.
//
// A Specification answers a single question: does this item satisfy this
// criterion? Specifications are immutable values, stateless after construction,
// and combine with the usual boolean connectives. The closed set of variants
// (predicate, and, or, not, all) is intentionally introspectable so that
// storage engines can compile the same specification values into their own
// query language instead of evaluating them in memory.
//
// Key types:
//   - Specification: the predicate contract
//   - AndSpecification / OrSpecification / NotSpecification: boolean composition
//   - PredicateSpecification: adapter for plain func(T) bool predicates
//   - AllSpecification: the neutral specification matching every item
//
// Common usage pattern:
//
//	greenAndLarge := specification.And[catalog.Product](
//		catalog.HasColor(catalog.ColorGreen),
//		catalog.HasSize(catalog.SizeLarge))
//
//	for product := range specification.FilterSlice(products, greenAndLarge) {
//		// only green, large products, in input order
//	}
package specification
