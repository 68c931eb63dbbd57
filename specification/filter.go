package specification

import (
	"iter"
	"slices"
)

// Filter lazily selects the items satisfying the given specification.
//
// The returned sequence preserves the relative order of matching items, is
// finite whenever the input sequence is finite, and can be ranged over again
// if the input sequence supports it. Nothing is evaluated before the caller
// starts ranging. A nil specification matches every item.
func Filter[T any](items iter.Seq[T], spec Specification[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if items == nil {
			return
		}

		for item := range items {
			if spec != nil && !spec.IsSatisfiedBy(item) {
				continue
			}

			if !yield(item) {
				return
			}
		}
	}
}

// FilterSlice is a convenience wrapper around Filter for slice inputs.
func FilterSlice[T any](items []T, spec Specification[T]) iter.Seq[T] {
	return Filter(slices.Values(items), spec)
}

// CollectMatching applies the specification to the items and returns the
// matches as a new slice, preserving input order. Filtering an empty or nil
// slice yields an empty (non-nil) slice.
func CollectMatching[T any](items []T, spec Specification[T]) []T {
	matching := make([]T, 0)
	for item := range FilterSlice(items, spec) {
		matching = append(matching, item)
	}

	return matching
}
