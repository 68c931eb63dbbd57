package specification

import (
	"slices"
)

// Specification is the contract for a predicate over items of type T.
//
// Implementations must be free of side effects: IsSatisfiedBy may be called
// any number of times, in any order, against any item.
type Specification[T any] interface {
	IsSatisfiedBy(item T) bool
}

/***** AndSpecification *****/

// AndSpecification is satisfied only if all composed specifications are
// satisfied. Evaluation short-circuits on the first unsatisfied child, which
// is unobservable since specifications have no side effects.
type AndSpecification[T any] struct {
	specs []Specification[T]
}

// And composes one or multiple specifications into an AndSpecification.
//
// It sanitizes the input by removing nil specifications. An AndSpecification
// without any children is vacuously satisfied by every item.
func And[T any](spec Specification[T], additionalSpecs ...Specification[T]) AndSpecification[T] {
	return AndSpecification[T]{specs: sanitizeSpecs(spec, additionalSpecs...)}
}

// Specs returns the composed specifications.
func (s AndSpecification[T]) Specs() []Specification[T] {
	return s.specs
}

// IsSatisfiedBy reports whether all composed specifications are satisfied by the item.
func (s AndSpecification[T]) IsSatisfiedBy(item T) bool {
	for _, spec := range s.specs {
		if !spec.IsSatisfiedBy(item) {
			return false
		}
	}

	return true
}

/***** OrSpecification *****/

// OrSpecification is satisfied if at least one composed specification is satisfied.
type OrSpecification[T any] struct {
	specs []Specification[T]
}

// Or composes one or multiple specifications into an OrSpecification.
//
// It sanitizes the input by removing nil specifications. An OrSpecification
// without any children is satisfied by no item.
func Or[T any](spec Specification[T], additionalSpecs ...Specification[T]) OrSpecification[T] {
	return OrSpecification[T]{specs: sanitizeSpecs(spec, additionalSpecs...)}
}

// Specs returns the composed specifications.
func (s OrSpecification[T]) Specs() []Specification[T] {
	return s.specs
}

// IsSatisfiedBy reports whether at least one composed specification is satisfied by the item.
func (s OrSpecification[T]) IsSatisfiedBy(item T) bool {
	for _, spec := range s.specs {
		if spec.IsSatisfiedBy(item) {
			return true
		}
	}

	return false
}

/***** NotSpecification *****/

// NotSpecification negates the specification it wraps.
type NotSpecification[T any] struct {
	spec Specification[T]
}

// Not negates the given specification.
//
// It sanitizes the input: a nil specification is treated like All, so the
// negation is satisfied by no item. This keeps in-memory evaluation and
// compiled storage queries in agreement.
func Not[T any](spec Specification[T]) NotSpecification[T] {
	if spec == nil {
		return NotSpecification[T]{spec: All[T]()}
	}

	return NotSpecification[T]{spec: spec}
}

// Spec returns the negated specification.
func (s NotSpecification[T]) Spec() Specification[T] {
	return s.spec
}

// IsSatisfiedBy reports whether the negated specification is not satisfied by the item.
func (s NotSpecification[T]) IsSatisfiedBy(item T) bool {
	return !s.spec.IsSatisfiedBy(item)
}

/***** PredicateSpecification *****/

// PredicateSpecification adapts a plain predicate function to the
// Specification contract. It is opaque to storage engines: they cannot
// compile it to their query language and must evaluate it in memory.
type PredicateSpecification[T any] struct {
	predicate func(T) bool
}

// Satisfies wraps a predicate function as a specification.
func Satisfies[T any](predicate func(T) bool) PredicateSpecification[T] {
	return PredicateSpecification[T]{predicate: predicate}
}

// IsSatisfiedBy reports whether the wrapped predicate holds for the item.
// A nil predicate is satisfied by no item.
func (s PredicateSpecification[T]) IsSatisfiedBy(item T) bool {
	if s.predicate == nil {
		return false
	}

	return s.predicate(item)
}

/***** AllSpecification *****/

// AllSpecification is satisfied by every item. It is the neutral element of
// And and lets callers express "no criterion" without special-casing nil.
type AllSpecification[T any] struct{}

// All returns the specification that matches every item.
func All[T any]() AllSpecification[T] {
	return AllSpecification[T]{}
}

// IsSatisfiedBy always reports true.
func (s AllSpecification[T]) IsSatisfiedBy(_ T) bool {
	return true
}

func sanitizeSpecs[T any](spec Specification[T], additionalSpecs ...Specification[T]) []Specification[T] {
	allSpecs := append([]Specification[T]{spec}, additionalSpecs...)
	allSpecs = slices.DeleteFunc(
		allSpecs,
		func(s Specification[T]) bool {
			return s == nil
		})
	allSpecs = slices.Clip(allSpecs)

	return allSpecs
}
