// Package specification implements the specification pattern for domain
// rules: predicates over a candidate type, composable with And, Or and Not.
package specification

// Specification interface.
// Build specifications with New and compose them with the combinators.
type Specification[T any] interface {
	// IsSatisfiedBy check if candidate is satisfied by the specification.
	IsSatisfiedBy(candidate T) bool
	// And create a new specification that is the AND operation of the current
	// specification and another specification.
	And(another Specification[T]) Specification[T]
	// Or create a new specification that is the OR operation of the current
	// specification and another specification.
	Or(another Specification[T]) Specification[T]
	// Not create a new specification that is the NOT operation of the current
	// specification.
	Not() Specification[T]
}

type specification[T any] struct {
	isSatisfiedBy func(candidate T) bool
}

func New[T any](isSatisfiedBy func(candidate T) bool) Specification[T] {
	return specification[T]{isSatisfiedBy: isSatisfiedBy}
}

func (spec specification[T]) IsSatisfiedBy(candidate T) bool {
	return spec.isSatisfiedBy(candidate)
}

func (spec specification[T]) And(another Specification[T]) Specification[T] {
	return New[T](func(candidate T) bool {
		return spec.IsSatisfiedBy(candidate) && another.IsSatisfiedBy(candidate)
	})
}

func (spec specification[T]) Or(another Specification[T]) Specification[T] {
	return New[T](func(candidate T) bool {
		return spec.IsSatisfiedBy(candidate) || another.IsSatisfiedBy(candidate)
	})
}

func (spec specification[T]) Not() Specification[T] {
	return New[T](func(candidate T) bool {
		return !spec.IsSatisfiedBy(candidate)
	})
}
