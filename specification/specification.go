package specification

// Specification is a reusable predicate over T that composes with others.
// Use New to build one from a plain function; only the predicate has to be written.
type Specification[T any] interface {

	// IsSatisfiedBy check if t is satisfied by the specification.
	IsSatisfiedBy(t T) bool

	// And create a new specification that is the AND operation of the current specification and
	// another specification.
	And(another Specification[T]) Specification[T]

	// Or create a new specification that is the OR operation of the current specification and
	// another specification.
	Or(another Specification[T]) Specification[T]

	// Not create a new specification that is the inverse of the current specification.
	Not() Specification[T]
}

// New returns a Specification satisfied whenever predicate returns true.
func New[T any](predicate func(t T) bool) Specification[T] {
	b := &base[T]{}
	b.self = b
	b.predicate = predicate
	return b
}

func And[T any](left Specification[T], right Specification[T]) Specification[T] {
	spec := &and[T]{Left: left, Right: right}
	spec.self = spec
	return spec
}

func Or[T any](left Specification[T], right Specification[T]) Specification[T] {
	spec := &or[T]{Left: left, Right: right}
	spec.self = spec
	return spec
}

func Not[T any](spec Specification[T]) Specification[T] {
	n := &not[T]{Spec: spec}
	n.self = n
	return n
}

// Conjunction is satisfied when all specs are. An empty conjunction is always satisfied.
func Conjunction[T any](specs ...Specification[T]) Specification[T] {
	spec := &conjunction[T]{Specs: specs}
	spec.self = spec
	return spec
}

// Disjunction is satisfied when any of specs is. An empty disjunction is never satisfied.
func Disjunction[T any](specs ...Specification[T]) Specification[T] {
	spec := &disjunction[T]{Specs: specs}
	spec.self = spec
	return spec
}

// Predicate adapts spec to a plain function, handy for slice and iterator helpers.
func Predicate[T any](spec Specification[T]) func(t T) bool {
	return spec.IsSatisfiedBy
}
