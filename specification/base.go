package specification

// base carries the combinator methods shared by every specification.
// self points at the outermost value so that combinators compose the
// embedding specification rather than the embedded base.
type base[T any] struct {
	self      Specification[T]
	predicate func(t T) bool
}

func (spec *base[T]) IsSatisfiedBy(t T) bool {
	return spec.predicate(t)
}

func (spec *base[T]) And(another Specification[T]) Specification[T] {
	return And[T](spec.self, another)
}

func (spec *base[T]) Or(another Specification[T]) Specification[T] {
	return Or[T](spec.self, another)
}

func (spec *base[T]) Not() Specification[T] {
	return Not[T](spec.self)
}
