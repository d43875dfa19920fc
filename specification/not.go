package specification

// not used to create a new specification that is the inverse (NOT) of the given Spec.
type not[T any] struct {
	base[T]
	Spec Specification[T]
}

func (spec *not[T]) IsSatisfiedBy(t T) bool {
	return !spec.Spec.IsSatisfiedBy(t)
}
