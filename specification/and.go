package specification

// and used to create a new specification that is the AND of two other specifications.
type and[T any] struct {
	base[T]
	Left  Specification[T]
	Right Specification[T]
}

func (spec *and[T]) IsSatisfiedBy(t T) bool {
	return spec.Left.IsSatisfiedBy(t) && spec.Right.IsSatisfiedBy(t)
}
