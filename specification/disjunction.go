package specification

// disjunction is satisfied as soon as one of Specs is.
type disjunction[T any] struct {
	base[T]
	Specs []Specification[T]
}

func (spec *disjunction[T]) IsSatisfiedBy(t T) bool {
	for _, s := range spec.Specs {
		if s.IsSatisfiedBy(t) {
			return true
		}
	}
	return false
}
