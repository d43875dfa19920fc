package enumerable

import "iter"

// Collect gathers seq into a new, non-nil slice.
func Collect[T any](seq iter.Seq[T]) []T {
	items := []T{}
	for t := range seq {
		items = append(items, t)
	}
	return items
}

// Map lazily transforms every element of e.
func Map[T any, R any](e Enumerable[T], transform func(T) R) Enumerable[R] {
	each := e.Each()
	return New[R](func(yield func(R) bool) {
		for t := range each {
			if !yield(transform(t)) {
				return
			}
		}
	})
}

// Reduce folds the elements of e into acc from left to right.
func Reduce[T any, A any](e Enumerable[T], acc A, fn func(acc A, t T) A) A {
	for t := range e.Each() {
		acc = fn(acc, t)
	}
	return acc
}

// GroupBy buckets elements by key, keeping encounter order inside each bucket.
func GroupBy[T any, K comparable](e Enumerable[T], key func(T) K) map[K][]T {
	return Reduce(e, map[K][]T{}, func(groups map[K][]T, t T) map[K][]T {
		k := key(t)
		groups[k] = append(groups[k], t)
		return groups
	})
}
