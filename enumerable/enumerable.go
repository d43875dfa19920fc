// Package enumerable derives traversal and searching operations from a single
// iteration primitive.
//
// A type that can produce its elements as an iter.Seq embeds Enumerable and
// gets Select, Reject, Find, Count and friends without writing a loop:
//
//	type Parts struct {
//		enumerable.Enumerable[Part]
//		parts []Part
//	}
//
// Operations that need a second type parameter (Map, Reduce, GroupBy) are
// package functions, since methods cannot declare type parameters.
package enumerable

import (
	"iter"

	"github.com/go-leo/composition/specification"
)

// Enumerable mixes traversal operations into any producer of elements.
// The zero value enumerates nothing.
type Enumerable[T any] struct {
	each iter.Seq[T]
}

// New returns an Enumerable whose operations are all built on each.
// each must be restartable: every derived operation ranges over it afresh.
func New[T any](each iter.Seq[T]) Enumerable[T] {
	return Enumerable[T]{each: each}
}

// Of enumerates items in order.
func Of[T any](items ...T) Enumerable[T] {
	return New[T](func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	})
}

// Each returns the underlying primitive.
func (e Enumerable[T]) Each() iter.Seq[T] {
	if e.each == nil {
		return func(func(T) bool) {}
	}
	return e.each
}

// Filter lazily yields the elements satisfying predicate.
func (e Enumerable[T]) Filter(predicate func(T) bool) Enumerable[T] {
	each := e.Each()
	return New[T](func(yield func(T) bool) {
		for t := range each {
			if predicate(t) && !yield(t) {
				return
			}
		}
	})
}

// Select returns, in order, every element for which predicate returns true.
// The result is a new slice and is never nil.
func (e Enumerable[T]) Select(predicate func(T) bool) []T {
	return e.Filter(predicate).ToSlice()
}

// SelectBy is Select driven by a specification.
func (e Enumerable[T]) SelectBy(spec specification.Specification[T]) []T {
	return e.Select(specification.Predicate(spec))
}

// Reject is the complement of Select.
func (e Enumerable[T]) Reject(predicate func(T) bool) []T {
	return e.Select(func(t T) bool { return !predicate(t) })
}

// Find returns the first element satisfying predicate.
func (e Enumerable[T]) Find(predicate func(T) bool) (T, bool) {
	for t := range e.Each() {
		if predicate(t) {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// Any reports whether at least one element satisfies predicate.
func (e Enumerable[T]) Any(predicate func(T) bool) bool {
	_, ok := e.Find(predicate)
	return ok
}

// Every reports whether all elements satisfy predicate. It is true for an empty sequence.
func (e Enumerable[T]) Every(predicate func(T) bool) bool {
	return !e.Any(func(t T) bool { return !predicate(t) })
}

func (e Enumerable[T]) Count() int {
	return e.CountFunc(func(T) bool { return true })
}

func (e Enumerable[T]) CountFunc(predicate func(T) bool) int {
	return Reduce(e.Filter(predicate), 0, func(n int, _ T) int { return n + 1 })
}

func (e Enumerable[T]) IsEmpty() bool {
	for range e.Each() {
		return false
	}
	return true
}

// Partition splits the elements into those satisfying predicate and the rest,
// both in original order.
func (e Enumerable[T]) Partition(predicate func(T) bool) (matched []T, rest []T) {
	matched, rest = []T{}, []T{}
	for t := range e.Each() {
		if predicate(t) {
			matched = append(matched, t)
		} else {
			rest = append(rest, t)
		}
	}
	return matched, rest
}

// ToSlice collects every element into a new slice.
func (e Enumerable[T]) ToSlice() []T {
	return Collect(e.Each())
}
