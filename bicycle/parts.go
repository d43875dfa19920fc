package bicycle

import (
	"iter"

	"github.com/go-leo/composition/enumerable"
	"github.com/go-leo/composition/specification"
	"golang.org/x/exp/slices"
)

// SpareNeeded is satisfied by every part that needs a spare.
var SpareNeeded = specification.New(func(p Part) bool {
	return p.NeedsSpare()
})

// partEnumerable names the mixin so that it embeds as an unexported field.
type partEnumerable = enumerable.Enumerable[Part]

// Parts is a read-only, ordered collection of Part.
//
// Size and All are forwarded to the wrapped slice. Everything else, Spares
// included, comes from the embedded Enumerable, which only ever ranges over All.
type Parts struct {
	partEnumerable
	parts []Part
}

// NewParts keeps its own copy of parts, so later changes to the caller's slice are not observed.
func NewParts(parts ...Part) *Parts {
	p := &Parts{parts: slices.Clone(parts)}
	p.partEnumerable = enumerable.New(p.All())
	return p
}

// Size returns the number of parts.
func (p *Parts) Size() int {
	return len(p.parts)
}

// All yields the parts in insertion order. The sequence may be ranged over any number of times.
func (p *Parts) All() iter.Seq[Part] {
	return func(yield func(Part) bool) {
		for _, part := range p.parts {
			if !yield(part) {
				return
			}
		}
	}
}

// Spares returns the parts that need a spare, in their original order.
func (p *Parts) Spares() []Part {
	return p.SelectBy(SpareNeeded)
}
