// Package bicycle models the parts of a bicycle and the spares it must carry.
package bicycle

import "fmt"

// Part is one bicycle component. It is an immutable value.
type Part struct {
	name        string
	description string
	needsSpare  bool
}

// NewPart builds a Part. Unset name and description are empty; a Part needs a spare by default.
func NewPart(opts ...Option) Part {
	o := newOptions(opts...)
	return Part{
		name:        o.Name,
		description: o.Description,
		needsSpare:  o.NeedsSpare,
	}
}

func (p Part) Name() string {
	return p.name
}

func (p Part) Description() string {
	return p.description
}

func (p Part) NeedsSpare() bool {
	return p.needsSpare
}

// SameValueAs reports whether p and other have equal attributes.
func (p Part) SameValueAs(other Part) bool {
	return p == other
}

func (p Part) String() string {
	return fmt.Sprintf("%s(%s, needs spare: %t)", p.name, p.description, p.needsSpare)
}
