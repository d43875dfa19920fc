package bicycle

type options struct {
	Name        string
	Description string
	NeedsSpare  bool
}

func newOptions(opts ...Option) *options {
	o := &options{NeedsSpare: true}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option configures a Part under construction.
type Option func(o *options)

// Name sets the display name of the part.
func Name(name string) Option {
	return func(o *options) {
		o.Name = name
	}
}

// Description sets the free-text descriptor of the part, e.g. "10-speed".
func Description(description string) Option {
	return func(o *options) {
		o.Description = description
	}
}

// NeedsSpare sets whether a spare has to be carried. Parts need a spare unless told otherwise.
func NeedsSpare(needsSpare bool) Option {
	return func(o *options) {
		o.NeedsSpare = needsSpare
	}
}
