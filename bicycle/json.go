package bicycle

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type partJSON struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	NeedsSpare  *bool  `json:"needs_spare,omitempty"`
}

func (p Part) MarshalJSON() ([]byte, error) {
	needsSpare := p.needsSpare
	return json.Marshal(partJSON{Name: p.name, Description: p.description, NeedsSpare: &needsSpare})
}

// UnmarshalJSON decodes a part. An absent needs_spare means the part needs a spare,
// and unknown keys are ignored. A null part or a null needs_spare is rejected.
func (p *Part) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return ErrNullPart
	}
	var v partJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	opts := []Option{Name(v.Name), Description(v.Description)}
	if v.NeedsSpare != nil {
		opts = append(opts, NeedsSpare(*v.NeedsSpare))
	} else if json.Get(data, "needs_spare").ValueType() == jsoniter.NilValue {
		return fmt.Errorf("needs_spare: %w", ErrNullPart)
	}
	*p = NewPart(opts...)
	return nil
}

// MarshalJSON encodes the parts as an array, in order.
func (p Parts) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ToSlice())
}

// ParseParts decodes a JSON array of parts.
func ParseParts(data []byte) (*Parts, error) {
	var parts []Part
	if err := json.Unmarshal(data, &parts); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return NewParts(parts...), nil
}
