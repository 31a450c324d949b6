package sav

import (
	"encoding/json"
	"fmt"
	"maps"
)

// Status is the decoded StatusSave object.
type Status struct {
	Elements []Element
	Wires    []Wire

	// rest holds every decoded field verbatim, including the original
	// Elements and Wires.
	rest map[string]json.RawMessage
}

// UnmarshalJSON decodes a StatusSave object, keeping unknown fields.
func (s *Status) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := decodeJSON(data, &fields); err != nil {
		return err
	}
	var elements []Element
	if raw, ok := fields["Elements"]; ok {
		if err := decodeJSON(raw, &elements); err != nil {
			return err
		}
	}
	for i, e := range elements {
		if e == nil {
			return fmt.Errorf("element %d is null", i)
		}
	}
	var wires []Wire
	if raw, ok := fields["Wires"]; ok {
		if err := decodeJSON(raw, &wires); err != nil {
			return err
		}
	}
	s.Elements, s.Wires, s.rest = elements, wires, fields
	return nil
}

// MarshalJSON encodes s. A nil Elements or Wires slice keeps the field as it
// was decoded.
func (s Status) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.rest)+2)
	for k, v := range s.rest {
		out[k] = v
	}
	if s.Elements != nil {
		out["Elements"] = s.Elements
	}
	if s.Wires != nil {
		out["Wires"] = s.Wires
	}
	return encodeJSON(out)
}

// Clone returns a deep copy of s.
func (s *Status) Clone() *Status {
	out := &Status{rest: maps.Clone(s.rest)}
	if s.Elements != nil {
		out.Elements = make([]Element, len(s.Elements))
		for i, e := range s.Elements {
			out.Elements[i] = e.Clone()
		}
	}
	if s.Wires != nil {
		out.Wires = make([]Wire, len(s.Wires))
		for i, w := range s.Wires {
			out.Wires[i] = w.Clone()
		}
	}
	return out
}

// IDs returns the identifiers of all elements in sequence order.
func (s *Status) IDs() []string {
	ids := make([]string, len(s.Elements))
	for i, e := range s.Elements {
		ids[i] = e.ID()
	}
	return ids
}
