// Package locate resolves element selectors against a save's element list.
//
// A [Selector] names an element in exactly one way: by identifier, by type
// code with an optional zero-based occurrence, or by raw position in the
// sequence. Every editor operation goes through [Resolve].
package locate

import (
	"strconv"
	"strings"

	plaxerr "github.com/mapmaths/plax/pkg/errors"
	"github.com/mapmaths/plax/pkg/sav"
)

// Selector picks one element. Exactly one of ID, Type or Index must be set;
// Occurrence may only accompany Type.
type Selector struct {
	ID         string
	Type       string
	Occurrence *int
	Index      *int
}

// ByID selects the element with the given identifier.
func ByID(id string) Selector { return Selector{ID: id} }

// ByType selects the first element of the given type.
func ByType(model string) Selector { return Selector{Type: model} }

// ByTypeN selects the n-th (zero-based) element of the given type.
func ByTypeN(model string, n int) Selector { return Selector{Type: model, Occurrence: &n} }

// ByIndex selects the element at position i of the sequence.
func ByIndex(i int) Selector { return Selector{Index: &i} }

// Validate reports AMBIGUOUS_SELECTOR unless exactly one criterion is set.
func (s Selector) Validate() error {
	n := 0
	if s.ID != "" {
		n++
	}
	if s.Type != "" {
		n++
	}
	if s.Index != nil {
		n++
	}
	switch {
	case n == 0 && s.Occurrence != nil:
		return plaxerr.New(plaxerr.ErrCodeAmbiguousSelector, "occurrence given without a type")
	case n == 0:
		return plaxerr.New(plaxerr.ErrCodeAmbiguousSelector, "no selection criterion")
	case n > 1:
		return plaxerr.New(plaxerr.ErrCodeAmbiguousSelector, "selector %s names more than one criterion", s)
	case s.Occurrence != nil && s.Type == "":
		return plaxerr.New(plaxerr.ErrCodeAmbiguousSelector, "occurrence only applies to a type selector")
	}
	return nil
}

// String renders s in the syntax accepted by Parse.
func (s Selector) String() string {
	var parts []string
	if s.ID != "" {
		parts = append(parts, "id:"+s.ID)
	}
	if s.Type != "" {
		p := "type:" + s.Type
		if s.Occurrence != nil {
			p += "#" + strconv.Itoa(*s.Occurrence)
		}
		parts = append(parts, p)
	}
	if s.Index != nil {
		parts = append(parts, "index:"+strconv.Itoa(*s.Index))
	}
	if len(parts) == 0 {
		return "<empty>"
	}
	return strings.Join(parts, "+")
}

// Resolve returns the selected element and its position in elements.
// The returned element shares storage with the slice entry.
func Resolve(elements []sav.Element, s Selector) (sav.Element, int, error) {
	if err := s.Validate(); err != nil {
		return nil, -1, err
	}

	switch {
	case s.ID != "":
		for i, e := range elements {
			if e.ID() == s.ID {
				return e, i, nil
			}
		}
		return nil, -1, plaxerr.NotFound("no element with identifier %s", s.ID)

	case s.Type != "":
		skip := 0
		if s.Occurrence != nil {
			skip = *s.Occurrence
		}
		if skip < 0 {
			return nil, -1, plaxerr.NotFound("negative occurrence %d", skip)
		}
		seen := 0
		for i, e := range elements {
			if e.ModelID() != s.Type {
				continue
			}
			if seen == skip {
				return e, i, nil
			}
			seen++
		}
		return nil, -1, plaxerr.NotFound("no %s element at occurrence %d (found %d)", s.Type, skip, seen)

	default:
		i := *s.Index
		if i < 0 || i >= len(elements) {
			return nil, -1, plaxerr.NotFound("no element at index %d (have %d)", i, len(elements))
		}
		return elements[i], i, nil
	}
}

// All returns the positions of every element of the given type, in order.
func All(elements []sav.Element, model string) []int {
	var out []int
	for i, e := range elements {
		if e.ModelID() == model {
			out = append(out, i)
		}
	}
	return out
}

// Parse reads a selector from text:
//
//	id:<identifier>
//	type:<model>[#n]
//	index:<i>
//	<i>
func Parse(text string) (Selector, error) {
	kind, value, ok := strings.Cut(text, ":")
	if !ok {
		i, err := strconv.Atoi(text)
		if err != nil {
			return Selector{}, plaxerr.New(plaxerr.ErrCodeInvalidInput, "selector %q: want id:<id>, type:<model>[#n] or index:<i>", text)
		}
		return ByIndex(i), nil
	}
	if value == "" {
		return Selector{}, plaxerr.New(plaxerr.ErrCodeInvalidInput, "selector %q has an empty value", text)
	}

	switch kind {
	case "id":
		return ByID(value), nil
	case "type":
		model, occ, hasOcc := cutLast(value, "#")
		if !hasOcc {
			return ByType(value), nil
		}
		n, err := strconv.Atoi(occ)
		if err != nil {
			return Selector{}, plaxerr.New(plaxerr.ErrCodeInvalidInput, "selector %q: occurrence %q is not a number", text, occ)
		}
		return ByTypeN(model, n), nil
	case "index":
		i, err := strconv.Atoi(value)
		if err != nil {
			return Selector{}, plaxerr.New(plaxerr.ErrCodeInvalidInput, "selector %q: index %q is not a number", text, value)
		}
		return ByIndex(i), nil
	}
	return Selector{}, plaxerr.New(plaxerr.ErrCodeInvalidInput, "selector %q: unknown kind %q", text, kind)
}

func cutLast(s, sep string) (before, after string, found bool) {
	if i := strings.LastIndex(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}
