package editor

import (
	"slices"

	plaxerr "github.com/mapmaths/plax/pkg/errors"
	"github.com/mapmaths/plax/pkg/ident"
	"github.com/mapmaths/plax/pkg/locate"
	"github.com/mapmaths/plax/pkg/sav"
)

// CopyAllElementsAndMove appends a copy of every element shifted by offset.
// Copies get fresh identifiers; originals are left untouched. A numeric
// Components field grows by the number of copies.
func (ed *Editor) CopyAllElementsAndMove(offset sav.Vec3) error {
	var added int
	err := ed.update(func(st *sav.Status) error {
		n, err := ed.duplicate(st, offset)
		added = n
		return err
	})
	if err != nil {
		return err
	}
	ed.bumpComponents(added)
	return nil
}

// CopyAllAndMove copies every element like CopyAllElementsAndMove, then
// copies every wire whose endpoints are both original elements, connecting
// the copy to the copied endpoints with the same pins and colour.
func (ed *Editor) CopyAllAndMove(offset sav.Vec3) error {
	var added int
	err := ed.update(func(st *sav.Status) error {
		n, err := ed.duplicate(st, offset)
		if err != nil {
			return err
		}
		added = n

		index := make(map[string]int, n)
		for i, e := range st.Elements[:n] {
			if _, dup := index[e.ID()]; !dup {
				index[e.ID()] = i
			}
		}

		skipped := 0
		for _, w := range slices.Clone(st.Wires) {
			si, okS := index[w.Source]
			ti, okT := index[w.Target]
			if !okS || !okT {
				skipped++
				continue
			}
			w = w.Clone()
			w.Source = st.Elements[si+n].ID()
			w.Target = st.Elements[ti+n].ID()
			st.Wires = append(st.Wires, w)
		}
		if skipped > 0 {
			ed.logger.Debug("skipped dangling wires", "count", skipped)
		}
		return nil
	})
	if err != nil {
		return err
	}
	ed.bumpComponents(added)
	return nil
}

// duplicate appends shifted deep copies of the current elements and returns
// how many were added.
func (ed *Editor) duplicate(st *sav.Status, offset sav.Vec3) (int, error) {
	n := len(st.Elements)
	gen := ed.ids(st)
	copies := make([]sav.Element, n)
	for i, e := range st.Elements {
		c := e.Clone()
		pos, err := c.Position()
		if err != nil {
			return 0, err
		}
		id, err := gen.Next()
		if err != nil {
			return 0, err
		}
		c.SetID(id)
		c.SetPosition(pos.Add(offset))
		copies[i] = c
	}
	st.Elements = append(st.Elements, copies...)
	ed.logger.Debug("copied elements", "count", n, "offset", offset.String())
	return n, nil
}

func (ed *Editor) bumpComponents(added int) {
	if added == 0 {
		return
	}
	if n, ok := ed.doc.Components(); ok {
		ed.doc.SetComponents(n + added)
	}
}

// Wire connects srcPin of the source element to dstPin of the target
// element. An empty colour means sav.DefaultWireColor.
func (ed *Editor) Wire(src locate.Selector, srcPin int, dst locate.Selector, dstPin int, color sav.WireColor) error {
	if color == "" {
		color = sav.DefaultWireColor
	}
	if !color.Valid() {
		return plaxerr.New(plaxerr.ErrCodeInvalidInput, "unknown wire color %q", color)
	}
	return ed.update(func(st *sav.Status) error {
		s, _, err := locate.Resolve(st.Elements, src)
		if err != nil {
			return err
		}
		t, _, err := locate.Resolve(st.Elements, dst)
		if err != nil {
			return err
		}
		st.Wires = append(st.Wires, sav.Wire{
			Source:    s.ID(),
			SourcePin: srcPin,
			Target:    t.ID(),
			TargetPin: dstPin,
			ColorName: color,
		})
		return nil
	})
}

// Insert places a copy of el at pos and returns its identifier. An empty or
// already used identifier is replaced by a fresh one. A position outside
// the sequence is NOT_FOUND.
func (ed *Editor) Insert(el sav.Element, pos Position) (string, error) {
	var id string
	err := ed.update(func(st *sav.Status) error {
		idx, ok := pos.insertIndex(len(st.Elements))
		if !ok {
			return plaxerr.NotFound("insert position %s outside 1..%d", pos, len(st.Elements)+1)
		}
		c, err := ed.place(ed.ids(st), el)
		if err != nil {
			return err
		}
		id = c.ID()
		st.Elements = slices.Insert(st.Elements, idx, c)
		return nil
	})
	return id, err
}

// Replace substitutes a copy of el for the element with identifier id, or
// for the element sharing el's identifier when id is empty.
func (ed *Editor) Replace(el sav.Element, id string) error {
	if id == "" {
		id = el.ID()
	}
	return ed.update(func(st *sav.Status) error {
		_, idx, err := locate.Resolve(st.Elements, locate.ByID(id))
		if err != nil {
			return err
		}
		return ed.replaceAt(st, idx, el)
	})
}

// ReplaceAt substitutes a copy of el for the element at pos.
func (ed *Editor) ReplaceAt(el sav.Element, pos Position) error {
	return ed.update(func(st *sav.Status) error {
		idx, ok := pos.index(len(st.Elements))
		if !ok {
			return plaxerr.NotFound("no element at position %s (have %d)", pos, len(st.Elements))
		}
		return ed.replaceAt(st, idx, el)
	})
}

func (ed *Editor) replaceAt(st *sav.Status, idx int, el sav.Element) error {
	others := make([]string, 0, len(st.Elements))
	for i, e := range st.Elements {
		if i != idx {
			others = append(others, e.ID())
		}
	}
	c, err := ed.place(ident.New(ed.rand, others...), el)
	if err != nil {
		return err
	}
	st.Elements[idx] = c
	return nil
}

// Change replaces the whole element sequence with copies of elements.
// Duplicate or empty identifiers among them are replaced by fresh ones.
func (ed *Editor) Change(elements []sav.Element) error {
	return ed.update(func(st *sav.Status) error {
		gen := ident.New(ed.rand)
		out := make([]sav.Element, len(elements))
		for i, e := range elements {
			c, err := ed.place(gen, e)
			if err != nil {
				return err
			}
			out[i] = c
		}
		st.Elements = out
		return nil
	})
}

// Append adds copies of elements after the last element and returns their
// identifiers. Identifiers already in the document are replaced.
func (ed *Editor) Append(elements ...sav.Element) ([]string, error) {
	var ids []string
	err := ed.update(func(st *sav.Status) error {
		gen := ed.ids(st)
		ids = make([]string, len(elements))
		for i, e := range elements {
			c, err := ed.place(gen, e)
			if err != nil {
				return err
			}
			ids[i] = c.ID()
			st.Elements = append(st.Elements, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// place copies el and makes its identifier unique within gen.
func (ed *Editor) place(gen *ident.Generator, el sav.Element) (sav.Element, error) {
	c := el.Clone()
	if c == nil {
		c = sav.Element{}
	}
	if id := c.ID(); id != "" && !gen.Taken(id) {
		gen.Reserve(id)
		return c, nil
	}
	id, err := gen.Next()
	if err != nil {
		return nil, err
	}
	ed.logger.Debug("assigned identifier", "old", c.ID(), "new", id)
	c.SetID(id)
	return c, nil
}
