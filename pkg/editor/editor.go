package editor

import (
	"io"

	"github.com/charmbracelet/log"

	plaxerr "github.com/mapmaths/plax/pkg/errors"
	"github.com/mapmaths/plax/pkg/ident"
	"github.com/mapmaths/plax/pkg/locate"
	"github.com/mapmaths/plax/pkg/sav"
)

// Options configures an Editor.
type Options struct {
	// Lock overrides the lock convention detected in the document.
	// The zero value (sav.LockAuto) uses the detected one.
	Lock sav.LockStyle

	// Rand is the random source for new identifiers (crypto/rand when nil).
	Rand io.Reader

	// Logger receives debug output for bulk edits (discarded when nil).
	Logger *log.Logger
}

// Editor applies edits to one document. It is not safe for concurrent use.
type Editor struct {
	doc    *sav.Document
	lock   sav.LockStyle
	rand   io.Reader
	logger *log.Logger
}

// New returns an Editor for doc.
func New(doc *sav.Document, opts Options) *Editor {
	lock := opts.Lock
	if lock == sav.LockAuto {
		lock = doc.Variant().Lock
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Editor{doc: doc, lock: lock, rand: opts.Rand, logger: logger}
}

// Document returns the edited document.
func (ed *Editor) Document() *sav.Document { return ed.doc }

// LockStyle returns the lock convention in use.
func (ed *Editor) LockStyle() sav.LockStyle { return ed.lock }

// update runs fn on a decoded copy of the status and stores the result only
// if fn succeeds.
func (ed *Editor) update(fn func(st *sav.Status) error) error {
	st, err := ed.doc.Status()
	if err != nil {
		return err
	}
	if err := fn(st); err != nil {
		return err
	}
	return ed.doc.SetStatus(st)
}

// ids returns a generator that avoids every identifier in st.
func (ed *Editor) ids(st *sav.Status) *ident.Generator {
	return ident.New(ed.rand, st.IDs()...)
}

// Elements returns a copy of the element sequence.
func (ed *Editor) Elements() ([]sav.Element, error) {
	st, err := ed.doc.Status()
	if err != nil {
		return nil, err
	}
	return st.Elements, nil
}

// Wires returns a copy of the wire list.
func (ed *Editor) Wires() ([]sav.Wire, error) {
	st, err := ed.doc.Status()
	if err != nil {
		return nil, err
	}
	return st.Wires, nil
}

// Element returns a copy of the selected element and its index.
func (ed *Editor) Element(sel locate.Selector) (sav.Element, int, error) {
	st, err := ed.doc.Status()
	if err != nil {
		return nil, -1, err
	}
	return locate.Resolve(st.Elements, sel)
}

// Edit resolves sel and applies fn to the element.
func (ed *Editor) Edit(sel locate.Selector, fn func(e sav.Element) error) error {
	return ed.update(func(st *sav.Status) error {
		e, _, err := locate.Resolve(st.Elements, sel)
		if err != nil {
			return err
		}
		return fn(e)
	})
}

// EditAll applies fn to every element.
func (ed *Editor) EditAll(fn func(e sav.Element) error) error {
	return ed.update(func(st *sav.Status) error {
		for _, e := range st.Elements {
			if err := fn(e); err != nil {
				return err
			}
		}
		ed.logger.Debug("edited elements", "count", len(st.Elements))
		return nil
	})
}

// EditType applies fn to every element of the given type. It fails with
// NOT_FOUND when the document has none.
func (ed *Editor) EditType(model string, fn func(e sav.Element) error) error {
	return ed.update(func(st *sav.Status) error {
		idx := locate.All(st.Elements, model)
		if len(idx) == 0 {
			return plaxerr.NotFound("no %s elements", model)
		}
		for _, i := range idx {
			if err := fn(st.Elements[i]); err != nil {
				return err
			}
		}
		ed.logger.Debug("edited elements", "type", model, "count", len(idx))
		return nil
	})
}
