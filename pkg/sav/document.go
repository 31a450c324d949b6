package sav

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	plaxerr "github.com/mapmaths/plax/pkg/errors"
)

// Body field names.
const (
	KeyExperiment = "Experiment"
	KeyStatusSave = "StatusSave"
	KeyCameraSave = "CameraSave"
	KeyComponents = "Components"
	KeySummary    = "Summary"
	KeySubject    = "Subject"
)

// Layout tells where the gameplay fields live in a document.
type Layout int

const (
	// LayoutSimplified keeps gameplay fields at the document root.
	LayoutSimplified Layout = iota
	// LayoutNested keeps gameplay fields under the Experiment object.
	LayoutNested
)

func (l Layout) String() string {
	if l == LayoutNested {
		return "nested"
	}
	return "simplified"
}

// Variant is the set of format conventions a document follows.
type Variant struct {
	Layout Layout
	Lock   LockStyle
}

// Document is a parsed save file. It is not safe for concurrent use.
type Document struct {
	path    string
	root    map[string]any
	body    map[string]any
	variant Variant
}

// Load reads and parses the save file at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, plaxerr.Wrap(plaxerr.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Read(f)
	if err != nil {
		return nil, err
	}
	doc.path = path
	return doc, nil
}

// Parse parses a save file held in memory.
func Parse(data []byte) (*Document, error) {
	return Read(bytes.NewReader(data))
}

// Read parses a save file from r and resolves its format variant.
// Syntax errors, in the document or in StatusSave or CameraSave, are
// reported as MALFORMED_DOCUMENT.
func Read(r io.Reader) (*Document, error) {
	var root map[string]any
	if err := decodeReader(r, &root); err != nil {
		return nil, plaxerr.Malformed(err, "decode document")
	}
	if root == nil {
		return nil, plaxerr.New(plaxerr.ErrCodeMalformedDocument, "document is not a JSON object")
	}

	doc := &Document{root: root, body: root}
	if exp, ok := root[KeyExperiment].(map[string]any); ok {
		doc.body = exp
		doc.variant.Layout = LayoutNested
	}

	doc.variant.Lock = LockProperty
	if doc.HasStatus() {
		st, err := doc.Status()
		if err != nil {
			return nil, err
		}
		doc.variant.Lock = DetectLockStyle(st.Elements)
	}
	if _, ok := doc.body[KeyCameraSave]; ok {
		if _, err := doc.Camera(); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// Path returns the file the document was loaded from, if any.
func (d *Document) Path() string { return d.path }

// Variant returns the format conventions detected at load.
func (d *Document) Variant() Variant { return d.variant }

// Field returns a top-level gameplay field.
func (d *Document) Field(key string) (any, bool) {
	v, ok := d.body[key]
	return v, ok
}

// HasStatus reports whether the document carries a StatusSave field.
func (d *Document) HasStatus() bool {
	_, ok := d.body[KeyStatusSave]
	return ok
}

// Status decodes a fresh copy of StatusSave.
func (d *Document) Status() (*Status, error) {
	var st Status
	if err := d.decodeField(KeyStatusSave, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// SetStatus encodes st into StatusSave.
func (d *Document) SetStatus(st *Status) error {
	return d.encodeField(KeyStatusSave, st)
}

// Camera decodes a fresh copy of CameraSave.
func (d *Document) Camera() (Camera, error) {
	var c Camera
	if err := d.decodeField(KeyCameraSave, &c); err != nil {
		return nil, err
	}
	if c == nil {
		return nil, plaxerr.New(plaxerr.ErrCodeMalformedDocument, "%s is not a JSON object", KeyCameraSave)
	}
	return c, nil
}

// SetCamera encodes c into CameraSave.
func (d *Document) SetCamera(c Camera) error {
	return d.encodeField(KeyCameraSave, c)
}

func (d *Document) decodeField(key string, v any) error {
	raw, ok := d.body[key]
	if !ok {
		return plaxerr.New(plaxerr.ErrCodeMalformedDocument, "document has no %s", key)
	}
	s, ok := raw.(string)
	if !ok {
		return plaxerr.New(plaxerr.ErrCodeMalformedDocument, "%s is %T, want string", key, raw)
	}
	if err := decodeJSON([]byte(s), v); err != nil {
		return plaxerr.Malformed(err, "decode %s", key)
	}
	return nil
}

func (d *Document) encodeField(key string, v any) error {
	s, err := encodeString(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	d.body[key] = s
	return nil
}

// Components returns the element-count summary field, if present.
func (d *Document) Components() (int, bool) {
	f, ok := number(d.body[KeyComponents])
	return int(f), ok
}

// SetComponents overwrites the element-count summary field.
func (d *Document) SetComponents(n int) {
	d.body[KeyComponents] = n
}

// Subject returns Summary.Subject from the document root, or "".
func (d *Document) Subject() string {
	summary, _ := d.root[KeySummary].(map[string]any)
	s, _ := summary[KeySubject].(string)
	return s
}

// Write encodes the document with sorted keys and two-space indentation.
func (d *Document) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d.root); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Save writes the document to path, or to the path it was loaded from when
// path is empty.
func (d *Document) Save(path string) error {
	if path == "" {
		path = d.path
	}
	if path == "" {
		return plaxerr.New(plaxerr.ErrCodeInvalidInput, "no output path")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := d.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
