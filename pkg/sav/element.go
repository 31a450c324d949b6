package sav

import (
	"fmt"

	plaxerr "github.com/mapmaths/plax/pkg/errors"
)

// Element field names.
const (
	KeyIdentifier = "Identifier"
	KeyModelID    = "ModelID"
	KeyPosition   = "Position"
	KeyRotation   = "Rotation"
	KeyIsBroken   = "IsBroken"
	KeyIsLocked   = "IsLocked"
	KeyProperties = "Properties"

	// LockPropertyKey marks a locked element under LockProperty.
	LockPropertyKey = "锁定"
)

// LockStyle selects how an element's lock state is stored.
type LockStyle int

const (
	// LockAuto defers to the style detected in the document.
	LockAuto LockStyle = iota
	// LockProperty stores a lock as the presence of LockPropertyKey in the
	// element's Properties map.
	LockProperty
	// LockFlag stores a lock as the boolean IsLocked field.
	LockFlag
)

func (s LockStyle) String() string {
	switch s {
	case LockProperty:
		return "property"
	case LockFlag:
		return "flag"
	default:
		return "auto"
	}
}

// ParseLockStyle parses "auto", "property" or "flag".
func ParseLockStyle(s string) (LockStyle, error) {
	switch s {
	case "", "auto":
		return LockAuto, nil
	case "property":
		return LockProperty, nil
	case "flag":
		return LockFlag, nil
	}
	return LockAuto, plaxerr.New(plaxerr.ErrCodeInvalidInput, "unknown lock style %q (want auto, property or flag)", s)
}

// DetectLockStyle reports LockFlag when any element carries a boolean
// IsLocked field, and LockProperty otherwise.
func DetectLockStyle(elements []Element) LockStyle {
	for _, e := range elements {
		if _, ok := e[KeyIsLocked].(bool); ok {
			return LockFlag
		}
	}
	return LockProperty
}

// Element is one entry of the Elements array. Fields this package does not
// interpret are kept as decoded.
type Element map[string]any

// ID returns the element identifier.
func (e Element) ID() string {
	s, _ := e[KeyIdentifier].(string)
	return s
}

// SetID replaces the element identifier.
func (e Element) SetID(id string) {
	e[KeyIdentifier] = id
}

// ModelID returns the element type code.
func (e Element) ModelID() string {
	switch v := e[KeyModelID].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Position returns the logical position.
func (e Element) Position() (Vec3, error) {
	return e.vec(KeyPosition)
}

// SetPosition stores p using the axis-swap convention.
func (e Element) SetPosition(p Vec3) {
	e[KeyPosition] = p.Encode()
}

// Rotation returns the logical rotation.
func (e Element) Rotation() (Vec3, error) {
	return e.vec(KeyRotation)
}

// SetRotation stores r using the axis-swap convention.
func (e Element) SetRotation(r Vec3) {
	e[KeyRotation] = r.Encode()
}

func (e Element) vec(key string) (Vec3, error) {
	s, ok := e[key].(string)
	if !ok {
		return Vec3{}, plaxerr.New(plaxerr.ErrCodeMalformedDocument, "element %s has no %s", e.ID(), key)
	}
	return DecodeVec3(s)
}

// Broken reports the IsBroken field.
func (e Element) Broken() bool {
	b, _ := e[KeyIsBroken].(bool)
	return b
}

// SetBroken sets the IsBroken field.
func (e Element) SetBroken(broken bool) {
	e[KeyIsBroken] = broken
}

// Locked reports whether e is locked under style.
func (e Element) Locked(style LockStyle) bool {
	if style == LockFlag {
		b, _ := e[KeyIsLocked].(bool)
		return b
	}
	props, _ := e[KeyProperties].(map[string]any)
	_, ok := props[LockPropertyKey]
	return ok
}

// SetLocked locks or unlocks e under style. LockAuto is treated as
// LockProperty.
func (e Element) SetLocked(style LockStyle, locked bool) {
	if style == LockFlag {
		e[KeyIsLocked] = locked
		return
	}
	props, ok := e[KeyProperties].(map[string]any)
	if !ok {
		if !locked {
			return
		}
		props = map[string]any{}
		e[KeyProperties] = props
	}
	if locked {
		props[LockPropertyKey] = 1
	} else {
		delete(props, LockPropertyKey)
	}
}

// Clone returns a deep copy of e.
func (e Element) Clone() Element {
	if e == nil {
		return nil
	}
	out := make(Element, len(e))
	for k, v := range e {
		out[k] = deepCopy(v)
	}
	return out
}
