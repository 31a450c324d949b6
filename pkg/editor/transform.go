package editor

import (
	"github.com/mapmaths/plax/pkg/locate"
	"github.com/mapmaths/plax/pkg/sav"
)

// CameraUpdate lists camera fields to change. Nil fields are left alone.
type CameraUpdate struct {
	Mode     *sav.CameraMode
	Distance *float64
	Center   *sav.Vec3
	Rotation *sav.Vec3
}

// SetCamera applies u to CameraSave.
func (ed *Editor) SetCamera(u CameraUpdate) error {
	cam, err := ed.doc.Camera()
	if err != nil {
		return err
	}
	if u.Mode != nil {
		cam.SetMode(*u.Mode)
	}
	if u.Distance != nil {
		cam.SetDistance(*u.Distance)
	}
	if u.Center != nil {
		cam.SetCenter(*u.Center)
	}
	if u.Rotation != nil {
		cam.SetRotation(*u.Rotation)
	}
	return ed.doc.SetCamera(cam)
}

// Camera returns a copy of the decoded camera.
func (ed *Editor) Camera() (sav.Camera, error) {
	return ed.doc.Camera()
}

// SetPosition moves the selected element to pos.
func (ed *Editor) SetPosition(sel locate.Selector, pos sav.Vec3) error {
	return ed.Edit(sel, SetPositionFunc(pos))
}

// SetPositionAxes moves the selected element along the non-nil axes only.
func (ed *Editor) SetPositionAxes(sel locate.Selector, x, y, z *float64) error {
	return ed.Edit(sel, func(e sav.Element) error {
		pos, err := e.Position()
		if err != nil {
			return err
		}
		for i, v := range []*float64{x, y, z} {
			if v != nil {
				pos[i] = *v
			}
		}
		e.SetPosition(pos)
		return nil
	})
}

// SetRotation sets the rotation of the selected element.
func (ed *Editor) SetRotation(sel locate.Selector, rot sav.Vec3) error {
	return ed.Edit(sel, func(e sav.Element) error {
		e.SetRotation(rot)
		return nil
	})
}

// Move shifts the selected element by delta.
func (ed *Editor) Move(sel locate.Selector, delta sav.Vec3) error {
	return ed.Edit(sel, moveBy(delta))
}

// MoveAll shifts every element by delta.
func (ed *Editor) MoveAll(delta sav.Vec3) error {
	return ed.EditAll(moveBy(delta))
}

// Gather moves every element to pos.
func (ed *Editor) Gather(pos sav.Vec3) error {
	return ed.EditAll(SetPositionFunc(pos))
}

// MoveFunc returns an edit function that shifts an element by delta, for
// use with Edit, EditAll and EditType.
func MoveFunc(delta sav.Vec3) func(sav.Element) error {
	return moveBy(delta)
}

// SetPositionFunc returns an edit function that places an element at pos.
func SetPositionFunc(pos sav.Vec3) func(sav.Element) error {
	return func(e sav.Element) error {
		e.SetPosition(pos)
		return nil
	}
}

func moveBy(delta sav.Vec3) func(sav.Element) error {
	return func(e sav.Element) error {
		pos, err := e.Position()
		if err != nil {
			return err
		}
		e.SetPosition(pos.Add(delta))
		return nil
	}
}

// Lock locks the selected element.
func (ed *Editor) Lock(sel locate.Selector) error { return ed.Edit(sel, ed.setLocked(true)) }

// Unlock unlocks the selected element.
func (ed *Editor) Unlock(sel locate.Selector) error { return ed.Edit(sel, ed.setLocked(false)) }

// Break marks the selected element broken.
func (ed *Editor) Break(sel locate.Selector) error { return ed.Edit(sel, setBroken(true)) }

// Fix clears the broken mark on the selected element.
func (ed *Editor) Fix(sel locate.Selector) error { return ed.Edit(sel, setBroken(false)) }

// LockAll locks every element.
func (ed *Editor) LockAll() error { return ed.EditAll(ed.setLocked(true)) }

// UnlockAll unlocks every element.
func (ed *Editor) UnlockAll() error { return ed.EditAll(ed.setLocked(false)) }

// BreakAll marks every element broken.
func (ed *Editor) BreakAll() error { return ed.EditAll(setBroken(true)) }

// FixAll clears the broken mark on every element.
func (ed *Editor) FixAll() error { return ed.EditAll(setBroken(false)) }

// SetLockedFunc returns an edit function that applies the editor's lock
// convention, for use with Edit, EditAll and EditType.
func (ed *Editor) SetLockedFunc(locked bool) func(sav.Element) error {
	return ed.setLocked(locked)
}

// SetBrokenFunc returns an edit function that sets IsBroken.
func SetBrokenFunc(broken bool) func(sav.Element) error {
	return setBroken(broken)
}

func (ed *Editor) setLocked(locked bool) func(sav.Element) error {
	return func(e sav.Element) error {
		e.SetLocked(ed.lock, locked)
		return nil
	}
}

func setBroken(broken bool) func(sav.Element) error {
	return func(e sav.Element) error {
		e.SetBroken(broken)
		return nil
	}
}
