// Package editor applies edits to a loaded save document.
//
// An [Editor] wraps a [sav.Document]. Each operation decodes StatusSave (or
// CameraSave) once, resolves selectors with [locate.Resolve], mutates the
// decoded copy, and stores it back only when every step succeeded. A failed
// call therefore leaves the document exactly as it was.
//
//	doc, err := sav.Load(path)
//	if err != nil {
//	    return err
//	}
//	ed := editor.New(doc, editor.Options{})
//	if err := ed.Move(locate.ByType("Battery Source"), sav.Vec3{0, 0.1, 0}); err != nil {
//	    return err
//	}
//	if err := ed.CopyAllAndMove(sav.Vec3{1, 0, 0}); err != nil {
//	    return err
//	}
//	return doc.Save("")
//
// Nothing is written to disk until the caller saves the document.
package editor
