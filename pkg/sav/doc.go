// Package sav reads and writes circuit save files.
//
// # Format
//
// A save file is a UTF-8 JSON object. Two layouts exist: a simplified one
// where the gameplay fields sit at the root, and a nested one where they sit
// under an "Experiment" object. Either way the gameplay body carries two
// fields whose values are JSON documents encoded as strings:
//
//   - StatusSave: {"Elements": [...], "Wires": [...], ...}
//   - CameraSave: {"Mode": 0, "Distance": 8, "VisionCenter": "0,1,0", ...}
//
// [Document.Status] and [Document.SetStatus] (and the Camera pair) are the
// only way to reach those fields. Each getter decodes a fresh copy and each
// setter re-encodes it into the owning string, so callers mutate a copy and
// then store it explicitly.
//
// # Coordinates
//
// Positions and rotations are stored as comma-joined triples with the last
// two axes swapped: logical [x, y, z] is stored as "x,z,y". [DecodeVec3] and
// [Vec3.Encode] apply the swap; nothing else in the module touches the raw
// strings.
//
// # Variants
//
// Format revisions disagree on how a locked element is marked. [LockProperty]
// puts a key into the element's Properties map, [LockFlag] sets a boolean
// field. The variant is detected once by [Read] and reported by
// [Document.Variant].
//
// # Fidelity
//
// Numbers are decoded as json.Number and unknown fields are kept, so a
// document that is read and written without mutation is semantically
// identical to its input. Keys are written in sorted order with two-space
// indentation.
package sav
