package sav

import plaxerr "github.com/mapmaths/plax/pkg/errors"

// Camera field names.
const (
	KeyMode           = "Mode"
	KeyDistance       = "Distance"
	KeyVisionCenter   = "VisionCenter"
	KeyTargetRotation = "TargetRotation"
)

// CameraMode selects the simulation the camera is set up for.
type CameraMode int

const (
	ModeElectricity     CameraMode = 0
	ModeGraphical       CameraMode = 1
	ModeUniverse        CameraMode = 3
	ModeElectromagnetic CameraMode = 4
)

var cameraModeNames = map[CameraMode]string{
	ModeElectricity:     "electricity",
	ModeGraphical:       "graphical",
	ModeUniverse:        "universe",
	ModeElectromagnetic: "electromagnetic",
}

// Valid reports whether m is a mode the game knows.
func (m CameraMode) Valid() bool {
	_, ok := cameraModeNames[m]
	return ok
}

func (m CameraMode) String() string {
	if s, ok := cameraModeNames[m]; ok {
		return s
	}
	return "unknown"
}

// ParseCameraMode accepts a mode name or its number.
func ParseCameraMode(s string) (CameraMode, error) {
	for m, name := range cameraModeNames {
		if s == name || s == formatFloat(float64(m)) {
			return m, nil
		}
	}
	return 0, plaxerr.New(plaxerr.ErrCodeInvalidInput, "unknown camera mode %q (want 0, 1, 3, 4 or electricity, graphical, universe, electromagnetic)", s)
}

// Camera is the decoded CameraSave object.
type Camera map[string]any

// Mode returns the camera mode and whether it is set.
func (c Camera) Mode() (CameraMode, bool) {
	f, ok := number(c[KeyMode])
	return CameraMode(f), ok
}

// SetMode sets the camera mode.
func (c Camera) SetMode(m CameraMode) {
	c[KeyMode] = int(m)
}

// Distance returns the distance to the vision center and whether it is set.
func (c Camera) Distance() (float64, bool) {
	return number(c[KeyDistance])
}

// SetDistance sets the distance to the vision center.
func (c Camera) SetDistance(d float64) {
	c[KeyDistance] = d
}

// Center returns the logical vision center.
func (c Camera) Center() (Vec3, error) {
	return c.vec(KeyVisionCenter)
}

// SetCenter stores the vision center using the axis-swap convention.
func (c Camera) SetCenter(v Vec3) {
	c[KeyVisionCenter] = v.Encode()
}

// Rotation returns the logical target rotation.
func (c Camera) Rotation() (Vec3, error) {
	return c.vec(KeyTargetRotation)
}

// SetRotation stores the target rotation using the axis-swap convention.
func (c Camera) SetRotation(v Vec3) {
	c[KeyTargetRotation] = v.Encode()
}

func (c Camera) vec(key string) (Vec3, error) {
	s, ok := c[key].(string)
	if !ok {
		return Vec3{}, plaxerr.New(plaxerr.ErrCodeMalformedDocument, "camera has no %s", key)
	}
	return DecodeVec3(s)
}
