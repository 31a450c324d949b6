package sav

import (
	"strconv"
	"strings"

	plaxerr "github.com/mapmaths/plax/pkg/errors"
)

// Vec3 is a logical [x, y, z] triple.
type Vec3 [3]float64

// DecodeVec3 parses a stored "x,z,y" triple into logical order.
func DecodeVec3(stored string) (Vec3, error) {
	p, err := parseTriple(stored)
	if err != nil {
		return Vec3{}, err
	}
	return Vec3{p[0], p[2], p[1]}, nil
}

// Encode returns the stored form of v, with y and z swapped.
func (v Vec3) Encode() string {
	return formatTriple(v[0], v[2], v[1])
}

// ParseVec3 parses a logical "x,y,z" triple as typed by a user.
func ParseVec3(s string) (Vec3, error) {
	p, err := parseTriple(s)
	if err != nil {
		return Vec3{}, plaxerr.New(plaxerr.ErrCodeInvalidInput, "%s", plaxerr.UserMessage(err))
	}
	return Vec3(p), nil
}

// String returns v in logical "x,y,z" order.
func (v Vec3) String() string {
	return formatTriple(v[0], v[1], v[2])
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

func parseTriple(s string) ([3]float64, error) {
	var out [3]float64
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return out, plaxerr.New(plaxerr.ErrCodeMalformedDocument, "coordinate %q: want 3 components, got %d", s, len(parts))
	}
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return out, plaxerr.Malformed(err, "coordinate %q", s)
		}
		out[i] = f
	}
	return out, nil
}

func formatTriple(a, b, c float64) string {
	return formatFloat(a) + "," + formatFloat(b) + "," + formatFloat(c)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
