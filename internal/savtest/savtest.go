// Package savtest builds save files for tests.
package savtest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// Fixture describes a save file to build.
type Fixture struct {
	Nested   bool
	Elements []map[string]any
	Wires    []map[string]any
	Camera   map[string]any
	// Body holds extra gameplay fields such as Components.
	Body map[string]any
	// StatusExtra holds extra StatusSave fields.
	StatusExtra map[string]any
}

// Element returns a minimal element record.
func Element(id, model, storedPos string) map[string]any {
	return map[string]any{
		"Identifier": id,
		"ModelID":    model,
		"Position":   storedPos,
		"Rotation":   "0,0,0",
		"IsBroken":   false,
		"Properties": map[string]any{"电阻": 10},
	}
}

// Elements returns n elements with distinct identifiers, alternating
// between two model IDs, at stored positions "i,0,0".
func Elements(n int) []map[string]any {
	out := make([]map[string]any, n)
	models := []string{"Simple Switch", "Battery Source"}
	for i := range out {
		out[i] = Element(fmt.Sprintf("%032x", i+1), models[i%2], fmt.Sprintf("%d,0,0", i))
	}
	return out
}

// Wire returns a wire record.
func Wire(source string, sourcePin int, target string, targetPin int, color string) map[string]any {
	return map[string]any{
		"Source":    source,
		"SourcePin": sourcePin,
		"Target":    target,
		"TargetPin": targetPin,
		"ColorName": color,
	}
}

// DefaultCamera returns a camera record.
func DefaultCamera() map[string]any {
	return map[string]any{
		"Mode":           0,
		"Distance":       2.5,
		"VisionCenter":   "0,1.08,-0.45",
		"TargetRotation": "50,0,0",
	}
}

// Bytes encodes the fixture as a save file.
func (f Fixture) Bytes(t testing.TB) []byte {
	t.Helper()

	elements := f.Elements
	if elements == nil {
		elements = []map[string]any{}
	}
	wires := f.Wires
	if wires == nil {
		wires = []map[string]any{}
	}
	status := map[string]any{"Elements": elements, "Wires": wires}
	for k, v := range f.StatusExtra {
		status[k] = v
	}
	camera := f.Camera
	if camera == nil {
		camera = DefaultCamera()
	}

	body := map[string]any{
		"StatusSave": mustString(t, status),
		"CameraSave": mustString(t, camera),
	}
	for k, v := range f.Body {
		body[k] = v
	}

	root := body
	if f.Nested {
		root = map[string]any{
			"Type":       0,
			"Experiment": body,
			"Summary":    map[string]any{"Subject": "fixture", "Version": 2303},
		}
	}
	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return data
}

// Write stores the fixture under dir and returns its path.
func (f Fixture) Write(t testing.TB, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, f.Bytes(t), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func mustString(t testing.TB, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(data)
}
