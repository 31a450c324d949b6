package sav_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mapmaths/plax/internal/savtest"
	plaxerr "github.com/mapmaths/plax/pkg/errors"
	"github.com/mapmaths/plax/pkg/sav"
)

func TestReadLayout(t *testing.T) {
	tests := []struct {
		name string
		fix  savtest.Fixture
		want sav.Layout
	}{
		{"simplified", savtest.Fixture{Elements: savtest.Elements(2)}, sav.LayoutSimplified},
		{"nested", savtest.Fixture{Nested: true, Elements: savtest.Elements(2)}, sav.LayoutNested},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := sav.Parse(tt.fix.Bytes(t))
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if got := doc.Variant().Layout; got != tt.want {
				t.Errorf("Layout = %v, want %v", got, tt.want)
			}
			st, err := doc.Status()
			if err != nil {
				t.Fatalf("Status() error: %v", err)
			}
			if len(st.Elements) != 2 {
				t.Errorf("len(Elements) = %d, want 2", len(st.Elements))
			}
		})
	}
}

func TestReadNullExperimentIsSimplified(t *testing.T) {
	doc, err := sav.Parse([]byte(`{"Experiment": null, "StatusSave": "{\"Elements\":[]}"}`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if doc.Variant().Layout != sav.LayoutSimplified {
		t.Errorf("Layout = %v, want simplified", doc.Variant().Layout)
	}
}

func TestReadLockVariant(t *testing.T) {
	flagged := savtest.Element("a", "Battery Source", "0,0,0")
	flagged["IsLocked"] = true
	doc, err := sav.Parse(savtest.Fixture{Elements: []map[string]any{flagged}}.Bytes(t))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if doc.Variant().Lock != sav.LockFlag {
		t.Errorf("Lock = %v, want flag", doc.Variant().Lock)
	}

	doc, err = sav.Parse(savtest.Fixture{Elements: savtest.Elements(3)}.Bytes(t))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if doc.Variant().Lock != sav.LockProperty {
		t.Errorf("Lock = %v, want property", doc.Variant().Lock)
	}
}

func TestReadMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"syntax error", `{"StatusSave": `},
		{"trailing data", `{} {}`},
		{"not an object", `[1, 2]`},
		{"null", `null`},
		{"status not a string", `{"StatusSave": {"Elements": []}}`},
		{"status not JSON", `{"StatusSave": "{Elements"}`},
		{"camera not JSON", `{"StatusSave": "{}", "CameraSave": "nope"}`},
		{"camera null", `{"CameraSave": "null"}`},
		{"null element", `{"StatusSave": "{\"Elements\": [null], \"Wires\": []}", "CameraSave": "{}"}`},
		{"element not an object", `{"StatusSave": "{\"Elements\": [1]}"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sav.Parse([]byte(tt.input))
			if !plaxerr.Is(err, plaxerr.ErrCodeMalformedDocument) {
				t.Errorf("Parse() error = %v, want %s", err, plaxerr.ErrCodeMalformedDocument)
			}
		})
	}
}

func TestRoundTripWithoutMutation(t *testing.T) {
	for _, nested := range []bool{false, true} {
		fix := savtest.Fixture{
			Nested:      nested,
			Elements:    savtest.Elements(4),
			Wires:       []map[string]any{savtest.Wire(savtest.Elements(1)[0]["Identifier"].(string), 0, "x", 1, "红色导线")},
			Body:        map[string]any{"Components": 4, "Speed": 1.5, "Label": "<a&b>"},
			StatusExtra: map[string]any{"SimulationSpeed": 1},
		}
		input := fix.Bytes(t)

		doc, err := sav.Parse(input)
		if err != nil {
			t.Fatalf("Parse() error: %v", err)
		}
		var buf bytes.Buffer
		if err := doc.Write(&buf); err != nil {
			t.Fatalf("Write() error: %v", err)
		}

		if diff := cmp.Diff(decode(t, input), decode(t, buf.Bytes())); diff != "" {
			t.Errorf("round trip (nested=%v) mismatch (-want +got):\n%s", nested, diff)
		}
		if !strings.Contains(buf.String(), "\n  \"") {
			t.Error("output should use two-space indentation")
		}
		if strings.Contains(buf.String(), `\u003c`) {
			t.Error("output should not escape HTML characters")
		}
	}
}

func TestStatusAccessorPairKeepsUnknownFields(t *testing.T) {
	wire := savtest.Wire("a", 0, "b", 1, "蓝色导线")
	wire["Bend"] = []any{1.5, 2}
	fix := savtest.Fixture{
		Elements:    savtest.Elements(2),
		Wires:       []map[string]any{wire},
		StatusExtra: map[string]any{"SimulationSpeed": 1, "Notes": []any{"x"}},
	}
	input := fix.Bytes(t)
	doc, err := sav.Parse(input)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	st, err := doc.Status()
	if err != nil {
		t.Fatalf("Status() error: %v", err)
	}
	if err := doc.SetStatus(st); err != nil {
		t.Fatalf("SetStatus() error: %v", err)
	}

	before := decodeNested(t, input, "StatusSave")
	after := decodeNested(t, written(t, doc), "StatusSave")
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("StatusSave changed (-want +got):\n%s", diff)
	}
}

func TestStatusIsACopy(t *testing.T) {
	doc, err := sav.Parse(savtest.Fixture{Elements: savtest.Elements(1)}.Bytes(t))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	st, _ := doc.Status()
	st.Elements[0].SetPosition(sav.Vec3{9, 9, 9})

	fresh, _ := doc.Status()
	if fresh.Elements[0]["Position"] != "0,0,0" {
		t.Errorf("Status() mutation leaked into document: %v", fresh.Elements[0]["Position"])
	}
}

func TestStatusClone(t *testing.T) {
	doc, err := sav.Parse(savtest.Fixture{Elements: savtest.Elements(2)}.Bytes(t))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	st, _ := doc.Status()
	c := st.Clone()
	c.Elements[0].SetID("changed")
	if st.Elements[0].ID() == "changed" {
		t.Error("Clone shares elements")
	}
}

func TestCameraAccessorPair(t *testing.T) {
	doc, err := sav.Parse(savtest.Fixture{Nested: true}.Bytes(t))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	cam, err := doc.Camera()
	if err != nil {
		t.Fatalf("Camera() error: %v", err)
	}
	center, err := cam.Center()
	if err != nil {
		t.Fatalf("Center() error: %v", err)
	}
	if center != (sav.Vec3{0, -0.45, 1.08}) {
		t.Errorf("Center() = %v, want [0 -0.45 1.08]", center)
	}
	if d, ok := cam.Distance(); !ok || d != 2.5 {
		t.Errorf("Distance() = %v, %v, want 2.5", d, ok)
	}

	cam.SetCenter(sav.Vec3{0, 4, 0})
	cam.SetMode(sav.ModeUniverse)
	if err := doc.SetCamera(cam); err != nil {
		t.Fatalf("SetCamera() error: %v", err)
	}

	got := decodeNested(t, written(t, doc), "CameraSave")
	if got["VisionCenter"] != "0,0,4" {
		t.Errorf("VisionCenter = %v, want %q", got["VisionCenter"], "0,0,4")
	}
	if got["Mode"] != float64(3) {
		t.Errorf("Mode = %v, want 3", got["Mode"])
	}
}

func TestParseCameraMode(t *testing.T) {
	for in, want := range map[string]sav.CameraMode{"0": sav.ModeElectricity, "universe": sav.ModeUniverse, "4": sav.ModeElectromagnetic} {
		got, err := sav.ParseCameraMode(in)
		if err != nil || got != want {
			t.Errorf("ParseCameraMode(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	if _, err := sav.ParseCameraMode("2"); err == nil {
		t.Error("ParseCameraMode(2) should fail")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := savtest.Fixture{Nested: true, Elements: savtest.Elements(3), Body: map[string]any{"Components": 3}}.Write(t, dir, "in.sav")

	doc, err := sav.Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if doc.Path() != path {
		t.Errorf("Path() = %q, want %q", doc.Path(), path)
	}
	if n, ok := doc.Components(); !ok || n != 3 {
		t.Errorf("Components() = %d, %v, want 3", n, ok)
	}
	if doc.Subject() != "fixture" {
		t.Errorf("Subject() = %q, want fixture", doc.Subject())
	}

	out := filepath.Join(dir, "out.sav")
	if err := doc.Save(out); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	again, err := sav.Load(out)
	if err != nil {
		t.Fatalf("Load(saved) error: %v", err)
	}
	st, _ := again.Status()
	if len(st.Elements) != 3 {
		t.Errorf("len(Elements) = %d, want 3", len(st.Elements))
	}

	if err := doc.Save(""); err != nil {
		t.Fatalf("Save(\"\") error: %v", err)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := sav.Load(filepath.Join(t.TempDir(), "missing.sav"))
	if !plaxerr.Is(err, plaxerr.ErrCodeFileNotFound) {
		t.Errorf("Load() error = %v, want %s", err, plaxerr.ErrCodeFileNotFound)
	}
}

func TestSaveWithoutPath(t *testing.T) {
	doc, err := sav.Parse([]byte(`{}`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if err := doc.Save(""); !plaxerr.Is(err, plaxerr.ErrCodeInvalidInput) {
		t.Errorf("Save(\"\") error = %v, want %s", err, plaxerr.ErrCodeInvalidInput)
	}
}

func decode(t *testing.T, data []byte) any {
	t.Helper()
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return v
}

func decodeNested(t *testing.T, data []byte, field string) map[string]any {
	t.Helper()
	root := decode(t, data).(map[string]any)
	if exp, ok := root["Experiment"].(map[string]any); ok {
		root = exp
	}
	var v map[string]any
	if err := json.Unmarshal([]byte(root[field].(string)), &v); err != nil {
		t.Fatalf("unmarshal %s: %v", field, err)
	}
	return v
}

func written(t *testing.T, doc *sav.Document) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	return buf.Bytes()
}
