package sav

import "testing"

func TestElementAccessors(t *testing.T) {
	e := Element{
		"Identifier": "abc",
		"ModelID":    "Battery Source",
		"Position":   "1,3,2",
		"Rotation":   "0,90,0",
	}

	if e.ID() != "abc" {
		t.Errorf("ID() = %q, want %q", e.ID(), "abc")
	}
	if e.ModelID() != "Battery Source" {
		t.Errorf("ModelID() = %q", e.ModelID())
	}

	pos, err := e.Position()
	if err != nil {
		t.Fatalf("Position() error: %v", err)
	}
	if pos != (Vec3{1, 2, 3}) {
		t.Errorf("Position() = %v, want [1 2 3]", pos)
	}

	rot, err := e.Rotation()
	if err != nil {
		t.Fatalf("Rotation() error: %v", err)
	}
	if rot != (Vec3{0, 0, 90}) {
		t.Errorf("Rotation() = %v, want [0 0 90]", rot)
	}

	e.SetPosition(Vec3{4, 5, 6})
	if e["Position"] != "4,6,5" {
		t.Errorf("stored Position = %v, want %q", e["Position"], "4,6,5")
	}
}

func TestElementMissingPosition(t *testing.T) {
	if _, err := (Element{}).Position(); err == nil {
		t.Error("Position() on empty element should fail")
	}
}

func TestElementLockProperty(t *testing.T) {
	e := Element{"Properties": map[string]any{"电阻": 10}}

	if e.Locked(LockProperty) {
		t.Fatal("new element should not be locked")
	}

	e.SetLocked(LockProperty, true)
	if !e.Locked(LockProperty) {
		t.Error("Locked() = false after lock")
	}
	props := e["Properties"].(map[string]any)
	if _, ok := props[LockPropertyKey]; !ok {
		t.Errorf("Properties = %v, want key %q", props, LockPropertyKey)
	}
	if _, ok := e["IsLocked"]; ok {
		t.Error("property style should not write IsLocked")
	}

	e.SetLocked(LockProperty, false)
	if e.Locked(LockProperty) {
		t.Error("Locked() = true after unlock")
	}
	if len(props) != 1 {
		t.Errorf("unlock should only remove the lock key, Properties = %v", props)
	}
}

func TestElementLockPropertyCreatesMap(t *testing.T) {
	e := Element{}
	e.SetLocked(LockProperty, false)
	if _, ok := e["Properties"]; ok {
		t.Error("unlocking should not create Properties")
	}
	e.SetLocked(LockProperty, true)
	if !e.Locked(LockProperty) {
		t.Error("Locked() = false after lock on element without Properties")
	}
}

func TestElementLockFlag(t *testing.T) {
	e := Element{"Properties": map[string]any{}}
	e.SetLocked(LockFlag, true)
	if e["IsLocked"] != true {
		t.Errorf("IsLocked = %v, want true", e["IsLocked"])
	}
	if !e.Locked(LockFlag) {
		t.Error("Locked(LockFlag) = false after lock")
	}
	if e.Locked(LockProperty) {
		t.Error("flag style should not touch Properties")
	}
	e.SetLocked(LockFlag, false)
	if e["IsLocked"] != false {
		t.Errorf("IsLocked = %v, want false", e["IsLocked"])
	}
}

func TestElementBroken(t *testing.T) {
	e := Element{}
	if e.Broken() {
		t.Error("Broken() = true on empty element")
	}
	e.SetBroken(true)
	if !e.Broken() {
		t.Error("Broken() = false after SetBroken(true)")
	}
}

func TestDetectLockStyle(t *testing.T) {
	if got := DetectLockStyle([]Element{{"Identifier": "a"}}); got != LockProperty {
		t.Errorf("DetectLockStyle() = %v, want property", got)
	}
	if got := DetectLockStyle([]Element{{"Identifier": "a"}, {"IsLocked": false}}); got != LockFlag {
		t.Errorf("DetectLockStyle() = %v, want flag", got)
	}
}

func TestParseLockStyle(t *testing.T) {
	tests := map[string]LockStyle{"": LockAuto, "auto": LockAuto, "property": LockProperty, "flag": LockFlag}
	for in, want := range tests {
		got, err := ParseLockStyle(in)
		if err != nil || got != want {
			t.Errorf("ParseLockStyle(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	if _, err := ParseLockStyle("bool"); err == nil {
		t.Error("ParseLockStyle(bool) should fail")
	}
}

func TestElementClone(t *testing.T) {
	e := Element{"Identifier": "a", "Properties": map[string]any{"k": 1}, "Pins": []any{1, 2}}
	c := e.Clone()
	c.SetID("b")
	c["Properties"].(map[string]any)["k"] = 2
	c["Pins"].([]any)[0] = 9

	if e.ID() != "a" {
		t.Error("Clone shares identifier")
	}
	if e["Properties"].(map[string]any)["k"] != 1 {
		t.Error("Clone shares Properties map")
	}
	if e["Pins"].([]any)[0] != 1 {
		t.Error("Clone shares slices")
	}
}

func TestParseWireColor(t *testing.T) {
	tests := []struct {
		in   string
		want WireColor
	}{
		{"", DefaultWireColor},
		{"red", WireRed},
		{"Yellow", WireYellow},
		{"黑色导线", WireBlack},
	}
	for _, tt := range tests {
		got, err := ParseWireColor(tt.in)
		if err != nil {
			t.Fatalf("ParseWireColor(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseWireColor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if _, err := ParseWireColor("purple"); err == nil {
		t.Error("ParseWireColor(purple) should fail")
	}
	if WireGreen.Name() != "green" {
		t.Errorf("Name() = %q, want green", WireGreen.Name())
	}
}
