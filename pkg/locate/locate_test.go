package locate

import (
	"testing"

	plaxerr "github.com/mapmaths/plax/pkg/errors"
	"github.com/mapmaths/plax/pkg/sav"
)

func elements() []sav.Element {
	return []sav.Element{
		{"Identifier": "a1", "ModelID": "Battery Source"},
		{"Identifier": "b2", "ModelID": "Simple Switch"},
		{"Identifier": "c3", "ModelID": "Battery Source"},
		{"Identifier": "d4", "ModelID": "Resistor"},
		{"Identifier": "e5", "ModelID": "Battery Source"},
	}
}

func TestResolveByID(t *testing.T) {
	els := elements()
	for want, e := range els {
		got, i, err := Resolve(els, ByID(e.ID()))
		if err != nil {
			t.Fatalf("Resolve(%s) error: %v", e.ID(), err)
		}
		if i != want || got.ID() != e.ID() {
			t.Errorf("Resolve(%s) = %s@%d, want %s@%d", e.ID(), got.ID(), i, e.ID(), want)
		}
	}

	if _, _, err := Resolve(els, ByID("zz")); !plaxerr.Is(err, plaxerr.ErrCodeNotFound) {
		t.Errorf("Resolve(unknown) error = %v, want %s", err, plaxerr.ErrCodeNotFound)
	}
}

func TestResolveByTypeOccurrence(t *testing.T) {
	els := elements()
	wantIdx := []int{0, 2, 4}

	got, i, err := Resolve(els, ByType("Battery Source"))
	if err != nil || i != 0 || got.ID() != "a1" {
		t.Errorf("Resolve(ByType) = %v@%d, %v, want a1@0", got.ID(), i, err)
	}

	for n, want := range wantIdx {
		_, i, err := Resolve(els, ByTypeN("Battery Source", n))
		if err != nil {
			t.Fatalf("Resolve(ByTypeN %d) error: %v", n, err)
		}
		if i != want {
			t.Errorf("Resolve(ByTypeN %d) index = %d, want %d", n, i, want)
		}
	}

	for _, n := range []int{3, 10, -1} {
		if _, _, err := Resolve(els, ByTypeN("Battery Source", n)); !plaxerr.Is(err, plaxerr.ErrCodeNotFound) {
			t.Errorf("Resolve(ByTypeN %d) error = %v, want %s", n, err, plaxerr.ErrCodeNotFound)
		}
	}
	if _, _, err := Resolve(els, ByType("Capacitor")); !plaxerr.Is(err, plaxerr.ErrCodeNotFound) {
		t.Errorf("Resolve(absent type) error = %v, want %s", err, plaxerr.ErrCodeNotFound)
	}
}

func TestResolveByIndex(t *testing.T) {
	els := elements()
	got, i, err := Resolve(els, ByIndex(3))
	if err != nil || i != 3 || got.ID() != "d4" {
		t.Errorf("Resolve(ByIndex 3) = %v@%d, %v, want d4@3", got.ID(), i, err)
	}

	for _, idx := range []int{-1, 5, 100} {
		if _, _, err := Resolve(els, ByIndex(idx)); !plaxerr.Is(err, plaxerr.ErrCodeNotFound) {
			t.Errorf("Resolve(ByIndex %d) error = %v, want %s", idx, err, plaxerr.ErrCodeNotFound)
		}
	}
	if _, _, err := Resolve(nil, ByIndex(0)); !plaxerr.Is(err, plaxerr.ErrCodeNotFound) {
		t.Errorf("Resolve(empty) error = %v, want %s", err, plaxerr.ErrCodeNotFound)
	}
}

func TestResolveShares(t *testing.T) {
	els := elements()
	got, _, err := Resolve(els, ByID("b2"))
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	got.SetBroken(true)
	if !els[1].Broken() {
		t.Error("resolved element should share storage with the slice")
	}
}

func TestResolveAmbiguous(t *testing.T) {
	zero, one := 0, 1
	tests := []struct {
		name string
		sel  Selector
	}{
		{"empty", Selector{}},
		{"id and type", Selector{ID: "a1", Type: "Resistor"}},
		{"id and index", Selector{ID: "a1", Index: &zero}},
		{"type and index", Selector{Type: "Resistor", Index: &one}},
		{"occurrence alone", Selector{Occurrence: &one}},
		{"occurrence with id", Selector{ID: "a1", Occurrence: &one}},
		{"occurrence with index", Selector{Index: &zero, Occurrence: &one}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Resolve(elements(), tt.sel)
			if !plaxerr.Is(err, plaxerr.ErrCodeAmbiguousSelector) {
				t.Errorf("Resolve(%s) error = %v, want %s", tt.sel, err, plaxerr.ErrCodeAmbiguousSelector)
			}
		})
	}
}

func TestAll(t *testing.T) {
	got := All(elements(), "Battery Source")
	want := []int{0, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("All() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("All()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if got := All(elements(), "Capacitor"); len(got) != 0 {
		t.Errorf("All(absent) = %v, want empty", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"id:abc", "id:abc"},
		{"type:Battery Source", "type:Battery Source"},
		{"type:Battery Source#2", "type:Battery Source#2"},
		{"type:A#B#1", "type:A#B#1"},
		{"index:4", "index:4"},
		{"7", "index:7"},
	}
	for _, tt := range tests {
		sel, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tt.in, err)
		}
		if sel.String() != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.in, sel, tt.want)
		}
	}

	for _, bad := range []string{"", "foo", "id:", "index:x", "type:A#x", "name:abc"} {
		if _, err := Parse(bad); !plaxerr.Is(err, plaxerr.ErrCodeInvalidInput) {
			t.Errorf("Parse(%q) error = %v, want %s", bad, err, plaxerr.ErrCodeInvalidInput)
		}
	}
}
