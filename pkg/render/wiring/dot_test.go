package wiring_test

import (
	"strings"
	"testing"

	"github.com/mapmaths/plax/pkg/render/wiring"
	"github.com/mapmaths/plax/pkg/sav"
)

func status() *sav.Status {
	return &sav.Status{
		Elements: []sav.Element{
			{"Identifier": "aaaaaaaaaaaaaaaa", "ModelID": "Battery Source", "Position": "1,3,2"},
			{"Identifier": "bbbbbbbbbbbbbbbb", "ModelID": "Simple Switch", "IsBroken": true},
		},
		Wires: []sav.Wire{
			{Source: "aaaaaaaaaaaaaaaa", SourcePin: 0, Target: "bbbbbbbbbbbbbbbb", TargetPin: 1, ColorName: sav.WireRed},
			{Source: "bbbbbbbbbbbbbbbb", SourcePin: 0, Target: "cccccccccccccccc", TargetPin: 0, ColorName: sav.WireBlue},
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := wiring.ToDOT(status(), wiring.Options{})

	for _, want := range []string{
		"graph G {",
		`e0 [label="Battery Source"]`,
		`e1 [label="Simple Switch", fillcolor=mistyrose, color=red3]`,
		`m0 [label="cccccccc", style="rounded,dashed"`,
		"e0 -- e1 [color=red3]",
		"e1 -- m0 [color=royalblue]",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q in:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "taillabel") {
		t.Error("ToDOT() added pin labels without Detailed")
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := wiring.ToDOT(status(), wiring.Options{Detailed: true})

	for _, want := range []string{
		`Battery Source\nid: aaaaaaaa\npos: 1,2,3`,
		`taillabel="0"`,
		`headlabel="1"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q in:\n%s", want, dot)
		}
	}
}

func TestToDOTEmpty(t *testing.T) {
	dot := wiring.ToDOT(&sav.Status{}, wiring.Options{})
	if !strings.HasPrefix(dot, "graph G {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("ToDOT() = %q", dot)
	}
}
