package sav

import (
	"encoding/json"
	"maps"
	"sort"
	"strings"

	plaxerr "github.com/mapmaths/plax/pkg/errors"
)

// WireColor is the colour label stored in a wire's ColorName field.
type WireColor string

// Wire colours known to the game.
const (
	WireBlack  WireColor = "黑色导线"
	WireBlue   WireColor = "蓝色导线"
	WireRed    WireColor = "红色导线"
	WireGreen  WireColor = "绿色导线"
	WireYellow WireColor = "黄色导线"

	DefaultWireColor = WireBlue
)

var wireColorNames = map[string]WireColor{
	"black":  WireBlack,
	"blue":   WireBlue,
	"red":    WireRed,
	"green":  WireGreen,
	"yellow": WireYellow,
}

// ParseWireColor accepts an English colour name ("red") or a stored label.
func ParseWireColor(s string) (WireColor, error) {
	if s == "" {
		return DefaultWireColor, nil
	}
	if c, ok := wireColorNames[strings.ToLower(s)]; ok {
		return c, nil
	}
	if c := WireColor(s); c.Valid() {
		return c, nil
	}
	return "", plaxerr.New(plaxerr.ErrCodeInvalidInput, "unknown wire color %q (want one of %s)", s, strings.Join(WireColorNames(), ", "))
}

// WireColorNames lists the English colour names in sorted order.
func WireColorNames() []string {
	names := make([]string, 0, len(wireColorNames))
	for name := range wireColorNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Valid reports whether c is one of the known colours.
func (c WireColor) Valid() bool {
	for _, known := range wireColorNames {
		if c == known {
			return true
		}
	}
	return false
}

// Name returns the English name of c, or the raw label if c is unknown.
func (c WireColor) Name() string {
	for name, known := range wireColorNames {
		if c == known {
			return name
		}
	}
	return string(c)
}

// Wire connects a pin of one element to a pin of another.
type Wire struct {
	Source    string    `json:"Source"`
	SourcePin int       `json:"SourcePin"`
	Target    string    `json:"Target"`
	TargetPin int       `json:"TargetPin"`
	ColorName WireColor `json:"ColorName"`

	// Extra holds fields this package does not interpret, written back
	// unchanged. Nil when there are none.
	Extra map[string]json.RawMessage `json:"-"`
}

var wireKeys = []string{"Source", "SourcePin", "Target", "TargetPin", "ColorName"}

// UnmarshalJSON decodes a wire, keeping unknown fields in Extra.
func (w *Wire) UnmarshalJSON(data []byte) error {
	type plain Wire
	var p plain
	if err := decodeJSON(data, &p); err != nil {
		return err
	}
	var fields map[string]json.RawMessage
	if err := decodeJSON(data, &fields); err != nil {
		return err
	}
	for _, k := range wireKeys {
		delete(fields, k)
	}
	if len(fields) == 0 {
		fields = nil
	}
	p.Extra = fields
	*w = Wire(p)
	return nil
}

// MarshalJSON encodes w together with its Extra fields.
func (w Wire) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(w.Extra)+len(wireKeys))
	for k, v := range w.Extra {
		out[k] = v
	}
	out["Source"] = w.Source
	out["SourcePin"] = w.SourcePin
	out["Target"] = w.Target
	out["TargetPin"] = w.TargetPin
	out["ColorName"] = w.ColorName
	return encodeJSON(out)
}

// Clone returns a copy of w that shares no Extra storage.
func (w Wire) Clone() Wire {
	w.Extra = maps.Clone(w.Extra)
	return w
}
