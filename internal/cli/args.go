package cli

import (
	"strconv"

	plaxerr "github.com/mapmaths/plax/pkg/errors"
	"github.com/mapmaths/plax/pkg/locate"
	"github.com/mapmaths/plax/pkg/sav"
)

// vecFlag is a pflag.Value holding an x,y,z triple.
type vecFlag struct {
	v   sav.Vec3
	set bool
}

func (f *vecFlag) String() string {
	if !f.set {
		return ""
	}
	return f.v.String()
}

func (f *vecFlag) Set(s string) error {
	v, err := sav.ParseVec3(s)
	if err != nil {
		return err
	}
	f.v, f.set = v, true
	return nil
}

func (f *vecFlag) Type() string { return "x,y,z" }

// parsePin parses a pin number.
func parsePin(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, plaxerr.New(plaxerr.ErrCodeInvalidInput, "invalid pin %q", s)
	}
	return n, nil
}

// target decides what a state or move command applies to. Exactly one
// of a selector argument, --all or --type is allowed.
type target struct {
	sel   *locate.Selector
	all   bool
	model string
}

func parseTarget(args []string, all bool, model string) (target, error) {
	given := 0
	var t target
	if len(args) > 0 {
		sel, err := locate.Parse(args[0])
		if err != nil {
			return t, err
		}
		t.sel = &sel
		given++
	}
	if all {
		t.all = true
		given++
	}
	if model != "" {
		t.model = model
		given++
	}
	if given != 1 {
		return target{}, plaxerr.New(plaxerr.ErrCodeInvalidInput, "give exactly one of <selector>, --all or --type")
	}
	return t, nil
}

func (t target) String() string {
	switch {
	case t.all:
		return "all elements"
	case t.model != "":
		return "every " + t.model
	default:
		return t.sel.String()
	}
}
