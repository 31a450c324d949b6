// Package savedir finds the game's save directory and the saves in it.
package savedir

import (
	"cmp"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	plaxerr "github.com/mapmaths/plax/pkg/errors"
	"github.com/mapmaths/plax/pkg/sav"
)

// Ext is the save file extension.
const Ext = ".sav"

// EnvDir overrides the default save directory.
const EnvDir = "PLAX_SAVE_DIR"

// gamePath is where the game keeps circuit saves, relative to the user profile.
var gamePath = []string{"AppData", "LocalLow", "CIVITAS", "Quantum Physics", "Circuit"}

// DefaultDir returns $PLAX_SAVE_DIR if set, otherwise the game's circuit
// save directory under %USERPROFILE% (or the home directory).
func DefaultDir() (string, error) {
	if dir := os.Getenv(EnvDir); dir != "" {
		return dir, nil
	}
	profile := os.Getenv("USERPROFILE")
	if profile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		profile = home
	}
	return filepath.Join(append([]string{profile}, gamePath...)...), nil
}

// Entry describes one save file.
type Entry struct {
	Path    string
	Name    string
	ModTime time.Time
	Size    int64
	// Subject is the title stored in the save, empty for simplified saves
	// or files that could not be parsed.
	Subject string
	Err     error
}

// List returns the saves in dir, newest first. Files that fail to parse are
// listed with Err set.
func List(dir string) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, plaxerr.Wrap(plaxerr.ErrCodeFileNotFound, err, "save directory %s", dir)
		}
		return nil, err
	}

	var out []Entry
	for _, de := range des {
		if de.IsDir() || !strings.EqualFold(filepath.Ext(de.Name()), Ext) {
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue
		}
		e := Entry{
			Path:    filepath.Join(dir, de.Name()),
			Name:    strings.TrimSuffix(de.Name(), filepath.Ext(de.Name())),
			ModTime: info.ModTime(),
			Size:    info.Size(),
		}
		if doc, err := sav.Load(e.Path); err != nil {
			e.Err = err
		} else {
			e.Subject = doc.Subject()
		}
		out = append(out, e)
	}

	slices.SortFunc(out, func(a, b Entry) int {
		if c := b.ModTime.Compare(a.ModTime); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out, nil
}

// NewPath returns a path for a new save in dir, named the way the game
// names them.
func NewPath(dir string) string {
	return filepath.Join(dir, uuid.NewString()+Ext)
}

// Resolve turns a command-line save argument into a file path. Anything
// that exists as given is used directly; otherwise name is looked up in dir,
// with or without the extension.
func Resolve(dir, name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}
	if strings.ContainsAny(name, `/\`) {
		return "", plaxerr.New(plaxerr.ErrCodeFileNotFound, "save not found: %s", name)
	}
	if err := plaxerr.ValidateSaveName(name); err != nil {
		return "", err
	}
	for _, candidate := range []string{name, name + Ext} {
		path := filepath.Join(dir, candidate)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", plaxerr.New(plaxerr.ErrCodeFileNotFound, "save %q not found in %s", name, dir)
}
