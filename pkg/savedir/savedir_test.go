package savedir_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mapmaths/plax/internal/savtest"
	plaxerr "github.com/mapmaths/plax/pkg/errors"
	"github.com/mapmaths/plax/pkg/savedir"
)

func TestDefaultDir(t *testing.T) {
	t.Setenv(savedir.EnvDir, "")
	t.Setenv("USERPROFILE", filepath.FromSlash("/users/ada"))

	dir, err := savedir.DefaultDir()
	if err != nil {
		t.Fatalf("DefaultDir() error: %v", err)
	}
	want := filepath.Join(filepath.FromSlash("/users/ada"), "AppData", "LocalLow", "CIVITAS", "Quantum Physics", "Circuit")
	if dir != want {
		t.Errorf("DefaultDir() = %q, want %q", dir, want)
	}
}

func TestDefaultDirOverride(t *testing.T) {
	t.Setenv(savedir.EnvDir, "/tmp/saves")
	dir, err := savedir.DefaultDir()
	if err != nil {
		t.Fatalf("DefaultDir() error: %v", err)
	}
	if dir != "/tmp/saves" {
		t.Errorf("DefaultDir() = %q, want /tmp/saves", dir)
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	older := savtest.Fixture{Nested: true, Elements: savtest.Elements(1)}.Write(t, dir, "older.sav")
	savtest.Fixture{Elements: savtest.Elements(2)}.Write(t, dir, "newer.sav")
	if err := os.WriteFile(filepath.Join(dir, "broken.sav"), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(older, past, past); err != nil {
		t.Fatal(err)
	}

	entries, err := savedir.List(dir)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len(List()) = %d, want 3", len(entries))
	}
	if last := entries[2]; last.Name != "older" || last.Subject != "fixture" {
		t.Errorf("last entry = %s/%q, want older/fixture", last.Name, last.Subject)
	}
	for _, e := range entries {
		if e.Name == "broken" && !plaxerr.Is(e.Err, plaxerr.ErrCodeMalformedDocument) {
			t.Errorf("broken.Err = %v, want MALFORMED_DOCUMENT", e.Err)
		}
		if e.Name != "broken" && e.Err != nil {
			t.Errorf("%s.Err = %v", e.Name, e.Err)
		}
	}
}

func TestListMissingDir(t *testing.T) {
	_, err := savedir.List(filepath.Join(t.TempDir(), "nope"))
	if !plaxerr.Is(err, plaxerr.ErrCodeFileNotFound) {
		t.Errorf("List() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestNewPath(t *testing.T) {
	a, b := savedir.NewPath("d"), savedir.NewPath("d")
	if a == b {
		t.Error("NewPath() returned the same path twice")
	}
	base := filepath.Base(a)
	if !strings.HasSuffix(base, ".sav") || len(base) != 36+4 {
		t.Errorf("NewPath() = %q, want <uuid>.sav", a)
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	path := savtest.Fixture{}.Write(t, dir, "circuit.sav")

	tests := []struct {
		name string
		arg  string
		want string
		code plaxerr.Code
	}{
		{"full path", path, path, ""},
		{"bare name", "circuit", path, ""},
		{"with extension", "circuit.sav", path, ""},
		{"missing", "other", "", plaxerr.ErrCodeFileNotFound},
		{"missing path", filepath.Join(dir, "x", "y.sav"), "", plaxerr.ErrCodeFileNotFound},
		{"dots", "a..b", "", plaxerr.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := savedir.Resolve(dir, tt.arg)
			if tt.code != "" {
				if !plaxerr.Is(err, tt.code) {
					t.Errorf("Resolve(%q) error = %v, want %s", tt.arg, err, tt.code)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) error: %v", tt.arg, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}
