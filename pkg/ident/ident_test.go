package ident

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"
)

func seeded(seed byte) *rand.ChaCha8 {
	var s [32]byte
	s[0] = seed
	return rand.NewChaCha8(s)
}

func TestTokenShape(t *testing.T) {
	id, err := Token(seeded(1))
	if err != nil {
		t.Fatalf("Token() error: %v", err)
	}
	if len(id) != Length {
		t.Fatalf("len(Token()) = %d, want %d", len(id), Length)
	}
	for _, c := range id {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			t.Fatalf("Token(): unexpected character %q in %q", c, id)
		}
	}
}

func TestTokenDeterministic(t *testing.T) {
	a, _ := Token(seeded(7))
	b, _ := Token(seeded(7))
	if a != b {
		t.Errorf("same seed produced %q and %q", a, b)
	}
}

func TestGeneratorUniqueAgainstDocument(t *testing.T) {
	existing := make([]string, 1000)
	for i := range existing {
		existing[i] = fmt.Sprintf("%032x", i)
	}

	g := New(seeded(42), existing...)
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		id, err := g.Next()
		if err != nil {
			t.Fatalf("Next() error at %d: %v", i, err)
		}
		if _, ok := seen[id]; ok {
			t.Fatalf("Next(): duplicate at iteration %d: %q", i, id)
		}
		seen[id] = struct{}{}
	}
	for _, id := range existing {
		if _, ok := seen[id]; ok {
			t.Fatalf("Next() returned existing identifier %q", id)
		}
	}
}

// repeatReader replays the same bytes forever.
type repeatReader struct{ b []byte }

func (r repeatReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.b[i%len(r.b)]
	}
	return len(p), nil
}

func TestGeneratorRejectsCollisions(t *testing.T) {
	src := repeatReader{b: bytes.Repeat([]byte{0xab}, 16)}
	first, err := Token(src)
	if err != nil {
		t.Fatalf("Token() error: %v", err)
	}

	g := New(src, first)
	if !g.Taken(first) {
		t.Fatal("existing identifier should be reserved")
	}
	if _, err := g.Next(); err == nil {
		t.Error("Next() should give up when every draw collides")
	}
}

func TestGeneratorReserves(t *testing.T) {
	g := New(seeded(3))
	id, err := g.Next()
	if err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	if !g.Taken(id) {
		t.Errorf("Next() did not reserve %q", id)
	}
	g.Reserve("")
	if g.Taken("") {
		t.Error("empty identifier should never be reserved")
	}
}

func TestGeneratorRedrawsAfterCollision(t *testing.T) {
	taken := bytes.Repeat([]byte{0xab}, 16)
	fresh := bytes.Repeat([]byte{0xcd}, 16)
	reserved, _ := Token(bytes.NewReader(taken))
	want, _ := Token(bytes.NewReader(fresh))

	g := New(bytes.NewReader(append(slices.Clone(taken), fresh...)), reserved)
	got, err := g.Next()
	if err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	if got != want {
		t.Errorf("Next() = %q, want %q (second draw)", got, want)
	}
	if !g.Taken(want) {
		t.Errorf("Next() did not reserve %q", want)
	}
}
