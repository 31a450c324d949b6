// Package ident generates element identifiers.
//
// Identifiers are 32 lowercase hex characters, the same shape the game
// writes. Tokens come from a UUID built on a caller-supplied random source so
// tests can run on a fixed seed; uniqueness against a document is enforced
// by rejection sampling.
package ident

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Length is the number of hex characters in an identifier.
const Length = 32

// maxAttempts bounds rejection sampling. With 122 random bits a collision
// is already vanishingly rare; running out means the random source is broken.
const maxAttempts = 64

// Token returns a random identifier read from r.
func Token(r io.Reader) (string, error) {
	u, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return "", fmt.Errorf("read random token: %w", err)
	}
	return hex.EncodeToString(u[:]), nil
}

// Generator hands out identifiers that are unique among a reserved set.
// It is not safe for concurrent use.
type Generator struct {
	rand  io.Reader
	taken map[string]struct{}
}

// New returns a Generator reading from r (crypto/rand when r is nil) that
// will never return any of existing.
func New(r io.Reader, existing ...string) *Generator {
	if r == nil {
		r = rand.Reader
	}
	g := &Generator{rand: r, taken: make(map[string]struct{}, len(existing))}
	for _, id := range existing {
		g.Reserve(id)
	}
	return g
}

// Reserve marks id as used.
func (g *Generator) Reserve(id string) {
	if id != "" {
		g.taken[id] = struct{}{}
	}
}

// Taken reports whether id is reserved.
func (g *Generator) Taken(id string) bool {
	_, ok := g.taken[id]
	return ok
}

// Next draws tokens until one is not reserved, reserves it, and returns it.
func (g *Generator) Next() (string, error) {
	for range maxAttempts {
		id, err := Token(g.rand)
		if err != nil {
			return "", err
		}
		if g.Taken(id) {
			continue
		}
		g.Reserve(id)
		return id, nil
	}
	return "", fmt.Errorf("no unique identifier after %d attempts", maxAttempts)
}
