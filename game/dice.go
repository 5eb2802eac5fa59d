package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/rand"
)

// Source is the randomness behind dice rolls and mission draws.
type Source interface {
	// Intn returns a uniform int in [0, n). n > 0.
	Intn(n int) int
}

// NewSource returns a deterministic source for seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewSeed draws a seed from crypto/rand, for sessions started without one.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

func rollDie(src Source, sides int) int {
	return src.Intn(sides) + 1
}
