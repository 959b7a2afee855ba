// Package random builds the seeded source every session draws from.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// New returns a deterministic source for seed. A zero seed is replaced by a
// fresh one; the seed actually used is returned so a game can be replayed.
func New(seed int64) (*rand.Rand, int64, error) {
	if seed == 0 {
		var err error
		if seed, err = NewSeed(); err != nil {
			return nil, 0, err
		}
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1)), seed, nil
}
