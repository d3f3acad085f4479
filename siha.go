// Package siha implements SIHA-512, a 512-bit hash function built from a cellular-automaton initial state, a
// length-dependent padding rule, and a 32-round ARX permutation over a 1024-bit state.
//
// A message is hashed in four stages. First, the 1024-bit state is derived from the message itself by seeding a
// one-dimensional cellular automaton with the message bytes and evolving it for 64 generations. Second, the message is
// padded to a multiple of 64 bytes. Third, each 64-byte block is XORed into the first half of the state and the state
// is permuted. Finally, the first 64 bytes of the state are returned as the digest.
//
// The state is viewed as sixteen big-endian 64-bit words by the permutation. The automaton's edge cells are zero after
// every generation.
//
// SIHA-512 makes no formal security claims. It is specified exactly so independent implementations agree bit-for-bit,
// not as a vetted cryptographic primitive.
package siha

import (
	"errors"
	"slices"

	"github.com/sihahash/siha/internal/automaton"
	"github.com/sihahash/siha/internal/mem"
	"github.com/sihahash/siha/internal/padding"
	"github.com/sihahash/siha/internal/permutation"
)

const (
	// Size is the size, in bytes, of a SIHA-512 digest.
	Size = 64

	// BlockSize is the size, in bytes, of the blocks absorbed into the state.
	BlockSize = padding.BlockSize
)

// ErrEmptyInput is returned when hashing a zero-length message, for which the initial state is undefined.
var ErrEmptyInput = errors.New("siha: empty input")

// Sum512 returns the SIHA-512 digest of data.
func Sum512(data []byte) (Digest, error) {
	var d Digest
	if len(data) == 0 {
		return d, ErrEmptyInput
	}
	sum(&d, data)
	return d, nil
}

// AppendSum appends the SIHA-512 digest of data to dst and returns the resulting slice.
func AppendSum(dst, data []byte) ([]byte, error) {
	d, err := Sum512(data)
	if err != nil {
		return dst, err
	}
	return append(dst, d[:]...), nil
}

func sum(out *Digest, data []byte) {
	state := automaton.Init(data)
	padded := padding.Append(make([]byte, 0, padding.Len(len(data))), data)

	for block := range slices.Chunk(padded, BlockSize) {
		mem.XOR(state[:BlockSize], state[:BlockSize], block)
		permutation.Permute(&state)
	}

	copy(out[:], state[:Size])
}
