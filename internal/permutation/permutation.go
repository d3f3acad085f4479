// Package permutation implements SIHA's 1024-bit ARX permutation.
//
// The state is viewed as sixteen big-endian 64-bit words. Each of the 32 rounds updates the words in order, and each
// word update reads neighbors which may already have been updated in the same round. Every word update also draws a
// fresh round constant from the full state, so the words are written back to the byte state as soon as they change.
package permutation

import (
	"encoding/binary"
	"math/bits"
)

const (
	// Width is the permutation's width in bytes.
	Width = 128

	// Words is the number of 64-bit words in the state.
	Words = Width / 8

	// Rounds is the number of rounds applied by Permute.
	Rounds = 32
)

const (
	golden   = 0x9E3779B97F4A7C15
	mixer    = 0xA3B195354A39B70D
	lcgMul   = 0x41C64E6D
	lcgAdd   = 0x3039
	wordMul  = 0x5DEECE66D
	sboxMask = 0xD6E8FEB8A
)

// Permute applies the SIHA permutation to a 1024-bit state.
func Permute(state *[Width]byte) {
	var w [Words]uint64
	for i := range Words {
		w[i] = binary.BigEndian.Uint64(state[i*8:])
	}

	for round := range Rounds {
		for i := range Words {
			temp := w[(i+1)%Words] ^ RoundConstant(round, state)

			x := w[i] + temp
			x = bits.RotateLeft64(x, i%7+5)
			x ^= w[(i+2)%Words]
			x ^= bits.ReverseBytes64(w[(i+3)%Words]) // Feistel-style
			x ^= bits.RotateLeft64(temp, 3)
			x *= wordMul
			x ^= SBox(x)

			w[i] = x
			binary.BigEndian.PutUint64(state[i*8:], x)
		}
	}
}

// RoundConstant returns the pseudorandom constant for the given round, derived from the entire current state.
func RoundConstant(round int, state *[Width]byte) uint64 {
	s := uint64(int64(hashCode(state))) ^ (uint64(round) * golden) //nolint:gosec // round is always [0,32)

	for i, b := range state {
		s ^= uint64(int64(int8(b))) * mixer //nolint:gosec // sign extension is intended
		s = bits.RotateLeft64(s, i%13+3)
	}

	for range 8 {
		s = bits.RotateLeft64(s*lcgMul+lcgAdd, 17)
	}

	return s
}

// SBox is SIHA's non-linear substitution on a single word.
func SBox(x uint64) uint64 {
	x ^= (x << 7) & golden
	x = bits.RotateLeft64(x, 13)
	x ^= uint64(int64(x)>>11) & sboxMask //nolint:gosec // arithmetic shift is intended
	x *= mixer
	x ^= bits.ReverseBytes64(x)
	return x
}

// hashCode is a 32-bit polynomial hash of the state over signed bytes, seeded with 1.
func hashCode(state *[Width]byte) int32 {
	h := int32(1)
	for _, b := range state {
		h = 31*h + int32(int8(b))
	}
	return h
}
