// Package padding implements SIHA's length-dependent message padding.
package padding

import "github.com/sihahash/siha/internal/mem"

// BlockSize is the size, in bytes, of an absorbed block.
const BlockSize = 64

// Len returns the length of the padded form of an n-byte message. At least one byte of padding is always added, so a
// message which is already a multiple of BlockSize gains an entire block.
func Len(n int) int {
	return (n/BlockSize + 1) * BlockSize
}

// Append appends the padded form of input to dst and returns the resulting slice.
func Append(dst, input []byte) []byte {
	n, newLen := len(input), Len(len(input))
	ret, padded := mem.SliceForAppend(dst, newLen)
	copy(padded, input)

	for i := n; i < newLen; i++ {
		padded[i] = byte(uint64(i) * 0x41C64E6D) //nolint:gosec // i is always positive
	}

	padded[n] = 0x80 ^ byte(n*31)
	padded[newLen-1] |= byte(0x01 ^ ((newLen * 17) % 251))

	return ret
}
