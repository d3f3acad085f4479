// Package mem provides the byte-slice helpers behind SIHA's absorber and padder: XORing a 64-byte message block into
// the rate half of the state, and growing a caller's buffer in place to hold a padded message.
package mem

import (
	"crypto/subtle"
	"slices"
)

// XOR XORs a and b into dst. The absorber always passes whole 64-byte blocks, which go through subtle.XORBytes; slices of
// 16 bytes or fewer use a scalar loop.
func XOR(dst, a, b []byte) {
	if len(dst) > 16 {
		subtle.XORBytes(dst, a, b)
	} else {
		for i := range dst {
			dst[i] = a[i] ^ b[i]
		}
	}
}

// SliceForAppend extends in by n bytes and returns the extended slice along with the n-byte tail, which the padder
// fills with the message and its padding. The tail's contents are unspecified. No allocation is performed if in has
// sufficient capacity.
func SliceForAppend(in []byte, n int) (head, tail []byte) {
	head = slices.Grow(in, n)
	head = head[:len(in)+n]
	tail = head[len(in):]
	return head, tail
}
