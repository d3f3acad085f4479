// Package tuplehash implements the unambiguous string encodings from [NIST SP 800-185], used to frame inputs to SIHA
// when several values must be hashed together.
//
// [NIST SP 800-185]: https://www.nist.gov/publications/sha-3-derived-functions-cshake-kmac-tuplehash-and-parallelhash
package tuplehash

import (
	"math/bits"
)

// MaxSize is the length, in bytes, of the largest encoded integer.
const MaxSize = 9

// AppendLeftEncode encodes an integer value using NIST SP 800-185's left_encode and appends it to b.
func AppendLeftEncode(b []byte, value uint64) []byte {
	n := 8 - (bits.LeadingZeros64(value|1) / 8)
	value <<= (8 - n) * 8
	b = append(b, byte(n))
	for range n {
		b = append(b, byte(value>>56))
		value <<= 8
	}
	return b
}

// AppendRightEncode encodes an integer value using NIST SP 800-185's right_encode and appends it to b.
func AppendRightEncode(b []byte, value uint64) []byte {
	n := 8 - (bits.LeadingZeros64(value|1) / 8)
	value <<= (8 - n) * 8
	for range n {
		b = append(b, byte(value>>56))
		value <<= 8
	}
	b = append(b, byte(n))
	return b
}

// AppendEncodeString appends NIST SP 800-185's encode_string of s to b: the bit length of s, left-encoded, followed
// by s itself.
func AppendEncodeString(b, s []byte) []byte {
	b = AppendLeftEncode(b, uint64(len(s))*8)
	return append(b, s...)
}

// AppendTuple appends the TupleHash framing of the given elements to b. Each element is encode_string'd, and the
// total count of elements is right-encoded at the end, so no two distinct tuples share an encoding.
func AppendTuple(b []byte, elements ...[]byte) []byte {
	for _, e := range elements {
		b = AppendEncodeString(b, e)
	}
	return AppendRightEncode(b, uint64(len(elements)))
}
