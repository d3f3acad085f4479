package siha

import (
	"bytes"
	"encoding"
	"errors"
	"hash"
)

// ErrInvalidState is returned when unmarshaling a Hasher from data it did not produce.
var ErrInvalidState = errors.New("siha: invalid hasher state")

const magic = "siha\x01"

// A Hasher computes SIHA-512 digests incrementally.
//
// SIHA-512's initial state depends on the whole message, so a Hasher buffers everything written to it and runs the
// transform when a digest is requested. Hasher instances are not concurrent-safe.
type Hasher struct {
	buf []byte
}

// New returns a new Hasher.
func New() *Hasher {
	return new(Hasher)
}

// Write appends p to the message. It never returns an error.
func (h *Hasher) Write(p []byte) (n int, err error) {
	h.buf = append(h.buf, p...)
	return len(p), nil
}

// Sum appends the digest of the message written so far to b. It does not change the underlying hash state.
//
// Sum panics if nothing has been written, since SIHA-512 is undefined for empty messages. Use Digest to handle that
// case without a panic.
func (h *Hasher) Sum(b []byte) []byte {
	d, err := h.Digest()
	if err != nil {
		panic(err)
	}
	return append(b, d[:]...)
}

// Digest returns the digest of the message written so far, or ErrEmptyInput if nothing has been written.
func (h *Hasher) Digest() (Digest, error) {
	return Sum512(h.buf)
}

// Reset discards the buffered message.
func (h *Hasher) Reset() {
	clear(h.buf)
	h.buf = h.buf[:0]
}

// Len returns the number of bytes written since the last Reset.
func (h *Hasher) Len() int {
	return len(h.buf)
}

func (h *Hasher) Size() int {
	return Size
}

func (h *Hasher) BlockSize() int {
	return BlockSize
}

func (h *Hasher) AppendBinary(b []byte) ([]byte, error) {
	b = append(b, magic...)
	return append(b, h.buf...), nil
}

func (h *Hasher) MarshalBinary() ([]byte, error) {
	return h.AppendBinary(make([]byte, 0, len(magic)+len(h.buf)))
}

func (h *Hasher) UnmarshalBinary(data []byte) error {
	rest, ok := bytes.CutPrefix(data, []byte(magic))
	if !ok {
		return ErrInvalidState
	}
	h.Reset()
	h.buf = append(h.buf, rest...)
	return nil
}

var (
	_ hash.Hash                  = (*Hasher)(nil)
	_ encoding.BinaryAppender    = (*Hasher)(nil)
	_ encoding.BinaryMarshaler   = (*Hasher)(nil)
	_ encoding.BinaryUnmarshaler = (*Hasher)(nil)
)
