package siha

import (
	"crypto/subtle"
	"encoding"
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrInvalidDigest is returned when decoding a digest from text which is not exactly 128 hex characters.
var ErrInvalidDigest = errors.New("siha: invalid digest")

// Digest is a SIHA-512 digest.
type Digest [Size]byte

// String returns the digest as 128 lowercase hex characters.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Equal reports whether d and other are the same digest, in constant time.
func (d Digest) Equal(other Digest) bool {
	return subtle.ConstantTimeCompare(d[:], other[:]) == 1
}

func (d Digest) AppendText(b []byte) ([]byte, error) {
	return hex.AppendEncode(b, d[:]), nil
}

func (d Digest) MarshalText() ([]byte, error) {
	return d.AppendText(make([]byte, 0, hex.EncodedLen(Size)))
}

func (d *Digest) UnmarshalText(text []byte) error {
	if len(text) != hex.EncodedLen(Size) {
		return ErrInvalidDigest
	}

	if _, err := hex.Decode(d[:], text); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDigest, err)
	}
	return nil
}

var (
	_ fmt.Stringer             = Digest{}
	_ encoding.TextAppender    = Digest{}
	_ encoding.TextMarshaler   = Digest{}
	_ encoding.TextUnmarshaler = (*Digest)(nil)
)
