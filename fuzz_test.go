package siha_test

import (
	"bytes"
	"crypto/sha3"
	"testing"

	"github.com/sihahash/siha"
	fuzz "github.com/trailofbits/go-fuzz-utils"
)

// FuzzHasherChunking writes a message to a Hasher in randomly sized chunks and checks that the result matches the
// one-shot digest.
func FuzzHasherChunking(f *testing.F) {
	drbg := sha3.NewSHAKE128()
	_, _ = drbg.Write([]byte("siha chunking"))

	for range 10 {
		seed := make([]byte, 512)
		_, _ = drbg.Read(seed)
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		chunkCount, err := tp.GetUint16()
		if err != nil {
			t.Skip(err)
		}

		h := siha.New()
		var message []byte
		for range chunkCount % 20 {
			chunk, err := tp.GetBytes()
			if err != nil {
				t.Skip(err)
			}

			_, _ = h.Write(chunk)
			message = append(message, chunk...)
		}

		want, err := siha.Sum512(message)
		if len(message) == 0 {
			if _, err := h.Digest(); err == nil {
				t.Fatal("Digest() of empty message succeeded")
			}
			return
		} else if err != nil {
			t.Fatal(err)
		}

		if got := h.Sum(nil); !bytes.Equal(got, want[:]) {
			t.Fatalf("Hasher.Sum() = %x, want = %x", got, want)
		}
	})
}

func FuzzSum512(f *testing.F) {
	f.Add([]byte("Hello World"), uint(3))
	f.Fuzz(func(t *testing.T, message []byte, idx uint) {
		if len(message) == 0 {
			t.Skip()
		}

		a, err := siha.Sum512(message)
		if err != nil {
			t.Fatal(err)
		}

		b, _ := siha.Sum512(bytes.Clone(message))
		if a != b {
			t.Fatalf("Sum512(%x) is not deterministic: %s != %s", message, a, b)
		}

		flipped := bytes.Clone(message)
		flipped[int(idx%uint(len(message)))] ^= 0x01 //nolint:gosec // len is positive
		if c, _ := siha.Sum512(flipped); a == c {
			t.Errorf("Sum512(%x) = Sum512(%x) = %s", message, flipped, a)
		}
	})
}
