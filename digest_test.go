package siha_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/sihahash/siha"
)

const helloWorld = "85ec2f143837046baf246f8521c8f2c1c615340cb428f2eb046250e3c747a4fe1800fd9d0b536693c96a519702dee0904bc0498413bdf986031c69d49d6d9ba1"

func TestDigest_String(t *testing.T) {
	d, _ := siha.Sum512([]byte("Hello World"))

	if got, want := d.String(), helloWorld; got != want {
		t.Errorf("String() = %s, want = %s", got, want)
	}
}

func TestDigest_Equal(t *testing.T) {
	a, _ := siha.Sum512([]byte("a"))
	b, _ := siha.Sum512([]byte("b"))

	if !a.Equal(a) {
		t.Error("a.Equal(a) = false, want = true")
	}

	if a.Equal(b) {
		t.Error("a.Equal(b) = true, want = false")
	}
}

func TestDigest_MarshalText(t *testing.T) {
	d, _ := siha.Sum512([]byte("Hello World"))

	b, err := json.Marshal(map[string]siha.Digest{"digest": d})
	if err != nil {
		t.Fatal(err)
	}

	if got, want := string(b), `{"digest":"`+helloWorld+`"}`; got != want {
		t.Errorf("json.Marshal() = %s, want = %s", got, want)
	}
}

func TestDigest_UnmarshalText(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var d siha.Digest
		if err := d.UnmarshalText([]byte(helloWorld)); err != nil {
			t.Fatal(err)
		}

		if got, want := d.String(), helloWorld; got != want {
			t.Errorf("UnmarshalText() = %s, want = %s", got, want)
		}
	})

	t.Run("short", func(t *testing.T) {
		var d siha.Digest
		if err := d.UnmarshalText([]byte(helloWorld[:126])); !errors.Is(err, siha.ErrInvalidDigest) {
			t.Errorf("UnmarshalText() err = %v, want = %v", err, siha.ErrInvalidDigest)
		}
	})

	t.Run("not hex", func(t *testing.T) {
		var d siha.Digest
		if err := d.UnmarshalText([]byte(strings.Repeat("zz", siha.Size))); !errors.Is(err, siha.ErrInvalidDigest) {
			t.Errorf("UnmarshalText() err = %v, want = %v", err, siha.ErrInvalidDigest)
		}
	})
}
