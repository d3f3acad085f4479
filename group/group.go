// Package group hashes messages to Ristretto255 elements and scalars using SIHA-512.
//
// A SIHA-512 digest is 64 bytes, which is exactly the uniform input Ristretto255's one-way maps expect. Inputs are
// framed with NIST SP 800-185's TupleHash encoding of a domain separation string, a fixed label, and the message, so
// distinct (domain, message) pairs never hash the same bytes.
package group

import (
	"fmt"

	"github.com/gtank/ristretto255"
	"github.com/sihahash/siha"
	"github.com/sihahash/siha/internal/tuplehash"
)

// HashToElement maps the message to a Ristretto255 element, with no known discrete log relative to any other element.
//
// The domain separation string should be unique to the application and specific protocol.
func HashToElement(domain string, msg []byte) (*ristretto255.Element, error) {
	b, err := uniform(domain, "element", msg)
	if err != nil {
		return nil, err
	}

	e, err := ristretto255.NewIdentityElement().SetUniformBytes(b)
	if err != nil {
		return nil, fmt.Errorf("group: hash to element: %w", err)
	}
	return e, nil
}

// HashToScalar maps the message to a uniformly distributed Ristretto255 scalar.
func HashToScalar(domain string, msg []byte) (*ristretto255.Scalar, error) {
	b, err := uniform(domain, "scalar", msg)
	if err != nil {
		return nil, err
	}

	s, err := ristretto255.NewScalar().SetUniformBytes(b)
	if err != nil {
		return nil, fmt.Errorf("group: hash to scalar: %w", err)
	}
	return s, nil
}

func uniform(domain, label string, msg []byte) ([]byte, error) {
	input := tuplehash.AppendTuple(nil, []byte(domain), []byte(label), msg)

	b, err := siha.AppendSum(make([]byte, 0, siha.Size), input)
	if err != nil {
		return nil, fmt.Errorf("group: %w", err)
	}
	return b, nil
}
