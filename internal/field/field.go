// Package field adapts between the wire/native representations used across
// the age-attestation pipeline and the BN254 scalar field gnark and
// gnark-crypto operate over.
package field

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Modulus is the BN254/BN256 scalar field prime.
func Modulus() *big.Int {
	return fr.Modulus()
}

// FromBytes decodes a big-endian byte buffer into a field element, reducing
// it modulo p the same way fr.Element.SetBytes always does.
func FromBytes(b []byte) fr.Element {
	var e fr.Element
	e.SetBytes(b)
	return e
}

// Bytes canonically encodes e as 32 big-endian bytes.
func Bytes(e fr.Element) [32]byte {
	return e.Bytes()
}

// FromInt64 embeds a Julian day count or similarly small integer into F.
func FromInt64(v int64) fr.Element {
	var e fr.Element
	e.SetInt64(v)
	return e
}

// FromDecimalString parses a base-10 literal into a field element, reducing
// it modulo p.
func FromDecimalString(s string) (fr.Element, error) {
	var e fr.Element
	_, err := e.SetString(s)
	if err != nil {
		return fr.Element{}, err
	}
	return e, nil
}

// ToDecimalString renders e as a base-10 literal in [0, p).
func ToDecimalString(e fr.Element) string {
	var b big.Int
	e.BigInt(&b)
	return b.String()
}

// ToBigInt renders e as the unique representative in [0, p).
func ToBigInt(e fr.Element) *big.Int {
	var b big.Int
	e.BigInt(&b)
	return &b
}
