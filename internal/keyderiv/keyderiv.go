// Package keyderiv implements the card-key/challenge derivation chain
// shared by the native prover path and the circuit's in-R1CS recomputation
// of the same values.
package keyderiv

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/legalage/ageattest/internal/mimc7"
)

// Derive computes card_key and challenge natively (outside any circuit).
//
//	card_key  = photos_digest * MiMC7r10(photos_digest, birthday*private_key)
//	challenge = MiMC7r10(today, card_key)
//
// birthday and today are the (possibly relation-folded) witness values fed
// to the circuit, not necessarily the raw Julian day counts; callers own
// that distinction (see internal/relation).
func Derive(birthday, today int64, privateKey, photosDigest [32]byte) (cardKey, challenge [32]byte) {
	var birthdayElem, todayElem, pk, pd fr.Element
	birthdayElem.SetInt64(birthday)
	todayElem.SetInt64(today)
	pk.SetBytes(privateKey[:])
	pd.SetBytes(photosDigest[:])

	var k fr.Element
	k.Mul(&birthdayElem, &pk)

	inner := mimc7.Hash(pd, k)

	var cardKeyElem fr.Element
	cardKeyElem.Mul(&inner, &pd)

	challengeElem := mimc7.Hash(todayElem, cardKeyElem)

	return cardKeyElem.Bytes(), challengeElem.Bytes()
}
