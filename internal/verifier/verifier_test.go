package verifier

import (
	"math/big"
	"testing"

	"github.com/legalage/ageattest/internal/circuit"
	"github.com/legalage/ageattest/internal/keyderiv"
)

func bytes32(v byte) [32]byte {
	var b [32]byte
	b[31] = v
	return b
}

func TestVerifyAcceptsGenuineProof(t *testing.T) {
	privateKey := bytes32(10)
	photosDigest := bytes32(3)
	birthdayEncoded, todayEncoded := int64(2001), int64(2020)

	_, challenge := keyderiv.Derive(birthdayEncoded, todayEncoded, privateKey, photosDigest)

	proof, err := circuit.Prove(circuit.Witness{
		BirthdayEncoded: big.NewInt(birthdayEncoded),
		DeltaEncoded:    big.NewInt(0),
		TodayEncoded:    big.NewInt(todayEncoded),
		PhotosDigest:    new(big.Int).SetBytes(photosDigest[:]),
		PrivateKey:      new(big.Int).SetBytes(privateKey[:]),
		Challenge:       new(big.Int).SetBytes(challenge[:]),
	})
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	ok, err := Verify(proof, 0, todayEncoded, new(big.Int).SetBytes(challenge[:]))
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Error("a genuine proof over its own public inputs should verify")
	}
}

func TestVerifyRejectsWrongChallenge(t *testing.T) {
	privateKey := bytes32(10)
	photosDigest := bytes32(3)
	birthdayEncoded, todayEncoded := int64(2001), int64(2020)

	_, challenge := keyderiv.Derive(birthdayEncoded, todayEncoded, privateKey, photosDigest)

	proof, err := circuit.Prove(circuit.Witness{
		BirthdayEncoded: big.NewInt(birthdayEncoded),
		DeltaEncoded:    big.NewInt(0),
		TodayEncoded:    big.NewInt(todayEncoded),
		PhotosDigest:    new(big.Int).SetBytes(photosDigest[:]),
		PrivateKey:      new(big.Int).SetBytes(privateKey[:]),
		Challenge:       new(big.Int).SetBytes(challenge[:]),
	})
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	wrongChallenge := new(big.Int).SetBytes(challenge[:])
	wrongChallenge.Add(wrongChallenge, big.NewInt(1))

	ok, err := Verify(proof, 0, todayEncoded, wrongChallenge)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Error("verification must fail when the declared challenge does not match the proof")
	}
}
