package ageattest

import (
	"testing"

	"github.com/legalage/ageattest/internal/relation"
)

func bytes32(v byte) [32]byte {
	var b [32]byte
	b[31] = v
	return b
}

func TestGenerateThenVerifyValidOlderClaim(t *testing.T) {
	privateKey := bytes32(10)
	photosDigest := bytes32(3)

	qr, err := GenerateProof(Request{
		Public: PublicHeader{
			Today:    19100,
			Now:      43200,
			Delta:    6570, // roughly 18 years in days
			Relation: relation.Older,
		},
		Birthday:     11000, // old enough to be > 18 years before 19100
		PrivateKey:   privateKey,
		PhotosDigest: photosDigest,
	})
	if err != nil {
		t.Fatalf("GenerateProof: %v", err)
	}

	result := VerifyProof(qr, photosDigest, relation.SelfSignedTest)
	if !result.Valid {
		t.Error("a genuinely valid Older claim should verify")
	}
}

func TestVerifyRejectsWrongPhotosDigest(t *testing.T) {
	privateKey := bytes32(10)
	photosDigest := bytes32(3)
	wrongDigest := bytes32(4)

	qr, err := GenerateProof(Request{
		Public: PublicHeader{
			Today:    19100,
			Delta:    6570,
			Relation: relation.Older,
		},
		Birthday:     11000,
		PrivateKey:   privateKey,
		PhotosDigest: photosDigest,
	})
	if err != nil {
		t.Fatalf("GenerateProof: %v", err)
	}

	result := VerifyProof(qr, wrongDigest, relation.SelfSignedTest)
	if result.Valid {
		t.Error("verification with the wrong photo digest must not succeed: de-obfuscation would garble the proof bytes")
	}
}

func TestGenerateNeverErrorsOnInvalidClaim(t *testing.T) {
	privateKey := bytes32(10)
	photosDigest := bytes32(3)

	// birthday is after today: the Older claim cannot possibly hold, and
	// is guaranteed unsatisfiable (no accidental birthday<today overlap),
	// which forces the decoy fallback path inside circuit.Prove.
	qr, err := GenerateProof(Request{
		Public: PublicHeader{
			Today:    10000,
			Delta:    0,
			Relation: relation.Older,
		},
		Birthday:     20000,
		PrivateKey:   privateKey,
		PhotosDigest: photosDigest,
	})
	if err != nil {
		t.Fatalf("GenerateProof must not error on a logically-invalid request, got: %v", err)
	}
	if qr == "" {
		t.Fatal("GenerateProof returned an empty QR string with no error")
	}

	result := VerifyProof(qr, photosDigest, relation.SelfSignedTest)
	if result.Valid {
		t.Error("a decoy proof for an unsatisfiable claim must not verify as valid")
	}
}

func TestVerifierLevelIsCosmetic(t *testing.T) {
	privateKey := bytes32(10)
	photosDigest := bytes32(3)

	qr, err := GenerateProof(Request{
		Public: PublicHeader{
			Today:    19100,
			Delta:    6570,
			Relation: relation.Older,
		},
		Birthday:     11000,
		PrivateKey:   privateKey,
		PhotosDigest: photosDigest,
	})
	if err != nil {
		t.Fatalf("GenerateProof: %v", err)
	}

	a := VerifyProof(qr, photosDigest, relation.SelfSignedTest)
	b := VerifyProof(qr, photosDigest, relation.Professional)

	if a.Valid != b.Valid {
		t.Error("VerifierLevel must not influence the Valid/Invalid outcome")
	}
	if a.VerifierLevel == b.VerifierLevel {
		t.Error("VerifyProof should echo back the caller-supplied VerifierLevel unchanged")
	}
}

func TestVerifyRejectsMalformedQrString(t *testing.T) {
	result := VerifyProof("not-a-valid-qr-string", bytes32(3), relation.SelfSignedTest)
	if result.Valid {
		t.Error("a malformed QR string must collapse to Invalid, not error")
	}
}
