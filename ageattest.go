// Package ageattest is the public API of the age-attestation core: prove
// (from a phone app's point of view) that a private birthday stands in a
// claimed order relation to a public "today", without revealing the
// birthday, and later verify that proof from its QR-encoded form and the
// holder's photo digest.
package ageattest

import (
	"fmt"
	"math/big"

	"github.com/legalage/ageattest/internal/apierrors"
	"github.com/legalage/ageattest/internal/circuit"
	"github.com/legalage/ageattest/internal/keyderiv"
	"github.com/legalage/ageattest/internal/obfuscate"
	"github.com/legalage/ageattest/internal/qrcodec"
	"github.com/legalage/ageattest/internal/relation"
	"github.com/legalage/ageattest/internal/verifier"
)

// PublicHeader is the caller-supplied, non-secret part of a proof request:
// it ends up embedded verbatim in the resulting QR string.
type PublicHeader struct {
	Today    int32
	Now      int32
	Delta    int32
	Relation relation.Relation
}

// Request is everything GenerateProof needs: the public header plus the
// holder's private birthday, private key and photo digest.
type Request struct {
	Public       PublicHeader
	Birthday     int32
	PrivateKey   [32]byte
	PhotosDigest [32]byte
}

// GenerateProof runs the relation encoder, circuit prover, obfuscation and
// QR codec (C5→C4→C7→C8) and returns the resulting QR string.
//
// It only returns an error for infrastructural failures (circuit/key
// lifecycle corruption); a logically-invalid request — one where the
// claimed relation does not actually hold — never errors. It silently
// yields a decoy QR instead, per the decoy-proof policy, so an observer
// watching for errors cannot use GenerateProof as an age oracle.
func GenerateProof(req Request) (string, error) {
	enc := relation.ForProver(req.Public.Relation, int64(req.Birthday), int64(req.Public.Delta), int64(req.Public.Today))

	cardKey, challenge := keyderiv.Derive(enc.BirthdayEncoded, enc.TodayEncoded, req.PrivateKey, req.PhotosDigest)
	_ = cardKey

	proof, err := circuit.Prove(circuit.Witness{
		BirthdayEncoded: big.NewInt(enc.BirthdayEncoded),
		DeltaEncoded:    big.NewInt(enc.DeltaEncoded),
		TodayEncoded:    big.NewInt(enc.TodayEncoded),
		PhotosDigest:    new(big.Int).SetBytes(req.PhotosDigest[:]),
		PrivateKey:      new(big.Int).SetBytes(req.PrivateKey[:]),
		Challenge:       new(big.Int).SetBytes(challenge[:]),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", apierrors.ErrInfrastructure, err)
	}

	proofBytes, err := qrcodec.SerializeProof(proof)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apierrors.ErrInfrastructure, err)
	}
	obfuscated := obfuscate.XOR(proofBytes, req.PhotosDigest[:])

	header := qrcodec.PublicHeader{
		Today:    req.Public.Today,
		Now:      req.Public.Now,
		Delta:    req.Public.Delta,
		Relation: req.Public.Relation,
	}
	return qrcodec.Encode(header, obfuscated, challenge[:]), nil
}

// VerificationResult is VerifyProof's outcome: whether the proof holds, and
// the relation/verifier-level context a caller would want to render a
// trust badge from. VerifierLevel never affects Valid.
type VerificationResult struct {
	Valid         bool
	Header        PublicHeader
	VerifierLevel relation.VerifierLevel
}

// VerifyProof runs the QR codec, de-obfuscation and proof verifier
// (C8→C7→C6) against qrString and the holder's photo digest. Any parsing,
// decoding or pairing failure collapses to Valid=false: there is no
// separate error return, matching spec's "any ... failure collapses to
// Invalid" requirement. level is a caller-supplied display value (see
// relation.VerifierLevel); it is echoed back unchanged and never consulted
// while computing Valid.
func VerifyProof(qrString string, photosDigest [32]byte, level relation.VerifierLevel) VerificationResult {
	decoded, err := qrcodec.Decode(qrString)
	if err != nil {
		return VerificationResult{Valid: false, VerifierLevel: level}
	}

	header := PublicHeader{
		Today:    decoded.Header.Today,
		Now:      decoded.Header.Now,
		Delta:    decoded.Header.Delta,
		Relation: decoded.Header.Relation,
	}

	proofBytes := obfuscate.XOR(decoded.ObfuscatedProof, photosDigest[:])
	proof, err := qrcodec.DeserializeProof(proofBytes)
	if err != nil {
		return VerificationResult{Valid: false, Header: header, VerifierLevel: level}
	}

	deltaEncoded, todayEncoded := relation.ForVerifier(decoded.Header.Relation, int64(decoded.Header.Delta), int64(decoded.Header.Today))
	challenge := new(big.Int).SetBytes(decoded.Challenge)

	ok, err := verifier.Verify(proof, deltaEncoded, todayEncoded, challenge)
	if err != nil || !ok {
		return VerificationResult{Valid: false, Header: header, VerifierLevel: level}
	}
	return VerificationResult{Valid: true, Header: header, VerifierLevel: level}
}
