// Package qrcodec implements the ProofQrCode wire format: three
// base58-encoded tokens, joined by ";" — the public header, the obfuscated
// proof bytes, and the challenge — exactly as original_source/src/api.rs's
// ProofQrCode::to_string/from_str lay them out.
package qrcodec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/mr-tron/base58"

	"github.com/legalage/ageattest/internal/apierrors"
	"github.com/legalage/ageattest/internal/relation"
)

// publicHeaderLen is 3 big-endian i32s (today, now, delta) plus one
// relation byte.
const publicHeaderLen = 13

// PublicHeader is the public, unencrypted part of a ProofQrCode.
type PublicHeader struct {
	Today    int32
	Now      int32
	Delta    int32
	Relation relation.Relation
}

// MarshalBinary packs the header the same way ProofQrCode::public_to_string
// does: today, now, delta as big-endian i32, then the relation discriminant
// byte.
func (h PublicHeader) MarshalBinary() []byte {
	buf := make([]byte, publicHeaderLen)
	binary.BigEndian.PutUint32(buf[0:4], uint32(h.Today))
	binary.BigEndian.PutUint32(buf[4:8], uint32(h.Now))
	binary.BigEndian.PutUint32(buf[8:12], uint32(h.Delta))
	buf[12] = byte(h.Relation)
	return buf
}

// parsePublicHeader mirrors ProofQrCode::public_from_str: any relation byte
// other than Younger's 0 is treated as Older, matching the original's
// `match ... { YOUNGER => Younger, _ => Older }`.
func parsePublicHeader(b []byte) (PublicHeader, error) {
	if len(b) != publicHeaderLen {
		return PublicHeader{}, fmt.Errorf("%w: public header is %d bytes, want %d", apierrors.ErrParse, len(b), publicHeaderLen)
	}
	rel := relation.Older
	if b[12] == byte(relation.Younger) {
		rel = relation.Younger
	}
	return PublicHeader{
		Today:    int32(binary.BigEndian.Uint32(b[0:4])),
		Now:      int32(binary.BigEndian.Uint32(b[4:8])),
		Delta:    int32(binary.BigEndian.Uint32(b[8:12])),
		Relation: rel,
	}, nil
}

// Decoded is a fully-parsed ProofQrCode, with the proof left in its
// compressed-encoding form (still obfuscated: the caller must XOR it
// against the photo digest before deserializing it as a groth16.Proof).
type Decoded struct {
	Header          PublicHeader
	ObfuscatedProof []byte
	Challenge       []byte
}

// Encode assembles the three tokens into the ";"-joined QR string.
func Encode(header PublicHeader, obfuscatedProof, challenge []byte) string {
	tokens := []string{
		base58.Encode(header.MarshalBinary()),
		base58.Encode(obfuscatedProof),
		base58.Encode(challenge),
	}
	return strings.Join(tokens, ";")
}

// Decode splits and base58-decodes the three tokens of s.
func Decode(s string) (Decoded, error) {
	parts := strings.Split(s, ";")
	if len(parts) != 3 {
		return Decoded{}, fmt.Errorf("%w: expected 3 ';'-separated parts, got %d", apierrors.ErrParse, len(parts))
	}

	headerBytes, err := base58.Decode(parts[0])
	if err != nil {
		return Decoded{}, fmt.Errorf("%w: public header: %v", apierrors.ErrParse, err)
	}
	header, err := parsePublicHeader(headerBytes)
	if err != nil {
		return Decoded{}, err
	}

	proofBytes, err := base58.Decode(parts[1])
	if err != nil {
		return Decoded{}, fmt.Errorf("%w: proof: %v", apierrors.ErrParse, err)
	}

	challengeBytes, err := base58.Decode(parts[2])
	if err != nil {
		return Decoded{}, fmt.Errorf("%w: challenge: %v", apierrors.ErrParse, err)
	}

	return Decoded{Header: header, ObfuscatedProof: proofBytes, Challenge: challengeBytes}, nil
}

// SerializeProof encodes a Groth16 proof to its canonical compressed form.
func SerializeProof(p groth16.Proof) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := p.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("serialize proof: %w", err)
	}
	return buf.Bytes(), nil
}

// DeserializeProof parses a proof previously produced by SerializeProof.
func DeserializeProof(b []byte) (groth16.Proof, error) {
	p := groth16.NewProof(ecc.BN254)
	if _, err := p.ReadFrom(bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("%w: proof: %v", apierrors.ErrParse, err)
	}
	return p, nil
}
