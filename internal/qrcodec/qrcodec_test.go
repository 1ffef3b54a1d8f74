package qrcodec

import (
	"bytes"
	"errors"
	"testing"

	"github.com/legalage/ageattest/internal/apierrors"
	"github.com/legalage/ageattest/internal/relation"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	header := PublicHeader{Today: 19000, Now: 43200, Delta: 6570, Relation: relation.Older}
	proof := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	challenge := []byte{9, 9, 9, 9}

	s := Encode(header, proof, challenge)

	decoded, err := Decode(s)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.Header != header {
		t.Errorf("header round-trip = %+v, want %+v", decoded.Header, header)
	}
	if !bytes.Equal(decoded.ObfuscatedProof, proof) {
		t.Errorf("proof bytes round-trip mismatch")
	}
	if !bytes.Equal(decoded.Challenge, challenge) {
		t.Errorf("challenge bytes round-trip mismatch")
	}
}

func TestDecodeRelationByte(t *testing.T) {
	for _, rel := range []relation.Relation{relation.Younger, relation.Older} {
		header := PublicHeader{Today: 1, Now: 2, Delta: 3, Relation: rel}
		s := Encode(header, []byte{0}, []byte{0})
		decoded, err := Decode(s)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if decoded.Header.Relation != rel {
			t.Errorf("relation round-trip = %v, want %v", decoded.Header.Relation, rel)
		}
	}
}

func TestDecodeWrongPartCount(t *testing.T) {
	_, err := Decode("only;two")
	if !errors.Is(err, apierrors.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestDecodeInvalidBase58(t *testing.T) {
	_, err := Decode("not-base58-0OIl;also-bad;still-bad")
	if !errors.Is(err, apierrors.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestDecodeShortHeader(t *testing.T) {
	_, err := parsePublicHeader([]byte{1, 2, 3})
	if !errors.Is(err, apierrors.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}
