package api

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/legalage/ageattest/internal/apierrors"
	"github.com/legalage/ageattest/internal/relation"

	"github.com/legalage/ageattest"
)

// GenerateHandler handles POST /generate: it runs ageattest.GenerateProof
// over the request body and returns the resulting QR string.
func GenerateHandler(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, GenerateResponse{Error: "invalid request body"})
		return
	}

	privateKey, photosDigest, err := decodeSecrets(req.PrivateKey, req.PhotosDigest)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, GenerateResponse{Error: err.Error()})
		return
	}

	qr, err := ageattest.GenerateProof(ageattest.Request{
		Public: ageattest.PublicHeader{
			Today:    req.Today,
			Now:      req.Now,
			Delta:    req.Delta,
			Relation: relation.Relation(req.Relation),
		},
		Birthday:     req.Birthday,
		PrivateKey:   privateKey,
		PhotosDigest: photosDigest,
	})
	if err != nil {
		if errors.Is(err, apierrors.ErrInfrastructure) {
			log.Error().Err(err).Msg("proof generation infrastructure failure")
			writeJSON(w, http.StatusInternalServerError, GenerateResponse{Error: "internal error"})
			return
		}
		writeJSON(w, http.StatusBadRequest, GenerateResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, GenerateResponse{QrCode: qr})
}

func decodeSecrets(privateKeyHex, photosDigestHex string) (privateKey, photosDigest [32]byte, err error) {
	pk, err := hex.DecodeString(privateKeyHex)
	if err != nil || len(pk) != 32 {
		return privateKey, photosDigest, errInvalidSecret("privateKey")
	}
	pd, err := hex.DecodeString(photosDigestHex)
	if err != nil || len(pd) != 32 {
		return privateKey, photosDigest, errInvalidSecret("photosDigest")
	}
	copy(privateKey[:], pk)
	copy(photosDigest[:], pd)
	return privateKey, photosDigest, nil
}

func errInvalidSecret(field string) error {
	return &secretFieldError{field: field}
}

type secretFieldError struct {
	field string
}

func (e *secretFieldError) Error() string {
	return e.field + " must be 32 bytes of hex"
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
