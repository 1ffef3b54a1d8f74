package api

import (
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/legalage/ageattest"
	"github.com/legalage/ageattest/internal/relation"
)

// VerifyHandler handles POST /verify: it runs ageattest.VerifyProof over
// the request body and returns its Valid/Invalid outcome. Per spec, this
// never returns an error response for a bad proof: any parsing, decoding or
// pairing failure simply reports valid=false.
func VerifyHandler(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, VerifyResponse{Valid: false})
		return
	}

	photosDigestBytes, err := hex.DecodeString(req.PhotosDigest)
	if err != nil || len(photosDigestBytes) != 32 {
		writeJSON(w, http.StatusOK, VerifyResponse{Valid: false, VerifierLevel: req.VerifierLevel})
		return
	}
	var photosDigest [32]byte
	copy(photosDigest[:], photosDigestBytes)

	result := ageattest.VerifyProof(req.QrCode, photosDigest, relation.VerifierLevel(req.VerifierLevel))

	writeJSON(w, http.StatusOK, VerifyResponse{
		Valid:         result.Valid,
		VerifierLevel: uint8(result.VerifierLevel),
	})
}
