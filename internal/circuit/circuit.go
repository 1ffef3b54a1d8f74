// Package circuit is the gnark/Groth16 runtime for the age-attestation
// circuit: the R1CS definition, lazy key lifecycle, and the proving
// entrypoint the rest of the pipeline drives.
package circuit

import (
	"fmt"
	"sync"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/legalage/ageattest/internal/mimc7/gadget"
)

// rangeBits must cover the widest possible strict-inequality difference the
// circuit computes: folded Julian days stay within [0, 2*MaxJulianDay], so a
// 32-bit decomposition is ample headroom.
const rangeBits = 32

// Circuit is the five-witness/one-output age-attestation relation: it
// proves knowledge of a private birthday, private key and photo digest that
// both (a) satisfy BirthdayEncoded+DeltaEncoded < TodayEncoded and (b) hash,
// via the card-key derivation chain, to the declared public Challenge.
//
// This is the direct descendant of the teacher's AgeCircuitV1: same
// "subtract, then range-check the difference" trick for a strict
// inequality, same mimc-then-AssertIsEqual shape, generalized from a fixed
// CurrentYear/BirthYear pair to the relation-encoded witness this scheme
// needs and rebuilt on the project's own MiMC7r10 gadget instead of
// std/hash/mimc.
type Circuit struct {
	BirthdayEncoded frontend.Variable
	DeltaEncoded    frontend.Variable `gnark:",public"`
	TodayEncoded    frontend.Variable `gnark:",public"`
	PhotosDigest    frontend.Variable
	PrivateKey      frontend.Variable

	Challenge frontend.Variable `gnark:",public"`
}

// Define wires the circuit's two checks: the strict-inequality range check,
// and the card-key/challenge hash chain of internal/keyderiv reproduced in
// R1CS form.
func (c *Circuit) Define(api frontend.API) error {
	sum := api.Add(c.BirthdayEncoded, c.DeltaEncoded)
	diff := api.Sub(c.TodayEncoded, sum)
	// diff-1 is non-negative iff sum < TodayEncoded; a successful
	// rangeBits decomposition is the circuit's only enforcement of the
	// relation.
	api.ToBinary(api.Sub(diff, 1), rangeBits)

	h := gadget.New(api)
	k := api.Mul(c.BirthdayEncoded, c.PrivateKey)
	inner := h.Hash(c.PhotosDigest, k)
	cardKey := api.Mul(inner, c.PhotosDigest)
	challenge := h.Hash(c.TodayEncoded, cardKey)

	api.AssertIsEqual(challenge, c.Challenge)
	return nil
}

var (
	once    sync.Once
	ccs     constraint.ConstraintSystem
	pk      groth16.ProvingKey
	vk      groth16.VerifyingKey
	initErr error
)

// ensureInit performs the circuit compile and Groth16 setup exactly once,
// lazily, on whichever goroutine calls GenerateProof or VerifyProof first.
// Like the teacher's internal/keys.Init, this is a dummy (non-ceremony)
// trusted setup: there is no multi-party ceremony artifact in this repo to
// embed, and production deployments must replace it with one.
func ensureInit() error {
	once.Do(func() {
		var c Circuit
		compiled, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &c)
		if err != nil {
			initErr = fmt.Errorf("compile circuit: %w", err)
			return
		}
		ccs = compiled

		provingKey, verifyingKey, err := groth16.Setup(compiled)
		if err != nil {
			initErr = fmt.Errorf("groth16 setup: %w", err)
			return
		}
		pk, vk = provingKey, verifyingKey
	})
	return initErr
}

// VerifyingKey returns the process-wide verification key, triggering lazy
// setup on first call.
func VerifyingKey() (groth16.VerifyingKey, error) {
	if err := ensureInit(); err != nil {
		return nil, err
	}
	return vk, nil
}

// ConstraintSystem returns the compiled R1CS, triggering lazy setup on
// first call. Exposed for callers that need to build a public-only witness
// shaped the same way the circuit is.
func ConstraintSystem() (constraint.ConstraintSystem, error) {
	if err := ensureInit(); err != nil {
		return nil, err
	}
	return ccs, nil
}
