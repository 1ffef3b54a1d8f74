// Package verifier checks a Groth16 proof against the circuit's public
// inputs: the relation-folded delta/today pair and the declared challenge.
package verifier

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"

	"github.com/legalage/ageattest/internal/circuit"
)

// Verify reports whether proof attests to the given public inputs. A
// returned error means infrastructure failed (key lifecycle not
// initialized, malformed public witness); ok=false with a nil error means
// the proof itself simply does not verify, which is the ordinary outcome
// for a decoy or tampered proof.
func Verify(proof groth16.Proof, deltaEncoded, todayEncoded int64, challenge *big.Int) (bool, error) {
	vk, err := circuit.VerifyingKey()
	if err != nil {
		return false, err
	}

	assignment := circuit.Circuit{
		DeltaEncoded: big.NewInt(deltaEncoded),
		TodayEncoded: big.NewInt(todayEncoded),
		Challenge:    challenge,
	}
	publicWitness, err := frontend.NewWitness(&assignment, ecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return false, err
	}

	if err := groth16.Verify(proof, vk, publicWitness); err != nil {
		return false, nil
	}
	return true, nil
}
