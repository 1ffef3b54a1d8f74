// Package gadget is the in-circuit counterpart of mimc7: the same
// MiMC7r10 round function expressed against a gnark frontend.API instead of
// native field arithmetic, sharing its round constants with the native
// hasher so the two stay bit-identical by construction.
package gadget

import (
	"github.com/consensys/gnark/frontend"

	"github.com/legalage/ageattest/internal/mimc7"
)

// Hasher computes MiMC7r10 inside a circuit.
type Hasher struct {
	api frontend.API
	rc  [mimc7.NumRounds]frontend.Variable
}

// New builds a Hasher bound to api, loading round constants from mimc7.
func New(api frontend.API) *Hasher {
	constants := mimc7.RoundConstants()
	var rc [mimc7.NumRounds]frontend.Variable
	for i, c := range constants {
		rc[i] = frontend.Variable(c)
	}
	return &Hasher{api: api, rc: rc}
}

// Hash computes MiMC7r10(x, k) as circuit variables.
func (h *Hasher) Hash(x, k frontend.Variable) frontend.Variable {
	state := x
	for i := 0; i < mimc7.NumRounds; i++ {
		t := h.api.Add(state, k, h.rc[i])
		state = h.powSeven(t)
	}
	return h.api.Add(state, k)
}

func (h *Hasher) powSeven(x frontend.Variable) frontend.Variable {
	x2 := h.api.Mul(x, x)
	x4 := h.api.Mul(x2, x2)
	x6 := h.api.Mul(x4, x2)
	return h.api.Mul(x6, x)
}
