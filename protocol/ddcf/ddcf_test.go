//
// Copyright (c) 2026 The NeuronVeil Authors
//
// All rights reserved.

package ddcf

import (
	"testing"

	"github.com/neuronveil/neuronveil/fixedpoint"
)

// TestGenerateKeysCombinedOutput checks the gate's construction-level
// invariant for the case DReLU relies on (second operand identically
// zero, so maskedY is just the plaintext r_in_2 with no further
// masking): the two parties' evaluations XOR to [x >= 0] XOR r_out.
// (The DReLU layer above this one supplies its own independent share
// of the same r_out secret, which cancels this term — see the drelu
// package's end-to-end test for that fully composed property.)
func TestGenerateKeysCombinedOutput(t *testing.T) {
	xs := []float32{1, 0, -1, -2048, 5.5, -5.5}
	r1s := []float32{0, 3, -7, 100, -0.5, 0}
	r2s := []float32{0, -2, 1, -50, 0, 3}

	r1 := make([]fixedpoint.Com, len(xs))
	r2 := make([]fixedpoint.Com, len(xs))
	x := make([]fixedpoint.Com, len(xs))
	for i := range xs {
		x[i] = fixedpoint.FromFloat32(xs[i])
		r1[i] = fixedpoint.FromFloat32(r1s[i])
		r2[i] = fixedpoint.FromFloat32(r2s[i])
	}
	rOut := []bool{true, false, true, false, true, true}

	maskedX := make([]fixedpoint.Com, len(x))
	for i := range x {
		maskedX[i] = x[i].Add(r1[i])
	}
	maskedY := r2

	k0, k1, err := GenerateKeys(r1, r2, rOut)
	if err != nil {
		t.Fatal(err)
	}

	out0 := k0.Evaluate(false, maskedX, maskedY)
	out1 := k1.Evaluate(true, maskedX, maskedY)

	for i := range x {
		want := (x[i].Raw() >= 0) != rOut[i]
		got := out0[i] != out1[i]
		if got != want {
			t.Errorf("index %d: x=%v got %v, want %v (rOut=%v)", i, xs[i], got, want, rOut[i])
		}
	}
}
