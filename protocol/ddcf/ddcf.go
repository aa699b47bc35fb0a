//
// Copyright (c) 2026 The NeuronVeil Authors
//
// All rights reserved.

// Package ddcf implements a dual distributed comparison function
// (DDCF) gate and the signed-comparison protocol built on it: two
// parties each hold a key such that evaluating their key on a shared
// masked input produces shares that XOR to [x >= 0] XOR r_out, where
// r_out is the output mask the keys were generated with.
//
// The `(point < alpha)` comparator below stands in for a full FSS-DCF
// construction (e.g. Boyle-Gilboa-Ishai); the external contract is
// unchanged regardless of which evaluator backs it: the two parties'
// outputs XOR to the comparison bit masked by r_out. See DESIGN.md.
package ddcf

import (
	"github.com/neuronveil/neuronveil/fixedpoint"
	"github.com/neuronveil/neuronveil/share"
)

// Key holds one party's half of a DDCF gate for a vector of
// comparisons. Both parties currently receive the same (alpha,
// invert) — the DDCF key is not split in this implementation,
// documented as a limitation; a full FSS construction would split it
// so that neither half alone reveals the comparison threshold.
type Key struct {
	Alpha  []fixedpoint.Com `json:"alpha"`
	Invert []bool           `json:"invert"`
}

// SignedComparisonKey is the per-party key for the signed-comparison
// gate: a DDCF key plus a share of the output mask.
type SignedComparisonKey struct {
	DDCF      Key    `json:"ddcf"`
	ROutShare []bool `json:"r_out_share"`
}

func msb(c fixedpoint.Com) bool {
	return c.Msb()
}

func msbVec(v []fixedpoint.Com) []bool {
	out := make([]bool, len(v))
	for i, c := range v {
		out[i] = msb(c)
	}
	return out
}

// GenerateKeys produces the two parties' signed-comparison keys for
// input masks r1Ins, r2Ins and output mask rOut (spec §4.7):
//
//	r = r2 - r1
//	alpha = r AND 0x7FFF
//	invert = NOT msb(r)
//	r_out is XOR-split between the two keys.
func GenerateKeys(r1Ins, r2Ins []fixedpoint.Com, rOut []bool) (SignedComparisonKey, SignedComparisonKey, error) {
	n := len(r1Ins)
	r := make([]fixedpoint.Com, n)
	alpha := make([]fixedpoint.Com, n)
	invert := make([]bool, n)
	for i := 0; i < n; i++ {
		r[i] = r2Ins[i].Sub(r1Ins[i])
		alpha[i] = r[i].And(0x7FFF)
		invert[i] = !msb(r[i])
	}

	rOut0, rOut1, err := share.SplitBits(rOut)
	if err != nil {
		return SignedComparisonKey{}, SignedComparisonKey{}, err
	}

	ddcfKey := Key{Alpha: alpha, Invert: invert}
	return SignedComparisonKey{DDCF: ddcfKey, ROutShare: rOut0},
		SignedComparisonKey{DDCF: ddcfKey, ROutShare: rOut1}, nil
}

// Evaluate runs the signed-comparison gate ("Comp", Algorithm 2 of
// FssNN: Communication-Efficient Secure Neural Network Training via
// Function Secret Sharing, https://eprint.iacr.org/2023/073.pdf) on a
// publicly reconstructed masked_x and the (public) input mask
// masked_y = r_in_2, producing this party's share of
// [x >= 0] XOR r_out.
//
// The placeholder comparator is evaluated by the party == false side
// only; the party == true side contributes a constant false in its
// place. A full FSS-DCF key pair would instead secret-share the
// comparator's evaluation itself so that neither party alone learns
// (alpha, invert) — see the package doc and DESIGN.md.
func (k SignedComparisonKey) Evaluate(party bool, maskedX, maskedY []fixedpoint.Com) []bool {
	n := len(maskedX)
	z := make([]fixedpoint.Com, n)
	for i := range z {
		z[i] = maskedX[i].Sub(maskedY[i])
	}

	// point = (NOT z) AND 0x7FFF = 2^(n-1) - 1 - z_[0, n-1)
	point := make([]fixedpoint.Com, n)
	for i := range z {
		point[i] = z[i].Not().And(0x7FFF)
	}

	out := make([]bool, n)
	for i := range out {
		mShare := false
		if !party {
			mShare = (point[i].ToBits() < k.DDCF.Alpha[i].ToBits()) != k.DDCF.Invert[i]
		}
		vWithoutB := mShare != k.ROutShare[i]
		if party {
			out[i] = vWithoutB != msb(z[i])
		} else {
			out[i] = vWithoutB
		}
	}
	return out
}
