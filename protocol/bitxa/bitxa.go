//
// Copyright (c) 2026 The NeuronVeil Authors
//
// All rights reserved.

// Package bitxa implements the BitXA gate (spec §4.9): given a Com
// share of x and a boolean share of y, produces a Com share of x * y
// where y in {0, 1} is the secret bit interpreted as a plain integer.
// It combines a boolean-to-arithmetic conversion (via a Beaver
// Hadamard product over the raw bit domain) with a masked-reveal
// multiplication of the now-arithmetic y against x.
package bitxa

import (
	"fmt"

	"github.com/neuronveil/neuronveil/fixedpoint"
	"github.com/neuronveil/neuronveil/protoerr"
	"github.com/neuronveil/neuronveil/protocol/triplet"
	"github.com/neuronveil/neuronveil/wire"
)

// two is the plain integer 2, not the fixed-point value 2.0 — every
// multiplication in this gate involving a Δy-derived term operates in
// the unscaled {0, 1, 2} domain, never the fixed-point one.
var two = fixedpoint.FromRaw(2)

func arithmeticBit(b bool) fixedpoint.Com {
	if b {
		return fixedpoint.FromRaw(1)
	}
	return fixedpoint.Zero
}

// interaction is the online-phase masked reveal: each party's share
// of x, additively masked by its own Δx_share, plus its share of y
// XOR-masked by its own masked_Δy_share.
type interaction struct {
	DxShare []fixedpoint.Com `json:"dx_share"`
	DyShare []bool           `json:"dy_share"`
}

// BitXA evaluates the gate for this party's shares xShare, yShare,
// drawing two fresh Hadamard triples from triplets (never reused
// across the two internal multiplications).
func BitXA(ch *wire.Channel, party bool, triplets triplet.Source, xShare []fixedpoint.Com, yShare []bool) ([]fixedpoint.Com, error) {
	n := len(xShare)
	if len(yShare) != n {
		return nil, fmt.Errorf("%w: bitxa shapes x=%d y=%d", protoerr.ErrDimensionMismatch, n, len(yShare))
	}

	maskedDyShare, err := fixedpoint.SampleBits(n)
	if err != nil {
		return nil, err
	}

	eShare := make([]fixedpoint.Com, n)
	fShare := make([]fixedpoint.Com, n)
	for i := 0; i < n; i++ {
		bit := arithmeticBit(maskedDyShare[i])
		if party {
			eShare[i] = fixedpoint.Zero
			fShare[i] = bit
		} else {
			eShare[i] = bit
			fShare[i] = fixedpoint.Zero
		}
	}

	b2aTriple, err := triplets.Hadamard(n)
	if err != nil {
		return nil, err
	}
	efShare, err := triplet.HadamardRaw(ch, party, eShare, fShare, b2aTriple)
	if err != nil {
		return nil, fmt.Errorf("bitxa: boolean-to-arithmetic: %w", err)
	}

	arithDeltaYShare := make([]fixedpoint.Com, n)
	for i := 0; i < n; i++ {
		arithDeltaYShare[i] = eShare[i].Add(fShare[i]).Sub(two.Mul(efShare[i]))
	}

	deltaXShare, err := fixedpoint.SampleVector(n)
	if err != nil {
		return nil, err
	}

	zTriple, err := triplets.Hadamard(n)
	if err != nil {
		return nil, err
	}
	deltaZShare, err := triplet.HadamardRaw(ch, party, deltaXShare, arithDeltaYShare, zTriple)
	if err != nil {
		return nil, fmt.Errorf("bitxa: delta product: %w", err)
	}

	ours := interaction{
		DxShare: make([]fixedpoint.Com, n),
		DyShare: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		ours.DxShare[i] = xShare[i].Add(deltaXShare[i])
		ours.DyShare[i] = yShare[i] != maskedDyShare[i]
	}
	if err := ch.Send(wire.TagBitXAInteraction, ours); err != nil {
		return nil, fmt.Errorf("bitxa: %w", err)
	}
	var theirs interaction
	if err := ch.Recv(wire.TagBitXAInteraction, &theirs); err != nil {
		return nil, fmt.Errorf("bitxa: %w", err)
	}

	deltaX := make([]fixedpoint.Com, n)
	deltaY := make([]fixedpoint.Com, n)
	for i := 0; i < n; i++ {
		deltaX[i] = ours.DxShare[i].Add(theirs.DxShare[i])
		deltaYBool := ours.DyShare[i] != theirs.DyShare[i]
		deltaY[i] = arithmeticBit(deltaYBool)
	}

	out := make([]fixedpoint.Com, n)
	for i := 0; i < n; i++ {
		t := deltaY[i].Mul(deltaX[i])
		withoutBt := deltaZShare[i].Mul(two.Mul(deltaY[i])).
			Sub(deltaZShare[i]).
			Add(arithDeltaYShare[i].Mul(deltaX[i].Sub(two.Mul(t)))).
			Sub(deltaY[i].Mul(deltaXShare[i]))
		if party {
			out[i] = t.Add(withoutBt)
		} else {
			out[i] = withoutBt
		}
	}
	return out, nil
}
