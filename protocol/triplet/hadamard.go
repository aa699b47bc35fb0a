//
// Copyright (c) 2026 The NeuronVeil Authors
//
// All rights reserved.

package triplet

import (
	"fmt"

	"github.com/neuronveil/neuronveil/fixedpoint"
	"github.com/neuronveil/neuronveil/protoerr"
	"github.com/neuronveil/neuronveil/wire"
)

// hadamardInteraction is the masked e/f exchange for one Hadamard
// multiplication.
type hadamardInteraction struct {
	EShare []fixedpoint.Com `json:"e_share"`
	FShare []fixedpoint.Com `json:"f_share"`
}

// Hadamard computes a share of x ⊙ y (elementwise product of two
// genuine fixed-point operands) given shares of x and y and a fresh
// triple, rescaling the raw Beaver combine exactly once per the
// data model's "user-level multiplication" rule (spec §3). party
// distinguishes the server (true, key dealer) from the client
// (false); the term e ⊙ f is added by the server's share only, so
// that summing both parties' outputs yields the true product exactly
// once.
//
// The triple t must not be reused for another multiplication.
func Hadamard(ch *wire.Channel, party bool, xShare, yShare []fixedpoint.Com, t HadamardTriple) ([]fixedpoint.Com, error) {
	return hadamard(ch, party, xShare, yShare, t, true)
}

// HadamardRaw is Hadamard without the final rescale: for operands
// that are already plain (unscaled) integers rather than fixed-point
// fractions, such as the boolean-to-arithmetic conversions inside
// package bitxa, where dividing by the fixed-point scale would
// corrupt a value that was never scaled up in the first place.
func HadamardRaw(ch *wire.Channel, party bool, xShare, yShare []fixedpoint.Com, t HadamardTriple) ([]fixedpoint.Com, error) {
	return hadamard(ch, party, xShare, yShare, t, false)
}

func hadamard(ch *wire.Channel, party bool, xShare, yShare []fixedpoint.Com, t HadamardTriple, rescale bool) ([]fixedpoint.Com, error) {
	n := len(xShare)
	if len(yShare) != n || len(t.AShare) != n || len(t.BShare) != n || len(t.ABShare) != n {
		return nil, fmt.Errorf("%w: hadamard shapes x=%d y=%d a=%d b=%d ab=%d",
			protoerr.ErrDimensionMismatch, n, len(yShare), len(t.AShare), len(t.BShare), len(t.ABShare))
	}

	ours := hadamardInteraction{
		EShare: subVec(xShare, t.AShare),
		FShare: subVec(yShare, t.BShare),
	}
	if err := ch.Send(wire.TagHadamardProductInteraction, ours); err != nil {
		return nil, fmt.Errorf("hadamard product: %w", err)
	}

	var theirs hadamardInteraction
	if err := ch.Recv(wire.TagHadamardProductInteraction, &theirs); err != nil {
		return nil, fmt.Errorf("hadamard product: %w", err)
	}

	e := addVec(ours.EShare, theirs.EShare)
	f := addVec(ours.FShare, theirs.FShare)

	out := make([]fixedpoint.Com, n)
	for i := 0; i < n; i++ {
		raw := t.AShare[i].Mul(f[i]).Add(e[i].Mul(t.BShare[i]))
		if party {
			raw = raw.Add(e[i].Mul(f[i]))
		}
		if rescale {
			raw = fixedpoint.AdjustProduct(raw)
		}
		out[i] = raw.Add(t.ABShare[i])
	}
	return out, nil
}

func addVec(a, b []fixedpoint.Com) []fixedpoint.Com {
	out := make([]fixedpoint.Com, len(a))
	for i := range a {
		out[i] = a[i].Add(b[i])
	}
	return out
}

func subVec(a, b []fixedpoint.Com) []fixedpoint.Com {
	out := make([]fixedpoint.Com, len(a))
	for i := range a {
		out[i] = a[i].Sub(b[i])
	}
	return out
}
