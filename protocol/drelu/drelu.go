//
// Copyright (c) 2026 The NeuronVeil Authors
//
// All rights reserved.

// Package drelu implements the DReLU gate (spec §4.8): a share of
// [x >= 0] for each element of a shared vector x, built from the
// signed-comparison gate in package ddcf plus an input mask that
// hides x from the comparison and an output mask that hides the
// comparison's own internal bias from either party alone.
package drelu

import (
	"github.com/neuronveil/neuronveil/fixedpoint"
	"github.com/neuronveil/neuronveil/protocol/ddcf"
	"github.com/neuronveil/neuronveil/share"
	"github.com/neuronveil/neuronveil/wire"
)

// Key is one party's key for a DReLU gate over a vector of length n,
// generated once by the dealer (party == true) and sent to the peer.
type Key struct {
	RIn1Share           []fixedpoint.Com         `json:"r_in_1_share"`
	RIn2                []fixedpoint.Com         `json:"r_in_2"`
	ROutShare           []bool                   `json:"r_out_share"`
	SignedComparisonKey ddcf.SignedComparisonKey `json:"signed_comparison_key"`
}

// GenerateKeys samples the input mask r_in_1 and output mask r_out for
// a DReLU gate over n elements, and derives both parties' keys. r_in_2
// is fixed at zero: DReLU only needs to mask x itself, not a second
// operand, so the signed-comparison gate's "y" side is public zero.
func GenerateKeys(n int) (Key, Key, error) {
	rIn1, err := fixedpoint.SampleVector(n)
	if err != nil {
		return Key{}, Key{}, err
	}
	rIn2 := make([]fixedpoint.Com, n)

	rOut, err := fixedpoint.SampleBits(n)
	if err != nil {
		return Key{}, Key{}, err
	}

	rIn1Share0, rIn1Share1, err := share.SplitVector(rIn1)
	if err != nil {
		return Key{}, Key{}, err
	}
	rOutShare0, rOutShare1, err := share.SplitBits(rOut)
	if err != nil {
		return Key{}, Key{}, err
	}

	sck0, sck1, err := ddcf.GenerateKeys(rIn1, rIn2, rOut)
	if err != nil {
		return Key{}, Key{}, err
	}

	return Key{RIn1Share: rIn1Share0, RIn2: rIn2, ROutShare: rOutShare0, SignedComparisonKey: sck0},
		Key{RIn1Share: rIn1Share1, RIn2: rIn2, ROutShare: rOutShare1, SignedComparisonKey: sck1}, nil
}

// DReLU evaluates the gate for this party's share xShare of x, given
// this party's key. The two keys returned by GenerateKeys differ only
// in their shares, so either key may go with either party flag; the
// two callers must pass opposite flags, and DReLU passes its flag
// unchanged to the signed-comparison gate.
func DReLU(ch *wire.Channel, party bool, xShare []fixedpoint.Com, key Key) ([]bool, error) {
	maskedXShare := make([]fixedpoint.Com, len(xShare))
	for i := range xShare {
		maskedXShare[i] = xShare[i].Add(key.RIn1Share[i])
	}

	maskedX, err := share.ExchangeVector(ch, wire.TagDReLUInteraction, maskedXShare)
	if err != nil {
		return nil, err
	}

	comparison := key.SignedComparisonKey.Evaluate(party, maskedX, key.RIn2)

	out := make([]bool, len(comparison))
	for i := range out {
		out[i] = comparison[i] != key.ROutShare[i]
	}
	return out, nil
}
