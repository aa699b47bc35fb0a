//
// Copyright (c) 2026 The NeuronVeil Authors
//
// All rights reserved.
//

package share

import (
	"github.com/neuronveil/neuronveil/fixedpoint"
	"github.com/neuronveil/neuronveil/wire"
)

// ReconstructVector locally combines two additive shares: a + b.
func ReconstructVector(a, b []fixedpoint.Com) []fixedpoint.Com {
	out := make([]fixedpoint.Com, len(a))
	for i := range a {
		out[i] = a[i].Add(b[i])
	}
	return out
}

// ReconstructMatrix locally combines two additive matrix shares.
func ReconstructMatrix(a, b Matrix) Matrix {
	return Matrix{Rows: a.Rows, Cols: a.Cols, Data: ReconstructVector(a.Data, b.Data)}
}

// ReconstructBits locally combines two XOR shares: a XOR b.
func ReconstructBits(a, b []bool) []bool {
	out := make([]bool, len(a))
	for i := range a {
		out[i] = a[i] != b[i]
	}
	return out
}

// vectorShare is the wire payload for a mutual vector reconstruction:
// one party's share of an arithmetic-shared vector.
type vectorShare struct {
	Value []fixedpoint.Com `json:"value"`
}

// ExchangeVector performs an interactive "mutual reconstruction": it
// sends mine tagged as tag, awaits exactly one message of the same
// tag, and locally combines the two shares. Both parties must invoke
// this in the same order per session to avoid deadlock under the
// single-stream ordering the transport provides.
func ExchangeVector(ch *wire.Channel, tag wire.Tag, mine []fixedpoint.Com) ([]fixedpoint.Com, error) {
	if err := ch.Send(tag, vectorShare{Value: mine}); err != nil {
		return nil, err
	}
	var theirs vectorShare
	if err := ch.Recv(tag, &theirs); err != nil {
		return nil, err
	}
	return ReconstructVector(mine, theirs.Value), nil
}
