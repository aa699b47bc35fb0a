//
// Copyright (c) 2026 The NeuronVeil Authors
//
// All rights reserved.

package triplet

import (
	"fmt"

	"github.com/neuronveil/neuronveil/fixedpoint"
	"github.com/neuronveil/neuronveil/protoerr"
	"github.com/neuronveil/neuronveil/share"
	"github.com/neuronveil/neuronveil/wire"
)

// dotProductInteraction is the masked e/f exchange for one
// dot-product multiplication: e is a vector, f is a matrix.
type dotProductInteraction struct {
	EShare []fixedpoint.Com `json:"e_share"`
	FShare share.Matrix     `json:"f_share"`
}

// DotProduct computes a share of x . y (shape (K,) dot (K, M) -> (M,))
// given shares of x and y and a fresh triple. Structurally identical
// to Hadamard except f is a matrix and the combine step uses matrix
// dot product instead of elementwise multiply.
func DotProduct(ch *wire.Channel, party bool, xShare []fixedpoint.Com, yShare share.Matrix, t DotProductTriple) ([]fixedpoint.Com, error) {
	k := len(xShare)
	if yShare.Rows != k || len(t.AShare) != k || t.BShare.Rows != k || t.BShare.Cols != yShare.Cols || len(t.ABShare) != yShare.Cols {
		return nil, fmt.Errorf("%w: dot product shapes x=%d y=(%d,%d) a=%d b=(%d,%d) ab=%d",
			protoerr.ErrDimensionMismatch, k, yShare.Rows, yShare.Cols,
			len(t.AShare), t.BShare.Rows, t.BShare.Cols, len(t.ABShare))
	}

	ours := dotProductInteraction{
		EShare: subVec(xShare, t.AShare),
		FShare: share.Matrix{Rows: yShare.Rows, Cols: yShare.Cols, Data: subVec(yShare.Data, t.BShare.Data)},
	}
	if err := ch.Send(wire.TagDotProductInteraction, ours); err != nil {
		return nil, fmt.Errorf("dot product: %w", err)
	}

	var theirs dotProductInteraction
	if err := ch.Recv(wire.TagDotProductInteraction, &theirs); err != nil {
		return nil, fmt.Errorf("dot product: %w", err)
	}

	e := addVec(ours.EShare, theirs.EShare)
	f := share.Matrix{Rows: ours.FShare.Rows, Cols: ours.FShare.Cols, Data: addVec(ours.FShare.Data, theirs.FShare.Data)}

	aDotF, err := share.VecMatDotRaw(t.AShare, f)
	if err != nil {
		return nil, err
	}
	eDotB, err := share.VecMatDotRaw(e, t.BShare)
	if err != nil {
		return nil, err
	}

	m := yShare.Cols
	out := make([]fixedpoint.Com, m)
	for j := 0; j < m; j++ {
		raw := aDotF[j].Add(eDotB[j])
		if party {
			eDotF, err := share.VecMatDotRaw(e, f)
			if err != nil {
				return nil, err
			}
			raw = raw.Add(eDotF[j])
		}
		out[j] = fixedpoint.AdjustProduct(raw).Add(t.ABShare[j])
	}
	return out, nil
}
