//
// Copyright (c) 2026 The NeuronVeil Authors
//
// All rights reserved.

package model

import (
	"fmt"

	"github.com/neuronveil/neuronveil/fixedpoint"
	"github.com/neuronveil/neuronveil/protocol/bitxa"
	"github.com/neuronveil/neuronveil/protocol/drelu"
	"github.com/neuronveil/neuronveil/protocol/triplet"
	"github.com/neuronveil/neuronveil/wire"
)

// Infer drives the two-party protocol over ch, evaluating ms against
// this party's share of the input, xShare. party == true is the
// server (model owner, key dealer); party == false is the client
// (input owner). Errors are wrapped with the originating layer's
// index, matching spec §7's causal-chain requirement (e.g. "layer 3:
// relu: bitxa: ...").
func (ms ModelShare) Infer(ch *wire.Channel, party bool, triplets triplet.Source, xShare []fixedpoint.Com) ([]fixedpoint.Com, error) {
	cur := xShare
	for i, layer := range ms.Layers {
		var err error
		switch l := layer.(type) {
		case DenseLayerShare:
			cur, err = inferDense(ch, party, triplets, cur, l)
		case ReLULayerShare:
			cur, err = inferReLU(ch, party, triplets, cur)
		}
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
	}
	return cur, nil
}

func inferDense(ch *wire.Channel, party bool, triplets triplet.Source, xShare []fixedpoint.Com, l DenseLayerShare) ([]fixedpoint.Com, error) {
	t, err := triplets.DotProduct(len(xShare), l.WeightsShare.Cols)
	if err != nil {
		return nil, err
	}
	out, err := triplet.DotProduct(ch, party, xShare, l.WeightsShare, t)
	if err != nil {
		return nil, fmt.Errorf("dense: %w", err)
	}
	for i := range out {
		out[i] = out[i].Add(l.BiasShare[i])
	}
	return out, nil
}

func inferReLU(ch *wire.Channel, party bool, triplets triplet.Source, xShare []fixedpoint.Com) ([]fixedpoint.Com, error) {
	var key drelu.Key
	if party {
		k0, k1, err := drelu.GenerateKeys(len(xShare))
		if err != nil {
			return nil, fmt.Errorf("relu: drelu key generation: %w", err)
		}
		if err := ch.Send(wire.TagDReLUKey, k1); err != nil {
			return nil, fmt.Errorf("relu: drelu key send: %w", err)
		}
		key = k0
	} else {
		if err := ch.Recv(wire.TagDReLUKey, &key); err != nil {
			return nil, fmt.Errorf("relu: drelu key recv: %w", err)
		}
	}

	positiveShare, err := drelu.DReLU(ch, party, xShare, key)
	if err != nil {
		return nil, fmt.Errorf("relu: drelu: %w", err)
	}

	out, err := bitxa.BitXA(ch, party, triplets, xShare, positiveShare)
	if err != nil {
		return nil, fmt.Errorf("relu: bitxa: %w", err)
	}
	return out, nil
}
