//
// Copyright (c) 2026 The NeuronVeil Authors
//
// All rights reserved.

package model

import (
	"github.com/neuronveil/neuronveil/fixedpoint"
	"github.com/neuronveil/neuronveil/share"
)

// LayerShare is one party's share of a Layer.
type LayerShare interface {
	isLayerShare()
}

// DenseLayerShare holds one party's additive share of a DenseLayer's
// weights and bias.
type DenseLayerShare struct {
	WeightsShare share.Matrix
	BiasShare    []fixedpoint.Com
}

func (DenseLayerShare) isLayerShare() {}

// ReLULayerShare holds no material: ReLU's secrecy lives entirely in
// the DReLU/BitXA keys generated fresh at evaluation time.
type ReLULayerShare struct{}

func (ReLULayerShare) isLayerShare() {}

// ModelShare is an ordered sequence of layer-shares, one party's half
// of a split Model.
type ModelShare struct {
	Layers []LayerShare
}

// Split additively shares m between two parties.
func (m Model) Split() (ModelShare, ModelShare, error) {
	s0 := ModelShare{Layers: make([]LayerShare, len(m.Layers))}
	s1 := ModelShare{Layers: make([]LayerShare, len(m.Layers))}
	for i, layer := range m.Layers {
		switch l := layer.(type) {
		case DenseLayer:
			w0, w1, err := share.SplitMatrix(l.Weights)
			if err != nil {
				return ModelShare{}, ModelShare{}, err
			}
			b0, b1, err := share.SplitVector(l.Bias)
			if err != nil {
				return ModelShare{}, ModelShare{}, err
			}
			s0.Layers[i] = DenseLayerShare{WeightsShare: w0, BiasShare: b0}
			s1.Layers[i] = DenseLayerShare{WeightsShare: w1, BiasShare: b1}
		case ReLULayer:
			s0.Layers[i] = ReLULayerShare{}
			s1.Layers[i] = ReLULayerShare{}
		}
	}
	return s0, s1, nil
}
