//
// Copyright (c) 2026 The NeuronVeil Authors
//
// All rights reserved.

// Package model defines the plaintext Model/Layer data model, its
// additive split into a ModelShare, and both the plaintext
// (InferLocally) and two-party (ModelShare.Infer) evaluators chaining
// the Dense and ReLU layer primitives (spec §4.10-4.11).
package model

import (
	"github.com/neuronveil/neuronveil/fixedpoint"
	"github.com/neuronveil/neuronveil/share"
)

// Layer is one layer of a plaintext Model: either a DenseLayer or a
// ReLULayer.
type Layer interface {
	isLayer()
}

// DenseLayer holds a weight matrix (input dimension rows, output
// dimension columns) and a bias vector of the output dimension.
type DenseLayer struct {
	Weights share.Matrix
	Bias    []fixedpoint.Com
}

func (DenseLayer) isLayer() {}

// ReLULayer is parameterless.
type ReLULayer struct{}

func (ReLULayer) isLayer() {}

// Model is an ordered sequence of layers.
type Model struct {
	Layers []Layer
}

// InferLocally evaluates the model in plaintext, without any
// protocol interaction: a Dense layer computes x.W + b, a ReLU layer
// zeroes negative elements. This is the reference path the two-party
// protocol's output is checked against, and what the CLI's
// -local-model flag drives directly.
func (m Model) InferLocally(x []fixedpoint.Com) ([]fixedpoint.Com, error) {
	cur := x
	for _, layer := range m.Layers {
		switch l := layer.(type) {
		case DenseLayer:
			out, err := share.VecMatDot(cur, l.Weights)
			if err != nil {
				return nil, err
			}
			for i := range out {
				out[i] = out[i].Add(l.Bias[i])
			}
			cur = out
		case ReLULayer:
			out := make([]fixedpoint.Com, len(cur))
			for i, c := range cur {
				if c.Raw() >= 0 {
					out[i] = c
				}
			}
			cur = out
		}
	}
	return cur, nil
}
