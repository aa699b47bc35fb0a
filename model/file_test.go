//
// Copyright (c) 2026 The NeuronVeil Authors
//
// All rights reserved.

package model

import (
	"bytes"
	"testing"

	"github.com/neuronveil/neuronveil/fixedpoint"
	"github.com/neuronveil/neuronveil/share"
)

func TestSaveLoadModelRoundTrip(t *testing.T) {
	w := share.NewMatrix(2, 3)
	w.Set(0, 0, fixedpoint.FromFloat32(1.5))
	w.Set(0, 1, fixedpoint.FromFloat32(-2))
	w.Set(0, 2, fixedpoint.FromFloat32(0))
	w.Set(1, 0, fixedpoint.FromFloat32(0.25))
	w.Set(1, 1, fixedpoint.FromFloat32(3))
	w.Set(1, 2, fixedpoint.FromFloat32(-0.5))

	m := Model{Layers: []Layer{
		DenseLayer{
			Weights: w,
			Bias:    comVec(1, -1, 0),
		},
		ReLULayer{},
		identityDense(3),
	}}

	var buf bytes.Buffer
	if err := SaveModel(&buf, m); err != nil {
		t.Fatal(err)
	}

	got, err := LoadModel(&buf)
	if err != nil {
		t.Fatal(err)
	}

	if len(got.Layers) != len(m.Layers) {
		t.Fatalf("layer count: got %d, want %d", len(got.Layers), len(m.Layers))
	}

	d0, ok := got.Layers[0].(DenseLayer)
	if !ok {
		t.Fatalf("layer 0: got %T, want DenseLayer", got.Layers[0])
	}
	if !d0.Weights.SameShape(w) {
		t.Fatalf("weights shape: got (%d,%d), want (%d,%d)", d0.Weights.Rows, d0.Weights.Cols, w.Rows, w.Cols)
	}
	for i := range w.Data {
		if !d0.Weights.Data[i].Equal(w.Data[i]) {
			t.Errorf("weight %d: got %v, want %v", i, d0.Weights.Data[i], w.Data[i])
		}
	}
	for i := range d0.Bias {
		if !d0.Bias[i].Equal(m.Layers[0].(DenseLayer).Bias[i]) {
			t.Errorf("bias %d: got %v, want %v", i, d0.Bias[i], m.Layers[0].(DenseLayer).Bias[i])
		}
	}

	if _, ok := got.Layers[1].(ReLULayer); !ok {
		t.Fatalf("layer 1: got %T, want ReLULayer", got.Layers[1])
	}

	d2, ok := got.Layers[2].(DenseLayer)
	if !ok {
		t.Fatalf("layer 2: got %T, want DenseLayer", got.Layers[2])
	}
	for i := 0; i < 3; i++ {
		if !d2.Weights.At(i, i).Equal(fixedpoint.One) {
			t.Errorf("identity diagonal %d: got %v, want One", i, d2.Weights.At(i, i))
		}
	}
}

func TestLoadModelBadMagic(t *testing.T) {
	buf := bytes.NewBufferString("XXXX")
	if _, err := LoadModel(buf); err == nil {
		t.Fatal("expected error for bad magic, got nil")
	}
}
