//
// Copyright (c) 2026 The NeuronVeil Authors
//
// All rights reserved.
//

package share

import (
	"testing"

	"github.com/neuronveil/neuronveil/fixedpoint"
)

func comVec(xs ...float32) []fixedpoint.Com {
	out := make([]fixedpoint.Com, len(xs))
	for i, x := range xs {
		out[i] = fixedpoint.FromFloat32(x)
	}
	return out
}

func TestSplitVectorReconstructs(t *testing.T) {
	v := comVec(1, -1, 0, 2048-1.0/16)
	s0, s1, err := SplitVector(v)
	if err != nil {
		t.Fatalf("SplitVector: %v", err)
	}
	got := ReconstructVector(s0, s1)
	for i := range v {
		if !got[i].Equal(v[i]) {
			t.Errorf("index %d: reconstructed %v, want %v", i, got[i].Raw(), v[i].Raw())
		}
	}
}

func TestSplitBitsReconstructs(t *testing.T) {
	b := []bool{true, false, true, true, false}
	s0, s1, err := SplitBits(b)
	if err != nil {
		t.Fatalf("SplitBits: %v", err)
	}
	got := ReconstructBits(s0, s1)
	for i := range b {
		if got[i] != b[i] {
			t.Errorf("index %d: reconstructed %v, want %v", i, got[i], b[i])
		}
	}
}

func TestSplitMatrixReconstructs(t *testing.T) {
	m := Matrix{Rows: 2, Cols: 2, Data: comVec(1, 2, 3, 4)}
	s0, s1, err := SplitMatrix(m)
	if err != nil {
		t.Fatalf("SplitMatrix: %v", err)
	}
	got := ReconstructMatrix(s0, s1)
	for i := range m.Data {
		if !got.Data[i].Equal(m.Data[i]) {
			t.Errorf("index %d: reconstructed %v, want %v", i, got.Data[i].Raw(), m.Data[i].Raw())
		}
	}
}

func TestVecMatDotIdentity(t *testing.T) {
	identity := Matrix{Rows: 3, Cols: 3, Data: comVec(
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	)}
	x := comVec(1, -1, 2)
	got, err := VecMatDot(x, identity)
	if err != nil {
		t.Fatalf("VecMatDot: %v", err)
	}
	for i := range x {
		if !got[i].Equal(x[i]) {
			t.Errorf("index %d: got %v, want %v", i, got[i].Raw(), x[i].Raw())
		}
	}
}

func TestVecMatDotDimensionMismatch(t *testing.T) {
	m := NewMatrix(2, 2)
	_, err := VecMatDot(comVec(1, 2, 3), m)
	if err == nil {
		t.Fatal("expected dimension mismatch error")
	}
}
