//
// Copyright (c) 2026 The NeuronVeil Authors
//
// All rights reserved.

package model

import (
	"sync"
	"testing"

	"github.com/neuronveil/neuronveil/fixedpoint"
	"github.com/neuronveil/neuronveil/protocol/triplet"
	"github.com/neuronveil/neuronveil/share"
	"github.com/neuronveil/neuronveil/wire"
	"github.com/neuronveil/neuronveil/wire/wiretest"
)

func identityDense(n int) DenseLayer {
	w := share.NewMatrix(n, n)
	for i := 0; i < n; i++ {
		w.Set(i, i, fixedpoint.One)
	}
	return DenseLayer{Weights: w, Bias: make([]fixedpoint.Com, n)}
}

func comVec(xs ...float32) []fixedpoint.Com {
	out := make([]fixedpoint.Com, len(xs))
	for i, x := range xs {
		out[i] = fixedpoint.FromFloat32(x)
	}
	return out
}

func floatsOf(t *testing.T, v []fixedpoint.Com) []float32 {
	t.Helper()
	out := make([]float32, len(v))
	for i, c := range v {
		out[i] = c.ToFloat32()
	}
	return out
}

func approxEqual(t *testing.T, got, want []float32, tol float32) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if diff := got[i] - want[i]; diff > tol || diff < -tol {
			t.Errorf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

// TestInferLocallyDenseIdentity exercises spec scenario 1.
func TestInferLocallyDenseIdentity(t *testing.T) {
	m := Model{Layers: []Layer{identityDense(4)}}
	x := comVec(1, 1, -1, -1)

	out, err := m.InferLocally(x)
	if err != nil {
		t.Fatal(err)
	}
	approxEqual(t, floatsOf(t, out), []float32{1, 1, -1, -1}, 1.0/16)
}

// TestInferLocallyDenseReLU exercises spec scenario 2.
func TestInferLocallyDenseReLU(t *testing.T) {
	m := Model{Layers: []Layer{identityDense(4), ReLULayer{}}}
	x := comVec(1, 1, -1, -1)

	out, err := m.InferLocally(x)
	if err != nil {
		t.Fatal(err)
	}
	approxEqual(t, floatsOf(t, out), []float32{1, 1, 0, 0}, 1.0/16)
}

func runTwoParty(t *testing.T, ms0, ms1 ModelShare, x0, x1 []fixedpoint.Com) (out0, out1 []fixedpoint.Com) {
	t.Helper()
	a, b := wiretest.NewPair()
	chServer := wire.NewChannel(a)
	chClient := wire.NewChannel(b)
	zero := triplet.ZeroSource{}

	var serverErr, clientErr error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		out0, serverErr = ms0.Infer(chServer, true, zero, x0)
	}()
	go func() {
		defer wg.Done()
		out1, clientErr = ms1.Infer(chClient, false, zero, x1)
	}()
	wg.Wait()

	if serverErr != nil {
		t.Fatalf("server: %v", serverErr)
	}
	if clientErr != nil {
		t.Fatalf("client: %v", clientErr)
	}
	return out0, out1
}

// TestInferTwoPartyDenseIdentity exercises spec scenario 1 over the
// two-party protocol.
func TestInferTwoPartyDenseIdentity(t *testing.T) {
	m := Model{Layers: []Layer{identityDense(4)}}
	ms0, ms1, err := m.Split()
	if err != nil {
		t.Fatal(err)
	}

	x := comVec(1, 1, -1, -1)
	x0, x1, err := share.SplitVector(x)
	if err != nil {
		t.Fatal(err)
	}

	out0, out1 := runTwoParty(t, ms0, ms1, x0, x1)
	got := floatsOf(t, share.ReconstructVector(out0, out1))
	approxEqual(t, got, []float32{1, 1, -1, -1}, 1.0/16)
}

// TestInferTwoPartyDenseReLU exercises spec scenario 2 over the
// two-party protocol.
func TestInferTwoPartyDenseReLU(t *testing.T) {
	m := Model{Layers: []Layer{identityDense(4), ReLULayer{}}}
	ms0, ms1, err := m.Split()
	if err != nil {
		t.Fatal(err)
	}

	x := comVec(1, 1, -1, -1)
	x0, x1, err := share.SplitVector(x)
	if err != nil {
		t.Fatal(err)
	}

	out0, out1 := runTwoParty(t, ms0, ms1, x0, x1)
	got := floatsOf(t, share.ReconstructVector(out0, out1))
	approxEqual(t, got, []float32{1, 1, 0, 0}, 1.0/16)
}
