//
// Copyright (c) 2026 The NeuronVeil Authors
//
// All rights reserved.

package triplet

import (
	"sync"
	"testing"

	"github.com/neuronveil/neuronveil/fixedpoint"
	"github.com/neuronveil/neuronveil/share"
	"github.com/neuronveil/neuronveil/wire"
	"github.com/neuronveil/neuronveil/wire/wiretest"
)

// TestDotProductIdentity exercises spec scenario 1's core
// multiplication: a 4x4 identity matrix dot [1, 1, -1, -1] should
// reconstruct to [1, 1, -1, -1].
func TestDotProductIdentity(t *testing.T) {
	identity := share.Matrix{Rows: 4, Cols: 4, Data: comVec(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)}
	x := comVec(1, 1, -1, -1)

	x0, x1, err := share.SplitVector(x)
	if err != nil {
		t.Fatal(err)
	}
	w0, w1, err := share.SplitMatrix(identity)
	if err != nil {
		t.Fatal(err)
	}

	a, b := wiretest.NewPair()
	chServer := wire.NewChannel(a)
	chClient := wire.NewChannel(b)

	zero := ZeroSource{}
	tServer, err := zero.DotProduct(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	tClient, err := zero.DotProduct(4, 4)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	var serverOut, clientOut []fixedpoint.Com
	var serverErr, clientErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		serverOut, serverErr = DotProduct(chServer, true, x0, w0, tServer)
	}()
	go func() {
		defer wg.Done()
		clientOut, clientErr = DotProduct(chClient, false, x1, w1, tClient)
	}()
	wg.Wait()

	if serverErr != nil {
		t.Fatalf("server: %v", serverErr)
	}
	if clientErr != nil {
		t.Fatalf("client: %v", clientErr)
	}

	got := reconstructFloats(t, serverOut, clientOut)
	want := []float32{1, 1, -1, -1}
	for i := range want {
		if diff := got[i] - want[i]; diff > 1.0/16 || diff < -1.0/16 {
			t.Errorf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
