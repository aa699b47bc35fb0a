//
// Copyright (c) 2026 The NeuronVeil Authors
//
// All rights reserved.
//

package share

import "github.com/neuronveil/neuronveil/fixedpoint"

// SplitVector additively shares v: s0 is sampled uniformly from the
// CSPRNG and s1 = v - s0, so s0 + s1 = v (wrapping, componentwise).
func SplitVector(v []fixedpoint.Com) (s0, s1 []fixedpoint.Com, err error) {
	s0, err = fixedpoint.SampleVector(len(v))
	if err != nil {
		return nil, nil, err
	}
	s1 = make([]fixedpoint.Com, len(v))
	for i := range v {
		s1[i] = v[i].Sub(s0[i])
	}
	return s0, s1, nil
}

// SplitMatrix additively shares m the same way SplitVector shares a
// vector, elementwise.
func SplitMatrix(m Matrix) (s0, s1 Matrix, err error) {
	data0, data1, err := SplitVector(m.Data)
	if err != nil {
		return Matrix{}, Matrix{}, err
	}
	return Matrix{Rows: m.Rows, Cols: m.Cols, Data: data0},
		Matrix{Rows: m.Rows, Cols: m.Cols, Data: data1}, nil
}

// SplitBits XOR-shares b: s0 is sampled uniformly and s1 = b XOR s0.
func SplitBits(b []bool) (s0, s1 []bool, err error) {
	s0, err = fixedpoint.SampleBits(len(b))
	if err != nil {
		return nil, nil, err
	}
	s1 = make([]bool, len(b))
	for i := range b {
		s1[i] = b[i] != s0[i]
	}
	return s0, s1, nil
}
