//
// Copyright (c) 2026 The NeuronVeil Authors
//
// All rights reserved.
//

// Package share implements additive sharing and XOR sharing of Com
// and boolean tensors, and their local and interactive reconstruction.
package share

import (
	"fmt"

	"github.com/neuronveil/neuronveil/fixedpoint"
	"github.com/neuronveil/neuronveil/protoerr"
)

// Matrix is a row-major matrix of Com values. It is the only
// multi-dimensional shape the protocol needs, so it is a dedicated
// type rather than a general n-dimensional tensor.
type Matrix struct {
	Rows, Cols int
	Data       []fixedpoint.Com `json:"data"`
}

// NewMatrix allocates a zeroed (rows x cols) matrix.
func NewMatrix(rows, cols int) Matrix {
	return Matrix{Rows: rows, Cols: cols, Data: make([]fixedpoint.Com, rows*cols)}
}

// At returns the element at (row, col).
func (m Matrix) At(row, col int) fixedpoint.Com {
	return m.Data[row*m.Cols+col]
}

// Set stores v at (row, col).
func (m Matrix) Set(row, col int, v fixedpoint.Com) {
	m.Data[row*m.Cols+col] = v
}

// SameShape reports whether m and other have identical dimensions.
func (m Matrix) SameShape(other Matrix) bool {
	return m.Rows == other.Rows && m.Cols == other.Cols
}

// CheckDimensions returns protoerr.ErrDimensionMismatch if m and
// other don't have the same shape.
func (m Matrix) CheckDimensions(other Matrix) error {
	if !m.SameShape(other) {
		return fmt.Errorf("%w: (%d,%d) vs (%d,%d)", protoerr.ErrDimensionMismatch,
			m.Rows, m.Cols, other.Rows, other.Cols)
	}
	return nil
}

// VecMatDotRaw computes the raw (unscaled) dot product x . W,
// summing raw elementwise products without ever calling
// AdjustProduct. Used by the Beaver dot-product combine step, which
// must sum several raw dot products together before rescaling once.
func VecMatDotRaw(x []fixedpoint.Com, w Matrix) ([]fixedpoint.Com, error) {
	if len(x) != w.Rows {
		return nil, fmt.Errorf("%w: vector length %d vs matrix rows %d",
			protoerr.ErrDimensionMismatch, len(x), w.Rows)
	}
	out := make([]fixedpoint.Com, w.Cols)
	for j := 0; j < w.Cols; j++ {
		var acc fixedpoint.Com
		for k := 0; k < w.Rows; k++ {
			acc = acc.Add(x[k].Mul(w.At(k, j)))
		}
		out[j] = acc
	}
	return out, nil
}

// VecMatDot computes x . W for a row vector x of length K and a (K,
// M) matrix W, returning a vector of length M. The fixed-point
// rescaling is applied once per output element, after summing the raw
// products, matching the "exactly once per user-level multiplication"
// rule for adjust_product.
func VecMatDot(x []fixedpoint.Com, w Matrix) ([]fixedpoint.Com, error) {
	if len(x) != w.Rows {
		return nil, fmt.Errorf("%w: vector length %d vs matrix rows %d",
			protoerr.ErrDimensionMismatch, len(x), w.Rows)
	}
	out := make([]fixedpoint.Com, w.Cols)
	for j := 0; j < w.Cols; j++ {
		var acc fixedpoint.Com
		for k := 0; k < w.Rows; k++ {
			acc = acc.Add(x[k].Mul(w.At(k, j)))
		}
		out[j] = fixedpoint.AdjustProduct(acc)
	}
	return out, nil
}
