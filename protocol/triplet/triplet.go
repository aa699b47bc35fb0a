//
// Copyright (c) 2026 The NeuronVeil Authors
//
// All rights reserved.

// Package triplet implements Beaver-triplet multiplication: Hadamard
// (elementwise vector x vector) and dot-product (vector x matrix)
// protocols, each a single masked-exchange round plus a local
// combine.
//
// Donald Beaver. Efficient Multiparty Protocols Using Circuit
// Randomization. CRYPTO 1991.
package triplet

import (
	"github.com/neuronveil/neuronveil/fixedpoint"
	"github.com/neuronveil/neuronveil/share"
)

// HadamardTriple holds one party's share of (a, b, ab) where the
// secrets satisfy ab = a ⊙ b elementwise.
type HadamardTriple struct {
	AShare, BShare, ABShare []fixedpoint.Com
}

// DotProductTriple holds one party's share of (a, b, ab) where a is a
// vector of length K, b is a (K, M) matrix, and the secrets satisfy
// ab = a . b.
type DotProductTriple struct {
	AShare  []fixedpoint.Com
	BShare  share.Matrix
	ABShare []fixedpoint.Com
}

// Source produces fresh Beaver triples. It must be consulted exactly
// once per multiplication: re-using a triple across two different
// multiplications breaks security. A production Source is typically
// backed by a trusted-dealer preprocessing phase or an
// oblivious-transfer-based online generator; see DESIGN.md for why
// this repository ships only the insecure zero-triple placeholder.
type Source interface {
	// Hadamard returns a triple usable to multiply two length-n
	// vectors.
	Hadamard(n int) (HadamardTriple, error)
	// DotProduct returns a triple usable to multiply a length-k vector
	// by a (k, m) matrix.
	DotProduct(k, m int) (DotProductTriple, error)
}

// ZeroSource is the documented, insecure placeholder triple source:
// a = b = ab = 0 for every triple it produces. Correctness of linear
// (Dense) layers still holds under this regime because the Beaver
// combine step's cross terms collapse to the equivalent of computing
// x_share*y + x*y_share - x*y directly; security does not hold, since
// neither party's mask hides anything. A real deployment must replace
// this with a Source backed by precomputed or OT-generated triples.
type ZeroSource struct{}

// Hadamard implements Source.
func (ZeroSource) Hadamard(n int) (HadamardTriple, error) {
	return HadamardTriple{
		AShare:  make([]fixedpoint.Com, n),
		BShare:  make([]fixedpoint.Com, n),
		ABShare: make([]fixedpoint.Com, n),
	}, nil
}

// DotProduct implements Source.
func (ZeroSource) DotProduct(k, m int) (DotProductTriple, error) {
	return DotProductTriple{
		AShare:  make([]fixedpoint.Com, k),
		BShare:  share.NewMatrix(k, m),
		ABShare: make([]fixedpoint.Com, m),
	}, nil
}
