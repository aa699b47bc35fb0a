//
// Copyright (c) 2026 The NeuronVeil Authors
//
// All rights reserved.

package model

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/neuronveil/neuronveil/fixedpoint"
	"github.com/neuronveil/neuronveil/protoerr"
	"github.com/neuronveil/neuronveil/share"
)

// The model file is out of scope for spec.md's format choice (spec.md
// §1's "out of scope: ... JSON serialization of model files"); this
// package picks a small self-describing binary layout instead: a
// magic number, a layer count, then per layer a type tag and raw
// big-endian Com weights/bias.
var fileMagic = [4]byte{'N', 'V', 'M', '1'}

const (
	layerTagDense byte = 0
	layerTagReLU  byte = 1
)

// SaveModel writes m to w in the model file format.
func SaveModel(w io.Writer, m Model) error {
	if _, err := w.Write(fileMagic[:]); err != nil {
		return fmt.Errorf("%w: model file: %v", protoerr.ErrTransport, err)
	}
	if err := binary.Write(w, binary.BigEndian, uint32(len(m.Layers))); err != nil {
		return fmt.Errorf("%w: model file: %v", protoerr.ErrTransport, err)
	}
	for _, layer := range m.Layers {
		switch l := layer.(type) {
		case DenseLayer:
			if err := writeDenseLayer(w, l); err != nil {
				return err
			}
		case ReLULayer:
			if _, err := w.Write([]byte{layerTagReLU}); err != nil {
				return fmt.Errorf("%w: model file: %v", protoerr.ErrTransport, err)
			}
		}
	}
	return nil
}

func writeDenseLayer(w io.Writer, l DenseLayer) error {
	header := []byte{layerTagDense}
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w: model file: %v", protoerr.ErrTransport, err)
	}
	dims := []uint32{uint32(l.Weights.Rows), uint32(l.Weights.Cols)}
	if err := binary.Write(w, binary.BigEndian, dims); err != nil {
		return fmt.Errorf("%w: model file: %v", protoerr.ErrTransport, err)
	}
	if err := writeComs(w, l.Weights.Data); err != nil {
		return err
	}
	return writeComs(w, l.Bias)
}

func writeComs(w io.Writer, v []fixedpoint.Com) error {
	raw := make([]int16, len(v))
	for i, c := range v {
		raw[i] = c.Raw()
	}
	if err := binary.Write(w, binary.BigEndian, raw); err != nil {
		return fmt.Errorf("%w: model file: %v", protoerr.ErrTransport, err)
	}
	return nil
}

// LoadModel reads a Model previously written by SaveModel.
func LoadModel(r io.Reader) (Model, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return Model{}, fmt.Errorf("%w: model file: %v", protoerr.ErrDeserialize, err)
	}
	if magic != fileMagic {
		return Model{}, fmt.Errorf("%w: model file: bad magic %q", protoerr.ErrDeserialize, magic)
	}

	var layerCount uint32
	if err := binary.Read(r, binary.BigEndian, &layerCount); err != nil {
		return Model{}, fmt.Errorf("%w: model file: %v", protoerr.ErrDeserialize, err)
	}

	m := Model{Layers: make([]Layer, layerCount)}
	for i := range m.Layers {
		var tag [1]byte
		if _, err := io.ReadFull(r, tag[:]); err != nil {
			return Model{}, fmt.Errorf("%w: model file: %v", protoerr.ErrDeserialize, err)
		}
		switch tag[0] {
		case layerTagDense:
			l, err := readDenseLayer(r)
			if err != nil {
				return Model{}, err
			}
			m.Layers[i] = l
		case layerTagReLU:
			m.Layers[i] = ReLULayer{}
		default:
			return Model{}, fmt.Errorf("%w: model file: unknown layer tag %d", protoerr.ErrDeserialize, tag[0])
		}
	}
	return m, nil
}

func readDenseLayer(r io.Reader) (DenseLayer, error) {
	var dims [2]uint32
	if err := binary.Read(r, binary.BigEndian, &dims); err != nil {
		return DenseLayer{}, fmt.Errorf("%w: model file: %v", protoerr.ErrDeserialize, err)
	}
	rows, cols := int(dims[0]), int(dims[1])

	weights, err := readComs(r, rows*cols)
	if err != nil {
		return DenseLayer{}, err
	}
	bias, err := readComs(r, cols)
	if err != nil {
		return DenseLayer{}, err
	}
	return DenseLayer{Weights: share.Matrix{Rows: rows, Cols: cols, Data: weights}, Bias: bias}, nil
}

func readComs(r io.Reader, n int) ([]fixedpoint.Com, error) {
	raw := make([]int16, n)
	if err := binary.Read(r, binary.BigEndian, raw); err != nil {
		return nil, fmt.Errorf("%w: model file: %v", protoerr.ErrDeserialize, err)
	}
	out := make([]fixedpoint.Com, n)
	for i, v := range raw {
		out[i] = fixedpoint.FromRaw(v)
	}
	return out, nil
}
