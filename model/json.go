//
// Copyright (c) 2026 The NeuronVeil Authors
//
// All rights reserved.

package model

import (
	"encoding/json"
	"fmt"

	"github.com/neuronveil/neuronveil/protoerr"
)

// layerShareWire is the tagged-union envelope one LayerShare is
// encoded as, mirroring the wire package's own Tag/payload split so a
// ModelShare round-trips through JSON despite LayerShare being an
// interface.
type layerShareWire struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// MarshalJSON encodes ms as a tagged sequence of layer shares.
func (ms ModelShare) MarshalJSON() ([]byte, error) {
	wires := make([]layerShareWire, len(ms.Layers))
	for i, l := range ms.Layers {
		switch v := l.(type) {
		case DenseLayerShare:
			data, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}
			wires[i] = layerShareWire{Type: "dense", Data: data}
		case ReLULayerShare:
			wires[i] = layerShareWire{Type: "relu"}
		default:
			return nil, fmt.Errorf("%w: model: unknown layer share type %T", protoerr.ErrDeserialize, l)
		}
	}
	return json.Marshal(wires)
}

// UnmarshalJSON decodes a tagged sequence of layer shares into ms.
func (ms *ModelShare) UnmarshalJSON(data []byte) error {
	var wires []layerShareWire
	if err := json.Unmarshal(data, &wires); err != nil {
		return fmt.Errorf("%w: model: %v", protoerr.ErrDeserialize, err)
	}
	ms.Layers = make([]LayerShare, len(wires))
	for i, w := range wires {
		switch w.Type {
		case "dense":
			var d DenseLayerShare
			if err := json.Unmarshal(w.Data, &d); err != nil {
				return fmt.Errorf("%w: model: %v", protoerr.ErrDeserialize, err)
			}
			ms.Layers[i] = d
		case "relu":
			ms.Layers[i] = ReLULayerShare{}
		default:
			return fmt.Errorf("%w: model: unknown layer share type %q", protoerr.ErrDeserialize, w.Type)
		}
	}
	return nil
}
