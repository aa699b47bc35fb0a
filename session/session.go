//
// Copyright (c) 2026 The NeuronVeil Authors
//
// All rights reserved.

// Package session drives one end-to-end two-party inference exchange
// over a wire.Channel, following spec.md §6's wire sequence: Server
// sends ModelShare, Client sends InputShare, the layers run, Server
// sends OutputShare. RunServer and RunClient are the convenience
// entry points the CLI front-ends call, matching the original
// server::infer/client::infer split (see SUPPLEMENTED FEATURES).
package session

import (
	"fmt"

	"github.com/neuronveil/neuronveil/fixedpoint"
	"github.com/neuronveil/neuronveil/model"
	"github.com/neuronveil/neuronveil/protocol/triplet"
	"github.com/neuronveil/neuronveil/share"
	"github.com/neuronveil/neuronveil/wire"
)

// vectorMsg is the wire payload for a one-directional InputShare or
// OutputShare message.
type vectorMsg struct {
	Value []fixedpoint.Com `json:"value"`
}

// RunServer plays the server (model owner, key dealer) side of one
// session over ch: it splits m, sends the client's half, evaluates its
// own share against the client's input share, and sends back its
// output share. The server never learns the plaintext input or
// output.
func RunServer(ch *wire.Channel, m model.Model, triplets triplet.Source) error {
	serverShare, clientShare, err := m.Split()
	if err != nil {
		return fmt.Errorf("session: split model: %w", err)
	}
	if err := ch.Send(wire.TagModelShare, clientShare); err != nil {
		return fmt.Errorf("session: send model share: %w", err)
	}

	var inputShare vectorMsg
	if err := ch.Recv(wire.TagInputShare, &inputShare); err != nil {
		return fmt.Errorf("session: recv input share: %w", err)
	}

	outputShare, err := serverShare.Infer(ch, true, triplets, inputShare.Value)
	if err != nil {
		return fmt.Errorf("session: infer: %w", err)
	}

	if err := ch.Send(wire.TagOutputShare, vectorMsg{Value: outputShare}); err != nil {
		return fmt.Errorf("session: send output share: %w", err)
	}
	return nil
}

// RunClient plays the client (input owner) side of one session over
// ch: it receives its model share, splits and sends its input share,
// evaluates, and reconstructs the plaintext output from the server's
// output share.
func RunClient(ch *wire.Channel, input []float32, triplets triplet.Source) ([]float32, error) {
	var clientShare model.ModelShare
	if err := ch.Recv(wire.TagModelShare, &clientShare); err != nil {
		return nil, fmt.Errorf("session: recv model share: %w", err)
	}

	x := make([]fixedpoint.Com, len(input))
	for i, v := range input {
		x[i] = fixedpoint.FromFloat32(v)
	}
	serverInputShare, clientInputShare, err := share.SplitVector(x)
	if err != nil {
		return nil, fmt.Errorf("session: split input: %w", err)
	}
	if err := ch.Send(wire.TagInputShare, vectorMsg{Value: serverInputShare}); err != nil {
		return nil, fmt.Errorf("session: send input share: %w", err)
	}

	clientOutputShare, err := clientShare.Infer(ch, false, triplets, clientInputShare)
	if err != nil {
		return nil, fmt.Errorf("session: infer: %w", err)
	}

	var serverOutputShare vectorMsg
	if err := ch.Recv(wire.TagOutputShare, &serverOutputShare); err != nil {
		return nil, fmt.Errorf("session: recv output share: %w", err)
	}

	out := share.ReconstructVector(clientOutputShare, serverOutputShare.Value)
	result := make([]float32, len(out))
	for i, c := range out {
		result[i] = c.ToFloat32()
	}
	return result, nil
}
