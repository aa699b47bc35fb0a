//
// Copyright (c) 2026 The NeuronVeil Authors
//
// All rights reserved.
//

// Package wire implements the protocol's tagged-union message bus: a
// JSON envelope carrying a Tag and an arbitrary payload, and the
// Channel abstraction that sends and receives those envelopes over a
// RawTransport.
package wire

import (
	"encoding/json"
	"fmt"

	"github.com/neuronveil/neuronveil/protoerr"
)

// Tag identifies the variant of a Message in the protocol's tagged
// union (spec §4.5).
type Tag string

// The protocol's message variants.
const (
	TagModelShare                 Tag = "ModelShare"
	TagInputShare                 Tag = "InputShare"
	TagOutputShare                Tag = "OutputShare"
	TagDotProductInteraction      Tag = "DotProductInteraction"
	TagHadamardProductInteraction Tag = "HadamardProductInteraction"
	TagDReLUKey                   Tag = "DReLUKey"
	TagDReLUInteraction           Tag = "DReLUInteraction"
	TagBitXAInteraction           Tag = "BitXAInteraction"
)

type envelope struct {
	Type    Tag             `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Encode marshals a tagged payload into a single wire frame.
func Encode(tag Tag, payload interface{}) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: encode %v: %v", protoerr.ErrDeserialize, tag, err)
	}
	return json.Marshal(envelope{Type: tag, Payload: raw})
}

// RawTransport is the framed byte-stream interface a Channel is built
// on. Implementations (see package transport) are responsible for
// reliability and authentication; Channel only deals in tagged JSON
// frames.
type RawTransport interface {
	WriteFrame(frame []byte) error
	ReadFrame() ([]byte, error)
	Close() error
}

// Channel is one session's message bus: an outgoing sink and an
// incoming, tag-dispatching source, both backed by the same
// RawTransport.
type Channel struct {
	transport RawTransport
}

// NewChannel wraps a RawTransport in a Channel.
func NewChannel(transport RawTransport) *Channel {
	return &Channel{transport: transport}
}

// Send encodes and writes a tagged message. Sends are non-blocking at
// the protocol level; backpressure is absorbed by the transport.
func (c *Channel) Send(tag Tag, payload interface{}) error {
	frame, err := Encode(tag, payload)
	if err != nil {
		return err
	}
	if err := c.transport.WriteFrame(frame); err != nil {
		return fmt.Errorf("%w: %v", protoerr.ErrTransport, err)
	}
	return nil
}

// Recv awaits exactly one message. If its tag doesn't match want, or
// the channel is closed, it fails without consuming further frames.
// The ordered single-stream transport (spec §5's permitted
// simplification) means Recv never needs to buffer a frame for a
// later call. It still checks the tag explicitly: over a transport
// that reorders frames, an early frame fails with
// ErrUnexpectedMessage instead of being misread, and it is not kept
// for a later call.
func (c *Channel) Recv(want Tag, out interface{}) error {
	frame, err := c.transport.ReadFrame()
	if err != nil {
		return fmt.Errorf("%w: %v", protoerr.ErrChannelClosed, err)
	}
	var env envelope
	if err := json.Unmarshal(frame, &env); err != nil {
		return fmt.Errorf("%w: %v", protoerr.ErrDeserialize, err)
	}
	if env.Type != want {
		return fmt.Errorf("%w: got %v, want %v", protoerr.ErrUnexpectedMessage, env.Type, want)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Payload, out); err != nil {
		return fmt.Errorf("%w: %v", protoerr.ErrDeserialize, err)
	}
	return nil
}

// Close releases the underlying transport.
func (c *Channel) Close() error {
	return c.transport.Close()
}
