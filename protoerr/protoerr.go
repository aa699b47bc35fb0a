//
// Copyright (c) 2026 The NeuronVeil Authors
//
// All rights reserved.
//

// Package protoerr defines the error kinds shared by every protocol
// layer: channel failures, wire-format mismatches, and local
// precondition checks.
package protoerr

import "errors"

// ErrChannelClosed is returned when the peer has disconnected while a
// protocol step was waiting on a message.
var ErrChannelClosed = errors.New("channel closed")

// ErrUnexpectedMessage is returned when a reconstruction or key-phase
// step received a message with a different tag than expected.
var ErrUnexpectedMessage = errors.New("unexpected message")

// ErrDimensionMismatch is returned by a local check before a protocol
// step when two tensors' shapes don't agree.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// ErrDeserialize is returned when a model file or network frame fails
// to parse.
var ErrDeserialize = errors.New("deserialize error")

// ErrTransport wraps a lower-level I/O failure.
var ErrTransport = errors.New("transport error")
