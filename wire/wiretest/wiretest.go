//
// Copyright (c) 2026 The NeuronVeil Authors
//
// All rights reserved.

// Package wiretest provides an in-process RawTransport pair with
// length-prefixed framing for exercising protocol code without a real
// network connection.
package wiretest

import (
	"io"
	"os"
)

// pipeTransport implements wire.RawTransport over a pair of OS pipes:
// one for writing frames out, one for reading frames in.
type pipeTransport struct {
	w io.WriteCloser
	r io.ReadCloser
}

// WriteFrame writes a length-prefixed frame.
func (p *pipeTransport) WriteFrame(frame []byte) error {
	var lenBuf [4]byte
	n := len(frame)
	lenBuf[0] = byte(n >> 24)
	lenBuf[1] = byte(n >> 16)
	lenBuf[2] = byte(n >> 8)
	lenBuf[3] = byte(n)
	if _, err := p.w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := p.w.Write(frame)
	return err
}

// ReadFrame reads one length-prefixed frame.
func (p *pipeTransport) ReadFrame() ([]byte, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(p.r, lenBuf[:]); err != nil {
		return nil, err
	}
	n := int(lenBuf[0])<<24 | int(lenBuf[1])<<16 | int(lenBuf[2])<<8 | int(lenBuf[3])
	buf := make([]byte, n)
	if _, err := io.ReadFull(p.r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Close closes both directions.
func (p *pipeTransport) Close() error {
	p.w.Close()
	return p.r.Close()
}

// NewPair returns two connected RawTransports: frames written to a
// are readable from b and vice versa. Each direction's kernel pipe
// buffer holds written frames until the peer reads them, so both
// parties can send before either receives.
func NewPair() (a, b *pipeTransport) {
	r1, w1, err := os.Pipe()
	if err != nil {
		panic(err)
	}
	r2, w2, err := os.Pipe()
	if err != nil {
		panic(err)
	}
	a = &pipeTransport{w: w1, r: r2}
	b = &pipeTransport{w: w2, r: r1}
	return a, b
}
