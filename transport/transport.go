//
// Copyright (c) 2026 The NeuronVeil Authors
//
// All rights reserved.

// Package transport implements the reliable, authenticated, framed
// stream spec.md §6 requires and marks out of scope: an ECDH
// handshake over a net.Conn followed by AEAD-sealed, length-prefixed
// frames, satisfying the wire.RawTransport interface without standing
// up a TLS handshake or certificate chain.
package transport

import (
	"crypto/cipher"
	"crypto/ecdh"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"net"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

const (
	maxFrameSize  = 16 << 20
	lenPrefixSize = 4
)

// Conn wraps a net.Conn in an authenticated, framed RawTransport.
// Reads and writes are each sealed under their own directional key, so
// the two peers never reuse a nonce under the same key.
type Conn struct {
	nc   net.Conn
	seal cipher.AEAD
	open cipher.AEAD

	sendSeq uint64
	recvSeq uint64
}

// Handshake performs an ephemeral ECDH key agreement over nc and
// derives the two directional AEAD keys, returning a Conn ready for
// WriteFrame/ReadFrame. isServer selects which of the two HKDF info
// strings is used for sealing vs. opening, so client and server end up
// with swapped but matching key pairs.
func Handshake(nc net.Conn, isServer bool) (*Conn, error) {
	curve := ecdh.P256()
	priv, err := curve.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("transport: generate key: %w", err)
	}

	// The client sends its public key first and the server answers, so
	// the exchange also completes over an unbuffered conn (net.Pipe).
	ourPub := priv.PublicKey().Bytes()
	var peerPubBytes []byte
	if !isServer {
		if err := writeLenPrefixed(nc, ourPub); err != nil {
			return nil, fmt.Errorf("transport: send public key: %w", err)
		}
	}
	peerPubBytes, err = readLenPrefixed(nc, 1024)
	if err != nil {
		return nil, fmt.Errorf("transport: recv public key: %w", err)
	}
	if isServer {
		if err := writeLenPrefixed(nc, ourPub); err != nil {
			return nil, fmt.Errorf("transport: send public key: %w", err)
		}
	}
	peerPub, err := curve.NewPublicKey(peerPubBytes)
	if err != nil {
		return nil, fmt.Errorf("transport: invalid peer public key: %w", err)
	}

	shared, err := priv.ECDH(peerPub)
	if err != nil {
		return nil, fmt.Errorf("transport: ECDH: %w", err)
	}

	clientToServer, err := deriveKey(shared, "neuronveil client-to-server")
	if err != nil {
		return nil, err
	}
	serverToClient, err := deriveKey(shared, "neuronveil server-to-client")
	if err != nil {
		return nil, err
	}

	sealKey, openKey := clientToServer, serverToClient
	if isServer {
		sealKey, openKey = serverToClient, clientToServer
	}

	seal, err := chacha20poly1305.New(sealKey)
	if err != nil {
		return nil, fmt.Errorf("transport: %w", err)
	}
	open, err := chacha20poly1305.New(openKey)
	if err != nil {
		return nil, fmt.Errorf("transport: %w", err)
	}

	return &Conn{nc: nc, seal: seal, open: open}, nil
}

func deriveKey(shared []byte, info string) ([]byte, error) {
	reader := hkdf.New(sha256.New, shared, nil, []byte(info))
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("transport: derive key: %w", err)
	}
	return key, nil
}

// WriteFrame seals frame under the next send nonce and writes it
// length-prefixed to the underlying connection.
func (c *Conn) WriteFrame(frame []byte) error {
	nonce := seqNonce(c.sendSeq, c.seal.NonceSize())
	c.sendSeq++
	sealed := c.seal.Seal(nil, nonce, frame, nil)
	return writeLenPrefixed(c.nc, sealed)
}

// ReadFrame reads one length-prefixed sealed frame and opens it.
func (c *Conn) ReadFrame() ([]byte, error) {
	sealed, err := readLenPrefixed(c.nc, maxFrameSize)
	if err != nil {
		return nil, err
	}
	nonce := seqNonce(c.recvSeq, c.open.NonceSize())
	c.recvSeq++
	frame, err := c.open.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("transport: open frame: %w", err)
	}
	return frame, nil
}

// Close closes the underlying connection.
func (c *Conn) Close() error {
	return c.nc.Close()
}

func seqNonce(seq uint64, size int) []byte {
	nonce := make([]byte, size)
	binary.BigEndian.PutUint64(nonce[size-8:], seq)
	return nonce
}

func writeLenPrefixed(w io.Writer, data []byte) error {
	var lenBuf [lenPrefixSize]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(data)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

func readLenPrefixed(r io.Reader, max int) ([]byte, error) {
	var lenBuf [lenPrefixSize]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint32(lenBuf[:])
	if int(n) > max {
		return nil, fmt.Errorf("transport: frame too large: %d bytes", n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
