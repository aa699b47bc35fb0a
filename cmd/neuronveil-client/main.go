//
// Copyright (c) 2026 The NeuronVeil Authors
//
// All rights reserved.

package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"os"

	"github.com/neuronveil/neuronveil/fixedpoint"
	"github.com/neuronveil/neuronveil/model"
	"github.com/neuronveil/neuronveil/protocol/triplet"
	"github.com/neuronveil/neuronveil/sample"
	"github.com/neuronveil/neuronveil/session"
	"github.com/neuronveil/neuronveil/transport"
	"github.com/neuronveil/neuronveil/wire"
)

func main() {
	inputPath := flag.String("input", "", "path to the flat float32 input vector file")
	localModelPath := flag.String("local-model", "", "path to a local model file; if set, infer in plaintext and bypass the protocol")
	inputDim := flag.Int("dim", 4, "input vector dimension")
	addr := flag.String("addr", "127.0.0.1:4433", "server address")
	serverName := flag.String("server-name", "localhost", "server name, logged only")
	flag.Parse()

	log.SetFlags(0)

	if *inputPath == "" {
		log.Fatal("-input is required")
	}

	input, err := sample.LoadVector(*inputPath, *inputDim)
	if err != nil {
		log.Fatal(err)
	}

	var output []float32
	if *localModelPath != "" {
		output, err = inferLocal(*localModelPath, input)
	} else {
		output, err = inferRemote(*addr, *serverName, input)
	}
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Output: %v\n", output)
	dist := sample.Softmax(output)
	fmt.Printf("Class distribution: %v\n", dist)
	fmt.Printf("Predicted class: %d\n", sample.Argmax(dist))
}

func inferLocal(path string, input []float32) ([]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := model.LoadModel(f)
	if err != nil {
		return nil, err
	}

	x := make([]fixedpoint.Com, len(input))
	for i, v := range input {
		x[i] = fixedpoint.FromFloat32(v)
	}

	out, err := m.InferLocally(x)
	if err != nil {
		return nil, err
	}

	result := make([]float32, len(out))
	for i, c := range out {
		result[i] = c.ToFloat32()
	}
	return result, nil
}

func inferRemote(addr, serverName string, input []float32) ([]float32, error) {
	log.Printf("connecting to %s (%s)", addr, serverName)
	nc, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	defer nc.Close()

	conn, err := transport.Handshake(nc, false)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	ch := wire.NewChannel(conn)
	return session.RunClient(ch, input, triplet.ZeroSource{})
}
