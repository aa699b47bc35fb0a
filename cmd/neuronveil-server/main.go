//
// Copyright (c) 2026 The NeuronVeil Authors
//
// All rights reserved.

package main

import (
	"flag"
	"log"
	"net"
	"os"

	"github.com/neuronveil/neuronveil/model"
	"github.com/neuronveil/neuronveil/protocol/triplet"
	"github.com/neuronveil/neuronveil/session"
	"github.com/neuronveil/neuronveil/transport"
	"github.com/neuronveil/neuronveil/wire"
)

func main() {
	modelPath := flag.String("model", "", "path to the model file")
	addr := flag.String("addr", ":4433", "listen address")
	verbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	log.SetFlags(0)

	if *modelPath == "" {
		log.Fatal("-model is required")
	}

	m, err := loadModel(*modelPath)
	if err != nil {
		log.Fatal(err)
	}

	listener, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Listening for inference connections at %s", *addr)

	for {
		nc, err := listener.Accept()
		if err != nil {
			log.Printf("accept: %v", err)
			continue
		}
		if *verbose {
			log.Printf("new connection from %s", nc.RemoteAddr())
		}
		go handleConn(nc, m, *verbose)
	}
}

func loadModel(path string) (model.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Model{}, err
	}
	defer f.Close()
	return model.LoadModel(f)
}

func handleConn(nc net.Conn, m model.Model, verbose bool) {
	defer nc.Close()

	conn, err := transport.Handshake(nc, true)
	if err != nil {
		log.Printf("handshake: %v", err)
		return
	}
	defer conn.Close()

	ch := wire.NewChannel(conn)
	if err := session.RunServer(ch, m, triplet.ZeroSource{}); err != nil {
		log.Printf("infer: %v", err)
		return
	}
	if verbose {
		log.Printf("inference complete for %s", nc.RemoteAddr())
	}
}
