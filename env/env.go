//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements global environment for the cipher
// benchmarks.
package env

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/chacha20"
)

// Config defines the global benchmark configuration. Config must not
// be modified after being passed to a benchmark runner.
type Config struct {
	Rand io.Reader
}

// GetRandom returns the source of entropy for key and plaintext
// generation.
func (config *Config) GetRandom() io.Reader {
	if config != nil && config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// NewSeededRand creates a deterministic random source from the
// seed. The returned reader produces the ChaCha20 keystream of a key
// derived from the seed; equal seeds produce equal streams.
func NewSeededRand(seed uint64) io.Reader {
	var key [chacha20.KeySize]byte
	binary.BigEndian.PutUint64(key[:], seed)

	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		panic(err)
	}
	return &seededRand{
		stream: c,
	}
}

type seededRand struct {
	stream *chacha20.Cipher
}

func (r *seededRand) Read(p []byte) (int, error) {
	// The keystream is XOR of zeros.
	clear(p)
	r.stream.XORKeyStream(p, p)
	return len(p), nil
}
