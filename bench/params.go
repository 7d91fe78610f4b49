//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bench

import (
	"fmt"

	"github.com/markkurossi/cipherbench/ecb"
)

// Default benchmark parameters. The loop runs iterations 1..999
// inclusive, giving 999 round trips.
const (
	DefaultKeyLength    = 16
	DefaultBufferBlocks = 10000
	DefaultIterations   = 999
)

// Params define the benchmark size.
type Params struct {
	// KeyLength is the symmetric key length in bytes.
	KeyLength int
	// BufferBlocks sizes the plaintext to BufferBlocks*16-1 bytes.
	BufferBlocks int
	// Iterations is the number of encrypt/decrypt round trips.
	Iterations int
}

// DefaultParams returns the default benchmark parameters.
func DefaultParams() Params {
	return Params{
		KeyLength:    DefaultKeyLength,
		BufferBlocks: DefaultBufferBlocks,
		Iterations:   DefaultIterations,
	}
}

// Validate checks that the key length and buffer blocks are not
// negative and that iterations is positive. A zero key length or
// zero buffer blocks pass; they fail later with
// CipherInitializationError and InvalidInputLength respectively.
func (p Params) Validate() error {
	if p.KeyLength < 0 {
		return fmt.Errorf("%w: key length %d", ErrInvalidParams, p.KeyLength)
	}
	if p.BufferBlocks < 0 {
		return fmt.Errorf("%w: buffer blocks %d",
			ErrInvalidParams, p.BufferBlocks)
	}
	if p.Iterations <= 0 {
		return fmt.Errorf("%w: iterations %d", ErrInvalidParams, p.Iterations)
	}
	return nil
}

// PlaintextLength returns the length of the base plaintext
// buffer. It is one byte short of full blocks; each iteration appends
// one suffix byte.
func (p Params) PlaintextLength() int {
	return p.InputLength() - 1
}

// InputLength returns the length of the per-iteration cipher input.
func (p Params) InputLength() int {
	return p.BufferBlocks * ecb.BlockSize
}

func (p Params) String() string {
	return fmt.Sprintf("key=%dB, plaintext=%dB, iterations=%d",
		p.KeyLength, p.PlaintextLength(), p.Iterations)
}
