//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package bench implements an encryption throughput benchmark. The
// benchmark generates a random key and a large random plaintext and
// then measures the wall-clock time of repeated encrypt/decrypt round
// trips of the plaintext.
//
// Typical usage:
//
//	runner := bench.NewRunner(bench.DefaultParams(), &env.Config{})
//	result, err := runner.Benchmark()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Seconds())
package bench

import (
	"fmt"
	"time"

	"github.com/markkurossi/cipherbench/ecb"
	"github.com/markkurossi/cipherbench/env"
)

// Cipher defines the cipher operations the benchmark measures.
type Cipher interface {
	Encrypt(src []byte) ([]byte, error)
	Decrypt(src []byte) ([]byte, error)
}

// CipherFactory creates a cipher bound to the key.
type CipherFactory func(key []byte) (Cipher, error)

// NewECBCipher creates an AES cipher in ECB mode.
func NewECBCipher(key []byte) (Cipher, error) {
	c, err := ecb.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Runner runs the benchmark.
type Runner struct {
	Params    Params
	Config    *env.Config
	NewCipher CipherFactory

	// Timing, if set, receives setup and loop samples.
	Timing *Timing
}

// Inputs contain the generated benchmark inputs.
type Inputs struct {
	Key       []byte
	Plaintext []byte
	Cipher    Cipher
}

// Result contains the benchmark result.
type Result struct {
	Params   Params
	Elapsed  time.Duration
	Encrypts int
	Decrypts int
	// Bytes is the number of bytes encrypted plus decrypted.
	Bytes ByteSize
}

// Seconds returns the elapsed time in seconds.
func (r *Result) Seconds() float64 {
	return r.Elapsed.Seconds()
}

// Throughput returns the processed data rate in bytes per second.
func (r *Result) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Bytes) / r.Elapsed.Seconds()
}

// NewRunner creates a new benchmark runner with the AES-ECB cipher.
func NewRunner(params Params, config *env.Config) *Runner {
	return &Runner{
		Params:    params,
		Config:    config,
		NewCipher: NewECBCipher,
	}
}

// Suffix returns the byte appended to the plaintext on iteration
// i. It is the decimal digit of i mod 10.
func Suffix(i int) byte {
	return '0' + byte(i%10)
}

// Benchmark generates the inputs and runs the timed loop.
func (r *Runner) Benchmark() (*Result, error) {
	inputs, err := r.Setup()
	if err != nil {
		return nil, err
	}
	return r.Run(inputs)
}

// Setup generates the key, the cipher, and the plaintext. Setup is
// not part of the measured time.
func (r *Runner) Setup() (*Inputs, error) {
	if err := r.Params.Validate(); err != nil {
		return nil, err
	}
	rand := r.Config.GetRandom()

	var sample *Sample
	if r.Timing != nil {
		sample = r.Timing.Sample("Setup", 0)
	}

	key, err := RandomLetters(rand, r.Params.KeyLength)
	if err != nil {
		return nil, &Error{
			Kind: KeyGenerationError,
			Err:  err,
		}
	}
	if sample != nil {
		sample.SubSample("Key", time.Now(), ByteSize(len(key)))
	}

	factory := r.NewCipher
	if factory == nil {
		factory = NewECBCipher
	}
	c, err := factory(key)
	if err != nil {
		return nil, &Error{
			Kind: CipherInitializationError,
			Err:  err,
		}
	}
	if sample != nil {
		sample.SubSample("Cipher", time.Now(), 0)
	}

	if err := checkInputLength(r.Params.InputLength()); err != nil {
		return nil, err
	}
	plaintext, err := RandomLetters(rand, r.Params.PlaintextLength())
	if err != nil {
		return nil, &Error{
			Kind: KeyGenerationError,
			Err:  fmt.Errorf("plaintext: %w", err),
		}
	}
	if sample != nil {
		end := time.Now()
		sample.SubSample("Plaintext", end, ByteSize(len(plaintext)))
		sample.End = end
		sample.Size = ByteSize(len(key) + len(plaintext))
	}

	return &Inputs{
		Key:       key,
		Plaintext: plaintext,
		Cipher:    c,
	}, nil
}

// Run runs the timed encrypt/decrypt loop over the inputs. Iteration
// i, 1 <= i <= Iterations, encrypts the plaintext with Suffix(i)
// appended and decrypts the resulting ciphertext. The first failing
// operation aborts the run.
func (r *Runner) Run(inputs *Inputs) (*Result, error) {
	if err := r.Params.Validate(); err != nil {
		return nil, err
	}
	plaintext := inputs.Plaintext
	if err := checkInputLength(len(plaintext) + 1); err != nil {
		return nil, err
	}
	// Force a copy on every append.
	base := plaintext[:len(plaintext):len(plaintext)]

	var encTime, decTime time.Duration
	timed := r.Timing != nil

	result := &Result{
		Params: r.Params,
	}

	start := time.Now()
	for i := 1; i <= r.Params.Iterations; i++ {
		input := append(base, Suffix(i))

		var t0 time.Time
		if timed {
			t0 = time.Now()
		}
		ciphertext, err := inputs.Cipher.Encrypt(input)
		if err != nil {
			return nil, &Error{
				Kind:      EncryptionFailure,
				Iteration: i,
				Err:       err,
			}
		}
		result.Encrypts++

		var t1 time.Time
		if timed {
			t1 = time.Now()
			encTime += t1.Sub(t0)
		}
		_, err = inputs.Cipher.Decrypt(ciphertext)
		if err != nil {
			return nil, &Error{
				Kind:      DecryptionFailure,
				Iteration: i,
				Err:       err,
			}
		}
		result.Decrypts++
		if timed {
			decTime += time.Since(t1)
		}
		result.Bytes += ByteSize(len(input) + len(ciphertext))
	}
	result.Elapsed = time.Since(start)

	if timed {
		sample := r.Timing.Sample("Loop", result.Bytes)
		sample.Start = start
		sample.End = start.Add(result.Elapsed)
		sample.AbsSubSample("Encrypt", encTime, result.Bytes/2)
		sample.AbsSubSample("Decrypt", decTime, result.Bytes/2)
	}

	return result, nil
}

func checkInputLength(n int) error {
	if n <= 0 || n%ecb.BlockSize != 0 {
		return &Error{
			Kind: InvalidInputLength,
			Err: fmt.Errorf("%w: %d is not a positive multiple of %d",
				ecb.ErrInvalidInputLength, n, ecb.BlockSize),
		}
	}
	return nil
}
