//
// main.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"runtime/pprof"
	"time"

	"github.com/markkurossi/cipherbench/bench"
	"github.com/markkurossi/cipherbench/env"
	"github.com/markkurossi/text/superscript"
)

type options struct {
	params     bench.Params
	seed       uint64
	ms         bool
	verbose    bool
	cpuprofile string
}

func main() {
	var opts options
	flag.IntVar(&opts.params.KeyLength, "key-length", bench.DefaultKeyLength,
		"key length in bytes")
	flag.IntVar(&opts.params.BufferBlocks, "blocks", bench.DefaultBufferBlocks,
		"plaintext size in 16-byte blocks")
	flag.IntVar(&opts.params.Iterations, "iterations", bench.DefaultIterations,
		"number of encrypt/decrypt round trips")
	flag.Uint64Var(&opts.seed, "seed", 0,
		"seed for deterministic inputs (0 uses crypto/rand)")
	flag.BoolVar(&opts.ms, "ms", false, "print elapsed time in milliseconds")
	flag.BoolVar(&opts.verbose, "v", false, "verbose output")
	flag.StringVar(&opts.cpuprofile, "cpuprofile", "",
		"write cpu profile to `file`")
	flag.Parse()

	log.SetFlags(0)

	if err := run(opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run runs the benchmark and prints the results to out. The CPU
// profile is stopped and closed before run returns, also on errors.
func run(opts options, out io.Writer) error {
	if len(opts.cpuprofile) > 0 {
		f, err := os.Create(opts.cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	config := new(env.Config)
	if opts.seed != 0 {
		config.Rand = env.NewSeededRand(opts.seed)
	}

	runner := bench.NewRunner(opts.params, config)
	if opts.verbose {
		fmt.Fprintf(out, " - Parameters: %v\n", opts.params)
		fmt.Fprintf(out, " - Key space:  %s\n", keySpace(opts.params.KeyLength))
		runner.Timing = bench.NewTiming()
	}

	inputs, err := runner.Setup()
	if err != nil {
		return err
	}
	if opts.verbose {
		fmt.Fprintf(out, " - Cipher:     %v\n", inputs.Cipher)
	}

	result, err := runner.Run(inputs)
	if err != nil {
		return err
	}

	if opts.verbose {
		runner.Timing.Print(out)
		fmt.Fprintf(out, " - Throughput: %.2f MB/s\n", result.Throughput()/1e6)
	}

	if opts.ms {
		fmt.Fprintln(out, result.Elapsed.Round(time.Millisecond).Milliseconds())
	} else {
		fmt.Fprintln(out, result.Seconds())
	}
	return nil
}

// keySpace describes the number of keys the letter alphabet can
// produce for the key length.
func keySpace(n int) string {
	bits := float64(n) * math.Log2(float64(len(bench.Letters)))
	return fmt.Sprintf("%d%s (%.0f bits)", len(bench.Letters),
		superscript.Itoa(n), bits)
}
