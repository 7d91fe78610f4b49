//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bench

import (
	"fmt"
	"io"
)

// Letters defines the alphabet for keys and plaintexts.
const Letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Random bytes at or above this limit are rejected so that each
// letter has the same probability.
const letterLimit = 256 - 256%len(Letters)

// RandomLetters returns n letters sampled uniformly, with
// replacement, from Letters using the random source rand.
func RandomLetters(rand io.Reader, n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("bench: negative letter count %d", n)
	}
	result := make([]byte, 0, n)
	buf := make([]byte, min(n+n/4+8, 4096))

	for len(result) < n {
		if _, err := io.ReadFull(rand, buf); err != nil {
			return nil, err
		}
		for _, b := range buf {
			if int(b) >= letterLimit {
				continue
			}
			result = append(result, Letters[int(b)%len(Letters)])
			if len(result) == n {
				break
			}
		}
	}
	return result, nil
}
