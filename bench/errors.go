//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bench

import (
	"errors"
	"fmt"
)

// ErrInvalidParams is returned when the key length or buffer blocks
// are negative or iterations is not positive.
var ErrInvalidParams = errors.New("bench: invalid parameters")

// ErrorKind classifies benchmark failures.
type ErrorKind int

// Benchmark error kinds.
const (
	KeyGenerationError ErrorKind = iota
	CipherInitializationError
	InvalidInputLength
	EncryptionFailure
	DecryptionFailure
)

var errorKinds = map[ErrorKind]string{
	KeyGenerationError:        "key generation",
	CipherInitializationError: "cipher init",
	InvalidInputLength:        "invalid input length",
	EncryptionFailure:         "encrypt",
	DecryptionFailure:         "decrypt",
}

func (k ErrorKind) String() string {
	name, ok := errorKinds[k]
	if ok {
		return name
	}
	return fmt.Sprintf("{ErrorKind %d}", k)
}

// Error describes a failed benchmark phase. Iteration is the 1-based
// loop index for encrypt and decrypt failures and 0 otherwise.
type Error struct {
	Kind      ErrorKind
	Iteration int
	Err       error
}

func (e *Error) Error() string {
	if e.Iteration > 0 {
		return fmt.Sprintf("%s failed at iteration %d: %v",
			e.Kind, e.Iteration, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
