//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package ecb implements the AES block cipher in electronic-codebook
// mode. Each 16-byte block is enciphered independently with no IV
// and no chaining between blocks.
package ecb

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
)

// BlockSize defines the cipher block size in bytes.
const BlockSize = aes.BlockSize

var (
	// ErrCipherInit is returned when the cipher can't be created for
	// the key.
	ErrCipherInit = errors.New("ecb: cipher initialization failed")

	// ErrInvalidInputLength is returned when the input is empty or
	// its length is not a multiple of BlockSize.
	ErrInvalidInputLength = errors.New("ecb: invalid input length")
)

// Cipher implements an AES cipher handle in ECB mode.
type Cipher struct {
	block   cipher.Block
	keySize int
}

// NewCipher creates a new ECB cipher for the key. The key must be 16,
// 24, or 32 bytes long, selecting AES-128, AES-192, or AES-256.
func NewCipher(key []byte) (*Cipher, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCipherInit, err)
	}
	return &Cipher{
		block:   block,
		keySize: len(key) * 8,
	}, nil
}

// KeySize returns the cipher key size in bits.
func (c *Cipher) KeySize() int {
	return c.keySize
}

func (c *Cipher) String() string {
	return fmt.Sprintf("AES-%d/ECB", c.keySize)
}

// Encrypt encrypts src and returns the ciphertext in a new buffer.
func (c *Cipher) Encrypt(src []byte) ([]byte, error) {
	if err := checkLength(len(src)); err != nil {
		return nil, err
	}
	dst := make([]byte, len(src))
	NewEncrypter(c.block).CryptBlocks(dst, src)
	return dst, nil
}

// Decrypt decrypts src and returns the plaintext in a new buffer.
func (c *Cipher) Decrypt(src []byte) ([]byte, error) {
	if err := checkLength(len(src)); err != nil {
		return nil, err
	}
	dst := make([]byte, len(src))
	NewDecrypter(c.block).CryptBlocks(dst, src)
	return dst, nil
}

func checkLength(n int) error {
	if n <= 0 || n%BlockSize != 0 {
		return fmt.Errorf("%w: %d is not a positive multiple of %d",
			ErrInvalidInputLength, n, BlockSize)
	}
	return nil
}
