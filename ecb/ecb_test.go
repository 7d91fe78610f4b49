//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ecb

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
)

// FIPS-197 Appendix C example vectors.
var fips197Tests = []struct {
	key        string
	plaintext  string
	ciphertext string
}{
	{
		key:        "000102030405060708090a0b0c0d0e0f",
		plaintext:  "00112233445566778899aabbccddeeff",
		ciphertext: "69c4e0d86a7b0430d8cdb78070b4c55a",
	},
	{
		key:        "000102030405060708090a0b0c0d0e0f1011121314151617",
		plaintext:  "00112233445566778899aabbccddeeff",
		ciphertext: "dda97ca4864cdfe06eaf70a0ec0d7191",
	},
	{
		key:        "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
		plaintext:  "00112233445566778899aabbccddeeff",
		ciphertext: "8ea2b7ca516745bfeafc49904b496089",
	},
}

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()
	data, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestKnownAnswer(t *testing.T) {
	for idx, test := range fips197Tests {
		key := decodeHex(t, test.key)
		pt := decodeHex(t, test.plaintext)
		ct := decodeHex(t, test.ciphertext)

		c, err := NewCipher(key)
		if err != nil {
			t.Fatalf("test-%d: NewCipher: %v", idx, err)
		}
		if c.KeySize() != len(key)*8 {
			t.Errorf("test-%d: KeySize=%d, expected %d",
				idx, c.KeySize(), len(key)*8)
		}
		if name := fmt.Sprintf("AES-%d/ECB", len(key)*8); c.String() != name {
			t.Errorf("test-%d: String=%q, expected %q", idx, c.String(), name)
		}

		// Two identical blocks encrypt to two identical ciphertexts.
		result, err := c.Encrypt(append(append([]byte{}, pt...), pt...))
		if err != nil {
			t.Fatalf("test-%d: Encrypt: %v", idx, err)
		}
		if !bytes.Equal(result[:BlockSize], ct) ||
			!bytes.Equal(result[BlockSize:], ct) {
			t.Errorf("test-%d: Encrypt: got %x, expected %x%x",
				idx, result, ct, ct)
		}

		result, err = c.Decrypt(ct)
		if err != nil {
			t.Fatalf("test-%d: Decrypt: %v", idx, err)
		}
		if !bytes.Equal(result, pt) {
			t.Errorf("test-%d: Decrypt: got %x, expected %x", idx, result, pt)
		}
	}
}

func TestKeyLength(t *testing.T) {
	for n := 0; n <= 40; n++ {
		c, err := NewCipher(make([]byte, n))
		switch n {
		case 16, 24, 32:
			if err != nil {
				t.Errorf("key length %d: unexpected error: %v", n, err)
			}
		default:
			if err == nil {
				t.Errorf("key length %d: expected error, got %v", n, c)
				continue
			}
			if !errors.Is(err, ErrCipherInit) {
				t.Errorf("key length %d: expected ErrCipherInit, got %v",
					n, err)
			}
		}
	}
}

func TestInputLength(t *testing.T) {
	c, err := NewCipher([]byte("TopSecret128bits"))
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range []int{0, 1, BlockSize - 1, BlockSize + 1, 3*BlockSize - 1} {
		if _, err := c.Encrypt(make([]byte, n)); !errors.Is(err, ErrInvalidInputLength) {
			t.Errorf("Encrypt(%d): expected ErrInvalidInputLength, got %v",
				n, err)
		}
		if _, err := c.Decrypt(make([]byte, n)); !errors.Is(err, ErrInvalidInputLength) {
			t.Errorf("Decrypt(%d): expected ErrInvalidInputLength, got %v",
				n, err)
		}
	}
	for _, n := range []int{BlockSize, 2 * BlockSize, 160000} {
		if _, err := c.Encrypt(make([]byte, n)); err != nil {
			t.Errorf("Encrypt(%d): unexpected error: %v", n, err)
		}
		if _, err := c.Decrypt(make([]byte, n)); err != nil {
			t.Errorf("Decrypt(%d): unexpected error: %v", n, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	c, err := NewCipher([]byte("abcdefghijklmnop"))
	if err != nil {
		t.Fatal(err)
	}
	pt := make([]byte, 64*BlockSize)
	for i := range pt {
		pt[i] = byte(i * 7)
	}
	ct, err := c.Encrypt(pt)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(ct, pt) {
		t.Fatalf("ciphertext equals plaintext")
	}
	result, err := c.Decrypt(ct)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(result, pt) {
		t.Errorf("round trip failed")
	}
}

func TestBlockMode(t *testing.T) {
	key := decodeHex(t, fips197Tests[0].key)
	block, err := aes.NewCipher(key)
	if err != nil {
		t.Fatal(err)
	}
	enc := NewEncrypter(block)
	if enc.BlockSize() != BlockSize {
		t.Errorf("BlockSize=%d, expected %d", enc.BlockSize(), BlockSize)
	}

	// In-place operation.
	buf := decodeHex(t, fips197Tests[0].plaintext)
	enc.CryptBlocks(buf, buf)
	if !bytes.Equal(buf, decodeHex(t, fips197Tests[0].ciphertext)) {
		t.Errorf("in-place encrypt: got %x", buf)
	}
	NewDecrypter(block).CryptBlocks(buf, buf)
	if !bytes.Equal(buf, decodeHex(t, fips197Tests[0].plaintext)) {
		t.Errorf("in-place decrypt: got %x", buf)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("CryptBlocks did not panic on partial block")
		}
	}()
	enc.CryptBlocks(make([]byte, BlockSize), make([]byte, BlockSize-1))
}

func TestBlockModeOverlap(t *testing.T) {
	block, err := aes.NewCipher(decodeHex(t, fips197Tests[0].key))
	if err != nil {
		t.Fatal(err)
	}
	modes := []struct {
		name string
		mode func() cipher.BlockMode
	}{
		{"encrypter", func() cipher.BlockMode {
			return NewEncrypter(block)
		}},
		{"decrypter", func() cipher.BlockMode {
			return NewDecrypter(block)
		}},
	}
	for _, m := range modes {
		buf := make([]byte, 3*BlockSize)
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: no panic on partial overlap", m.name)
				}
			}()
			m.mode().CryptBlocks(buf[1:1+2*BlockSize], buf[:2*BlockSize])
		}()

		// Exact in-place and disjoint buffers are allowed.
		m.mode().CryptBlocks(buf[:2*BlockSize], buf[:2*BlockSize])
		m.mode().CryptBlocks(buf[2*BlockSize:], buf[:BlockSize])
	}
}

func BenchmarkEncrypt160K(b *testing.B) {
	c, err := NewCipher([]byte("TopSecret128bits"))
	if err != nil {
		b.Fatal(err)
	}
	buf := make([]byte, 10000*BlockSize)
	b.SetBytes(int64(len(buf)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Encrypt(buf); err != nil {
			b.Fatal(err)
		}
	}
}
