//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Cipherbench measures AES-ECB encryption throughput. It generates a
// random letter key and a random letter plaintext of blocks*16-1
// bytes, and then times iterations round trips where each round trip
// encrypts the plaintext with one decimal digit appended and decrypts
// the result. The elapsed time is printed in seconds:
//
//	$ cipherbench
//	1.187245113
//
// With the -v option, cipherbench prints the parameters, the
// effective key space, a timing report, and the throughput.
package main
