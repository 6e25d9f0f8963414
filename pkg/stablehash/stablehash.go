package stablehash

import (
	"crypto/md5"
	"math/big"
)

// Value hashes text concatenated with seed and interprets the digest as
// a 128-bit unsigned integer. The result depends only on the two input
// strings, so it is identical across runs, processes and platforms.
func Value(text, seed string) *big.Int {
	sum := md5.Sum([]byte(text + seed))
	return new(big.Int).SetBytes(sum[:])
}

// Mod returns Value(text, seed) modulo n. Panics if n <= 0.
func Mod(text, seed string, n int64) int64 {
	if n <= 0 {
		panic("stablehash: modulus must be positive")
	}
	return new(big.Int).Mod(Value(text, seed), big.NewInt(n)).Int64()
}
