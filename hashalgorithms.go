package hashtable

import (
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/hash"
)

// NewDoubleHashAlgorithm - Returns the internally used hash algorithm, xxhash64 for the home bucket and xxh3 for
// the probing step. Useful as a base when wrapping a custom hashfunc.HashAlgorithm.
func NewDoubleHashAlgorithm(tableSize int64) hashfunc.HashAlgorithm {
	return hash.NewDoubleHashAlgorithm(tableSize)
}

// NewPolynomialHashAlgorithm - Returns a polynomial rolling hash algorithm, sum(prime^(len-pos-1) * c) mod table size,
// with primes 163 and 157 for the home bucket respective the probing step.
func NewPolynomialHashAlgorithm(tableSize int64) hashfunc.HashAlgorithm {
	return hash.NewPolynomialHashAlgorithm(tableSize)
}
