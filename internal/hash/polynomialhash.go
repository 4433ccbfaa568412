package hash

import "github.com/gostonefire/hashtable/internal/utils"

// PolynomialHashAlgorithm - A textbook polynomial rolling hash, sum(prime^(len-pos-1) * c) mod table size,
// evaluated with Horner's rule over the bytes of the key. HashFunc1 uses Prime1 and HashFunc2 uses Prime2.
type PolynomialHashAlgorithm struct {
	tableSize int64
}

// NewPolynomialHashAlgorithm - Returns a pointer to a new PolynomialHashAlgorithm instance
func NewPolynomialHashAlgorithm(tableSize int64) *PolynomialHashAlgorithm {
	ha := &PolynomialHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm, rounded up to nearest prime.
func (P *PolynomialHashAlgorithm) SetTableSize(tableSize int64) {
	P.tableSize = utils.NextPrime(tableSize)
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (P *PolynomialHashAlgorithm) HashFunc1(key string) int64 {
	return polynomial(key, uint64(Prime1), uint64(P.tableSize))
}

// HashFunc2 - Given key it generates the probing step
func (P *PolynomialHashAlgorithm) HashFunc2(key string) int64 {
	return polynomial(key, uint64(Prime2), uint64(P.tableSize))
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (P *PolynomialHashAlgorithm) GetTableSize() int64 {
	return P.tableSize
}

// ProbeIteration - Returns a combined hash value given values from HashFunc1 and HashFunc2 in iteration.
func (P *PolynomialHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return doubleHashProbe(hf1Value, hf2Value, iteration, P.tableSize)
}

// polynomial - Horner evaluation of the key bytes as coefficients of prime, reduced by mod at every step
func polynomial(key string, prime, mod uint64) int64 {
	var h uint64
	for i := 0; i < len(key); i++ {
		h = (h*prime + uint64(key[i])) % mod
	}

	return int64(h)
}
