package hash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/gostonefire/hashtable/internal/utils"
	"github.com/zeebo/xxh3"
)

// DoubleHashAlgorithm - The internally used probing algorithm. HashFunc1 is xxhash64 seeded with Prime1 and
// HashFunc2 is xxh3 seeded with Prime2, giving two independent and well distributed values per key.
// The xxhash digest is reused between calls, so an instance must not be shared between goroutines.
type DoubleHashAlgorithm struct {
	tableSize int64
	digest    *xxhash.Digest
}

// NewDoubleHashAlgorithm - Returns a pointer to a new DoubleHashAlgorithm instance
func NewDoubleHashAlgorithm(tableSize int64) *DoubleHashAlgorithm {
	ha := &DoubleHashAlgorithm{digest: xxhash.NewWithSeed(uint64(Prime1))}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to its nearest higher prime number, which allows the algorithm to
// iterate over the entirety of the tables buckets once and only once.
//   - tableSize is the number of buckets the slot array will address
func (D *DoubleHashAlgorithm) SetTableSize(tableSize int64) {
	D.tableSize = utils.NextPrime(tableSize)
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (D *DoubleHashAlgorithm) HashFunc1(key string) int64 {
	D.digest.ResetWithSeed(uint64(Prime1))
	_, _ = D.digest.WriteString(key)

	return int64(D.digest.Sum64() % uint64(D.tableSize))
}

// HashFunc2 - Given key it generates an offset probing value that will be used together with the value from HashFunc1 in
// a call to ProbeIteration.
func (D *DoubleHashAlgorithm) HashFunc2(key string) int64 {
	return int64(xxh3.HashStringSeed(key, uint64(Prime2)) % uint64(D.tableSize))
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (D *DoubleHashAlgorithm) GetTableSize() int64 {
	return D.tableSize
}

// ProbeIteration - Returns a combined hash value given values from HashFunc1 and HashFunc2 in iteration.
func (D *DoubleHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return doubleHashProbe(hf1Value, hf2Value, iteration, D.tableSize)
}
