package hash

import "math/bits"

// Prime1 - Seed for HashFunc1 in the internally supplied hash algorithms
const Prime1 int64 = 163

// Prime2 - Seed for HashFunc2 in the internally supplied hash algorithms, distinct from Prime1
// so that the probing step is computed independently of the home bucket.
const Prime2 int64 = 157

// doubleHashProbe - Returns (hf1Value + iteration * hf2Value) mod tableSize.
// A step of zero would keep probing the home bucket forever, so it is forced to 1 whenever the home bucket
// or the step reduce to zero. The multiplication is done in 128 bits to stay exact for large tables.
func doubleHashProbe(hf1Value, hf2Value, iteration, tableSize int64) int64 {
	ts := uint64(tableSize)
	step := uint64(hf2Value) % ts
	if uint64(hf1Value)%ts == 0 || step == 0 {
		step = 1
	}

	hi, lo := bits.Mul64(uint64(iteration), step)
	offset := bits.Rem64(hi, lo, ts)

	return int64((uint64(hf1Value)%ts + offset) % ts)
}
