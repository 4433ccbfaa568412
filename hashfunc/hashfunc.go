package hashfunc

// HashAlgorithm - Interface that permits an implementation using the Table to supply a custom probing
// algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when the table is created and every time it is resized. The table size given is always
	// a prime number, and the algorithm must address exactly that many buckets.
	//   - tableSize is the number of buckets the slot array will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1.
	// Any number returned outside the table size (0 -> table size - 1) will be skipped by the probing loop.
	HashFunc1(key string) int64

	// HashFunc2 - Given key it generates an offset probing value that will be used together with the value
	// from HashFunc1 in a call to ProbeIteration. It must be computed independently of HashFunc1.
	HashFunc2(key string) int64

	// GetTableSize - Returns the table size the implemented hash functions are supporting
	GetTableSize() int64

	// ProbeIteration - Returns a combined hash value given values from HashFunc1 and HashFunc2 in iteration.
	// Since this function will be called repeatedly in a collision resolution situation, and the actual hash values
	// from the HashFunc1 and HashFunc2 are the same throughout iterations for one key, the function takes those values
	// rather than using the actual key as input.
	ProbeIteration(hf1Value, hf2Value, iteration int64) int64
}
