package utils

import "math"

// NextPrime - Returns the smallest prime number greater than or equal to x.
// Any x below 4 returns 3, and even numbers are bumped to the next odd number before testing.
func NextPrime(x int64) int64 {
	if x < 4 {
		return 3
	}
	if x%2 == 0 {
		x++
	}

OUTER:
	for {
		upper := int64(math.Floor(math.Sqrt(float64(x))))
		for i := int64(3); i <= upper; i += 2 {
			if x%i == 0 {
				x += 2
				continue OUTER
			}
		}

		return x
	}
}

// IsPrime - Returns true if x is a prime number
func IsPrime(x int64) bool {
	if x < 2 {
		return false
	}
	if x < 4 {
		return true
	}
	if x%2 == 0 {
		return false
	}

	return NextPrime(x) == x
}

// CopyValue - Returns a copy of the byte slice a that shares no memory with a.
// A nil slice is copied into an empty non-nil slice so stored values are never nil.
func CopyValue(a []byte) (b []byte) {
	b = make([]byte, len(a))
	_ = copy(b, a)

	return
}
