package textatlas

import "math/bits"

// NextPow2 returns the smallest power of two that is >= n.
// Non-positive n buckets to 1.
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// IsPow2 reports whether n is a positive power of two.
func IsPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
